// file: internal/iptc/dataset.go
// version: 1.0.0
// guid: 6c3775eb-6f24-487d-96e1-2709b7d1b05a

package iptc

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// DataSet is one (record, tag, value) entry of an IIM stream.
//
// A DataSet is either detached (created with NewDataSet and not yet added
// anywhere) or owned by exactly one Data. Changing the tag of an owned
// DataSet does not move it within its container.
type DataSet struct {
	record Record
	tag    Tag
	info   *TagInfo
	value  []byte
	parent *Data
}

// NewDataSet returns a detached, empty DataSet for (r, t).
func NewDataSet(r Record, t Tag) *DataSet {
	ds := &DataSet{}
	ds.SetTag(r, t)
	return ds
}

// SetTag reassigns the identity of the dataset and re-resolves its tag
// information. The value is left untouched.
func (ds *DataSet) SetTag(r Record, t Tag) {
	ds.record = r
	ds.tag = t
	ds.info = lookupTag(r, t)
}

// Record returns the record number.
func (ds *DataSet) Record() Record { return ds.record }

// Tag returns the dataset number.
func (ds *DataSet) Tag() Tag { return ds.tag }

// Info returns the tag table entry, if the tag is known.
func (ds *DataSet) Info() (TagInfo, bool) {
	if ds.info == nil {
		return TagInfo{}, false
	}
	return *ds.info, true
}

// Format returns the declared format, FormatUnknown for unknown tags.
func (ds *DataSet) Format() Format {
	if ds.info == nil {
		return FormatUnknown
	}
	return ds.info.Format
}

// Data returns the container owning ds, or nil when detached.
func (ds *DataSet) Data() *Data { return ds.parent }

// Len returns the value size in bytes.
func (ds *DataSet) Len() int { return len(ds.value) }

// Bytes returns a copy of the raw value.
func (ds *DataSet) Bytes() []byte {
	return append([]byte(nil), ds.value...)
}

// SetData replaces the value with a copy of b. With validate set and a
// known tag, a length outside the declared bounds is rejected with
// ErrValidation and the previous value is kept.
func (ds *DataSet) SetData(b []byte, validate bool) error {
	if validate && ds.info != nil {
		if len(b) < ds.info.MinBytes || len(b) > ds.info.MaxBytes {
			return fmt.Errorf("%w: %s takes %d..%d bytes, got %d",
				ErrValidation, ds.info.Name, ds.info.MinBytes, ds.info.MaxBytes, len(b))
		}
	}
	ds.value = append(make([]byte, 0, len(b)), b...)
	return nil
}

// SetValue stores v as a big-endian integer sized for the tag's format.
// Tags that are not Byte, Short or Long get four bytes; with validate set
// such tags are rejected instead.
func (ds *DataSet) SetValue(v uint32, validate bool) error {
	var size int
	switch f := ds.Format(); f {
	case FormatByte, FormatShort, FormatLong:
		size = f.Width()
	case FormatString, FormatNumericString, FormatDate, FormatTime,
		FormatBinary, FormatUndefined, FormatUnknown:
		if validate {
			return fmt.Errorf("%w: %d:%d is not an integer dataset (%s)",
				ErrValidation, ds.record, ds.tag, f)
		}
		size = 4
	}

	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, v)
	return ds.SetData(buf[4-size:], validate)
}

// Uint decodes the value as a big-endian unsigned integer.
//
// A three byte value decodes as its leading 16-bit word shifted left by
// eight OR the last byte. Values longer than four bytes decode their first
// four bytes.
func (ds *DataSet) Uint() uint32 {
	b := ds.value
	switch len(b) {
	case 0:
		return 0
	case 1:
		return uint32(b[0])
	case 2:
		return uint32(binary.BigEndian.Uint16(b))
	case 3:
		return uint32(binary.BigEndian.Uint16(b))<<8 | uint32(b[2])
	default:
		return binary.BigEndian.Uint32(b)
	}
}

// Text renders the value for display, using at most maxLen bytes of
// output. maxLen <= 0 means no limit.
func (ds *DataSet) Text(maxLen int) string {
	switch f := ds.Format(); f {
	case FormatByte, FormatShort, FormatLong:
		return clampText(strconv.FormatUint(uint64(ds.Uint()), 10), maxLen)
	case FormatString, FormatNumericString, FormatDate, FormatTime:
		b := ds.value
		if maxLen > 0 && len(b) > maxLen {
			b = b[:maxLen]
		}
		if i := bytes.IndexByte(b, 0); i >= 0 {
			b = b[:i]
		}
		return string(b)
	case FormatBinary, FormatUndefined, FormatUnknown:
		return hexPairs(ds.value, maxLen)
	}
	return ""
}

// String implements fmt.Stringer with an unbounded Text.
func (ds *DataSet) String() string {
	return ds.Text(0)
}

func clampText(s string, maxLen int) string {
	if maxLen > 0 && len(s) > maxLen {
		return s[:maxLen]
	}
	return s
}

// hexPairs writes "xx xx xx". Every pair costs three bytes of budget, so
// at most maxLen/3 pairs are emitted.
func hexPairs(b []byte, maxLen int) string {
	n := len(b)
	if maxLen > 0 && n > maxLen/3 {
		n = maxLen / 3
	}
	var sb strings.Builder
	sb.Grow(n * 3)
	const digits = "0123456789abcdef"
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(digits[b[i]>>4])
		sb.WriteByte(digits[b[i]&0x0f])
	}
	return sb.String()
}
