// file: internal/iptc/codec.go
// version: 1.0.0
// guid: 7b716d2b-eccb-464e-9462-2997a9f4ab25

package iptc

import (
	"encoding/binary"
	"fmt"
)

// Marker starts every IIM record on the wire.
const Marker = 0x1C

const (
	headerSize     = 5      // marker, record, tag, 2-byte length
	maxShortLength = 0x7FFF // largest length the 15-bit form can carry
	extendedFlag   = 0x8000
	maxLengthBytes = 4
)

// decodeDataSet reads one record starting at buf[off]. It returns the
// dataset and the offset of the byte following it.
func decodeDataSet(buf []byte, off int) (*DataSet, int, error) {
	if len(buf)-off < headerSize {
		return nil, off, fmt.Errorf("%w: record header truncated at offset %d", ErrFormat, off)
	}
	if buf[off] != Marker {
		return nil, off, fmt.Errorf("%w: expected marker 0x1c at offset %d, found 0x%02x", ErrFormat, off, buf[off])
	}
	r, t := Record(buf[off+1]), Tag(buf[off+2])
	field := readUint16BE(buf, off+3)
	pos := off + headerSize

	length := int(field)
	if field&extendedFlag != 0 {
		n := int(field &^ extendedFlag)
		if n < 1 || n > maxLengthBytes {
			return nil, off, fmt.Errorf("%w: %d:%d declares %d length bytes at offset %d", ErrFormat, r, t, n, off)
		}
		if len(buf)-pos < n {
			return nil, off, fmt.Errorf("%w: extended length of %d:%d truncated at offset %d", ErrFormat, r, t, pos)
		}
		var ext uint64
		for _, b := range buf[pos : pos+n] {
			ext = ext<<8 | uint64(b)
		}
		pos += n
		if ext > uint64(len(buf)-pos) {
			return nil, off, fmt.Errorf("%w: %d:%d declares %d bytes, only %d remain at offset %d", ErrFormat, r, t, ext, len(buf)-pos, pos)
		}
		length = int(ext)
	} else if length > len(buf)-pos {
		return nil, off, fmt.Errorf("%w: %d:%d declares %d bytes, only %d remain at offset %d", ErrFormat, r, t, length, len(buf)-pos, pos)
	}

	ds := NewDataSet(r, t)
	ds.value = append(make([]byte, 0, length), buf[pos:pos+length]...)
	return ds, pos + length, nil
}

// appendDataSet appends the wire form of ds to dst.
func appendDataSet(dst []byte, ds *DataSet) ([]byte, error) {
	n := len(ds.value)
	if uint64(n) > 0xFFFFFFFF {
		return dst, fmt.Errorf("%w: %d:%d value of %d bytes is too large", ErrFormat, ds.record, ds.tag, n)
	}
	dst = append(dst, Marker, byte(ds.record), byte(ds.tag))
	if n <= maxShortLength {
		dst = binary.BigEndian.AppendUint16(dst, uint16(n))
	} else {
		lb := lengthBytes(n)
		dst = binary.BigEndian.AppendUint16(dst, uint16(extendedFlag|lb))
		for i := lb - 1; i >= 0; i-- {
			dst = append(dst, byte(uint64(n)>>(8*uint(i))))
		}
	}
	return append(dst, ds.value...), nil
}

// lengthBytes returns the minimum number of bytes needed to hold n.
func lengthBytes(n int) int {
	lb := 1
	for v := uint64(n) >> 8; v != 0; v >>= 8 {
		lb++
	}
	return lb
}

// encodedSize is the number of bytes appendDataSet writes for ds.
func encodedSize(ds *DataSet) int {
	n := len(ds.value)
	if n <= maxShortLength {
		return headerSize + n
	}
	return headerSize + lengthBytes(n) + n
}

func readUint16BE(data []byte, offset int) uint16 {
	if offset+2 > len(data) {
		return 0
	}
	return binary.BigEndian.Uint16(data[offset : offset+2])
}
