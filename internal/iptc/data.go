// file: internal/iptc/data.go
// version: 1.0.0
// guid: 58b51d96-5b10-4e1d-ba9a-2d0781a415ae

package iptc

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
)

// Encoding is the character set a Data declares for its text datasets.
type Encoding int

const (
	// EncodingUnspecified means no 1:90 CharacterSet dataset is present.
	EncodingUnspecified Encoding = iota
	// EncodingUTF8 means 1:90 holds the ISO 2022 escape for UTF-8.
	EncodingUTF8
	// EncodingOther means 1:90 declares some other character set.
	EncodingOther
)

func (e Encoding) String() string {
	switch e {
	case EncodingUTF8:
		return "UTF-8"
	case EncodingOther:
		return "Other"
	case EncodingUnspecified:
		return "Unspecified"
	}
	return "Unspecified"
}

// UTF8Marker is the 1:90 value announcing UTF-8 (ESC % G).
var UTF8Marker = []byte{0x1B, 0x25, 0x47}

// Data is an ordered collection of datasets forming one IIM stream.
// It is not safe for concurrent use.
type Data struct {
	sets []*DataSet
}

// New returns an empty container.
func New() *Data {
	return &Data{}
}

// Parse decodes an IIM stream. Bytes that do not start a record are
// skipped up to the next marker; a tail with no marker ends the stream.
func Parse(buf []byte) (*Data, error) {
	d := New()
	off := 0
	for off < len(buf) {
		if buf[off] != Marker {
			next := bytes.IndexByte(buf[off:], Marker)
			if next < 0 {
				break
			}
			off += next
		}
		ds, n, err := decodeDataSet(buf, off)
		if err != nil {
			return nil, err
		}
		ds.parent = d
		d.sets = append(d.sets, ds)
		off = n
	}
	return d, nil
}

// Bytes serializes every dataset in iteration order.
func (d *Data) Bytes() ([]byte, error) {
	size := 0
	for _, ds := range d.sets {
		size += encodedSize(ds)
	}
	out := make([]byte, 0, size)
	var err error
	for _, ds := range d.sets {
		if out, err = appendDataSet(out, ds); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Len returns the number of datasets.
func (d *Data) Len() int { return len(d.sets) }

// At returns the i-th dataset in iteration order.
func (d *Data) At(i int) *DataSet { return d.sets[i] }

// DataSets returns the datasets in iteration order. The slice is a copy;
// the datasets are not.
func (d *Data) DataSets() []*DataSet {
	return slices.Clone(d.sets)
}

// Add appends ds and takes ownership of it.
func (d *Data) Add(ds *DataSet) error {
	if ds.parent != nil {
		return ErrAttached
	}
	ds.parent = d
	d.sets = append(d.sets, ds)
	return nil
}

// AddBefore inserts ds immediately before anchor, which must belong to d.
func (d *Data) AddBefore(anchor, ds *DataSet) error {
	i := d.indexOf(anchor)
	if i < 0 {
		return ErrNotMember
	}
	if ds.parent != nil {
		return ErrAttached
	}
	ds.parent = d
	d.sets = slices.Insert(d.sets, i, ds)
	return nil
}

// AddWithData creates a dataset for (r, t) holding b and appends it.
func (d *Data) AddWithData(r Record, t Tag, b []byte, validate bool) (*DataSet, error) {
	ds := NewDataSet(r, t)
	if err := ds.SetData(b, validate); err != nil {
		return nil, err
	}
	return ds, d.Add(ds)
}

// AddWithValue creates an integer dataset for (r, t) and appends it.
func (d *Data) AddWithValue(r Record, t Tag, v uint32, validate bool) (*DataSet, error) {
	ds := NewDataSet(r, t)
	if err := ds.SetValue(v, validate); err != nil {
		return nil, err
	}
	return ds, d.Add(ds)
}

// Remove detaches ds from d.
func (d *Data) Remove(ds *DataSet) error {
	i := d.indexOf(ds)
	if i < 0 {
		return ErrNotMember
	}
	d.sets = slices.Delete(d.sets, i, i+1)
	ds.parent = nil
	return nil
}

func (d *Data) indexOf(ds *DataSet) int {
	if ds == nil || ds.parent != d {
		return -1
	}
	return slices.Index(d.sets, ds)
}

// Find returns the first dataset matching (r, t), or nil.
func (d *Data) Find(r Record, t Tag) *DataSet {
	return d.findFrom(0, r, t)
}

// FindNext returns the first match for (r, t) strictly after "after".
// A nil "after" behaves like Find.
func (d *Data) FindNext(after *DataSet, r Record, t Tag) *DataSet {
	if after == nil {
		return d.Find(r, t)
	}
	i := d.indexOf(after)
	if i < 0 {
		return nil
	}
	return d.findFrom(i+1, r, t)
}

// FindNth returns the match for (r, t) that follows n skipped matches.
func (d *Data) FindNth(r Record, t Tag, n int) *DataSet {
	ds := d.Find(r, t)
	for ; ds != nil && n > 0; n-- {
		ds = d.FindNext(ds, r, t)
	}
	return ds
}

func (d *Data) findFrom(start int, r Record, t Tag) *DataSet {
	for _, ds := range d.sets[start:] {
		if ds.record == r && ds.tag == t {
			return ds
		}
	}
	return nil
}

// Sort orders the datasets by record then tag. Equal keys keep their
// relative order.
func (d *Data) Sort() {
	slices.SortStableFunc(d.sets, compareDataSets)
}

func compareDataSets(a, b *DataSet) int {
	if a.record != b.record {
		return int(a.record) - int(b.record)
	}
	return int(a.tag) - int(b.tag)
}

// Encoding reports the declared character set.
func (d *Data) Encoding() Encoding {
	ds := d.Find(RecordEnvelope, TagCharacterSet)
	switch {
	case ds == nil:
		return EncodingUnspecified
	case bytes.Equal(ds.value, UTF8Marker):
		return EncodingUTF8
	default:
		return EncodingOther
	}
}

// SetEncodingUTF8 declares UTF-8 by inserting the 1:90 marker at its
// sorted position. An existing non-UTF-8 declaration is left alone and
// ErrEncodingConflict is returned.
func (d *Data) SetEncodingUTF8() error {
	switch d.Encoding() {
	case EncodingUTF8:
		return nil
	case EncodingOther:
		return ErrEncodingConflict
	case EncodingUnspecified:
	}

	ds := NewDataSet(RecordEnvelope, TagCharacterSet)
	if err := ds.SetData(UTF8Marker, true); err != nil {
		return err
	}
	return d.insertSorted(ds)
}

// insertSorted places ds before the first dataset that sorts after it.
func (d *Data) insertSorted(ds *DataSet) error {
	for _, cur := range d.sets {
		if compareDataSets(cur, ds) > 0 {
			return d.AddBefore(cur, ds)
		}
	}
	return d.Add(ds)
}

// Version returns the 2:0 RecordVersion value, if present.
func (d *Data) Version() (uint32, bool) {
	ds := d.Find(RecordApplication, TagRecordVersion)
	if ds == nil {
		return 0, false
	}
	return ds.Uint(), true
}

// SetVersion writes the 2:0 RecordVersion dataset, creating it at its
// sorted position when missing.
func (d *Data) SetVersion(v uint32) error {
	if ds := d.Find(RecordApplication, TagRecordVersion); ds != nil {
		if err := ds.SetValue(v, true); err != nil {
			return fmt.Errorf("set record version: %w", err)
		}
		return nil
	}
	ds := NewDataSet(RecordApplication, TagRecordVersion)
	if err := ds.SetValue(v, true); err != nil {
		return fmt.Errorf("set record version: %w", err)
	}
	return d.insertSorted(ds)
}

// Validate checks every known dataset against its declared length bounds
// and returns all violations joined.
func (d *Data) Validate() error {
	var errs []error
	for i, ds := range d.sets {
		if ds.info == nil {
			continue
		}
		if n := len(ds.value); n < ds.info.MinBytes || n > ds.info.MaxBytes {
			errs = append(errs, fmt.Errorf("%w: dataset %d (%s) has %d bytes, want %d..%d",
				ErrValidation, i, ds.info.ID(), n, ds.info.MinBytes, ds.info.MaxBytes))
		}
	}
	return errors.Join(errs...)
}
