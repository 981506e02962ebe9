// file: internal/iptc/charset.go
// version: 1.0.0
// guid: 96a4b5cb-581f-4ba4-bcf7-c17df90fd19f

package iptc

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
)

// iso2022Designations maps 1:90 escape sequences for single byte
// character sets to their decoders. G1 (ESC -) and G2 (ESC .) designations
// of the same set decode identically.
var iso2022Designations = []struct {
	esc []byte
	enc encoding.Encoding
}{
	{[]byte{0x1B, 0x2D, 0x41}, charmap.ISO8859_1},
	{[]byte{0x1B, 0x2E, 0x41}, charmap.ISO8859_1},
	{[]byte{0x1B, 0x2D, 0x42}, charmap.ISO8859_2},
	{[]byte{0x1B, 0x2D, 0x43}, charmap.ISO8859_3},
	{[]byte{0x1B, 0x2D, 0x44}, charmap.ISO8859_4},
	{[]byte{0x1B, 0x2D, 0x4C}, charmap.ISO8859_5},
	{[]byte{0x1B, 0x2D, 0x47}, charmap.ISO8859_6},
	{[]byte{0x1B, 0x2D, 0x46}, charmap.ISO8859_7},
	{[]byte{0x1B, 0x2D, 0x48}, charmap.ISO8859_8},
	{[]byte{0x1B, 0x2D, 0x4D}, charmap.ISO8859_9},
	{[]byte{0x1B, 0x2D, 0x56}, charmap.ISO8859_10},
	{[]byte{0x1B, 0x2D, 0x59}, charmap.ISO8859_13},
	{[]byte{0x1B, 0x2D, 0x5F}, charmap.ISO8859_14},
	{[]byte{0x1B, 0x2D, 0x62}, charmap.ISO8859_15},
	{[]byte{0x1B, 0x2D, 0x66}, charmap.ISO8859_16},
}

// CharsetByName resolves an IANA charset name ("ISO-8859-1",
// "windows-1252") for use as a text fallback.
func CharsetByName(name string) (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("unknown charset %q: %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("charset %q is not supported", name)
	}
	return enc, nil
}

// DeclaredCharset returns the decoder matching the 1:90 declaration of d.
// ok is false when there is no declaration or it is not recognised.
func (d *Data) DeclaredCharset() (encoding.Encoding, bool) {
	ds := d.Find(RecordEnvelope, TagCharacterSet)
	if ds == nil {
		return nil, false
	}
	if bytes.Equal(ds.value, UTF8Marker) {
		return encoding.Nop, true
	}
	for _, des := range iso2022Designations {
		if bytes.Equal(ds.value, des.esc) {
			return des.enc, true
		}
	}
	return nil, false
}

// DecodeText returns the value of a text dataset as UTF-8 using
// ISO-8859-1 as the fallback charset.
func DecodeText(ds *DataSet) string {
	return DecodeTextWith(ds, charmap.ISO8859_1)
}

// DecodeTextWith returns the value of a text dataset as UTF-8.
//
// A UTF-8 declaration returns the bytes as is. A recognised single byte
// declaration decodes with that charset, anything else uses fallback.
// Undeclared values that are valid UTF-8 are returned unchanged.
// Non-text datasets are rendered with Text.
func DecodeTextWith(ds *DataSet, fallback encoding.Encoding) string {
	if !ds.Format().IsText() {
		return ds.Text(0)
	}
	raw := []byte(ds.Text(0))
	if fallback == nil {
		fallback = charmap.ISO8859_1
	}

	enc := fallback
	if d := ds.Data(); d != nil {
		switch d.Encoding() {
		case EncodingUTF8:
			return string(raw)
		case EncodingOther:
			if declared, ok := d.DeclaredCharset(); ok {
				enc = declared
			}
		case EncodingUnspecified:
			if utf8.Valid(raw) {
				return string(raw)
			}
		}
	} else if utf8.Valid(raw) {
		return string(raw)
	}

	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return string(raw)
	}
	return string(out)
}
