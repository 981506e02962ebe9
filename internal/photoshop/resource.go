// file: internal/photoshop/resource.go
// version: 1.0.0
// guid: 82dce25e-df84-448f-af3b-96837f2fbad5

// Package photoshop reads and rewrites the image resource blocks found in
// a Photoshop 3.0 APP13 payload.
package photoshop

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"slices"
)

// Signature opens every Photoshop APP13 payload.
const Signature = "Photoshop 3.0\x00"

// IPTCResourceID is the resource carrying the IIM stream.
const IPTCResourceID uint16 = 0x0404

// ErrFormat marks a malformed resource block.
var ErrFormat = errors.New("malformed Photoshop resource data")

// Block signatures written by Photoshop and a few older producers.
var blockTypes = [][]byte{
	[]byte("8BIM"),
	[]byte("PHUT"),
	[]byte("AgHg"),
	[]byte("DCSR"),
	[]byte("MeSa"),
}

// Resource is one image resource block. Offsets are relative to the
// payload passed to Parse.
type Resource struct {
	Type       string
	ID         uint16
	Name       string
	Offset     int // start of the block
	End        int // end of the block including data padding
	DataOffset int
	DataLen    int
}

// HasSignature reports whether payload starts with the Photoshop 3.0
// signature.
func HasSignature(payload []byte) bool {
	return bytes.HasPrefix(payload, []byte(Signature))
}

// Parse lists the resource blocks of payload. A payload without the
// Photoshop signature holds no resources.
func Parse(payload []byte) ([]Resource, error) {
	if !HasSignature(payload) {
		return nil, nil
	}
	var out []Resource
	off := len(Signature)
	for off < len(payload) {
		res, err := parseBlock(payload, off)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
		off = res.End
	}
	return out, nil
}

// parseBlock reads the block starting at payload[off].
func parseBlock(payload []byte, off int) (Resource, error) {
	res := Resource{Offset: off}
	remaining := func(pos int) int { return len(payload) - pos }

	// type(4) + id(2) + name length(1)
	if remaining(off) < 7 {
		return res, fmt.Errorf("%w: block header truncated at offset %d", ErrFormat, off)
	}
	typ := payload[off : off+4]
	if !knownType(typ) {
		return res, fmt.Errorf("%w: unknown block signature %q at offset %d", ErrFormat, typ, off)
	}
	res.Type = string(typ)
	res.ID = binary.BigEndian.Uint16(payload[off+4:])

	pos := off + 6
	nameLen := int(payload[pos])
	nameField := padEven(1 + nameLen)
	if remaining(pos) < nameField+4 {
		return res, fmt.Errorf("%w: resource 0x%04x name truncated at offset %d", ErrFormat, res.ID, pos)
	}
	res.Name = string(payload[pos+1 : pos+1+nameLen])
	pos += nameField

	size := binary.BigEndian.Uint32(payload[pos:])
	pos += 4
	if uint64(size) > uint64(remaining(pos)) {
		return res, fmt.Errorf("%w: resource 0x%04x declares %d bytes, only %d remain at offset %d",
			ErrFormat, res.ID, size, remaining(pos), pos)
	}
	res.DataOffset = pos
	res.DataLen = int(size)

	// A missing pad byte on the final block is tolerated.
	res.End = min(pos+padEven(res.DataLen), len(payload))
	return res, nil
}

func knownType(typ []byte) bool {
	return slices.ContainsFunc(blockTypes, func(b []byte) bool { return bytes.Equal(b, typ) })
}

func padEven(n int) int {
	return n + n&1
}

// FindByID returns the first resource with the given ID.
func FindByID(resources []Resource, id uint16) (Resource, bool) {
	for _, r := range resources {
		if r.ID == id {
			return r, true
		}
	}
	return Resource{}, false
}

// Data returns the data bytes of r within payload.
func (r Resource) Data(payload []byte) []byte {
	return payload[r.DataOffset : r.DataOffset+r.DataLen]
}

// FindIPTC returns the IIM stream stored in payload. ok is false when
// the payload carries no IPTC resource.
func FindIPTC(payload []byte) (data []byte, ok bool, err error) {
	resources, err := Parse(payload)
	if err != nil {
		return nil, false, err
	}
	res, ok := FindByID(resources, IPTCResourceID)
	if !ok {
		return nil, false, nil
	}
	return res.Data(payload), true, nil
}

// Replace returns a copy of payload with the data of resource id set to
// data. Every other block is copied byte for byte, except that a final
// block without its pad byte is padded. A missing resource is
// appended; empty data removes the resource. An empty or unsigned
// payload is treated as a new one.
func Replace(payload []byte, id uint16, data []byte) ([]byte, error) {
	resources, err := Parse(payload)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(payload)+len(data)+16)
	out = append(out, Signature...)
	replaced := false
	for _, r := range resources {
		if r.ID != id || replaced {
			out = append(out, payload[r.Offset:r.End]...)
			// A final block missing its pad byte gets one, so a block
			// appended after it stays aligned.
			if r.End-r.DataOffset < padEven(r.DataLen) {
				out = append(out, 0)
			}
			continue
		}
		replaced = true
		if len(data) == 0 {
			continue
		}
		out = AppendBlock(out, r.Type, id, r.Name, data)
	}
	if !replaced && len(data) > 0 {
		out = AppendBlock(out, "8BIM", id, "", data)
	}
	return out, nil
}

// AppendBlock appends a resource block to dst.
func AppendBlock(dst []byte, typ string, id uint16, name string, data []byte) []byte {
	if len(name) > 255 {
		name = name[:255]
	}
	dst = append(dst, typ...)
	dst = binary.BigEndian.AppendUint16(dst, id)
	dst = append(dst, byte(len(name)))
	dst = append(dst, name...)
	if (1+len(name))&1 != 0 {
		dst = append(dst, 0)
	}
	dst = binary.BigEndian.AppendUint32(dst, uint32(len(data)))
	dst = append(dst, data...)
	if len(data)&1 != 0 {
		dst = append(dst, 0)
	}
	return dst
}
