// file: internal/jpegsegs/splice.go
// version: 1.0.0
// guid: 4f54c53c-e721-4550-b6fd-76e7de005b29

package jpegsegs

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/jdfalk/iptc-organizer/internal/photoshop"
)

// MaxSegmentPayload is the largest payload a single marker segment can
// carry (65535 minus the 2-byte length field).
const MaxSegmentPayload = 0xFFFF - 2

// maxChunk is the resource data carried per APP13 segment once the
// signature has been repeated.
const maxChunk = MaxSegmentPayload - len(photoshop.Signature)

var (
	// ErrNotJPEG is returned when the input does not start with SOI.
	ErrNotJPEG = errors.New("not a JPEG file")

	// ErrFormat marks a truncated or corrupt marker segment.
	ErrFormat = errors.New("malformed JPEG segment")
)

// Segment is one marker segment. Offsets index the buffer given to Walk;
// jpeg[Offset:End] covers the segment including any fill bytes before
// its marker.
type Segment struct {
	Marker        Marker
	Offset        int
	PayloadOffset int
	End           int
}

// Payload returns the segment data following the length field.
func (s Segment) Payload(jpeg []byte) []byte {
	return jpeg[s.PayloadOffset:s.End]
}

// Walk lists the segments from SOI through SOS (or EOI for a stream with
// no scan). Bytes after the last segment are entropy-coded data and are
// not examined.
func Walk(jpeg []byte) ([]Segment, error) {
	if len(jpeg) < 2 || jpeg[0] != 0xFF || Marker(jpeg[1]) != SOI {
		return nil, ErrNotJPEG
	}
	segs := []Segment{{Marker: SOI, Offset: 0, PayloadOffset: 2, End: 2}}
	pos := 2
	for {
		if pos >= len(jpeg) {
			return nil, fmt.Errorf("%w: stream ends at offset %d before SOS", ErrFormat, pos)
		}
		start := pos
		if jpeg[pos] != 0xFF {
			return nil, fmt.Errorf("%w: expected 0xFF at offset %d, found 0x%02x", ErrFormat, pos, jpeg[pos])
		}
		for pos < len(jpeg) && jpeg[pos] == 0xFF {
			pos++
		}
		if pos >= len(jpeg) {
			return nil, fmt.Errorf("%w: marker truncated at offset %d", ErrFormat, start)
		}
		m := Marker(jpeg[pos])
		pos++
		if m == 0 {
			return nil, fmt.Errorf("%w: invalid marker 0 at offset %d", ErrFormat, pos-1)
		}

		if m.Standalone() {
			segs = append(segs, Segment{Marker: m, Offset: start, PayloadOffset: pos, End: pos})
			if m == EOI {
				return segs, nil
			}
			continue
		}

		if len(jpeg)-pos < 2 {
			return nil, fmt.Errorf("%w: %s length truncated at offset %d", ErrFormat, m.Name(), pos)
		}
		length := int(binary.BigEndian.Uint16(jpeg[pos:]))
		if length < 2 || length > len(jpeg)-pos {
			return nil, fmt.Errorf("%w: %s declares %d bytes at offset %d, %d remain",
				ErrFormat, m.Name(), length, pos, len(jpeg)-pos)
		}
		segs = append(segs, Segment{Marker: m, Offset: start, PayloadOffset: pos + 2, End: pos + length})
		pos += length
		if m == SOS {
			return segs, nil
		}
	}
}

// isPhotoshop reports whether s is an APP13 segment carrying a
// Photoshop 3.0 payload.
func isPhotoshop(jpeg []byte, s Segment) bool {
	return s.Marker == APP13 && photoshop.HasSignature(s.Payload(jpeg))
}

// photoshopRun returns the index range [first, last] of the first run of
// consecutive Photoshop APP13 segments.
func photoshopRun(jpeg []byte, segs []Segment) (first, last int, ok bool) {
	for i, s := range segs {
		if !isPhotoshop(jpeg, s) {
			continue
		}
		last = i
		for last+1 < len(segs) && isPhotoshop(jpeg, segs[last+1]) {
			last++
		}
		return i, last, true
	}
	return 0, 0, false
}

// ReadPhotoshopPayload returns the Photoshop payload of jpeg, joined
// across consecutive APP13 segments with the signature kept once at the
// front. It returns nil when there is none.
func ReadPhotoshopPayload(jpeg []byte) ([]byte, error) {
	segs, err := Walk(jpeg)
	if err != nil {
		return nil, err
	}
	first, last, ok := photoshopRun(jpeg, segs)
	if !ok {
		return nil, nil
	}
	size := 0
	for _, s := range segs[first : last+1] {
		size += s.End - s.PayloadOffset
	}
	out := make([]byte, 0, size)
	out = append(out, segs[first].Payload(jpeg)...)
	for _, s := range segs[first+1 : last+1] {
		out = append(out, s.Payload(jpeg)[len(photoshop.Signature):]...)
	}
	return out, nil
}

// WritePhotoshopPayload returns a copy of jpeg whose Photoshop APP13
// segments hold payload. Existing segments are replaced in place; with
// none, new ones go right after SOI. A payload with no resources after
// the signature (or an empty one) removes the segments. Every other byte
// of jpeg is copied unchanged.
func WritePhotoshopPayload(jpeg, payload []byte) ([]byte, error) {
	var body []byte
	switch {
	case len(payload) == 0:
	case photoshop.HasSignature(payload):
		body = payload[len(photoshop.Signature):]
	default:
		return nil, fmt.Errorf("%w: payload lacks the Photoshop 3.0 signature", ErrFormat)
	}

	segs, err := Walk(jpeg)
	if err != nil {
		return nil, err
	}
	cut, resume := 2, 2
	if first, last, ok := photoshopRun(jpeg, segs); ok {
		cut, resume = segs[first].Offset, segs[last].End
	}

	nseg := (len(body) + maxChunk - 1) / maxChunk
	out := make([]byte, 0, len(jpeg)-(resume-cut)+len(body)+nseg*(4+len(photoshop.Signature)))
	out = append(out, jpeg[:cut]...)
	for i := 0; i < len(body); i += maxChunk {
		out = appendAPP13(out, body[i:min(i+maxChunk, len(body))])
	}
	out = append(out, jpeg[resume:]...)
	return out, nil
}

// appendAPP13 appends one signed APP13 segment holding chunk.
func appendAPP13(dst, chunk []byte) []byte {
	dst = append(dst, 0xFF, byte(APP13))
	dst = binary.BigEndian.AppendUint16(dst, uint16(2+len(photoshop.Signature)+len(chunk)))
	dst = append(dst, photoshop.Signature...)
	return append(dst, chunk...)
}

// HasPhotoshop reports whether jpeg carries a Photoshop APP13 segment.
func HasPhotoshop(jpeg []byte) (bool, error) {
	segs, err := Walk(jpeg)
	if err != nil {
		return false, err
	}
	_, _, ok := photoshopRun(jpeg, segs)
	return ok, nil
}

// IsJPEG reports whether buf starts with an SOI marker.
func IsJPEG(buf []byte) bool {
	return bytes.HasPrefix(buf, []byte{0xFF, byte(SOI)})
}
