// file: internal/metadata/fixtures_test.go
// version: 1.0.0
// guid: 4f68cbee-fecf-4a70-92af-f7d53ca2e609

package metadata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jdfalk/iptc-organizer/internal/iptc"
	"github.com/jdfalk/iptc-organizer/internal/photoshop"
)

func jpegSegment(marker byte, payload []byte) []byte {
	out := []byte{0xFF, marker, byte((len(payload) + 2) >> 8), byte(len(payload) + 2)}
	return append(out, payload...)
}

// buildSyntheticJPEG returns a structurally valid JPEG with a JFIF header,
// one quantisation table, SOS and a few bytes of scan data. extra
// segments are placed after APP0.
func buildSyntheticJPEG(extra ...[]byte) []byte {
	out := []byte{0xFF, 0xD8}
	out = append(out, jpegSegment(0xE0, []byte("JFIF\x00\x01\x01\x00\x00\x01\x00\x01\x00\x00"))...)
	for _, e := range extra {
		out = append(out, e...)
	}
	out = append(out, jpegSegment(0xDB, make([]byte, 65))...)
	out = append(out, jpegSegment(0xDA, []byte{0x01, 0x01, 0x00, 0x00, 0x3F, 0x00})...)
	return append(out, 0x11, 0xFF, 0x00, 0x22, 0xFF, 0xD9)
}

// photoshopSegment wraps IIM bytes and optional other resources in a
// signed APP13 segment.
func photoshopSegment(iim []byte, others ...[]byte) []byte {
	payload := []byte(photoshop.Signature)
	for _, o := range others {
		payload = append(payload, o...)
	}
	if iim != nil {
		payload = photoshop.AppendBlock(payload, "8BIM", photoshop.IPTCResourceID, "", iim)
	}
	return jpegSegment(0xED, payload)
}

func iimBytes(t *testing.T, build func(d *iptc.Data)) []byte {
	t.Helper()
	d := iptc.New()
	build(d)
	b, err := d.Bytes()
	require.NoError(t, err)
	return b
}

func writeTempJPEG(t *testing.T, jpeg []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "image.jpg")
	require.NoError(t, os.WriteFile(path, jpeg, 0644))
	return path
}
