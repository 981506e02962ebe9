// file: cmd/root_test.go
// version: 2.0.0
// guid: 7eae8d0c-7fda-4f45-8f73-5d1e0c7c9f1a

package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdfalk/iptc-organizer/internal/config"
	"github.com/jdfalk/iptc-organizer/internal/iptc"
	"github.com/jdfalk/iptc-organizer/internal/jpegsegs"
)

func jpegSegment(marker byte, payload []byte) []byte {
	out := []byte{0xFF, marker, byte((len(payload) + 2) >> 8), byte(len(payload) + 2)}
	return append(out, payload...)
}

// testJPEG is a minimal JFIF image with a quantisation table and a short
// scan.
func testJPEG() []byte {
	out := []byte{0xFF, 0xD8}
	out = append(out, jpegSegment(0xE0, []byte("JFIF\x00\x01\x01\x00\x00\x01\x00\x01\x00\x00"))...)
	out = append(out, jpegSegment(0xDB, make([]byte, 65))...)
	out = append(out, jpegSegment(0xDA, []byte{0x01, 0x01, 0x00, 0x00, 0x3F, 0x00})...)
	return append(out, 0x12, 0x34, 0xFF, 0xD9)
}

func writeTestJPEG(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, testJPEG(), 0o644))
	return path
}

// execute runs a fresh command tree with an isolated home directory and
// viper state.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	viper.Reset()
	origConfig := config.AppConfig
	t.Cleanup(func() {
		viper.Reset()
		config.AppConfig = origConfig
	})

	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, ExitOK},
		{errors.New("boom"), ExitError},
		{fmt.Errorf("wrapped: %w", iptc.ErrValidation), ExitValidation},
		{fmt.Errorf("wrapped: %w", iptc.ErrNotFound), ExitNotFound},
		{jpegsegs.ErrNotJPEG, ExitBadImage},
		{fmt.Errorf("x: %w", iptc.ErrFormat), ExitBadImage},
		{fmt.Errorf("read: %w", os.ErrNotExist), ExitIO},
		{errors.Join(errors.New("a"), iptc.ErrNotFound), ExitNotFound},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExitCode(tt.err), "error %v", tt.err)
	}
}

func TestRoot_RejectsInvalidConfig(t *testing.T) {
	_, _, err := execute(t, "--format", "xml", "tags")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output_format")
}

func TestRoot_ReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("output_format: json\n"), 0o600))
	img := writeTestJPEG(t, dir, "a.jpg")

	stdout, _, err := execute(t, "--config", cfgPath, "show", img)
	require.NoError(t, err)
	assert.Contains(t, stdout, `"has_iptc": false`)
}

func TestRoot_EnvironmentOverride(t *testing.T) {
	img := writeTestJPEG(t, t.TempDir(), "a.jpg")
	t.Setenv("IPTC_OUTPUT_FORMAT", "yaml")

	stdout, _, err := execute(t, "show", img)
	require.NoError(t, err)
	assert.Contains(t, stdout, "has_iptc: false")
}
