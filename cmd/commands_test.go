// file: cmd/commands_test.go
// version: 2.0.0
// guid: f27525ff-0e28-412d-9bca-febb29bb91d0

package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jdfalk/iptc-organizer/internal/config"
	"github.com/jdfalk/iptc-organizer/internal/iptc"
	"github.com/jdfalk/iptc-organizer/internal/metadata"
	"github.com/jdfalk/iptc-organizer/internal/server/middleware"
)

func TestTags(t *testing.T) {
	stdout, _, err := execute(t, "tags")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(stdout, "\n"), "\n")
	assert.Len(t, lines, len(iptc.Tags())+2)
	assert.Contains(t, stdout, " 2:120 Caption\n")

	stdout, _, err = execute(t, "tags", "--search", "keywrd")
	require.NoError(t, err)
	assert.Equal(t, " 2:025 Keywords\n", stdout)

	_, _, err = execute(t, "tags", "--search", "zzzz")
	assert.Equal(t, ExitNotFound, ExitCode(err))
}

func TestDescribe(t *testing.T) {
	stdout, _, err := execute(t, "describe", "Caption", "2:025")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, " 2:120 Caption\n"))
	assert.Contains(t, stdout, "Length:     0..2000 bytes")
	assert.Contains(t, stdout, " 2:025 Keywords\n")
	assert.Contains(t, stdout, "Repeatable: true")

	_, _, err = execute(t, "describe", "Captoin")
	assert.Equal(t, ExitNotFound, ExitCode(err))

	_, _, err = execute(t, "describe", "2:251")
	assert.Equal(t, ExitNotFound, ExitCode(err))
}

func TestSegments(t *testing.T) {
	img := writeTestJPEG(t, t.TempDir(), "photo.jpg")

	stdout, _, err := execute(t, "segments", img)
	require.NoError(t, err)
	assert.Equal(t, "SOI\nAPP0, 14 bytes\nDQT, 65 bytes\nSOS, 6 bytes\n4 bytes of image data\n", stdout)

	_, _, err = execute(t, "-q", "edit", "-a", "Caption=Foo", img)
	require.NoError(t, err)

	stdout, _, err = execute(t, "segments", img)
	require.NoError(t, err)
	lines := strings.Split(stdout, "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, "SOI", lines[0])
	assert.Contains(t, lines[1], "APP13")
	assert.Contains(t, lines[1], "(Photoshop 3.0)")
	assert.Contains(t, lines[2], "8BIM 0x0404 IPTC-NAA")
	assert.Equal(t, "APP0, 14 bytes", lines[3])
}

func TestSegments_NotJPEG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.jpg")
	require.NoError(t, os.WriteFile(path, []byte("plain text"), 0o644))

	_, _, err := execute(t, "segments", path)
	assert.Equal(t, ExitBadImage, ExitCode(err))
}

func TestConfigInitShowSet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	stdout, _, err := execute(t, "--config", path, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, stdout, path)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	_, _, err = execute(t, "--config", path, "config", "init")
	assert.ErrorIs(t, err, config.ErrConfigExists)

	_, _, err = execute(t, "--config", path, "config", "set", "server.port", "9000")
	require.NoError(t, err)

	stdout, _, err = execute(t, "--config", path, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "port: 9000")

	_, _, err = execute(t, "--config", path, "config", "set", "colour", "blue")
	assert.ErrorIs(t, err, config.ErrUnknownSetting)

	_, _, err = execute(t, "--config", path, "config", "set", "output_format", "xml")
	assert.Error(t, err)

	_, _, err = execute(t, "--config", path, "config", "init", "--force")
	assert.NoError(t, err)
}

func TestConfigSet_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	_, _, err := execute(t, "--config", path, "config", "set", "backup", "true")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "backup: true")
}

func TestConfigHashPassword(t *testing.T) {
	stdout, _, err := execute(t, "config", "hash-password", "secret")
	require.NoError(t, err)
	hash := strings.TrimSpace(stdout)
	assert.True(t, middleware.IsPasswordHash(hash))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("secret")))
}

func TestRunWatch(t *testing.T) {
	dir := t.TempDir()
	ops := []metadata.Operation{}
	for _, arg := range []string{"Byline=Jane Doe", "Keywords=incoming"} {
		op, err := metadata.ParseOperation("add", arg)
		require.NoError(t, err)
		ops = append(ops, op)
	}

	cfg := config.Config{
		OutputFormat:    "table",
		VerifyChecksums: true,
		Quiet:           true,
		Watch:           config.WatchConfig{Debounce: 50 * time.Millisecond},
	}
	var out, errOut bytes.Buffer
	e, err := newEditor(cfg, ops, &out, &errOut)
	require.NoError(t, err)
	e.showTable = false

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- runWatch(ctx, dir, e) }()

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)
	img := writeTestJPEG(t, dir, "new.jpg")

	require.Eventually(t, func() bool {
		doc, err := metadata.ReadFile(img)
		return err == nil && doc.Data != nil && doc.Data.Len() == 3
	}, 3*time.Second, 50*time.Millisecond)

	// The rewrite must not be edited a second time.
	time.Sleep(300 * time.Millisecond)
	doc, err := metadata.ReadFile(img)
	require.NoError(t, err)
	assert.Equal(t, 3, doc.Data.Len())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("runWatch did not return after cancel")
	}
}

func TestRunWatch_RequiresDirectory(t *testing.T) {
	img := writeTestJPEG(t, t.TempDir(), "photo.jpg")
	e, err := newEditor(config.Config{}, nil, &bytes.Buffer{}, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Error(t, runWatch(context.Background(), img, e))
	assert.Error(t, runWatch(context.Background(), filepath.Join(t.TempDir(), "missing"), e))
}

func TestWatch_NeedsOperations(t *testing.T) {
	_, _, err := execute(t, "watch", t.TempDir())
	assert.ErrorIs(t, err, errNoOperations)
}
