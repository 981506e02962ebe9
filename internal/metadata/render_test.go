// file: internal/metadata/render_test.go
// version: 1.0.0
// guid: 7e9b5f42-4e4e-43cf-be67-13b1e95e7591

package metadata

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jdfalk/iptc-organizer/internal/iptc"
)

func sampleData(t *testing.T) *iptc.Data {
	t.Helper()
	d := iptc.New()
	_, err := d.AddWithValue(iptc.RecordApplication, iptc.TagRecordVersion, 4, true)
	require.NoError(t, err)
	_, err = d.AddWithData(iptc.RecordApplication, iptc.TagCaption, []byte("Foo"), true)
	require.NoError(t, err)
	_, err = d.AddWithData(iptc.RecordEnvelope, iptc.TagCharacterSet, iptc.UTF8Marker, true)
	require.NoError(t, err)
	return d
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, sampleData(t)))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "   Tag Name                 Type        Size  Value", lines[0])
	assert.Equal(t, " ----- -------------------- --------- ------  -----", lines[1])
	assert.Equal(t, " 2:000 Record Version       Short          2  4", lines[2])
	assert.Equal(t, " 2:120 Caption/Abstract     String         3  Foo", lines[3])
	assert.Equal(t, " 1:090 Coded Character Set  Binary         3  1b 25 47", lines[4])
}

func TestWriteTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, nil))
	assert.Equal(t, "No IPTC data found\n", buf.String())

	buf.Reset()
	require.NoError(t, WriteTable(&buf, iptc.New()))
	assert.Empty(t, buf.String())
}

func TestWriteTableCharset_Fallback(t *testing.T) {
	d := iptc.New()
	_, err := d.AddWithData(iptc.RecordApplication, 90, []byte{0x80}, true)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteTableCharset(&buf, d, charmap.Windows1252))
	assert.Contains(t, buf.String(), "€")
}

func TestEntries(t *testing.T) {
	entries := Entries(sampleData(t), nil)
	require.Len(t, entries, 3)
	assert.Equal(t, Entry{
		ID: "2:120", Record: 2, Tag: 120, Name: "Caption", Title: "Caption/Abstract",
		Format: "String", Size: 3, Value: "Foo",
	}, entries[1])
	assert.Equal(t, []Entry{}, Entries(nil, nil))
}

func TestWriteTagList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTagList(&buf))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "   Tag Name\n ----- --------------------\n 1:000 ModelVersion\n"))
	assert.Contains(t, out, " 2:120 Caption\n")
	assert.Equal(t, len(iptc.Tags())+2, strings.Count(out, "\n"))
}

func TestWriteTagInfo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTagInfo(&buf, iptc.RecordApplication, iptc.TagKeywords, true))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, " 2:025 Keywords\n\n"))
	assert.Contains(t, out, "Repeatable: true")
	assert.Contains(t, out, "Length:     0..64 bytes")

	err := WriteTagInfo(&buf, iptc.RecordApplication, 251, false)
	assert.ErrorIs(t, err, iptc.ErrNotFound)
}
