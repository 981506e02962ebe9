// file: internal/iptc/tags_test.go
// version: 1.0.0
// guid: d7d11eb9-5dac-46d5-90e5-61123f32ffab

package iptc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupTag(t *testing.T) {
	info, ok := LookupTag(RecordApplication, TagKeywords)
	require.True(t, ok)
	assert.Equal(t, "Keywords", info.Name)
	assert.Equal(t, FormatString, info.Format)
	assert.True(t, info.Repeatable)
	assert.Equal(t, 64, info.MaxBytes)
	assert.Equal(t, "2:025", info.ID())

	_, ok = LookupTag(RecordApplication, 251)
	assert.False(t, ok)
	_, ok = LookupTag(12, 0)
	assert.False(t, ok)
}

func TestFindTagByName(t *testing.T) {
	r, tag, ok := FindTagByName("Caption")
	require.True(t, ok)
	assert.Equal(t, RecordApplication, r)
	assert.Equal(t, TagCaption, tag)

	_, _, ok = FindTagByName("caption")
	assert.False(t, ok, "names are case-sensitive")
	_, _, ok = FindTagByName("NoSuchTag")
	assert.False(t, ok)
}

func TestTags_Ordered(t *testing.T) {
	all := Tags()
	require.Len(t, all, len(tagTable))
	for i := 1; i < len(all); i++ {
		prev, cur := all[i-1], all[i]
		assert.True(t, prev.Record < cur.Record || (prev.Record == cur.Record && prev.Tag < cur.Tag),
			"%s should sort before %s", prev.ID(), cur.ID())
	}
	assert.Equal(t, "ModelVersion", all[0].Name)
	assert.Len(t, TagNames(), len(all))
}

func TestTagTable_Consistent(t *testing.T) {
	seen := map[string]bool{}
	for _, ti := range tagTable {
		assert.False(t, seen[ti.Name], "duplicate tag name %s", ti.Name)
		seen[ti.Name] = true
		assert.LessOrEqual(t, ti.MinBytes, ti.MaxBytes, ti.ID())
		if w := ti.Format.Width(); w > 0 && ti.Record != RecordNewsPhoto {
			assert.Equal(t, w, ti.MaxBytes, "%s integer width", ti.ID())
		}
	}
}

func TestTagNameHelpers(t *testing.T) {
	assert.Equal(t, "CharacterSet", TagName(RecordEnvelope, TagCharacterSet))
	assert.Equal(t, "Caption/Abstract", TagTitle(RecordApplication, TagCaption))
	assert.NotEmpty(t, TagDescription(RecordApplication, TagCaption))
	assert.Empty(t, TagName(RecordApplication, 251))
	assert.Empty(t, TagTitle(RecordApplication, 251))
	assert.Empty(t, TagDescription(RecordApplication, 251))
	assert.Equal(t, "Application", RecordName(RecordApplication))
	assert.Equal(t, "Unknown", RecordName(42))
}

func TestFormat_String(t *testing.T) {
	assert.Equal(t, "NumString", FormatNumericString.String())
	assert.Equal(t, "Unknown", Format(99).String())
	assert.True(t, FormatDate.IsText())
	assert.False(t, FormatBinary.IsText())
	assert.True(t, FormatLong.IsInteger())
	assert.Equal(t, 2, FormatShort.Width())
}
