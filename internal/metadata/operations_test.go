// file: internal/metadata/operations_test.go
// version: 1.0.0
// guid: 60458f0d-c958-40de-817f-bd4d65ba718a

package metadata

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdfalk/iptc-organizer/internal/iptc"
)

func mustOps(t *testing.T, pairs ...string) []Operation {
	t.Helper()
	require.Zero(t, len(pairs)%2)
	var ops []Operation
	for i := 0; i < len(pairs); i += 2 {
		op, err := ParseOperation(pairs[i], pairs[i+1])
		require.NoError(t, err)
		ops = append(ops, op)
	}
	return ops
}

func values(d *iptc.Data) []string {
	var out []string
	for _, ds := range d.DataSets() {
		out = append(out, FormatTagID(ds.Record(), ds.Tag())+"="+ds.Text(0))
	}
	return out
}

func TestParseOperation(t *testing.T) {
	op, err := ParseOperation("add", "Caption=Hello = world")
	require.NoError(t, err)
	assert.Equal(t, Operation{Kind: OpAdd, Record: 2, Tag: 120, Value: "Hello = world"}, op)
	assert.Equal(t, "add 2:120=Hello = world", op.String())

	op, err = ParseOperation("delete", "2:25#2")
	require.NoError(t, err)
	assert.Equal(t, Operation{Kind: OpDelete, Record: 2, Tag: 25, Skip: 2, Anchored: true}, op)
	assert.Equal(t, "delete 2:025#2", op.String())
	assert.True(t, op.Modifies())

	op, err = ParseOperation("p", "Keywords")
	require.NoError(t, err)
	assert.Equal(t, OpPrint, op.Kind)
	assert.False(t, op.Modifies())

	_, err = ParseOperation("add", "Caption")
	assert.Error(t, err, "add needs a value")
	_, err = ParseOperation("frobnicate", "Caption")
	assert.Error(t, err)
	_, err = ParseOperation("delete", "Captoin")
	assert.ErrorIs(t, err, iptc.ErrNotFound)
	_, err = ParseOperation("delete", "Keywords#x")
	assert.Error(t, err)
}

func TestApply_AddAppendsAndSetsUTF8(t *testing.T) {
	d := iptc.New()
	res, err := Apply(d, mustOps(t,
		"add", "Keywords=a",
		"add", "Keywords=b",
		"add", "RecordVersion=4",
	), nil)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Added)
	assert.True(t, res.Changed())
	assert.False(t, res.EncodingWarning)

	assert.Equal(t, iptc.EncodingUTF8, d.Encoding())
	assert.Equal(t, []string{"1:090=1b 25 47", "2:025=a", "2:025=b", "2:000=4"}, values(d))
}

func TestApply_AnchoredAdd(t *testing.T) {
	d := iptc.New()
	_, err := Apply(d, mustOps(t,
		"add", "Keywords=a",
		"add", "Keywords=c",
		"add", "Keywords#1=b",
	), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"1:090=1b 25 47", "2:025=a", "2:025=b", "2:025=c"}, values(d))
}

func TestApply_ModifyKeepsPosition(t *testing.T) {
	d := iptc.New()
	for _, kw := range []string{"a", "b", "c"} {
		_, err := d.AddWithData(iptc.RecordApplication, iptc.TagKeywords, []byte(kw), true)
		require.NoError(t, err)
	}
	res, err := Apply(d, mustOps(t, "modify", "Keywords#1=B"), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Modified)
	assert.Equal(t, []string{"1:090=1b 25 47", "2:025=a", "2:025=B", "2:025=c"}, values(d))

	_, err = Apply(d, mustOps(t, "modify", "Caption=x"), nil)
	assert.ErrorIs(t, err, iptc.ErrNotFound, "modify needs an existing dataset")
}

func TestApply_DeleteAndPrint(t *testing.T) {
	d := iptc.New()
	for _, kw := range []string{"a", "b", "c"} {
		_, err := d.AddWithData(iptc.RecordApplication, iptc.TagKeywords, []byte(kw), true)
		require.NoError(t, err)
	}

	var out bytes.Buffer
	res, err := Apply(d, mustOps(t,
		"print", "Keywords#2",
		"delete", "Keywords#1",
		"print", "Keywords#1",
	), &out)
	require.NoError(t, err)
	assert.Equal(t, "cc", out.String())
	assert.Equal(t, 1, res.Deleted)
	assert.Equal(t, 2, res.Printed)
	assert.Equal(t, []string{"2:025=a", "2:025=c"}, values(d), "no string added, no marker")

	_, err = Apply(d, mustOps(t, "delete", "Keywords#5"), nil)
	assert.ErrorIs(t, err, iptc.ErrNotFound)
}

func TestApply_StopsAtFirstFailure(t *testing.T) {
	d := iptc.New()
	res, err := Apply(d, mustOps(t,
		"add", "Caption=first",
		"delete", "Headline",
		"add", "Caption=never",
	), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "operation 2")
	assert.Equal(t, 1, res.Added)
	assert.Equal(t, []string{"2:120=first"}, values(d))
}

func TestApply_Validation(t *testing.T) {
	d := iptc.New()
	_, err := Apply(d, mustOps(t, "add", "CountryCode=TOOLONG"), nil)
	assert.ErrorIs(t, err, iptc.ErrValidation)
	assert.Equal(t, 0, d.Len())

	_, err = Apply(d, mustOps(t, "add", "RecordVersion=four"), nil)
	assert.ErrorIs(t, err, iptc.ErrValidation)

	res, err := ApplyWith(d, mustOps(t, "add", "CountryCode=TOOLONG"), ApplyOptions{NoValidate: true})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Added)
}

func TestApply_EncodingWarning(t *testing.T) {
	d := iptc.New()
	_, err := d.AddWithData(iptc.RecordEnvelope, iptc.TagCharacterSet, []byte{0x1B, 0x2D, 0x41}, true)
	require.NoError(t, err)

	res, err := Apply(d, mustOps(t, "add", "City=Zürich"), nil)
	require.NoError(t, err)
	assert.True(t, res.EncodingWarning)
	assert.Equal(t, iptc.EncodingOther, d.Encoding(), "existing declaration is kept")

	res, err = Apply(iptc.New(), mustOps(t, "add", "DateCreated=20240101"), nil)
	require.NoError(t, err)
	assert.False(t, res.EncodingWarning)
}

func TestApply_Sort(t *testing.T) {
	d := iptc.New()
	_, err := ApplyWith(d, mustOps(t,
		"add", "Caption=c",
		"add", "Keywords=k",
		"add", "RecordVersion=4",
	), ApplyOptions{Sort: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"1:090=1b 25 47", "2:000=4", "2:025=k", "2:120=c"}, values(d))
}
