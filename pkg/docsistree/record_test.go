package docsistree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-docsis/docsistlv/internal/registry"
)

func TestNewScalarRecord(t *testing.T) {
	r := New(2, []byte{5}, registry.V1_0)
	assert.Equal(t, 2, r.Type)
	assert.Equal(t, 1, r.Length())
	require.NotNil(t, r.Metadata)
	assert.Equal(t, "Upstream Channel ID", r.Metadata.Name)
	assert.EqualValues(t, 5, r.Decoded.Uint)
}

func TestEqualIgnoresMetadata(t *testing.T) {
	a := New(2, []byte{5}, registry.V1_0)
	b := New(2, []byte{5}, registry.V3_1) // different version -> may differ in metadata only
	assert.True(t, a.Equal(b))
}

func TestEqualDetectsDifference(t *testing.T) {
	a := New(2, []byte{5}, registry.V1_0)
	b := New(2, []byte{6}, registry.V1_0)
	assert.False(t, a.Equal(b))
}

func TestDeepCopyIndependence(t *testing.T) {
	a := New(2, []byte{5}, registry.V1_0)
	b := a.DeepCopy()
	b.RawValue[0] = 9
	assert.Equal(t, byte(5), a.RawValue[0])
}

func TestNewCompoundDerivesRawValue(t *testing.T) {
	child1 := New(1, []byte{0x00, 0x01}, registry.V1_1)
	child2 := New(7, []byte{0x01}, registry.V1_1)
	c := NewCompound(18, []TlvRecord{child1, child2}, registry.V1_1)
	// Each child's own type+length+value header must be preserved, not just
	// its value payload: type 1 (len 2, value 00 01) then type 7 (len 1,
	// value 01).
	assert.Equal(t, []byte{0x01, 0x02, 0x00, 0x01, 0x07, 0x01, 0x01}, c.RawValue)
	assert.Equal(t, 7, c.Length())
	assert.True(t, c.IsCompound())
}

func TestFirstAllRequire(t *testing.T) {
	records := []TlvRecord{
		New(1, []byte{0, 0, 0, 1}, registry.V1_0),
		New(17, []byte{1, 2, 3, 4, 5, 6}, registry.V1_0),
		New(17, []byte{6, 5, 4, 3, 2, 1}, registry.V1_0),
	}
	first, ok := First(records, 17)
	require.True(t, ok)
	assert.Equal(t, "01:02:03:04:05:06", first.Decoded.MAC)

	all := All(records, 17)
	assert.Len(t, all, 2)

	_, ok = Require(records, 99)
	assert.False(t, ok)
}

func TestDiff(t *testing.T) {
	a := DocsisFile{New(2, []byte{5}, registry.V1_0)}
	b := DocsisFile{New(2, []byte{6}, registry.V1_0), New(20, []byte{1}, registry.V1_0)}

	deltas := Diff(a, b)
	require.Len(t, deltas, 2)
	assert.Equal(t, DeltaChanged, deltas[0].Kind)
	assert.Equal(t, DeltaAdded, deltas[1].Kind)
}
