package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfoKnownType(t *testing.T) {
	e := Info(1)
	require.NotNil(t, e)
	assert.Equal(t, "Downstream Frequency", e.Name)
	assert.Equal(t, KindUint32, e.Kind)
	assert.False(t, e.Synthesized)
}

func TestInfoUnknownTypeSynthesized(t *testing.T) {
	e := Info(250 - 1) // 249 is within vendor range but not in table; still synthesized by Info
	require.NotNil(t, e)

	// 100 has no table entry at all (unlike 77, which is registered so the
	// validator's version-mismatch scenario has a real type to gate against).
	e2 := Info(100)
	require.NotNil(t, e2)
	assert.True(t, e2.Synthesized)
	assert.Equal(t, "Unknown TLV 100", e2.Name)
	assert.Equal(t, KindHexBytes, e2.Kind)
	_ = e
}

func TestInfoSubKnownAndUnknown(t *testing.T) {
	e := InfoSub(18, 1)
	require.NotNil(t, e)
	assert.Equal(t, "Service Flow Reference", e.Name)

	unk := InfoSub(18, 99)
	assert.True(t, unk.Synthesized)

	unkParent := InfoSub(5, 1)
	assert.True(t, unkParent.Synthesized)
}

func TestSupportedTypesRespectsVersion(t *testing.T) {
	types10 := SupportedTypes(V1_0)
	types30 := SupportedTypes(V3_0)
	assert.Contains(t, types10, 1)
	assert.NotContains(t, types10, 18) // introduced 1.1
	assert.Contains(t, types30, 18)
	assert.Contains(t, types30, 65)
}

func TestIsVendor(t *testing.T) {
	assert.True(t, IsVendor(200))
	assert.True(t, IsVendor(253))
	assert.False(t, IsVendor(199))
	assert.False(t, IsVendor(254))
}

func TestDocsisVersionCompare(t *testing.T) {
	assert.Equal(t, -1, V1_0.Compare(V1_1))
	assert.Equal(t, 0, V2_0.Compare(V2_0))
	assert.Equal(t, 1, V3_1.Compare(V1_0))
	assert.Equal(t, "3.1", V3_1.String())
}
