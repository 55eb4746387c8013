package valuecoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-docsis/docsistlv/internal/registry"
)

func TestUintRoundTrip(t *testing.T) {
	for _, size := range []int{1, 2, 4} {
		kind := kindForSize(size)
		raw := make([]byte, size)
		raw[size-1] = 7
		d := Decode(kind, raw)
		require.False(t, d.RawFallback)
		assert.EqualValues(t, 7, d.Uint)
		enc, err := Encode(d)
		require.NoError(t, err)
		assert.Equal(t, raw, enc)
	}
}

func TestUintLengthMismatchPreservesRaw(t *testing.T) {
	d := Decode(registry.KindUint16, []byte{1, 2, 3})
	assert.True(t, d.RawFallback)
	assert.NotEmpty(t, d.Warning)
}

func TestIPv4RoundTrip(t *testing.T) {
	raw := []byte{192, 168, 1, 1}
	d := Decode(registry.KindIPv4, raw)
	require.False(t, d.RawFallback)
	assert.Equal(t, "192.168.1.1", d.IP)
	enc, err := Encode(d)
	require.NoError(t, err)
	assert.Equal(t, raw, enc)
}

func TestMACRoundTrip(t *testing.T) {
	raw := []byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}
	d := Decode(registry.KindMAC, raw)
	require.False(t, d.RawFallback)
	assert.Equal(t, "aa:bb:cc:dd:ee:ff", d.MAC)
	enc, err := Encode(d)
	require.NoError(t, err)
	assert.Equal(t, raw, enc)
}

func TestStringNULHandling(t *testing.T) {
	raw := []byte("hello\x00")
	d := Decode(registry.KindString, raw)
	assert.Equal(t, "hello", d.Text)
	assert.True(t, d.HadNUL)
	enc, err := Encode(d)
	require.NoError(t, err)
	assert.Equal(t, raw, enc)
}

func TestStringWithoutNUL(t *testing.T) {
	raw := []byte("hello")
	d := Decode(registry.KindString, raw)
	assert.False(t, d.HadNUL)
	enc, err := Encode(d)
	require.NoError(t, err)
	assert.Equal(t, raw, enc)
}

func TestHexBytesRoundTrip(t *testing.T) {
	raw := []byte{0xde, 0xad, 0xbe}
	d := Decode(registry.KindHexBytes, raw)
	assert.Equal(t, "0xdeadbe", d.HexText)
	enc, err := Encode(d)
	require.NoError(t, err)
	assert.Equal(t, raw, enc)
}

func TestEnumTableLookup(t *testing.T) {
	table := []registry.EnumEntry{{0, "Disabled"}, {1, "Enabled"}}
	d := DecodeEnum([]byte{1}, table)
	assert.Equal(t, "Enabled", d.EnumLabel)

	d2 := DecodeEnum([]byte{9}, table)
	assert.Empty(t, d2.EnumLabel)
	assert.EqualValues(t, 9, d2.Uint)
	assert.NotEmpty(t, d2.Warning)
}
