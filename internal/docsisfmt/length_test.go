package docsisfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLengthShortForm(t *testing.T) {
	dl, err := ReadLength([]byte{0x01, 0xAA}, false)
	require.NoError(t, err)
	assert.Equal(t, 1, dl.Length)
	assert.Equal(t, LengthShort, dl.Form)
	assert.Equal(t, 1, dl.FieldLen)
}

func TestReadLengthExtendedForm(t *testing.T) {
	// 0xFF 0x02 0x01 0x00 -> length 256, using 2 length-bytes.
	dl, err := ReadLength([]byte{0xFF, 0x02, 0x01, 0x00}, false)
	require.NoError(t, err)
	assert.Equal(t, 256, dl.Length)
	assert.Equal(t, LengthExtended, dl.Form)
	assert.Equal(t, 4, dl.FieldLen)
}

func TestReadLengthVendorTwoByteGated(t *testing.T) {
	b := []byte{0x81, 0x00} // high bit set, not 0xFF
	_, err := ReadLength(b, false)
	require.NoError(t, err) // treated as short form (0x81 = 129) when not gated
	dl, err := ReadLength(b, true)
	require.NoError(t, err)
	assert.Equal(t, LengthVendorTwoByte, dl.Form)
	assert.Equal(t, 256, dl.Length)
}

func TestReadLengthTruncated(t *testing.T) {
	_, err := ReadLength(nil, false)
	require.ErrorIs(t, err, ErrTruncated)

	_, err = ReadLength([]byte{0xFF}, false)
	require.ErrorIs(t, err, ErrTruncated)

	_, err = ReadLength([]byte{0xFF, 0x02, 0x01}, false)
	require.ErrorIs(t, err, ErrTruncated)
}

func TestReadLengthBadExtendedCount(t *testing.T) {
	_, err := ReadLength([]byte{0xFF, 0x00}, false)
	require.ErrorIs(t, err, ErrBadLengthEncoding)

	_, err = ReadLength([]byte{0xFF, 0x05, 1, 2, 3, 4, 5}, false)
	require.ErrorIs(t, err, ErrBadLengthEncoding)
}

func TestWriteLengthRoundTrip(t *testing.T) {
	cases := []struct {
		n    int
		form LengthForm
	}{
		{1, LengthShort},
		{254, LengthShort},
		{256, LengthExtended},
		{65536, LengthExtended},
	}
	for _, c := range cases {
		b := WriteLength(nil, c.n, c.form)
		dl, err := ReadLength(b, false)
		require.NoError(t, err)
		assert.Equal(t, c.n, dl.Length)
		assert.Equal(t, len(b), dl.FieldLen)
	}
}

func TestWriteLengthVendorTwoByte(t *testing.T) {
	b := WriteLength(nil, 256, LengthVendorTwoByte)
	dl, err := ReadLength(b, true)
	require.NoError(t, err)
	assert.Equal(t, 256, dl.Length)
	assert.Equal(t, LengthVendorTwoByte, dl.Form)
}
