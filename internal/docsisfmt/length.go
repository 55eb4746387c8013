package docsisfmt

import "encoding/binary"

// DecodedLength is the result of reading a TLV's length field: the decoded
// byte count, the wire form used, and the number of bytes the length field
// itself occupied (so the caller can advance its cursor).
type DecodedLength struct {
	Length   int
	Form     LengthForm
	FieldLen int
}

// ReadLength decodes a DOCSIS TLV length field starting at b[0], per
// spec.md §4.B:
//
//   - short form:    b[0] != 0xFF (and high bit clear when
//     allowVendorTwoByte is true) -> length = b[0]
//   - extended form: b[0] == 0xFF -> b[1] gives the count N of following
//     big-endian length bytes (1..4); length = big-endian(b[2:2+N])
//   - vendor 2-byte: b[0] != 0xFF, high bit SET -> length is the big-endian
//     uint16 formed from b[0]&0x7F and b[1], only recognized when
//     allowVendorTwoByte is true
//
// Returns ErrTruncated if b is too short, ErrBadLengthEncoding for a
// malformed extended-length prefix, and ErrLengthTooLarge if the decoded
// length would exceed MaxConfigSize.
func ReadLength(b []byte, allowVendorTwoByte bool) (DecodedLength, error) {
	if len(b) < 1 {
		return DecodedLength{}, ErrTruncated
	}

	first := b[0]
	switch {
	case first == 0xFF:
		if len(b) < 2 {
			return DecodedLength{}, ErrTruncated
		}
		n := int(b[1])
		if n < 1 || n > 4 {
			return DecodedLength{}, ErrBadLengthEncoding
		}
		lenBytes, ok := Slice(b, 2, n)
		if !ok {
			return DecodedLength{}, ErrTruncated
		}
		length := beUint(lenBytes)
		if length > MaxConfigSize {
			return DecodedLength{}, ErrLengthTooLarge
		}
		return DecodedLength{Length: length, Form: LengthExtended, FieldLen: 2 + n}, nil

	case allowVendorTwoByte && first&0x80 != 0:
		if len(b) < 2 {
			return DecodedLength{}, ErrTruncated
		}
		length := int(first&0x7F)<<8 | int(b[1])
		return DecodedLength{Length: length, Form: LengthVendorTwoByte, FieldLen: 2}, nil

	default:
		return DecodedLength{Length: int(first), Form: LengthShort, FieldLen: 1}, nil
	}
}

// beUint decodes up to 4 big-endian bytes into an int.
func beUint(b []byte) int {
	var buf [4]byte
	copy(buf[4-len(b):], b)
	return int(binary.BigEndian.Uint32(buf[:]))
}

// WriteLength appends the length-field encoding of n in the given form to
// dst and returns the result. When form requests an encoding that cannot
// represent n (e.g. LengthShort for n >= 0xFF), the minimal extended form is
// used instead.
func WriteLength(dst []byte, n int, form LengthForm) []byte {
	switch form {
	case LengthVendorTwoByte:
		if n <= 0x7FFF {
			return append(dst, byte(0x80|(n>>8)), byte(n))
		}
		form = LengthExtended
	case LengthShort:
		if n < 0xFF {
			return append(dst, byte(n))
		}
		form = LengthExtended
	}

	if form == LengthExtended {
		nb := minLengthBytes(n)
		dst = append(dst, 0xFF, byte(nb))
		for i := nb - 1; i >= 0; i-- {
			dst = append(dst, byte(n>>(8*i)))
		}
		return dst
	}

	return append(dst, byte(n))
}

// minLengthBytes returns the minimal number of big-endian bytes (1..4)
// needed to represent n.
func minLengthBytes(n int) int {
	switch {
	case n <= 0xFF:
		return 1
	case n <= 0xFFFF:
		return 2
	case n <= 0xFFFFFF:
		return 3
	default:
		return 4
	}
}
