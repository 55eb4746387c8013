package asn1min

import "math/big"

// DecodeInteger interprets DER INTEGER content (two's-complement,
// big-endian, minimal encoding) as a *big.Int, adapted from
// JesseCoretta-go-asn1plus's decodeIntegerContent.
func DecodeInteger(content []byte) *big.Int {
	val := new(big.Int).SetBytes(content)
	if len(content) > 0 && content[0]&0x80 != 0 {
		bitLen := uint(len(content) * 8)
		twoPow := new(big.Int).Lsh(big.NewInt(1), bitLen)
		val.Sub(val, twoPow)
	}
	return val
}

// EncodeInteger produces the minimal two's-complement DER encoding of i,
// adapted from JesseCoretta-go-asn1plus's encodeIntegerContent.
func EncodeInteger(i *big.Int) []byte {
	if i.Sign() >= 0 {
		b := i.Bytes()
		if len(b) == 0 {
			b = []byte{0}
		}
		if b[0]&0x80 != 0 {
			b = append([]byte{0}, b...)
		}
		return b
	}

	abs := new(big.Int).Abs(i)
	n := (abs.BitLen() + 7) / 8
	min := new(big.Int).Lsh(big.NewInt(1), uint(8*n-1))
	min.Neg(min)
	if i.Cmp(min) < 0 {
		n++
	}
	mod := new(big.Int).Lsh(big.NewInt(1), uint(8*n))
	value := new(big.Int).Add(mod, i)
	return value.Bytes()
}
