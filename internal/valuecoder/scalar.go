package valuecoder

import (
	"encoding/binary"

	"github.com/go-docsis/docsistlv/internal/registry"
)

// kindForSize maps a fixed wire width back to its uint ValueKind, used when
// constructing a RawFallback Decoded so callers can tell which kind failed.
func kindForSize(n int) registry.ValueKind {
	switch n {
	case 1:
		return registry.KindUint8
	case 2:
		return registry.KindUint16
	default:
		return registry.KindUint32
	}
}

func decodeUint(raw []byte, size int) Decoded {
	kind := kindForSize(size)
	if len(raw) != size {
		return Decoded{Kind: kind, RawFallback: true,
			Warning: "uint value length mismatch: wire declared a different size"}
	}
	var v uint64
	switch size {
	case 1:
		v = uint64(raw[0])
	case 2:
		v = uint64(binary.BigEndian.Uint16(raw))
	case 4:
		v = uint64(binary.BigEndian.Uint32(raw))
	}
	return Decoded{Kind: kind, Uint: v}
}

func encodeUint(v uint64, size int) ([]byte, error) {
	max := uint64(1)<<(8*size) - 1
	if v > max {
		return nil, ErrLengthMismatch
	}
	b := make([]byte, size)
	switch size {
	case 1:
		b[0] = byte(v)
	case 2:
		binary.BigEndian.PutUint16(b, uint16(v))
	case 4:
		binary.BigEndian.PutUint32(b, uint32(v))
	}
	return b, nil
}
