package valuecoder

import "github.com/go-docsis/docsistlv/internal/registry"

// decodeEnum implements the "enum(table)" value kind: a single byte,
// resolved against table when provided. A value outside the table keeps
// the integer with a warning, per spec.md §4.C, rather than failing.
func decodeEnum(raw []byte, table []registry.EnumEntry) Decoded {
	if len(raw) != 1 {
		return Decoded{Kind: registry.KindEnum, RawFallback: true,
			Warning: "enum value length mismatch: expected 1 byte"}
	}
	v := raw[0]
	for _, e := range table {
		if e.Value == v {
			return Decoded{Kind: registry.KindEnum, Uint: uint64(v), EnumLabel: e.Label}
		}
	}
	d := Decoded{Kind: registry.KindEnum, Uint: uint64(v)}
	if len(table) > 0 {
		d.Warning = "enum value not present in registry table; kept as integer"
	}
	return d
}

func encodeEnum(d Decoded) ([]byte, error) {
	if d.Uint > 0xFF {
		return nil, ErrLengthMismatch
	}
	return []byte{byte(d.Uint)}, nil
}
