package registry

// ValueKind enumerates the scalar and structural interpretations a TLV's
// raw bytes may carry, per spec.md §4.A/§4.C.
type ValueKind uint8

const (
	KindUint8 ValueKind = iota
	KindUint16
	KindUint32
	KindString
	KindIPv4
	KindIPv6
	KindMAC
	KindHexBytes
	KindEnum
	KindCompound
	KindASN1
)

var kindNames = [...]string{
	KindUint8:    "uint8",
	KindUint16:   "uint16",
	KindUint32:   "uint32",
	KindString:   "string",
	KindIPv4:     "ipv4",
	KindIPv6:     "ipv6",
	KindMAC:      "mac",
	KindHexBytes: "hex_bytes",
	KindEnum:     "enum",
	KindCompound: "compound",
	KindASN1:     "asn1",
}

// String returns the declared value_kind label from spec.md §4.A's table.
func (k ValueKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Uniqueness describes whether a top-level TLV may repeat.
type Uniqueness uint8

const (
	Multiple Uniqueness = iota
	Single
)

// EnumEntry is one labeled value in an enum(table) constraint.
type EnumEntry struct {
	Value uint8
	Label string
}

// Range is an inclusive numeric range constraint for integer value kinds.
type Range struct {
	Min, Max int64
}
