// Package valuecoder implements the Value Coder (spec.md §4.C): the
// encode/decode pair for each declared TLV value kind. Decode never fails
// the overall parse — on a length or constraint mismatch it preserves the
// raw bytes and reports a warning, per spec.md's decode-failure policy.
package valuecoder

import (
	"github.com/go-docsis/docsistlv/internal/asn1min"
	"github.com/go-docsis/docsistlv/internal/registry"
)

// Decoded is the sum type over every value kind a TLV may carry. Exactly
// one group of fields is meaningful, selected by Kind; RawFallback
// indicates decode failed and the raw bytes (kept by the caller, not
// duplicated here) are the only valid representation.
type Decoded struct {
	Kind registry.ValueKind

	Uint      uint64 // uint8/uint16/uint32, and the integer form of enum
	Text      string // string kind, decoded UTF-8 (NFC-normalized)
	HadNUL    bool   // string kind: whether the wire form carried a trailing NUL
	HexText   string // hex_bytes kind, lowercase "0x..."
	IP        string // ipv4/ipv6 kind, canonical text form
	MAC       string // mac kind, "aa:bb:cc:dd:ee:ff"
	EnumLabel string // enum kind: table label, if recognized
	ASN1      *asn1min.Node

	RawFallback bool
	Warning     string
}

// Decode interprets raw according to kind, never failing: a mismatch
// between raw's length/content and kind's requirements yields a
// RawFallback Decoded with a human-readable Warning instead of an error.
func Decode(kind registry.ValueKind, raw []byte) Decoded {
	switch kind {
	case registry.KindUint8:
		return decodeUint(raw, 1)
	case registry.KindUint16:
		return decodeUint(raw, 2)
	case registry.KindUint32:
		return decodeUint(raw, 4)
	case registry.KindString:
		return decodeString(raw)
	case registry.KindIPv4:
		return decodeIP(raw, 4)
	case registry.KindIPv6:
		return decodeIP(raw, 16)
	case registry.KindMAC:
		return decodeMAC(raw)
	case registry.KindEnum:
		return decodeEnum(raw, nil)
	case registry.KindASN1:
		return decodeASN1(raw)
	case registry.KindCompound:
		// Children are decoded by the codec, not here; the compound's own
		// raw bytes still get a hex_bytes-shaped preview for callers that
		// inspect Decoded before walking Children.
		d := decodeHex(raw)
		d.Kind = registry.KindCompound
		return d
	case registry.KindHexBytes:
		fallthrough
	default:
		return decodeHex(raw)
	}
}

// DecodeEnum is like Decode for KindEnum but additionally resolves raw's
// single byte against table, setting EnumLabel when found.
func DecodeEnum(raw []byte, table []registry.EnumEntry) Decoded {
	return decodeEnum(raw, table)
}

// Encode produces the wire bytes for d, enforcing kind's length
// constraints. Unlike Decode, Encode can fail: spec.md §4.C requires
// encode-time constraint violations to propagate as a generation error.
func Encode(d Decoded) ([]byte, error) {
	switch d.Kind {
	case registry.KindUint8:
		return encodeUint(d.Uint, 1)
	case registry.KindUint16:
		return encodeUint(d.Uint, 2)
	case registry.KindUint32:
		return encodeUint(d.Uint, 4)
	case registry.KindString:
		return encodeString(d)
	case registry.KindIPv4:
		return encodeIP(d.IP, 4)
	case registry.KindIPv6:
		return encodeIP(d.IP, 16)
	case registry.KindMAC:
		return encodeMAC(d.MAC)
	case registry.KindEnum:
		return encodeEnum(d)
	case registry.KindASN1:
		return encodeASN1(d)
	case registry.KindHexBytes:
		fallthrough
	default:
		return encodeHex(d.HexText)
	}
}
