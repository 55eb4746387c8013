package valuecoder

import (
	"github.com/go-docsis/docsistlv/internal/asn1min"
	"github.com/go-docsis/docsistlv/internal/registry"
)

// decodeASN1 implements the "asn1" value kind (PacketCable TLV 64
// payloads): parse DER, or degrade to hex_bytes-style preservation on
// failure, per spec.md §4.C's table and §9's design note.
func decodeASN1(raw []byte) Decoded {
	node, err := asn1min.Parse(raw)
	if err != nil {
		d := decodeHex(raw)
		d.Kind = registry.KindASN1
		d.RawFallback = true
		d.Warning = "ASN.1 payload failed to parse; degraded to hex preservation: " + err.Error()
		return d
	}
	return Decoded{Kind: registry.KindASN1, ASN1: node}
}

func encodeASN1(d Decoded) ([]byte, error) {
	if d.ASN1 == nil {
		return encodeHex(d.HexText)
	}
	return asn1min.Encode(d.ASN1), nil
}
