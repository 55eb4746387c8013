package docsistree

import (
	"github.com/go-docsis/docsistlv/internal/docsisfmt"
	"github.com/go-docsis/docsistlv/internal/registry"
	"github.com/go-docsis/docsistlv/internal/valuecoder"
)

// New constructs a top-level scalar TlvRecord of the given type from raw
// bytes, looking up metadata and decoding the value via the registry and
// value coder. version is passed to the registry lookup, which returns the
// same entry for every version.
func New(tlvType int, raw []byte, version registry.DocsisVersion) TlvRecord {
	return newWithMeta(tlvType, raw, registry.Info(tlvType, version))
}

// NewSub constructs a sub-TLV record nested under parentType, resolving
// metadata from the parent's sub-schema (registry.InfoSub) rather than the
// top-level table — a TLV 18 child of type 1 means something different
// from a top-level TLV 1.
func NewSub(parentType, tlvType int, raw []byte, version registry.DocsisVersion) TlvRecord {
	return newWithMeta(tlvType, raw, registry.InfoSub(parentType, tlvType, version))
}

func newWithMeta(tlvType int, raw []byte, meta *registry.Entry) TlvRecord {
	return TlvRecord{
		Type:     tlvType,
		RawValue: append([]byte(nil), raw...),
		Decoded:  decodeForEntry(meta, raw),
		Metadata: meta,
	}
}

// NewCompound constructs a top-level compound TlvRecord from its
// already-built children; RawValue is derived by re-serializing each child
// in full (type, length, value) and concatenating the results, per spec.md
// §3 invariant 2.
func NewCompound(tlvType int, children []TlvRecord, version registry.DocsisVersion) TlvRecord {
	return newCompoundWithMeta(tlvType, children, registry.Info(tlvType, version))
}

// NewSubCompound constructs a compound sub-TLV nested under parentType,
// resolving metadata the same way NewSub does for scalars.
func NewSubCompound(parentType, tlvType int, children []TlvRecord, version registry.DocsisVersion) TlvRecord {
	return newCompoundWithMeta(tlvType, children, registry.InfoSub(parentType, tlvType, version))
}

func newCompoundWithMeta(tlvType int, children []TlvRecord, meta *registry.Entry) TlvRecord {
	var raw []byte
	for _, c := range children {
		raw = append(raw, serializeChild(c)...)
	}
	return TlvRecord{
		Type:     tlvType,
		RawValue: raw,
		Children: children,
		Metadata: meta,
		Decoded:  valuecoder.Decoded{Kind: registry.KindCompound},
	}
}

// serializeChild renders a single child record back to its own wire bytes
// (type, length, value), recursing into grandchildren for nested compound
// records, so a compound's RawValue is the byte-exact concatenation of its
// children's serialized forms per spec.md §3 invariant 2.
func serializeChild(c TlvRecord) []byte {
	out := []byte{byte(c.Type)}

	if c.Type == docsisfmt.TypeEnd || c.Type == docsisfmt.TypePad {
		return out
	}

	value := c.RawValue
	if c.IsCompound() {
		value = nil
		for _, gc := range c.Children {
			value = append(value, serializeChild(gc)...)
		}
	}

	out = docsisfmt.WriteLength(out, len(value), c.LengthForm)
	return append(out, value...)
}

func decodeForEntry(meta *registry.Entry, raw []byte) valuecoder.Decoded {
	if meta.Kind == registry.KindEnum {
		return valuecoder.DecodeEnum(raw, meta.EnumTable)
	}
	return valuecoder.Decode(meta.Kind, raw)
}
