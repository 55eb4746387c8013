package codec

import "github.com/go-docsis/docsistlv/internal/docsisfmt"

// ParseOptions tunes Parse's behavior. The zero value is the conservative
// default: no vendor 2-byte lengths, standard nesting cap, no descent into
// vendor-range compound bodies.
type ParseOptions struct {
	// AllowVendorTwoByteLength recognizes the informally-reported vendor
	// length encoding (high bit set, first byte != 0xFF) described in
	// spec.md §9's Open Questions. Off by default.
	AllowVendorTwoByteLength bool

	// MaxNestingDepth caps recursive sub-TLV descent. Zero means use
	// docsisfmt.MaxNestingDepth.
	MaxNestingDepth int

	// DescendVendorCompound, when true, attempts sub-TLV parsing of
	// vendor-range (200-253) TLV bodies that look compound. By default
	// vendor TLVs are preserved as opaque bytes regardless of shape.
	DescendVendorCompound bool
}

func (o ParseOptions) maxDepth() int {
	if o.MaxNestingDepth > 0 {
		return o.MaxNestingDepth
	}
	return docsisfmt.MaxNestingDepth
}

// SerializeOptions tunes Serialize's behavior.
type SerializeOptions struct {
	// PreferMinimalLength ignores each record's recorded LengthForm and
	// always chooses the minimal encoding. Byte-exact round-trip requires
	// leaving this false.
	PreferMinimalLength bool
}
