package registry

import (
	"sort"

	"github.com/go-docsis/docsistlv/internal/docsisfmt"
)

// Info returns the registry entry for a top-level TLV type. Unknown types
// never fail lookup: a synthesized hex_bytes entry is returned instead, per
// spec.md §4.A's forward-compatibility design.
//
// The version argument is accepted for symmetry with InfoSub and future
// per-version entry variants, but the current table has no type whose
// shape (as opposed to mere introduced-version gating) differs across
// DOCSIS revisions.
func Info(tlvType int, _ ...DocsisVersion) *Entry {
	if e, ok := table[tlvType]; ok {
		return e
	}
	return synthesizeUnknown(tlvType)
}

// InfoSub returns the registry entry for a sub-TLV nested under parentType,
// again never failing: unknown sub-TLVs are synthesized the same way as
// unknown top-level TLVs.
func InfoSub(parentType, subType int, _ ...DocsisVersion) *Entry {
	parent, ok := table[parentType]
	if !ok || parent.SubSchema == nil {
		return synthesizeUnknown(subType)
	}
	if e, ok := parent.SubSchema[subType]; ok {
		return e
	}
	return synthesizeUnknown(subType)
}

// SupportedTypes returns, in ascending type order, every top-level TLV type
// whose IntroducedVersion is at or before version.
func SupportedTypes(version DocsisVersion) []int {
	var types []int
	for t, e := range table {
		if e.IntroducedVersion.Compare(version) <= 0 {
			types = append(types, t)
		}
	}
	sort.Ints(types)
	return types
}

// IsVendor reports whether t is in the 200-253 vendor-specific range.
func IsVendor(t int) bool {
	return docsisfmt.IsVendorType(t)
}
