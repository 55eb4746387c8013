// Package registry is the static Spec Registry: a read-only database
// mapping TLV type (and, for compound TLVs, parent/sub-TLV type) to name,
// value kind, introduced version, and constraints. It never fails a
// lookup — an unrecognized type yields a synthesized entry so unknown TLVs
// still round-trip byte-exact.
package registry

// DocsisVersion is an ordered DOCSIS specification revision.
type DocsisVersion uint8

const (
	V1_0 DocsisVersion = iota
	V1_1
	V2_0
	V3_0
	V3_1
)

var versionNames = map[DocsisVersion]string{
	V1_0: "1.0",
	V1_1: "1.1",
	V2_0: "2.0",
	V3_0: "3.0",
	V3_1: "3.1",
}

// String returns the human-readable DOCSIS version label.
func (v DocsisVersion) String() string {
	if s, ok := versionNames[v]; ok {
		return s
	}
	return "unknown"
}

// Compare returns -1, 0, or 1 as v is before, equal to, or after o.
func (v DocsisVersion) Compare(o DocsisVersion) int {
	switch {
	case v < o:
		return -1
	case v > o:
		return 1
	default:
		return 0
	}
}

// ParseVersion maps a dotted version string to a DocsisVersion.
func ParseVersion(s string) (DocsisVersion, bool) {
	for v, name := range versionNames {
		if name == s {
			return v, true
		}
	}
	return 0, false
}
