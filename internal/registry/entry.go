package registry

import "strconv"

// Unlimited marks an entry's MaxLength as having no declared cap.
const Unlimited = -1

// Entry is one Spec Registry record: everything known about a TLV type (or
// sub-TLV type, under a given parent) at a given DOCSIS version.
type Entry struct {
	Type               int
	Name               string
	AliasNames         []string
	Description        string
	Kind               ValueKind
	IntroducedVersion  DocsisVersion
	MaxLength          int // Unlimited if uncapped
	Uniqueness         Uniqueness
	RequiredAtTopLevel bool
	Range              *Range      // for integer kinds, when constrained
	EnumTable          []EnumEntry // for KindEnum
	SubSchema          map[int]*Entry
	Synthesized        bool // true for unknown-type placeholders
}

// synthesizeUnknown builds the forward-compatible placeholder entry spec.md
// §4.A requires for types with no registry record: name "Unknown TLV N",
// value_kind hex_bytes, unconstrained.
func synthesizeUnknown(t int) *Entry {
	return &Entry{
		Type:        t,
		Name:        unknownName(t),
		Kind:        KindHexBytes,
		MaxLength:   Unlimited,
		Uniqueness:  Multiple,
		Synthesized: true,
	}
}

func unknownName(t int) string {
	return "Unknown TLV " + strconv.Itoa(t)
}
