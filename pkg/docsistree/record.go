// Package docsistree implements the Semantic Tree (spec.md §4.D): the
// in-memory TlvRecord representation produced by the codec and consumed by
// the validator, the MIC engine, and external text-format collaborators.
//
// Records are immutable in principle: every mutating-looking helper in this
// package returns a new value rather than editing in place, grounded on the
// teacher's pkg/ast tree-builder pattern (the hive's key/value tree is
// small enough that structural sharing isn't worth the complexity either).
package docsistree

import (
	"github.com/go-docsis/docsistlv/internal/docsisfmt"
	"github.com/go-docsis/docsistlv/internal/registry"
	"github.com/go-docsis/docsistlv/internal/valuecoder"
)

// TlvRecord is the unit entity of spec.md §3: a single TLV, with its raw
// wire bytes, its decoded value, its ordered children (non-empty iff
// compound), and registry-sourced metadata that is never part of its
// identity.
type TlvRecord struct {
	Type     int
	RawValue []byte
	Decoded  valuecoder.Decoded
	Children []TlvRecord

	// Metadata is sourced by Spec Registry lookup; it is descriptive only
	// and is excluded from Equal and from the wire format.
	Metadata *registry.Entry

	// LengthForm records which wire length-encoding produced RawValue's
	// length field, so Serialize can reproduce it byte-exact.
	LengthForm docsisfmt.LengthForm

	// Warning carries a non-fatal parse-time annotation: a sub-TLV parse
	// that fell back to opaque preservation, or a value-decode failure
	// that fell back to RawFallback. Empty when parsing produced no
	// warning for this record.
	Warning string
}

// DocsisFile is the ordered top-level sequence of TlvRecords that makes up
// one configuration, per spec.md §3 ("Order is semantically significant").
type DocsisFile []TlvRecord

// Length returns the wire byte count of RawValue, satisfying spec.md §3
// invariant 1 (length == byte_length(raw_value)) by construction.
func (r TlvRecord) Length() int { return len(r.RawValue) }

// IsCompound reports whether this record carries sub-TLV children.
func (r TlvRecord) IsCompound() bool { return len(r.Children) > 0 }

// Equal implements spec.md §4.D's structural equality predicate: it
// compares by (type, raw_value, children) only. Metadata, LengthForm and
// Warning are deliberately excluded.
func (r TlvRecord) Equal(o TlvRecord) bool {
	if r.Type != o.Type || len(r.RawValue) != len(o.RawValue) || len(r.Children) != len(o.Children) {
		return false
	}
	for i := range r.RawValue {
		if r.RawValue[i] != o.RawValue[i] {
			return false
		}
	}
	for i := range r.Children {
		if !r.Children[i].Equal(o.Children[i]) {
			return false
		}
	}
	return true
}

// DeepCopy returns a fully independent copy of r, recursing into Children
// and cloning RawValue so neither tree shares backing arrays with the
// other.
func (r TlvRecord) DeepCopy() TlvRecord {
	out := r
	out.RawValue = append([]byte(nil), r.RawValue...)
	if r.Children != nil {
		out.Children = make([]TlvRecord, len(r.Children))
		for i, c := range r.Children {
			out.Children[i] = c.DeepCopy()
		}
	}
	return out
}

// WithChild returns a copy of r with child appended to its Children.
func (r TlvRecord) WithChild(child TlvRecord) TlvRecord {
	out := r.DeepCopy()
	out.Children = append(out.Children, child)
	out.RawValue = nil // stale until re-serialized; caller re-derives via codec
	return out
}

// ReplaceValue returns a copy of r with RawValue and Decoded overridden,
// the immutable-update pattern spec.md §5 requires for text-format
// editing.
func (r TlvRecord) ReplaceValue(raw []byte, decoded valuecoder.Decoded) TlvRecord {
	out := r.DeepCopy()
	out.RawValue = append([]byte(nil), raw...)
	out.Decoded = decoded
	return out
}
