package validate

import (
	"fmt"

	"github.com/go-docsis/docsistlv/internal/docsisfmt"
	"github.com/go-docsis/docsistlv/internal/registry"
	"github.com/go-docsis/docsistlv/pkg/docsistree"
)

// Validate runs every check spec.md §4.E names against tree for target
// version. It never mutates tree. Issues are grouped by check rather than
// interleaved in document order: all DUPLICATE_TLV issues come first, then
// MISSING_REQUIRED_TLV issues, then the per-record issues of walk in
// document order.
func Validate(tree docsistree.DocsisFile, version registry.DocsisVersion) []ValidationIssue {
	v := &validator{version: version}
	v.checkUniqueness("", tree)
	v.checkRequired("", tree)
	v.walk("", tree)
	return v.issues
}

// Strict returns the first error-severity issue as an error, or nil if
// Validate reports only warnings (or nothing) — the convenience spec.md §7
// describes for callers who "opt into strict mode."
func Strict(tree docsistree.DocsisFile, version registry.DocsisVersion) error {
	for _, issue := range Validate(tree, version) {
		if issue.Severity == SevError {
			return fmt.Errorf("validate: %s at %s: %s", issue.Code, issue.TLVPath, issue.Message)
		}
	}
	return nil
}

type validator struct {
	version registry.DocsisVersion
	issues  []ValidationIssue
}

// walk applies checks 1, 4, 5, 6, 7 to every record in records, and
// recurses into children, applying the same checks there against each
// child's sub-schema metadata (check 8). The uniqueness and required-field
// checks (2, 3) run on the top-level sequence only.
func (v *validator) walk(pathPrefix string, records []docsistree.TlvRecord) {
	for _, r := range records {
		if r.Type == docsisfmt.TypePad || r.Type == docsisfmt.TypeEnd {
			continue
		}
		path := childPath(pathPrefix, r.Type)
		v.checkVersion(path, r)
		v.checkRange(path, r)
		v.checkLength(path, r)
		v.checkVendorOrUnknown(path, r)
		if r.IsCompound() {
			v.walk(path, r.Children)
		}
	}
}

// checkVersion implements check 1: version gating, skipped for vendor
// TLVs.
func (v *validator) checkVersion(path string, r docsistree.TlvRecord) {
	if docsisfmt.IsVendorType(r.Type) {
		return
	}
	meta := r.Metadata
	if meta == nil || meta.Synthesized {
		return
	}
	if meta.IntroducedVersion.Compare(v.version) > 0 {
		v.issues = append(v.issues, ValidationIssue{
			Severity: SevError,
			Code:     CodeVersionMismatch,
			TLVPath:  path,
			Message:  fmt.Sprintf("TLV %d (%s) requires DOCSIS %s, target is %s", r.Type, meta.Name, meta.IntroducedVersion, v.version),
		})
	}
}

// checkUniqueness implements check 2: duplicate top-level TLVs marked
// single.
func (v *validator) checkUniqueness(pathPrefix string, records []docsistree.TlvRecord) {
	seen := make(map[int]bool)
	for _, r := range records {
		meta := r.Metadata
		if meta == nil || meta.Uniqueness != registry.Single {
			continue
		}
		if seen[r.Type] {
			v.issues = append(v.issues, ValidationIssue{
				Severity: SevError,
				Code:     CodeDuplicateTLV,
				TLVPath:  childPath(pathPrefix, r.Type),
				Message:  fmt.Sprintf("TLV %d (%s) is declared single but appears more than once", r.Type, meta.Name),
			})
		}
		seen[r.Type] = true
	}
}

// checkRequired implements check 3: required_at_top_level TLVs that are
// missing from the top-level sequence.
func (v *validator) checkRequired(pathPrefix string, records []docsistree.TlvRecord) {
	for t := 1; t <= 253; t++ {
		meta := registry.Info(t, v.version)
		if meta.Synthesized || !meta.RequiredAtTopLevel {
			continue
		}
		if _, ok := docsistree.First(records, t); !ok {
			v.issues = append(v.issues, ValidationIssue{
				Severity: SevError,
				Code:     CodeMissingRequired,
				TLVPath:  childPath(pathPrefix, t),
				Message:  fmt.Sprintf("required TLV %d (%s) is missing", t, meta.Name),
			})
		}
	}
}

// checkRange implements check 4: scalar values outside their declared
// range or enum table.
func (v *validator) checkRange(path string, r docsistree.TlvRecord) {
	meta := r.Metadata
	if meta == nil {
		return
	}
	if meta.Range != nil {
		val := int64(r.Decoded.Uint)
		if val < meta.Range.Min || val > meta.Range.Max {
			v.issues = append(v.issues, ValidationIssue{
				Severity:   SevError,
				Code:       CodeValueOutOfRange,
				TLVPath:    path,
				Message:    fmt.Sprintf("TLV %d value %d outside range [%d, %d]", r.Type, val, meta.Range.Min, meta.Range.Max),
				Suggestion: fmt.Sprintf("set a value between %d and %d", meta.Range.Min, meta.Range.Max),
			})
		}
	}
	// TODO: scalar kinds other than KindEnum (uint/ip/mac) that hit
	// RawFallback on a length mismatch currently report no issue at all;
	// only the enum path below surfaces Decoded.Warning.
	if meta.Kind == registry.KindEnum && r.Decoded.EnumLabel == "" && r.Decoded.Warning != "" {
		v.issues = append(v.issues, ValidationIssue{
			Severity:   SevError,
			Code:       CodeValueOutOfRange,
			TLVPath:    path,
			Message:    fmt.Sprintf("TLV %d value %d not in enum table", r.Type, r.Decoded.Uint),
			Suggestion: "use one of the enum table's declared values",
		})
	}
}

// checkLength implements check 5: raw value length exceeding max_length.
func (v *validator) checkLength(path string, r docsistree.TlvRecord) {
	meta := r.Metadata
	if meta == nil || meta.MaxLength == registry.Unlimited {
		return
	}
	if r.Length() > meta.MaxLength {
		v.issues = append(v.issues, ValidationIssue{
			Severity: SevError,
			Code:     CodeLengthExceedsMax,
			TLVPath:  path,
			Message:  fmt.Sprintf("TLV %d length %d exceeds maximum %d", r.Type, r.Length(), meta.MaxLength),
		})
	}
}

// checkVendorOrUnknown implements checks 6 and 7: a warning for
// vendor-range TLVs, and a separate warning for unrecognized non-vendor
// types.
func (v *validator) checkVendorOrUnknown(path string, r docsistree.TlvRecord) {
	switch {
	case docsisfmt.IsVendorType(r.Type):
		v.issues = append(v.issues, ValidationIssue{
			Severity: SevWarning,
			Code:     CodeVendorSpecific,
			TLVPath:  path,
			Message:  fmt.Sprintf("TLV %d is vendor-specific", r.Type),
		})
	case r.Metadata != nil && r.Metadata.Synthesized:
		v.issues = append(v.issues, ValidationIssue{
			Severity: SevWarning,
			Code:     CodeUnknownTLV,
			TLVPath:  path,
			Message:  fmt.Sprintf("TLV %d has no registry entry", r.Type),
		})
	}
}

func childPath(prefix string, typ int) string {
	if prefix == "" {
		return fmt.Sprintf("%d", typ)
	}
	return fmt.Sprintf("%s.%d", prefix, typ)
}
