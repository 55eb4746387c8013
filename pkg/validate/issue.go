// Package validate implements the Validator (spec.md §4.E): a pure,
// re-entrant pass over a docsistree.DocsisFile that reports semantic
// violations without mutating the tree.
package validate

// Severity classifies how serious a ValidationIssue is. spec.md §4.E names
// two severities; this is a narrower form of the teacher's four-valued
// repair.Severity.
type Severity string

const (
	SevWarning Severity = "warning"
	SevError   Severity = "error"
)

// Code identifies the kind of violation, per spec.md §4.E's check list.
type Code string

const (
	CodeVersionMismatch  Code = "TLV_VERSION_MISMATCH"
	CodeDuplicateTLV     Code = "DUPLICATE_TLV"
	CodeMissingRequired  Code = "MISSING_REQUIRED_TLV"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
	CodeLengthExceedsMax Code = "LENGTH_EXCEEDS_MAX"
	CodeVendorSpecific   Code = "VENDOR_SPECIFIC_TLV"
	CodeUnknownTLV       Code = "UNKNOWN_TLV"
)

// ValidationIssue is one reported violation. TLVPath uses the codec's
// dotted notation ("24.1" for sub-TLV 1 of top-level TLV 24).
type ValidationIssue struct {
	Severity   Severity
	Code       Code
	TLVPath    string
	Message    string
	Suggestion string
}
