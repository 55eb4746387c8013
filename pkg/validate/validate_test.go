package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-docsis/docsistlv/internal/registry"
	"github.com/go-docsis/docsistlv/pkg/docsistree"
	"github.com/go-docsis/docsistlv/pkg/validate"
)

func TestVersionMismatch(t *testing.T) {
	tree := docsistree.DocsisFile{docsistree.New(77, []byte{0, 0, 0, 1}, registry.V3_0)}
	issues := validate.Validate(tree, registry.V3_0)

	require.Len(t, issues, 1)
	assert.Equal(t, validate.CodeVersionMismatch, issues[0].Code)
	assert.Equal(t, "77", issues[0].TLVPath)
}

func TestVersionMismatchAbsentAtHigherVersion(t *testing.T) {
	tree := docsistree.DocsisFile{docsistree.New(77, []byte{0, 0, 0, 1}, registry.V3_1)}
	issues := validate.Validate(tree, registry.V3_1)
	for _, iss := range issues {
		assert.NotEqual(t, validate.CodeVersionMismatch, iss.Code)
	}
}

func TestDuplicateTLV(t *testing.T) {
	tree := docsistree.DocsisFile{
		docsistree.New(68, []byte{1}, registry.V3_0),
		docsistree.New(68, []byte{0}, registry.V3_0),
	}
	issues := validate.Validate(tree, registry.V3_0)

	var found bool
	for _, iss := range issues {
		if iss.Code == validate.CodeDuplicateTLV {
			found = true
		}
	}
	assert.True(t, found)
}

func TestVendorSpecificWarning(t *testing.T) {
	tree := docsistree.DocsisFile{docsistree.New(210, []byte{1, 2, 3}, registry.V3_0)}
	issues := validate.Validate(tree, registry.V3_0)

	require.Len(t, issues, 1)
	assert.Equal(t, validate.SevWarning, issues[0].Severity)
	assert.Equal(t, validate.CodeVendorSpecific, issues[0].Code)
}

func TestUnknownTLVWarning(t *testing.T) {
	tree := docsistree.DocsisFile{docsistree.New(150, []byte{1, 2}, registry.V3_0)}
	issues := validate.Validate(tree, registry.V3_0)

	require.Len(t, issues, 1)
	assert.Equal(t, validate.SevWarning, issues[0].Severity)
	assert.Equal(t, validate.CodeUnknownTLV, issues[0].Code)
}

func TestRangeConstraint(t *testing.T) {
	// TLV 24 sub-TLV 7 ("Traffic Priority") is range-constrained 0-7.
	child := docsistree.NewSub(24, 7, []byte{9}, registry.V3_0)
	tree := docsistree.DocsisFile{docsistree.NewCompound(24, []docsistree.TlvRecord{child}, registry.V3_0)}

	issues := validate.Validate(tree, registry.V3_0)
	var found bool
	for _, iss := range issues {
		if iss.Code == validate.CodeValueOutOfRange && iss.TLVPath == "24.7" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestLengthExceedsMax(t *testing.T) {
	child := docsistree.NewSub(43, 8, []byte{1, 2, 3, 4, 5}, registry.V3_0) // MaxLength 3
	tree := docsistree.DocsisFile{docsistree.NewCompound(43, []docsistree.TlvRecord{child}, registry.V3_0)}

	issues := validate.Validate(tree, registry.V3_0)
	var found bool
	for _, iss := range issues {
		if iss.Code == validate.CodeLengthExceedsMax {
			found = true
		}
	}
	assert.True(t, found)
}

func TestStrictReturnsErrorForErrorSeverity(t *testing.T) {
	tree := docsistree.DocsisFile{docsistree.New(77, []byte{0, 0, 0, 1}, registry.V3_0)}
	err := validate.Strict(tree, registry.V3_0)
	assert.Error(t, err)
}

func TestStrictNilForWarningOnly(t *testing.T) {
	tree := docsistree.DocsisFile{docsistree.New(210, []byte{1}, registry.V3_0)}
	err := validate.Strict(tree, registry.V3_0)
	assert.NoError(t, err)
}

func TestValidateIdempotent(t *testing.T) {
	tree := docsistree.DocsisFile{docsistree.New(77, []byte{0, 0, 0, 1}, registry.V3_0)}
	a := validate.Validate(tree, registry.V3_0)
	b := validate.Validate(tree, registry.V3_0)
	assert.Equal(t, a, b)
}
