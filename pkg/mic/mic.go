// Package mic implements the MIC Engine (spec.md §4.F): HMAC-MD5 Message
// Integrity Check computation and verification for the two MIC TLVs DOCSIS
// configurations carry, CM-MIC (TLV 6) and CMTS-MIC (TLV 7).
package mic

import (
	"crypto/hmac"
	"crypto/md5"
	"fmt"

	"github.com/go-docsis/docsistlv/internal/docsisfmt"
	"github.com/go-docsis/docsistlv/pkg/codec"
	"github.com/go-docsis/docsistlv/pkg/docsistree"
)

// cmtsCoverage is the fixed set of top-level TLV types included in the
// CMTS-MIC digest, per spec.md §4.F. This list is an Open Question
// resolution recorded in DESIGN.md: applied identically across DOCSIS
// versions rather than varying by version.
var cmtsCoverage = map[int]bool{
	1: true, 2: true, 3: true, 4: true, 17: true, 18: true, 20: true,
	22: true, 23: true, 24: true, 25: true, 28: true, 29: true,
}

// Digest is a 16-byte HMAC-MD5 value.
type Digest [16]byte

// ComputeCMMIC digests every TLV preceding the first CM-MIC TLV (type 6) in
// tree, serialized in order and excluding any CMTS-MIC TLV, per spec.md
// §4.F. Digesting happens over freshly serialized bytes, not original file
// bytes, so the result always matches what Serialize will emit.
func ComputeCMMIC(tree docsistree.DocsisFile, secret []byte) (Digest, error) {
	var preceding docsistree.DocsisFile
	for _, r := range tree {
		if r.Type == docsisfmt.TypeCMMIC {
			break
		}
		if r.Type == docsisfmt.TypeCMTSMIC {
			continue
		}
		preceding = append(preceding, r)
	}
	return digest(preceding, secret)
}

// ComputeCMTSMIC digests the fixed CMTS-MIC coverage subset of tree, in the
// order those TLVs appear, keyed by secret.
func ComputeCMTSMIC(tree docsistree.DocsisFile, secret []byte) (Digest, error) {
	var covered docsistree.DocsisFile
	for _, r := range tree {
		if cmtsCoverage[r.Type] {
			covered = append(covered, r)
		}
	}
	return digest(covered, secret)
}

func digest(records docsistree.DocsisFile, secret []byte) (Digest, error) {
	b, err := codec.Serialize(records, codec.SerializeOptions{})
	if err != nil {
		return Digest{}, fmt.Errorf("mic: %w", err)
	}
	mac := hmac.New(md5.New, secret)
	mac.Write(b)
	var d Digest
	copy(d[:], mac.Sum(nil))
	return d, nil
}

// MismatchError reports which MIC TLV failed verification.
type MismatchError struct {
	Which string // "CM-MIC" or "CMTS-MIC"
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("mic: %s digest mismatch", e.Which)
}

// Verify recomputes both MICs against tree and compares them to the digest
// bytes already present in the CM-MIC (TLV 6) and CMTS-MIC (TLV 7) records,
// returning a *MismatchError for the first one that fails to match. A
// missing MIC TLV where one is expected is also a mismatch.
func Verify(tree docsistree.DocsisFile, secret []byte) error {
	if cmtsRec, ok := docsistree.First(tree, docsisfmt.TypeCMTSMIC); ok {
		want, err := ComputeCMTSMIC(tree, secret)
		if err != nil {
			return err
		}
		if !hmac.Equal(want[:], cmtsRec.RawValue) {
			return &MismatchError{Which: "CMTS-MIC"}
		}
	} else {
		return &MismatchError{Which: "CMTS-MIC"}
	}

	if cmRec, ok := docsistree.First(tree, docsisfmt.TypeCMMIC); ok {
		want, err := ComputeCMMIC(tree, secret)
		if err != nil {
			return err
		}
		if !hmac.Equal(want[:], cmRec.RawValue) {
			return &MismatchError{Which: "CM-MIC"}
		}
	} else {
		return &MismatchError{Which: "CM-MIC"}
	}

	return nil
}
