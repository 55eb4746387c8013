package mic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-docsis/docsistlv/internal/registry"
	"github.com/go-docsis/docsistlv/pkg/codec"
	"github.com/go-docsis/docsistlv/pkg/docsistree"
	"github.com/go-docsis/docsistlv/pkg/mic"
)

func buildSampleTree(t *testing.T) docsistree.DocsisFile {
	t.Helper()
	tlv3 := docsistree.New(3, []byte{0x01}, registry.V3_0)
	child1 := docsistree.NewSub(24, 1, []byte{0x00, 0x01}, registry.V3_0)
	child7 := docsistree.NewSub(24, 7, []byte{0x01}, registry.V3_0)
	tlv24 := docsistree.NewCompound(24, []docsistree.TlvRecord{child1, child7}, registry.V3_0)
	return docsistree.DocsisFile{tlv3, tlv24}
}

func TestMICRoundTrip(t *testing.T) {
	secret := []byte("changeme")
	tree := buildSampleTree(t)

	cmtsDigest, err := mic.ComputeCMTSMIC(tree, secret)
	require.NoError(t, err)

	cmtsRec := docsistree.New(7, cmtsDigest[:], registry.V3_0)
	tree = append(tree, cmtsRec)

	cmDigest, err := mic.ComputeCMMIC(tree, secret)
	require.NoError(t, err)
	cmRec := docsistree.New(6, cmDigest[:], registry.V3_0)
	full := append(docsistree.DocsisFile{}, tree...)
	full = append(full, cmRec)

	out, err := codec.Serialize(full, codec.SerializeOptions{})
	require.NoError(t, err)

	reparsed, err := codec.Parse(out, registry.V3_0, codec.ParseOptions{})
	require.NoError(t, err)

	assert.NoError(t, mic.Verify(reparsed, secret))
}

func TestMICDeterminism(t *testing.T) {
	tree := buildSampleTree(t)
	secret := []byte("changeme")

	d1, err := mic.ComputeCMTSMIC(tree, secret)
	require.NoError(t, err)
	d2, err := mic.ComputeCMTSMIC(tree, secret)
	require.NoError(t, err)
	assert.Equal(t, d1, d2)
}

func TestMICChangesOnMutation(t *testing.T) {
	tree := buildSampleTree(t)
	secret := []byte("changeme")

	original, err := mic.ComputeCMTSMIC(tree, secret)
	require.NoError(t, err)

	mutated := append(docsistree.DocsisFile{}, tree...)
	mutated[0] = docsistree.New(3, []byte{0x00}, registry.V3_0)

	changed, err := mic.ComputeCMTSMIC(mutated, secret)
	require.NoError(t, err)
	assert.NotEqual(t, original, changed)
}

func TestVerifyMissingMIC(t *testing.T) {
	tree := buildSampleTree(t)
	err := mic.Verify(tree, []byte("changeme"))
	require.Error(t, err)
	var mismatch *mic.MismatchError
	require.ErrorAs(t, err, &mismatch)
}

func TestVerifyWrongSecret(t *testing.T) {
	secret := []byte("changeme")
	tree := buildSampleTree(t)

	cmtsDigest, err := mic.ComputeCMTSMIC(tree, secret)
	require.NoError(t, err)
	tree = append(tree, docsistree.New(7, cmtsDigest[:], registry.V3_0))
	cmDigest, err := mic.ComputeCMMIC(tree, secret)
	require.NoError(t, err)
	tree = append(tree, docsistree.New(6, cmDigest[:], registry.V3_0))

	err = mic.Verify(tree, []byte("wrong-secret"))
	require.Error(t, err)
}
