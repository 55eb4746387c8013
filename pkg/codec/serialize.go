package codec

import (
	"github.com/go-docsis/docsistlv/internal/docsisfmt"
	"github.com/go-docsis/docsistlv/pkg/docsistree"
)

// Serialize renders tree back to wire bytes. For each record it writes the
// type byte, the length field (the record's own LengthForm unless opts
// requests the minimal encoding), and the raw value — recursing into
// children first for compound records, per spec.md §4.B. Record order is
// preserved.
func Serialize(tree docsistree.DocsisFile, opts SerializeOptions) ([]byte, error) {
	var out []byte
	for i := range tree {
		b, err := serializeRecord(tree[i], opts)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

func serializeRecord(r docsistree.TlvRecord, opts SerializeOptions) ([]byte, error) {
	out := []byte{byte(r.Type)}

	if r.Type == docsisfmt.TypeEnd || r.Type == docsisfmt.TypePad {
		return out, nil
	}

	raw := r.RawValue
	if r.IsCompound() {
		var err error
		raw, err = serializeChildren(r.Children, opts)
		if err != nil {
			return nil, err
		}
	}

	form := r.LengthForm
	if opts.PreferMinimalLength {
		form = docsisfmt.LengthShort
	}
	out = docsisfmt.WriteLength(out, len(raw), form)
	out = append(out, raw...)
	return out, nil
}

func serializeChildren(children []docsistree.TlvRecord, opts SerializeOptions) ([]byte, error) {
	var out []byte
	for i := range children {
		b, err := serializeRecord(children[i], opts)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}
