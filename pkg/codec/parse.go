// Package codec implements the Binary Codec (spec.md §4.B): parsing wire
// bytes into a docsistree.DocsisFile and serializing one back to bytes,
// byte-exact when the original carried no warnings and every extended-form
// length field used the minimal number of length bytes.
package codec

import (
	"fmt"

	"github.com/go-docsis/docsistlv/internal/docsisfmt"
	"github.com/go-docsis/docsistlv/internal/registry"
	"github.com/go-docsis/docsistlv/pkg/docsistree"
)

// noParent marks a TLV sequence as top-level: no real TLV type is 0, so it
// is safe to use as the "not nested" sentinel when choosing between
// registry.Info and registry.InfoSub.
const noParent = 0

// Parse decodes a DOCSIS configuration byte buffer into an ordered
// docsistree.DocsisFile, per spec.md §4.B's algorithm. version is consulted
// only for registry lookups (metadata, sub-schema), never as a parse-time
// gate; the validator decides acceptance.
//
// A malformed buffer returns a fatal *ParseError with byte offset and TLV
// path; a recoverable sub-TLV failure is instead recorded as a Warning on
// the offending record and parsing continues, per the round-trip invariant.
func Parse(b []byte, version registry.DocsisVersion, opts ParseOptions) (docsistree.DocsisFile, error) {
	p := &parser{buf: b, version: version, opts: opts}
	return p.parseSequenceAt("", noParent, b, 0, len(b), 0)
}

type parser struct {
	buf     []byte
	version registry.DocsisVersion
	opts    ParseOptions
}

// parseSequenceAt parses the TLV stream occupying buf[start:end]. parentType
// is noParent for a top-level sequence, or the enclosing compound TLV's
// type when parsing its sub-TLVs (so metadata resolves via the parent's
// sub-schema rather than the top-level table). Each record's path, as
// reported in ParseError.TLVPath and passed down to its sub-TLVs, is
// pathPrefix + "." + its own type, matching the dotted notation ("24.1")
// the validator reports issues against. depth is the current sub-TLV
// nesting level (0 at the top).
func (p *parser) parseSequenceAt(pathPrefix string, parentType int, buf []byte, start, end, depth int) (docsistree.DocsisFile, error) {
	if depth > p.opts.maxDepth() {
		return nil, &ParseError{Code: CodeNestingTooDeep, Offset: start, TLVPath: pathPrefix, Err: docsisfmt.ErrNestingTooDeep}
	}

	var out docsistree.DocsisFile
	i := start
	for i < end {
		typ := int(buf[i])
		i++
		path := childPath(pathPrefix, typ)

		if typ == docsisfmt.TypeEnd {
			out = append(out, leafRecord(parentType, typ, nil, p.version))
			break
		}
		if typ == docsisfmt.TypePad {
			out = append(out, leafRecord(parentType, typ, nil, p.version))
			continue
		}

		if i >= end {
			return nil, &ParseError{Code: CodeTruncated, Offset: i, TLVPath: path, ExpectedBytes: 1, GotBytes: 0, Err: docsisfmt.ErrTruncated}
		}
		dl, err := docsisfmt.ReadLength(buf[i:end], p.opts.AllowVendorTwoByteLength)
		if err != nil {
			return nil, &ParseError{Code: codeForLengthErr(err), Offset: i, TLVPath: path, Err: err}
		}
		i += dl.FieldLen

		if i+dl.Length > end {
			return nil, &ParseError{
				Code: CodeTruncated, Offset: i, TLVPath: path,
				ExpectedBytes: dl.Length, GotBytes: end - i, Err: docsisfmt.ErrTruncated,
			}
		}
		raw := buf[i : i+dl.Length]
		i += dl.Length

		out = append(out, p.buildRecord(path, parentType, typ, raw, dl.Form, depth))
	}
	return out, nil
}

// buildRecord looks up metadata for typ (under parentType's sub-schema when
// parentType != noParent), decides whether to descend into sub-TLVs, and
// decodes the scalar value otherwise.
func (p *parser) buildRecord(path string, parentType, typ int, raw []byte, form docsisfmt.LengthForm, depth int) docsistree.TlvRecord {
	meta := metaFor(parentType, typ, p.version)

	shouldDescend := meta.Kind == registry.KindCompound
	if docsisfmt.IsVendorType(typ) {
		shouldDescend = p.opts.DescendVendorCompound
	}

	if shouldDescend {
		children, warning := p.tryParseChildren(path, typ, raw, depth)
		if warning == "" {
			rec := compoundRecord(parentType, typ, children, p.version)
			rec.LengthForm = form
			return rec
		}
		rec := leafRecord(parentType, typ, raw, p.version)
		rec.LengthForm = form
		rec.Warning = warning
		return rec
	}

	rec := leafRecord(parentType, typ, raw, p.version)
	rec.LengthForm = form
	if rec.Decoded.Warning != "" {
		rec.Warning = rec.Decoded.Warning
	}
	return rec
}

// tryParseChildren attempts to parse raw as a nested sub-TLV stream under
// parentType. On any error it falls back to opaque preservation (no
// children, a warning), per spec.md §4.B step 2.f: "never fail the
// top-level parse for a recoverable sub-TLV error."
func (p *parser) tryParseChildren(path string, parentType int, raw []byte, depth int) ([]docsistree.TlvRecord, string) {
	children, err := p.parseSequenceAt(path, parentType, raw, 0, len(raw), depth+1)
	if err != nil {
		return nil, fmt.Sprintf("sub-TLV parse failed, preserved as opaque bytes: %v", err)
	}
	return children, ""
}

func leafRecord(parentType, typ int, raw []byte, version registry.DocsisVersion) docsistree.TlvRecord {
	if parentType == noParent {
		return docsistree.New(typ, raw, version)
	}
	return docsistree.NewSub(parentType, typ, raw, version)
}

func compoundRecord(parentType, typ int, children []docsistree.TlvRecord, version registry.DocsisVersion) docsistree.TlvRecord {
	if parentType == noParent {
		return docsistree.NewCompound(typ, children, version)
	}
	return docsistree.NewSubCompound(parentType, typ, children, version)
}

func metaFor(parentType, typ int, version registry.DocsisVersion) *registry.Entry {
	if parentType == noParent {
		return registry.Info(typ, version)
	}
	return registry.InfoSub(parentType, typ, version)
}

func childPath(prefix string, typ int) string {
	if prefix == "" {
		return fmt.Sprintf("%d", typ)
	}
	return fmt.Sprintf("%s.%d", prefix, typ)
}

func codeForLengthErr(err error) ErrorCode {
	switch err {
	case docsisfmt.ErrLengthTooLarge:
		return CodeLengthTooLarge
	case docsisfmt.ErrBadLengthEncoding:
		return CodeBadLength
	default:
		return CodeTruncated
	}
}
