// Package asn1min is a minimal ASN.1 DER reader/writer sufficient to build
// a structured node tree for PacketCable configuration payloads (TLV 64).
// It is isolated per spec.md §9's design note ("ASN.1 payloads: isolate in
// a small sub-module with its own parser; on failure, the outer codec
// degrades the TLV to hex_bytes rather than failing") and is learned from
// JesseCoretta-go-asn1plus's ber.go/tlv.go/int.go (the pack's only ASN.1
// library; the teacher itself has no ASN.1 code), rewritten for the
// closed, non-reflective shape this module needs.
package asn1min

import "errors"

// Errors returned by Parse (Encode cannot fail). The outer codec treats any of these as
// "degrade to hex_bytes", never as a fatal parse error.
var (
	ErrTruncated      = errors.New("asn1min: truncated buffer")
	ErrBadLength      = errors.New("asn1min: invalid or indefinite length")
	ErrNestingTooDeep = errors.New("asn1min: nesting too deep")
)

// maxDepth bounds recursive constructed-value descent, mirroring the
// codec's own nesting cap.
const maxDepth = 32

// Class is the ASN.1 identifier class.
type Class uint8

const (
	ClassUniversal Class = iota
	ClassApplication
	ClassContextSpecific
	ClassPrivate
)

// Node is one decoded ASN.1 TLV: either a leaf with Content bytes or a
// constructed value with Children.
type Node struct {
	Class      Class
	Tag        int
	Constructed bool
	Content    []byte // leaf content; empty for constructed nodes
	Children   []*Node
}

// Parse decodes a single top-level DER value from b. Trailing bytes beyond
// the first value are ignored, matching how TLV 64's payload is expected
// to contain exactly one ASN.1 SEQUENCE.
func Parse(b []byte) (*Node, error) {
	n, _, err := parseOne(b, 0)
	return n, err
}

func parseOne(b []byte, depth int) (*Node, int, error) {
	if depth > maxDepth {
		return nil, 0, ErrNestingTooDeep
	}
	if len(b) < 2 {
		return nil, 0, ErrTruncated
	}

	ident := b[0]
	class := Class((ident >> 6) & 0x3)
	constructed := ident&0x20 != 0
	tag := int(ident & 0x1F)

	pos := 1
	if tag == 0x1F {
		tag = 0
		for {
			if pos >= len(b) {
				return nil, 0, ErrTruncated
			}
			tag = tag<<7 | int(b[pos]&0x7F)
			high := b[pos]&0x80 != 0
			pos++
			if !high {
				break
			}
		}
	}

	if pos >= len(b) {
		return nil, 0, ErrTruncated
	}
	lengthByte := b[pos]
	pos++

	var length int
	switch {
	case lengthByte == 0x80:
		// Indefinite length is a BER construct DER forbids; treat as
		// unsupported rather than guess at end-of-contents scanning.
		return nil, 0, ErrBadLength
	case lengthByte&0x80 != 0:
		n := int(lengthByte & 0x7F)
		if n == 0 || n > 4 || pos+n > len(b) {
			return nil, 0, ErrBadLength
		}
		for i := 0; i < n; i++ {
			length = length<<8 | int(b[pos+i])
		}
		pos += n
	default:
		length = int(lengthByte)
	}

	if pos+length > len(b) {
		return nil, 0, ErrTruncated
	}
	content := b[pos : pos+length]
	pos += length

	node := &Node{Class: class, Tag: tag, Constructed: constructed}
	if !constructed {
		node.Content = append([]byte(nil), content...)
		return node, pos, nil
	}

	rest := content
	for len(rest) > 0 {
		child, n, err := parseOne(rest, depth+1)
		if err != nil {
			return nil, 0, err
		}
		node.Children = append(node.Children, child)
		rest = rest[n:]
	}
	return node, pos, nil
}

// Encode re-serializes n to DER bytes.
func Encode(n *Node) []byte {
	var content []byte
	if n.Constructed {
		for _, c := range n.Children {
			content = append(content, Encode(c)...)
		}
	} else {
		content = n.Content
	}

	var ident byte
	ident |= byte(n.Class) << 6
	if n.Constructed {
		ident |= 0x20
	}
	if n.Tag < 0x1F {
		ident |= byte(n.Tag)
	} else {
		ident |= 0x1F
	}

	out := []byte{ident}
	if n.Tag >= 0x1F {
		out = append(out, encodeHighTag(n.Tag)...)
	}
	out = append(out, encodeLength(len(content))...)
	out = append(out, content...)
	return out
}

func encodeHighTag(tag int) []byte {
	var rev []byte
	rev = append(rev, byte(tag&0x7F))
	tag >>= 7
	for tag > 0 {
		rev = append(rev, byte(tag&0x7F)|0x80)
		tag >>= 7
	}
	out := make([]byte, len(rev))
	for i, b := range rev {
		out[len(rev)-1-i] = b
	}
	return out
}

func encodeLength(n int) []byte {
	if n < 0x80 {
		return []byte{byte(n)}
	}
	var rev []byte
	for n > 0 {
		rev = append(rev, byte(n&0xFF))
		n >>= 8
	}
	out := make([]byte, len(rev)+1)
	out[0] = byte(0x80 | len(rev))
	for i, b := range rev {
		out[len(out)-1-i] = b
	}
	return out
}
