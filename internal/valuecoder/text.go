package valuecoder

import (
	"encoding/hex"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"

	"github.com/go-docsis/docsistlv/internal/registry"
)

// decodeString implements the "string" value kind: UTF-8 bytes with an
// optional single trailing NUL terminator stripped on decode and restored
// on encode only if the original wire form had one (spec.md §4.C).
//
// Some vendor deployments emit legacy Windows-1252 bytes instead of valid
// UTF-8 (the teacher's internal/reader/value.go hits the same situation
// decoding VK names); when raw isn't valid UTF-8, it is reinterpreted via
// charmap.Windows1252 rather than falling back to hex_bytes, since a
// human-editable text form is still recoverable. The result is always
// NFC-normalized so repeated round-trips through text-format collaborators
// are stable.
func decodeString(raw []byte) Decoded {
	body := raw
	hadNUL := false
	if n := len(body); n > 0 && body[n-1] == 0 {
		body = body[:n-1]
		hadNUL = true
	}

	var text string
	if utf8.Valid(body) {
		text = string(body)
	} else {
		decoded, err := charmap.Windows1252.NewDecoder().Bytes(body)
		if err != nil {
			return Decoded{Kind: registry.KindString, RawFallback: true,
				Warning: "string value is neither valid UTF-8 nor Windows-1252"}
		}
		text = string(decoded)
	}

	return Decoded{Kind: registry.KindString, Text: norm.NFC.String(text), HadNUL: hadNUL}
}

func encodeString(d Decoded) ([]byte, error) {
	b := []byte(d.Text)
	if d.HadNUL {
		b = append(b, 0)
	}
	return b, nil
}

// decodeHex implements the "hex_bytes" value kind: a lowercase "0x..."
// rendering of the raw bytes, with no length constraint.
func decodeHex(raw []byte) Decoded {
	return Decoded{Kind: registry.KindHexBytes, HexText: "0x" + hex.EncodeToString(raw)}
}

func encodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	if len(s)%2 != 0 {
		return nil, ErrInvalidHex
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, ErrInvalidHex
	}
	return b, nil
}
