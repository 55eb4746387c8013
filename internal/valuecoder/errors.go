package valuecoder

import "errors"

// Errors returned by Encode. Decode never returns an error — see Decode's
// doc comment for the preserve-and-warn policy instead.
var (
	// ErrLengthMismatch indicates the value to encode cannot fit the
	// fixed-size wire form its kind requires.
	ErrLengthMismatch = errors.New("valuecoder: value length does not match kind")

	// ErrInvalidHex indicates a hex_bytes text form was not valid "0x..."
	// hex.
	ErrInvalidHex = errors.New("valuecoder: invalid hex_bytes text")

	// ErrInvalidAddress indicates an ipv4/ipv6/mac text form failed to
	// parse.
	ErrInvalidAddress = errors.New("valuecoder: invalid address text")
)
