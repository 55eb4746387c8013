package docsisfmt

import "errors"

// Sentinel errors returned by the low-level wire helpers in this package.
// Higher-level packages wrap these with byte-offset/path context rather
// than minting new sentinels.
var (
	// ErrTruncated indicates the buffer lacked the bytes a structure needed.
	ErrTruncated = errors.New("docsisfmt: truncated buffer")

	// ErrBadLengthEncoding indicates an extended-length prefix declared more
	// length-bytes than the DOCSIS wire format allows, or zero.
	ErrBadLengthEncoding = errors.New("docsisfmt: invalid length encoding")

	// ErrLengthTooLarge indicates a decoded length exceeds MaxConfigSize.
	ErrLengthTooLarge = errors.New("docsisfmt: length exceeds maximum configuration size")

	// ErrNestingTooDeep indicates recursive sub-TLV descent exceeded
	// MaxNestingDepth.
	ErrNestingTooDeep = errors.New("docsisfmt: sub-TLV nesting too deep")
)
