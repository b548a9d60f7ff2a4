package crtf

// BoundMode selects how far into the input the decoder may read.
type BoundMode int

// Bound mode constants.
const (
	// BoundInput reads up to the end of the available input, ignoring COMPSIZE.
	// This matches what common readers (WrapCompressedRTFStream) accept.
	BoundInput BoundMode = iota
	// BoundDeclared stops at the extent declared by COMPSIZE; trailing bytes are ignored.
	BoundDeclared
)

func (m BoundMode) String() string {
	switch m {
	case BoundInput:
		return "input"
	case BoundDeclared:
		return "declared"
	default:
		return "unknown"
	}
}

// Options configures Decompress behavior.
type Options struct {
	// Bound selects the input limit for the payload.
	Bound BoundMode
	// Strict: if true, truncated input and references to never-written
	// dictionary bytes are errors. If false, decoding stops and returns the
	// output produced so far.
	Strict bool
}

// DefaultOptions returns options for default behavior: input bound, lenient truncation.
func DefaultOptions() *Options {
	return &Options{
		Bound:  BoundInput,
		Strict: false,
	}
}

// StrictOptions returns options: declared bound, truncation and bad references are errors.
func StrictOptions() *Options {
	return &Options{
		Bound:  BoundDeclared,
		Strict: true,
	}
}
