package crtf

import (
	"fmt"
	"unicode/utf8"
)

// DecompressString decodes src and returns the RTF text.
// The output must be 7-bit ASCII; anything else is ErrCorrupted.
func DecompressString(src []byte, opts *Options) (string, error) {
	out, err := Decompress(src, opts)
	if err != nil {
		return "", err
	}

	for i, b := range out {
		if b >= utf8.RuneSelf {
			return "", fmt.Errorf("%w: byte 0x%02x at %d", ErrCorrupted, b, i)
		}
	}

	return string(out), nil
}
