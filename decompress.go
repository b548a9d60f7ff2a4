package crtf

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Decompress decodes a whole compressed RTF stream held in src.
// Options nil means DefaultOptions (input bound, lenient truncation).
func Decompress(src []byte, opts *Options) ([]byte, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	h, err := ParseHeader(src)
	if err != nil {
		return nil, err
	}

	payload := src[HeaderSize:]
	if opts.Bound == BoundDeclared {
		if n := h.PayloadSize(); n < int64(len(payload)) {
			payload = payload[:n]
		}
	}

	if h.CompType == Uncompressed {
		return bytes.Clone(payload), nil
	}

	return decompressPayload(&sliceByteReader{data: payload}, h, opts)
}

// decompressPayload decodes the bytes following h from r.
// r must report io.EOF at the input bound.
func decompressPayload(r io.ByteReader, h Header, opts *Options) ([]byte, error) {
	if h.CompType == Uncompressed {
		return readAll(r)
	}

	dict := newDictionary()
	out := make([]byte, 0, outputHint(h))

	// Read a byte from the reader.
	// If the reader returns an EOF error, return the error passed as eofErr.
	// Otherwise, return the error from the reader.
	readByte := func(eofErr error) (byte, error) {
		b, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0, eofErr
			}

			return 0, err
		}

		return b, nil
	}

	// stop converts an end of input into the configured outcome:
	// a partial result when lenient, the error when strict.
	stop := func(err error) ([]byte, error) {
		if !opts.Strict && (errors.Is(err, ErrUnexpectedEOF) || errors.Is(err, ErrUnexpectedEOFToken)) {
			return out, nil
		}

		return nil, err
	}

	// Iterate over control bytes until the end marker or the input bound.
	for {
		control, err := readByte(ErrUnexpectedEOF)
		if err != nil {
			return stop(err)
		}

		// Iterate over control bits, lowest first.
		for bit := uint(0); bit < FlagBits; bit++ {
			// If bit is 0, it's a literal: 1 byte, otherwise a 2 byte reference.
			if !bitSet(control, bit) {
				b, err := readByte(ErrUnexpectedEOFToken)
				if err != nil {
					return stop(err)
				}

				out = append(out, b)
				dict.put(b)

				continue
			}

			hi, err := readByte(ErrUnexpectedEOFToken)
			if err != nil {
				return stop(err)
			}
			lo, err := readByte(ErrUnexpectedEOFToken)
			if err != nil {
				return stop(err)
			}

			// Reference: BE 16-bit = [offset 12 bits | length-2 4 bits]; offset is absolute in the dictionary.
			token := int(hi)<<8 | int(lo)
			offset := (token >> 4) & (DictionarySize - 1)
			length := token&0x0F + MinMatch

			// A reference to the write position marks the end of the stream.
			if offset == dict.writeOffset {
				return out, nil
			}

			if opts.Strict && !dict.written(offset) {
				return nil, fmt.Errorf("%w: offset=%d write=%d", ErrInvalidDictionaryReference, offset, dict.writeOffset)
			}

			out = dict.copyRun(out, offset, length)
		}
	}
}

// readAll drains r until io.EOF.
func readAll(r io.ByteReader) ([]byte, error) {
	var out []byte
	for {
		b, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}

			return nil, err
		}

		out = append(out, b)
	}
}

// outputHint sizes the output buffer from RAWSIZE without trusting it blindly.
func outputHint(h Header) int {
	const maxHint = 1 << 20
	if h.RawSize > maxHint {
		return maxHint
	}

	return int(h.RawSize)
}
