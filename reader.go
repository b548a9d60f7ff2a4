package crtf

import (
	"bufio"
	"io"
)

// DecompressFromReader decodes one stream from r and returns the consumed byte count.
// With BoundInput the payload runs until r returns io.EOF or the end marker is found;
// with BoundDeclared reading stops at the extent declared by COMPSIZE.
// Options nil means DefaultOptions.
func DecompressFromReader(r io.Reader, opts *Options) ([]byte, int64, error) {
	if r == nil {
		return nil, 0, ErrNilReader
	}
	if opts == nil {
		opts = DefaultOptions()
	}

	var byteReader io.ByteReader
	if existing, ok := r.(io.ByteReader); ok {
		byteReader = existing
	} else {
		byteReader = bufio.NewReader(r)
	}

	countingReader := &countingByteReader{base: byteReader}
	h, err := readHeader(countingReader)
	if err != nil {
		return nil, countingReader.count, err
	}

	var payload io.ByteReader = countingReader
	if opts.Bound == BoundDeclared {
		payload = &limitedByteReader{base: countingReader, remaining: h.PayloadSize()}
	}

	out, err := decompressPayload(payload, h, opts)
	if err != nil {
		return nil, countingReader.count, err
	}

	return out, countingReader.count, nil
}

// sliceByteReader reads from a byte slice.
type sliceByteReader struct {
	data []byte // The byte slice to read from.
	pos  int    // The current position in the byte slice.
}

// countingByteReader reads from a byte reader and counts the number of bytes read.
type countingByteReader struct {
	base  io.ByteReader // The byte reader to read from.
	count int64         // The number of bytes read.
}

// limitedByteReader reports io.EOF after remaining bytes.
type limitedByteReader struct {
	base      io.ByteReader
	remaining int64
}

// ReadByte reads a byte from the slice.
func (r *sliceByteReader) ReadByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}

	b := r.data[r.pos]
	r.pos++

	return b, nil
}

// ReadByte reads a byte from the reader and increments the count.
func (r *countingByteReader) ReadByte() (byte, error) {
	b, err := r.base.ReadByte()
	if err != nil {
		return 0, err
	}

	r.count++

	return b, nil
}

// ReadByte reads a byte while the limit allows.
func (r *limitedByteReader) ReadByte() (byte, error) {
	if r.remaining <= 0 {
		return 0, io.EOF
	}

	b, err := r.base.ReadByte()
	if err != nil {
		return 0, err
	}

	r.remaining--

	return b, nil
}
