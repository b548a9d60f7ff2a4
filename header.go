package crtf

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// CompType is the decoded COMPTYPE header field.
type CompType uint32

// Compression kinds.
const (
	Compressed   = CompType(MagicCompressed)
	Uncompressed = CompType(MagicUncompressed)
)

func (c CompType) String() string {
	switch c {
	case Compressed:
		return "LZFu"
	case Uncompressed:
		return "MELA"
	default:
		return fmt.Sprintf("CompType(0x%08x)", uint32(c))
	}
}

// Header is the fixed 16-byte little-endian record at the start of every stream.
type Header struct {
	CompSize uint32   // Bytes following the COMPSIZE field, header remainder included.
	RawSize  uint32   // Declared output size. Advisory only.
	CompType CompType // Compressed or Uncompressed.
	CRC      uint32   // Stored checksum. Never verified.
}

// PayloadSize returns the number of payload bytes COMPSIZE declares after the header.
func (h Header) PayloadSize() int64 {
	return int64(h.CompSize) - minCompSize
}

func (h Header) String() string {
	return fmt.Sprintf("COMPSIZE=%d RAWSIZE=%d COMPTYPE=%s CRC=0x%08x",
		h.CompSize, h.RawSize, h.CompType, h.CRC)
}

// ParseHeader parses and validates the header at the beginning of src.
func ParseHeader(src []byte) (Header, error) {
	if len(src) < HeaderSize {
		return Header{}, &SizeError{Size: uint32(len(src))} // #nosec G115 -- len < HeaderSize
	}

	return readHeader(&sliceByteReader{data: src[:HeaderSize]})
}

// readHeader reads four little-endian words from r and validates them.
func readHeader(r io.ByteReader) (Header, error) {
	var (
		fields [4]uint32
		word   [4]byte
		read   uint32
	)

	for i := range fields {
		for j := range word {
			b, err := r.ReadByte()
			if err != nil {
				if errors.Is(err, io.EOF) {
					return Header{}, &SizeError{Size: read}
				}

				return Header{}, err
			}

			word[j] = b
			read++
		}
		fields[i] = binary.LittleEndian.Uint32(word[:])
	}

	h := Header{
		CompSize: fields[0],
		RawSize:  fields[1],
		CompType: CompType(fields[2]),
		CRC:      fields[3],
	}

	switch h.CompType {
	case Compressed, Uncompressed:
	default:
		return Header{}, &CompTypeError{Value: fields[2]}
	}

	if h.CompSize < minCompSize || (h.CompType == Compressed && h.CompSize < minCompSizeCompressed) {
		return Header{}, &SizeError{Size: h.CompSize}
	}

	return h, nil
}
