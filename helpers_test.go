package crtf

import (
	"encoding/binary"
)

// streamBuilder packs literal and reference tokens behind control bytes.
// It does no matching; tests choose every token.
type streamBuilder struct {
	buf     []byte
	ctrlPos int
	bit     uint
}

func newStreamBuilder() *streamBuilder {
	return &streamBuilder{ctrlPos: -1, bit: FlagBits}
}

func (s *streamBuilder) slot(ref bool) {
	if s.bit == FlagBits {
		s.ctrlPos = len(s.buf)
		s.buf = append(s.buf, 0)
		s.bit = 0
	}
	if ref {
		s.buf[s.ctrlPos] |= 1 << s.bit
	}
	s.bit++
}

func (s *streamBuilder) literal(data ...byte) *streamBuilder {
	for _, b := range data {
		s.slot(false)
		s.buf = append(s.buf, b)
	}

	return s
}

func (s *streamBuilder) ref(offset, length int) *streamBuilder {
	s.slot(true)
	token := uint16(offset&(DictionarySize-1))<<4 | uint16(length-MinMatch)&0x0F // #nosec G115
	s.buf = append(s.buf, byte(token>>8), byte(token))

	return s
}

func (s *streamBuilder) bytes() []byte {
	return s.buf
}

// envelope prepends a header whose COMPSIZE covers payload exactly,
// raised to the minimum for kind so short payloads still parse.
func envelope(kind CompType, rawSize uint32, payload []byte) []byte {
	compSize := uint32(len(payload) + minCompSize) // #nosec G115
	if kind == Compressed && compSize < minCompSizeCompressed {
		compSize = minCompSizeCompressed
	}

	return envelopeSized(kind, compSize, rawSize, payload)
}

func envelopeSized(kind CompType, compSize, rawSize uint32, payload []byte) []byte {
	out := make([]byte, HeaderSize, HeaderSize+len(payload))
	binary.LittleEndian.PutUint32(out[0:], compSize)
	binary.LittleEndian.PutUint32(out[4:], rawSize)
	binary.LittleEndian.PutUint32(out[8:], uint32(kind))
	binary.LittleEndian.PutUint32(out[12:], Checksum(payload))

	return append(out, payload...)
}

// Worked examples from MS-OXRTFCP section 3.
var (
	exampleSimple = []byte{
		0x2d, 0x00, 0x00, 0x00, 0x2b, 0x00, 0x00, 0x00, 0x4c, 0x5a, 0x46, 0x75, 0xf1, 0xc5, 0xc7, 0xa7,
		0x03, 0x00, 0x0a, 0x00, 0x72, 0x63, 0x70, 0x67, 0x31, 0x32, 0x35, 0x42, 0x32, 0x0a, 0xf3, 0x20,
		0x68, 0x65, 0x6c, 0x09, 0x00, 0x20, 0x62, 0x77, 0x05, 0xb0, 0x6c, 0x64, 0x7d, 0x0a, 0x80, 0x0f,
		0xa0,
	}
	exampleSimpleText = "{\\rtf1\\ansi\\ansicpg1252\\pard hello world}\r\n"

	exampleRepeat = []byte{
		0x1a, 0x00, 0x00, 0x00, 0x1c, 0x00, 0x00, 0x00, 0x4c, 0x5a, 0x46, 0x75, 0xe2, 0xd4, 0x4b, 0x51,
		0x41, 0x00, 0x04, 0x20, 0x57, 0x58, 0x59, 0x5a, 0x0d, 0x6e, 0x7d, 0x01, 0x0e, 0xb0,
	}
	exampleRepeatText = "{\\rtf1 WXYZWXYZWXYZWXYZWXYZ}"
)
