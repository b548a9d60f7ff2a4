package crtf

// Compressed RTF format constants.
const (
	HeaderSize     = 0x10   // Fixed header: COMPSIZE, RAWSIZE, COMPTYPE, CRC.
	DictionarySize = 0x1000 // Circular dictionary size; all offsets are taken mod this value.
	FlagBits       = 8      // Bits per control byte (one control byte per 8 tokens).
	MinMatch       = 2      // Length nibble bias: run length = nibble+2.
	MaxMatch       = 17     // Longest run a single reference can copy.

	// COMPSIZE counts everything after itself, so it must cover the
	// remaining 12 header bytes (and a control byte when compressed).
	minCompSize           = HeaderSize - 4
	minCompSizeCompressed = HeaderSize
)

// COMPTYPE magic values ("LZFu" and "MELA" read little-endian).
const (
	MagicCompressed   uint32 = 0x75465A4C
	MagicUncompressed uint32 = 0x414C454D
)

// InitialDictionary is written at offset 0 of every dictionary before decoding.
// It is never part of the output.
const InitialDictionary = `{\rtf1\ansi\mac\deff0\deftab720{\fonttbl;}` +
	`{\f0\fnil \froman \fswiss \fmodern \fscript ` +
	`\fdecor MS Sans SerifSymbolArialTimes New RomanCourier{\colortbl\red0\green0\blue0` +
	"\r\n" +
	`\par \pard\plain\f0\fs20\b\i\u\tab\tx`
