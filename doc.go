/*
Package crtf decodes Compressed RTF (MS-OXRTFCP), the encapsulation that
messaging stores use for rich-text message bodies.

Format: a 16-byte little-endian header (COMPSIZE, RAWSIZE, COMPTYPE, CRC)
followed by the payload. COMPTYPE "MELA" stores the payload raw; "LZFu"
compresses it with an LZ77 variant: one control byte per 8 tokens, bit 0 =
literal (1 byte), bit 1 = reference (2 bytes, big-endian). A reference holds
a 12-bit absolute dictionary offset and a 4-bit length nibble (length =
nibble+2 -> 2..17). The 4096-byte circular dictionary starts with
InitialDictionary; a reference to the current write offset ends the stream.
The CRC field is read but never verified.

Use Decompress(src, opts) with nil for default (input bound, lenient truncation).
Use DecompressString(src, opts) to get the RTF text; non-ASCII output is ErrCorrupted.
Use DecompressFromReader(r, opts) to decode one stream and get the consumed byte count.
Use ParseHeader(src) to inspect the header alone.
Use StrictOptions() to stop at COMPSIZE and reject truncated or malformed input.

# Examples

Decompress with default options:

	rtf, err := crtf.Decompress(body, nil)
	if err != nil {
		return err
	}

Decode text and reject anything that is not a complete, well-formed stream:

	text, err := crtf.DecompressString(body, crtf.StrictOptions())
	if errors.Is(err, crtf.ErrUnexpectedEOF) {
		// stream ended without the end marker
	}

Read a stream embedded in a larger file:

	rtf, consumed, err := crtf.DecompressFromReader(r, nil)
	if err != nil {
		return err
	}
	_ = consumed
*/
package crtf
