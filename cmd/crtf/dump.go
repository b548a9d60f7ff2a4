package main

import (
	"fmt"
	"io"

	"github.com/woozymasta/crtf"
)

// dump prints the header of src and the CRC computed over its payload.
// It only reports; nothing is rejected on a CRC difference.
func dump(w io.Writer, name string, src []byte) error {
	h, err := crtf.ParseHeader(src)
	if err != nil {
		return err
	}

	payload := src[crtf.HeaderSize:]
	crc := crtf.Checksum(payload)

	_, err = fmt.Fprintf(w, "%s:\n"+
		"  compsize  %d (payload %d, actual %d)\n"+
		"  rawsize   %d\n"+
		"  comptype  %s (0x%08x)\n"+
		"  crc       0x%08x (computed 0x%08x)\n",
		name,
		h.CompSize, h.PayloadSize(), len(payload),
		h.RawSize,
		h.CompType, uint32(h.CompType),
		h.CRC, crc,
	)

	return err
}
