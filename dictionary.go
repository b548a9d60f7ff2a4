package crtf

// dictionary is the circular buffer that back-references read from.
// Both offsets wrap with explicit modulo DictionarySize arithmetic.
type dictionary struct {
	buf         [DictionarySize]byte
	writeOffset int  // Next position to write.
	full        bool // Has writeOffset wrapped at least once?
}

// newDictionary returns a dictionary seeded with InitialDictionary.
func newDictionary() *dictionary {
	d := &dictionary{}
	d.writeOffset = copy(d.buf[:], InitialDictionary)

	return d
}

// put stores b at the write offset and advances it.
func (d *dictionary) put(b byte) {
	d.buf[d.writeOffset] = b
	d.writeOffset = (d.writeOffset + 1) % DictionarySize
	if d.writeOffset == 0 {
		d.full = true
	}
}

// written reports whether offset holds seed or decoded data.
// Before the first wrap everything at or past writeOffset is still zero fill.
func (d *dictionary) written(offset int) bool {
	return d.full || offset < d.writeOffset
}

// copyRun appends length bytes starting at offset to out.
// Each byte is written back before the next is read, so a run may
// overlap the bytes it produces.
func (d *dictionary) copyRun(out []byte, offset, length int) []byte {
	readOffset := offset
	for n := 0; n < length; n++ {
		b := d.buf[readOffset]
		out = append(out, b)
		readOffset = (readOffset + 1) % DictionarySize
		d.put(b)
	}

	return out
}

// bitSet reports whether bit i (0 = least significant) of b is set.
func bitSet(b byte, i uint) bool {
	return (b>>i)&1 == 1
}
