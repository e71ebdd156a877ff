// Copyright (c) 2025 RainForest Hash Project
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package rainforest

import "math/bits"

// Rambox is the v2 scratch area: 96 MiB of 64-bit words used as a
// hash-driven lookup table that is also updated during hashing.
//
// A Rambox is owned by one hash at a time. Parallel workers either allocate
// independent ramboxes or share a single one through read-only contexts
// (see WithReadOnlyRambox). After a writing hash the contents are rewound
// from the change list, or restored wholesale from a template when the
// change list overflowed.
type Rambox struct {
	words []uint64
}

// NewRambox allocates and deterministically initializes a v2 rambox.
func NewRambox() *Rambox {
	rb := &Rambox{words: make([]uint64, V2RamboxWords)}
	raminit(rb.words)
	return rb
}

// Clone returns an independent copy of rb.
func (rb *Rambox) Clone() *Rambox {
	words := make([]uint64, len(rb.words))
	copy(words, rb.words)
	return &Rambox{words: words}
}

// Reinit rewrites rb with the deterministic initialization pattern.
func (rb *Rambox) Reinit() {
	raminit(rb.words)
}

// RestoreFrom copies tmpl over rb. The two must be the same size.
func (rb *Rambox) RestoreFrom(tmpl *Rambox) error {
	if len(tmpl.words) != len(rb.words) {
		return ErrTemplateSize
	}
	copy(rb.words, tmpl.words)
	return nil
}

// Words returns the rambox size in 64-bit words.
func (rb *Rambox) Words() int { return len(rb.words) }

// raminit fills words with the deterministic pattern shared by both hash
// versions. Two registers seeded with fixed patterns rotate each other and
// are stored in pairs, sixteen words per stride, with the additive constant
// stepping through 0x111..0x888. The result is a pure function of the size:
// any two initializations of equal-sized areas are byte-identical.
func raminit(words []uint64) {
	pat1 := uint64(0x0123456789ABCDEF)
	pat2 := uint64(0xFEDCBA9876543210)

	for pos := 0; pos+16 <= len(words); pos += 16 {
		prev := pat1
		pat1 = rotr64(pat2, uint8(prev)) + 0x111
		words[pos+0], words[pos+1] = pat1, prev

		prev = pat2
		pat2 = rotr64(pat1, uint8(prev)) + 0x222
		words[pos+2], words[pos+3] = pat2, prev

		prev = pat1
		pat1 = rotr64(pat2, uint8(prev)) + 0x333
		words[pos+4], words[pos+5] = pat1, prev

		prev = pat2
		pat2 = rotr64(pat1, uint8(prev)) + 0x444
		words[pos+6], words[pos+7] = pat2, prev

		prev = pat1
		pat1 = rotr64(pat2, uint8(prev)) + 0x555
		words[pos+8], words[pos+9] = pat1, prev

		prev = pat2
		pat2 = rotr64(pat1, uint8(prev)) + 0x666
		words[pos+10], words[pos+11] = pat2, prev

		prev = pat1
		pat1 = rotr64(pat2, uint8(prev)) + 0x777
		words[pos+12], words[pos+13] = pat1, prev

		prev = pat2
		pat2 = rotr64(pat1, uint8(prev)) + 0x888
		words[pos+14], words[pos+15] = pat2, prev
	}
}

// rotr64 rotates v right by the low six bits of n.
func rotr64(v uint64, n uint8) uint64 {
	return bits.RotateLeft64(v, -int(n&63))
}

// rotl64 rotates v left by the low six bits of n.
func rotl64(v uint64, n uint8) uint64 {
	return bits.RotateLeft64(v, int(n&63))
}
