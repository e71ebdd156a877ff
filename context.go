// Copyright (c) 2025 RainForest Hash Project
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package rainforest

import "encoding/binary"

// context carries the full hash state for one run of either version: the
// 256-bit state, the rolling CRC, the pending input word, the byte counter,
// and a non-owning reference to the rambox. The state is little-endian
// aliased: h[0..3] are the four 64-bit words, the low halves being the even
// 32-bit words.
type context struct {
	h    [4]uint64
	crc  uint32
	word uint32
	len  uint64

	rambox []uint64

	// Region window and loop count. v1 spans the whole rambox; v2 confines
	// lookups to a message-dependent window [rbO, rbO+rbL).
	rbO   uint64
	rbL   uint64
	loops int
	v2    bool

	// v2 write bookkeeping. changes holds changesReadOnly for contexts that
	// must not touch the rambox at all.
	changes int
	hist    [ramboxHist]uint32
	prev    [ramboxHist]uint64

	// writes counts rambox store events, for diagnostics.
	writes uint64
}

// init binds the rambox and resets the rolling state to the IV and seed.
func (c *context) init(rambox []uint64, seed uint32, v2 bool) {
	c.h[0] = binary.LittleEndian.Uint64(rfIV[0:8])
	c.h[1] = binary.LittleEndian.Uint64(rfIV[8:16])
	c.h[2] = binary.LittleEndian.Uint64(rfIV[16:24])
	c.h[3] = binary.LittleEndian.Uint64(rfIV[24:32])
	c.crc = seed
	c.word = 0
	c.len = 0
	c.rambox = rambox
	c.v2 = v2
	c.changes = 0
	c.writes = 0
	if v2 {
		c.rbO = 0
		c.rbL = uint64(len(rambox))
		c.loops = v2RamboxLoops
	} else {
		c.rbO = 0
		c.rbL = V1RamboxWords
		c.loops = v1RamboxLoops
	}
}

// scramble mixes the rolling CRC through the low four 32-bit state words
// and returns the new CRC.
func (c *context) scramble() uint32 {
	c.crc = crc32x4(&c.h, c.crc)
	return c.crc
}

// inject folds the pending input word into the state. The CRC width tracks
// how many bytes of the word are real, which the low two bits of the byte
// counter encode.
func (c *context) inject() {
	crc := c.scramble()
	switch c.len & 3 {
	case 0:
		c.crc = crcUpdate32(crc, c.word)
	case 3:
		c.crc = crcUpdate24(crc, c.word)
	case 2:
		c.crc = crcUpdate16(crc, c.word)
	default:
		c.crc = crcUpdate8(crc, c.word)
	}
	c.word = 0
}

// rot32x256 rotates the eight 32-bit state words up one position.
func (c *context) rot32x256() {
	h0, h1, h2, h3 := c.h[0], c.h[1], c.h[2], c.h[3]
	c.h[0] = h0<<32 | h3>>32
	c.h[1] = h1<<32 | h0>>32
	c.h[2] = h2<<32 | h1>>32
	c.h[3] = h3<<32 | h2>>32
}

// aesenc encrypts the low 128 bits of the state with two AES rounds, keyed
// by the high 128 bits.
func (c *context) aesenc() {
	var block, key [16]byte
	binary.LittleEndian.PutUint64(block[0:8], c.h[0])
	binary.LittleEndian.PutUint64(block[8:16], c.h[1])
	binary.LittleEndian.PutUint64(key[0:8], c.h[2])
	binary.LittleEndian.PutUint64(key[8:16], c.h[3])
	aes2rEncrypt(&block, &key)
	c.h[0] = binary.LittleEndian.Uint64(block[0:8])
	c.h[1] = binary.LittleEndian.Uint64(block[8:16])
}

// ramboxStep runs the lookup-and-update loop, threading old through CRC
// feedback, a rotated table word, and a probabilistic write back.
//
// The two versions differ deliberately: v1 addresses the whole rambox,
// writes when the top byte is below 0x80 and truncates the returned carry
// to 32 bits; v2 addresses the region window, writes on a clear sign bit,
// records every write in the change list, and keeps the full 64-bit carry.
func (c *context) ramboxStep(old uint64) uint64 {
	if !c.v2 {
		for i := 0; i < c.loops; i++ {
			old = add64CRC32(old)
			idx := old & (V1RamboxWords - 1)
			k := c.rambox[idx]
			old += rotr64(k, uint8(old/V1RamboxWords))
			if old>>56 < 0x80 {
				c.rambox[idx] = old
				c.writes++
			}
		}
		return uint64(uint32(old))
	}

	for i := 0; i < c.loops; i++ {
		old = add64CRC32(old)
		idx := c.rbO + old%c.rbL
		k := c.rambox[idx]
		old += rotr64(k, uint8(old/c.rbL))
		if int64(old) >= 0 && c.changes != changesReadOnly {
			if c.changes < ramboxHist {
				c.hist[c.changes] = uint32(idx)
				c.prev[c.changes] = k
				c.changes++
			}
			c.rambox[idx] = old
			c.writes++
		}
	}
	return old
}

// oneRound consumes the pending 32-bit word and perturbs the whole state.
// Each round touches 128 bits of output, 96 of which overlap the previous
// round; with five or more rounds every output bit depends on every input
// bit.
func (c *context) oneRound() {
	c.rot32x256()

	carry := c.len<<32 + uint64(c.crc)
	if c.v2 {
		c.h[0] += uint64(scaledSin5(int32(c.crc)))
	}
	c.scramble()
	c.h[0], c.h[1] = divbox(c.h[0], c.h[1])
	c.scramble()

	for s := 0; s < 4; s++ {
		carry = c.ramboxStep(carry)
		b0 := uint8(carry >> (8 * s))
		b1 := uint8(carry >> (56 - 8*s))
		c.h[0], c.h[1] = rotbox(c.h[0], c.h[1], b0, b1)
		c.scramble()
		c.h[0], c.h[1] = divbox(c.h[0], c.h[1])
		if s < 3 {
			c.scramble()
			c.h[0], c.h[1] = divbox(c.h[0], c.h[1])
			c.scramble()
			continue
		}
		c.inject()
		c.aesenc()
		c.scramble()
	}
}

// update consumes msg four bytes at a time, running one round per complete
// input word. Partial words accumulate byte by byte until the counter
// reaches a word boundary.
func (c *context) update(msg []byte) {
	for len(msg) > 0 {
		if c.len&3 == 0 && len(msg) >= 4 {
			c.word = binary.LittleEndian.Uint32(msg)
			c.len += 4
			c.oneRound()
			msg = msg[4:]
			continue
		}
		c.word |= uint32(msg[0]) << (8 * (c.len & 3))
		c.len++
		msg = msg[1:]
		if c.len&3 == 0 {
			c.oneRound()
		}
	}
}

var zeroPad [Size]byte

// pad256 feeds zero bytes until the byte counter reaches the next 16-byte
// (128-bit) boundary, the way the v2 inner driver closes a pass.
func (c *context) pad256() {
	if pad := (Size - c.len) & 0xF; pad != 0 {
		c.update(zeroPad[:pad])
	}
}

// finalV1 closes a v1 hash: one round for a ragged tail, rounds up to the
// 256-bit input minimum, then four tail rounds to complete the last 128
// bits, and the state is copied out.
func (c *context) finalV1(out *[Size]byte) {
	if c.len&3 != 0 {
		c.oneRound()
	}
	for pad := uint64(0); pad+c.len < Size; pad += 4 {
		c.oneRound()
	}
	c.oneRound()
	c.oneRound()
	c.oneRound()
	c.oneRound()
	c.extract(out)
}

// finalV2 closes a v2 hash with the four tail rounds.
func (c *context) finalV2(out *[Size]byte) {
	c.oneRound()
	c.oneRound()
	c.oneRound()
	c.oneRound()
	c.extract(out)
}

func (c *context) extract(out *[Size]byte) {
	binary.LittleEndian.PutUint64(out[0:8], c.h[0])
	binary.LittleEndian.PutUint64(out[8:16], c.h[1])
	binary.LittleEndian.PutUint64(out[16:24], c.h[2])
	binary.LittleEndian.PutUint64(out[24:32], c.h[3])
}
