// Copyright (c) 2025 RainForest Hash Project
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package rainforest

import (
	"testing"

	prng "github.com/sixafter/prng-chacha"
	"github.com/snksoft/crc"
	"github.com/stretchr/testify/assert"
)

// rawIEEE describes the rolling CRC used by the hash: the reflected IEEE
// 802.3 polynomial with no initial value and no final complement.
var rawIEEE = &crc.Parameters{
	Width:      32,
	Polynomial: 0x04C11DB7,
	ReflectIn:  true,
	ReflectOut: true,
	Init:       0,
	FinalXor:   0,
}

// TestCRCTableReference verifies the well-known anchor entries of the
// generated table.
func TestCRCTableReference(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	is.Equal(uint32(0x00000000), crcTable[0])
	is.Equal(uint32(0x77073096), crcTable[1], "table entry 1 pins the polynomial")
	is.Equal(uint32(0xedb88320), crcTable[0x80], "entry 0x80 is the reflected polynomial")
}

// TestCRC32MemMatchesReferenceEngine cross-checks the byte-wise kernel
// against an independent CRC engine configured for the same parameters.
func TestCRC32MemMatchesReferenceEngine(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	msgs := [][]byte{
		nil,
		{0x00},
		{0xff},
		[]byte("RainForestProCpuAntiAsic"),
		make([]byte, 256),
	}
	if _, err := prng.Reader.Read(msgs[len(msgs)-1]); err != nil {
		t.Fatalf("prng: %v", err)
	}

	for _, msg := range msgs {
		want := uint32(crc.CalculateCRC(rawIEEE, msg))
		is.Equal(want, crc32Mem(0, msg), "crc32Mem disagrees with reference engine on %x", msg)
	}
}

// TestCRCUpdateWidths verifies that the narrow kernels agree with the
// byte-wise path on properly masked words.
func TestCRCUpdateWidths(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	const seed = uint32(0xdeadbeef)
	word := uint32(0x00c0ffee)

	is.Equal(crc32Mem(seed, []byte{0xee}), crcUpdate8(seed, word&0xff))
	is.Equal(crc32Mem(seed, []byte{0xee, 0xff}), crcUpdate16(seed, word&0xffff))
	is.Equal(crc32Mem(seed, []byte{0xee, 0xff, 0xc0}), crcUpdate24(seed, word&0xffffff))
	is.Equal(crc32Mem(seed, []byte{0xee, 0xff, 0xc0, 0x00}), crcUpdate32(seed, word))
}

// TestCRCUpdate64IsTwoHalves verifies the 64-bit kernel is the low half
// followed by the high half.
func TestCRCUpdate64IsTwoHalves(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	var buf [8]byte
	for i := 0; i < 64; i++ {
		if _, err := prng.Reader.Read(buf[:]); err != nil {
			t.Fatalf("prng: %v", err)
		}
		x := uint64(buf[0]) | uint64(buf[1])<<8 | uint64(buf[2])<<16 | uint64(buf[3])<<24 |
			uint64(buf[4])<<32 | uint64(buf[5])<<40 | uint64(buf[6])<<48 | uint64(buf[7])<<56

		want := crcUpdate32(crcUpdate32(0x13371337, uint32(x)), uint32(x>>32))
		is.Equal(want, crcUpdate64(0x13371337, x))
	}
}

// TestAdd64CRC32 verifies the additive CRC feedback helper.
func TestAdd64CRC32(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	is.Equal(uint64(0), add64CRC32(0), "zero has a zero CRC under a zero seed")

	x := uint64(0x0123456789abcdef)
	is.Equal(x+uint64(crcUpdate64(0, x)), add64CRC32(x))
}
