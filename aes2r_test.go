// Copyright (c) 2025 RainForest Hash Project
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package rainforest

import (
	"encoding/hex"
	"testing"

	prng "github.com/sixafter/prng-chacha"
	"github.com/stretchr/testify/assert"
)

// TestAESKeyExpansion pins the first two key schedule steps to the FIPS-197
// appendix A.1 example key.
func TestAESKeyExpansion(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	key, _ := hex.DecodeString("2b7e151628aed2a6abf7158809cf4f3c")
	var rk [48]byte
	aes2rExpandKey((*[16]byte)(key), &rk)

	is.Equal(key, rk[0:16], "round key 0 is the input key")

	want1, _ := hex.DecodeString("a0fafe1788542cb123a339392a6c7605")
	is.Equal(want1, rk[16:32], "round key 1")

	want2, _ := hex.DecodeString("f2c295f27a96b9435935807a7359f67f")
	is.Equal(want2, rk[32:48], "round key 2")
}

// TestAESSBoxAnchors pins well-known substitution box entries.
func TestAESSBoxAnchors(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	is.Equal(byte(0x63), aesSBox[0x00])
	is.Equal(byte(0x7c), aesSBox[0x01])
	is.Equal(byte(0xca), aesSBox[0x10])
	is.Equal(byte(0x16), aesSBox[0xff])
}

// TestAES2rPortableMatchesHardware runs the portable rounds against the
// hardware path on random blocks. On machines without the AES extension the
// test degenerates to a determinism check.
func TestAES2rPortableMatchesHardware(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	var block, key [16]byte
	for i := 0; i < 128; i++ {
		if _, err := prng.Reader.Read(block[:]); err != nil {
			t.Fatalf("prng: %v", err)
		}
		if _, err := prng.Reader.Read(key[:]); err != nil {
			t.Fatalf("prng: %v", err)
		}

		var rk [48]byte
		aes2rExpandKey(&key, &rk)

		portable := block
		for j := range portable {
			portable[j] ^= rk[j]
		}
		aesRound(&portable, (*[16]byte)(rk[16:32]))
		aesRound(&portable, (*[16]byte)(rk[32:48]))

		dispatched := block
		aes2rEncrypt(&dispatched, &key)

		is.Equal(portable, dispatched, "portable and dispatched AES2r disagree")
	}
}

// TestAES2rChangesEveryRun sanity-checks diffusion: two blocks differing in
// one bit must not encrypt to the same output.
func TestAES2rChangesEveryRun(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	var key [16]byte
	a := [16]byte{0x01}
	b := [16]byte{0x03}
	aes2rEncrypt(&a, &key)
	aes2rEncrypt(&b, &key)
	is.NotEqual(a, b)
}
