// Copyright (c) 2025 RainForest Hash Project
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package miner

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rfhash/rainforest"
)

// TestHeaderBytes verifies the big-endian word serialization and nonce
// placement.
func TestHeaderBytes(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	var w Work
	for i := range w.Data {
		w.Data[i] = uint32(i) * 0x01010101
	}

	hdr := w.HeaderBytes(0xdeadbeef)
	for i := 0; i < HeaderWords-1; i++ {
		is.Equal(w.Data[i], binary.BigEndian.Uint32(hdr[i*4:]), "word %d", i)
	}
	is.Equal([]byte{0xde, 0xad, 0xbe, 0xef}, hdr[rainforest.HeaderSize-4:])
}

// TestFullTest exercises the 256-bit target compare from the most
// significant word down.
func TestFullTest(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	var digest [rainforest.Size]byte
	var target [TargetWords]uint32

	is.True(FullTest(&digest, &target), "all-zero digest meets the zero target")

	digest[rainforest.Size-1] = 1 // top word becomes 0x01000000
	is.False(FullTest(&digest, &target))

	target[TargetWords-1] = 0x01000000
	is.True(FullTest(&digest, &target))

	// A smaller top word wins regardless of the lower words.
	target[TargetWords-1] = 0x01000001
	for i := 0; i < rainforest.Size-4; i++ {
		digest[i] = 0xff
	}
	is.True(FullTest(&digest, &target))
}

// TestScanHashPermissiveTarget runs the integration loop with a target that
// accepts everything; the first nonce that passes the sin pre-filter wins
// and lands back in the work structure, and a miss accounts for every nonce.
func TestScanHashPermissiveTarget(t *testing.T) {
	if testing.Short() {
		t.Skip("96 MiB rambox")
	}
	t.Parallel()
	is := assert.New(t)

	rb := rainforest.NewRambox()

	var w Work
	for i := range w.Data {
		w.Data[i] = uint32(0xa5a5a5a5)
	}
	w.Data[HeaderWords-1] = 100
	for i := range w.Target {
		w.Target[i] = 0xffffffff
	}

	res, err := ScanHash(&w, rb, 110, nil)
	is.NoError(err)

	// The sin pre-filter may reject every nonce in a window this small; a
	// hit, when reported, must be consistent.
	if res.Found {
		is.Equal(res.Nonce, w.Data[HeaderWords-1])
		is.True(FullTest(&res.Digest, &w.Target))

		hdr := w.HeaderBytes(res.Nonce)
		direct, err := rainforest.SumV2(hdr[:], rb, nil)
		is.NoError(err)
		is.Equal(direct, res.Digest)
	} else {
		is.Equal(uint64(10), res.HashesDone, "a miss must account for the whole range")
	}
}
