// Copyright (c) 2025 RainForest Hash Project
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package rainforest

import (
	"crypto/sha256"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTableDerivation recomputes rfTable and rfIV from their defining seed
// string: eighteen iterated SHA-256 digests of "RainForestProCpuAntiAsic",
// the first sixteen filling the 512-byte table and the eighteenth being
// the IV.
func TestTableDerivation(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	ref := []byte("RainForestProCpuAntiAsic")
	var derived [18][sha256.Size]byte
	for i := range derived {
		derived[i] = sha256.Sum256(ref)
		ref = derived[i][:]
	}

	for i := 0; i < 16; i++ {
		is.Equal(derived[i][:], rfTable[i*32:(i+1)*32],
			"table row %d does not match iterated digest %d", i, i)
	}

	// The trailing six bytes only exist to keep the unaligned 64-bit read
	// from offset 510 in bounds; they continue the 17th digest.
	is.Equal(derived[16][:6], rfTable[512:518])

	is.Equal(derived[17][:], rfIV[:], "the IV is the 18th iterated digest")
}

// TestTableLookups verifies the two word views of the table against plain
// byte assembly, including the top index that needs the trailing bytes.
func TestTableLookups(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	for _, idx := range []uint8{0, 1, 7, 128, 254, 255} {
		var lo, hi uint64
		for b := 7; b >= 0; b-- {
			lo = lo<<8 | uint64(rfTable[int(idx)+b])
			hi = hi<<8 | uint64(rfTable[2*int(idx)+b])
		}
		is.Equal(lo, wltable(idx), "wltable(%d)", idx)
		is.Equal(hi, whtable(idx), "whtable(%d)", idx)
	}

	is.Equal(binary.LittleEndian.Uint64(rfTable[510:518]), whtable(255))
}
