// Copyright (c) 2025 RainForest Hash Project
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package rainforest implements the RainForest proof-of-work hash function
// in both of its published versions: rf256 (v1, 2 MiB rambox, integer-only)
// and rfv2 (v2, 96 MiB rambox, floating-point perturbation and a two-pass
// outer structure).
//
// RainForest deliberately favors general-purpose 64-bit CPUs over GPUs,
// FPGAs and ASICs. It leans on operations that are cheap on modern CPUs
// (64-bit arithmetic, rotates, byte swaps, CRC32, AES rounds, IEEE-754
// double-precision transcendentals) and on a large per-thread scratch area,
// the rambox, that exploits L1 cache and memory bandwidth. CRC32 is used as
// a diffusion primitive only; none of this is a general-purpose secure hash.
//
// The v1 entry points are Sum256 and Sum256Seed, plus a streaming Digest
// that implements hash.Hash. The v2 entry points are SumV2 and SumV2Seed,
// or a configured Hasher built with NewHasher. A v2 hash needs a Rambox; a
// Rambox is owned by exactly one hash at a time unless it has been marked
// read-only, in which case it may be shared across parallel workers.
//
// Hardware AES and CRC32 instructions are selected at process start when
// the CPU reports them; the portable paths produce bit-identical digests.
package rainforest

import (
	"errors"
	"hash"
)

const (
	// Size is the digest size in bytes for both versions.
	Size = 32

	// BlockSize is the amount of input consumed by one round.
	BlockSize = 4

	// HeaderSize is the size of a mining block header: 76 constant bytes
	// followed by a 4-byte nonce.
	HeaderSize = 80

	// V1RamboxWords is the v1 scratch area size in 64-bit words (2 MiB).
	V1RamboxWords = 2 * 1024 * 1024 / 8

	// V2RamboxWords is the v2 scratch area size in 64-bit words (96 MiB).
	V2RamboxWords = 96 * 1024 * 1024 / 8

	// V1Seed is the default rolling-CRC seed for rf256.
	V1Seed = 20180213

	// V2Seed is the default rolling-CRC seed for rfv2.
	V2Seed = 0x20180213

	// v1RamboxLoops and v2RamboxLoops are the lookup-and-update iteration
	// counts per rambox step.
	v1RamboxLoops = 5
	v2RamboxLoops = 4

	// ramboxHist bounds the v2 change list. Once a hash has written more
	// cells than this, the rambox can only be recovered by a full restore.
	ramboxHist = 1536

	// changesReadOnly marks a context whose rambox must not be written.
	changesReadOnly = 65535
)

var (
	ErrRamboxSize   = errors.New("rambox has the wrong word count")
	ErrTemplateSize = errors.New("rambox template has the wrong word count")
	ErrNonceRange   = errors.New("nonce range is empty")
)

// Sum256 computes the rf256 (v1) digest of msg with the default seed.
//
// Every call owns a private rambox which is re-initialized from scratch;
// this costs 2 MiB of writes per hash and is the v1 design, not an
// implementation shortcut. Use a Digest to reuse the allocation.
func Sum256(msg []byte) [Size]byte {
	return Sum256Seed(msg, V1Seed)
}

// Sum256Seed computes the rf256 (v1) digest of msg with an explicit seed.
func Sum256Seed(msg []byte, seed uint32) [Size]byte {
	d := New256Seed(seed)
	d.ctx.update(msg)
	var out [Size]byte
	d.ctx.finalV1(&out)
	return out
}

// Digest is a streaming rf256 (v1) hash. It implements hash.Hash.
//
// A Digest owns its rambox and must not be used concurrently.
type Digest struct {
	ctx    context
	rambox []uint64
	seed   uint32
}

var _ hash.Hash = (*Digest)(nil)

// New256 returns a streaming rf256 hash with the default seed.
func New256() *Digest {
	return New256Seed(V1Seed)
}

// New256Seed returns a streaming rf256 hash with an explicit seed.
func New256Seed(seed uint32) *Digest {
	d := &Digest{
		rambox: make([]uint64, V1RamboxWords),
		seed:   seed,
	}
	d.Reset()
	return d
}

// Reset re-initializes the rambox and the hash state. The rambox refill is
// the dominant cost of a v1 hash.
func (d *Digest) Reset() {
	raminit(d.rambox)
	d.ctx.init(d.rambox, d.seed, false)
}

// Write absorbs p into the hash state, one round per 4 input bytes.
// It never returns an error.
func (d *Digest) Write(p []byte) (int, error) {
	d.ctx.update(p)
	return len(p), nil
}

// Sum appends the current digest to b and returns the resulting slice.
//
// Finalization consumes the hash context and perturbs the rambox, so Sum
// works on a full copy of both to keep the Digest usable afterwards. The
// copy is 2 MiB; callers hashing exactly once should prefer Sum256.
func (d *Digest) Sum(b []byte) []byte {
	rambox := make([]uint64, len(d.rambox))
	copy(rambox, d.rambox)
	ctx := d.ctx
	ctx.rambox = rambox

	var out [Size]byte
	ctx.finalV1(&out)
	return append(b, out[:]...)
}

// Size returns the digest size in bytes.
func (d *Digest) Size() int { return Size }

// BlockSize returns the input granularity of the round function.
func (d *Digest) BlockSize() int { return BlockSize }
