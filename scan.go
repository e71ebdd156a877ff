// Copyright (c) 2025 RainForest Hash Project
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package rainforest

import (
	"encoding/binary"
	"sync/atomic"
)

// ScanResult reports the outcome of a nonce scan.
type ScanResult struct {
	// Nonce is the hit nonce when Found is set.
	Nonce uint32

	// Found reports whether a digest met the target.
	Found bool

	// Digest is the hit digest when Found is set.
	Digest [Size]byte

	// HashesDone counts nonces consumed, including ones rejected by the
	// sin pre-filter.
	HashesDone uint64
}

// ScanOption configures ScanHeader.
type ScanOption func(*scanConfig)

type scanConfig struct {
	tryAll bool
}

// ScanTryAll disables the sin pre-filter so every nonce in the range is
// fully hashed.
func ScanTryAll() ScanOption {
	return func(c *scanConfig) {
		c.tryAll = true
	}
}

// ScanHeader iterates nonces in [begin, end) over an 80-byte block header,
// patching the last four bytes with each big-endian nonce and comparing
// the digest's top 32-bit word against target. It returns on the first hit,
// when the range is exhausted, or when stop becomes true (checked between
// attempts; a plain eventual read is all that is promised).
//
// Most nonces are dropped before the expensive hash by the sin pre-filter
// on the CRC of the nonce bytes. The filter is part of the mining protocol:
// producers and verifiers must agree on it, so disable it (ScanTryAll) only
// for testing.
//
// The rambox is rewound after every writing hash, so a long scan reuses one
// rambox without drift.
func ScanHeader(hdr *[HeaderSize]byte, rb *Rambox, target uint32, begin, end uint32, stop *atomic.Bool, opts ...ScanOption) (ScanResult, error) {
	var res ScanResult

	if begin >= end {
		return res, ErrNonceRange
	}
	if rb == nil || rb.Words() != V2RamboxWords {
		return res, ErrRamboxSize
	}

	cfg := scanConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	work := *hdr
	msghInit := crc32Mem(0, work[:HeaderSize-4])

	for nonce := begin; nonce != end; nonce++ {
		if stop != nil && stop.Load() {
			break
		}

		binary.BigEndian.PutUint32(work[HeaderSize-4:], nonce)
		res.HashesDone++

		if !cfg.tryAll {
			msgh := crc32Mem(msghInit, work[HeaderSize-4:])
			if sinScaled(msgh) != 2 {
				continue
			}
		}

		ctx := newV2Context(rb, work[:], V2Seed, false)
		for pass := 0; pass < 2; pass++ {
			ctx.update(work[:])
			ctx.pad256()
		}
		var digest [Size]byte
		ctx.finalV2(&digest)
		rewind(rb, nil, ctx)

		if binary.LittleEndian.Uint32(digest[Size-4:]) <= target {
			res.Nonce = nonce
			res.Found = true
			res.Digest = digest
			return res, nil
		}
	}
	return res, nil
}
