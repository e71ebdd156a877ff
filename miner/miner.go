// Copyright (c) 2025 RainForest Hash Project
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

// Package miner adapts the rainforest hash core to the mining-framework
// calling convention: an 80-byte header held as twenty 32-bit words, a
// 256-bit target, and a scanhash loop that owns the nonce word.
package miner

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/rfhash/rainforest"
)

const (
	// HeaderWords is the header size in 32-bit words; the last word is the
	// nonce.
	HeaderWords = rainforest.HeaderSize / 4

	// TargetWords is the target size in 32-bit words, most significant
	// word last.
	TargetWords = rainforest.Size / 4
)

// Work is one unit of mining work as handed over by a framework: the
// header words in host order, the last one being the current nonce, and
// the target. The upper nonce bound is passed to ScanHash separately.
type Work struct {
	Data   [HeaderWords]uint32
	Target [TargetWords]uint32
}

// HeaderBytes serializes the header with every word big-endian encoded and
// the given nonce in the last slot, which is the byte order the hash is
// defined over.
func (w *Work) HeaderBytes(nonce uint32) [rainforest.HeaderSize]byte {
	var hdr [rainforest.HeaderSize]byte
	for i := 0; i < HeaderWords-1; i++ {
		binary.BigEndian.PutUint32(hdr[i*4:], w.Data[i])
	}
	binary.BigEndian.PutUint32(hdr[rainforest.HeaderSize-4:], nonce)
	return hdr
}

// FullTest reports whether digest is numerically below or equal to the
// 256-bit target, comparing from the most significant word down.
func FullTest(digest *[rainforest.Size]byte, target *[TargetWords]uint32) bool {
	for i := TargetWords - 1; i >= 0; i-- {
		h := binary.LittleEndian.Uint32(digest[i*4:])
		if h > target[i] {
			return false
		}
		if h < target[i] {
			return true
		}
	}
	return true
}

// Result is the outcome of a ScanHash call.
type Result struct {
	// Found reports whether a nonce met the full target.
	Found bool

	// Nonce is the winning nonce; on a miss it is the next nonce to try.
	Nonce uint32

	// Digest is the winning digest when Found is set.
	Digest [rainforest.Size]byte

	// HashesDone counts nonces consumed.
	HashesDone uint64
}

// ScanHash scans nonces from w.Data's last word up to maxNonce, returning
// on the first digest that passes both the cheap top-word check and the
// full target compare, or when restart becomes true.
//
// The rambox must be initialized and is owned by this call for its
// duration; its contents are rewound between attempts.
func ScanHash(w *Work, rb *rainforest.Rambox, maxNonce uint32, restart *atomic.Bool) (Result, error) {
	var res Result

	firstNonce := w.Data[HeaderWords-1]
	hdr := w.HeaderBytes(firstNonce)
	htarg := w.Target[TargetWords-1]

	nonce := firstNonce
	for nonce < maxNonce && (restart == nil || !restart.Load()) {
		scan, err := rainforest.ScanHeader(&hdr, rb, htarg, nonce, maxNonce, restart)
		if err != nil {
			return res, err
		}
		res.HashesDone += scan.HashesDone
		if !scan.Found {
			break
		}
		if FullTest(&scan.Digest, &w.Target) {
			w.Data[HeaderWords-1] = scan.Nonce
			res.Found = true
			res.Nonce = scan.Nonce
			res.Digest = scan.Digest
			return res, nil
		}
		// Top word matched but a lower word missed; resume past it.
		nonce = scan.Nonce + 1
	}

	w.Data[HeaderWords-1] = firstNonce + uint32(res.HashesDone)
	res.Nonce = w.Data[HeaderWords-1]
	return res, nil
}
