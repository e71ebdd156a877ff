// Copyright (c) 2025 RainForest Hash Project
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package rainforest

import (
	"testing"

	prng "github.com/sixafter/prng-chacha"
	"golang.org/x/exp/constraints"
)

type number interface {
	constraints.Float | constraints.Integer
}

// hashesPerSecond converts a count and elapsed nanoseconds into a rate for
// reporting alongside the stock ns/op metric.
func hashesPerSecond[T number](count T, elapsedNs T) float64 {
	if elapsedNs == 0 {
		return 0
	}
	return float64(count) / (float64(elapsedNs) / 1e9)
}

func randomMessage(b *testing.B, n int) []byte {
	b.Helper()
	msg := make([]byte, n)
	if _, err := prng.Reader.Read(msg); err != nil {
		b.Fatalf("prng: %v", err)
	}
	return msg
}

// BenchmarkSum256 measures full v1 hashes of the 80-byte header size,
// rambox re-initialization included, which is how v1 runs in practice.
func BenchmarkSum256(b *testing.B) {
	msg := randomMessage(b, HeaderSize)
	b.SetBytes(HeaderSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Sum256(msg)
	}
	b.ReportMetric(hashesPerSecond(b.N, int(b.Elapsed().Nanoseconds())), "H/s")
}

// BenchmarkSumV2 measures full v2 hashes over one reused rambox.
func BenchmarkSumV2(b *testing.B) {
	rb := NewRambox()
	msg := randomMessage(b, HeaderSize)
	b.SetBytes(HeaderSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := SumV2(msg, rb, nil); err != nil {
			b.Fatal(err)
		}
	}
	b.ReportMetric(hashesPerSecond(b.N, int(b.Elapsed().Nanoseconds())), "H/s")
}

// BenchmarkRaminitV1 measures the 2 MiB deterministic fill.
func BenchmarkRaminitV1(b *testing.B) {
	words := make([]uint64, V1RamboxWords)
	b.SetBytes(V1RamboxWords * 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		raminit(words)
	}
}

// BenchmarkAES2r measures the dispatched two-round AES primitive.
func BenchmarkAES2r(b *testing.B) {
	var block, key [16]byte
	copy(key[:], "benchmark key 16")
	b.SetBytes(16)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		aes2rEncrypt(&block, &key)
	}
}

// BenchmarkCRCUpdate64 measures the 64-bit CRC kernel feeding the rambox
// addressing loop.
func BenchmarkCRCUpdate64(b *testing.B) {
	var crc uint32
	x := uint64(0x0123456789abcdef)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		crc = crcUpdate64(crc, x)
		x += uint64(crc)
	}
	benchSink = uint64(crc)
}

var benchSink uint64
