// Copyright (c) 2025 RainForest Hash Project
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package rainforest

import "math"

// The v2 perturbation leans on IEEE-754 double precision being exact and
// reproducible. A stack that approximates sin or pow, or a build that
// reorders the arithmetic, still hashes without error but produces wrong
// digests; CheckSin exists to catch that before mining against a live
// target.

// sinScaled maps a 32-bit value onto the scaled sine used by the nonce
// pre-filter.
func sinScaled(x uint32) int32 {
	return int32(math.Sin(float64(x)) * 65536.0)
}

// scaledSin5 is the per-round perturbation term: (sin(d)^5 + sin(d)) scaled
// to a 16.16 fixed point, where d is the signed CRC in sixteenths.
func scaledSin5(i int32) int64 {
	s := math.Sin(float64(i) / 16.0)
	return int64((math.Pow(s, 5) + s) * 65536.0)
}

// CheckSin exercises sin and pow across [-0x11111, 0x11111) sixteenths and
// returns the two running sums. On a conforming floating-point stack they
// are exactly 300239689190865 and 300239688428374; anything else means the
// platform will produce wrong v2 digests.
func CheckSin() (sum1, sum5 uint64) {
	var prev1, prev5 uint32
	for i := int32(-0x11111); i != 0x11111; i++ {
		d := float64(i) / 16.0
		next1 := uint32(int32(math.Sin(d) * 65536.0))
		next5 := uint32(int32(math.Pow(math.Sin(d), 5) * 65536.0))
		sum1 += uint64(next1 ^ prev1 ^ uint32(i))
		sum5 += uint64(next5 ^ prev5 ^ uint32(i))
		prev1 = next1
		prev5 = next5
	}
	return sum1, sum5
}

// CheckSinOK reports whether CheckSin produced the reference sums.
func CheckSinOK() bool {
	sum1, sum5 := CheckSin()
	return sum1 == 300239689190865 && sum5 == 300239688428374
}
