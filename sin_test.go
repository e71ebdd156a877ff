// Copyright (c) 2025 RainForest Hash Project
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package rainforest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCheckSin pins the floating-point self-test to its reference sums; a
// mismatch means the platform's sin/pow are not computing bit-exact
// IEEE-754 doubles and every v2 digest would be wrong.
func TestCheckSin(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	sum1, sum5 := CheckSin()
	is.Equal(uint64(300239689190865), sum1)
	is.Equal(uint64(300239688428374), sum5)
	is.True(CheckSinOK())
}

// TestSinScaledRange checks the scaled sine stays within its fixed-point
// range and is deterministic.
func TestSinScaledRange(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	for _, x := range []uint32{0, 1, 2, 0x13371337, 0xffffffff} {
		v := sinScaled(x)
		is.GreaterOrEqual(v, int32(-65536))
		is.LessOrEqual(v, int32(65536))
		is.Equal(v, sinScaled(x))
	}
}

// TestScaledSin5Range does the same for the per-round perturbation term.
func TestScaledSin5Range(t *testing.T) {
	t.Parallel()
	is := assert.New(t)

	for _, i := range []int32{-1 << 31, -12345, -1, 0, 1, 12345, 1<<31 - 1} {
		v := scaledSin5(i)
		is.GreaterOrEqual(v, int64(-131072))
		is.LessOrEqual(v, int64(131072))
		is.Equal(v, scaledSin5(i))
	}
}
