// Copyright (c) 2025 RainForest Hash Project
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package rainforest

import "math/bits"

// divbox perturbs two state words through byte-swap and division/modulo,
// two of the operations this design counts on being cheap on CPUs and
// painful on narrow hardware.
func divbox(v0, v1 uint64) (uint64, uint64) {
	pl, ph := ^v0, ^v1
	ql, qh := bits.ReverseBytes64(v0), bits.ReverseBytes64(v1)

	switch {
	case pl == 0 || ql == 0:
		pl, ql = 0, 0
	case pl > ql:
		pl, ql = pl/ql, pl%ql
	default:
		pl, ql = ql/pl, ql%pl
	}

	switch {
	case ph == 0 || qh == 0:
		ph, qh = 0, 0
	case ph > qh:
		ph, qh = ph/qh, ph%qh
	default:
		ph, qh = qh/ph, qh%ph
	}

	pl += qh
	ph += ql
	return v0 - pl, v1 - ph
}

// rotbox runs the six rotate/add steps over two state words, folding in
// constant-table material selected by the evolving low bytes.
func rotbox(v0, v1 uint64, b0, b1 uint8) (uint64, uint64) {
	l := rotr64(v0, b0)
	h := rotl64(v1, b1)
	l += wltable(b0)
	h += whtable(b1)
	b0, b1 = uint8(l), uint8(h)
	l = rotl64(l, b1)
	h = rotr64(h, b0)
	b0, b1 = uint8(l), uint8(h)
	l = rotr64(l, b1)
	h = rotl64(h, b0)
	return l, h
}
