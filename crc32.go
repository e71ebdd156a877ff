// Copyright (c) 2025 RainForest Hash Project
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package rainforest

import "hash/crc32"

// The rolling CRC uses the reflected IEEE 802.3 polynomial with no initial
// or final complement, so the stdlib table is indexed directly rather than
// going through hash/crc32's Update.
var crcTable = crc32.MakeTable(crc32.IEEE)

// crc32x4 folds the CRC through the low four 32-bit state words and returns
// the new CRC. Each word is replaced by the running CRC.
func crc32x4(state *[4]uint64, crc uint32) uint32 {
	lo := crcUpdate32(crc, uint32(state[0]))
	hi := crcUpdate32(lo, uint32(state[0]>>32))
	state[0] = uint64(lo) | uint64(hi)<<32

	lo = crcUpdate32(hi, uint32(state[1]))
	hi = crcUpdate32(lo, uint32(state[1]>>32))
	state[1] = uint64(lo) | uint64(hi)<<32
	return hi
}

// crcUpdate8 advances crc by the low byte of msg. The full message word is
// folded in first, matching the reference table path bit for bit.
func crcUpdate8(crc, msg uint32) uint32 {
	crc ^= msg
	crc = crcTable[crc&0xff] ^ (crc >> 8)
	return crc
}

func crcUpdate16(crc, msg uint32) uint32 {
	crc ^= msg
	crc = crcTable[crc&0xff] ^ (crc >> 8)
	crc = crcTable[crc&0xff] ^ (crc >> 8)
	return crc
}

func crcUpdate24(crc, msg uint32) uint32 {
	crc ^= msg
	crc = crcTable[crc&0xff] ^ (crc >> 8)
	crc = crcTable[crc&0xff] ^ (crc >> 8)
	crc = crcTable[crc&0xff] ^ (crc >> 8)
	return crc
}

func crcUpdate32(crc, msg uint32) uint32 {
	if useHWCRC {
		return hwCRC32W(crc, msg)
	}
	crc ^= msg
	crc = crcTable[crc&0xff] ^ (crc >> 8)
	crc = crcTable[crc&0xff] ^ (crc >> 8)
	crc = crcTable[crc&0xff] ^ (crc >> 8)
	crc = crcTable[crc&0xff] ^ (crc >> 8)
	return crc
}

// crcUpdate64 advances crc by an eight-byte message, low half first.
func crcUpdate64(crc uint32, msg uint64) uint32 {
	if useHWCRC {
		return hwCRC32X(crc, msg)
	}
	crc = crcUpdate32(crc, uint32(msg))
	return crcUpdate32(crc, uint32(msg>>32))
}

// add64CRC32 adds to msg its own CRC32.
func add64CRC32(msg uint64) uint64 {
	return msg + uint64(crcUpdate64(0, msg))
}

// crc32Mem advances crc over an arbitrary byte buffer.
func crc32Mem(crc uint32, p []byte) uint32 {
	for _, b := range p {
		crc = crcTable[byte(crc)^b] ^ (crc >> 8)
	}
	return crc
}
