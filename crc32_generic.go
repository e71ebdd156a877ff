// Copyright (c) 2025 RainForest Hash Project
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

//go:build !arm64

package rainforest

// x86's SSE4.2 CRC32 instruction implements the Castagnoli polynomial, not
// the IEEE one this hash depends on, so only ARMv8 has a hardware path.
const useHWCRC = false

func hwCRC32W(crc, msg uint32) uint32 { panic("rainforest: no hardware crc32") }

func hwCRC32X(crc uint32, msg uint64) uint32 { panic("rainforest: no hardware crc32") }
