// Copyright (c) 2025 RainForest Hash Project
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

//go:build arm64

package rainforest

import "golang.org/x/sys/cpu"

// ARMv8's CRC32W/CRC32X compute exactly the reflected IEEE polynomial the
// table path does, so the selection is made once at process start.
var useHWCRC = cpu.ARM64.HasCRC32

//go:noescape
func hwCRC32W(crc, msg uint32) uint32

//go:noescape
func hwCRC32X(crc uint32, msg uint64) uint32
