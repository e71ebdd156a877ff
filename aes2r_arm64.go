// Copyright (c) 2025 RainForest Hash Project
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

//go:build arm64

package rainforest

import "golang.org/x/sys/cpu"

var hasAESRound = cpu.ARM64.HasAES

//go:noescape
func aes2rAsm(block *[16]byte, rk *[48]byte)
