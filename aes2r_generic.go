// Copyright (c) 2025 RainForest Hash Project
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

//go:build !amd64 && !arm64

package rainforest

const hasAESRound = false

func aes2rAsm(block *[16]byte, rk *[48]byte) { panic("rainforest: no hardware aes") }
