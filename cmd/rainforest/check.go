// Copyright (c) 2025 RainForest Hash Project
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rfhash/rainforest"
)

// testMsg is the 80-byte self-test message shared by both versions.
var testMsg = [80]byte{
	0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80,
	0x01, 0x03, 0x05, 0x09, 0x11, 0x21, 0x41, 0x81,
	0x02, 0x02, 0x06, 0x0A, 0x12, 0x22, 0x42, 0x82,
	0x05, 0x06, 0x04, 0x0C, 0x14, 0x24, 0x44, 0x84,
	0x09, 0x0A, 0x0C, 0x08, 0x18, 0x28, 0x48, 0x88,
	0x11, 0x12, 0x14, 0x18, 0x10, 0x30, 0x50, 0x90,
	0x21, 0x22, 0x24, 0x28, 0x30, 0x20, 0x60, 0xA0,
	0x41, 0x42, 0x44, 0x48, 0x50, 0x60, 0x40, 0xC0,
	0x81, 0x82, 0x84, 0x88, 0x90, 0xA0, 0xC0, 0x80,
	0x18, 0x24, 0x42, 0x81, 0x99, 0x66, 0x55, 0xAA,
}

// Expected digests for the self-test patterns.
var (
	testMsgOutV2    = mustHex("e946dfcd6b29c39eb107ca71c45ffff2f1eb47305c6050a17e4c5d3f0ad332cb")
	testMsgOut256V2 = mustHex("e9197e1274e26028b76e2ce7df78d809c0f3a20e74cd6f6c025d75c22c459960")
	testMsgOut256V1 = mustHex("e9432327fb77b58a7310152aea7516ef395947b98d23f277743e7ca56b176cf9")
)

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run the built-in self-test vectors",
	Run: func(cmd *cobra.Command, args []string) {
		if !runCheck() {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck() bool {
	ok := true

	if !rainforest.CheckSinOK() {
		sum1, sum5 := rainforest.CheckSin()
		slog.Error("floating-point stack is non-conforming",
			"sum1", sum1, "sum5", sum5)
		ok = false
	}

	slog.Info("initializing rambox")
	rambox := rainforest.NewRambox()

	fmt.Println("Single hash:")
	out, err := rainforest.SumV2(testMsg[:], rambox, nil)
	if err != nil {
		slog.Error("hash failed", "error", err)
		return false
	}
	if !bytes.Equal(out[:], testMsgOutV2) {
		print256(out[:], " invalid")
		print256(testMsgOutV2, "expected")
		ok = false
	} else {
		print256(out[:], "valid")
	}

	fmt.Println("256-loop hash:")
	msg := testMsg
	for loops := 0; loops < 256; loops++ {
		for i := range msg {
			msg[i] ^= byte(loops)
		}
		out, err = rainforest.SumV2(msg[:], rambox, nil)
		if err != nil {
			slog.Error("hash failed", "error", err)
			return false
		}
		copy(msg[:32], out[:])
	}
	if !bytes.Equal(out[:], testMsgOut256V2) {
		print256(out[:], " invalid")
		print256(testMsgOut256V2, "expected")
		ok = false
	} else {
		print256(out[:], "valid")
	}

	fmt.Println("v1 256-loop hash:")
	msg = testMsg
	var out1 [rainforest.Size]byte
	for loops := 0; loops < 256; loops++ {
		for i := range msg {
			msg[i] ^= byte(loops)
		}
		out1 = rainforest.Sum256(msg[:])
		copy(msg[:32], out1[:])
	}
	if !bytes.Equal(out1[:], testMsgOut256V1) {
		print256(out1[:], " invalid")
		print256(testMsgOut256V1, "expected")
		ok = false
	} else {
		print256(out1[:], "valid")
	}

	return ok
}

func print256(b []byte, tag string) {
	fmt.Printf("%s: %s\n", tag, hex.EncodeToString(b))
}
