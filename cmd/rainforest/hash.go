// Copyright (c) 2025 RainForest Hash Project
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package main

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/rfhash/rainforest"
)

var (
	hashHex string
	hashV1  bool
)

var hashCmd = &cobra.Command{
	Use:   "hash [text]",
	Short: "Hash a literal message",
	Long: `Hash a literal message and print the hex digest.

The message is either the text argument or, with --hex, a hex-decoded byte
string. By default the v2 hash runs with a freshly initialized rambox;
--v1 selects the original rf256.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var msg []byte
		switch {
		case hashHex != "":
			b, err := hex.DecodeString(hashHex)
			if err != nil {
				return fmt.Errorf("invalid hex message: %w", err)
			}
			msg = b
		case len(args) == 1:
			msg = []byte(args[0])
		default:
			return fmt.Errorf("a text argument or --hex is required")
		}

		if hashV1 {
			out := rainforest.Sum256(msg)
			fmt.Printf("out: %s\n", hex.EncodeToString(out[:]))
			return nil
		}

		slog.Debug("initializing rambox")
		out, err := rainforest.SumV2(msg, nil, nil)
		if err != nil {
			slog.Error("hash failed", "error", err)
			os.Exit(1)
		}
		fmt.Printf("out: %s\n", hex.EncodeToString(out[:]))
		return nil
	},
}

func init() {
	hashCmd.Flags().StringVarP(&hashHex, "hex", "H", "", "Hash hex-decoded bytes instead of text")
	hashCmd.Flags().BoolVar(&hashV1, "v1", false, "Use the original rf256 hash")
	rootCmd.AddCommand(hashCmd)
}
