// Copyright (c) 2025 RainForest Hash Project
//
// This source code is licensed under the Apache 2.0 License found in the
// LICENSE file in the root directory of this source tree.

package main

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rfhash/rainforest"
)

const maxThreads = 256

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark the v2 hash",
	Long: `Benchmark the v2 hash with one rambox per worker thread.

Each worker repeats the self-test's mutation pattern over the self-test
message until stopped, and the aggregate hash rate is reported once per
second.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		threads := viper.GetInt("threads")
		if threads < 1 || threads > maxThreads {
			return fmt.Errorf("threads must be between 1 and %d (was %d)", maxThreads, threads)
		}
		duration := viper.GetDuration("duration")
		runBench(threads, duration)
		return nil
	},
}

func init() {
	benchCmd.Flags().IntP("threads", "t", 1, "Number of worker threads")
	benchCmd.Flags().Duration("duration", 0, "Stop after this long (0 runs forever)")

	if err := viper.BindPFlag("threads", benchCmd.Flags().Lookup("threads")); err != nil {
		panic(err)
	}
	if err := viper.BindPFlag("duration", benchCmd.Flags().Lookup("duration")); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(benchCmd)
}

func runBench(threads int, duration time.Duration) {
	var hashes atomic.Uint64
	var stop atomic.Bool
	var wg sync.WaitGroup

	slog.Info("initializing ramboxes", "threads", threads)
	for thr := 0; thr < threads; thr++ {
		hasher, err := rainforest.NewHasher()
		if err != nil {
			slog.Error("failed to set up worker", "thread", thr, "error", err)
			os.Exit(1)
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			msg := testMsg
			for loops := 0; !stop.Load(); loops++ {
				for i := range msg {
					msg[i] ^= byte(loops)
				}
				out, err := hasher.Sum(msg[:])
				if err != nil {
					slog.Error("hash failed", "error", err)
					return
				}
				copy(msg[:32], out[:])
				hashes.Add(1)
			}
		}()
	}

	start := time.Now()
	last := start
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for now := range ticker.C {
		work := hashes.Swap(0)
		elapsed := now.Sub(last).Seconds()
		last = now

		rate := float64(work) / elapsed
		fmt.Printf("%d hashes, %.3f sec, %d thread(s), %.3f H/s, %.3f H/s/thread\n",
			work, elapsed, threads, rate, rate/float64(threads))

		if duration > 0 && now.Sub(start) >= duration {
			break
		}
	}

	stop.Store(true)
	wg.Wait()
}
