// Copyright 2024, The PurgePack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/purgepack/purgepack/delta"
	"github.com/purgepack/purgepack/stats"
)

// run implements the module's entire startup behavior once the ABI layer
// in abi.go has translated the host's arguments into a plain string slice
// (delta_module/src/lib.rs's module_startup body, in Go idiom).
func run(argv []string) {
	opts, err := parseCLI(argv)
	if err != nil {
		fmt.Fprintln(os.Stderr, "delta:", err)
		return
	}

	in, err := os.ReadFile(opts.inputFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "delta: read", opts.inputFile, err)
		return
	}

	start := time.Now()
	var out []byte
	if opts.inverse {
		out, err = delta.Decompress(in)
	} else {
		out, err = delta.Compress(in)
	}
	elapsed := time.Since(start)
	if err != nil {
		fmt.Fprintln(os.Stderr, "delta:", err)
		return
	}

	outPath := opts.outputFile
	if !opts.inverse {
		outPath = ensurePPCBExtension(outPath)
	}
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "delta: write", outPath, err)
		return
	}

	if opts.stats {
		direction := stats.Compress
		if opts.inverse {
			direction = stats.Decompress
		}
		s, err := stats.NewBuilder().
			AlgorithmName("delta").
			AlgorithmID(0x01).
			Version("1").
			Direction(direction).
			OriginalLen(uint64(len(in))).
			ProcessedLen(uint64(len(out))).
			TotalDuration(elapsed).
			Build()
		if err != nil {
			fmt.Fprintln(os.Stderr, "delta: stats:", err)
			return
		}
		fmt.Print(s.Render())
	}
}

func shutdown() {
	fmt.Fprintln(os.Stderr, "delta: shutting down")
}
