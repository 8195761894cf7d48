// Copyright 2024, The PurgePack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/purgepack/purgepack/huffman"
	"github.com/purgepack/purgepack/stats"
)

func run(argv []string) {
	opts, err := parseCLI(argv)
	if err != nil {
		fmt.Fprintln(os.Stderr, "huffman:", err)
		return
	}

	in, err := os.ReadFile(opts.inputFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "huffman: read", opts.inputFile, err)
		return
	}

	start := time.Now()
	var out []byte
	if opts.inverse {
		out, err = huffman.Decompress(in)
	} else {
		out, err = huffman.Compress(in)
	}
	elapsed := time.Since(start)
	if err != nil {
		fmt.Fprintln(os.Stderr, "huffman:", err)
		return
	}

	outPath := opts.outputFile
	if !opts.inverse {
		outPath = ensurePPCBExtension(outPath)
	}
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "huffman: write", outPath, err)
		return
	}

	if opts.stats {
		direction := stats.Compress
		if opts.inverse {
			direction = stats.Decompress
		}
		s, err := stats.NewBuilder().
			AlgorithmName("huffman").
			AlgorithmID(0x02).
			Version("1").
			Direction(direction).
			OriginalLen(uint64(len(in))).
			ProcessedLen(uint64(len(out))).
			TotalDuration(elapsed).
			Build()
		if err != nil {
			fmt.Fprintln(os.Stderr, "huffman: stats:", err)
			return
		}
		fmt.Print(s.Render())
	}
}

func shutdown() {
	fmt.Fprintln(os.Stderr, "huffman: shutting down")
}
