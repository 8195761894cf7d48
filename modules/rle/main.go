// Copyright 2024, The PurgePack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/purgepack/purgepack/container"
	"github.com/purgepack/purgepack/rle"
	"github.com/purgepack/purgepack/stats"
)

func run(argv []string) {
	opts, err := parseCLI(argv)
	if err != nil {
		fmt.Fprintln(os.Stderr, "rle:", err)
		return
	}

	in, err := os.ReadFile(opts.inputFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "rle: read", opts.inputFile, err)
		return
	}

	start := time.Now()
	var out []byte
	var chosen rle.Version
	if opts.inverse {
		out, err = rle.Decompress(in)
		if hdr, _, herr := container.Parse(in); herr == nil && hdr.Algorithm == container.RLEv2 {
			chosen = rle.V2
		} else {
			chosen = rle.V1
		}
	} else {
		switch opts.version {
		case "1":
			out, err = rle.CompressV1(in)
			chosen = rle.V1
		case "2":
			out, err = rle.CompressV2(in)
			chosen = rle.V2
		default:
			out, chosen, err = rle.Compress(in)
		}
	}
	elapsed := time.Since(start)
	if err != nil {
		fmt.Fprintln(os.Stderr, "rle:", err)
		return
	}

	outPath := opts.outputFile
	if !opts.inverse {
		outPath = ensurePPCBExtension(outPath)
	}
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "rle: write", outPath, err)
		return
	}

	if opts.stats {
		direction := stats.Compress
		algID := byte(0x03)
		if chosen == rle.V2 {
			algID = 0x04
		}
		if opts.inverse {
			direction = stats.Decompress
		}
		s, err := stats.NewBuilder().
			AlgorithmName("rle").
			AlgorithmID(algID).
			Version(chosen.String()).
			Direction(direction).
			OriginalLen(uint64(len(in))).
			ProcessedLen(uint64(len(out))).
			TotalDuration(elapsed).
			Build()
		if err != nil {
			fmt.Fprintln(os.Stderr, "rle: stats:", err)
			return
		}
		fmt.Print(s.Render())
	}
}

func shutdown() {
	fmt.Fprintln(os.Stderr, "rle: shutting down")
}
