// Copyright 2024, The PurgePack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import (
	"flag"
	"fmt"
	"path/filepath"
)

const ppcbExt = ".ppcb"

type cliOptions struct {
	inverse    bool
	inputFile  string
	outputFile string
	stats      bool
}

// parseCLI follows the same transform/inverse shape as the delta module's
// CLI (modules/delta/cli.go), grounded in huffman_module/src/lib.rs's
// compress/decompress commands.
func parseCLI(argv []string) (cliOptions, error) {
	if len(argv) == 0 {
		return cliOptions{}, fmt.Errorf("usage: +huffman <transform|inverse> [-stats] input output")
	}
	var opts cliOptions
	switch argv[0] {
	case "transform", "t", "compress", "c":
		opts.inverse = false
	case "inverse", "i", "decompress", "d":
		opts.inverse = true
	default:
		return cliOptions{}, fmt.Errorf("unknown command %q, want transform or inverse", argv[0])
	}

	fs := flag.NewFlagSet("huffman", flag.ContinueOnError)
	stats := fs.Bool("stats", false, "print a compression statistics report")
	fs.BoolVar(stats, "s", false, "alias for -stats")
	if err := fs.Parse(argv[1:]); err != nil {
		return cliOptions{}, err
	}
	if fs.NArg() != 2 {
		return cliOptions{}, fmt.Errorf("usage: +huffman %s [-stats] input output", argv[0])
	}
	opts.stats = *stats
	opts.inputFile = fs.Arg(0)
	opts.outputFile = fs.Arg(1)
	return opts, nil
}

func ensurePPCBExtension(path string) string {
	if filepath.Ext(path) == "" {
		return path + ppcbExt
	}
	return path
}
