// Copyright 2024, The PurgePack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import (
	"flag"
	"fmt"
	"path/filepath"
	"strings"
)

// ppcbExt is the PurgePack container's output-extension convention
// (spec section 6.5).
const ppcbExt = ".ppcb"

type cliOptions struct {
	inverse    bool
	inputFile  string
	outputFile string
	stats      bool
}

// parseCLI mirrors delta_module/src/cli_parse.rs's "transform"/"inverse"
// subcommand shape with its own flag.FlagSet, the same one-FlagSet-per-
// invocation style internal/tool/bench/main.go uses (spec section 6.7 and
// SPEC_FULL.md section 2, "Configuration / CLI").
func parseCLI(argv []string) (cliOptions, error) {
	if len(argv) == 0 {
		return cliOptions{}, fmt.Errorf("usage: +delta <transform|inverse> [-stats] input output")
	}
	var opts cliOptions
	switch argv[0] {
	case "transform", "t":
		opts.inverse = false
	case "inverse", "i":
		opts.inverse = true
	default:
		return cliOptions{}, fmt.Errorf("unknown command %q, want transform or inverse", argv[0])
	}

	fs := flag.NewFlagSet("delta", flag.ContinueOnError)
	stats := fs.Bool("stats", false, "print a compression statistics report")
	fs.BoolVar(stats, "s", false, "alias for -stats")
	if err := fs.Parse(argv[1:]); err != nil {
		return cliOptions{}, err
	}
	if fs.NArg() != 2 {
		return cliOptions{}, fmt.Errorf("usage: +delta %s [-stats] input output", argv[0])
	}
	opts.stats = *stats
	opts.inputFile = fs.Arg(0)
	opts.outputFile = fs.Arg(1)
	return opts, nil
}

// ensurePPCBExtension applies the .ppcb convention to an encode output path
// lacking any extension (delta_module/src/lib.rs's start_proccessing_file).
func ensurePPCBExtension(path string) string {
	if filepath.Ext(path) == "" {
		return path + ppcbExt
	}
	return path
}

func hasPPCBExtension(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ppcbExt)
}
