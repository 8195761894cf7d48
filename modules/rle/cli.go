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

// versionFlag mirrors rls_module/src/cli_parse.rs's Version enum ("1",
// "2", or "auto"), accepted through flag.Value so -rle-version gets the
// same validation a clap ValueEnum gives the original.
type versionFlag string

func (v *versionFlag) String() string { return string(*v) }

func (v *versionFlag) Set(s string) error {
	switch s {
	case "1", "2", "auto":
		*v = versionFlag(s)
		return nil
	default:
		return fmt.Errorf("invalid version %q, want 1, 2, or auto", s)
	}
}

type cliOptions struct {
	inverse    bool
	inputFile  string
	outputFile string
	stats      bool
	version    versionFlag
}

// parseCLI follows rls_module/src/cli_parse.rs's compress/decompress
// subcommands plus its -r/--rle-version global flag.
func parseCLI(argv []string) (cliOptions, error) {
	if len(argv) == 0 {
		return cliOptions{}, fmt.Errorf("usage: +rle <compress|decompress> [-stats] [-rle-version 1|2|auto] input output")
	}
	var opts cliOptions
	opts.version = "auto"
	switch argv[0] {
	case "compress", "c":
		opts.inverse = false
	case "decompress", "d":
		opts.inverse = true
	default:
		return cliOptions{}, fmt.Errorf("unknown command %q, want compress or decompress", argv[0])
	}

	fs := flag.NewFlagSet("rle", flag.ContinueOnError)
	stats := fs.Bool("stats", false, "print a compression statistics report")
	fs.BoolVar(stats, "s", false, "alias for -stats")
	fs.Var(&opts.version, "rle-version", `RLE algorithm version to use: "1", "2", or "auto"`)
	fs.Var(&opts.version, "r", "alias for -rle-version")
	if err := fs.Parse(argv[1:]); err != nil {
		return cliOptions{}, err
	}
	if fs.NArg() != 2 {
		return cliOptions{}, fmt.Errorf("usage: +rle %s [-stats] [-rle-version 1|2|auto] input output", argv[0])
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
