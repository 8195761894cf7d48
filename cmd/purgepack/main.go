// Copyright 2024, The PurgePack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command purgepack is the module host executable. It discovers plugin
// libraries in a modules directory next to itself and dispatches argument
// groups, routed by "+name" tokens, to them (spec section 4.8).
package main

import (
	"fmt"
	"os"

	"github.com/coreos/pkg/capnslog"

	"github.com/purgepack/purgepack/modhost"
)

func main() {
	capnslog.SetFormatter(capnslog.NewStringFormatter(os.Stderr))
	capnslog.MustRepoLogger("github.com/purgepack/purgepack").SetGlobalLogLevel(capnslog.INFO)

	exe, err := os.Executable()
	if err != nil {
		fmt.Fprintln(os.Stderr, "purgepack:", err)
		os.Exit(1)
	}

	h := modhost.NewHost(exe)
	defer h.Core.Close()

	if err := h.Discover(); err != nil {
		fmt.Fprintln(os.Stderr, "purgepack:", err)
		os.Exit(1)
	}

	if err := h.Dispatch(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "purgepack:", err)
		os.Exit(1)
	}

	if err := h.UnloadAll(); err != nil {
		fmt.Fprintln(os.Stderr, "purgepack:", err)
		os.Exit(1)
	}
}
