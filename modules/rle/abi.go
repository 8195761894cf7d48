// Copyright 2024, The PurgePack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command rle_module is a PurgePack module: a cgo c-shared plugin that
// exports module_startup/module_shutdown and performs RLE compression and
// decompression, with a version selector, from its own command line (spec
// section 4.8, section 6.4). This file holds every cgo-facing declaration;
// the rest of the package is plain Go.
package main

/*
#include <stdint.h>

typedef struct {
	void (*ping_core)(void *state);
	void *state;
} core_handle_t;

typedef struct {
	char **argv;
	int32_t argc;
} arg_list_t;

static void ping_core_trampoline(core_handle_t *core) {
	core->ping_core(core->state);
}
*/
import "C"
import "unsafe"

// argvStrings copies a host-owned arg_list_t into a Go string slice. The
// module must not retain any pointer into the C array once module_startup
// returns (spec section 4.8).
func argvStrings(args *C.arg_list_t) []string {
	n := int(args.argc)
	if n == 0 {
		return nil
	}
	raw := (*[1 << 20]*C.char)(unsafe.Pointer(args.argv))[:n:n]
	out := make([]string, n)
	for i, p := range raw {
		out[i] = C.GoString(p)
	}
	return out
}

//export module_startup
func module_startup(core *C.core_handle_t, args *C.arg_list_t) {
	C.ping_core_trampoline(core)
	run(argvStrings(args))
}

//export module_shutdown
func module_shutdown(core *C.core_handle_t) {
	shutdown()
}

func main() {}
