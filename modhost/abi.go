// Copyright 2024, The PurgePack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package modhost

/*
#include <stdint.h>
#include <stdlib.h>

// core_state_t is the host's private, C-addressable state. A module must
// treat it as opaque; the only operation defined on it is invoking
// ping_core, which is how the "host non-reentry" callback channel in spec
// section 5 is expressed at the ABI boundary (spec section 9: "any future
// mutation channel MUST be through explicit callbacks rather than direct
// field mutation").
typedef struct {
	int64_t ping_count;
} core_state_t;

// core_handle_t is the CoreHandle record passed by reference into every
// module call (spec section 3, CoreHandle). Its layout is frozen: modules
// compiled against this header in a different language only need to match
// this struct, not link against any Go runtime (spec section 9, "ABI across
// the plugin boundary").
typedef struct {
	void (*ping_core)(void *state);
	void *state;
} core_handle_t;

static void ping_core_impl(void *state) {
	((core_state_t *)state)->ping_count++;
}

static core_handle_t make_core_handle(core_state_t *state) {
	core_handle_t h;
	h.ping_core = ping_core_impl;
	h.state = (void *)state;
	return h;
}

// arg_list_t is the ArgList record (spec section 4.8): a host-owned,
// length-prefixed array of NUL-terminated strings. A module may overwrite
// entries in place (for example, to prepend a synthetic argv[0] that its
// own CLI parser expects) but must not retain any pointer into it once its
// entry point returns.
typedef struct {
	char **argv;
	int32_t argc;
} arg_list_t;

typedef void (*startup_fn)(const core_handle_t *core, arg_list_t *args);
typedef void (*shutdown_fn)(const core_handle_t *core);

// call_startup and call_shutdown cast an opaque function pointer, resolved
// at runtime by the per-OS loader's Symbol lookup, to its expected C
// signature and invoke it. Go cannot call through a bare void* directly;
// this tiny trampoline is the idiomatic cgo way to do so.
static void call_startup(void *fn, const core_handle_t *core, arg_list_t *args) {
	((startup_fn)fn)(core, args);
}
static void call_shutdown(void *fn, const core_handle_t *core) {
	((shutdown_fn)fn)(core);
}

static void invoke_ping(core_handle_t *core) {
	core->ping_core(core->state);
}
*/
import "C"
import "unsafe"

// coreState is the Go-side handle to the C-allocated core_state_t. It must
// be released with free once the host process is done issuing calls.
type coreState struct {
	ptr *C.core_state_t
}

func newCoreState() *coreState {
	return &coreState{ptr: (*C.core_state_t)(C.calloc(1, C.sizeof_core_state_t))}
}

func (s *coreState) free() {
	if s.ptr != nil {
		C.free(unsafe.Pointer(s.ptr))
		s.ptr = nil
	}
}

func (s *coreState) pingCount() int64 {
	return int64(s.ptr.ping_count)
}

func (s *coreState) handle() C.core_handle_t {
	return C.make_core_handle(s.ptr)
}

// cArgList builds a C arg_list_t from a Go string slice. The returned free
// function must be called exactly once, after the module call returns, to
// release the allocated C strings and array (spec section 4.8: the host
// owns the ArgList "for the duration of the call").
func cArgList(args []string) (list C.arg_list_t, free func()) {
	n := len(args)
	argv := (**C.char)(C.malloc(C.size_t(n) * C.size_t(unsafe.Sizeof(uintptr(0)))))
	slot := (*[1 << 20]*C.char)(unsafe.Pointer(argv))[:n:n]
	for i, a := range args {
		slot[i] = C.CString(a)
	}
	list = C.arg_list_t{argv: argv, argc: C.int32_t(n)}
	free = func() {
		cur := (*[1 << 20]*C.char)(unsafe.Pointer(list.argv))[:list.argc:list.argc]
		for _, p := range cur {
			C.free(unsafe.Pointer(p))
		}
		C.free(unsafe.Pointer(list.argv))
	}
	return list, free
}

func callStartup(fn unsafe.Pointer, core C.core_handle_t, args *C.arg_list_t) {
	C.call_startup(fn, &core, args)
}

func callShutdown(fn unsafe.Pointer, core C.core_handle_t) {
	C.call_shutdown(fn, &core)
}

func invokePing(core C.core_handle_t) {
	C.invoke_ping(&core)
}
