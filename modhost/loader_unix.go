// Copyright 2024, The PurgePack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build unix

package modhost

/*
#cgo LDFLAGS: -ldl
#include <dlfcn.h>
#include <stdlib.h>
*/
import "C"
import "unsafe"

// unixLoader implements Loader on Linux (and other unix-likes) via libdl's
// dlopen/dlsym/dlclose, in the cgo style used elsewhere in this codebase's
// lineage for linking against a native C library (compare
// internal/tool/bench/cgo_zlib.go's "#cgo LDFLAGS" + import "C" shape).
type unixLoader struct{}

// NewLoader returns the Loader implementation for the running OS.
func NewLoader() Loader { return unixLoader{} }

func (unixLoader) Open(path string) (unsafe.Pointer, error) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	lib := C.dlopen(cpath, C.RTLD_NOW)
	if lib == nil {
		return nil, &LoadError{Module: path, Reason: C.GoString(C.dlerror())}
	}
	return unsafe.Pointer(lib), nil
}

func (unixLoader) Symbol(lib unsafe.Pointer, name string) (unsafe.Pointer, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	C.dlerror() // clear any pending error, per dlsym(3)'s recommended idiom
	sym := C.dlsym(lib, cname)
	if sym == nil {
		if errStr := C.dlerror(); errStr != nil {
			return nil, &LoadError{Module: name, Reason: C.GoString(errStr)}
		}
	}
	return unsafe.Pointer(sym), nil
}

func (unixLoader) Close(lib unsafe.Pointer) error {
	if C.dlclose(lib) != 0 {
		return &LoadError{Module: "(unload)", Reason: C.GoString(C.dlerror())}
	}
	return nil
}

func (unixLoader) LibraryExt() string { return "so" }

func (unixLoader) FileName(name string) string { return "lib" + name + ".so" }
