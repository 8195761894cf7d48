// Copyright 2024, The PurgePack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build windows

package modhost

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// windowsLoader implements Loader via the Win32 dynamic-library API,
// exposed through golang.org/x/sys/windows.
type windowsLoader struct{}

// NewLoader returns the Loader implementation for the running OS.
func NewLoader() Loader { return windowsLoader{} }

func (windowsLoader) Open(path string) (unsafe.Pointer, error) {
	h, err := windows.LoadLibraryEx(path, 0, windows.LOAD_WITH_ALTERED_SEARCH_PATH)
	if err != nil {
		return nil, &LoadError{Module: path, Reason: err.Error()}
	}
	return unsafe.Pointer(h), nil
}

func (windowsLoader) Symbol(lib unsafe.Pointer, name string) (unsafe.Pointer, error) {
	addr, err := windows.GetProcAddress(windows.Handle(uintptr(lib)), name)
	if err != nil {
		return nil, &LoadError{Module: name, Reason: err.Error()}
	}
	return unsafe.Pointer(addr), nil
}

func (windowsLoader) Close(lib unsafe.Pointer) error {
	if err := windows.FreeLibrary(windows.Handle(uintptr(lib))); err != nil {
		return &LoadError{Module: "(unload)", Reason: err.Error()}
	}
	return nil
}

func (windowsLoader) LibraryExt() string { return "dll" }

func (windowsLoader) FileName(name string) string { return name + ".dll" }
