// Copyright 2024, The PurgePack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package modhost

import "unsafe"

// Loader is the OS-agnostic capability interface the module host programs
// against; two concrete implementations (loader_unix.go, loader_windows.go)
// back it with the platform's native dynamic-library API (spec section 9:
// "Dynamic-library loading across OSes... implemented twice (OS-specific)
// and selected at build time. The core module-host logic MUST be
// OS-agnostic.").
type Loader interface {
	// Open loads the shared library at path and returns an opaque handle.
	Open(path string) (unsafe.Pointer, error)
	// Symbol resolves name within a library previously returned by Open.
	Symbol(lib unsafe.Pointer, name string) (unsafe.Pointer, error)
	// Close unloads a library previously returned by Open.
	Close(lib unsafe.Pointer) error
	// LibraryExt is the native shared-library extension for this OS,
	// without a leading dot ("so" on Linux, "dll" on Windows).
	LibraryExt() string
	// FileName returns the filename a module named name is expected to
	// have on this OS (spec section 4.8: the "lib<name>" convention on
	// Linux; bare "<name>.dll" on Windows).
	FileName(name string) string
}
