// Copyright 2024, The PurgePack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package modhost

import (
	"errors"
	"testing"
	"unsafe"
)

// fakeLoader is a Loader double for exercising Module's state-machine
// bookkeeping without dlopen-ing a real shared library. It is only used to
// drive code paths that never call through the resolved function pointer
// (Load's success/failure handling, Unload, and every precondition guard);
// Module.Startup/Shutdown's actual invocation of module_startup/
// module_shutdown is not unit-tested, since calling through a fabricated
// function pointer here would be undefined behavior and host_test.go only
// loads deliberately invalid files.
type fakeLoader struct {
	openFn   func(path string) (unsafe.Pointer, error)
	symbolFn func(lib unsafe.Pointer, name string) (unsafe.Pointer, error)
	closeFn  func(lib unsafe.Pointer) error
}

func (f *fakeLoader) Open(path string) (unsafe.Pointer, error) {
	if f.openFn == nil {
		return unsafe.Pointer(new(int)), nil
	}
	return f.openFn(path)
}

func (f *fakeLoader) Symbol(lib unsafe.Pointer, name string) (unsafe.Pointer, error) {
	if f.symbolFn == nil {
		return unsafe.Pointer(new(int)), nil
	}
	return f.symbolFn(lib, name)
}

func (f *fakeLoader) Close(lib unsafe.Pointer) error {
	if f.closeFn == nil {
		return nil
	}
	return f.closeFn(lib)
}

func (f *fakeLoader) LibraryExt() string          { return "fakeext" }
func (f *fakeLoader) FileName(name string) string { return name + ".fakeext" }

func TestStateString(t *testing.T) {
	tests := []struct {
		s    State
		want string
	}{
		{Discovered, "discovered"},
		{Loaded, "loaded"},
		{Started, "started"},
		{Stopped, "stopped"},
		{Unloaded, "unloaded"},
		{Failed, "failed"},
		{State(99), "unknown"},
	}
	for _, tc := range tests {
		if got := tc.s.String(); got != tc.want {
			t.Errorf("State(%d).String() = %q, want %q", tc.s, got, tc.want)
		}
	}
}

func TestModuleLoadSuccess(t *testing.T) {
	m := &Module{Name: "demo", Path: "/fake/libdemo.so", State: Discovered}
	if err := m.Load(&fakeLoader{}); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.State != Loaded {
		t.Fatalf("State = %v, want Loaded", m.State)
	}
}

func TestModuleLoadOpenError(t *testing.T) {
	wantErr := errors.New("boom")
	loader := &fakeLoader{
		openFn: func(string) (unsafe.Pointer, error) { return nil, wantErr },
	}
	m := &Module{Name: "demo", State: Discovered}
	if err := m.Load(loader); err != wantErr {
		t.Fatalf("Load err = %v, want %v", err, wantErr)
	}
	if m.State != Failed {
		t.Fatalf("State = %v, want Failed", m.State)
	}
}

func TestModuleLoadMissingStartupSymbol(t *testing.T) {
	closed := false
	loader := &fakeLoader{
		symbolFn: func(unsafe.Pointer, string) (unsafe.Pointer, error) {
			return nil, errors.New("undefined symbol")
		},
		closeFn: func(unsafe.Pointer) error {
			closed = true
			return nil
		},
	}
	m := &Module{Name: "demo", State: Discovered}
	err := m.Load(loader)
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("Load err = %v (%T), want *LoadError", err, err)
	}
	if loadErr.Reason != "missing "+startupSymbol {
		t.Fatalf("Reason = %q, want %q", loadErr.Reason, "missing "+startupSymbol)
	}
	if m.State != Failed {
		t.Fatalf("State = %v, want Failed", m.State)
	}
	if !closed {
		t.Fatal("loader.Close was not called after a missing-symbol load failure")
	}
}

func TestModuleLoadOutOfOrder(t *testing.T) {
	m := &Module{Name: "demo", State: Loaded}
	if err := m.Load(&fakeLoader{}); err == nil {
		t.Fatal("Load on an already-loaded module should fail")
	}
}

func TestModuleStartupOutOfOrder(t *testing.T) {
	m := &Module{Name: "demo", State: Discovered}
	if err := m.Startup(nil, nil); err == nil {
		t.Fatal("Startup before Load should fail")
	}
	if m.State != Discovered {
		t.Fatalf("State = %v, want unchanged Discovered", m.State)
	}
}

func TestModuleShutdownOutOfOrder(t *testing.T) {
	m := &Module{Name: "demo", State: Loaded, loader: &fakeLoader{}}
	if err := m.Shutdown(nil); err == nil {
		t.Fatal("Shutdown before Startup should fail")
	}
	if m.State != Loaded {
		t.Fatalf("State = %v, want unchanged Loaded", m.State)
	}
}

func TestModuleUnloadOutOfOrder(t *testing.T) {
	m := &Module{Name: "demo", State: Loaded, loader: &fakeLoader{}}
	if err := m.Unload(); err == nil {
		t.Fatal("Unload before Shutdown should fail")
	}
	if m.State != Loaded {
		t.Fatalf("State = %v, want unchanged Loaded", m.State)
	}
}

func TestModuleUnloadSuccess(t *testing.T) {
	m := &Module{Name: "demo", State: Stopped, loader: &fakeLoader{}}
	if err := m.Unload(); err != nil {
		t.Fatalf("Unload: %v", err)
	}
	if m.State != Unloaded {
		t.Fatalf("State = %v, want Unloaded", m.State)
	}
}

func TestModuleUnloadCloseError(t *testing.T) {
	wantErr := errors.New("dlclose failed")
	loader := &fakeLoader{closeFn: func(unsafe.Pointer) error { return wantErr }}
	m := &Module{Name: "demo", State: Stopped, loader: loader}
	if err := m.Unload(); err != wantErr {
		t.Fatalf("Unload err = %v, want %v", err, wantErr)
	}
	if m.State != Failed {
		t.Fatalf("State = %v, want Failed", m.State)
	}
}
