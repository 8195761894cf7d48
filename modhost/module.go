// Copyright 2024, The PurgePack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package modhost

import "unsafe"

// State is a module's position in the single-directional lifecycle of spec
// section 4.8: Discovered -> Loaded -> Started -> Stopped -> Unloaded, with
// a terminal Failed state reachable from any intermediate state.
type State int

const (
	Discovered State = iota
	Loaded
	Started
	Stopped
	Unloaded
	Failed
)

func (s State) String() string {
	switch s {
	case Discovered:
		return "discovered"
	case Loaded:
		return "loaded"
	case Started:
		return "started"
	case Stopped:
		return "stopped"
	case Unloaded:
		return "unloaded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// the C symbol names every module must export (spec section 4.8).
const (
	startupSymbol  = "module_startup"
	shutdownSymbol = "module_shutdown"
)

// Module is one shared-library plugin discovered under the modules
// directory (spec section 3, Module).
type Module struct {
	Name  string // identifier derived from the filename (spec section 4.8)
	Path  string // absolute filesystem path
	State State

	loader  Loader
	lib     unsafe.Pointer
	startFn unsafe.Pointer
	stopFn  unsafe.Pointer
}

// Load opens the module's shared library and resolves module_startup. A
// missing module_startup symbol is a load failure for this module only
// (spec section 4.8); module_shutdown is resolved lazily by Shutdown so
// that a module missing only that symbol still gets to run.
func (m *Module) Load(loader Loader) error {
	if m.State != Discovered {
		return &LoadError{Module: m.Name, Reason: "load called out of order, state=" + m.State.String()}
	}
	lib, err := loader.Open(m.Path)
	if err != nil {
		m.State = Failed
		return err
	}
	fn, err := loader.Symbol(lib, startupSymbol)
	if err != nil {
		loader.Close(lib)
		m.State = Failed
		return &LoadError{Module: m.Name, Reason: "missing " + startupSymbol}
	}
	m.loader = loader
	m.lib = lib
	m.startFn = fn
	m.State = Loaded
	return nil
}

// Startup invokes module_startup with the given core handle and arguments.
// It may be called at most once per Module (spec section 3, "Host
// non-reentry").
func (m *Module) Startup(core *CoreHandle, args []string) error {
	if m.State != Loaded {
		return &LoadError{Module: m.Name, Reason: "startup called out of order, state=" + m.State.String()}
	}
	list, free := cArgList(args)
	defer free()
	callStartup(m.startFn, core.state.handle(), &list)
	m.State = Started
	return nil
}

// Shutdown resolves and invokes module_shutdown. A missing module_shutdown
// symbol is an unload failure for this module only (spec section 4.8).
func (m *Module) Shutdown(core *CoreHandle) error {
	if m.State != Started {
		return &UnloadError{Reason: m.Name + ": shutdown called out of order, state=" + m.State.String()}
	}
	fn, err := m.loader.Symbol(m.lib, shutdownSymbol)
	if err != nil {
		m.State = Failed
		return &UnloadError{Reason: m.Name + ": missing " + shutdownSymbol}
	}
	m.stopFn = fn
	callShutdown(m.stopFn, core.state.handle())
	m.State = Stopped
	return nil
}

// Unload closes the module's shared library. It may be called only after
// Shutdown has returned (spec section 3: "destroyed by loader after
// shutdown returns").
func (m *Module) Unload() error {
	if m.State != Stopped {
		return &UnloadError{Reason: m.Name + ": unload called out of order, state=" + m.State.String()}
	}
	if err := m.loader.Close(m.lib); err != nil {
		m.State = Failed
		return err
	}
	m.State = Unloaded
	return nil
}
