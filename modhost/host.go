// Copyright 2024, The PurgePack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package modhost

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/coreos/pkg/capnslog"
)

var log = capnslog.NewPackageLogger("github.com/purgepack/purgepack", "modhost")

// modulesDirName is the fixed directory, next to the host executable, that
// Host.Discover scans for native libraries (spec section 4.8).
const modulesDirName = "modules"

// Host orchestrates discovery, loading, startup, shutdown, and unloading of
// every module found in the modules directory next to the running
// executable, plus the host's own reserved "+core" group (spec section
// 4.8, section 5, section 7).
type Host struct {
	Core    *CoreHandle
	loader  Loader
	dir     string
	modules []*Module
}

// NewHost builds a Host rooted at the directory containing execPath (the
// running executable's own path, typically os.Args[0] resolved via
// os.Executable by the caller).
func NewHost(execPath string) *Host {
	return &Host{
		Core:   NewCoreHandle(),
		loader: NewLoader(),
		dir:    filepath.Join(filepath.Dir(execPath), modulesDirName),
	}
}

// Discover scans the modules directory for files matching the platform's
// native library naming convention. If the directory does not exist, it is
// created and Discover reports a LoadError rather than proceeding with zero
// modules: the original host (original_source/purgepack/src/main.rs's
// load_modules_linux/load_modules_windows, both called from main) treats a
// missing module folder as a hard failure that aborts before any dispatch
// or unload is attempted, and the caller is expected to do the same (spec
// section 4.8: "On failure to read that directory, it attempts to create
// it and then reports ModuleError::Load(...)").
func (h *Host) Discover() error {
	entries, err := os.ReadDir(h.dir)
	if os.IsNotExist(err) {
		if mkErr := os.MkdirAll(h.dir, 0o755); mkErr != nil {
			return &LoadError{Module: h.dir, Reason: mkErr.Error()}
		}
		log.Warningf("module folder %s was missing and has been created", h.dir)
		return &LoadError{Module: h.dir, Reason: "module folder was missing and has been created"}
	}
	if err != nil {
		return &LoadError{Module: h.dir, Reason: err.Error()}
	}

	ext := strings.ToLower(h.loader.LibraryExt())
	for _, ent := range entries {
		if ent.IsDir() {
			continue
		}
		name := ent.Name()
		if strings.ToLower(filepath.Ext(name)) != "."+ext {
			continue
		}
		h.modules = append(h.modules, &Module{
			Name:  moduleStem(name),
			Path:  filepath.Join(h.dir, name),
			State: Discovered,
		})
	}
	return nil
}

// moduleStem strips the platform library prefix ("lib" on Linux) and
// extension from a discovered filename to recover the name a "+name"
// command-line group refers to.
func moduleStem(filename string) string {
	stem := strings.TrimSuffix(filename, filepath.Ext(filename))
	return strings.TrimPrefix(stem, "lib")
}

// Lookup returns the discovered module with the given name, or nil.
func (h *Host) Lookup(name string) *Module {
	for _, m := range h.modules {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// Run loads, starts, and immediately stops-and-unloads the named module
// with the given arguments, logging and skipping load failures rather than
// aborting the whole invocation (spec section 7: "A module failing to load
// MUST NOT prevent other modules from running").
func (h *Host) Run(name string, args []string) error {
	m := h.Lookup(name)
	if m == nil {
		return &LoadError{Module: name, Reason: "no such module"}
	}
	if err := m.Load(h.loader); err != nil {
		log.Errorf("module %s failed to load: %v", name, err)
		return err
	}
	if err := m.Startup(h.Core, args); err != nil {
		log.Errorf("module %s failed to start: %v", name, err)
		return err
	}
	if err := m.Shutdown(h.Core); err != nil {
		log.Errorf("module %s failed to shut down: %v", name, err)
		return err
	}
	return m.Unload()
}

// UnloadAll unloads every module still in the Stopped state. If every
// attempted unload fails, the aggregate failure is surfaced as a single
// UnloadError (spec section 7: "If every loaded module fails to unload,
// the host reports... 'All modules failed to unload'").
func (h *Host) UnloadAll() error {
	var attempted, failed int
	for _, m := range h.modules {
		if m.State != Stopped {
			continue
		}
		attempted++
		if err := m.Unload(); err != nil {
			failed++
			log.Errorf("module %s failed to unload: %v", m.Name, err)
		}
	}
	if attempted > 0 && failed == attempted {
		return &UnloadError{Reason: "All modules failed to unload"}
	}
	return nil
}

// Dispatch routes a full host command line (spec section 4.8) and runs
// each module group in argument order. The reserved "core" group invokes
// the host's own ping command rather than a loaded module.
func (h *Host) Dispatch(argv []string) error {
	groups, err := RouteArgs(argv)
	if err != nil {
		return err
	}
	for _, g := range groups {
		switch g.Name {
		case "":
			h.runGlobal(g.Args)
		case CoreGroupName:
			if err := h.runCore(g.Args); err != nil {
				return err
			}
		default:
			if err := h.Run(g.Name, g.Args); err != nil {
				continue
			}
		}
	}
	return nil
}

// runGlobal implements the host's global-argument-group dispatch: when the
// command line carries arguments before the first "+name" token, every
// module discovered in the modules directory is loaded and started with
// that same argument slice, in directory-listing order (spec section 4.8:
// "If any global arguments exist, the host additionally loads every module
// found in the directory and invokes startup for each with the global
// arguments"). Per-module load or startup failures are logged and skipped,
// matching the ordinary "+name" dispatch failure policy (spec section 7).
func (h *Host) runGlobal(args []string) {
	if len(args) == 0 {
		return
	}
	for _, m := range h.modules {
		if err := h.Run(m.Name, args); err != nil {
			continue
		}
	}
}

// runCore implements the host's reserved "+core" group: its only supported
// subcommand is "ping", which invokes the ping_core callback and logs the
// resulting call count (spec section 4.8, section 4).
func (h *Host) runCore(args []string) error {
	for _, a := range args {
		if a != "ping" {
			return ArgumentError("unknown +core subcommand " + a)
		}
		h.Core.Ping()
		log.Infof("core ping count is now %d", h.Core.PingCount())
	}
	return nil
}
