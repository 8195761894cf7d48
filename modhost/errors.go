// Copyright 2024, The PurgePack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package modhost implements the PurgePack module contract: the CoreHandle
// passed to every plugin, the per-module lifecycle state machine, the
// per-OS dynamic loader, and the command-line routing that splits host
// arguments into a global group and per-module groups (spec section 4.8).
package modhost

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "modhost: " + string(e) }

// LoadError reports that a module's shared library could not be opened, or
// that it lacks a required symbol.
type LoadError struct {
	Module string
	Reason string
}

func (e *LoadError) Error() string {
	return "modhost: load " + e.Module + ": " + e.Reason
}

// UnloadError reports that one or more loaded modules failed to unload.
type UnloadError struct {
	Reason string
}

func (e *UnloadError) Error() string { return "modhost: unload: " + e.Reason }

// ArgumentError reports a malformed host or module command line.
type ArgumentError string

func (e ArgumentError) Error() string { return "modhost: bad argument: " + string(e) }
