// Copyright 2024, The PurgePack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package modhost

// CoreHandle is the host's Go-side wrapper around the C-ABI core_handle_t
// record every module call receives by reference (spec section 3). It owns
// the underlying C allocation for exactly one host invocation and must not
// be retained by callers past that invocation (spec section 3: "Modules
// MUST NOT retain it beyond a call").
type CoreHandle struct {
	state *coreState
}

// NewCoreHandle allocates a fresh CoreHandle for one host invocation.
func NewCoreHandle() *CoreHandle {
	return &CoreHandle{state: newCoreState()}
}

// Close releases the CoreHandle's underlying C allocation. The host calls
// this once, at process exit, after every module has been unloaded.
func (c *CoreHandle) Close() {
	c.state.free()
}

// Ping invokes the ping_core callback directly, the same callback a module
// reaches through core_handle_t.ping_core. It backs the host's own
// "+core ping" subcommand (spec section 4.8: "The special name core is
// consumed by the host itself (supports a ping command which invokes
// ping_core)").
func (c *CoreHandle) Ping() {
	invokePing(c.state.handle())
}

// PingCount reports how many times ping_core has been invoked so far,
// whether by the host's own "+core ping" or by a loaded module.
func (c *CoreHandle) PingCount() int64 {
	return c.state.pingCount()
}
