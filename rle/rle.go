// Copyright 2024, The PurgePack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package rle implements the two PurgePack run-length encoding variants
// (v1: fixed pair encoding; v2: escape-hybrid encoding) and the
// sampling-based selector that picks between them for a given input.
package rle

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "rle: " + string(e) }

var (
	// ErrCorrupt is returned when a decoded stream violates its framing
	// (odd-length v1 payload, or a v2 escape with too few trailing bytes).
	ErrCorrupt error = Error("corrupt input")
)

// run is a single (count, byte) pair accumulated while scanning the input.
// count is always in 1..255: callers must flush (emit) before it would wrap.
type run struct {
	count byte
	value byte
}

// maxRunLen is the largest count a single run can carry (spec section 4.4).
const maxRunLen = 255

// scanRuns walks src and invokes emit(count, value) for each maximal run of
// identical bytes, capped at maxRunLen, in order. This is the shared
// run-finding loop used by both CompressV1 and CompressV2 (spec section
// 4.4: "maintain (count=1, current=first_byte)...").
func scanRuns(src []byte, emit func(count, value byte)) {
	if len(src) == 0 {
		return
	}
	cur := run{count: 1, value: src[0]}
	for _, b := range src[1:] {
		if b == cur.value && cur.count < maxRunLen {
			cur.count++
			continue
		}
		emit(cur.count, cur.value)
		cur = run{count: 1, value: b}
	}
	emit(cur.count, cur.value)
}
