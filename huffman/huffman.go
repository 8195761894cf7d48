// Copyright 2024, The PurgePack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package huffman implements the canonical Huffman codec: frequency
// analysis, priority-queue tree construction, canonical code assignment,
// bit-stream compression, and trie-based decompression, framed by the
// PurgePack container header (spec section 4.7).
//
// The tree is held as an arena of nodes addressed by integer index rather
// than as reference-counted pointers, per the redesign guidance in spec
// section 9: each node is a tagged variant, either an internal fork with two
// child indices or a leaf carrying a byte value.
package huffman

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "huffman: " + string(e) }

var (
	// ErrCorrupt indicates a frame shorter than its own table or data length
	// fields promise, or one whose code table or code bits are invalid. A
	// header that fails to parse is reported as an Error carrying the
	// container package's message.
	ErrCorrupt error = Error("corrupt input")
)

// maxCodeLen bounds a single byte's canonical code length. 255 matches the
// 8-bit length field of the on-disk frame (spec section 6.3); in practice a
// 256-symbol alphabet never produces codes anywhere near this long.
const maxCodeLen = 255
