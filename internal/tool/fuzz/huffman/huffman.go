// Copyright 2024, The PurgePack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// +build gofuzz

package huffman

import (
	"bytes"

	"github.com/purgepack/purgepack/huffman"
)

// Fuzz round-trips data through the canonical Huffman codec, favoring
// inputs that compress and decompress back to themselves (spec section
// 4.7).
func Fuzz(data []byte) int {
	enc, err := huffman.Compress(data)
	if err != nil {
		panic(err)
	}
	dec, err := huffman.Decompress(enc)
	if err != nil {
		panic(err)
	}
	if !bytes.Equal(dec, data) {
		panic("mismatching bytes")
	}
	return 1
}
