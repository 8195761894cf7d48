// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package testutil collects helpers shared by the codec packages' tests:
// hex-vector decoding and a deterministic PRNG for randomized round-trip
// properties (the pack has no corpus file loader to adapt, since
// PurgePack's codecs operate on whatever bytes a module is handed, not on
// a fixed benchmark corpus).
package testutil

import "encoding/hex"

// MustDecodeHex must decode a hexadecimal string or else panics.
func MustDecodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}
