// Copyright 2024, The PurgePack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// +build gofuzz

package rle

import (
	"bytes"

	"github.com/purgepack/purgepack/rle"
)

// Fuzz exercises both fixed versions and the auto-selector, checking that
// every path round-trips through the shared Decompress dispatcher (spec
// section 4.4-4.6).
func Fuzz(data []byte) int {
	testRoundTrip(data, rle.CompressV1)
	testRoundTrip(data, rle.CompressV2)
	testAutoRoundTrip(data)
	return 1
}

func testRoundTrip(data []byte, compress func([]byte) ([]byte, error)) {
	enc, err := compress(data)
	if err != nil {
		panic(err)
	}
	dec, err := rle.Decompress(enc)
	if err != nil {
		panic(err)
	}
	if !bytes.Equal(dec, data) {
		panic("mismatching bytes")
	}
}

func testAutoRoundTrip(data []byte) {
	enc, _, err := rle.Compress(data)
	if err != nil {
		panic(err)
	}
	dec, err := rle.Decompress(enc)
	if err != nil {
		panic(err)
	}
	if !bytes.Equal(dec, data) {
		panic("mismatching bytes")
	}
}
