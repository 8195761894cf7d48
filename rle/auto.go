// Copyright 2024, The PurgePack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package rle

import (
	"math/rand"

	"github.com/cespare/xxhash/v2"
)

// Version identifies which RLE variant the auto-selector chose.
type Version int

const (
	V1 Version = 1
	V2 Version = 2
)

func (v Version) String() string {
	if v == V2 {
		return "v2"
	}
	return "v1"
}

// sampleSize is the window width read at each sampled offset (spec section 4.6).
const sampleSize = 1024

// sampleCount is the number of samples taken for inputs larger than
// sampleSize; their offsets are drawn independently, so windows may overlap. It is kept odd to minimize ties, as spec section 4.6 requires.
const sampleCount = 5

// Select runs the sampling heuristic of spec section 4.6 over src and
// reports which RLE variant scored higher. Sample offsets are derived from
// a math/rand source seeded with the xxhash of the entire input, so the
// decision is a pure function of src's contents (spec section 9's open
// question on auto-selector determinism).
func Select(src []byte) Version {
	samples := collectSamples(src)

	var scoreV1, scoreV2 int
	for _, s := range samples {
		if len(s) == 0 {
			continue
		}
		v1, err1 := CompressV1(s)
		v2, err2 := CompressV2(s)
		if err1 != nil || err2 != nil {
			continue
		}
		switch {
		case len(v2) < len(v1):
			scoreV2++
		case len(v1) < len(v2):
			scoreV1++
		}
	}

	if scoreV2 > scoreV1 {
		return V2
	}
	return V1
}

// Compress runs Select and encodes src with whichever variant it picks.
func Compress(src []byte) (dst []byte, chosen Version, err error) {
	if len(src) == 0 {
		return nil, V1, nil
	}
	chosen = Select(src)
	if chosen == V2 {
		dst, err = CompressV2(src)
	} else {
		dst, err = CompressV1(src)
	}
	return dst, chosen, err
}

// collectSamples returns the sample windows the selector scores. For inputs
// of at most sampleSize bytes, the whole input is the single sample.
// Otherwise it returns sampleCount disjoint-looking windows at
// deterministically-seeded random offsets in [0, len(src)-sampleSize].
func collectSamples(src []byte) [][]byte {
	if len(src) <= sampleSize {
		return [][]byte{src}
	}

	seed := int64(xxhash.Sum64(src))
	rng := rand.New(rand.NewSource(seed))
	maxOffset := len(src) - sampleSize

	samples := make([][]byte, 0, sampleCount)
	for i := 0; i < sampleCount; i++ {
		off := rng.Intn(maxOffset + 1)
		samples = append(samples, src[off:off+sampleSize])
	}
	return samples
}
