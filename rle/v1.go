// Copyright 2024, The PurgePack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package rle

import (
	"github.com/dsnet/golib/errs"

	"github.com/purgepack/purgepack/container"
)

// CompressV1 encodes src as a sequence of (count, byte) pairs (spec section
// 4.4). An empty input produces an empty output with no header.
func CompressV1(src []byte) (dst []byte, err error) {
	defer errs.Recover(&err)

	if len(src) == 0 {
		return nil, nil
	}

	dst = container.Append(make([]byte, 0, container.HeaderLen+2*len(src)), container.RLEv1)
	scanRuns(src, func(count, value byte) {
		dst = append(dst, count, value)
	})
	return dst, nil
}

// DecompressV1 reverses CompressV1. It rejects an odd-length payload (the
// pairs can never be split) with ErrCorrupt.
func DecompressV1(src []byte) (dst []byte, err error) {
	defer errs.Recover(&err)

	if len(src) == 0 {
		return nil, nil
	}

	rest, err := container.Expect(src, container.RLEv1)
	if err != nil {
		errs.Panic(Error(err.Error()))
	}
	errs.Assert(len(rest)%2 == 0, ErrCorrupt)

	dst = make([]byte, 0, len(rest))
	for i := 0; i < len(rest); i += 2 {
		count, value := rest[i], rest[i+1]
		for j := byte(0); j < count; j++ {
			dst = append(dst, value)
		}
	}
	return dst, nil
}
