// Copyright 2024, The PurgePack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package rle

import (
	"github.com/dsnet/golib/errs"

	"github.com/purgepack/purgepack/container"
)

// escByte is the RLE v2 escape sentinel (spec section 4.5).
const escByte = 0x00

// CompressV2 encodes src using the escape-hybrid scheme: runs longer than 3,
// or runs of the escape byte itself, are written as an ESC,count,byte
// triplet; shorter runs of any other byte are written as literal repeats.
// An empty input produces an empty output with no header.
func CompressV2(src []byte) (dst []byte, err error) {
	defer errs.Recover(&err)

	if len(src) == 0 {
		return nil, nil
	}

	dst = container.Append(make([]byte, 0, container.HeaderLen+len(src)), container.RLEv2)
	scanRuns(src, func(count, value byte) {
		if count > 3 || value == escByte {
			dst = append(dst, escByte, count, value)
			return
		}
		for i := byte(0); i < count; i++ {
			dst = append(dst, value)
		}
	})
	return dst, nil
}

// DecompressV2 reverses CompressV2. A literal byte that is not the escape
// sentinel is copied as-is; an escape byte must be followed by at least two
// more bytes (count, value), which are expanded by repetition. A trailing
// escape with fewer than two remaining bytes is ErrCorrupt.
func DecompressV2(src []byte) (dst []byte, err error) {
	defer errs.Recover(&err)

	if len(src) == 0 {
		return nil, nil
	}

	rest, err := container.Expect(src, container.RLEv2)
	if err != nil {
		errs.Panic(Error(err.Error()))
	}

	dst = make([]byte, 0, len(rest))
	for i := 0; i < len(rest); {
		b := rest[i]
		if b != escByte {
			dst = append(dst, b)
			i++
			continue
		}
		errs.Assert(i+2 < len(rest), ErrCorrupt)
		count, value := rest[i+1], rest[i+2]
		for j := byte(0); j < count; j++ {
			dst = append(dst, value)
		}
		i += 3
	}
	return dst, nil
}
