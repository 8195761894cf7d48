// Copyright 2024, The PurgePack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package rle

import (
	"github.com/purgepack/purgepack/container"
)

// Decompress inspects the container header's algorithm id and dispatches to
// DecompressV1 or DecompressV2 accordingly. This is the entry point modules
// use, since a compressed file's variant is recorded in its own header and
// need not be supplied by the caller.
func Decompress(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, nil
	}
	hdr, _, err := container.Parse(src)
	if err != nil {
		return nil, Error(err.Error())
	}
	switch hdr.Algorithm {
	case container.RLEv1:
		return DecompressV1(src)
	case container.RLEv2:
		return DecompressV2(src)
	default:
		return nil, container.ErrUnsupported
	}
}
