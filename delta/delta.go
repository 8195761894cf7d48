// Copyright 2024, The PurgePack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package delta implements first-order byte-delta coding with 8-bit wrap
// arithmetic, framed by the PurgePack container header.
package delta

import (
	"github.com/dsnet/golib/errs"

	"github.com/purgepack/purgepack/container"
)

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "delta: " + string(e) }

// ErrCorrupt is returned when a valid delta container header is not followed
// by a seed byte. A header that fails to parse or names another algorithm is
// reported as an Error carrying the container package's message.
var ErrCorrupt error = Error("corrupt input")

// Compress writes the container header followed by a seed byte (a copy of
// src[0]) and then, for every subsequent byte, the 8-bit wrapping difference
// from its predecessor. An empty input produces an empty output with no
// header, per spec section 4.3.
func Compress(src []byte) (dst []byte, err error) {
	defer errs.Recover(&err)

	if len(src) == 0 {
		return nil, nil
	}

	dst = container.Append(make([]byte, 0, container.HeaderLen+len(src)), container.Delta)
	dst = append(dst, src[0])
	prev := src[0]
	for _, b := range src[1:] {
		dst = append(dst, b-prev)
		prev = b
	}
	return dst, nil
}

// Decompress validates the container header, then reverses Compress: the
// seed byte is copied unchanged and each following delta is added to the
// running previous byte with 8-bit wraparound. An empty input produces an
// empty output.
func Decompress(src []byte) (dst []byte, err error) {
	defer errs.Recover(&err)

	if len(src) == 0 {
		return nil, nil
	}

	rest, err := container.Expect(src, container.Delta)
	if err != nil {
		errs.Panic(Error(err.Error()))
	}
	if len(rest) == 0 {
		// Header present but no seed byte follows: treat as corrupt, since
		// Compress never emits a header without at least a seed byte.
		errs.Panic(ErrCorrupt)
	}

	dst = make([]byte, 0, len(rest))
	prev := rest[0]
	dst = append(dst, prev)
	for _, d := range rest[1:] {
		prev = d + prev
		dst = append(dst, prev)
	}
	return dst, nil
}
