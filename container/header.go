// Copyright 2024, The PurgePack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package container implements the fixed 5-byte header that tags every
// PurgePack encoded stream with the algorithm that produced it.
package container

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "container: " + string(e) }

var (
	// ErrCorrupt indicates the stream does not begin with the PPCB magic.
	ErrCorrupt error = Error("bad magic")

	// ErrUnsupported indicates the algorithm id is not the one the caller expected.
	ErrUnsupported error = Error("unsupported algorithm id")
)

// Algorithm identifies which codec produced (or must consume) a container.
type Algorithm byte

// The frozen algorithm id assignment (spec section 6.1).
const (
	Delta   Algorithm = 0x01
	Huffman Algorithm = 0x02
	RLEv1   Algorithm = 0x03
	RLEv2   Algorithm = 0x04
)

func (a Algorithm) String() string {
	switch a {
	case Delta:
		return "delta"
	case Huffman:
		return "huffman"
	case RLEv1:
		return "rle1"
	case RLEv2:
		return "rle2"
	default:
		return "unknown"
	}
}

// Magic is the 4-byte prefix ("PPCB") every non-empty encoded stream begins with.
var Magic = [4]byte{'P', 'P', 'C', 'B'}

// HeaderLen is the total size in bytes of a container header.
const HeaderLen = len(Magic) + 1

// Header is the 5-byte prefix written at the start of every non-empty
// encoded stream.
type Header struct {
	Algorithm Algorithm
}

// Append appends the encoded header for the given algorithm to buf and
// returns the extended slice.
func Append(buf []byte, alg Algorithm) []byte {
	buf = append(buf, Magic[:]...)
	buf = append(buf, byte(alg))
	return buf
}

// Parse consumes the first HeaderLen bytes of buf, validates the magic, and
// returns the parsed Header along with the remaining unconsumed bytes.
//
// Parse fails with ErrCorrupt if buf is shorter than HeaderLen or the magic
// does not match. It does not itself check the algorithm id against an
// expected value; callers that decode a specific algorithm should compare
// the returned Header.Algorithm against their own constant and return
// ErrUnsupported on mismatch.
func Parse(buf []byte) (hdr Header, rest []byte, err error) {
	if len(buf) < HeaderLen {
		return Header{}, nil, ErrCorrupt
	}
	if buf[0] != Magic[0] || buf[1] != Magic[1] || buf[2] != Magic[2] || buf[3] != Magic[3] {
		return Header{}, nil, ErrCorrupt
	}
	hdr.Algorithm = Algorithm(buf[4])
	return hdr, buf[HeaderLen:], nil
}

// Expect parses a header from buf and verifies that its algorithm id matches
// want, returning ErrUnsupported if it does not.
func Expect(buf []byte, want Algorithm) (rest []byte, err error) {
	hdr, rest, err := Parse(buf)
	if err != nil {
		return nil, err
	}
	if hdr.Algorithm != want {
		return nil, ErrUnsupported
	}
	return rest, nil
}
