// Copyright 2024, The PurgePack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"github.com/dsnet/golib/errs"

	"github.com/purgepack/purgepack/bitio"
	"github.com/purgepack/purgepack/container"
)

// Compress reads the entire input, builds a canonical Huffman code over it,
// and writes the container header followed by the framed payload of spec
// section 6.3: a 32-bit table length, a 32-bit data-bit length, the
// (byte, length) table entries, the code bits, and 0..7 padding bits.
//
// An empty input produces an empty output with no header.
func Compress(src []byte) (dst []byte, err error) {
	defer errs.Recover(&err)

	if len(src) == 0 {
		return nil, nil
	}

	ft := buildFrequencyTable(src)
	t, ok := buildTree(ft)
	errs.Assert(ok, Error("empty frequency table"))

	lens := t.codeLengths()
	sorted := sortedLengths(lens)

	w := bitio.NewWriter()

	if len(sorted) == 1 {
		// Single distinct byte: a length-0 code cannot be serialized, so
		// store the byte and its repeat count directly (spec section 4.7,
		// "edge case — single distinct byte"; resolved in SPEC_FULL.md).
		w.WriteBits(1, 32) // table length T = 1
		w.WriteBits(uint64(len(src)), 32) // repurposed as the repeat count
		w.WriteBits(uint64(sorted[0].sym), 8)
		w.WriteBits(0, 8) // length field is 0, the special-case marker
		w.Flush()
		return append(container.Append(make([]byte, 0, len(w.Bytes())+container.HeaderLen), container.Huffman), w.Bytes()...), nil
	}

	errs.Assert(satisfiesKraft(sorted), Error("code lengths violate Kraft inequality"))
	table := buildCanonicalTable(sorted)

	var dataBits uint64
	for _, cl := range sorted {
		dataBits += uint64(countOccurrences(ft, cl.sym)) * uint64(cl.len)
	}

	w.WriteBits(uint64(len(sorted)), 32)
	w.WriteBits(dataBits, 32)
	for _, cl := range sorted {
		w.WriteBits(uint64(cl.sym), 8)
		w.WriteBits(uint64(cl.len), 8)
	}
	for _, b := range src {
		c := table[b]
		w.WriteBits(uint64(c.val), c.len)
	}
	w.Flush()

	dst = container.Append(make([]byte, 0, len(w.Bytes())+container.HeaderLen), container.Huffman)
	dst = append(dst, w.Bytes()...)
	return dst, nil
}

func countOccurrences(ft frequencyTable, sym byte) uint64 { return ft[sym] }

// Decompress validates the container header, reads the framed code table,
// regenerates the canonical code table, builds a decoding trie, and walks
// the remaining bits to recover the original bytes (spec section 4.7,
// compress steps mirrored in reverse).
func Decompress(src []byte) (dst []byte, err error) {
	defer errs.Recover(&err)

	if len(src) == 0 {
		return nil, nil
	}

	rest, cerr := container.Expect(src, container.Huffman)
	if cerr != nil {
		errs.Panic(Error(cerr.Error()))
	}

	r := bitio.NewReader(rest)
	tableLen, ok := r.ReadBits(32)
	errs.Assert(ok, ErrCorrupt)
	dataLen, ok := r.ReadBits(32)
	errs.Assert(ok, ErrCorrupt)

	type entry struct {
		sym byte
		len uint
	}
	entries := make([]entry, 0, tableLen)
	for i := uint64(0); i < tableLen; i++ {
		symV, ok := r.ReadBits(8)
		errs.Assert(ok, ErrCorrupt)
		lenV, ok := r.ReadBits(8)
		errs.Assert(ok, ErrCorrupt)
		entries = append(entries, entry{sym: byte(symV), len: uint(lenV)})
	}

	if len(entries) == 1 && entries[0].len == 0 {
		// The single-distinct-byte special case: dataLen is a repeat count,
		// not a bit count.
		dst = make([]byte, dataLen)
		for i := range dst {
			dst[i] = entries[0].sym
		}
		return dst, nil
	}

	errs.Assert(len(entries) > 0, ErrCorrupt)
	sorted := make([]codeLength, len(entries))
	for i, e := range entries {
		errs.Assert(e.len >= 1 && e.len <= maxCodeLen, ErrCorrupt)
		sorted[i] = codeLength{sym: e.sym, len: e.len}
	}
	// entries were written in canonical (length, sym) order by Compress, so
	// sorted is already in that order; sort defensively in case a frame was
	// produced by some other encoder.
	sorted = sortedLengths(lensFromSorted(sorted))
	errs.Assert(satisfiesKraft(sorted), ErrCorrupt)
	table := buildCanonicalTable(sorted)

	trie := newDecodingTrie()
	for _, cl := range sorted {
		trie.insert(table[cl.sym], cl.sym)
	}

	out, derr := trie.decode(r, uint(dataLen))
	errs.Assert(derr == nil, ErrCorrupt)
	return out, nil
}

func lensFromSorted(sorted []codeLength) map[byte]uint {
	m := make(map[byte]uint, len(sorted))
	for _, cl := range sorted {
		m[cl.sym] = cl.len
	}
	return m
}
