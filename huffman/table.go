// Copyright 2024, The PurgePack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import "sort"

// codeLength is one (byte, length) pair of the serialized CodeLengths set
// (spec section 3, CodeLengths).
type codeLength struct {
	sym byte
	len uint
}

// code is one entry of the in-memory CanonicalCodeTable (spec section 3):
// the bit pattern itself, right-justified in val, plus its length.
type code struct {
	val uint32
	len uint
}

// sortedLengths returns lens as a slice sorted by (length ascending, byte
// value ascending), the order canonical assignment requires (spec section
// 4.7 step 5).
func sortedLengths(lens map[byte]uint) []codeLength {
	out := make([]codeLength, 0, len(lens))
	for sym, l := range lens {
		out = append(out, codeLength{sym: sym, len: l})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].len != out[j].len {
			return out[i].len < out[j].len
		}
		return out[i].sym < out[j].sym
	})
	return out
}

// buildCanonicalTable assigns canonical codes to a set of sorted (byte,
// length) pairs: starting from code 0, each entry's code is the current
// accumulator's low `len` bits, then the accumulator is incremented; the
// accumulator is shifted left by the increase in length between successive
// entries (spec section 4.7 step 5).
func buildCanonicalTable(sorted []codeLength) map[byte]code {
	table := make(map[byte]code, len(sorted))
	var acc uint32
	var prevLen uint
	for i, cl := range sorted {
		if i > 0 {
			acc <<= cl.len - prevLen
		}
		table[cl.sym] = code{val: acc, len: cl.len}
		acc++
		prevLen = cl.len
	}
	return table
}

// satisfiesKraft reports whether the multiset of lengths satisfies the
// Kraft inequality sum(2^-length) <= 1 (spec section 3, Kraft invariant).
func satisfiesKraft(sorted []codeLength) bool {
	// Accumulate as a fixed-point fraction over 2^maxLen to avoid floating
	// point: each length-l code contributes 2^(maxLen-l).
	if len(sorted) == 0 {
		return true
	}
	maxLen := sorted[len(sorted)-1].len
	for _, cl := range sorted {
		if cl.len > maxLen {
			maxLen = cl.len
		}
	}
	var total uint64
	for _, cl := range sorted {
		total += uint64(1) << (maxLen - cl.len)
	}
	return total <= uint64(1)<<maxLen
}
