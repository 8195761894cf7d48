// Copyright 2024, The PurgePack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import "github.com/purgepack/purgepack/bitio"

// trieNode is one element of the decoding trie's arena: an internal node
// has non-negative child indices (-1 means "not yet created"); a leaf node
// carries a byte and has both children at -1.
type trieNode struct {
	left, right int32
	leaf        bool
	sym         byte
}

// decodingTrie is a binary trie built from a CanonicalCodeTable, used to
// walk the compressed bit stream one bit at a time during decompression
// (spec section 3, DecodingTrie).
type decodingTrie struct {
	nodes []trieNode
}

func newDecodingTrie() *decodingTrie {
	t := &decodingTrie{}
	t.nodes = append(t.nodes, trieNode{left: -1, right: -1})
	return t
}

// insert descends from the root using each bit of code (0 = left, 1 =
// right), creating internal nodes as needed, and places sym at the
// terminal leaf (spec section 4.7 step 4).
func (t *decodingTrie) insert(c code, sym byte) {
	cur := int32(0)
	for i := int(c.len) - 1; i >= 0; i-- {
		bit := (c.val >> uint(i)) & 1
		child := t.nodes[cur].left
		if bit == 1 {
			child = t.nodes[cur].right
		}
		if child < 0 {
			child = int32(len(t.nodes))
			t.nodes = append(t.nodes, trieNode{left: -1, right: -1})
			if bit == 0 {
				t.nodes[cur].left = child
			} else {
				t.nodes[cur].right = child
			}
		}
		cur = child
	}
	t.nodes[cur] = trieNode{left: -1, right: -1, leaf: true, sym: sym}
}

// decode reads exactly dataBits bits from r, walking the trie from the root
// on every bit and emitting a byte each time a leaf is reached, resetting to
// the root afterward (spec section 4.7 step 5).
func (t *decodingTrie) decode(r *bitio.Reader, dataBits uint) ([]byte, error) {
	var out []byte
	var bitsLeft = dataBits
	cur := int32(0)
	for bitsLeft > 0 {
		bit, ok := r.ReadBit()
		if !ok {
			return nil, ErrCorrupt
		}
		bitsLeft--
		n := &t.nodes[cur]
		var next int32
		if bit == 0 {
			next = n.left
		} else {
			next = n.right
		}
		if next < 0 {
			return nil, ErrCorrupt
		}
		nn := &t.nodes[next]
		if nn.leaf {
			out = append(out, nn.sym)
			cur = 0
		} else {
			cur = next
		}
	}
	if cur != 0 {
		// The data-bit count promised a whole number of symbols; stopping
		// mid-code means the frame's length fields lied.
		return nil, ErrCorrupt
	}
	return out, nil
}
