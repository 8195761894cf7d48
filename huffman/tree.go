// Copyright 2024, The PurgePack Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import "container/heap"

// frequencyTable holds one nonnegative count per byte value (spec section 3,
// FrequencyTable).
type frequencyTable [256]uint64

// buildFrequencyTable makes a single pass over data and counts byte
// occurrences.
func buildFrequencyTable(data []byte) frequencyTable {
	var ft frequencyTable
	for _, b := range data {
		ft[b]++
	}
	return ft
}

// node is one element of the tree arena. A node with both children equal to
// -1 is a leaf; otherwise it is an internal fork. This tagged-variant-by-
// sentinel layout follows the arena redesign in spec section 9.
type node struct {
	weight      uint64
	left, right int32 // arena indices, or -1 for a leaf
	sym         byte  // valid only when left == -1 && right == -1
}

func (n *node) isLeaf() bool { return n.left < 0 && n.right < 0 }

// tree is an arena of nodes with a designated root.
type tree struct {
	nodes []node
	root  int32
}

// pqItem is one entry in the tree-building priority queue: either a fresh
// leaf (not yet in the arena) or an already-built subtree root (an arena
// index). seq breaks ties between equal weights deterministically, ordered
// by the byte value (for leaves) or by insertion order (for merged
// subtrees) — spec section 4.7 leaves the tie-break unspecified at the
// algorithm level, so any consistent order yields a legal canonical code.
type pqItem struct {
	weight uint64
	seq    int
	idx    int32
}

type priorityQueue []pqItem

func (pq priorityQueue) Len() int { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].weight != pq[j].weight {
		return pq[i].weight < pq[j].weight
	}
	return pq[i].seq < pq[j].seq
}
func (pq priorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x any)   { *pq = append(*pq, x.(pqItem)) }
func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}

// buildTree constructs a Huffman tree from ft using a min-priority queue:
// repeatedly pop the two lightest nodes, merge them under a new internal
// node, and push the merge back, until one root remains (spec section 4.7
// step 3). It returns ok=false if ft has no nonzero entries.
func buildTree(ft frequencyTable) (t tree, ok bool) {
	var pq priorityQueue
	seq := 0
	for sym := 0; sym < 256; sym++ {
		if ft[sym] == 0 {
			continue
		}
		idx := int32(len(t.nodes))
		t.nodes = append(t.nodes, node{weight: ft[sym], left: -1, right: -1, sym: byte(sym)})
		pq = append(pq, pqItem{weight: ft[sym], seq: seq, idx: idx})
		seq++
	}
	if len(pq) == 0 {
		return tree{}, false
	}
	heap.Init(&pq)

	for pq.Len() > 1 {
		a := heap.Pop(&pq).(pqItem)
		b := heap.Pop(&pq).(pqItem)
		idx := int32(len(t.nodes))
		t.nodes = append(t.nodes, node{weight: a.weight + b.weight, left: a.idx, right: b.idx})
		heap.Push(&pq, pqItem{weight: a.weight + b.weight, seq: seq, idx: idx})
		seq++
	}
	t.root = pq[0].idx
	return t, true
}

// codeLengths walks the tree once and returns, for every symbol present,
// its code length (the depth of its leaf). A single-leaf tree is reported
// with that leaf at length 0: the caller (frame encoder) must special-case
// it, since a length-0 code cannot appear in a canonical code table (spec
// section 4.7, "edge case — single distinct byte").
func (t tree) codeLengths() map[byte]uint {
	lens := make(map[byte]uint)
	if len(t.nodes) == 0 {
		return lens
	}
	if t.nodes[t.root].isLeaf() {
		lens[t.nodes[t.root].sym] = 0
		return lens
	}
	var walk func(idx int32, depth uint)
	walk = func(idx int32, depth uint) {
		n := &t.nodes[idx]
		if n.isLeaf() {
			lens[n.sym] = depth
			return
		}
		walk(n.left, depth+1)
		walk(n.right, depth+1)
	}
	walk(t.root, 0)
	return lens
}
