// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import "container/heap"

// node is a node of a Huffman tree. Leaves carry a symbol; internal nodes
// own exactly two children.
type node struct {
	sym    rune
	leaf   bool
	weight int
	seq    int // Creation order, used to break ties between equal weights

	left, right *node
}

// freqTable counts the runes of an input in order of first occurrence.
type freqTable struct {
	syms   []rune
	counts map[rune]int
}

func countFreqs(s string) freqTable {
	ft := freqTable{counts: make(map[rune]int)}
	for _, r := range s {
		if ft.counts[r] == 0 {
			ft.syms = append(ft.syms, r)
		}
		ft.counts[r]++
	}
	return ft
}

// nodeHeap is a min-heap of nodes ordered by weight, then by creation order.
type nodeHeap []*node

func (h nodeHeap) Len() int      { return len(h) }
func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h nodeHeap) Less(i, j int) bool {
	if h[i].weight != h[j].weight {
		return h[i].weight < h[j].weight
	}
	return h[i].seq < h[j].seq
}
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(*node)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := old[len(old)-1]
	*h = old[:len(old)-1]
	return n
}

// buildTree joins the two lightest roots until a single root remains.
// The lighter of the pair becomes the left child. Among equal weights, older
// nodes are taken first, leaves being older than any internal node and
// ordered among themselves by first occurrence. This yields the same tree as
// repeatedly stable-sorting the roots by weight and merging the first two.
//
// It returns nil for an empty table.
func buildTree(ft freqTable) *node {
	h := make(nodeHeap, 0, len(ft.syms))
	for i, r := range ft.syms {
		h = append(h, &node{sym: r, leaf: true, weight: ft.counts[r], seq: i})
	}
	if len(h) == 0 {
		return nil
	}
	heap.Init(&h)

	seq := len(h)
	for h.Len() > 1 {
		left := heap.Pop(&h).(*node)
		right := heap.Pop(&h).(*node)
		heap.Push(&h, &node{
			weight: left.weight + right.weight,
			seq:    seq,
			left:   left,
			right:  right,
		})
		seq++
	}
	return h[0]
}

// buildCodes derives the code table of the tree in depth-first order,
// appending '0' for every left edge and '1' for every right edge.
// A tree made of a single leaf assigns the code "0".
func buildCodes(root *node) []Code {
	var codes []Code
	var walk func(n *node, prefix string)
	walk = func(n *node, prefix string) {
		if n.leaf {
			if prefix == "" {
				prefix = "0"
			}
			codes = append(codes, Code{Sym: n.sym, Bits: prefix})
			return
		}
		walk(n.left, prefix+"0")
		walk(n.right, prefix+"1")
	}
	if root != nil {
		walk(root, "")
	}
	return codes
}
