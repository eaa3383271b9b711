package mwtree

import "sort"

// nilNode marks an absent node reference in the pool.
const nilNode = int32(-1)

// node is one entry of the tree's arena pool.
//
// All graph relations are expressed as pool indices rather than pointers, so
// cloning or transferring a whole tree is a matter of copying the pool; no
// back-pointer repair pass is ever needed.
type node[T any] struct {
	// elems is strictly increasing and duplicate-free; len(elems) <= capacity.
	elems []T
	// children has exactly capacity+1 slots. Slot i separates elems[i-1] and
	// elems[i]; nilNode marks an absent subtree. Children exist only below
	// full nodes, because insertion descends only when a node is full.
	children []int32
	// parent is nilNode for the root.
	parent int32
}

func newNode[T any](capacity int, parent int32) node[T] {
	children := make([]int32, capacity+1)
	for i := range children {
		children[i] = nilNode
	}
	return node[T]{children: children, parent: parent}
}

// alloc appends a fresh empty node to the pool and returns its index.
func (t *Tree[T]) alloc(parent int32) int32 {
	t.nodes = append(t.nodes, newNode[T](t.cfg.Capacity, parent))
	return int32(len(t.nodes) - 1)
}

// lowerBound returns the first position in elems whose element does not sort
// before v, or len(elems) if no such element exists.
func (t *Tree[T]) lowerBound(elems []T, v T) int {
	return sort.Search(len(elems), func(i int) bool {
		return t.cfg.Order.Compare(elems[i], v) >= 0
	})
}

// leftmostFrom descends into slot 0 until a node has no further left child.
func (t *Tree[T]) leftmostFrom(n int32) int32 {
	for t.nodes[n].children[0] != nilNode {
		n = t.nodes[n].children[0]
	}
	return n
}

// rightmostFrom descends into the slot one past the last element until a node
// has no further right child.
func (t *Tree[T]) rightmostFrom(n int32) int32 {
	for {
		nd := &t.nodes[n]
		child := nd.children[len(nd.elems)]
		if child == nilNode {
			return n
		}
		n = child
	}
}
