package mwtree

import (
	"cmp"
	"fmt"
)

// Tree is an in-memory multiway search tree over elements of type T.
//
// Elements are unique under the configured ordering. The tree is not
// self-balancing: nodes fill up to their capacity and then push further
// elements into child subtrees, without splitting or redistribution.
type Tree[T any] struct {
	cfg   Config[T]
	nodes []node[T]
	root  int32
	// epoch is bumped by Move; cursors carry the epoch they were minted in
	// and refuse to operate across a move.
	epoch uint32
	moved bool
}

// New creates an empty tree with validated configuration.
//
// The root node is created eagerly, so even an empty tree owns one node.
func New[T any](cfg Config[T]) (*Tree[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	t := &Tree[T]{cfg: cfg, root: nilNode}
	t.root = t.alloc(nilNode)
	return t, nil
}

// NewOrdered creates an empty tree using the natural order of T.
//
// Capacity must be at least 1; DefaultCapacity is a sensible choice.
func NewOrdered[T cmp.Ordered](capacity int) (*Tree[T], error) {
	return New[T](Config[T]{Capacity: capacity, Order: NaturalOrdering[T]{}})
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[T]) Config() Config[T] {
	return t.cfg
}

// Capacity returns the per-node element capacity.
func (t *Tree[T]) Capacity() int {
	return t.cfg.Capacity
}

// usable guards public operations against nil and moved-from receivers.
func (t *Tree[T]) usable() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	if t.moved {
		return ErrTreeMoved
	}
	return nil
}

// IsEmpty reports whether the tree has no elements.
func (t *Tree[T]) IsEmpty() bool {
	return t == nil || t.moved || len(t.nodes) == 0 || len(t.nodes[t.root].elems) == 0
}

// Len returns the number of elements in the tree.
func (t *Tree[T]) Len() int {
	if t == nil || t.moved {
		return 0
	}
	total := 0
	for i := range t.nodes {
		total += len(t.nodes[i].elems)
	}
	return total
}

// Height returns the tree height, where 1 means a sole root node.
func (t *Tree[T]) Height() int {
	if t == nil || t.moved || len(t.nodes) == 0 {
		return 0
	}
	return t.subtreeHeight(t.root)
}

func (t *Tree[T]) subtreeHeight(n int32) int {
	nd := &t.nodes[n]
	h := 0
	for _, child := range nd.children {
		if child == nilNode {
			continue
		}
		if ch := t.subtreeHeight(child); ch > h {
			h = ch
		}
	}
	return h + 1
}

// Insert adds v to the tree unless an equal element is already present.
//
// The returned cursor references the inserted element, or the equal element
// that prevented insertion (inserted == false). Insertion descends past full
// nodes into the child slot at the probe position, creating at most one new
// node per call.
func (t *Tree[T]) Insert(v T) (Cursor[T], bool, error) {
	if err := t.usable(); err != nil {
		return Cursor[T]{}, false, err
	}
	n := t.root
	for {
		nd := &t.nodes[n]
		if len(nd.elems) == 0 {
			nd.elems = append(nd.elems, v)
			return t.cursorAt(n, 0), true, nil
		}
		pos := t.lowerBound(nd.elems, v)
		if pos < len(nd.elems) && t.cfg.Order.Compare(nd.elems[pos], v) == 0 {
			return t.cursorAt(n, pos), false, nil
		}
		if len(nd.elems) < t.cfg.Capacity {
			nd.elems = append(nd.elems, v)
			copy(nd.elems[pos+1:], nd.elems[pos:])
			nd.elems[pos] = v
			return t.cursorAt(n, pos), true, nil
		}
		if nd.children[pos] == nilNode {
			// alloc may grow the pool; re-index instead of using nd.
			child := t.alloc(n)
			t.nodes[n].children[pos] = child
			n = child
			continue
		}
		n = nd.children[pos]
	}
}

// Find returns a cursor at the element equal to v, or the End cursor when no
// such element exists.
func (t *Tree[T]) Find(v T) (Cursor[T], error) {
	if err := t.usable(); err != nil {
		return Cursor[T]{}, err
	}
	n := t.root
	for {
		nd := &t.nodes[n]
		pos := t.lowerBound(nd.elems, v)
		if pos < len(nd.elems) && t.cfg.Order.Compare(nd.elems[pos], v) == 0 {
			return t.cursorAt(n, pos), nil
		}
		if nd.children[pos] == nilNode {
			return t.End(), nil
		}
		n = nd.children[pos]
	}
}

// Contains reports whether an element equal to v is present.
func (t *Tree[T]) Contains(v T) bool {
	c, err := t.Find(v)
	if err != nil {
		return false
	}
	return !c.Equal(t.End())
}

// Clone returns a deep copy of the tree.
//
// The clone owns an independent node pool; mutating either tree never affects
// the other. Cursors of the original keep referring to the original.
func (t *Tree[T]) Clone() (*Tree[T], error) {
	if err := t.usable(); err != nil {
		return nil, err
	}
	c := &Tree[T]{
		cfg:   t.cfg,
		nodes: make([]node[T], len(t.nodes)),
		root:  t.root,
	}
	for i := range t.nodes {
		nd := &t.nodes[i]
		c.nodes[i] = node[T]{
			elems:    append([]T(nil), nd.elems...),
			children: append([]int32(nil), nd.children...),
			parent:   nd.parent,
		}
	}
	return c, nil
}

// Move transfers the tree's contents to a freshly returned tree.
//
// The receiver is poisoned afterwards: every further Insert/Find/Clone call
// on it reports ErrTreeMoved, and all cursors minted before the move report
// ErrCursorInvalid. Reassign or reconstruct the receiver to use it again.
func (t *Tree[T]) Move() (*Tree[T], error) {
	if err := t.usable(); err != nil {
		return nil, err
	}
	m := &Tree[T]{
		cfg:   t.cfg,
		nodes: t.nodes,
		root:  t.root,
	}
	t.nodes = nil
	t.root = nilNode
	t.moved = true
	t.epoch++
	return m, nil
}
