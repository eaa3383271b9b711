package mwtree

// Cursor is a position in the tree's ascending element sequence.
//
// A cursor is a (node, position) pair into the tree's node pool. The
// position one past a node's last element is used only by the End cursor;
// every other live cursor references an element. Cursor equality is
// structural on the (node, position) pair, so a Find miss compares equal to
// End.
//
// Cursors are invalidated by Move of their tree. Inserting into a node may
// reallocate that node's element storage; cursors referencing other
// positions of the same node are not guaranteed to remain valid.
type Cursor[T any] struct {
	tree  *Tree[T]
	node  int32
	pos   int
	epoch uint32
}

func (t *Tree[T]) cursorAt(n int32, pos int) Cursor[T] {
	return Cursor[T]{tree: t, node: n, pos: pos, epoch: t.epoch}
}

// Begin returns a cursor at the smallest element, found by leftmost descent.
//
// On an empty tree Begin equals End.
func (t *Tree[T]) Begin() Cursor[T] {
	assert(t != nil && !t.moved, "Begin called on unusable tree")
	return t.cursorAt(t.leftmostFrom(t.root), 0)
}

// End returns the cursor one past the largest element.
//
// End is a concrete reachable position: the rightmost node, positioned past
// its last element. It is not a detached sentinel value.
func (t *Tree[T]) End() Cursor[T] {
	assert(t != nil && !t.moved, "End called on unusable tree")
	n := t.rightmostFrom(t.root)
	return t.cursorAt(n, len(t.nodes[n].elems))
}

// valid guards cursor operations against stale or zero cursors.
func (c Cursor[T]) valid() error {
	if c.tree == nil {
		return ErrCursorInvalid
	}
	if c.tree.moved || c.epoch != c.tree.epoch {
		return ErrCursorInvalid
	}
	return nil
}

// Item returns the element under the cursor.
//
// Dereferencing the End cursor (or a stale cursor) reports an error instead
// of reading out of bounds.
func (c Cursor[T]) Item() (T, error) {
	var zero T
	if err := c.valid(); err != nil {
		return zero, err
	}
	nd := &c.tree.nodes[c.node]
	if c.pos < 0 || c.pos >= len(nd.elems) {
		return zero, ErrNoElement
	}
	return nd.elems[c.pos], nil
}

// Equal reports whether two cursors reference the same position.
func (c Cursor[T]) Equal(other Cursor[T]) bool {
	return c.tree == other.tree && c.node == other.node && c.pos == other.pos
}

// AtEnd reports whether the cursor is at the End position of its tree.
func (c Cursor[T]) AtEnd() bool {
	if c.valid() != nil {
		return false
	}
	return c.Equal(c.tree.End())
}

// Next advances the cursor to the successor element.
//
// The successor is found by descending into the child subtree right of the
// current position, by advancing within the node, or by ascending through
// parents re-probing for the first element greater than the departed one.
// Next saturates at End.
func (c *Cursor[T]) Next() error {
	if err := c.valid(); err != nil {
		return err
	}
	t := c.tree
	end := t.End()
	if c.node == end.node && c.pos == end.pos {
		return nil
	}
	nd := &t.nodes[c.node]
	if c.pos < 0 || c.pos >= len(nd.elems) {
		return ErrNoElement
	}
	departed := nd.elems[c.pos]
	if child := nd.children[c.pos+1]; child != nilNode {
		c.node, c.pos = t.leftmostFrom(child), 0
		return nil
	}
	if c.pos+1 < len(nd.elems) {
		c.pos++
		return nil
	}
	// Past the last element with no right child: ascend until an ancestor
	// holds an element greater than the departed one.
	n := c.node
	for {
		parent := t.nodes[n].parent
		if parent == nilNode {
			c.node, c.pos = end.node, end.pos
			return nil
		}
		pos := t.lowerBound(t.nodes[parent].elems, departed)
		if pos < len(t.nodes[parent].elems) {
			c.node, c.pos = parent, pos
			return nil
		}
		n = parent
	}
}

// Prev moves the cursor to the predecessor element.
//
// The predecessor is found by rightmost descent into the child subtree at
// the current slot, by decrementing within the node, or by ascending through
// parents for the nearest preceding ancestor element. Prev saturates at
// Begin.
func (c *Cursor[T]) Prev() error {
	if err := c.valid(); err != nil {
		return err
	}
	t := c.tree
	nd := &t.nodes[c.node]
	if len(nd.elems) == 0 {
		// Only the root of an empty tree has no elements; Begin == End there.
		return nil
	}
	if c.pos >= 0 && c.pos <= len(nd.elems) {
		if child := nd.children[c.pos]; child != nilNode {
			n := t.rightmostFrom(child)
			c.node, c.pos = n, len(t.nodes[n].elems)-1
			return nil
		}
	}
	if c.pos > 0 {
		c.pos--
		return nil
	}
	departed := nd.elems[0]
	n := c.node
	for {
		parent := t.nodes[n].parent
		if parent == nilNode {
			// No preceding element anywhere: saturate at Begin.
			begin := t.Begin()
			c.node, c.pos = begin.node, begin.pos
			return nil
		}
		pos := t.lowerBound(t.nodes[parent].elems, departed)
		if pos > 0 {
			c.node, c.pos = parent, pos-1
			return nil
		}
		n = parent
	}
}

// ReverseCursor walks the tree's element sequence in descending order.
//
// Like the standard reverse-iterator construction, a reverse cursor wraps a
// forward base cursor and dereferences the element just before it: RBegin
// wraps End and yields the largest element, REnd wraps Begin.
type ReverseCursor[T any] struct {
	base Cursor[T]
}

// RBegin returns the reverse cursor at the largest element.
func (t *Tree[T]) RBegin() ReverseCursor[T] {
	return ReverseCursor[T]{base: t.End()}
}

// REnd returns the reverse cursor one past the smallest element.
func (t *Tree[T]) REnd() ReverseCursor[T] {
	return ReverseCursor[T]{base: t.Begin()}
}

// Base returns the forward cursor the reverse cursor is built on.
func (r ReverseCursor[T]) Base() Cursor[T] {
	return r.base
}

// Item returns the element under the reverse cursor.
func (r ReverseCursor[T]) Item() (T, error) {
	var zero T
	b := r.base
	if err := b.Prev(); err != nil {
		return zero, err
	}
	if b.Equal(r.base) {
		// Prev saturated: the base is already at Begin, so the reverse
		// cursor is at REnd and holds no element.
		return zero, ErrNoElement
	}
	return b.Item()
}

// Next advances the reverse cursor towards smaller elements, saturating at
// REnd.
func (r *ReverseCursor[T]) Next() error {
	return r.base.Prev()
}

// Prev moves the reverse cursor towards larger elements, saturating at
// RBegin.
func (r *ReverseCursor[T]) Prev() error {
	return r.base.Next()
}

// Equal reports whether two reverse cursors reference the same position.
func (r ReverseCursor[T]) Equal(other ReverseCursor[T]) bool {
	return r.base.Equal(other.base)
}
