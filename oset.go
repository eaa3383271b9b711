package oset

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/npillmayer/oset/mwtree"
)

// Set stores unique elements in ascending order in a multiway search tree.
//
// A set created by
//
//	Set[int]{}
//
// is a valid object and behaves like an empty read-only set; inserting
// requires a set built by NewSet or NewSetWith, which bind the element order
// and the per-node capacity.
//
// Assigning a Set value shares the underlying tree; use Clone for an
// independent copy and Move to transfer ownership.
type Set[E any] struct {
	tree *mwtree.Tree[E]
}

// NewSet creates a set over a naturally ordered element type, with the
// default node capacity.
func NewSet[E cmp.Ordered](values ...E) Set[E] {
	s, err := NewSetWith[E](mwtree.NaturalOrdering[E]{}, mwtree.DefaultCapacity, values...)
	assert(err == nil, "NewSet: cannot create tree with default configuration")
	return s
}

// NewSetWith creates a set with an explicit ordering and node capacity.
//
// Capacity must be at least 1; a zero-capacity node could never hold an
// element.
func NewSetWith[E any](order mwtree.Ordering[E], capacity int, values ...E) (Set[E], error) {
	tree, err := mwtree.New[E](mwtree.Config[E]{Capacity: capacity, Order: order})
	if err != nil {
		return Set[E]{}, err
	}
	T().Debugf("oset: new set with node capacity %d", capacity)
	s := Set[E]{tree: tree}
	for _, v := range values {
		if _, err := s.Insert(v); err != nil {
			return Set[E]{}, err
		}
	}
	return s, nil
}

// Insert adds v to the set and reports whether the set grew.
//
// Inserting an element equal to a present one leaves the set unchanged and
// returns false.
func (s Set[E]) Insert(v E) (bool, error) {
	if s.tree == nil {
		return false, ErrSetNotConstructed
	}
	_, inserted, err := s.tree.Insert(v)
	return inserted, err
}

// Contains reports whether an element equal to v is in the set.
func (s Set[E]) Contains(v E) bool {
	if s.tree == nil {
		return false
	}
	return s.tree.Contains(v)
}

// Len returns the number of elements in the set.
func (s Set[E]) Len() int {
	if s.tree == nil {
		return 0
	}
	return s.tree.Len()
}

// IsEmpty reports whether the set has no elements.
func (s Set[E]) IsEmpty() bool {
	return s.tree == nil || s.tree.IsEmpty()
}

// All returns an iterator over all elements in ascending order.
func (s Set[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		if s.tree == nil {
			return
		}
		err := s.tree.ForEach(func(v E) bool {
			return yield(v)
		})
		assert(err == nil, "set.All: cannot iterate tree")
	}
}

// Backward returns an iterator over all elements in descending order.
func (s Set[E]) Backward() iter.Seq[E] {
	return func(yield func(E) bool) {
		if s.tree == nil {
			return
		}
		rend := s.tree.REnd()
		for r := s.tree.RBegin(); !r.Equal(rend); {
			v, err := r.Item()
			assert(err == nil, "set.Backward: cannot dereference cursor")
			if !yield(v) {
				return
			}
			err = r.Next()
			assert(err == nil, "set.Backward: cannot advance cursor")
		}
	}
}

// String returns the ascending element sequence, space-separated.
//
// There is no leading or trailing separator and no line terminator.
func (s Set[E]) String() string {
	var bf strings.Builder
	first := true
	for v := range s.All() {
		if !first {
			bf.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&bf, "%v", v)
	}
	return bf.String()
}

// Clone returns a deep copy of the set.
//
// Mutating the clone never changes the original, and vice versa.
func (s Set[E]) Clone() (Set[E], error) {
	if s.tree == nil {
		return Set[E]{}, nil
	}
	tree, err := s.tree.Clone()
	if err != nil {
		return Set[E]{}, err
	}
	return Set[E]{tree: tree}, nil
}

// Move transfers the set's contents to the returned set.
//
// The receiver's tree is poisoned afterwards: further inserts and lookups on
// this set (or any set sharing its tree) report mwtree.ErrTreeMoved.
func (s Set[E]) Move() (Set[E], error) {
	if s.tree == nil {
		return Set[E]{}, nil
	}
	tree, err := s.tree.Move()
	if err != nil {
		return Set[E]{}, err
	}
	return Set[E]{tree: tree}, nil
}

// Dot outputs the internal tree structure in Graphviz DOT format
// (for debugging purposes).
func (s Set[E]) Dot(w io.Writer) {
	if s.tree == nil {
		return
	}
	if err := s.tree.Dot(w); err != nil {
		T().Errorf("set DOT: %s", err.Error())
	}
}

// Sketch outputs an indented colored outline of the internal tree structure
// (for debugging purposes).
func (s Set[E]) Sketch(w io.Writer) {
	if s.tree == nil {
		return
	}
	if err := s.tree.Sketch(w); err != nil {
		T().Errorf("set sketch: %s", err.Error())
	}
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
