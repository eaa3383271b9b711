package mwtree

import (
	"cmp"
	"fmt"
)

// DefaultCapacity is the per-node element capacity used when clients do not
// choose one themselves.
const DefaultCapacity = 40

// Ordering defines a total order over element type T.
//
// Compare returns a negative value if a sorts before b, zero if a and b are
// equal, and a positive value otherwise. For elements a, b, c the order must
// be transitive and antisymmetric; the tree relies on Compare for both the
// ordering and the equality of elements.
type Ordering[T any] interface {
	Compare(a, b T) int
}

// NaturalOrdering orders any cmp.Ordered element type by its built-in
// comparison.
type NaturalOrdering[T cmp.Ordered] struct{}

// Compare compares a and b with the built-in order of T.
func (NaturalOrdering[T]) Compare(a, b T) int { return cmp.Compare(a, b) }

// Config configures a multiway search tree.
type Config[T any] struct {
	// Capacity is the maximum number of elements per node. Every node of one
	// tree shares the same capacity.
	Capacity int
	// Order is the comparator strategy for elements.
	Order Ordering[T]
}

func (cfg Config[T]) normalized() Config[T] {
	return cfg
}

func (cfg Config[T]) validate() error {
	cfg = cfg.normalized()
	if cfg.Capacity < 1 {
		// A zero-capacity node could never hold an element, making every
		// insert impossible.
		return fmt.Errorf("%w: capacity must be at least 1, got %d", ErrInvalidConfig, cfg.Capacity)
	}
	if cfg.Order == nil {
		return fmt.Errorf("%w: ordering is required", ErrInvalidConfig)
	}
	return nil
}
