package mwtree

import "fmt"

// Check validates structural tree invariants.
//
// This checker is intentionally strict and meant for use in tests: it
// verifies pool integrity (every node reachable exactly once from the root),
// per-node ordering and capacity bounds, parent back-links, the rule that
// only full nodes may hold children, and the strictly increasing global
// in-order sequence.
func (t *Tree[T]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrStructure)
	}
	if t.moved {
		return ErrTreeMoved
	}
	if t.root == nilNode || int(t.root) >= len(t.nodes) {
		return fmt.Errorf("%w: missing root node", ErrStructure)
	}
	seen := make([]bool, len(t.nodes))
	if err := t.checkNode(t.root, nilNode, seen); err != nil {
		return err
	}
	for i, reached := range seen {
		if !reached {
			return fmt.Errorf("%w: orphaned pool node %d", ErrStructure, i)
		}
	}
	var prev T
	have := false
	ok := true
	t.forEachNode(t.root, func(v T) bool {
		if have && t.cfg.Order.Compare(prev, v) >= 0 {
			ok = false
			return false
		}
		prev, have = v, true
		return true
	})
	if !ok {
		return fmt.Errorf("%w: in-order sequence not strictly increasing", ErrStructure)
	}
	return nil
}

func (t *Tree[T]) checkNode(n int32, parent int32, seen []bool) error {
	if n < 0 || int(n) >= len(t.nodes) {
		return fmt.Errorf("%w: node index %d out of pool range", ErrStructure, n)
	}
	if seen[n] {
		return fmt.Errorf("%w: node %d reached twice", ErrStructure, n)
	}
	seen[n] = true
	nd := &t.nodes[n]
	if nd.parent != parent {
		return fmt.Errorf("%w: node %d has parent %d, want %d", ErrStructure, n, nd.parent, parent)
	}
	if len(nd.elems) > t.cfg.Capacity {
		return fmt.Errorf("%w: node %d holds %d elements, capacity is %d",
			ErrStructure, n, len(nd.elems), t.cfg.Capacity)
	}
	if len(nd.children) != t.cfg.Capacity+1 {
		return fmt.Errorf("%w: node %d has %d child slots, want %d",
			ErrStructure, n, len(nd.children), t.cfg.Capacity+1)
	}
	if n != t.root && len(nd.elems) == 0 {
		return fmt.Errorf("%w: empty non-root node %d", ErrStructure, n)
	}
	for i := 1; i < len(nd.elems); i++ {
		if t.cfg.Order.Compare(nd.elems[i-1], nd.elems[i]) >= 0 {
			return fmt.Errorf("%w: node %d elements not strictly increasing at %d", ErrStructure, n, i)
		}
	}
	for slot, child := range nd.children {
		if child == nilNode {
			continue
		}
		if len(nd.elems) < t.cfg.Capacity {
			return fmt.Errorf("%w: non-full node %d has a child in slot %d", ErrStructure, n, slot)
		}
		if err := t.checkNode(child, n, seen); err != nil {
			return err
		}
	}
	return nil
}
