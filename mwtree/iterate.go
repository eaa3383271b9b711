package mwtree

// ForEach walks elements in ascending order.
//
// Iteration stops early if the callback returns false.
func (t *Tree[T]) ForEach(fn func(elem T) bool) error {
	if err := t.usable(); err != nil {
		return err
	}
	if fn == nil {
		return nil
	}
	t.forEachNode(t.root, fn)
	return nil
}

func (t *Tree[T]) forEachNode(n int32, fn func(elem T) bool) bool {
	nd := &t.nodes[n]
	for i := range nd.elems {
		if child := nd.children[i]; child != nilNode {
			if !t.forEachNode(child, fn) {
				return false
			}
		}
		if !fn(nd.elems[i]) {
			return false
		}
	}
	if child := nd.children[len(nd.elems)]; child != nilNode {
		return t.forEachNode(child, fn)
	}
	return true
}
