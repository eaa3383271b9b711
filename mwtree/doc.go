/*
Package mwtree implements a generic in-memory multiway search tree.

The tree operates much like a binary search tree, except that every node
stores up to a configurable capacity of sorted, unique elements. A node
holding m elements partitions its subtrees into m+1 sorted ranges. Insertion
never splits or redistributes nodes: a node grows until it is full and then
pushes further elements into the appropriate child subtree, so the shape of
the tree depends entirely on insertion order and may degenerate to a chain.

Current status:
  - arena node pool with index-based parent/child links,
  - configuration with comparator strategy (`Ordering`) and capacity validation,
  - insert with duplicate rejection, find with not-found sentinel cursor,
  - bidirectional cursor protocol (successor/predecessor) plus reverse cursors,
  - deep `Clone` and ownership-transferring `Move` with cursor invalidation,
  - strict structural invariant checker (`Check`) for tests,
  - Graphviz DOT and colored console debug renderers.

The package is single-threaded by contract: no operation locks, and callers
must not share a tree between goroutines without external synchronization.
Inserting into a node may reallocate that node's element storage; cursors
referencing other positions of the same node are not guaranteed to survive
such a mutation.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package mwtree

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
