package mwtree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("mwtree: invalid configuration")
	// ErrTreeMoved signals use of a tree whose contents have been moved away.
	ErrTreeMoved = errors.New("mwtree: tree has been moved from")
	// ErrCursorInvalid signals use of a cursor that outlived a move of its tree.
	ErrCursorInvalid = errors.New("mwtree: cursor is invalid")
	// ErrNoElement signals dereferencing a cursor that holds no element.
	ErrNoElement = errors.New("mwtree: cursor holds no element")
	// ErrStructure signals a violated structural invariant found by Check.
	ErrStructure = errors.New("mwtree: tree structure corrupted")
)
