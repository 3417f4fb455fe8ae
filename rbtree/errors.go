package rbtree

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("rbtree: invalid configuration")
	// ErrEmptyTree is the panic value of Remove on an empty tree.
	ErrEmptyTree = errors.New("rbtree: can't remove from an empty tree")
	// ErrIndexOutOfBounds is the panic value of Select for an index outside [0, Len()).
	ErrIndexOutOfBounds = errors.New("rbtree: index out of range")
	// ErrCorrupted signals a violated structural invariant, as reported by Check.
	ErrCorrupted = errors.New("rbtree: invariant violated")
)
