package rbtree

import (
	"cmp"
	"fmt"
)

// CompareFunc is a three-way comparison over keys. It returns a negative
// number if a < b, zero if a == b and a positive number if a > b.
//
// The comparison has to define a total order; the tree never checks this.
type CompareFunc[K any] func(a, b K) int

// Config configures a red-black tree.
type Config[K any] struct {
	// Compare orders the keys of the tree. It is required.
	Compare CompareFunc[K]
	// AllowDuplicates makes the tree a multiset: inserting an existing key
	// increments the key's count instead of being a no-op.
	AllowDuplicates bool
}

// OrderedConfig returns a configuration for keys with a natural order.
func OrderedConfig[K cmp.Ordered](allowDuplicates bool) Config[K] {
	return Config[K]{
		Compare:         cmp.Compare[K],
		AllowDuplicates: allowDuplicates,
	}
}

func (cfg Config[K]) validate() error {
	if cfg.Compare == nil {
		return fmt.Errorf("%w: comparator is required", ErrInvalidConfig)
	}
	return nil
}
