package collections

import (
	"cmp"

	"github.com/npillmayer/collections/rbtree"
)

// OrderedSet is a sorted set of keys with positional access.
//
// An OrderedSet is not safe for concurrent use.
type OrderedSet[K any] struct {
	tree *rbtree.Tree[K]
}

// NewOrderedSet creates an empty set ordered by compare.
func NewOrderedSet[K any](compare func(a, b K) int) (*OrderedSet[K], error) {
	tree, err := rbtree.New(rbtree.Config[K]{Compare: compare})
	if err != nil {
		return nil, ErrIllegalArguments
	}
	return &OrderedSet[K]{tree: tree}, nil
}

// NewSet creates an empty set for keys with a natural order.
func NewSet[K cmp.Ordered](keys ...K) *OrderedSet[K] {
	s := &OrderedSet[K]{tree: rbtree.NewOrdered[K](false)}
	for _, k := range keys {
		s.tree.Insert(k)
	}
	return s
}

// Add inserts key and reports whether it was not present before.
func (s *OrderedSet[K]) Add(key K) bool {
	n := s.tree.Len()
	s.tree.Insert(key)
	return s.tree.Len() > n
}

// Remove deletes key.
func (s *OrderedSet[K]) Remove(key K) error {
	return remove(s.tree, key)
}

// Contains reports whether key is in the set.
func (s *OrderedSet[K]) Contains(key K) bool {
	return s.tree.Contains(key)
}

// Len returns the number of keys.
func (s *OrderedSet[K]) Len() int {
	return s.tree.Len()
}

// IndexOf returns the 0-based position of key, or -1 if key is not present.
func (s *OrderedSet[K]) IndexOf(key K) int {
	if !s.tree.Contains(key) {
		return -1
	}
	return s.tree.Rank(key) - 1
}

// At returns the key at 0-based position i.
func (s *OrderedSet[K]) At(i int) (K, error) {
	return at(s.tree, i)
}

// Min returns the smallest key.
func (s *OrderedSet[K]) Min() (K, bool) {
	return s.tree.Min()
}

// Max returns the largest key.
func (s *OrderedSet[K]) Max() (K, bool) {
	return s.tree.Max()
}

// Next returns the smallest key greater than key.
func (s *OrderedSet[K]) Next(key K) (K, bool) {
	return s.tree.Successor(key)
}

// Prev returns the largest key smaller than key.
func (s *OrderedSet[K]) Prev(key K) (K, bool) {
	return s.tree.Predecessor(key)
}

// Tree exposes the underlying tree, e.g. for Check or Tree2Dot.
func (s *OrderedSet[K]) Tree() *rbtree.Tree[K] {
	return s.tree
}
