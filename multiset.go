package collections

import (
	"cmp"

	"github.com/npillmayer/collections/rbtree"
)

// Multiset is a sorted bag of keys. Equal keys are counted, not stored
// repeatedly. Positional access counts every occurrence.
//
// A Multiset is not safe for concurrent use.
type Multiset[K any] struct {
	tree *rbtree.Tree[K]
}

// NewMultiset creates an empty multiset ordered by compare.
func NewMultiset[K any](compare func(a, b K) int) (*Multiset[K], error) {
	tree, err := rbtree.New(rbtree.Config[K]{Compare: compare, AllowDuplicates: true})
	if err != nil {
		return nil, ErrIllegalArguments
	}
	return &Multiset[K]{tree: tree}, nil
}

// NewOrderedMultiset creates an empty multiset for keys with a natural order.
func NewOrderedMultiset[K cmp.Ordered]() *Multiset[K] {
	return &Multiset[K]{tree: rbtree.NewOrdered[K](true)}
}

// Add inserts one occurrence of key.
func (m *Multiset[K]) Add(key K) {
	m.tree.Insert(key)
}

// Remove deletes one occurrence of key.
func (m *Multiset[K]) Remove(key K) error {
	return remove(m.tree, key)
}

// Count returns the number of occurrences of key.
func (m *Multiset[K]) Count(key K) int {
	return m.tree.Count(key)
}

// Contains reports whether key occurs at least once.
func (m *Multiset[K]) Contains(key K) bool {
	return m.tree.Contains(key)
}

// Len returns the number of elements, every occurrence counted.
func (m *Multiset[K]) Len() int {
	return m.tree.Len()
}

// Distinct returns the number of different keys.
func (m *Multiset[K]) Distinct() int {
	return m.tree.Distinct()
}

// Rank returns the 1-based position of the first occurrence key has or would
// have in sorted order.
func (m *Multiset[K]) Rank(key K) int {
	return m.tree.Rank(key)
}

// At returns the element at 0-based position i in sorted order.
func (m *Multiset[K]) At(i int) (K, error) {
	return at(m.tree, i)
}

// Min returns the smallest key.
func (m *Multiset[K]) Min() (K, bool) {
	return m.tree.Min()
}

// Max returns the largest key.
func (m *Multiset[K]) Max() (K, bool) {
	return m.tree.Max()
}

// Next returns the smallest key greater than key.
func (m *Multiset[K]) Next(key K) (K, bool) {
	return m.tree.Successor(key)
}

// Prev returns the largest key smaller than key.
func (m *Multiset[K]) Prev(key K) (K, bool) {
	return m.tree.Predecessor(key)
}

// Clear removes all elements.
func (m *Multiset[K]) Clear() {
	m.tree.Clear()
}

// remove wraps the panicking Tree.Remove into an error result.
func remove[K any](tree *rbtree.Tree[K], key K) error {
	if tree.IsEmpty() {
		return ErrEmptyCollection
	}
	if !tree.Contains(key) {
		return ErrNotFound
	}
	tree.Remove(key)
	return nil
}

func at[K any](tree *rbtree.Tree[K], i int) (K, error) {
	if i < 0 || i >= tree.Len() {
		var zero K
		T().Debugf("collections: position %d not in [0,%d)", i, tree.Len())
		return zero, ErrIndexOutOfBounds
	}
	return tree.Select(i), nil
}
