package fixed

import (
	"fmt"

	"github.com/npillmayer/collections/rbtree"
)

// Tree is an order-statistics tree over fixed-width byte keys.
type Tree struct {
	width int
	tree  *rbtree.Tree[Key]
}

// New creates an empty tree for keys of width bytes.
func New(width int, allowDuplicates bool, compare Comparator) (*Tree, error) {
	if width < 1 || width > MaxWidth {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}
	cfg := rbtree.Config[Key]{AllowDuplicates: allowDuplicates}
	if compare != nil {
		cfg.Compare = func(a, b Key) int {
			return compare(a.view(), b.view())
		}
	}
	tree, err := rbtree.New(cfg)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("fixed: new tree with key width %d, duplicates=%v", width, allowDuplicates)
	return &Tree{width: width, tree: tree}, nil
}

// Width returns the key width in bytes.
func (t *Tree) Width() int {
	return t.width
}

// Len returns the number of elements, duplicates included.
func (t *Tree) Len() int {
	return t.tree.Len()
}

// IsEmpty reports whether the tree has no elements.
func (t *Tree) IsEmpty() bool {
	return t.tree.IsEmpty()
}

// Check validates the invariants of the underlying tree.
func (t *Tree) Check() error {
	return t.tree.Check()
}

// Destroy releases all nodes. The tree must not be used afterwards.
func (t *Tree) Destroy() {
	t.tree.Clear()
	t.tree = nil
}

func (t *Tree) key(b []byte) (Key, error) {
	if len(b) != t.width {
		return Key{}, fmt.Errorf("%w: key has %d bytes, width is %d", ErrWidthMismatch, len(b), t.width)
	}
	return NewKey(b)
}

func (t *Tree) output(out []byte) error {
	if len(out) < t.width {
		return fmt.Errorf("%w: output has %d bytes, width is %d", ErrWidthMismatch, len(out), t.width)
	}
	return nil
}

// Insert adds a copy of key to the tree.
func (t *Tree) Insert(key []byte) error {
	k, err := t.key(key)
	if err != nil {
		return err
	}
	t.tree.Insert(k)
	return nil
}

// Remove deletes one occurrence of key.
//
// Remove panics with rbtree.ErrEmptyTree if the tree is empty.
func (t *Tree) Remove(key []byte) error {
	k, err := t.key(key)
	if err != nil {
		return err
	}
	t.tree.Remove(k)
	return nil
}

// Contains reports whether key is stored in the tree.
func (t *Tree) Contains(key []byte) (bool, error) {
	k, err := t.key(key)
	if err != nil {
		return false, err
	}
	return t.tree.Contains(k), nil
}

// Count returns how often key is stored in the tree.
func (t *Tree) Count(key []byte) (int, error) {
	k, err := t.key(key)
	if err != nil {
		return 0, err
	}
	return t.tree.Count(k), nil
}

// Min copies the smallest key to out. If the tree is empty, out is left
// untouched and false is returned.
func (t *Tree) Min(out []byte) (bool, error) {
	if err := t.output(out); err != nil {
		return false, err
	}
	k, ok := t.tree.Min()
	if ok {
		copy(out, k.view())
	}
	return ok, nil
}

// Max copies the largest key to out. If the tree is empty, out is left
// untouched and false is returned.
func (t *Tree) Max(out []byte) (bool, error) {
	if err := t.output(out); err != nil {
		return false, err
	}
	k, ok := t.tree.Max()
	if ok {
		copy(out, k.view())
	}
	return ok, nil
}

// Successor copies the smallest key strictly greater than key to out. If
// there is none, out is filled with zero bytes and false is returned.
func (t *Tree) Successor(key, out []byte) (bool, error) {
	return t.neighbour(key, out, t.tree.Successor)
}

// Predecessor copies the largest key strictly smaller than key to out. If
// there is none, out is filled with zero bytes and false is returned.
func (t *Tree) Predecessor(key, out []byte) (bool, error) {
	return t.neighbour(key, out, t.tree.Predecessor)
}

func (t *Tree) neighbour(key, out []byte, query func(Key) (Key, bool)) (bool, error) {
	k, err := t.key(key)
	if err != nil {
		return false, err
	}
	if err = t.output(out); err != nil {
		return false, err
	}
	n, ok := query(k)
	clear(out[:t.width])
	if ok {
		copy(out, n.view())
	}
	return ok, nil
}

// Rank returns the 1-based position of key in the sorted sequence of elements.
func (t *Tree) Rank(key []byte) (int, error) {
	k, err := t.key(key)
	if err != nil {
		return 0, err
	}
	return t.tree.Rank(k), nil
}

// Select copies the element at 0-based position i to out.
//
// Select panics with rbtree.ErrIndexOutOfBounds if i is not in [0, Len()).
func (t *Tree) Select(i int, out []byte) error {
	if err := t.output(out); err != nil {
		return err
	}
	k := t.tree.Select(i)
	copy(out, k.view())
	return nil
}
