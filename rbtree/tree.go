package rbtree

import (
	"cmp"
)

// Tree is an augmented red-black tree over keys of type K.
//
// The zero value is not usable; create trees with New or NewOrdered.
type Tree[K any] struct {
	cfg   Config[K]
	nodes []node[K] // arena; slot 0 is the sentinel
	free  []nodeID  // released arena slots
	root  nodeID
	count int // logical number of elements, duplicates included
}

// New creates an empty tree with validated configuration.
//
// No node storage besides the sentinel is allocated until the first insertion.
func New[K any](cfg Config[K]) (*Tree[K], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[K]{
		cfg:   cfg,
		nodes: newArena[K](1),
		root:  sentinel,
	}, nil
}

// NewOrdered creates an empty tree for keys with a natural order.
func NewOrdered[K cmp.Ordered](allowDuplicates bool) *Tree[K] {
	t, err := New(OrderedConfig[K](allowDuplicates))
	assert(err == nil, "rbtree: ordered configuration rejected")
	return t
}

// Config returns a copy of the tree configuration.
func (t *Tree[K]) Config() Config[K] {
	return t.cfg
}

// AllowsDuplicates reports whether the tree counts repeated insertions of a key.
func (t *Tree[K]) AllowsDuplicates() bool {
	return t.cfg.AllowDuplicates
}

// Len returns the number of elements in the tree, duplicates included.
func (t *Tree[K]) Len() int {
	if t == nil {
		return 0
	}
	return t.count
}

// Distinct returns the number of pairwise different keys in the tree.
func (t *Tree[K]) Distinct() int {
	if t == nil {
		return 0
	}
	return len(t.nodes) - 1 - len(t.free)
}

// IsEmpty reports whether the tree has no elements.
func (t *Tree[K]) IsEmpty() bool {
	return t == nil || t.count == 0
}

// Height returns the number of nodes on the longest path from the root to a
// leaf. An empty tree has height 0.
func (t *Tree[K]) Height() int {
	if t == nil {
		return 0
	}
	return t.height(t.root)
}

func (t *Tree[K]) height(id nodeID) int {
	if id == sentinel {
		return 0
	}
	return 1 + max(t.height(t.leftOf(id)), t.height(t.rightOf(id)))
}

// BlackHeight returns the number of BLACK nodes on every path from the root
// down to a leaf, counting the root but not the sentinel.
func (t *Tree[K]) BlackHeight() int {
	if t == nil {
		return 0
	}
	bh := 0
	for id := t.root; id != sentinel; id = t.leftOf(id) {
		if t.colorOf(id) == black {
			bh++
		}
	}
	return bh
}

// Clear removes all elements from the tree. Nodes are released in post-order;
// afterwards the tree is empty and may be re-used.
func (t *Tree[K]) Clear() {
	if t == nil {
		return
	}
	n := t.Distinct()
	t.release(t.root)
	tracer().Debugf("rbtree: cleared %d nodes", n)
	t.nodes = newArena[K](1)
	t.free = nil
	t.root = sentinel
	t.count = 0
}

func (t *Tree[K]) release(id nodeID) {
	if id == sentinel {
		return
	}
	t.release(t.leftOf(id))
	t.release(t.rightOf(id))
	t.nodes[id] = node[K]{}
}

// --- Insertion -------------------------------------------------------------

// Insert adds key to the tree.
//
// If an equal key is present, Insert increments its count for trees allowing
// duplicates and does nothing otherwise. At most one node is allocated.
func (t *Tree[K]) Insert(key K) {
	parent, x := sentinel, t.root
	dir := left
	for x != sentinel {
		c := t.cfg.Compare(key, t.nodes[x].key)
		if c == 0 {
			if !t.cfg.AllowDuplicates {
				return
			}
			t.nodes[x].count++
			t.resize(x, 1)
			t.count++
			return
		}
		parent = x
		dir = left
		if c > 0 {
			dir = right
		}
		x = t.nodes[x].children[dir]
	}
	z := t.allocNode(key, parent)
	if parent == sentinel {
		t.root = z
	} else {
		t.nodes[parent].children[dir] = z
		t.resize(parent, 1)
	}
	t.insertFixup(z)
	t.count++
}

// --- Deletion --------------------------------------------------------------

// Remove deletes one occurrence of key from the tree. Removing a key which is
// not present is a no-op.
//
// Remove panics with ErrEmptyTree if the tree is empty.
func (t *Tree[K]) Remove(key K) {
	if t.IsEmpty() {
		tracer().Errorf("%v", ErrEmptyTree)
		panic(ErrEmptyTree)
	}
	z := t.find(key)
	if z == sentinel {
		return
	}
	t.resize(z, -1)
	t.count--
	if t.nodes[z].count > 1 {
		t.nodes[z].count--
		return
	}
	t.removeNode(z)
	t.releaseNode(z)
}

// removeNode unlinks z from the tree. The sizes of z and all of its ancestors
// have already been adjusted by the caller.
func (t *Tree[K]) removeNode(z nodeID) {
	y := z
	yColor := t.colorOf(y)
	var x nodeID
	switch {
	case t.leftOf(z) == sentinel:
		x = t.rightOf(z)
		t.transplant(z, x)
	case t.rightOf(z) == sentinel:
		x = t.leftOf(z)
		t.transplant(z, x)
	default:
		y = t.minimum(t.rightOf(z))
		yColor = t.colorOf(y)
		x = t.rightOf(y)
		if t.parentOf(y) == z {
			t.nodes[x].parent = y
		} else {
			// y leaves the subtrees between its old position and z
			cnt := t.nodes[y].count
			for d := y; d != z; d = t.parentOf(d) {
				t.nodes[d].size -= cnt
			}
			t.transplant(y, x)
			t.nodes[y].children[right] = t.rightOf(z)
			t.nodes[t.rightOf(y)].parent = y
		}
		t.transplant(z, y)
		t.nodes[y].children[left] = t.leftOf(z)
		t.nodes[t.leftOf(y)].parent = y
		t.nodes[y].color = t.colorOf(z)
		t.updateSize(y)
	}
	if yColor == black {
		t.deleteFixup(x)
	}
}
