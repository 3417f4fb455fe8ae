package rbtree

// find returns the node holding a key equal to key, or the sentinel.
func (t *Tree[K]) find(key K) nodeID {
	x := t.root
	for x != sentinel {
		c := t.cfg.Compare(key, t.nodes[x].key)
		if c == 0 {
			return x
		}
		if c < 0 {
			x = t.leftOf(x)
		} else {
			x = t.rightOf(x)
		}
	}
	return x
}

// Contains reports whether the tree holds a key equal to key.
func (t *Tree[K]) Contains(key K) bool {
	if t.IsEmpty() {
		return false
	}
	return t.find(key) != sentinel
}

// Count returns how many times key is stored in the tree. For trees not
// allowing duplicates the result is 0 or 1.
func (t *Tree[K]) Count(key K) int {
	if t.IsEmpty() {
		return 0
	}
	return t.nodes[t.find(key)].count // the sentinel has count 0
}

// Min returns the smallest key. The boolean result is false for an empty tree.
func (t *Tree[K]) Min() (K, bool) {
	var zero K
	if t.IsEmpty() {
		return zero, false
	}
	return t.nodes[t.minimum(t.root)].key, true
}

// Max returns the largest key. The boolean result is false for an empty tree.
func (t *Tree[K]) Max() (K, bool) {
	var zero K
	if t.IsEmpty() {
		return zero, false
	}
	return t.nodes[t.maximum(t.root)].key, true
}

// Successor returns the smallest key strictly greater than key. key need not
// be present in the tree. If there is no such key, Successor returns the zero
// value and false.
func (t *Tree[K]) Successor(key K) (K, bool) {
	if t == nil {
		var zero K
		return zero, false
	}
	succ := sentinel
	for x := t.root; x != sentinel; {
		if t.cfg.Compare(t.nodes[x].key, key) > 0 {
			succ = x
			x = t.leftOf(x)
		} else {
			x = t.rightOf(x)
		}
	}
	return t.nodes[succ].key, succ != sentinel
}

// Predecessor returns the largest key strictly smaller than key. key need not
// be present in the tree. If there is no such key, Predecessor returns the
// zero value and false.
func (t *Tree[K]) Predecessor(key K) (K, bool) {
	if t == nil {
		var zero K
		return zero, false
	}
	pred := sentinel
	for x := t.root; x != sentinel; {
		if t.cfg.Compare(t.nodes[x].key, key) < 0 {
			pred = x
			x = t.rightOf(x)
		} else {
			x = t.leftOf(x)
		}
	}
	return t.nodes[pred].key, pred != sentinel
}

// Rank returns the 1-based position key has (or would have) in the sorted
// sequence of all elements, i.e. 1 plus the number of elements strictly
// smaller than key. Duplicates are counted individually.
func (t *Tree[K]) Rank(key K) int {
	if t == nil {
		return 1
	}
	rank := 1
	for x := t.root; x != sentinel; {
		if t.cfg.Compare(t.nodes[x].key, key) < 0 {
			rank += t.nodes[t.leftOf(x)].size + t.nodes[x].count
			x = t.rightOf(x)
		} else {
			x = t.leftOf(x)
		}
	}
	return rank
}

// Select returns the element at 0-based position i of the sorted sequence of
// all elements, duplicates counted individually. For every valid i,
//
//	Rank(Select(i)) <= i+1
//
// with equality if Select(i) is the first occurrence of its key.
//
// Select panics with ErrIndexOutOfBounds if i is not in [0, Len()).
func (t *Tree[K]) Select(i int) K {
	if i < 0 || i >= t.Len() {
		tracer().Errorf("%v: %d not in [0,%d)", ErrIndexOutOfBounds, i, t.Len())
		panic(ErrIndexOutOfBounds)
	}
	pos := i + 1 // 1-based position still to cover
	x := t.root
	for {
		assert(x != sentinel, "rbtree: select fell off the tree; sizes are corrupt")
		l := t.nodes[t.leftOf(x)].size
		switch {
		case pos <= l:
			x = t.leftOf(x)
		case pos <= l+t.nodes[x].count:
			return t.nodes[x].key
		default:
			pos -= l + t.nodes[x].count
			x = t.rightOf(x)
		}
	}
}
