package rbtree

type color uint8

const (
	red color = iota
	black
)

func (c color) String() string {
	if c == red {
		return "red"
	}
	return "black"
}

// Child directions. Mirrored cases of rotation and fixup code are written
// once and parameterized by a direction d and its opposite 1-d.
const (
	left  = 0
	right = 1
)

// nodeID addresses a node in the arena of a tree.
type nodeID int32

// sentinel is the arena slot shared by all leaves and by the parent of the root.
// It is always BLACK and has size 0 and count 0.
const sentinel nodeID = 0

type node[K any] struct {
	key      K
	children [2]nodeID
	parent   nodeID
	count    int // number of equal keys collapsed into this node
	size     int // sum of count over the subtree rooted here
	color    color
}

// newArena creates node storage holding only the sentinel.
func newArena[K any](capacity int) []node[K] {
	nodes := make([]node[K], 1, max(capacity, 1))
	nodes[sentinel] = node[K]{
		children: [2]nodeID{sentinel, sentinel},
		parent:   sentinel,
		color:    black,
	}
	return nodes
}

// allocNode places a fresh RED leaf with count 1 into the arena, re-using a
// released slot if one is available.
func (t *Tree[K]) allocNode(key K, parent nodeID) nodeID {
	n := node[K]{
		key:      key,
		children: [2]nodeID{sentinel, sentinel},
		parent:   parent,
		count:    1,
		size:     1,
		color:    red,
	}
	if k := len(t.free); k > 0 {
		id := t.free[k-1]
		t.free = t.free[:k-1]
		t.nodes[id] = n
		return id
	}
	t.nodes = append(t.nodes, n)
	return nodeID(len(t.nodes) - 1)
}

// releaseNode returns a slot to the free list. The slot is zeroed so that the
// key does not stay reachable for the garbage collector.
func (t *Tree[K]) releaseNode(id nodeID) {
	assert(id != sentinel, "rbtree: attempt to release the sentinel")
	t.nodes[id] = node[K]{}
	t.free = append(t.free, id)
}

func (t *Tree[K]) leftOf(id nodeID) nodeID {
	return t.nodes[id].children[left]
}

func (t *Tree[K]) rightOf(id nodeID) nodeID {
	return t.nodes[id].children[right]
}

func (t *Tree[K]) parentOf(id nodeID) nodeID {
	return t.nodes[id].parent
}

func (t *Tree[K]) colorOf(id nodeID) color {
	return t.nodes[id].color
}

// side returns the direction under which id hangs from its parent.
// Must not be called for the root.
func (t *Tree[K]) side(id nodeID) int {
	if t.nodes[t.nodes[id].parent].children[left] == id {
		return left
	}
	return right
}

// updateSize recomputes the size of a node from its children.
func (t *Tree[K]) updateSize(id nodeID) {
	n := &t.nodes[id]
	n.size = t.nodes[n.children[left]].size + t.nodes[n.children[right]].size + n.count
}

// resize adds delta to the size of id and of all its ancestors.
func (t *Tree[K]) resize(id nodeID, delta int) {
	for ; id != sentinel; id = t.nodes[id].parent {
		t.nodes[id].size += delta
	}
}

func (t *Tree[K]) minimum(id nodeID) nodeID {
	for t.nodes[id].children[left] != sentinel {
		id = t.nodes[id].children[left]
	}
	return id
}

func (t *Tree[K]) maximum(id nodeID) nodeID {
	for t.nodes[id].children[right] != sentinel {
		id = t.nodes[id].children[right]
	}
	return id
}
