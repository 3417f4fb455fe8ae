package rbtree

// rotate turns the child of x opposite to direction `toward` into the parent
// of x. x moves down in direction `toward`:
//
//	       |                                |
//	      [y]     rotate(x, left)          [x]
//	     /   \    <----------------       /   \
//	   [x]    c                          a    [y]
//	  /   \       ---------------->          /   \
//	 a     b      rotate(y, right)          b     c
//
// Colors and counts are left untouched. Sizes are restored locally: y takes
// over the size of the subtree x was rooting, x is recomputed from its new
// children.
func (t *Tree[K]) rotate(x nodeID, toward int) {
	away := 1 - toward
	y := t.nodes[x].children[away]
	assert(y != sentinel, "rbtree: rotation without a child to lift")
	b := t.nodes[y].children[toward]
	t.nodes[x].children[away] = b
	if b != sentinel {
		t.nodes[b].parent = x
	}
	p := t.nodes[x].parent
	t.nodes[y].parent = p
	if p == sentinel {
		t.root = y
	} else {
		t.nodes[p].children[t.side(x)] = y
	}
	t.nodes[y].children[toward] = x
	t.nodes[x].parent = y
	t.nodes[y].size = t.nodes[x].size
	t.updateSize(x)
}

// transplant replaces the subtree rooted at u with the subtree rooted at v.
// v may be the sentinel, in which case the sentinel's parent link records
// u's former parent for a subsequent delete fixup.
func (t *Tree[K]) transplant(u, v nodeID) {
	p := t.nodes[u].parent
	if p == sentinel {
		t.root = v
	} else {
		t.nodes[p].children[t.side(u)] = v
	}
	t.nodes[v].parent = p
}

// insertFixup restores the coloring after z has been attached as a RED leaf.
//
// With p = z.parent, g = p.parent and u = the uncle of z:
//   - case 1, u is RED: push the blackness of g down to p and u and continue at g;
//   - case 2, u is BLACK and z an inner grandchild: rotate z into p's place,
//     which yields case 3 with roles of z and p swapped;
//   - case 3, u is BLACK and z an outer grandchild: recolor and rotate g away
//     from z's side. p is BLACK afterwards and the loop ends.
func (t *Tree[K]) insertFixup(z nodeID) {
	for t.colorOf(t.parentOf(z)) == red {
		p := t.parentOf(z)
		g := t.parentOf(p)
		d := t.side(p)
		u := t.nodes[g].children[1-d]
		if t.colorOf(u) == red {
			t.nodes[p].color = black
			t.nodes[u].color = black
			t.nodes[g].color = red
			z = g
			continue
		}
		if z == t.nodes[p].children[1-d] {
			z = p
			t.rotate(z, d)
			p = t.parentOf(z)
		}
		t.nodes[p].color = black
		t.nodes[g].color = red
		t.rotate(g, 1-d)
	}
	t.nodes[t.root].color = black
}

// deleteFixup restores the black-height after a BLACK node has been spliced
// out and x has taken its place. x may be the sentinel.
//
// With p = x.parent, w = sibling of x, "near" the child of w on x's side and
// "far" the other one:
//   - case 1, w is RED: rotate p towards x, giving x a BLACK sibling;
//   - case 2, both children of w are BLACK: make w RED and move the extra
//     black up to p;
//   - case 3, far child BLACK, near child RED: rotate w away from x, giving
//     case 4;
//   - case 4, far child RED: recolor and rotate p towards x. Done.
func (t *Tree[K]) deleteFixup(x nodeID) {
	for x != t.root && t.colorOf(x) == black {
		p := t.parentOf(x)
		d := left
		if t.nodes[p].children[left] != x {
			d = right
		}
		w := t.nodes[p].children[1-d]
		if t.colorOf(w) == red { // case 1
			t.nodes[w].color = black
			t.nodes[p].color = red
			t.rotate(p, d)
			w = t.nodes[p].children[1-d]
		}
		near, far := t.nodes[w].children[d], t.nodes[w].children[1-d]
		if t.colorOf(near) == black && t.colorOf(far) == black { // case 2
			t.nodes[w].color = red
			x = p
			continue
		}
		if t.colorOf(far) == black { // case 3
			t.nodes[near].color = black
			t.nodes[w].color = red
			t.rotate(w, 1-d)
			w = t.nodes[p].children[1-d]
		}
		// case 4
		t.nodes[w].color = t.colorOf(p)
		t.nodes[p].color = black
		t.nodes[t.nodes[w].children[1-d]].color = black
		t.rotate(p, d)
		x = t.root
	}
	t.nodes[x].color = black
}
