package rbtree

import "fmt"

// Check validates structural tree invariants:
//
//   - keys are strictly increasing in-order (equal keys share one node),
//   - the root and the sentinel are BLACK, no RED node has a RED child,
//   - all paths from a node down to the sentinel carry the same number of
//     BLACK nodes,
//   - for every node, size == left.size + right.size + count,
//   - counts are >= 1, and == 1 if duplicates are not allowed,
//   - Len() equals the size of the root,
//   - parent links mirror child links and every arena slot is either
//     reachable or on the free list.
//
// This checker is intentionally strict and meant to be used in tests.
func (t *Tree[K]) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidConfig)
	}
	s := t.nodes[sentinel]
	if s.color != black || s.size != 0 || s.count != 0 {
		return fmt.Errorf("%w: sentinel modified (color=%s size=%d count=%d)",
			ErrCorrupted, s.color, s.size, s.count)
	}
	if t.root == sentinel {
		if t.count != 0 {
			return fmt.Errorf("%w: empty tree reports count=%d", ErrCorrupted, t.count)
		}
		if t.Distinct() != 0 {
			return fmt.Errorf("%w: empty tree holds %d unreleased nodes", ErrCorrupted, t.Distinct())
		}
		return nil
	}
	if t.colorOf(t.root) != black {
		return fmt.Errorf("%w: root is red", ErrCorrupted)
	}
	if t.parentOf(t.root) != sentinel {
		return fmt.Errorf("%w: root has a parent", ErrCorrupted)
	}
	c := checker[K]{tree: t}
	if _, err := c.checkNode(t.root); err != nil {
		return err
	}
	if size := t.nodes[t.root].size; size != t.count {
		return fmt.Errorf("%w: count mismatch (root size %d != count %d)", ErrCorrupted, size, t.count)
	}
	if c.total != t.count {
		return fmt.Errorf("%w: count mismatch (sum of counts %d != count %d)", ErrCorrupted, c.total, t.count)
	}
	if c.visited != t.Distinct() {
		return fmt.Errorf("%w: %d nodes reachable, %d allocated", ErrCorrupted, c.visited, t.Distinct())
	}
	return nil
}

type checker[K any] struct {
	tree    *Tree[K]
	prev    nodeID // in-order predecessor of the node currently checked
	visited int
	total   int
}

// checkNode validates the subtree at id in-order and returns its black-height.
func (c *checker[K]) checkNode(id nodeID) (bh int, err error) {
	if id == sentinel {
		return 0, nil
	}
	t := c.tree
	n := t.nodes[id]
	for _, ch := range n.children {
		if ch != sentinel && t.parentOf(ch) != id {
			return 0, fmt.Errorf("%w: broken parent link below node %d", ErrCorrupted, id)
		}
	}
	if n.color == red {
		for _, ch := range n.children {
			if t.colorOf(ch) == red {
				return 0, fmt.Errorf("%w: red node %d has a red child", ErrCorrupted, id)
			}
		}
	}
	lbh, err := c.checkNode(n.children[left])
	if err != nil {
		return 0, err
	}
	if c.prev != sentinel && t.cfg.Compare(t.nodes[c.prev].key, n.key) >= 0 {
		return 0, fmt.Errorf("%w: keys out of order at node %d", ErrCorrupted, id)
	}
	c.prev = id
	c.visited++
	c.total += n.count
	if n.count < 1 {
		return 0, fmt.Errorf("%w: node %d has count %d", ErrCorrupted, id, n.count)
	}
	if n.count > 1 && !t.cfg.AllowDuplicates {
		return 0, fmt.Errorf("%w: node %d has count %d in a set", ErrCorrupted, id, n.count)
	}
	rbh, err := c.checkNode(n.children[right])
	if err != nil {
		return 0, err
	}
	if lbh != rbh {
		return 0, fmt.Errorf("%w: black-height differs below node %d (%d != %d)",
			ErrCorrupted, id, lbh, rbh)
	}
	want := t.nodes[n.children[left]].size + t.nodes[n.children[right]].size + n.count
	if n.size != want {
		return 0, fmt.Errorf("%w: size of node %d is %d, expected %d", ErrCorrupted, id, n.size, want)
	}
	if n.color == black {
		lbh++
	}
	return lbh, nil
}
