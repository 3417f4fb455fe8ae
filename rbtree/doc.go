/*
Package rbtree provides an augmented red-black tree with multiset semantics and
order-statistics queries.

Every node carries, besides its key, a duplicate count and the size of its
subtree (the sum of counts below and including the node). The size
augmentation lets the tree answer Rank and Select in O(log n), and the count
field collapses repeated insertions of an equal key into a single node when
the tree is configured to allow duplicates.

Nodes live in an arena addressed by index. Slot 0 is reserved for the
sentinel: a permanently BLACK node with size 0 and count 0 which stands in for
every missing child and for the parent of the root. Rotation and fixup code
may therefore read color and size of any child without checking for absence.

Current status:
  - insertion and deletion with classic red-black fixups,
  - size augmentation maintained through rotations and transplants,
  - duplicate counting (configurable per tree),
  - min/max, successor/predecessor (for keys present or not),
  - rank/select,
  - strict invariant checker (`Check`) and Graphviz output (`Tree2Dot`).

Trees are not safe for concurrent use. Clients sharing a tree between
goroutines have to synchronize access externally.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package rbtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'collections'
func tracer() tracing.Trace {
	return tracing.Select("collections")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
