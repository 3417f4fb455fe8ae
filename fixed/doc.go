/*
Package fixed adapts package rbtree to keys which are raw byte buffers of a
fixed, tree-wide width.

Clients create a tree with a key width, a duplicate policy and a comparator
over byte slices. All keys handed to the tree must have exactly the declared
width. Query results are copied into caller-supplied output buffers; where no
result exists (successor of the largest key, etc.) the output is filled with
the all-zero sentinel key.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package fixed

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'collections'
func tracer() tracing.Trace {
	return tracing.Select("collections")
}
