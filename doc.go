/*
Package collections offers ordered collections with positional access.

Ordered Collections

Sets and multisets in this module keep their keys sorted at all times and
answer order-statistics questions in logarithmic time: which key sits at
position i, at which position would a key be found, what are its neighbours.
They are backed by an augmented red-black tree (package rbtree), where every
node knows the number of elements in its subtree.

The augmentation follows the order-statistic tree of Cormen, Leiserson,
Rivest and Stein (Introduction to Algorithms, chapter 14): each node stores
the size of its subtree, rotations repair it locally, and insertion and
deletion adjust it along the search path, so neither operation loses its
logarithmic running time. Unlike the textbook version, equal keys share a
node and the size counts every occurrence.

_________________________________________________________________________

The tree itself treats two situations as fatal and panics: removing from an
empty tree and selecting a position out of range. The wrappers in this
package turn both into returned errors.

Package fixed offers the same tree for raw, fixed-width byte keys.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package collections

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// CollectionsError is an error type for the collections module
type CollectionsError string

func (e CollectionsError) Error() string {
	return string(e)
}

// ErrEmptyCollection is flagged when removing from an empty collection.
const ErrEmptyCollection = CollectionsError("collection is empty")

// ErrNotFound is flagged when removing a key which is not in the collection.
const ErrNotFound = CollectionsError("key not found")

// ErrIndexOutOfBounds is flagged whenever a position is
// not smaller than the length of the collection.
const ErrIndexOutOfBounds = CollectionsError("index out of bounds")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = CollectionsError("illegal arguments")
