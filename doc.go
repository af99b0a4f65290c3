/*
Package bstree implements a balanced binary search tree over ordered keys.

Trees

A tree is created from an unordered collection of keys. Duplicates are
dropped, the remaining keys are sorted and the tree is built by recursively
splitting the sorted sequence at its (lower) midpoint. A freshly built tree
therefore has minimal height for its keys:

	tree := bstree.New(1, 7, 4, 23, 8, 9, 4, 3, 5, 7, 9, 67, 6345, 324)
	tree.IsBalanced() // true

Insertion keeps the search tree ordering but does not re-balance. Clients
decide when a tree has degenerated too much and call Rebalance, which rebuilds
the tree from its in-order key sequence:

	tree.Insert(100)
	tree.Insert(200)
	tree.Insert(300)
	if !tree.IsBalanced() {
		tree.Rebalance()
	}

Keys may be of any type. New accepts every cmp.Ordered type; for other key
types clients supply a comparison function through NewFunc or a Config.

Traversals

Trees support level-order (breadth first), in-order, pre-order and post-order
traversals. Each traversal requires a visitor callback, which will be called
exactly once for every node. Traversing an empty tree is a no-op.

Concurrency

Trees are not safe for concurrent use. Clients have to synchronize access
themselves if a tree is shared between goroutines.

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
package bstree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bstree'
func tracer() tracing.Trace {
	return tracing.Select("bstree")
}

// TreeError is an error type for the bstree module
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrMissingCallback is flagged whenever a traversal is started without
// a visitor function.
const ErrMissingCallback = TreeError("traversal requires a visitor callback")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = TreeError("illegal arguments")

// ErrInvalidConfig signals an invalid tree configuration.
const ErrInvalidConfig = TreeError("invalid tree configuration")

// ErrInvalidTree is flagged by Check if a tree violates the search tree ordering.
const ErrInvalidTree = TreeError("search tree ordering violated")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
