/*
Package keyfile provides API helpers to load search trees from text files.

Key files are UTF-8 text files holding base-10 integers, separated by white
space or commas. A '#' starts a comment, which extends to the end of the line:

	# sample keys
	1, 7, 4, 23, 8
	9 4 3   # duplicates are fine
	5, 7, 9, 67, 6345, 324

Files are read by a background goroutine, which parses batches of lines and
broadcasts them to the loader. The loader API itself is synchronous.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package keyfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bstree'
func tracer() tracing.Trace {
	return tracing.Select("bstree")
}
