/*
Package formatter renders search trees for output on a console.

Trees are printed sideways, with the root in the leftmost column and the
right subtree above the left one. Reading the output bottom-up yields the keys
in ascending order:

	      ╭─7
	  ╭─6
	      ╰─5
	4
	      ╭─3
	  ╰─2
	      ╰─1

Keys are formatted with fmt's %v verb. Display widths of key labels are
measured in fixed-width positions (‘en’s) by package uax11, respecting East
Asian wide characters, so that columns line up on a terminal. Note that uax11
measures a digit as two ens in a Latin context, while letters measure one.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.

*/
package formatter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bstree'
func tracer() tracing.Trace {
	return tracing.Select("bstree")
}
