/*
Package dat implements a mutable double-array trie over 16-bit code units.

A trie is stored as a single growable array of nodes. Every node carries the
classic double-array pair:

	t := Base[s] + c   // child slot for code unit c
	Check[t] == s      // transition is valid only if t belongs to s

Unused slots are kept in a circular free list anchored at slot 0, slot 1 is
the root. Tries may be bulk-built from a batch of words (see NewBuild) and
extended later (see NewInsert). Extending a trie may relocate the children
of an existing node to make room for a new sibling.

Lookup is done with a Cursor, a small DFA driver reporting one of the states
Null, Prefix, Word or WordPrefix after each code unit. Cursor.CheckString
scans a text and redacts every stored word found in it.

Tries serialize to a flat little-endian layout, see DAT.Serialize.

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package dat

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'wordfilter.dat'
func tracer() tracing.Trace {
	return tracing.Select("wordfilter.dat")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
