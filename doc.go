/*
Package wordfilter finds and redacts dictionary words in text.

A Dictionary is loaded from a streaming, format-agnostic WordReader (see
package wordlist for a line-oriented file format) and compiled into a mutable
double-array trie (package dat). Dictionaries may be extended after loading,
persisted to a flat binary form and restored from it.

Matching is case-insensitive for ASCII letters. Words and text are handled
as UTF-16 code units; words containing characters outside the Basic
Multilingual Plane are skipped when loading.

	dict, _ := wordfilter.LoadWordList("demo", []string{"cat", "catalog"})
	s, found := dict.Redact("concatalog")   // "con*******", true

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package wordfilter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'wordfilter'
func tracer() tracing.Trace {
	return tracing.Select("wordfilter")
}
