package dat

// State is the result of one matching step.
type State uint8

const (
	Null       State = iota // no transition
	Prefix                  // transition to a node which is not a word end
	Word                    // transition to a word end without children
	WordPrefix              // transition to a word end which has children
)

func (s State) String() string {
	switch s {
	case Prefix:
		return "PREFIX"
	case Word:
		return "WORD"
	case WordPrefix:
		return "WORD_PREFIX"
	}
	return "NULL"
}

// IsWord reports whether s denotes the end of a stored word.
func (s State) IsWord() bool { return s == Word || s == WordPrefix }

// DefaultFiller is the code unit Cursor.CheckString writes over matches.
const DefaultFiller = '*'

// Cursor walks a trie one code unit at a time.
//
// Cursors are cheap and independent of each other; a trie may be scanned by
// any number of cursors as long as it is not modified at the same time.
type Cursor struct {
	d     *DAT
	state int32
}

// Cursor returns a new cursor positioned at the root.
func (d *DAT) Cursor() *Cursor {
	return &Cursor{d: d, state: Root}
}

// Clear resets the cursor to the root.
func (c *Cursor) Clear() {
	c.state = Root
}

// Node returns the index of the node the cursor is positioned at.
func (c *Cursor) Node() int32 { return c.state }

// Step advances the cursor by code unit cu. If there is no transition, the
// cursor stays where it is and Null is returned.
func (c *Cursor) Step(cu uint16) State {
	assert(c.state > 0, "cursor not positioned")
	next, ok := c.d.Transition(c.state, cu)
	if !ok {
		return Null
	}
	c.state = next
	n := c.d.node(next)
	switch {
	case n.Terminal && n.Son == 0:
		return Word
	case n.Terminal:
		return WordPrefix
	}
	return Prefix
}

// CheckString scans text for stored words and overwrites every match with
// DefaultFiller. Upper case ASCII letters are folded to lower case before
// lookup. It returns true if anything has been replaced.
func (c *Cursor) CheckString(text []uint16) bool {
	return c.Redact(text, asciiFold, DefaultFiller)
}

// Redact scans text for stored words and overwrites every match with filler.
// Code units are mapped through fold before lookup; fold may be nil.
//
// Every start offset of text is tried in turn. From a start offset the cursor
// is advanced as long as transitions exist. A WordPrefix state redacts the
// span matched so far and continues, looking for a longer match. A Word
// state redacts the span and continues the outer scan right after it.
// Redact returns true if anything has been replaced.
func (c *Cursor) Redact(text []uint16, fold *FoldMap, filler uint16) bool {
	replaced := false
	for start := 0; start < len(text); start++ {
		c.Clear()
		for i := start; i < len(text); i++ {
			state := c.Step(fold.Fold(text[i]))
			if state == Null {
				break
			}
			if state.IsWord() {
				fill(text[start:i+1], filler)
				replaced = true
			}
			if state == Word {
				start = i
				break
			}
		}
	}
	return replaced
}

func fill(span []uint16, filler uint16) {
	for i := range span {
		span[i] = filler
	}
}

// Lookup returns the state after matching all of word from the root.
// An empty word yields Null.
func (d *DAT) Lookup(word []uint16) State {
	if len(word) == 0 {
		return Null
	}
	c := d.Cursor()
	state := Null
	for _, cu := range word {
		if state = c.Step(cu); state == Null {
			return Null
		}
	}
	return state
}

// Contains reports whether word is stored in d.
func (d *DAT) Contains(word []uint16) bool {
	return d.Lookup(word).IsWord()
}
