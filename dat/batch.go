package dat

import (
	"fmt"
)

type batchMode uint8

const (
	building batchMode = iota + 1
	inserting
	closed
)

func (m batchMode) String() string {
	switch m {
	case building:
		return "build"
	case inserting:
		return "insert"
	}
	return "closed"
}

// Batch stages a fixed number of words for either bulk construction of a
// new trie or incremental insertion into an existing one.
//
// Usage:
//
//	b, _ := dat.NewBuild(len(words))
//	for i, w := range words {
//		b.SetInput(i, w)
//	}
//	trie, err := b.Build()
//
// A Batch is single-use. It holds references to the input words for the
// duration of one episode and drops them when the episode ends.
type Batch struct {
	mode   batchMode
	inputs [][]uint16
	stage  *staging
}

// NewBuild starts a batch of n words for bulk construction (see Batch.Build).
func NewBuild(n int) (*Batch, error) {
	return newBatch(n, building)
}

// NewInsert starts a batch of n words for insertion into an existing trie
// (see Batch.InsertInto).
func NewInsert(n int) (*Batch, error) {
	return newBatch(n, inserting)
}

func newBatch(n int, mode batchMode) (*Batch, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d words", ErrEmptyBatch, n)
	}
	return &Batch{
		mode:   mode,
		inputs: make([][]uint16, n),
		stage:  newStaging(),
	}, nil
}

// Len returns the number of input slots of the batch.
func (b *Batch) Len() int { return len(b.inputs) }

// SetInput sets input word number index. Words must be non-empty and must not
// contain code unit 0. The batch keeps a reference to word; it must not be
// modified until the batch has been completed.
func (b *Batch) SetInput(index int, word []uint16) error {
	if b.mode == closed {
		return ErrBatchClosed
	}
	if index < 0 || index >= len(b.inputs) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidIndex, index, len(b.inputs))
	}
	if err := validWord(word); err != nil {
		return err
	}
	b.inputs[index] = word
	return nil
}

func validWord(word []uint16) error {
	if len(word) == 0 {
		return ErrEmptyWord
	}
	for i, c := range word {
		if c == 0 {
			return fmt.Errorf("%w at position %d", ErrZeroCodeUnit, i)
		}
	}
	return nil
}

func (b *Batch) ready(mode batchMode) error {
	if b.mode == closed {
		return ErrBatchClosed
	}
	if b.mode != mode {
		return fmt.Errorf("%w: batch started for %s, completed as %s", ErrWrongPhase, b.mode, mode)
	}
	for i, w := range b.inputs {
		if w == nil {
			return fmt.Errorf("%w: index %d", ErrMissingInput, i)
		}
	}
	return nil
}

func (b *Batch) close() {
	b.mode = closed
	b.inputs = nil
	b.stage.reset()
}

// Build constructs a new trie from the words of the batch.
func (b *Batch) Build() (*DAT, error) {
	if err := b.ready(building); err != nil {
		return nil, err
	}
	d := New()
	for i, word := range b.inputs {
		depth, at, extend := d.walk(word)
		for extend {
			assert(!d.hasChildren(at), "build diverged below an already placed node")
			b.stage.collect(word, depth, b.inputs, i)
			b.stage.sort()
			base := d.resolve(b.stage, at)
			d.place(b.stage, base, at)
			depth, at, extend = d.walk(word)
		}
		d.markWord(at)
	}
	b.close()
	stats := d.Stats()
	tracer().Infof("trie built: words=%d used=%d total=%d fill=%.2f",
		stats.Words, stats.UsedSlots, stats.TotalSlots, stats.FillRatio())
	return d, nil
}

// InsertInto inserts the words of the batch into d. Words already present
// leave the trie's matching behavior unchanged.
func (b *Batch) InsertInto(d *DAT) error {
	if d == nil {
		return ErrNilTrie
	}
	if err := b.ready(inserting); err != nil {
		return err
	}
	for i, word := range b.inputs {
		depth, at, extend := d.walk(word)
		for extend {
			b.stage.collect(word, depth, b.inputs, i)
			b.stage.dropExisting(d.children(at))
			var base int32
			if d.canPlaceAt(b.stage, at) {
				base = d.node(at).Base
			} else {
				d.relocate(b.stage, at)
				base = d.resolve(b.stage, at)
			}
			d.place(b.stage, base, at)
			depth, at, extend = d.walk(word)
		}
		d.markWord(at)
	}
	b.close()
	stats := d.Stats()
	tracer().Infof("trie extended: words=%d used=%d total=%d fill=%.2f",
		stats.Words, stats.UsedSlots, stats.TotalSlots, stats.FillRatio())
	return nil
}

// Build is a shortcut for bulk construction of a trie from words.
func Build(words ...[]uint16) (*DAT, error) {
	b, err := NewBuild(len(words))
	if err != nil {
		return nil, err
	}
	for i, w := range words {
		if err = b.SetInput(i, w); err != nil {
			return nil, err
		}
	}
	return b.Build()
}

// Insert is a shortcut for incremental insertion of words into d.
func (d *DAT) Insert(words ...[]uint16) error {
	b, err := NewInsert(len(words))
	if err != nil {
		return err
	}
	for i, w := range words {
		if err = b.SetInput(i, w); err != nil {
			return err
		}
	}
	return b.InsertInto(d)
}

// walk follows word from the root as far as transitions exist. It returns
// the number of code units matched and the node reached. extend is false if
// the whole word was consumed, i.e. only the word end mark is missing.
func (d *DAT) walk(word []uint16) (depth int, at int32, extend bool) {
	at = Root
	for depth < len(word) {
		next, ok := d.Transition(at, word[depth])
		if !ok {
			break
		}
		at = next
		depth++
	}
	if depth == len(word) {
		assert(depth > 0 && at > Root, "empty word consumed")
		return depth, at, false
	}
	return depth, at, true
}
