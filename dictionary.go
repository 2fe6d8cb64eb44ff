package wordfilter

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf16"

	"github.com/npillmayer/wordfilter/dat"
)

// WordReader yields dictionary words one-by-one.
// It should return io.EOF when the stream is exhausted.
type WordReader interface {
	Next() (word string, err error)
}

// Dictionary is a loaded word dictionary.
type Dictionary struct {
	trie       *dat.DAT
	fold       *dat.FoldMap
	Identifier string // Identifies the dictionary
	Filler     rune   // replaces every code unit of a match; must be in the BMP
}

func newDictionary(name string, trie *dat.DAT) *Dictionary {
	return &Dictionary{
		trie:       trie,
		fold:       dat.ASCIIFold(),
		Identifier: fmt.Sprintf("words: %s", name),
		Filler:     dat.DefaultFiller,
	}
}

// LoadWords compiles a dictionary from a streaming source.
//
// File format parsing is intentionally outside the base package. Use adapters
// like package wordlist to parse concrete formats and feed this API.
// Words which cannot be encoded (empty, or containing characters outside of
// the BMP) are skipped.
func LoadWords(name string, reader WordReader) (*Dictionary, error) {
	dict := newDictionary(name, nil)
	keys, err := dict.readKeys(reader)
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		dict.trie = dat.New()
		return dict, nil
	}
	if dict.trie, err = dat.Build(keys...); err != nil {
		return nil, err
	}
	dict.traceStats("loaded")
	return dict, nil
}

// LoadWordList compiles a dictionary from an in-memory word list.
func LoadWordList(name string, words []string) (*Dictionary, error) {
	return LoadWords(name, &sliceReader{words: words})
}

// AddWords inserts words from a streaming source into an existing
// dictionary. Words already present are left untouched.
func (dict *Dictionary) AddWords(reader WordReader) error {
	keys, err := dict.readKeys(reader)
	if err != nil || len(keys) == 0 {
		return err
	}
	if err = dict.trie.Insert(keys...); err != nil {
		return err
	}
	dict.traceStats("extended")
	return nil
}

// AddWordList inserts words from an in-memory list.
func (dict *Dictionary) AddWordList(words []string) error {
	return dict.AddWords(&sliceReader{words: words})
}

func (dict *Dictionary) readKeys(reader WordReader) ([][]uint16, error) {
	var keys [][]uint16
	for {
		word, err := reader.Next()
		if err == io.EOF {
			return keys, nil
		}
		if err != nil {
			return nil, err
		}
		key, ok := dict.EncodeKey(word)
		if !ok {
			tracer().Errorf("skipping word %q: cannot encode", word)
			continue // simply skip invalid words
		}
		keys = append(keys, key)
	}
}

// EncodeKey converts s to the code units used for lookup, folding ASCII
// upper case letters. It returns false for strings which cannot be stored:
// empty strings and strings with NUL or characters beyond the BMP.
func (dict *Dictionary) EncodeKey(s string) ([]uint16, bool) {
	key := make([]uint16, 0, len(s))
	for _, r := range s {
		if r == 0 || r > 0xFFFF {
			return nil, false
		}
		key = append(key, dict.fold.Fold(uint16(r)))
	}
	return key, len(key) > 0
}

// Contains reports whether word is stored in the dictionary.
func (dict *Dictionary) Contains(word string) bool {
	key, ok := dict.EncodeKey(word)
	return ok && dict.trie.Contains(key)
}

// Lookup returns the match state of s as a whole: Null if s is no
// prefix of any word, Prefix if it is a proper prefix only, Word or
// WordPrefix if it is a stored word.
func (dict *Dictionary) Lookup(s string) dat.State {
	key, ok := dict.EncodeKey(s)
	if !ok {
		return dat.Null
	}
	return dict.trie.Lookup(key)
}

// Redact replaces every occurrence of a dictionary word in text by a run
// of Filler characters. It returns the redacted text and whether anything
// has been replaced.
//
// Example:
//
//	{ "cat", "catalog" }: "concatalog" => "con*******".
func (dict *Dictionary) Redact(text string) (string, bool) {
	if dict == nil || dict.trie == nil {
		return text, false
	}
	units := utf16.Encode([]rune(text))
	filler := uint16(dat.DefaultFiller)
	if dict.Filler > 0 && dict.Filler <= 0xFFFF {
		filler = uint16(dict.Filler)
	}
	if !dict.trie.Cursor().Redact(units, dict.fold, filler) {
		return text, false
	}
	return string(utf16.Decode(units)), true
}

// Words returns all dictionary words in ascending code-unit order.
func (dict *Dictionary) Words() []string {
	var words []string
	dict.trie.Walk(func(w []uint16) bool {
		words = append(words, string(utf16.Decode(w)))
		return true
	})
	return words
}

// TrieStats reports density metrics for the underlying trie.
func (dict *Dictionary) TrieStats() dat.Stats {
	if dict == nil || dict.trie == nil {
		return dat.Stats{}
	}
	return dict.trie.Stats()
}

func (dict *Dictionary) traceStats(what string) {
	stats := dict.TrieStats()
	tracer().Infof("%s %s: words=%d used=%d total=%d fill=%.2f maxStateID=%d",
		dict.Identifier, what, stats.Words, stats.UsedSlots, stats.TotalSlots,
		stats.FillRatio(), stats.MaxStateID)
}

// WriteTo writes the dictionary's trie in binary form to w.
func (dict *Dictionary) WriteTo(w io.Writer) (int64, error) {
	data, err := dict.trie.MarshalBinary()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

// ReadDictionary restores a dictionary written by Dictionary.WriteTo.
func ReadDictionary(name string, r io.Reader) (*Dictionary, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, err
	}
	trie, err := dat.Deserialize(buf.Bytes())
	if err != nil {
		return nil, err
	}
	dict := newDictionary(name, trie)
	dict.traceStats("restored")
	return dict, nil
}

type sliceReader struct {
	words []string
	index int
}

func (r *sliceReader) Next() (string, error) {
	if r.index >= len(r.words) {
		return "", io.EOF
	}
	w := r.words[r.index]
	r.index++
	return w, nil
}
