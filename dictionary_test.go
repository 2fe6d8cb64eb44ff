package wordfilter

import (
	"bytes"
	"errors"
	"io"
	"math/rand/v2"
	"reflect"
	"testing"

	"github.com/derekparker/trie"
	"github.com/npillmayer/wordfilter/dat"
)

type failingReader struct {
	words []string
	err   error
}

func (r *failingReader) Next() (string, error) {
	if len(r.words) == 0 {
		return "", r.err
	}
	w := r.words[0]
	r.words = r.words[1:]
	return w, nil
}

func TestRedactExamples(t *testing.T) {
	tests := []struct {
		words    []string
		text     string
		want     string
		replaced bool
	}{
		{[]string{"cat", "catalog"}, "concatalog", "con*******", true},
		{[]string{"bad"}, "a good day", "a good day", false},
		{[]string{"spam"}, "SPAM", "****", true},
		{[]string{"ab", "abc"}, "abcab", "*****", true},
		{[]string{"böse"}, "ein böses Wort", "ein ****s Wort", true},
	}
	for _, tt := range tests {
		dict, err := LoadWordList("examples", tt.words)
		if err != nil {
			t.Fatal(err)
		}
		got, replaced := dict.Redact(tt.text)
		if got != tt.want || replaced != tt.replaced {
			t.Fatalf("redact %q with %v: got (%q, %v), want (%q, %v)",
				tt.text, tt.words, got, replaced, tt.want, tt.replaced)
		}
	}
}

func TestFiller(t *testing.T) {
	dict, err := LoadWordList("filler", []string{"darn"})
	if err != nil {
		t.Fatal(err)
	}
	dict.Filler = '#'
	if got, _ := dict.Redact("oh darn"); got != "oh ####" {
		t.Fatalf("expected custom filler, got %q", got)
	}
	dict.Filler = '😀' // outside the BMP, falls back to default
	if got, _ := dict.Redact("oh darn"); got != "oh ****" {
		t.Fatalf("expected default filler, got %q", got)
	}
}

func TestLoadWordsSkipsUnencodable(t *testing.T) {
	dict, err := LoadWordList("skip", []string{"", "x😀", "ok", "nul\x00"})
	if err != nil {
		t.Fatal(err)
	}
	if words := dict.Words(); !reflect.DeepEqual(words, []string{"ok"}) {
		t.Fatalf("expected only 'ok' to be stored, have %v", words)
	}
	if dict.Identifier != "words: skip" {
		t.Fatalf("unexpected identifier %q", dict.Identifier)
	}
}

func TestEmptyDictionary(t *testing.T) {
	dict, err := LoadWordList("empty", nil)
	if err != nil {
		t.Fatal(err)
	}
	if got, replaced := dict.Redact("anything"); replaced || got != "anything" {
		t.Fatalf("empty dictionary must not redact, got %q", got)
	}
	if err = dict.AddWordList([]string{"thing"}); err != nil {
		t.Fatal(err)
	}
	if got, _ := dict.Redact("anything"); got != "any*****" {
		t.Fatalf("expected any*****, got %q", got)
	}
}

func TestReaderErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	_, err := LoadWords("failing", &failingReader{words: []string{"a"}, err: boom})
	if !errors.Is(err, boom) {
		t.Fatalf("expected reader error, got %v", err)
	}
	dict, _ := LoadWordList("ok", []string{"a"})
	err = dict.AddWords(&failingReader{err: boom})
	if !errors.Is(err, boom) {
		t.Fatalf("expected reader error from AddWords, got %v", err)
	}
}

func TestAddWords(t *testing.T) {
	dict, err := LoadWordList("add", []string{"cat"})
	if err != nil {
		t.Fatal(err)
	}
	if err = dict.AddWordList([]string{"dog", "catalog", "cat", "CAR"}); err != nil {
		t.Fatal(err)
	}
	want := []string{"car", "cat", "catalog", "dog"}
	if words := dict.Words(); !reflect.DeepEqual(words, want) {
		t.Fatalf("words: got %v, want %v", words, want)
	}
	if !dict.Contains("Car") || dict.Contains("ca") {
		t.Fatalf("membership broken after insertion")
	}
	if s := dict.Lookup("ca"); s != dat.Prefix {
		t.Fatalf("ca should be a prefix, is %s", s)
	}
	if s := dict.Lookup("cat"); s != dat.WordPrefix {
		t.Fatalf("cat should be a word and a prefix, is %s", s)
	}
	if s := dict.Lookup("x😀"); s != dat.Null {
		t.Fatalf("unencodable lookup should be NULL, is %s", s)
	}
}

func TestPersistRoundTrip(t *testing.T) {
	dict, err := LoadWordList("persist", []string{"alpha", "beta", "alp"})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	n, err := dict.WriteTo(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if int(n) != buf.Len() {
		t.Fatalf("WriteTo reported %d bytes, wrote %d", n, buf.Len())
	}
	restored, err := ReadDictionary("restored", &buf)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(dict.Words(), restored.Words()) {
		t.Fatalf("words differ after restore: %v vs %v", dict.Words(), restored.Words())
	}
	if got, _ := restored.Redact("alphabet"); got != "*****bet" {
		t.Fatalf("restored dictionary redacts %q", got)
	}
	if _, err = ReadDictionary("broken", bytes.NewReader([]byte{1, 2, 3})); !errors.Is(err, dat.ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestTrieStats(t *testing.T) {
	dict, err := LoadWordList("stats", []string{"ab", "abc"})
	if err != nil {
		t.Fatal(err)
	}
	stats := dict.TrieStats()
	if stats.Words != 2 {
		t.Fatalf("expected 2 words, got %d", stats.Words)
	}
	if stats.UsedSlots <= 0 || stats.TotalSlots <= 0 {
		t.Fatalf("expected positive slot counts, got used=%d total=%d", stats.UsedSlots, stats.TotalSlots)
	}
	if stats.MaxStateID <= 0 {
		t.Fatalf("expected positive maxStateID, got %d", stats.MaxStateID)
	}
	if fill := stats.FillRatio(); fill <= 0 || fill > 1 {
		t.Fatalf("expected fill ratio in (0,1], got %f", fill)
	}
}

// TestAgainstReferenceTrie compares membership and prefix queries with
// a pointer-based trie.
func TestAgainstReferenceTrie(t *testing.T) {
	r := rand.New(rand.NewPCG(11, 13))
	letters := []rune("abcdeäö")
	randomWord := func(maxLen int) string {
		w := make([]rune, 1+r.IntN(maxLen))
		for i := range w {
			w[i] = letters[r.IntN(len(letters))]
		}
		return string(w)
	}
	ref := trie.New()
	var initial, added []string
	for range 150 {
		w := randomWord(6)
		initial = append(initial, w)
		ref.Add(w, nil)
	}
	dict, err := LoadWordList("reference", initial)
	if err != nil {
		t.Fatal(err)
	}
	for range 150 {
		w := randomWord(6)
		added = append(added, w)
		ref.Add(w, nil)
	}
	for i := 0; i < len(added); i += 25 {
		if err = dict.AddWordList(added[i:min(i+25, len(added))]); err != nil {
			t.Fatal(err)
		}
	}
	for range 2000 {
		probe := randomWord(7)
		_, isWord := ref.Find(probe)
		if dict.Contains(probe) != isWord {
			t.Fatalf("membership of %q: dictionary says %v, reference says %v",
				probe, dict.Contains(probe), isWord)
		}
		isPrefix := ref.HasKeysWithPrefix(probe)
		if (dict.Lookup(probe) != dat.Null) != isPrefix {
			t.Fatalf("prefix %q: dictionary says %s, reference says %v",
				probe, dict.Lookup(probe), isPrefix)
		}
	}
}

var _ WordReader = (*sliceReader)(nil)
var _ io.WriterTo = (*Dictionary)(nil)
