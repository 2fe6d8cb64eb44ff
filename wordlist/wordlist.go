/*
Package wordlist reads plain-text word lists for package wordfilter.

A word list holds one word or phrase per line. Leading and trailing white
space is removed. Empty lines and lines starting with '%' or '#' are
ignored, except for an identifying comment of the form

	% message: Swear words, en-US

which names the list. A line consisting of a single backslash ends the
list; everything after it is ignored.
*/
package wordlist

import (
	"bufio"
	"io"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/wordfilter"
)

// tracer writes to trace with key 'wordfilter'
func tracer() tracing.Trace {
	return tracing.Select("wordfilter")
}

// Reader streams words from a word list.
type Reader struct {
	scanner    *bufio.Scanner
	identifier string
	line       int
	done       bool
}

// LoadWords parses a word list and returns a ready-to-use dictionary. If the
// list carries an identifying message, it is used as the dictionary's
// identifier.
func LoadWords(name string, reader io.Reader) (*wordfilter.Dictionary, error) {
	r := NewReader(reader)
	dict, err := wordfilter.LoadWords(name, r)
	if err != nil {
		return nil, err
	}
	if r.Identifier() != "" {
		dict.Identifier = r.Identifier()
	}
	return dict, nil
}

// AddWords parses a word list and inserts its words into dict.
func AddWords(dict *wordfilter.Dictionary, reader io.Reader) error {
	return dict.AddWords(NewReader(reader))
}

// NewReader creates a Reader for word list data.
func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Identifier returns the list's identifying message, if one has been read.
func (r *Reader) Identifier() string {
	return r.identifier
}

// Next returns the next word of the list.
// It returns io.EOF when exhausted.
func (r *Reader) Next() (string, error) {
	if r.done {
		return "", io.EOF
	}
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSpace(r.scanner.Text())
		if msg, ok := strings.CutPrefix(line, "% message:"); ok {
			r.identifier = strings.TrimSpace(msg)
			continue
		}
		if line == "" || strings.HasPrefix(line, "%") || strings.HasPrefix(line, "#") {
			continue
		}
		if line == `\` {
			tracer().Debugf("word list ends at line %d", r.line)
			r.done = true
			return "", io.EOF
		}
		return line, nil
	}
	r.done = true
	if err := r.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
