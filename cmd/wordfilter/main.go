// Command wordfilter redacts dictionary words from text.
//
// Usage:
//
//	wordfilter -words bad.txt [-add more.txt] [-o bad.dat] [-list] [-stats] < text
//	wordfilter -dict bad.dat < text
//
// A dictionary is compiled from a word list (-words) or restored from a
// compiled dictionary (-dict). Further word lists may be added with -add.
// With -o the compiled dictionary is written to a file. Unless -o, -list or
// -stats is given, every line of standard input is written to standard
// output with dictionary words redacted.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/npillmayer/wordfilter"
	"github.com/npillmayer/wordfilter/wordlist"
)

func main() {
	words := flag.String("words", "", "word list to compile")
	compiled := flag.String("dict", "", "compiled dictionary to load")
	add := flag.String("add", "", "word list to add to the dictionary")
	out := flag.String("o", "", "write compiled dictionary to `file`")
	list := flag.Bool("list", false, "print all dictionary words")
	stats := flag.Bool("stats", false, "print trie statistics")
	filler := flag.String("filler", "*", "replacement character")
	flag.Parse()

	dict, err := load(*words, *compiled)
	if err != nil {
		fail(err)
	}
	if *add != "" {
		if err = addWords(dict, *add); err != nil {
			fail(err)
		}
	}
	if r := []rune(*filler); len(r) == 1 {
		dict.Filler = r[0]
	}
	interactive := true
	if *out != "" {
		interactive = false
		if err = save(dict, *out); err != nil {
			fail(err)
		}
	}
	if *list {
		interactive = false
		for _, w := range dict.Words() {
			fmt.Println(w)
		}
	}
	if *stats {
		interactive = false
		s := dict.TrieStats()
		fmt.Printf("%s\n", dict.Identifier)
		fmt.Printf("  words:    %d\n", s.Words)
		fmt.Printf("  slots:    %d used, %d free, %d total, %d allocated\n",
			s.UsedSlots, s.FreeSlots, s.TotalSlots, s.Capacity)
		fmt.Printf("  fill:     %.1f%%\n", s.FillRatio()*100)
	}
	if interactive {
		if err = redact(dict); err != nil {
			fail(err)
		}
	}
}

func load(words, compiled string) (*wordfilter.Dictionary, error) {
	switch {
	case words != "" && compiled != "":
		return nil, errors.New("use either -words or -dict, not both")
	case words != "":
		f, err := os.Open(words)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return wordlist.LoadWords(filepath.Base(words), f)
	case compiled != "":
		f, err := os.Open(compiled)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return wordfilter.ReadDictionary(filepath.Base(compiled), f)
	}
	return nil, errors.New("no dictionary given, use -words or -dict")
}

func addWords(dict *wordfilter.Dictionary, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return wordlist.AddWords(dict, f)
}

func save(dict *wordfilter.Dictionary, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err = dict.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func redact(dict *wordfilter.Dictionary) error {
	scanner := bufio.NewScanner(os.Stdin)
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	for scanner.Scan() {
		line, _ := dict.Redact(scanner.Text())
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "wordfilter: %v\n", err)
	os.Exit(1)
}
