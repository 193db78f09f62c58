// Package dict implements the pronunciation dictionary collaborator that
// classify and vm treat as an opaque lookup service: given a lowercase
// word it returns zero or more pronunciations, each an ordered phoneme
// sequence with stress markers, from which syllable counts and rhyme keys
// derive.
package dict

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
)

// Phoneme is a single symbol plus its stress marker. Stress is -1 for
// phonemes that carry no stress digit (consonants); vowels carry 0
// (no stress), 1 (primary stress), or 2 (secondary stress).
type Phoneme struct {
	Symbol string
	Stress int
}

// IsSyllabic reports whether this phoneme is one of the dictionary's vowel
// classes, i.e. whether it carries a stress marker at all.
func (p Phoneme) IsSyllabic() bool {
	return p.Stress >= 0
}

// Pronunciation is an ordered phoneme sequence for one reading of a word.
type Pronunciation []Phoneme

// SyllableCount counts the syllabic phonemes in the pronunciation.
func (p Pronunciation) SyllableCount() int {
	n := 0
	for _, ph := range p {
		if ph.IsSyllabic() {
			n++
		}
	}
	return n
}

// RhymeTail returns the phoneme sequence from the last primary-stressed
// syllable onward. If no phoneme carries primary stress, it falls back to
// the last syllabic phoneme onward; if the pronunciation has no syllabic
// phoneme at all, it returns the whole pronunciation.
func (p Pronunciation) RhymeTail() Pronunciation {
	idx := -1
	for i, ph := range p {
		if ph.Stress == 1 {
			idx = i
		}
	}
	if idx < 0 {
		for i, ph := range p {
			if ph.IsSyllabic() {
				idx = i
			}
		}
	}
	if idx < 0 {
		return p
	}
	return p[idx:]
}

func (p Pronunciation) rhymesWith(other Pronunciation) bool {
	a, b := p.RhymeTail(), other.RhymeTail()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Symbol != b[i].Symbol {
			return false
		}
	}
	return true
}

// Dictionary is an immutable, concurrency-safe pronouncing dictionary.
type Dictionary struct {
	entries map[string][]Pronunciation
}

// Lookup returns the pronunciations recorded for word (already expected to
// be lowercase; Lookup lowercases defensively) and whether any were found.
func (d *Dictionary) Lookup(word string) ([]Pronunciation, bool) {
	prons, ok := d.entries[strings.ToLower(word)]
	return prons, ok
}

// Rhymes reports whether a and b rhyme: both must be known words, and at
// least one pair of their pronunciations' rhyme tails must match exactly.
func (d *Dictionary) Rhymes(a, b string) bool {
	pa, ok := d.Lookup(a)
	if !ok {
		return false
	}
	pb, ok := d.Lookup(b)
	if !ok {
		return false
	}
	for _, x := range pa {
		for _, y := range pb {
			if x.rhymesWith(y) {
				return true
			}
		}
	}
	return false
}

// Parse reads a CMU-pronouncing-dictionary-formatted resource: one entry
// per line, "WORD  PH1 PH2 ...", phonemes carrying stress digits on
// vowels. Lines beginning with ";;;" are comments and skipped. A word may
// carry a parenthesized variant suffix ("WORD(1)") for an alternate
// pronunciation; both forms accumulate under the bare word key.
func Parse(r io.Reader) (*Dictionary, error) {
	d := &Dictionary{entries: make(map[string][]Pronunciation)}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" || strings.HasPrefix(line, ";;;") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("dict: malformed entry at line %d: %q", lineNo, line)
		}
		word := strings.ToLower(stripVariant(fields[0]))
		pron := make(Pronunciation, 0, len(fields)-1)
		for _, tok := range fields[1:] {
			pron = append(pron, parsePhoneme(tok))
		}
		d.entries[word] = append(d.entries[word], pron)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dict: reading dictionary: %w", err)
	}
	return d, nil
}

func stripVariant(word string) string {
	if i := strings.IndexByte(word, '('); i >= 0 {
		return word[:i]
	}
	return word
}

func parsePhoneme(tok string) Phoneme {
	n := len(tok)
	if n > 0 {
		if digit, err := strconv.Atoi(tok[n-1:]); err == nil {
			return Phoneme{Symbol: tok[:n-1], Stress: digit}
		}
	}
	return Phoneme{Symbol: tok, Stress: -1}
}

//go:embed data/default.dict
var embeddedDefault embed.FS

var (
	defaultOnce sync.Once
	defaultDict *Dictionary
	defaultErr  error
)

// Default returns the process-wide pronunciation dictionary, parsed from
// the embedded default resource on first use and cached thereafter. All
// callers share the same immutable *Dictionary; concurrent reads are safe.
func Default() (*Dictionary, error) {
	defaultOnce.Do(func() {
		f, err := embeddedDefault.Open("data/default.dict")
		if err != nil {
			defaultErr = fmt.Errorf("dict: opening embedded default: %w", err)
			return
		}
		defer f.Close()
		defaultDict, defaultErr = Parse(f)
	})
	return defaultDict, defaultErr
}
