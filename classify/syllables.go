package classify

import (
	"strings"

	"github.com/ashpaper-run/ashpaper/dict"
)

// diphthongs is the fixed set of two-letter vowel clusters that count as
// a single syllable under the heuristic fallback.
var diphthongs = map[string]bool{
	"ai": true, "au": true, "ay": true, "ea": true, "ee": true,
	"ei": true, "ey": true, "oa": true, "oe": true, "oi": true,
	"oo": true, "ou": true, "oy": true, "ua": true, "ue": true, "ui": true,
}

func isVowelLetter(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// vowelClusters splits w into maximal runs of vowel letters, treating
// every maximal run of non-vowel characters as a separator.
func vowelClusters(w string) []string {
	var clusters []string
	start := -1
	for i := 0; i < len(w); i++ {
		if isVowelLetter(w[i]) {
			if start < 0 {
				start = i
			}
		} else if start >= 0 {
			clusters = append(clusters, w[start:i])
			start = -1
		}
	}
	if start >= 0 {
		clusters = append(clusters, w[start:])
	}
	return clusters
}

// approximateSyllables is the deterministic fallback heuristic used when
// a word has no pronunciation-dictionary entry.
func approximateSyllables(w string) int {
	total := 0
	for _, cluster := range vowelClusters(w) {
		if len(cluster) == 0 {
			continue
		}
		if len(cluster) == 2 && diphthongs[cluster] {
			total++
			continue
		}
		n := len(cluster)
		if n > 2 {
			n = 2
		}
		total += n
	}
	return total
}

// Analyzer binds the syllable counter, rhyme predicate, and alliteration
// predicate to a pronunciation dictionary. The zero value is not usable;
// construct one with NewAnalyzer or use the package-level functions,
// which lazily bind to dict.Default().
type Analyzer struct {
	dict *dict.Dictionary
}

// NewAnalyzer returns an Analyzer backed by d. d may be nil, in which
// case every word is treated as unknown to the dictionary and syllable
// counting always falls back to the heuristic.
func NewAnalyzer(d *dict.Dictionary) *Analyzer {
	return &Analyzer{dict: d}
}

// SyllablesOfWord implements spec §4.1: lowercase, dictionary lookup
// (max syllable count across pronunciations), else the heuristic.
func (a *Analyzer) SyllablesOfWord(w string) int {
	lower := strings.ToLower(w)
	if a.dict != nil {
		if prons, ok := a.dict.Lookup(lower); ok {
			best := 0
			for _, p := range prons {
				if n := p.SyllableCount(); n > best {
					best = n
				}
			}
			return best
		}
	}
	return approximateSyllables(lower)
}

// CountSyllables sums SyllablesOfWord over the tokens of line, splitting
// on the literal space character and discarding empty tokens.
func (a *Analyzer) CountSyllables(line string) int {
	total := 0
	for _, tok := range strings.Split(line, " ") {
		if tok == "" {
			continue
		}
		total += a.SyllablesOfWord(tok)
	}
	return total
}

// Rhymes reports whether a and b rhyme, per the bound dictionary. False
// if either word is unknown.
func (a *Analyzer) Rhymes(x, y string) bool {
	if a.dict == nil {
		return false
	}
	return a.dict.Rhymes(strings.ToLower(x), strings.ToLower(y))
}

// HasAlliteration reports whether any two adjacent space-separated
// tokens of line share the same first character, case-insensitively.
func (a *Analyzer) HasAlliteration(line string) bool {
	tokens := spaceTokens(strings.ToLower(line))
	for i := 1; i < len(tokens); i++ {
		if tokens[i-1][0] == tokens[i][0] {
			return true
		}
	}
	return false
}

// CheckEndRhyme reports whether cur's last word rhymes with prevLine's
// last word. False if prevLine is absent (hasPrev is false) or either
// line has no tokens.
func (a *Analyzer) CheckEndRhyme(prevLine string, hasPrev bool, curLine string) bool {
	if !hasPrev {
		return false
	}
	prevTokens := spaceTokens(prevLine)
	curTokens := spaceTokens(curLine)
	if len(prevTokens) == 0 || len(curTokens) == 0 {
		return false
	}
	return a.Rhymes(prevTokens[len(prevTokens)-1], curTokens[len(curTokens)-1])
}

func spaceTokens(line string) []string {
	fields := strings.Split(line, " ")
	out := fields[:0]
	for _, f := range fields {
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

// defaultAnalyzer lazily binds to dict.Default() the first time any
// package-level function needs it.
var defaultAnalyzer = func() (*Analyzer, error) {
	d, err := dict.Default()
	if err != nil {
		return nil, err
	}
	return NewAnalyzer(d), nil
}

// CountSyllables exposes the syllable counter as a standalone entry
// point, independent of Parse, using the process-wide default
// dictionary. It panics if the embedded default dictionary fails to
// load, which indicates a build-time defect rather than a runtime
// condition callers can recover from.
func CountSyllables(text string) int {
	a, err := defaultAnalyzer()
	if err != nil {
		panic(err)
	}
	return a.CountSyllables(text)
}
