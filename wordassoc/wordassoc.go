// Package wordassoc provides the word association index the decision
// engines score against: a read-only mapping from a word to its related
// words with association strengths. An index is never mutated after
// construction, so one instance can back any number of concurrent matches.
package wordassoc

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/liusenjun/Codenames-AI-game/codenames"
)

// Relation is one edge of the index: a related word and how strongly it's
// associated.
type Relation struct {
	Word     string
	Strength float64
}

// Index is an in-memory association table. Lookups are symmetric: a stored
// (a, b, s) pair is visible from both a and b, and if a resource file
// records both directions the stronger one wins.
type Index struct {
	rel map[string]map[string]float64
}

// New returns an empty index. Mostly useful as a base for Add during
// construction; match code should treat the result as read-only.
func New() *Index {
	return &Index{rel: make(map[string]map[string]float64)}
}

// Add records an association between two words. Strengths below zero are
// clamped to zero. Add is not safe for use once the index is shared.
func (ix *Index) Add(a, b string, strength float64) {
	a, b = codenames.NormalizeWord(a), codenames.NormalizeWord(b)
	if a == "" || b == "" || a == b {
		return
	}
	if strength < 0 {
		strength = 0
	}
	ix.addDirected(a, b, strength)
	ix.addDirected(b, a, strength)
}

func (ix *Index) addDirected(from, to string, strength float64) {
	m, ok := ix.rel[from]
	if !ok {
		m = make(map[string]float64)
		ix.rel[from] = m
	}
	if strength > m[to] {
		m[to] = strength
	}
}

// RelatedWords returns every word associated with the given word at or
// above minStrength, strongest first, ties in lexical order. An unknown
// word has no computable associations and yields an empty result, not an
// error.
func (ix *Index) RelatedWords(word string, minStrength float64) []Relation {
	var out []Relation
	for w, s := range ix.rel[codenames.NormalizeWord(word)] {
		if s >= minStrength {
			out = append(out, Relation{Word: w, Strength: s})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Strength != out[j].Strength {
			return out[i].Strength > out[j].Strength
		}
		return out[i].Word < out[j].Word
	})
	return out
}

// StrengthBetween returns the recorded association strength between two
// words, or 0 if no relation is recorded. The measure is symmetric.
func (ix *Index) StrengthBetween(a, b string) float64 {
	return ix.rel[codenames.NormalizeWord(a)][codenames.NormalizeWord(b)]
}

// Len returns the number of words the index has relations for.
func (ix *Index) Len() int {
	return len(ix.rel)
}

// Load reads an association resource file: one "word,related,strength"
// triple per line, blank lines and #-comments skipped.
func Load(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open association file %q: %v", path, err)
	}
	defer f.Close()

	log.Printf("Reading association index from %q...", path)
	ix := New()
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		txt := strings.TrimSpace(sc.Text())
		if txt == "" || strings.HasPrefix(txt, "#") {
			continue
		}
		ps := strings.Split(txt, ",")
		if len(ps) != 3 {
			return nil, fmt.Errorf("%s:%d: want 'word,related,strength', got %q", path, line, txt)
		}
		s, err := strconv.ParseFloat(strings.TrimSpace(ps[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: bad strength %q: %v", path, line, ps[2], err)
		}
		ix.Add(ps[0], ps[1], s)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read association file: %v", err)
	}
	log.Printf("Read %d words from association index", ix.Len())

	return ix, nil
}
