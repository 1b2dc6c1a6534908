// Package dict loads an optional dictionary used by frontends to reject
// made-up clue words from human spymasters before they reach the engine.
// The engine itself only enforces the board-overlap rules.
package dict

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/liusenjun/Codenames-AI-game/codenames"
)

type Dictionary struct {
	words map[string]struct{}
}

// New reads a newline-separated word file. If the file doesn't exist, the
// dictionary is empty and every word is considered valid.
func New(file string) (*Dictionary, error) {
	d := &Dictionary{words: make(map[string]struct{})}

	f, err := os.Open(file)
	if os.IsNotExist(err) {
		log.Println("Dictionary doesn't exist, will allow all clue words.")
		return d, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary file %q: %v", file, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		d.words[codenames.NormalizeWord(sc.Text())] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dictionary: %v", err)
	}
	log.Printf("Read %d dictionary words", len(d.words))

	return d, nil
}

// Valid reports whether the given word may be used as a clue. An empty
// dictionary considers all words valid.
func (d *Dictionary) Valid(word string) bool {
	if len(d.words) == 0 {
		return true
	}
	_, valid := d.words[codenames.NormalizeWord(word)]
	return valid
}
