package codenames

import (
	"strings"
	"unicode"
)

// ValidateClue checks a clue against the legality rules: the word must be a
// single non-empty token, the count non-negative, and the word must not
// equal, contain, or be contained by any word currently on the board. The
// word is expected to be normalized already.
func ValidateClue(c *Clue, b *Board) error {
	if c.Count < 0 {
		return &ClueLegalityError{Word: c.Word, Reason: "count must be non-negative"}
	}
	return ValidateClueWord(c.Word, b.Codenames())
}

// ValidateClueWord checks just the word rules against a list of board
// words. It's split out so the clue generator can re-validate candidates
// without a *Board in hand.
func ValidateClueWord(word string, boardWords []string) error {
	if word == "" {
		return &ClueLegalityError{Word: word, Reason: "empty clue word"}
	}
	if strings.ContainsFunc(word, unicode.IsSpace) {
		return &ClueLegalityError{Word: word, Reason: "clue must be a single word"}
	}
	for _, bw := range boardWords {
		if word == bw {
			return &ClueLegalityError{Word: word, Reason: "clue is a board word"}
		}
		if strings.Contains(bw, word) {
			return &ClueLegalityError{Word: word, Reason: "clue is contained in board word " + bw}
		}
		if strings.Contains(word, bw) {
			return &ClueLegalityError{Word: word, Reason: "clue contains board word " + bw}
		}
	}
	return nil
}
