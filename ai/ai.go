// Package ai implements the heuristic spymaster and operative seats. Both
// reason purely over an association index and the board views the match
// engine hands them; neither does any I/O.
package ai

import "github.com/liusenjun/Codenames-AI-game/wordassoc"

// Index is the association lookup both engines score against. The bundled
// wordassoc table and the w2v model adapter both satisfy it.
type Index interface {
	// RelatedWords returns words associated with the given word at or above
	// minStrength, strongest first. Unknown words yield an empty result.
	RelatedWords(word string, minStrength float64) []wordassoc.Relation
	// StrengthBetween returns the association strength between two words, 0
	// if none is recorded.
	StrengthBetween(a, b string) float64
}
