package ai

import (
	"sort"

	"github.com/liusenjun/Codenames-AI-game/codenames"
)

// Operative guesses against a clue using only public board information.
type Operative struct {
	Index Index
}

// NewOperative returns an operative backed by the given index.
func NewOperative(ix Index) *Operative {
	return &Operative{Index: ix}
}

// ScoredGuess is one unrevealed position with its association strength to
// the clue word.
type ScoredGuess struct {
	Position int
	Codename string
	Score    float64
}

// RankGuesses scores every unrevealed position against the clue word,
// strongest first, ties broken by board-position order. Revealed cells
// never appear in the result.
func (o *Operative) RankGuesses(view []codenames.PublicCell, clue *codenames.Clue) []ScoredGuess {
	var out []ScoredGuess
	for _, cell := range view {
		if cell.Revealed {
			continue
		}
		out = append(out, ScoredGuess{
			Position: cell.Position,
			Codename: cell.Codename,
			Score:    o.Index.StrengthBetween(clue.Word, cell.Codename),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Position < out[j].Position
	})
	return out
}

// Guess picks the top-ranked remaining candidate, or passes when nothing
// on the board relates to the clue at all.
func (o *Operative) Guess(view []codenames.PublicCell, clue *codenames.Clue) (codenames.Guess, error) {
	ranked := o.RankGuesses(view, clue)
	if len(ranked) == 0 || ranked[0].Score <= 0 {
		return codenames.Guess{Pass: true}, nil
	}
	return codenames.Guess{Position: ranked[0].Position}, nil
}
