package ai

import (
	"errors"
	"fmt"
	"sort"

	"github.com/liusenjun/Codenames-AI-game/codenames"
)

const (
	// DefaultThreshold is the association strength at which a board word
	// counts as covered by a clue.
	DefaultThreshold = 0.6
	// DefaultDangerThreshold is the weaker strength at which an opposing or
	// assassin word counts as endangered by a clue.
	DefaultDangerThreshold = 0.35
	// DefaultPenaltyWeight is how much one endangered word costs relative to
	// one covered word.
	DefaultPenaltyWeight = 2.0
)

// reserveWords back the last-resort fallback: if the index has no usable
// relation for any remaining team word, the first of these that is legal
// against the board is given as a count-1 clue.
var reserveWords = []string{
	"zeppelin", "quasar", "tornado", "walrus", "xylophone", "origami", "marzipan", "bagel",
}

// Spymaster generates clues for a team from the full-information board
// view.
type Spymaster struct {
	Index           Index
	Threshold       float64
	DangerThreshold float64
	PenaltyWeight   float64
}

// NewSpymaster returns a spymaster with the default tuning.
func NewSpymaster(ix Index) *Spymaster {
	return &Spymaster{
		Index:           ix,
		Threshold:       DefaultThreshold,
		DangerThreshold: DefaultDangerThreshold,
		PenaltyWeight:   DefaultPenaltyWeight,
	}
}

type scoredClue struct {
	word     string
	coverage int
	danger   int
	score    float64
}

// GiveClue searches the index for the clue that covers the most of the
// team's unrevealed words while endangering as few opposing or assassin
// words as possible. It always returns a clue that is legal against the
// board; asking on behalf of a team with no words left is a programming
// error.
func (s *Spymaster) GiveClue(view []codenames.SecretCell, team codenames.Team) (*codenames.Clue, error) {
	boardWords := make([]string, len(view))
	var own, danger []string
	for i, cell := range view {
		boardWords[i] = cell.Codename
		if cell.Revealed {
			continue
		}
		switch {
		case cell.Agent == team.Agent():
			own = append(own, cell.Codename)
		case cell.Agent == codenames.Assassin || cell.Agent == team.Other().Agent():
			danger = append(danger, cell.Codename)
		}
	}
	if len(own) == 0 {
		return nil, errors.New("no unrevealed words left to give a clue for")
	}

	word, count := s.bestClue(boardWords, own, danger)
	if word == "" {
		word, count = s.fallbackClue(boardWords, own)
	}

	// The scoring pass and the legality filter are separate, so re-check
	// before handing the clue to the engine.
	if err := codenames.ValidateClueWord(word, boardWords); err != nil {
		return nil, fmt.Errorf("spymaster produced an illegal clue: %w", err)
	}
	return &codenames.Clue{Word: word, Count: count, Team: team}, nil
}

// bestClue runs the main scored search. It returns "" when no candidate
// has a positive score.
func (s *Spymaster) bestClue(boardWords, own, danger []string) (string, int) {
	seen := make(map[string]struct{})
	var cands []string
	for _, w := range own {
		for _, rel := range s.Index.RelatedWords(w, s.DangerThreshold) {
			if _, ok := seen[rel.Word]; ok {
				continue
			}
			seen[rel.Word] = struct{}{}
			cands = append(cands, rel.Word)
		}
	}

	var scored []scoredClue
	for _, cand := range cands {
		if codenames.ValidateClueWord(cand, boardWords) != nil {
			continue
		}
		sc := scoredClue{word: cand}
		for _, w := range own {
			if s.Index.StrengthBetween(cand, w) >= s.Threshold {
				sc.coverage++
			}
		}
		if sc.coverage == 0 {
			continue
		}
		for _, w := range danger {
			if s.Index.StrengthBetween(cand, w) >= s.DangerThreshold {
				sc.danger++
			}
		}
		sc.score = float64(sc.coverage) - s.PenaltyWeight*float64(sc.danger)
		scored = append(scored, sc)
	}

	sort.Slice(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		if scored[i].coverage != scored[j].coverage {
			return scored[i].coverage > scored[j].coverage
		}
		return scored[i].word < scored[j].word
	})

	if len(scored) == 0 || scored[0].score <= 0 {
		return "", 0
	}
	return scored[0].word, scored[0].coverage
}

// fallbackClue targets the single strongest legal relation to any one
// remaining team word, and failing even that, falls back to the reserve
// list. Either way the caller gets a legal count-1 clue.
func (s *Spymaster) fallbackClue(boardWords, own []string) (string, int) {
	sorted := append([]string(nil), own...)
	sort.Strings(sorted)

	best := ""
	bestStrength := 0.0
	for _, w := range sorted {
		for _, rel := range s.Index.RelatedWords(w, 0) {
			if rel.Strength <= bestStrength {
				continue
			}
			if codenames.ValidateClueWord(rel.Word, boardWords) != nil {
				continue
			}
			best, bestStrength = rel.Word, rel.Strength
		}
	}
	if best != "" {
		return best, 1
	}

	for _, w := range reserveWords {
		if codenames.ValidateClueWord(w, boardWords) == nil {
			return w, 1
		}
	}
	return "", 0
}
