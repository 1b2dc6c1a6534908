package main

import "github.com/liusenjun/Codenames-AI-game/codenames"

// Scenario describes a certain setting of a board. Only fill in the
// minimum fields needed for a particular scenario; every listed word is
// placed on the board unrevealed.
type Scenario struct {
	Red       []string
	Blue      []string
	Assassin  []string
	Bystander []string
	Clue      codenames.Clue
	// Target is the set of acceptable first guesses.
	Target []string
}

type Result struct {
	Correct            int
	IncorrectTeam      int
	IncorrectAssassin  int
	IncorrectBystander int
	Skipped            int
}

var scenarios = []Scenario{
	{
		Red:    []string{"lion", "book"},
		Blue:   []string{"table"},
		Clue:   codenames.Clue{Word: "animal", Count: 1},
		Target: []string{"lion"},
	},
	{
		Red:    []string{"maple", "pistol"},
		Blue:   []string{"fence"},
		Clue:   codenames.Clue{Word: "food", Count: 1},
		Target: []string{"maple"},
	},
	{
		Red:       []string{"king", "crown"},
		Bystander: []string{"fence", "cloud"},
		Clue:      codenames.Clue{Word: "royal", Count: 2},
		Target:    []string{"king", "crown"},
	},
	{
		Red:      []string{"beach", "fish"},
		Assassin: []string{"pool"},
		Clue:     codenames.Clue{Word: "water", Count: 2},
		Target:   []string{"beach", "fish"},
	},
}

// Score calculates a measure of how "good" a result is. Higher is better;
// 1.0 is a perfect score.
func Score(r Result) float64 {
	total := float64(r.Correct + r.IncorrectTeam + r.IncorrectAssassin + r.IncorrectBystander + r.Skipped)
	points := float64(r.Correct) - float64(r.IncorrectTeam) - 2.0*float64(r.IncorrectAssassin) - 0.5*float64(r.IncorrectBystander)
	return points / total
}

// operativeView builds the public view an operative would see for a
// scenario: all words unrevealed, affiliations hidden.
func operativeView(s Scenario) ([]codenames.PublicCell, map[string]codenames.Agent) {
	agents := make(map[string]codenames.Agent)
	var view []codenames.PublicCell
	add := func(words []string, ag codenames.Agent) {
		for _, w := range words {
			agents[w] = ag
			view = append(view, codenames.PublicCell{Position: len(view), Codename: w})
		}
	}
	add(s.Red, codenames.RedAgent)
	add(s.Blue, codenames.BlueAgent)
	add(s.Assassin, codenames.Assassin)
	add(s.Bystander, codenames.Bystander)
	return view, agents
}
