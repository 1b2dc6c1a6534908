// Binary benchmark-operative runs the AI operative against a set of
// hand-built boards and reports how often its first guess is a sensible
// one.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/liusenjun/Codenames-AI-game/ai"
	"github.com/liusenjun/Codenames-AI-game/codenames"
	"github.com/liusenjun/Codenames-AI-game/w2v"
	"github.com/liusenjun/Codenames-AI-game/wordassoc"
)

func main() {
	var (
		assocFile = flag.String("assoc_file", "", "A CSV file of word associations. If empty, a small built-in set is used.")
		modelFile = flag.String("model_file", "", "A binary-formatted word2vec pre-trained model file. Takes precedence over -assoc_file.")
		verbose   = flag.Bool("verbose", false, "Print every guess, not just the tally.")
	)
	flag.Parse()

	ix, err := loadIndex(*modelFile, *assocFile)
	if err != nil {
		log.Fatalf("Failed to load word associations: %v", err)
	}

	op := ai.NewOperative(ix)

	var res Result
	for i, s := range scenarios {
		view, agents := operativeView(s)
		g, err := op.Guess(view, &s.Clue)
		if err != nil {
			log.Fatalf("Scenario %d: operative failed to guess: %v", i, err)
		}

		outcome := classify(s, view, agents, g)
		tally(&res, outcome)
		if *verbose {
			word := "(pass)"
			if !g.Pass {
				word = view[g.Position].Codename
			}
			fmt.Printf("Scenario %d: clue %q, guessed %s: %s\n", i, s.Clue.String(), word, outcome)
		}
	}

	fmt.Printf("Correct: %d\n", res.Correct)
	fmt.Printf("Incorrect, other team: %d\n", res.IncorrectTeam)
	fmt.Printf("Incorrect, assassin: %d\n", res.IncorrectAssassin)
	fmt.Printf("Incorrect, bystander: %d\n", res.IncorrectBystander)
	fmt.Printf("Skipped: %d\n", res.Skipped)
	fmt.Printf("Score: %.2f\n", Score(res))
}

func classify(s Scenario, view []codenames.PublicCell, agents map[string]codenames.Agent, g codenames.Guess) string {
	if g.Pass {
		return "skipped"
	}
	word := view[g.Position].Codename
	for _, t := range s.Target {
		if t == word {
			return "correct"
		}
	}
	switch agents[word] {
	case codenames.Assassin:
		return "assassin"
	case codenames.Bystander:
		return "bystander"
	default:
		return "wrong team"
	}
}

func tally(r *Result, outcome string) {
	switch outcome {
	case "correct":
		r.Correct++
	case "skipped":
		r.Skipped++
	case "assassin":
		r.IncorrectAssassin++
	case "bystander":
		r.IncorrectBystander++
	default:
		r.IncorrectTeam++
	}
}

func loadIndex(modelFile, assocFile string) (ai.Index, error) {
	switch {
	case modelFile != "":
		return w2v.New(modelFile)
	case assocFile != "":
		return wordassoc.Load(assocFile)
	default:
		return wordassoc.Default(), nil
	}
}
