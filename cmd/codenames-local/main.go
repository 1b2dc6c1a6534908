// Binary codenames-local plays a full match in the terminal: AI vs AI, or
// with the user holding one seat pair. It drives the match engine one
// transition at a time, re-prompting on any rejected action.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/liusenjun/Codenames-AI-game/ai"
	"github.com/liusenjun/Codenames-AI-game/boardgen"
	"github.com/liusenjun/Codenames-AI-game/codenames"
	"github.com/liusenjun/Codenames-AI-game/dict"
	"github.com/liusenjun/Codenames-AI-game/game"
	ioseat "github.com/liusenjun/Codenames-AI-game/io"
	"github.com/liusenjun/Codenames-AI-game/w2v"
	"github.com/liusenjun/Codenames-AI-game/wordassoc"
)

var teamMap = map[string]codenames.Team{
	"red":  codenames.RedTeam,
	"blue": codenames.BlueTeam,
}

func main() {
	var (
		mode      = flag.String("mode", "watch", "One of 'watch' (AI vs AI), 'operative' (you guess), or 'spymaster' (you give clues).")
		team      = flag.String("team", "red", "Team to play on in 'operative'/'spymaster' mode.")
		starter   = flag.String("starter", "red", "Which team starts the match.")
		seed      = flag.Int64("seed", 0, "Board seed, 0 means time-based.")
		assocFile = flag.String("assoc_file", "", "Optional 'word,related,strength' association file. Defaults to the bundled table.")
		modelFile = flag.String("model_file", "", "Optional binary word2vec model to score with instead of the association table.")
		dictFile  = flag.String("dict_file", "", "Optional newline-separated dictionary for validating your clue words.")
	)
	flag.Parse()

	playerTeam, ok := teamMap[*team]
	if !ok {
		log.Fatalf("invalid team %q, 'red' and 'blue' are the only valid teams", *team)
	}
	startingTeam, ok := teamMap[*starter]
	if !ok {
		log.Fatalf("invalid starter %q, 'red' and 'blue' are the only valid teams", *starter)
	}

	ix, err := loadIndex(*assocFile, *modelFile)
	if err != nil {
		log.Fatalf("Failed to load association index: %v", err)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	b, err := boardgen.New(codenames.DefaultWords, startingTeam, rand.New(rand.NewSource(*seed)))
	if err != nil {
		log.Fatalf("Failed to generate board: %v", err)
	}

	aiSM, aiOP := ai.NewSpymaster(ix), ai.NewOperative(ix)
	cfg := &game.Config{
		RedSpymaster:  aiSM,
		BlueSpymaster: aiSM,
		RedOperative:  aiOP,
		BlueOperative: aiOP,
	}

	humanClues, humanGuesses := false, false
	switch *mode {
	case "watch":
	case "spymaster":
		humanClues = true
	case "operative":
		humanGuesses = true
	default:
		log.Fatalf("invalid mode %q", *mode)
	}

	m, err := game.New(b, startingTeam, cfg)
	if err != nil {
		log.Fatalf("Failed to start match: %v", err)
	}

	var d *dict.Dictionary
	if *dictFile != "" {
		if d, err = dict.New(*dictFile); err != nil {
			log.Fatalf("Failed to load dictionary: %v", err)
		}
	}

	runner := &localMatch{
		m:            m,
		playerTeam:   playerTeam,
		humanClues:   humanClues,
		humanGuesses: humanGuesses,
		dict:         d,
		sm:           &ioseat.Spymaster{In: os.Stdin, Out: os.Stdout},
		op:           &ioseat.Operative{In: os.Stdin, Out: os.Stdout, Team: playerTeam},
	}
	if err := runner.run(); err != nil {
		log.Fatalf("Match failed: %v", err)
	}
}

func loadIndex(assocFile, modelFile string) (ai.Index, error) {
	switch {
	case modelFile != "":
		return w2v.New(modelFile)
	case assocFile != "":
		return wordassoc.Load(assocFile)
	default:
		return wordassoc.Default(), nil
	}
}

type localMatch struct {
	m            *game.Match
	playerTeam   codenames.Team
	humanClues   bool
	humanGuesses bool
	dict         *dict.Dictionary

	sm *ioseat.Spymaster
	op *ioseat.Operative
}

func (l *localMatch) run() error {
	for {
		st := l.m.State()
		if st.Result != nil {
			ioseat.PrintSecretBoard(os.Stdout, l.m.SecretBoardView())
			fmt.Printf("*** %s team wins (%s) ***\n", st.Result.Winner, st.Result.Reason)
			return nil
		}

		switch st.Phase {
		case codenames.CluePhase:
			if err := l.cluePhase(st); err != nil {
				return err
			}
		case codenames.GuessPhase:
			if err := l.guessPhase(st); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unexpected phase %q", st.Phase)
		}
	}
}

func (l *localMatch) cluePhase(st *codenames.MatchState) error {
	if !l.humanClues || st.ActiveTeam != l.playerTeam {
		clue, err := l.m.RequestAIClue()
		if err != nil {
			return err
		}
		fmt.Printf("[AI] %s Spymaster gives clue: %s\n", st.ActiveTeam, clue)
		return nil
	}

	// Rejected clues leave the state unchanged, so we just re-prompt.
	for {
		clue, err := l.sm.GiveClue(l.m.SecretBoardView(), st.ActiveTeam)
		if err != nil {
			return err
		}
		if l.dict != nil && !l.dict.Valid(clue.Word) {
			fmt.Printf("%q isn't a dictionary word.\n", clue.Word)
			continue
		}
		if _, err := l.m.SubmitClue(clue.Word, clue.Count); err != nil {
			var legality *codenames.ClueLegalityError
			if errors.As(err, &legality) {
				fmt.Printf("%v\n", err)
				continue
			}
			return err
		}
		return nil
	}
}

func (l *localMatch) guessPhase(st *codenames.MatchState) error {
	if !l.humanGuesses || st.ActiveTeam != l.playerTeam {
		out, err := l.m.RequestAIGuess()
		if err != nil {
			return err
		}
		if out.Passed {
			fmt.Printf("[AI] %s Operative passes\n", st.ActiveTeam)
		} else {
			fmt.Printf("[AI] %s Operative guesses %q: %s\n", st.ActiveTeam, out.Codename, out.Agent)
		}
		return nil
	}

	g, err := l.op.Guess(l.m.PublicBoardView(), st.Clue)
	if err != nil {
		return err
	}
	if g.Pass {
		return l.m.Pass()
	}
	out, err := l.m.SubmitGuess(g.Position)
	if err != nil {
		// The terminal operative only offers unrevealed cells, so any
		// rejection here is unexpected; report it and re-prompt upstream.
		fmt.Printf("%v\n", err)
		return nil
	}
	fmt.Printf("Revealed %q: %s\n", out.Codename, out.Agent)
	return nil
}
