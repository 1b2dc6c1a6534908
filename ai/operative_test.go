package ai

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/liusenjun/Codenames-AI-game/codenames"
	"github.com/liusenjun/Codenames-AI-game/wordassoc"
)

func publicView(cells ...codenames.PublicCell) []codenames.PublicCell {
	for i := range cells {
		cells[i].Position = i
	}
	return cells
}

func TestRankGuesses(t *testing.T) {
	ix := wordassoc.New()
	ix.Add("water", "beach", 0.9)
	ix.Add("water", "fish", 0.7)
	ix.Add("water", "pool", 0.7)

	view := publicView(
		codenames.PublicCell{Codename: "fish"},
		codenames.PublicCell{Codename: "table"},
		codenames.PublicCell{Codename: "beach"},
		codenames.PublicCell{Codename: "pool"},
	)

	got := NewOperative(ix).RankGuesses(view, &codenames.Clue{Word: "water", Count: 2})
	want := []ScoredGuess{
		{Position: 2, Codename: "beach", Score: 0.9},
		// fish and pool tie, so board order breaks it.
		{Position: 0, Codename: "fish", Score: 0.7},
		{Position: 3, Codename: "pool", Score: 0.7},
		{Position: 1, Codename: "table", Score: 0},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected ranking (-want +got)\n%s", diff)
	}
}

func TestRankGuessesSkipsRevealed(t *testing.T) {
	ix := wordassoc.New()
	ix.Add("water", "beach", 0.9)
	ix.Add("water", "fish", 0.7)

	view := publicView(
		codenames.PublicCell{Codename: "beach", Revealed: true, Agent: codenames.RedAgent},
		codenames.PublicCell{Codename: "fish"},
	)

	got := NewOperative(ix).RankGuesses(view, &codenames.Clue{Word: "water", Count: 1})
	want := []ScoredGuess{
		{Position: 1, Codename: "fish", Score: 0.7},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected ranking (-want +got)\n%s", diff)
	}
}

func TestGuess(t *testing.T) {
	ix := wordassoc.New()
	ix.Add("water", "beach", 0.9)

	view := publicView(
		codenames.PublicCell{Codename: "table"},
		codenames.PublicCell{Codename: "beach"},
	)

	got, err := NewOperative(ix).Guess(view, &codenames.Clue{Word: "water", Count: 1})
	if err != nil {
		t.Fatalf("Guess: %v", err)
	}
	want := codenames.Guess{Position: 1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected guess (-want +got)\n%s", diff)
	}
}

func TestGuessPassesOnNoRelation(t *testing.T) {
	view := publicView(
		codenames.PublicCell{Codename: "table"},
		codenames.PublicCell{Codename: "chair"},
	)

	got, err := NewOperative(wordassoc.New()).Guess(view, &codenames.Clue{Word: "water", Count: 1})
	if err != nil {
		t.Fatalf("Guess: %v", err)
	}
	if !got.Pass {
		t.Errorf("Guess = %+v, want a pass when nothing relates to the clue", got)
	}
}

func TestGuessPassesOnEmptyBoard(t *testing.T) {
	view := publicView(
		codenames.PublicCell{Codename: "table", Revealed: true, Agent: codenames.Bystander},
	)

	got, err := NewOperative(wordassoc.Default()).Guess(view, &codenames.Clue{Word: "water", Count: 1})
	if err != nil {
		t.Fatalf("Guess: %v", err)
	}
	if !got.Pass {
		t.Errorf("Guess = %+v, want a pass when everything is revealed", got)
	}
}
