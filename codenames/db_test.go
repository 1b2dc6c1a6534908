package codenames

import (
	"math/rand"
	"strings"
	"testing"
	"unicode"
)

func TestRandomMatchID(t *testing.T) {
	r := rand.New(rand.NewSource(0))

	seen := make(map[MatchID]struct{})
	for i := 0; i < 20; i++ {
		id := RandomMatchID(r)
		if id == "" {
			t.Fatal("RandomMatchID returned an empty ID")
		}
		// Three title-cased words, so exactly three upper-case starts and no
		// spaces, even for pool entries like "new york".
		if strings.ContainsAny(string(id), " \t") {
			t.Errorf("RandomMatchID(%q) contains whitespace", id)
		}
		upper := 0
		for _, c := range id {
			if unicode.IsUpper(c) {
				upper++
			}
		}
		if upper != 3 {
			t.Errorf("RandomMatchID(%q) has %d upper-case runes, want 3", id, upper)
		}
		seen[id] = struct{}{}
	}
	if len(seen) < 2 {
		t.Error("RandomMatchID produced the same ID 20 times")
	}
}

func TestRandomPlayerID(t *testing.T) {
	r := rand.New(rand.NewSource(0))

	id := RandomPlayerID(r)
	if len(id) != 64 {
		t.Fatalf("len(RandomPlayerID) = %d, want 64", len(id))
	}
	for _, c := range id {
		if !strings.ContainsRune(string(letters), c) {
			t.Errorf("RandomPlayerID(%q) contains unexpected rune %q", id, c)
		}
	}

	if other := RandomPlayerID(r); other == id {
		t.Error("two RandomPlayerID calls returned the same ID")
	}
}

func TestMatchClone(t *testing.T) {
	m := &Match{
		ID:        "match_0",
		CreatedBy: "player_0",
		Status:    Playing,
		State: &MatchState{
			ActiveTeam: RedTeam,
			Phase:      CluePhase,
			Board:      &Board{Cards: []Card{{Codename: "lion", Agent: RedAgent}}},
		},
	}

	c := m.Clone()
	c.State.Board.Cards[0].Revealed = true
	c.State.ActiveTeam = BlueTeam

	if m.State.Board.Cards[0].Revealed {
		t.Error("mutating the clone's board mutated the original")
	}
	if m.State.ActiveTeam != RedTeam {
		t.Error("mutating the clone's state mutated the original")
	}
}
