package game

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/liusenjun/Codenames-AI-game/codenames"
)

// testBoard lays out a full board with known positions: red at 0-8 (red
// always starts in these tests), blue at 9-16, bystanders at 17-23, and
// the assassin at 24.
func testBoard() *codenames.Board {
	var cards []codenames.Card
	add := func(n int, prefix string, ag codenames.Agent) {
		for i := 0; i < n; i++ {
			cards = append(cards, codenames.Card{
				Codename: fmt.Sprintf("%s%d", prefix, i),
				Agent:    ag,
			})
		}
	}
	add(9, "crimson", codenames.RedAgent)
	add(8, "azure", codenames.BlueAgent)
	add(7, "beige", codenames.Bystander)
	add(1, "onyx", codenames.Assassin)
	return &codenames.Board{Cards: cards}
}

func newTestMatch(t *testing.T) *Match {
	t.Helper()
	m, err := New(testBoard(), codenames.RedTeam, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

// inGuessPhase submits a known-legal clue so the match accepts guesses.
func inGuessPhase(t *testing.T, m *Match, count int) {
	t.Helper()
	if _, err := m.SubmitClue("ocean", count); err != nil {
		t.Fatalf("SubmitClue: %v", err)
	}
}

func TestNewValidatesBoard(t *testing.T) {
	tests := []struct {
		desc   string
		mangle func(*codenames.Board)
	}{
		{
			desc:   "too few cards",
			mangle: func(b *codenames.Board) { b.Cards = b.Cards[:24] },
		},
		{
			desc:   "duplicate codename",
			mangle: func(b *codenames.Board) { b.Cards[1].Codename = b.Cards[0].Codename },
		},
		{
			desc:   "wrong agent distribution",
			mangle: func(b *codenames.Board) { b.Cards[0].Agent = codenames.BlueAgent },
		},
		{
			desc:   "two assassins",
			mangle: func(b *codenames.Board) { b.Cards[17].Agent = codenames.Assassin },
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			b := testBoard()
			test.mangle(b)
			if _, err := New(b, codenames.RedTeam, nil); err == nil {
				t.Error("New succeeded on a broken board, want error")
			}
		})
	}

	if _, err := New(testBoard(), codenames.NoTeam, nil); err == nil {
		t.Error("New succeeded with no starting team, want error")
	}
}

func TestNewInitialState(t *testing.T) {
	m := newTestMatch(t)

	st := m.State()
	if st.ActiveTeam != codenames.RedTeam {
		t.Errorf("active team = %q, want %q", st.ActiveTeam, codenames.RedTeam)
	}
	if st.Phase != codenames.CluePhase {
		t.Errorf("phase = %q, want %q", st.Phase, codenames.CluePhase)
	}
	if st.Clue != nil {
		t.Errorf("clue = %+v, want nil", st.Clue)
	}
}

func TestSubmitClue(t *testing.T) {
	m := newTestMatch(t)

	clue, err := m.SubmitClue("OCEAN", 2)
	if err != nil {
		t.Fatalf("SubmitClue: %v", err)
	}
	want := &codenames.Clue{Word: "ocean", Count: 2, Team: codenames.RedTeam}
	if diff := cmp.Diff(want, clue); diff != "" {
		t.Errorf("unexpected clue (-want +got)\n%s", diff)
	}

	st := m.State()
	if st.Phase != codenames.GuessPhase {
		t.Errorf("phase = %q, want %q", st.Phase, codenames.GuessPhase)
	}
	if st.GuessesLeft != 3 {
		t.Errorf("guesses left = %d, want count+1 = 3", st.GuessesLeft)
	}
	if diff := cmp.Diff(want, st.Clue); diff != "" {
		t.Errorf("unexpected stored clue (-want +got)\n%s", diff)
	}
}

func TestSubmitClueZeroCount(t *testing.T) {
	m := newTestMatch(t)

	if _, err := m.SubmitClue("ocean", 0); err != nil {
		t.Fatalf("SubmitClue: %v", err)
	}
	if got := m.State().GuessesLeft; got != 1 {
		t.Errorf("guesses left after count-0 clue = %d, want 1", got)
	}
}

func TestSubmitClueIllegal(t *testing.T) {
	m := newTestMatch(t)
	before := m.State()

	tests := []struct {
		desc  string
		word  string
		count int
	}{
		{desc: "board word", word: "crimson3", count: 1},
		{desc: "substring of board word", word: "azure", count: 1},
		{desc: "superstring of board word", word: "onyx0s", count: 1},
		{desc: "multiple words", word: "deep ocean", count: 1},
		{desc: "empty word", word: "", count: 1},
		{desc: "negative count", word: "ocean", count: -1},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			_, err := m.SubmitClue(test.word, test.count)
			var lerr *codenames.ClueLegalityError
			if !errors.As(err, &lerr) {
				t.Fatalf("SubmitClue(%q, %d) = %v, want ClueLegalityError", test.word, test.count, err)
			}
			if diff := cmp.Diff(before, m.State()); diff != "" {
				t.Errorf("rejected clue changed state (-before +after)\n%s", diff)
			}
		})
	}
}

func TestSubmitClueWrongPhase(t *testing.T) {
	m := newTestMatch(t)
	inGuessPhase(t, m, 1)

	if _, err := m.SubmitClue("river", 1); err == nil {
		t.Error("SubmitClue during guess phase succeeded, want error")
	}
}

func TestSubmitGuessOwnTeam(t *testing.T) {
	m := newTestMatch(t)
	inGuessPhase(t, m, 2)

	out, err := m.SubmitGuess(0)
	if err != nil {
		t.Fatalf("SubmitGuess: %v", err)
	}
	want := &RevealOutcome{Position: 0, Codename: "crimson0", Agent: codenames.RedAgent}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("unexpected outcome (-want +got)\n%s", diff)
	}

	st := m.State()
	if st.Phase != codenames.GuessPhase {
		t.Errorf("phase = %q, want %q (turn continues)", st.Phase, codenames.GuessPhase)
	}
	if st.GuessesLeft != 2 {
		t.Errorf("guesses left = %d, want 2", st.GuessesLeft)
	}
	if st.GuessesUsed != 1 {
		t.Errorf("guesses used = %d, want 1", st.GuessesUsed)
	}
}

func TestSubmitGuessExhaustsGuesses(t *testing.T) {
	m := newTestMatch(t)
	inGuessPhase(t, m, 1)

	if _, err := m.SubmitGuess(0); err != nil {
		t.Fatalf("SubmitGuess(0): %v", err)
	}
	out, err := m.SubmitGuess(1)
	if err != nil {
		t.Fatalf("SubmitGuess(1): %v", err)
	}
	if !out.TurnEnded || out.MatchOver {
		t.Errorf("outcome = %+v, want turn ended and match live", out)
	}

	st := m.State()
	if st.ActiveTeam != codenames.BlueTeam {
		t.Errorf("active team = %q, want %q", st.ActiveTeam, codenames.BlueTeam)
	}
	if st.Phase != codenames.CluePhase {
		t.Errorf("phase = %q, want %q", st.Phase, codenames.CluePhase)
	}
	if st.Clue != nil {
		t.Errorf("clue = %+v, want nil after turn end", st.Clue)
	}
}

func TestSubmitGuessBystander(t *testing.T) {
	m := newTestMatch(t)
	inGuessPhase(t, m, 3)

	out, err := m.SubmitGuess(17)
	if err != nil {
		t.Fatalf("SubmitGuess: %v", err)
	}
	if !out.TurnEnded {
		t.Error("revealing a bystander didn't end the turn")
	}
	if got := m.State().ActiveTeam; got != codenames.BlueTeam {
		t.Errorf("active team = %q, want %q", got, codenames.BlueTeam)
	}
}

func TestSubmitGuessOpposingTeam(t *testing.T) {
	m := newTestMatch(t)
	inGuessPhase(t, m, 3)

	out, err := m.SubmitGuess(9)
	if err != nil {
		t.Fatalf("SubmitGuess: %v", err)
	}
	if !out.TurnEnded || out.MatchOver {
		t.Errorf("outcome = %+v, want turn ended and match live", out)
	}
	if got := m.State().ActiveTeam; got != codenames.BlueTeam {
		t.Errorf("active team = %q, want %q", got, codenames.BlueTeam)
	}
}

func TestSubmitGuessAssassin(t *testing.T) {
	m := newTestMatch(t)
	inGuessPhase(t, m, 3)

	out, err := m.SubmitGuess(24)
	if err != nil {
		t.Fatalf("SubmitGuess: %v", err)
	}
	if !out.MatchOver {
		t.Error("revealing the assassin didn't end the match")
	}

	want := &codenames.Result{Winner: codenames.BlueTeam, Reason: codenames.AssassinRevealed}
	if diff := cmp.Diff(want, m.Result()); diff != "" {
		t.Errorf("unexpected result (-want +got)\n%s", diff)
	}
	if got := m.State().Phase; got != codenames.OverPhase {
		t.Errorf("phase = %q, want %q", got, codenames.OverPhase)
	}
}

func TestSubmitGuessWinsByFindingAll(t *testing.T) {
	m := newTestMatch(t)

	// Red has 9 agents; sweep them across turns. 8-guess turns need a
	// count-7 clue.
	for turn := 0; turn < 2; turn++ {
		inGuessPhase(t, m, 7)
		for i := 0; i < 8 && m.Result() == nil; i++ {
			pos := turn*8 + i
			if pos > 8 {
				break
			}
			if _, err := m.SubmitGuess(pos); err != nil {
				t.Fatalf("SubmitGuess(%d): %v", pos, err)
			}
		}
		if m.Result() != nil {
			break
		}
		// Blue's intervening turn: pass straight back.
		if _, err := m.SubmitClue("river", 0); err != nil {
			t.Fatalf("SubmitClue: %v", err)
		}
		if err := m.Pass(); err != nil {
			t.Fatalf("Pass: %v", err)
		}
	}

	want := &codenames.Result{Winner: codenames.RedTeam, Reason: codenames.AllAgentsFound}
	if diff := cmp.Diff(want, m.Result()); diff != "" {
		t.Errorf("unexpected result (-want +got)\n%s", diff)
	}
}

func TestSubmitGuessRevealsOpposingLastAgent(t *testing.T) {
	m := newTestMatch(t)

	// Blue reveals 7 of its own agents over several turns, then red reveals
	// the eighth. That reveal hands blue the win.
	revealBlue := func(from, to int) {
		t.Helper()
		if _, err := m.SubmitClue("river", to-from); err != nil {
			t.Fatalf("SubmitClue: %v", err)
		}
		for pos := from; pos < to; pos++ {
			if _, err := m.SubmitGuess(pos); err != nil {
				t.Fatalf("SubmitGuess(%d): %v", pos, err)
			}
		}
		if m.State().Phase == codenames.GuessPhase {
			if err := m.Pass(); err != nil {
				t.Fatalf("Pass: %v", err)
			}
		}
	}
	passTurn := func() {
		t.Helper()
		if _, err := m.SubmitClue("ocean", 0); err != nil {
			t.Fatalf("SubmitClue: %v", err)
		}
		if err := m.Pass(); err != nil {
			t.Fatalf("Pass: %v", err)
		}
	}

	passTurn()          // red
	revealBlue(9, 13)   // blue reveals 4 of its own
	passTurn()          // red
	revealBlue(13, 16)  // blue reveals 3 more, 7 total

	// Red's guess reveals blue's last agent.
	if _, err := m.SubmitClue("ocean", 1); err != nil {
		t.Fatalf("SubmitClue: %v", err)
	}
	out, err := m.SubmitGuess(16)
	if err != nil {
		t.Fatalf("SubmitGuess(16): %v", err)
	}
	if !out.MatchOver {
		t.Error("revealing the opposing team's last agent didn't end the match")
	}

	want := &codenames.Result{Winner: codenames.BlueTeam, Reason: codenames.AllAgentsFound}
	if diff := cmp.Diff(want, m.Result()); diff != "" {
		t.Errorf("unexpected result (-want +got)\n%s", diff)
	}
}

func TestSubmitGuessInvalid(t *testing.T) {
	m := newTestMatch(t)
	inGuessPhase(t, m, 2)

	if _, err := m.SubmitGuess(0); err != nil {
		t.Fatalf("SubmitGuess(0): %v", err)
	}
	before := m.State()

	if _, err := m.SubmitGuess(25); !errors.Is(err, codenames.ErrInvalidPosition) {
		t.Errorf("SubmitGuess(25) = %v, want ErrInvalidPosition", err)
	}
	if _, err := m.SubmitGuess(-1); !errors.Is(err, codenames.ErrInvalidPosition) {
		t.Errorf("SubmitGuess(-1) = %v, want ErrInvalidPosition", err)
	}
	if _, err := m.SubmitGuess(0); !errors.Is(err, codenames.ErrAlreadyRevealed) {
		t.Errorf("SubmitGuess(0) again = %v, want ErrAlreadyRevealed", err)
	}

	if diff := cmp.Diff(before, m.State()); diff != "" {
		t.Errorf("rejected guesses changed state (-before +after)\n%s", diff)
	}
}

func TestPass(t *testing.T) {
	m := newTestMatch(t)
	inGuessPhase(t, m, 2)

	if err := m.Pass(); err != nil {
		t.Fatalf("Pass: %v", err)
	}

	st := m.State()
	if st.ActiveTeam != codenames.BlueTeam {
		t.Errorf("active team = %q, want %q", st.ActiveTeam, codenames.BlueTeam)
	}
	if st.Phase != codenames.CluePhase {
		t.Errorf("phase = %q, want %q", st.Phase, codenames.CluePhase)
	}

	// Passing is only legal while guessing.
	if err := m.Pass(); err == nil {
		t.Error("Pass during clue phase succeeded, want error")
	}
}

func TestMatchOverRejectsEverything(t *testing.T) {
	m := newTestMatch(t)
	inGuessPhase(t, m, 1)
	if _, err := m.SubmitGuess(24); err != nil {
		t.Fatalf("SubmitGuess(24): %v", err)
	}

	if _, err := m.SubmitClue("ocean", 1); !errors.Is(err, codenames.ErrMatchOver) {
		t.Errorf("SubmitClue after match over = %v, want ErrMatchOver", err)
	}
	if _, err := m.SubmitGuess(1); !errors.Is(err, codenames.ErrMatchOver) {
		t.Errorf("SubmitGuess after match over = %v, want ErrMatchOver", err)
	}
	if err := m.Pass(); !errors.Is(err, codenames.ErrMatchOver) {
		t.Errorf("Pass after match over = %v, want ErrMatchOver", err)
	}
}

func TestHistory(t *testing.T) {
	m := newTestMatch(t)
	inGuessPhase(t, m, 1)
	if _, err := m.SubmitGuess(17); err != nil {
		t.Fatalf("SubmitGuess: %v", err)
	}

	clue := &codenames.Clue{Word: "ocean", Count: 1, Team: codenames.RedTeam}
	want := []codenames.Event{
		{Kind: codenames.EventClueGiven, Team: codenames.RedTeam, Clue: clue},
		{Kind: codenames.EventCardGuessed, Team: codenames.RedTeam, Position: 17, Codename: "beige0", Agent: codenames.Bystander},
		{Kind: codenames.EventTurnEnded, Team: codenames.RedTeam},
	}
	if diff := cmp.Diff(want, m.History()); diff != "" {
		t.Errorf("unexpected history (-want +got)\n%s", diff)
	}
}

func TestNewForMove(t *testing.T) {
	m := newTestMatch(t)
	inGuessPhase(t, m, 1)

	// Simulate a store round-trip: continue the match from a cloned state.
	resumed := NewForMove(m.State(), nil)
	out, err := resumed.SubmitGuess(0)
	if err != nil {
		t.Fatalf("SubmitGuess on resumed match: %v", err)
	}
	if out.Codename != "crimson0" {
		t.Errorf("outcome codename = %q, want %q", out.Codename, "crimson0")
	}
}

// script is a canned spymaster/operative pair for driving Play().
type script struct {
	clues   []string
	guesses []codenames.Guess
	ci, gi  int
}

func (s *script) GiveClue(view []codenames.SecretCell, team codenames.Team) (*codenames.Clue, error) {
	clue, err := codenames.ParseClue(s.clues[s.ci%len(s.clues)])
	if err != nil {
		return nil, err
	}
	s.ci++
	clue.Team = team
	return clue, nil
}

func (s *script) Guess(view []codenames.PublicCell, clue *codenames.Clue) (codenames.Guess, error) {
	g := s.guesses[s.gi%len(s.guesses)]
	s.gi++
	return g, nil
}

func TestPlay(t *testing.T) {
	// Red sweeps its agents in position order; blue always passes. Red wins
	// by finding all nine.
	red := &script{
		clues: []string{"ocean 8"},
		guesses: []codenames.Guess{
			{Position: 0}, {Position: 1}, {Position: 2}, {Position: 3},
			{Position: 4}, {Position: 5}, {Position: 6}, {Position: 7},
			{Position: 8},
		},
	}
	blue := &script{
		clues:   []string{"river 0"},
		guesses: []codenames.Guess{{Pass: true}},
	}

	m, err := New(testBoard(), codenames.RedTeam, &Config{
		RedSpymaster:  red,
		BlueSpymaster: blue,
		RedOperative:  red,
		BlueOperative: blue,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got, err := m.Play()
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	want := &codenames.Result{Winner: codenames.RedTeam, Reason: codenames.AllAgentsFound}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected result (-want +got)\n%s", diff)
	}
}

func TestPlayNeverTerminates(t *testing.T) {
	passer := &script{
		clues:   []string{"ocean 0"},
		guesses: []codenames.Guess{{Pass: true}},
	}

	m, err := New(testBoard(), codenames.RedTeam, &Config{
		RedSpymaster:  passer,
		BlueSpymaster: passer,
		RedOperative:  passer,
		BlueOperative: passer,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := m.Play(); err == nil {
		t.Error("Play with two passing teams succeeded, want turn-limit error")
	}
}
