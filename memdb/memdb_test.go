package memdb

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/liusenjun/Codenames-AI-game/codenames"
)

func testState() *codenames.MatchState {
	return &codenames.MatchState{
		StartingTeam: codenames.RedTeam,
		ActiveTeam:   codenames.RedTeam,
		Phase:        codenames.CluePhase,
		Board: &codenames.Board{Cards: []codenames.Card{
			{Codename: "lion", Agent: codenames.RedAgent},
		}},
	}
}

func TestMatchLifecycle(t *testing.T) {
	db := New()

	mID, err := db.NewMatch(&codenames.Match{
		CreatedBy: "player_0",
		State:     testState(),
	})
	if err != nil {
		t.Fatalf("NewMatch: %v", err)
	}
	if mID != "match_0" {
		t.Errorf("match ID = %q, want %q", mID, "match_0")
	}

	m, err := db.Match(mID)
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if m.Status != codenames.Open {
		t.Errorf("status = %q, want %q", m.Status, codenames.Open)
	}

	open, err := db.OpenMatches()
	if err != nil {
		t.Fatalf("OpenMatches: %v", err)
	}
	if diff := cmp.Diff([]codenames.MatchID{"match_0"}, open); diff != "" {
		t.Errorf("unexpected open matches (-want +got)\n%s", diff)
	}

	if err := db.StartMatch(mID); err != nil {
		t.Fatalf("StartMatch: %v", err)
	}
	m, err = db.Match(mID)
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if m.Status != codenames.Playing {
		t.Errorf("status = %q, want %q", m.Status, codenames.Playing)
	}

	open, err = db.OpenMatches()
	if err != nil {
		t.Fatalf("OpenMatches: %v", err)
	}
	if len(open) != 0 {
		t.Errorf("open matches after start = %v, want none", open)
	}
}

func TestUpdateState(t *testing.T) {
	db := New()
	mID, err := db.NewMatch(&codenames.Match{State: testState()})
	if err != nil {
		t.Fatalf("NewMatch: %v", err)
	}

	st := testState()
	st.Phase = codenames.OverPhase
	st.Result = &codenames.Result{Winner: codenames.BlueTeam, Reason: codenames.AssassinRevealed}
	if err := db.UpdateState(mID, st); err != nil {
		t.Fatalf("UpdateState: %v", err)
	}

	m, err := db.Match(mID)
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if m.Status != codenames.Finished {
		t.Errorf("status = %q, want %q once the state has a result", m.Status, codenames.Finished)
	}
	if diff := cmp.Diff(st.Result, m.State.Result); diff != "" {
		t.Errorf("unexpected stored result (-want +got)\n%s", diff)
	}
}

func TestMatchNotFound(t *testing.T) {
	db := New()
	if _, err := db.Match("match_404"); !errors.Is(err, codenames.ErrMatchNotFound) {
		t.Errorf("Match on unknown ID = %v, want ErrMatchNotFound", err)
	}
	if err := db.StartMatch("match_404"); !errors.Is(err, codenames.ErrMatchNotFound) {
		t.Errorf("StartMatch on unknown ID = %v, want ErrMatchNotFound", err)
	}
	if err := db.JoinMatch("match_404", "player_0"); !errors.Is(err, codenames.ErrMatchNotFound) {
		t.Errorf("JoinMatch on unknown ID = %v, want ErrMatchNotFound", err)
	}
}

func TestPlayers(t *testing.T) {
	db := New()

	pID, err := db.NewPlayer(&codenames.Player{Name: "Alice"})
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}

	got, err := db.Player(pID)
	if err != nil {
		t.Fatalf("Player: %v", err)
	}
	want := &codenames.Player{ID: pID, Name: "Alice"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected player (-want +got)\n%s", diff)
	}

	if _, err := db.Player("player_404"); !errors.Is(err, codenames.ErrPlayerNotFound) {
		t.Errorf("Player on unknown ID = %v, want ErrPlayerNotFound", err)
	}
}

func TestSeats(t *testing.T) {
	db := New()
	mID, err := db.NewMatch(&codenames.Match{State: testState()})
	if err != nil {
		t.Fatalf("NewMatch: %v", err)
	}
	pID, err := db.NewPlayer(&codenames.Player{Name: "Alice"})
	if err != nil {
		t.Fatalf("NewPlayer: %v", err)
	}

	if err := db.JoinMatch(mID, pID); err != nil {
		t.Fatalf("JoinMatch: %v", err)
	}
	if err := db.JoinMatch(mID, pID); err == nil {
		t.Error("joining the same match twice succeeded, want error")
	}

	if err := db.AssignSeat(mID, &codenames.SeatAssignment{
		PlayerID: pID,
		Team:     codenames.RedTeam,
		Role:     codenames.SpymasterRole,
	}); err != nil {
		t.Fatalf("AssignSeat: %v", err)
	}
	if err := db.AssignSeat(mID, &codenames.SeatAssignment{PlayerID: "player_404"}); err == nil {
		t.Error("assigning a seat to a non-member succeeded, want error")
	}

	got, err := db.PlayersInMatch(mID)
	if err != nil {
		t.Fatalf("PlayersInMatch: %v", err)
	}
	want := []*codenames.SeatAssignment{
		{PlayerID: pID, Team: codenames.RedTeam, Role: codenames.SpymasterRole, Assigned: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected seats (-want +got)\n%s", diff)
	}
}

func TestClonesOnReturn(t *testing.T) {
	db := New()
	mID, err := db.NewMatch(&codenames.Match{State: testState()})
	if err != nil {
		t.Fatalf("NewMatch: %v", err)
	}

	m, err := db.Match(mID)
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	m.State.Board.Cards[0].Revealed = true

	fresh, err := db.Match(mID)
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if fresh.State.Board.Cards[0].Revealed {
		t.Error("mutating a returned match leaked into the store")
	}
}
