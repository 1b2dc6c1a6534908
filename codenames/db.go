package codenames

import (
	"bytes"
	"math/rand"
	"strings"
)

type PlayerID string
type MatchID string

type MatchStatus string

const (
	// NoStatus is an error case.
	NoStatus = MatchStatus("")
	// Match hasn't started yet, seats can still be claimed.
	Open = MatchStatus("OPEN")
	// Match is in progress.
	Playing = MatchStatus("PLAYING")
	// Match has a result.
	Finished = MatchStatus("FINISHED")
)

// Player is someone who can hold a seat in a match.
type Player struct {
	ID   PlayerID `json:"id"`
	Name string   `json:"name"`
}

func (p *Player) Clone() *Player {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}

// Match is the stored record of a match: who made it, where it is in its
// lifecycle, and its full engine state.
type Match struct {
	ID        MatchID     `json:"id"`
	CreatedBy PlayerID    `json:"created_by"`
	Status    MatchStatus `json:"status"`
	State     *MatchState `json:"state"`
}

func (m *Match) Clone() *Match {
	if m == nil {
		return nil
	}
	c := *m
	c.State = m.State.Clone()
	return &c
}

// SeatAssignment records which seat a player holds in a match.
type SeatAssignment struct {
	PlayerID PlayerID `json:"player_id"`
	Team     Team     `json:"team"`
	Role     Role     `json:"role"`
	Assigned bool     `json:"assigned"`
}

func (sa *SeatAssignment) Clone() *SeatAssignment {
	if sa == nil {
		return nil
	}
	c := *sa
	return &c
}

// DB stores matches and players. Implementations must return deep copies so
// callers can't mutate stored state behind the engine's back.
type DB interface {
	NewMatch(*Match) (MatchID, error)
	Match(MatchID) (*Match, error)
	OpenMatches() ([]MatchID, error)
	StartMatch(MatchID) error
	UpdateState(MatchID, *MatchState) error

	NewPlayer(*Player) (PlayerID, error)
	Player(PlayerID) (*Player, error)

	JoinMatch(MatchID, PlayerID) error
	AssignSeat(MatchID, *SeatAssignment) error
	PlayersInMatch(MatchID) ([]*SeatAssignment, error)
}

// RandomMatchID generates a human-readable ID from three title-cased pool
// words, like "MapleWitchTorch".
func RandomMatchID(r *rand.Rand) MatchID {
	var buf bytes.Buffer
	for i := 0; i < 3; i++ {
		buf.WriteString(titleWord(DefaultWords[r.Intn(len(DefaultWords))]))
	}
	return MatchID(buf.String())
}

var letters = []byte("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")

// RandomPlayerID generates an opaque 64-character player ID.
func RandomPlayerID(r *rand.Rand) PlayerID {
	b := make([]byte, 64)
	for i := range b {
		b[i] = letters[r.Intn(len(letters))]
	}
	return PlayerID(b)
}

func titleWord(w string) string {
	var buf bytes.Buffer
	for _, part := range strings.Fields(w) {
		buf.WriteString(strings.ToUpper(part[:1]))
		buf.WriteString(part[1:])
	}
	return buf.String()
}
