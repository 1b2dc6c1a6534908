// Package memdb is an in-memory implementation of the codenames.DB store,
// used by tests and the local commands.
package memdb

import (
	"fmt"
	"sort"
	"sync"

	"github.com/liusenjun/Codenames-AI-game/codenames"
)

type idNamespace string

const (
	matchID  = idNamespace("match")
	playerID = idNamespace("player")
)

type DB struct {
	mu      sync.Mutex
	ids     map[idNamespace]int
	matches map[codenames.MatchID]*codenames.Match
	players map[codenames.PlayerID]*codenames.Player
	seats   map[codenames.MatchID][]*codenames.SeatAssignment
}

func New() *DB {
	return &DB{
		ids:     make(map[idNamespace]int),
		matches: make(map[codenames.MatchID]*codenames.Match),
		players: make(map[codenames.PlayerID]*codenames.Player),
		seats:   make(map[codenames.MatchID][]*codenames.SeatAssignment),
	}
}

func (db *DB) NewMatch(m *codenames.Match) (codenames.MatchID, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	mID := codenames.MatchID(db.newID(matchID))

	mc := m.Clone()
	mc.ID = mID
	mc.Status = codenames.Open
	db.matches[mID] = mc
	db.seats[mID] = []*codenames.SeatAssignment{}

	return mID, nil
}

func (db *DB) Match(mID codenames.MatchID) (*codenames.Match, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	m, ok := db.matches[mID]
	if !ok {
		return nil, codenames.ErrMatchNotFound
	}

	return m.Clone(), nil
}

func (db *DB) NewPlayer(p *codenames.Player) (codenames.PlayerID, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	pID := codenames.PlayerID(db.newID(playerID))

	pc := p.Clone()
	pc.ID = pID
	db.players[pID] = pc

	return pID, nil
}

func (db *DB) Player(pID codenames.PlayerID) (*codenames.Player, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	p, ok := db.players[pID]
	if !ok {
		return nil, codenames.ErrPlayerNotFound
	}

	return p.Clone(), nil
}

func (db *DB) OpenMatches() ([]codenames.MatchID, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var open []codenames.MatchID
	for _, m := range db.matches {
		if m.Status == codenames.Open {
			open = append(open, m.ID)
		}
	}
	// Map iteration order would make this flaky otherwise.
	sort.Slice(open, func(i, j int) bool { return open[i] < open[j] })
	return open, nil
}

func (db *DB) PlayersInMatch(mID codenames.MatchID) ([]*codenames.SeatAssignment, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	seats, ok := db.seats[mID]
	if !ok {
		return nil, codenames.ErrMatchNotFound
	}

	out := make([]*codenames.SeatAssignment, len(seats))
	for i, sa := range seats {
		out[i] = sa.Clone()
	}
	return out, nil
}

func (db *DB) JoinMatch(mID codenames.MatchID, pID codenames.PlayerID) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	seats, ok := db.seats[mID]
	if !ok {
		return codenames.ErrMatchNotFound
	}

	// The SQLite implementation fails if the player is already in the
	// match, so we do the same.
	for _, sa := range seats {
		if sa.PlayerID == pID {
			return fmt.Errorf("player %q is already in match %q", pID, mID)
		}
	}

	db.seats[mID] = append(seats, &codenames.SeatAssignment{PlayerID: pID})
	return nil
}

func (db *DB) AssignSeat(mID codenames.MatchID, req *codenames.SeatAssignment) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	seats, ok := db.seats[mID]
	if !ok {
		return codenames.ErrMatchNotFound
	}

	for _, sa := range seats {
		if sa.PlayerID == req.PlayerID {
			sa.Team = req.Team
			sa.Role = req.Role
			sa.Assigned = true
			return nil
		}
	}

	return fmt.Errorf("player %q was not found in match %q", req.PlayerID, mID)
}

func (db *DB) StartMatch(mID codenames.MatchID) error {
	return db.updateMatch(mID, func(m *codenames.Match) {
		m.Status = codenames.Playing
	})
}

func (db *DB) UpdateState(mID codenames.MatchID, ms *codenames.MatchState) error {
	return db.updateMatch(mID, func(m *codenames.Match) {
		m.State = ms.Clone()
		if ms.Result != nil {
			m.Status = codenames.Finished
		}
	})
}

func (db *DB) updateMatch(mID codenames.MatchID, update func(*codenames.Match)) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	m, ok := db.matches[mID]
	if !ok {
		return codenames.ErrMatchNotFound
	}
	update(m)
	return nil
}

func (db *DB) newID(ns idNamespace) string {
	idx := db.ids[ns]
	db.ids[ns]++
	return fmt.Sprintf("%s_%d", ns, idx)
}
