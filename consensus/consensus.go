// Package consensus collects guess votes from a team's operatives so a
// multi-operative seat acts as one. A guess is only forwarded to the match
// engine once a strict majority agrees on a board position.
package consensus

import (
	"sync"

	"github.com/liusenjun/Codenames-AI-game/codenames"
)

func New() *Guesser {
	return &Guesser{
		votes: make(map[codenames.MatchID][]*vote),
	}
}

type vote struct {
	playerID codenames.PlayerID
	position int
}

type Guesser struct {
	mu    sync.Mutex
	votes map[codenames.MatchID][]*vote
}

// RecordVote stores a player's current vote for a board position,
// replacing any earlier vote they cast this turn.
func (g *Guesser) RecordVote(mID codenames.MatchID, pID codenames.PlayerID, position int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, v := range g.votes[mID] {
		if v.playerID == pID {
			v.position = position
			return
		}
	}

	g.votes[mID] = append(g.votes[mID], &vote{
		playerID: pID,
		position: position,
	})
}

// ReachedConsensus reports whether a strict majority of the given voter
// count agrees on a position. E.g. totalVoters == 2 needs 2, == 3 needs 2,
// == 4 needs 3.
func (g *Guesser) ReachedConsensus(mID codenames.MatchID, totalVoters int) (int, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	counts := make(map[int]int)
	for _, v := range g.votes[mID] {
		counts[v.position]++
	}

	majority := totalVoters/2 + 1
	for position, cnt := range counts {
		if cnt >= majority {
			return position, true
		}
	}

	return 0, false
}

// Clear throws away the recorded votes for a match, e.g. after a guess was
// applied or the turn ended.
func (g *Guesser) Clear(mID codenames.MatchID) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.votes, mID)
}
