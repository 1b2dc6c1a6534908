// Package boardgen builds a fresh board from a word pool and a random
// source. Generation is fully deterministic for a seeded source, which is
// what makes board layouts reproducible in tests.
package boardgen

import (
	"fmt"
	"math/rand"

	"github.com/liusenjun/Codenames-AI-game/codenames"
)

// agentCounts is the fixed category distribution, before the starting team
// gets its extra agent. The totals must always sum to codenames.Size.
var agentCounts = map[codenames.Agent]int{
	codenames.RedAgent:  8,
	codenames.BlueAgent: 8,
	codenames.Bystander: 7,
	codenames.Assassin:  1,
}

// New samples codenames.Size distinct words from the pool, assigns agents
// with the starting team receiving one extra, and shuffles positions.
func New(wordPool []string, starter codenames.Team, r *rand.Rand) (*codenames.Board, error) {
	pool := dedupe(wordPool)
	if len(pool) < codenames.Size {
		return nil, fmt.Errorf("pool has %d distinct words, need %d: %w", len(pool), codenames.Size, codenames.ErrInsufficientWords)
	}

	var agents []codenames.Agent
	for _, ag := range []codenames.Agent{codenames.RedAgent, codenames.BlueAgent, codenames.Bystander, codenames.Assassin} {
		n := agentCounts[ag]
		if ag == starter.Agent() {
			n++
		}
		for i := 0; i < n; i++ {
			agents = append(agents, ag)
		}
	}
	if len(agents) != codenames.Size {
		return nil, fmt.Errorf("starting team %q doesn't produce a full board", starter)
	}

	// Pick the board words, then shuffle the agent assignments over them.
	perm := r.Perm(len(pool))
	selected := make([]string, codenames.Size)
	for i := 0; i < codenames.Size; i++ {
		selected[i] = pool[perm[i]]
	}

	cards := make([]codenames.Card, codenames.Size)
	for i, idx := range r.Perm(len(agents)) {
		cards[i] = codenames.Card{
			Codename: selected[i],
			Agent:    agents[idx],
		}
	}

	return &codenames.Board{Cards: cards}, nil
}

// dedupe normalizes the pool and drops duplicates, preserving pool order so
// a given seed always sees the same candidate list.
func dedupe(pool []string) []string {
	seen := make(map[string]struct{}, len(pool))
	var out []string
	for _, w := range pool {
		w = codenames.NormalizeWord(w)
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
