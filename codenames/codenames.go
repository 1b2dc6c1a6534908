// Package codenames holds the domain types shared by the board generator,
// the decision engines, the match engine, and the collaborator surfaces.
package codenames

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// Rows is the number of rows of cards on a board.
	Rows = 5
	// Columns is the number of columns of cards on a board.
	Columns = 5
	// Size is the total number of cards on a board.
	Size = Rows * Columns
)

// Team is one of the two competing teams.
type Team string

const (
	// NoTeam is an error case.
	NoTeam   = Team("")
	RedTeam  = Team("RED")
	BlueTeam = Team("BLUE")
)

// Other returns the opposing team.
func (t Team) Other() Team {
	switch t {
	case RedTeam:
		return BlueTeam
	case BlueTeam:
		return RedTeam
	}
	return NoTeam
}

// Agent returns the affiliation of this team's cards.
func (t Team) Agent() Agent {
	switch t {
	case RedTeam:
		return RedAgent
	case BlueTeam:
		return BlueAgent
	}
	return UnknownAgent
}

// Agent is the hidden affiliation of a card.
type Agent string

const (
	// UnknownAgent means the affiliation hasn't been revealed. It's the only
	// affiliation an operative sees on an unrevealed card.
	UnknownAgent = Agent("")
	RedAgent     = Agent("RED")
	BlueAgent    = Agent("BLUE")
	// Bystander cards belong to neither team.
	Bystander = Agent("BYSTANDER")
	Assassin  = Agent("ASSASSIN")
)

// Team returns the team an affiliation belongs to, or NoTeam for bystanders
// and the assassin.
func (a Agent) Team() Team {
	switch a {
	case RedAgent:
		return RedTeam
	case BlueAgent:
		return BlueTeam
	}
	return NoTeam
}

// Role is what type of player in the game you are.
type Role string

const (
	// NoRole is an error case.
	NoRole = Role("")
	// SpymasterRole is the seat giving clues.
	SpymasterRole = Role("SPYMASTER")
	// OperativeRole is a seat guessing codenames on the board.
	OperativeRole = Role("OPERATIVE")
)

// Card is a single cell of the board.
type Card struct {
	Codename string `json:"codename"`
	Agent    Agent  `json:"agent"`
	Revealed bool   `json:"revealed"`
}

// Clue is a word and a count from a spymaster. It's immutable once the
// match engine has accepted it.
type Clue struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
	Team  Team   `json:"team"`
}

func (c *Clue) String() string {
	return c.Word + " " + strconv.Itoa(c.Count)
}

// ParseClue parses a "word count" pair, like "muffins 3".
func ParseClue(in string) (*Clue, error) {
	ps := strings.Fields(in)
	if len(ps) != 2 {
		return nil, fmt.Errorf("malformed clue %q, want 'word count'", in)
	}
	n, err := strconv.Atoi(ps[1])
	if err != nil {
		return nil, fmt.Errorf("malformed clue count %q: %v", ps[1], err)
	}
	return &Clue{Word: NormalizeWord(ps[0]), Count: n}, nil
}

// NormalizeWord is the case normalization applied to every board word and
// clue word before it's stored or compared.
func NormalizeWord(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}
