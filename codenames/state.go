package codenames

// Phase is which kind of action the match engine will accept next.
type Phase string

const (
	// NoPhase is an error case.
	NoPhase = Phase("")
	// CluePhase means the active team's spymaster acts next.
	CluePhase = Phase("CLUE")
	// GuessPhase means the active team's operatives act next.
	GuessPhase = Phase("GUESS")
	// OverPhase means the match has a result and accepts nothing further.
	OverPhase = Phase("OVER")
)

// Reason is why a match ended.
type Reason string

const (
	AllAgentsFound   = Reason("ALL_AGENTS_FOUND")
	AssassinRevealed = Reason("ASSASSIN_REVEALED")
)

// Result is the terminal outcome of a match. It's set exactly once.
type Result struct {
	Winner Team   `json:"winner"`
	Reason Reason `json:"reason"`
}

// EventKind discriminates history log entries.
type EventKind string

const (
	EventClueGiven   = EventKind("CLUE_GIVEN")
	EventCardGuessed = EventKind("CARD_GUESSED")
	EventTurnEnded   = EventKind("TURN_ENDED")
	EventMatchEnded  = EventKind("MATCH_ENDED")
)

// Event is one entry of a match's append-only history log.
type Event struct {
	Kind EventKind `json:"kind"`
	Team Team      `json:"team,omitempty"`

	// Set for CLUE_GIVEN.
	Clue *Clue `json:"clue,omitempty"`

	// Set for CARD_GUESSED.
	Position int    `json:"position,omitempty"`
	Codename string `json:"codename,omitempty"`
	Agent    Agent  `json:"agent,omitempty"`

	// Set for TURN_ENDED when the team passed instead of running out of
	// guesses or revealing a wrong card.
	Passed bool `json:"passed,omitempty"`

	// Set for MATCH_ENDED.
	Result *Result `json:"result,omitempty"`
}

// MatchState is the full serializable state of a match. The match engine in
// the game package is the only thing that should mutate one.
type MatchState struct {
	StartingTeam Team  `json:"starting_team"`
	ActiveTeam   Team  `json:"active_team"`
	Phase        Phase `json:"phase"`

	// Clue is the clue being guessed against, nil outside GuessPhase.
	Clue *Clue `json:"clue,omitempty"`
	// GuessesLeft is the upper bound on further guesses this turn,
	// initialized to clue count + 1.
	GuessesLeft int `json:"guesses_left"`
	// GuessesUsed counts guesses already made this turn.
	GuessesUsed int `json:"guesses_used"`

	Board   *Board  `json:"board"`
	Result  *Result `json:"result,omitempty"`
	History []Event `json:"history,omitempty"`
}

// Clone returns a deep copy of the state.
func (ms *MatchState) Clone() *MatchState {
	if ms == nil {
		return nil
	}
	c := *ms
	c.Board = ms.Board.Clone()
	if ms.Clue != nil {
		cl := *ms.Clue
		c.Clue = &cl
	}
	if ms.Result != nil {
		r := *ms.Result
		c.Result = &r
	}
	if ms.History != nil {
		c.History = make([]Event, len(ms.History))
		copy(c.History, ms.History)
	}
	return &c
}
