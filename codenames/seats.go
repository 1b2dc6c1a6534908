package codenames

// Spymaster is anything that can produce a clue from the full-information
// view: a heuristic engine, a terminal prompt, or a remote player. The
// match engine depends only on this interface, never on which kind backs
// it.
type Spymaster interface {
	// GiveClue returns a clue for the given team. The word is expected to be
	// normalized and legal against the board the view came from.
	GiveClue(view []SecretCell, team Team) (*Clue, error)
}

// Guess is an operative's decision: either a board position, or a pass.
type Guess struct {
	Position int
	Pass     bool
}

// Operative is anything that can pick a guess from public information
// only.
type Operative interface {
	// Guess returns the next guess for the given clue. Implementations must
	// only consider unrevealed cells.
	Guess(view []PublicCell, clue *Clue) (Guess, error)
}
