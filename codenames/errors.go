package codenames

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPosition means a guess named a position that isn't on the
	// board.
	ErrInvalidPosition = errors.New("codenames: invalid board position")
	// ErrAlreadyRevealed means a guess named a card that was already turned
	// over.
	ErrAlreadyRevealed = errors.New("codenames: card already revealed")
	// ErrInsufficientWords means the word pool can't fill a board.
	ErrInsufficientWords = errors.New("codenames: not enough words in pool")
	// ErrMatchOver means a clue, guess, or pass arrived after the match had a
	// winner.
	ErrMatchOver = errors.New("codenames: match is already over")
	// ErrWrongPhase means an action arrived in a turn phase that doesn't
	// accept it, like a clue during guessing.
	ErrWrongPhase = errors.New("codenames: action not allowed in current phase")

	ErrMatchNotFound  = errors.New("codenames: match not found")
	ErrPlayerNotFound = errors.New("codenames: player not found")
)

// ClueLegalityError describes why a clue was rejected. Rejected clues never
// advance the match state, the caller is expected to re-prompt.
type ClueLegalityError struct {
	Word   string
	Reason string
}

func (e *ClueLegalityError) Error() string {
	return fmt.Sprintf("illegal clue %q: %s", e.Word, e.Reason)
}
