package codenames

import "fmt"

// Board is the 5x5 grid of cards. The zeroth card is the top-left, the
// fourth the top-right, and the twenty-fourth the bottom-right. Cards keep
// their agent assignment for the whole match; only the Revealed flag ever
// changes, and only from false to true.
type Board struct {
	Cards []Card `json:"cards"`
}

// SecretCell is one cell of the spymaster's full-information view.
type SecretCell struct {
	Position int    `json:"position"`
	Codename string `json:"codename"`
	Agent    Agent  `json:"agent"`
	Revealed bool   `json:"revealed"`
}

// PublicCell is one cell of the operative's view. Agent is UnknownAgent
// until the card has been revealed.
type PublicCell struct {
	Position int    `json:"position"`
	Codename string `json:"codename"`
	Revealed bool   `json:"revealed"`
	Agent    Agent  `json:"agent,omitempty"`
}

// SecretView returns the spymaster's view, with every affiliation visible.
func (b *Board) SecretView() []SecretCell {
	out := make([]SecretCell, len(b.Cards))
	for i, c := range b.Cards {
		out[i] = SecretCell{
			Position: i,
			Codename: c.Codename,
			Agent:    c.Agent,
			Revealed: c.Revealed,
		}
	}
	return out
}

// PublicView returns the operative's view, where an affiliation is visible
// only once the card has been revealed.
func (b *Board) PublicView() []PublicCell {
	out := make([]PublicCell, len(b.Cards))
	for i, c := range b.Cards {
		cell := PublicCell{
			Position: i,
			Codename: c.Codename,
			Revealed: c.Revealed,
		}
		if c.Revealed {
			cell.Agent = c.Agent
		}
		out[i] = cell
	}
	return out
}

// Reveal turns over the card at the given position and returns it. The
// board is left unchanged if the position is out of range or the card was
// already revealed.
func (b *Board) Reveal(pos int) (Card, error) {
	if pos < 0 || pos >= len(b.Cards) {
		return Card{}, fmt.Errorf("position %d: %w", pos, ErrInvalidPosition)
	}
	if b.Cards[pos].Revealed {
		return Card{}, fmt.Errorf("%q at position %d: %w", b.Cards[pos].Codename, pos, ErrAlreadyRevealed)
	}
	b.Cards[pos].Revealed = true
	return b.Cards[pos], nil
}

// Remaining counts the unrevealed cards belonging to the given team.
func (b *Board) Remaining(t Team) int {
	n := 0
	for _, c := range b.Cards {
		if !c.Revealed && c.Agent == t.Agent() {
			n++
		}
	}
	return n
}

// Codenames returns every word on the board, revealed or not, in position
// order.
func (b *Board) Codenames() []string {
	out := make([]string, len(b.Cards))
	for i, c := range b.Cards {
		out[i] = c.Codename
	}
	return out
}

// PositionOf returns the position of the card with the given word, or -1.
func (b *Board) PositionOf(word string) int {
	word = NormalizeWord(word)
	for i, c := range b.Cards {
		if c.Codename == word {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	if b == nil {
		return nil
	}
	cards := make([]Card, len(b.Cards))
	copy(cards, b.Cards)
	return &Board{Cards: cards}
}
