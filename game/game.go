// Package game implements the turn-based match engine. It supports two
// modes of operation:
//   - Play() mode: plays a whole match out at once through the configured
//     AI seats.
//   - Single-move mode: collaborators drive individual transitions through
//     SubmitClue/SubmitGuess/Pass (for human seats) and RequestAIClue/
//     RequestAIGuess (for AI seats). A *Match can be reconstructed around a
//     stored state with just the information needed for one move.
//
// All mutating calls are synchronous and run to completion; a rejected
// action always leaves the state unchanged.
package game

import (
	"errors"
	"fmt"

	"github.com/liusenjun/Codenames-AI-game/codenames"
)

// maxTurns bounds Play() so two seats that never reveal anything can't
// spin forever trading passes.
const maxTurns = 100

// Config holds the seats for a match. A nil seat means that seat is driven
// externally through the Submit* calls instead of the RequestAI* calls.
type Config struct {
	RedSpymaster  codenames.Spymaster
	BlueSpymaster codenames.Spymaster

	RedOperative  codenames.Operative
	BlueOperative codenames.Operative
}

// Match is the authoritative state machine for one match.
type Match struct {
	state *codenames.MatchState
	cfg   *Config
}

// New validates the board and starts a match with the given team's
// spymaster to act.
func New(b *codenames.Board, startingTeam codenames.Team, cfg *Config) (*Match, error) {
	if err := validateBoard(b, startingTeam); err != nil {
		return nil, fmt.Errorf("invalid board given: %v", err)
	}
	if startingTeam != codenames.RedTeam && startingTeam != codenames.BlueTeam {
		return nil, fmt.Errorf("invalid starting team %q", startingTeam)
	}
	if cfg == nil {
		cfg = &Config{}
	}

	return &Match{
		state: &codenames.MatchState{
			StartingTeam: startingTeam,
			ActiveTeam:   startingTeam,
			Phase:        codenames.CluePhase,
			Board:        b,
		},
		cfg: cfg,
	}, nil
}

// NewForMove wraps an existing state so a single move can be applied to
// it, e.g. by the web layer after loading the state from a store. cfg may
// be nil if no AI seat will be exercised.
func NewForMove(state *codenames.MatchState, cfg *Config) *Match {
	if cfg == nil {
		cfg = &Config{}
	}
	return &Match{state: state, cfg: cfg}
}

// validateBoard checks that the board has the correct number of cards of
// each affiliation for the given starting team.
func validateBoard(b *codenames.Board, starter codenames.Team) error {
	if len(b.Cards) != codenames.Size {
		return fmt.Errorf("board must contain %d codenames, found %d", codenames.Size, len(b.Cards))
	}

	got := make(map[codenames.Agent]int)
	seen := make(map[string]struct{})
	for _, cn := range b.Cards {
		got[cn.Agent]++
		if _, ok := seen[cn.Codename]; ok {
			return fmt.Errorf("duplicate codename %q on board", cn.Codename)
		}
		seen[cn.Codename] = struct{}{}
	}

	for ag, wc := range want(starter) {
		if gc := got[ag]; gc != wc {
			return fmt.Errorf("got %d cards of type %q, want %d", gc, ag, wc)
		}
	}
	return nil
}

func want(starter codenames.Team) map[codenames.Agent]int {
	w := map[codenames.Agent]int{
		codenames.RedAgent:  8,
		codenames.BlueAgent: 8,
		codenames.Bystander: 7,
		codenames.Assassin:  1,
	}
	w[starter.Agent()]++
	return w
}

// RevealOutcome reports what a single guess (or pass) did to the match.
type RevealOutcome struct {
	Position  int             `json:"position"`
	Codename  string          `json:"codename,omitempty"`
	Agent     codenames.Agent `json:"agent,omitempty"`
	Passed    bool            `json:"passed,omitempty"`
	TurnEnded bool            `json:"turn_ended"`
	MatchOver bool            `json:"match_over"`
}

// SubmitClue validates and applies a clue for the active team. An illegal
// clue is rejected with a ClueLegalityError and the state doesn't advance.
func (m *Match) SubmitClue(word string, count int) (*codenames.Clue, error) {
	if err := m.checkPhase(codenames.CluePhase); err != nil {
		return nil, err
	}

	clue := &codenames.Clue{
		Word:  codenames.NormalizeWord(word),
		Count: count,
		Team:  m.state.ActiveTeam,
	}
	if err := codenames.ValidateClue(clue, m.state.Board); err != nil {
		return nil, err
	}

	m.applyClue(clue)
	return clue, nil
}

// RequestAIClue asks the active team's configured spymaster for a clue and
// applies it. The seat contract guarantees legality; a violation is a
// defect and is surfaced as an error rather than swallowed.
func (m *Match) RequestAIClue() (*codenames.Clue, error) {
	if err := m.checkPhase(codenames.CluePhase); err != nil {
		return nil, err
	}

	team := m.state.ActiveTeam
	sm := m.spymasterFor(team)
	if sm == nil {
		return nil, fmt.Errorf("no spymaster seat configured for %q", team)
	}

	clue, err := sm.GiveClue(m.state.Board.SecretView(), team)
	if err != nil {
		return nil, fmt.Errorf("GiveClue on %q: %w", team, err)
	}
	clue.Team = team
	if err := codenames.ValidateClue(clue, m.state.Board); err != nil {
		return nil, fmt.Errorf("spymaster seat for %q returned an illegal clue: %w", team, err)
	}

	m.applyClue(clue)
	return clue, nil
}

func (m *Match) applyClue(clue *codenames.Clue) {
	m.state.Clue = clue
	// The optional extra guess is part of the bound from the start; a
	// count-0 clue still grants a single guess.
	m.state.GuessesLeft = clue.Count + 1
	m.state.GuessesUsed = 0
	m.state.Phase = codenames.GuessPhase
	m.state.History = append(m.state.History, codenames.Event{
		Kind: codenames.EventClueGiven,
		Team: clue.Team,
		Clue: clue,
	})
}

// SubmitGuess reveals the card at the given position for the active team
// and resolves the turn. Invalid positions and already-revealed cards are
// rejected without changing any state.
func (m *Match) SubmitGuess(pos int) (*RevealOutcome, error) {
	if err := m.checkPhase(codenames.GuessPhase); err != nil {
		return nil, err
	}

	card, err := m.state.Board.Reveal(pos)
	if err != nil {
		return nil, err
	}

	team := m.state.ActiveTeam
	m.state.GuessesUsed++
	m.state.History = append(m.state.History, codenames.Event{
		Kind:     codenames.EventCardGuessed,
		Team:     team,
		Position: pos,
		Codename: card.Codename,
		Agent:    card.Agent,
	})

	out := &RevealOutcome{Position: pos, Codename: card.Codename, Agent: card.Agent}
	switch {
	case card.Agent == codenames.Assassin:
		m.finish(team.Other(), codenames.AssassinRevealed)
		out.TurnEnded, out.MatchOver = true, true
	case card.Agent == team.Agent():
		m.state.GuessesLeft--
		if m.state.Board.Remaining(team) == 0 {
			m.finish(team, codenames.AllAgentsFound)
			out.TurnEnded, out.MatchOver = true, true
		} else if m.state.GuessesLeft == 0 {
			m.endTurn(false)
			out.TurnEnded = true
		}
	case card.Agent == team.Other().Agent():
		// Revealing the opposing team's last agent wins the match for them.
		if m.state.Board.Remaining(team.Other()) == 0 {
			m.finish(team.Other(), codenames.AllAgentsFound)
			out.TurnEnded, out.MatchOver = true, true
		} else {
			m.endTurn(false)
			out.TurnEnded = true
		}
	default:
		// A bystander ends the turn no matter how many guesses were left.
		m.endTurn(false)
		out.TurnEnded = true
	}
	return out, nil
}

// RequestAIGuess asks the active team's configured operative for a guess
// and applies it. The operative may pass. By construction it only ranks
// unrevealed positions, so a reveal failure here is a defect.
func (m *Match) RequestAIGuess() (*RevealOutcome, error) {
	if err := m.checkPhase(codenames.GuessPhase); err != nil {
		return nil, err
	}

	team := m.state.ActiveTeam
	op := m.operativeFor(team)
	if op == nil {
		return nil, fmt.Errorf("no operative seat configured for %q", team)
	}

	g, err := op.Guess(m.state.Board.PublicView(), m.state.Clue)
	if err != nil {
		return nil, fmt.Errorf("Guess on %q: %w", team, err)
	}
	if g.Pass {
		m.endTurn(true)
		return &RevealOutcome{Position: -1, Passed: true, TurnEnded: true}, nil
	}

	out, err := m.SubmitGuess(g.Position)
	if err != nil {
		return nil, fmt.Errorf("operative seat for %q produced an invalid guess: %w", team, err)
	}
	return out, nil
}

// Pass ends the active team's turn without a guess.
func (m *Match) Pass() error {
	if err := m.checkPhase(codenames.GuessPhase); err != nil {
		return err
	}
	m.endTurn(true)
	return nil
}

// endTurn hands the match to the other team's spymaster. TURN_OVER isn't
// an observable phase; the transition to the next clue phase is automatic.
func (m *Match) endTurn(passed bool) {
	team := m.state.ActiveTeam
	m.state.History = append(m.state.History, codenames.Event{
		Kind:   codenames.EventTurnEnded,
		Team:   team,
		Passed: passed,
	})
	m.state.ActiveTeam = team.Other()
	m.state.Phase = codenames.CluePhase
	m.state.Clue = nil
	m.state.GuessesLeft = 0
	m.state.GuessesUsed = 0
}

func (m *Match) finish(winner codenames.Team, reason codenames.Reason) {
	m.state.Result = &codenames.Result{Winner: winner, Reason: reason}
	m.state.Phase = codenames.OverPhase
	m.state.Clue = nil
	m.state.GuessesLeft = 0
	m.state.History = append(m.state.History, codenames.Event{
		Kind:   codenames.EventMatchEnded,
		Team:   winner,
		Result: m.state.Result,
	})
}

func (m *Match) checkPhase(want codenames.Phase) error {
	if m.state.Result != nil || m.state.Phase == codenames.OverPhase {
		return codenames.ErrMatchOver
	}
	if m.state.Phase != want {
		return fmt.Errorf("match is in phase %q, not %q: %w", m.state.Phase, want, codenames.ErrWrongPhase)
	}
	return nil
}

func (m *Match) spymasterFor(t codenames.Team) codenames.Spymaster {
	if t == codenames.BlueTeam {
		return m.cfg.BlueSpymaster
	}
	return m.cfg.RedSpymaster
}

func (m *Match) operativeFor(t codenames.Team) codenames.Operative {
	if t == codenames.BlueTeam {
		return m.cfg.BlueOperative
	}
	return m.cfg.RedOperative
}

// State returns a deep copy of the full match state.
func (m *Match) State() *codenames.MatchState {
	return m.state.Clone()
}

// Result returns the terminal outcome, or nil while the match is live.
func (m *Match) Result() *codenames.Result {
	if m.state.Result == nil {
		return nil
	}
	r := *m.state.Result
	return &r
}

// SecretBoardView is the spymaster observer. Never hand it to an operative
// collaborator.
func (m *Match) SecretBoardView() []codenames.SecretCell {
	return m.state.Board.SecretView()
}

// PublicBoardView is the operative observer.
func (m *Match) PublicBoardView() []codenames.PublicCell {
	return m.state.Board.PublicView()
}

// History returns a copy of the append-only event log.
func (m *Match) History() []codenames.Event {
	out := make([]codenames.Event, len(m.state.History))
	copy(out, m.state.History)
	return out
}

// Play runs the whole match through the configured seats and returns the
// result. All four seats must be configured.
func (m *Match) Play() (*codenames.Result, error) {
	for turns := 0; m.state.Result == nil; turns++ {
		if turns >= maxTurns {
			return nil, errors.New("match exceeded maximum number of turns")
		}
		if _, err := m.RequestAIClue(); err != nil {
			return nil, fmt.Errorf("error requesting clue: %w", err)
		}
		for m.state.Phase == codenames.GuessPhase {
			if _, err := m.RequestAIGuess(); err != nil {
				return nil, fmt.Errorf("error requesting guess: %w", err)
			}
		}
	}
	return m.Result(), nil
}
