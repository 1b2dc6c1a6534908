// Package web exposes the match engine to browser clients: cookie-authed
// players, match lifecycle endpoints, and websocket push of state changes.
// It owns no game rules, every rule decision is delegated to the game
// package.
package web

import (
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/liusenjun/Codenames-AI-game/ai"
	"github.com/liusenjun/Codenames-AI-game/boardgen"
	"github.com/liusenjun/Codenames-AI-game/codenames"
	"github.com/liusenjun/Codenames-AI-game/consensus"
	"github.com/liusenjun/Codenames-AI-game/dict"
	"github.com/liusenjun/Codenames-AI-game/game"
	"github.com/liusenjun/Codenames-AI-game/hub"
)

type Srv struct {
	sc       *securecookie.SecureCookie
	h        *hub.Hub
	mux      *mux.Router
	db       codenames.DB
	r        *rand.Rand
	ix       ai.Index
	dict     *dict.Dictionary
	votes    *consensus.Guesser
	log      zerolog.Logger
	upgrader websocket.Upgrader
}

// New returns an initialized server. The dictionary may be nil, in which
// case human clue words aren't checked against one.
func New(db codenames.DB, r *rand.Rand, sc *securecookie.SecureCookie, ix ai.Index, d *dict.Dictionary, logger zerolog.Logger) *Srv {
	s := &Srv{
		sc:    sc,
		h:     hub.New(),
		db:    db,
		r:     r,
		ix:    ix,
		dict:  d,
		votes: consensus.New(),
		log:   logger,
	}
	s.mux = s.initMux()
	return s
}

func (s *Srv) initMux() *mux.Router {
	m := mux.NewRouter()
	// New player.
	m.HandleFunc("/api/player", s.serveCreatePlayer).Methods("POST")
	// Load player.
	m.HandleFunc("/api/player", s.servePlayer).Methods("GET")
	// New match.
	m.HandleFunc("/api/match", s.serveCreateMatch).Methods("POST")
	// Open matches.
	m.HandleFunc("/api/matches", s.serveOpenMatches).Methods("GET")
	// Get match. Spymasters of the match get the secret view.
	m.HandleFunc("/api/match/{id}", s.serveMatch).Methods("GET")
	// Join match.
	m.HandleFunc("/api/match/{id}/join", s.serveJoinMatch).Methods("POST")
	// Assign a seat, creator only.
	m.HandleFunc("/api/match/{id}/assign", s.serveAssignSeat).Methods("POST")
	// Start match, creator only.
	m.HandleFunc("/api/match/{id}/start", s.serveStartMatch).Methods("POST")
	// Submit a clue to a match.
	m.HandleFunc("/api/match/{id}/clue", s.serveClue).Methods("POST")
	// Vote a guess into a match.
	m.HandleFunc("/api/match/{id}/guess", s.serveGuess).Methods("POST")
	// Pass the rest of the turn.
	m.HandleFunc("/api/match/{id}/pass", s.servePass).Methods("POST")
	// Drive the active AI seat one move, creator only.
	m.HandleFunc("/api/match/{id}/ai-move", s.serveAIMove).Methods("POST")
	// Match history.
	m.HandleFunc("/api/match/{id}/history", s.serveHistory).Methods("GET")

	// WebSocket handler for match updates.
	m.HandleFunc("/api/match/{id}/ws", s.serveData).Methods("GET")

	return m
}

func (s *Srv) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.log.Debug().Str("method", r.Method).Str("path", r.URL.Path).Msg("request")
	s.mux.ServeHTTP(w, r)
}

func (s *Srv) serveCreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		http.Error(w, "No name given", http.StatusBadRequest)
		return
	}

	id, err := s.db.NewPlayer(&codenames.Player{Name: name})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	encoded, err := s.sc.Encode("auth", id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:  "Authorization",
		Value: encoded,
		Path:  "/",
	})

	jsonResp(w, struct {
		ID string `json:"id"`
	}{string(id)})
}

func (s *Srv) servePlayer(w http.ResponseWriter, r *http.Request) {
	p := s.requirePlayer(w, r)
	if p == nil {
		return
	}
	jsonResp(w, p)
}

func (s *Srv) serveCreateMatch(w http.ResponseWriter, r *http.Request) {
	p := s.requirePlayer(w, r)
	if p == nil {
		return
	}

	starter := codenames.RedTeam
	if s.r.Intn(2) == 0 {
		starter = codenames.BlueTeam
	}

	b, err := boardgen.New(codenames.DefaultWords, starter, s.r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	m, err := game.New(b, starter, nil)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	id, err := s.db.NewMatch(&codenames.Match{
		CreatedBy: p.ID,
		State:     m.State(),
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	jsonResp(w, struct {
		ID string `json:"id"`
	}{string(id)})
}

func (s *Srv) serveOpenMatches(w http.ResponseWriter, r *http.Request) {
	mIDs, err := s.db.OpenMatches()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	jsonResp(w, mIDs)
}

// matchResponse is the per-requester rendering of a match: the board is
// the secret view only for the match's spymasters, or once the match is
// over.
type matchResponse struct {
	ID          codenames.MatchID     `json:"id"`
	Status      codenames.MatchStatus `json:"status"`
	ActiveTeam  codenames.Team        `json:"active_team"`
	Phase       codenames.Phase       `json:"phase"`
	Clue        *codenames.Clue       `json:"clue,omitempty"`
	GuessesLeft int                   `json:"guesses_left"`
	Result      *codenames.Result     `json:"result,omitempty"`
	Board       interface{}           `json:"board"`
}

func (s *Srv) serveMatch(w http.ResponseWriter, r *http.Request) {
	p := s.requirePlayer(w, r)
	if p == nil {
		return
	}
	m := s.loadMatch(w, r)
	if m == nil {
		return
	}

	resp := &matchResponse{
		ID:          m.ID,
		Status:      m.Status,
		ActiveTeam:  m.State.ActiveTeam,
		Phase:       m.State.Phase,
		Clue:        m.State.Clue,
		GuessesLeft: m.State.GuessesLeft,
		Result:      m.State.Result,
	}

	seat, _ := s.seatFor(m.ID, p.ID)
	if m.Status == codenames.Finished || (seat != nil && seat.Role == codenames.SpymasterRole) {
		resp.Board = m.State.Board.SecretView()
	} else {
		resp.Board = m.State.Board.PublicView()
	}
	jsonResp(w, resp)
}

func (s *Srv) serveJoinMatch(w http.ResponseWriter, r *http.Request) {
	p := s.requirePlayer(w, r)
	if p == nil {
		return
	}
	m := s.loadMatch(w, r)
	if m == nil {
		return
	}

	if m.Status != codenames.Open {
		http.Error(w, "match can no longer be joined", http.StatusConflict)
		return
	}
	if err := s.db.JoinMatch(m.ID, p.ID); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	jsonResp(w, success{true})
}

func (s *Srv) serveAssignSeat(w http.ResponseWriter, r *http.Request) {
	p := s.requirePlayer(w, r)
	if p == nil {
		return
	}
	m := s.loadMatch(w, r)
	if m == nil {
		return
	}
	if m.CreatedBy != p.ID {
		http.Error(w, "only the match creator can assign seats", http.StatusForbidden)
		return
	}

	var req struct {
		PlayerID string         `json:"player_id"`
		Team     codenames.Team `json:"team"`
		Role     codenames.Role `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	err := s.db.AssignSeat(m.ID, &codenames.SeatAssignment{
		PlayerID: codenames.PlayerID(req.PlayerID),
		Team:     req.Team,
		Role:     req.Role,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	jsonResp(w, success{true})
}

func (s *Srv) serveStartMatch(w http.ResponseWriter, r *http.Request) {
	p := s.requirePlayer(w, r)
	if p == nil {
		return
	}
	m := s.loadMatch(w, r)
	if m == nil {
		return
	}
	if m.CreatedBy != p.ID {
		http.Error(w, "only the match creator can start the match", http.StatusForbidden)
		return
	}
	if m.Status != codenames.Open {
		http.Error(w, "match has already started", http.StatusConflict)
		return
	}

	seats, err := s.db.PlayersInMatch(m.ID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := seatsCovered(seats); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := s.db.StartMatch(m.ID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.broadcastState(m.ID)
	jsonResp(w, success{true})
}

// seatsCovered checks that every team has at least a spymaster and an
// operative.
func seatsCovered(seats []*codenames.SeatAssignment) error {
	have := make(map[codenames.Team]map[codenames.Role]bool)
	for _, sa := range seats {
		if !sa.Assigned {
			continue
		}
		if have[sa.Team] == nil {
			have[sa.Team] = make(map[codenames.Role]bool)
		}
		have[sa.Team][sa.Role] = true
	}
	for _, t := range []codenames.Team{codenames.RedTeam, codenames.BlueTeam} {
		for _, role := range []codenames.Role{codenames.SpymasterRole, codenames.OperativeRole} {
			if !have[t][role] {
				return errors.New("every team needs a spymaster and an operative before starting")
			}
		}
	}
	return nil
}

func (s *Srv) serveClue(w http.ResponseWriter, r *http.Request) {
	p := s.requirePlayer(w, r)
	if p == nil {
		return
	}
	m := s.loadPlayingMatch(w, r)
	if m == nil {
		return
	}

	seat, err := s.seatFor(m.ID, p.ID)
	if err != nil || seat == nil || seat.Role != codenames.SpymasterRole || seat.Team != m.State.ActiveTeam {
		http.Error(w, "it isn't your turn to give a clue", http.StatusForbidden)
		return
	}

	var req struct {
		Word  string `json:"word"`
		Count int    `json:"count"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if s.dict != nil && !s.dict.Valid(req.Word) {
		http.Error(w, "clue isn't a dictionary word", http.StatusBadRequest)
		return
	}

	eng := game.NewForMove(m.State, nil)
	clue, err := eng.SubmitClue(req.Word, req.Count)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	if err := s.saveAndBroadcast(m.ID, eng); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	jsonResp(w, clue)
}

func (s *Srv) serveGuess(w http.ResponseWriter, r *http.Request) {
	p := s.requirePlayer(w, r)
	if p == nil {
		return
	}
	m := s.loadPlayingMatch(w, r)
	if m == nil {
		return
	}

	seat, err := s.seatFor(m.ID, p.ID)
	if err != nil || seat == nil || seat.Role != codenames.OperativeRole || seat.Team != m.State.ActiveTeam {
		http.Error(w, "it isn't your turn to guess", http.StatusForbidden)
		return
	}

	if m.State.Phase != codenames.GuessPhase {
		writeEngineError(w, codenames.ErrWrongPhase)
		return
	}

	var req struct {
		Position int `json:"position"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.votes.RecordVote(m.ID, p.ID, req.Position)
	voters, err := s.teamOperatives(m.ID, m.State.ActiveTeam)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	pos, ok := s.votes.ReachedConsensus(m.ID, voters)
	if !ok {
		jsonResp(w, struct {
			Status string `json:"status"`
		}{"vote recorded"})
		return
	}
	s.votes.Clear(m.ID)

	eng := game.NewForMove(m.State, nil)
	out, err := eng.SubmitGuess(pos)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	if err := s.saveAndBroadcast(m.ID, eng); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	jsonResp(w, out)
}

func (s *Srv) servePass(w http.ResponseWriter, r *http.Request) {
	p := s.requirePlayer(w, r)
	if p == nil {
		return
	}
	m := s.loadPlayingMatch(w, r)
	if m == nil {
		return
	}

	seat, err := s.seatFor(m.ID, p.ID)
	if err != nil || seat == nil || seat.Role != codenames.OperativeRole || seat.Team != m.State.ActiveTeam {
		http.Error(w, "it isn't your turn to pass", http.StatusForbidden)
		return
	}

	eng := game.NewForMove(m.State, nil)
	if err := eng.Pass(); err != nil {
		writeEngineError(w, err)
		return
	}

	if err := s.saveAndBroadcast(m.ID, eng); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	jsonResp(w, success{true})
}

// serveAIMove runs the active seat as an AI for one move. It's how matches
// with AI-controlled seats advance: the creator's client calls it whenever
// the active seat is marked as a bot.
func (s *Srv) serveAIMove(w http.ResponseWriter, r *http.Request) {
	p := s.requirePlayer(w, r)
	if p == nil {
		return
	}
	m := s.loadPlayingMatch(w, r)
	if m == nil {
		return
	}
	if m.CreatedBy != p.ID {
		http.Error(w, "only the match creator can drive AI seats", http.StatusForbidden)
		return
	}

	sm := ai.NewSpymaster(s.ix)
	op := ai.NewOperative(s.ix)
	eng := game.NewForMove(m.State, &game.Config{
		RedSpymaster:  sm,
		BlueSpymaster: sm,
		RedOperative:  op,
		BlueOperative: op,
	})

	var resp interface{}
	var err error
	switch m.State.Phase {
	case codenames.CluePhase:
		resp, err = eng.RequestAIClue()
	case codenames.GuessPhase:
		resp, err = eng.RequestAIGuess()
	default:
		http.Error(w, "match is over", http.StatusConflict)
		return
	}
	if err != nil {
		writeEngineError(w, err)
		return
	}

	if err := s.saveAndBroadcast(m.ID, eng); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	jsonResp(w, resp)
}

func (s *Srv) serveHistory(w http.ResponseWriter, r *http.Request) {
	m := s.loadMatch(w, r)
	if m == nil {
		return
	}
	jsonResp(w, m.State.History)
}

func (s *Srv) serveData(w http.ResponseWriter, r *http.Request) {
	p, err := s.loadPlayer(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	m := s.loadMatch(w, r)
	if m == nil {
		return
	}

	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Err(err).Msg("websocket upgrade failed")
		return
	}

	var pID codenames.PlayerID
	if p != nil {
		pID = p.ID
	}
	s.h.Register(ws, m.ID, pID)
}

func (s *Srv) saveAndBroadcast(mID codenames.MatchID, eng *game.Match) error {
	st := eng.State()
	// Leaving the guess phase invalidates any pending guess votes,
	// whatever move caused it.
	if st.Phase != codenames.GuessPhase {
		s.votes.Clear(mID)
	}
	if err := s.db.UpdateState(mID, st); err != nil {
		return err
	}
	s.broadcastState(mID)
	return nil
}

func (s *Srv) broadcastState(mID codenames.MatchID) {
	m, err := s.db.Match(mID)
	if err != nil {
		s.log.Err(err).Str("match_id", string(mID)).Msg("failed to load match for broadcast")
		return
	}
	err = s.h.ToMatch(mID, &update{
		MatchID:     mID,
		ActiveTeam:  m.State.ActiveTeam,
		Phase:       m.State.Phase,
		Clue:        m.State.Clue,
		GuessesLeft: m.State.GuessesLeft,
		Result:      m.State.Result,
		Board:       m.State.Board.PublicView(),
	})
	if err != nil {
		s.log.Err(err).Str("match_id", string(mID)).Msg("failed to broadcast match update")
	}
}

func (s *Srv) teamOperatives(mID codenames.MatchID, team codenames.Team) (int, error) {
	seats, err := s.db.PlayersInMatch(mID)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, sa := range seats {
		if sa.Assigned && sa.Team == team && sa.Role == codenames.OperativeRole {
			n++
		}
	}
	return n, nil
}

func (s *Srv) seatFor(mID codenames.MatchID, pID codenames.PlayerID) (*codenames.SeatAssignment, error) {
	seats, err := s.db.PlayersInMatch(mID)
	if err != nil {
		return nil, err
	}
	for _, sa := range seats {
		if sa.PlayerID == pID && sa.Assigned {
			return sa, nil
		}
	}
	return nil, nil
}

func (s *Srv) loadMatch(w http.ResponseWriter, r *http.Request) *codenames.Match {
	mID := codenames.MatchID(mux.Vars(r)["id"])
	m, err := s.db.Match(mID)
	if err == codenames.ErrMatchNotFound {
		http.Error(w, "match not found", http.StatusNotFound)
		return nil
	} else if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return nil
	}
	return m
}

func (s *Srv) loadPlayingMatch(w http.ResponseWriter, r *http.Request) *codenames.Match {
	m := s.loadMatch(w, r)
	if m == nil {
		return nil
	}
	if m.Status != codenames.Playing {
		http.Error(w, "match isn't in progress", http.StatusConflict)
		return nil
	}
	return m
}

// requirePlayer loads the authenticated player or writes a 401.
func (s *Srv) requirePlayer(w http.ResponseWriter, r *http.Request) *codenames.Player {
	p, err := s.loadPlayer(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return nil
	}
	if p == nil {
		http.Error(w, "Not logged in", http.StatusUnauthorized)
		return nil
	}
	return p
}

func (s *Srv) loadPlayer(r *http.Request) (*codenames.Player, error) {
	c, err := r.Cookie("Authorization")
	if err == http.ErrNoCookie {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var pID codenames.PlayerID
	if err := s.sc.Decode("auth", c.Value, &pID); err != nil {
		// If we can't parse it, assume it's an old auth cookie and treat the
		// caller as not logged in.
		return nil, nil
	}

	p, err := s.db.Player(pID)
	if err == codenames.ErrPlayerNotFound {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	return p, nil
}

// writeEngineError maps engine rejections to status codes. Every one of
// these leaves the match state untouched, the client just re-prompts.
func writeEngineError(w http.ResponseWriter, err error) {
	var legality *codenames.ClueLegalityError
	switch {
	case errors.As(err, &legality),
		errors.Is(err, codenames.ErrInvalidPosition),
		errors.Is(err, codenames.ErrAlreadyRevealed):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, codenames.ErrMatchOver),
		errors.Is(err, codenames.ErrWrongPhase):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

type success struct {
	Success bool `json:"success"`
}

func jsonResp(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
