package web

import (
	"encoding/json"

	"github.com/liusenjun/Codenames-AI-game/codenames"
)

// update is the message broadcast to a match's websocket subscribers after
// every applied move. The board is always the public view; spymasters
// refetch the match for the secret one.
type update struct {
	MatchID     codenames.MatchID      `json:"match_id"`
	ActiveTeam  codenames.Team         `json:"active_team"`
	Phase       codenames.Phase        `json:"phase"`
	Clue        *codenames.Clue        `json:"clue,omitempty"`
	GuessesLeft int                    `json:"guesses_left"`
	Result      *codenames.Result      `json:"result,omitempty"`
	Board       []codenames.PublicCell `json:"board"`
}

func (u *update) MarshalJSON() ([]byte, error) {
	type alias update
	return withAction("STATE_UPDATE", (*alias)(u))
}

type embed interface{}

func withAction(action string, msg interface{}) ([]byte, error) {
	toMarshal := struct {
		embed
		Action string `json:"action"`
	}{msg, action}

	return json.Marshal(toMarshal)
}
