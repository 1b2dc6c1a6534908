// Package hub fans match updates out to websocket spectators and players.
package hub

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"

	"github.com/gorilla/websocket"

	"github.com/liusenjun/Codenames-AI-game/codenames"
)

// Hub maintains the set of active connections and broadcasts messages to
// the connections watching a match.
type Hub struct {
	// Registered connections, keyed by the match they're watching.
	connections map[codenames.MatchID][]*connection

	// Messages to send to everyone watching a match.
	broadcast chan *broadcastMsg

	// Messages to send to a single player in a match.
	player chan *playerMsg

	// Register requests from the connections.
	register chan *connection

	// Unregister requests from connections.
	unregister chan *connection
}

// New creates a new Hub and starts it in a background goroutine.
func New() *Hub {
	h := &Hub{
		broadcast:   make(chan *broadcastMsg),
		player:      make(chan *playerMsg),
		register:    make(chan *connection),
		unregister:  make(chan *connection),
		connections: make(map[codenames.MatchID][]*connection),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case c := <-h.register:
			conns := h.connections[c.matchID]
			h.connections[c.matchID] = append(conns, c)
		case c := <-h.unregister:
			h.deleteConn(c)
		case m := <-h.broadcast:
			for _, c := range h.connections[m.matchID] {
				select {
				case c.send <- m.msg:
				default:
					h.deleteConn(c)
				}
			}
		case m := <-h.player:
			for _, c := range h.connections[m.matchID] {
				if c.playerID == m.playerID {
					select {
					case c.send <- m.msg:
					default:
						h.deleteConn(c)
					}
				}
			}
		}
	}
}

// deleteConn removes a connection from its match and closes its send
// channel. A connection can be unregistered more than once, e.g. when a
// slow connection is dropped during a broadcast and its own readPump
// unregisters it again later, so only the call that actually removes it
// closes the channel.
func (h *Hub) deleteConn(c *connection) {
	conns := h.connections[c.matchID]
	for i, conn := range conns {
		if conn.id == c.id {
			close(c.send)
			copy(conns[i:], conns[i+1:])
			conns[len(conns)-1] = nil
			h.connections[c.matchID] = conns[:len(conns)-1]
			return
		}
	}
}

type broadcastMsg struct {
	matchID codenames.MatchID
	msg     []byte
}

// ToMatch sends a message to everyone watching a match.
func (h *Hub) ToMatch(mID codenames.MatchID, msg interface{}) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(msg); err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}

	h.broadcast <- &broadcastMsg{
		matchID: mID,
		msg:     buf.Bytes(),
	}

	return nil
}

type playerMsg struct {
	matchID  codenames.MatchID
	playerID codenames.PlayerID
	msg      []byte
}

// ToPlayer sends a message to a single player's connections in a match.
func (h *Hub) ToPlayer(mID codenames.MatchID, pID codenames.PlayerID, msg interface{}) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(msg); err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}

	h.player <- &playerMsg{
		matchID:  mID,
		playerID: pID,
		msg:      buf.Bytes(),
	}

	return nil
}

// Register associates a websocket connection with a match and starts its
// read/write pumps.
func (h *Hub) Register(ws *websocket.Conn, mID codenames.MatchID, pID codenames.PlayerID) {
	conn := &connection{
		id:       newID(mID),
		h:        h,
		matchID:  mID,
		playerID: pID,
		send:     make(chan []byte, 256),
		ws:       ws,
	}
	h.register <- conn
	go conn.writePump()
	go conn.readPump()
}

func newID(mID codenames.MatchID) string {
	return fmt.Sprintf("%s-%d", mID, rand.Int63())
}
