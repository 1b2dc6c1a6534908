package hub

import (
	"time"

	"github.com/gorilla/websocket"

	"github.com/liusenjun/Codenames-AI-game/codenames"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second
	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second
	// Send pings to peer with this period, must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10
	// Maximum inbound message size. Clients don't send anything meaningful,
	// so this is tiny.
	maxMessageSize = 512
)

// connection is one websocket subscriber of a match.
type connection struct {
	id       string
	h        *Hub
	matchID  codenames.MatchID
	playerID codenames.PlayerID

	// send is the buffered channel of outbound messages.
	send chan []byte
	ws   *websocket.Conn
}

// readPump drains (and discards) inbound messages so pings and close
// frames are processed.
func (c *connection) readPump() {
	defer func() {
		c.h.unregister <- c
		c.ws.Close()
	}()
	c.ws.SetReadLimit(maxMessageSize)
	c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.ws.ReadMessage(); err != nil {
			return
		}
	}
}

// writePump pushes hub messages and periodic pings to the peer.
func (c *connection) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.ws.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.ws.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
