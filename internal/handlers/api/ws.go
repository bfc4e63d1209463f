package api

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Session auth guards the upgrade; cross-origin dashboards are expected
	CheckOrigin: func(_ *http.Request) bool { return true },
}

// wsCommand is what a connected dashboard sends to manage its guild
// subscriptions
type wsCommand struct {
	Action  string `json:"action"`
	GuildID string `json:"guild_id"`
}

// wsConn tracks one dashboard connection's private subscription list
type wsConn struct {
	mu     sync.Mutex
	guilds map[string]struct{}
}

func (c *wsConn) subscribe(guildID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.guilds[guildID] = struct{}{}
}

func (c *wsConn) unsubscribe(guildID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.guilds, guildID)
}

func (c *wsConn) subscribed(guildID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.guilds[guildID]
	return ok
}

// handleWS upgrades the connection and forwards events for subscribed
// guilds. Each connection filters independently; nothing is shared across
// connections.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	if _, err := s.resolveSession(r); err != nil {
		respondError(w, errUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}

	sub := s.eventBus.Subscribe()
	state := &wsConn{guilds: make(map[string]struct{})}

	// Reader: subscription commands until the peer goes away
	go func() {
		defer sub.Close()
		defer conn.Close()

		for {
			var cmd wsCommand
			if err := conn.ReadJSON(&cmd); err != nil {
				return
			}

			switch cmd.Action {
			case "subscribe":
				if cmd.GuildID != "" {
					state.subscribe(cmd.GuildID)
				}
			case "unsubscribe":
				state.unsubscribe(cmd.GuildID)
			}
		}
	}()

	// Writer: forward events the connection asked for
	for ev := range sub.Events() {
		if !state.subscribed(ev.EventGuildID()) {
			continue
		}

		if err := conn.WriteJSON(ev); err != nil {
			sub.Close()
			conn.Close()
			return
		}
	}
}
