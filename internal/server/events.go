package server

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/Sukanya41455/AccentChanger/internal/observability"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// The UI shell is served from the same origin in production; allow
		// all origins during development.
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// handleEvents streams state snapshots to the UI shell over a websocket. The
// shell re-renders on every message; each session transition dispatches one.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}

	logger := observability.GetLogger().With().
		Str("session_id", sess.ID()).Logger()

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn().Err(err).Msg("Websocket upgrade failed")
		return
	}
	defer conn.Close()

	snapshots, cancel := sess.Watch()
	defer cancel()

	// Read pump: we never expect client messages, but reading is the only
	// way to notice the peer going away.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	// Initial render so the shell has state before the first transition
	if err := conn.WriteJSON(sess.Snapshot()); err != nil {
		return
	}

	for {
		select {
		case snap, ok := <-snapshots:
			if !ok {
				// Session ended
				return
			}
			if err := conn.WriteJSON(snap); err != nil {
				logger.Debug().Err(err).Msg("Watcher write failed, closing")
				return
			}
		case <-closed:
			return
		}
	}
}
