// Package server exposes the UI action surface over HTTP: one endpoint per
// session transition, plus the synthesized audio artifact and a websocket
// push channel the shell re-renders from.
package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Sukanya41455/AccentChanger/internal/config"
	"github.com/Sukanya41455/AccentChanger/internal/session"
	"github.com/Sukanya41455/AccentChanger/internal/stt"
	"github.com/Sukanya41455/AccentChanger/internal/tts"
)

// SynthesizerFactory builds a synthesis client on demand. Construction is
// deferred to the convert action so a missing credential surfaces as that
// action's failure status instead of killing the process at startup.
type SynthesizerFactory func(ctx context.Context) (tts.Synthesizer, error)

// Server wires the session store to the two external speech clients
type Server struct {
	cfg        *config.Config
	store      *session.Store
	recognizer stt.Recognizer
	synth      SynthesizerFactory
}

// New creates a server
func New(cfg *config.Config, store *session.Store, recognizer stt.Recognizer, synth SynthesizerFactory) *Server {
	return &Server{
		cfg:        cfg,
		store:      store,
		recognizer: recognizer,
		synth:      synth,
	}
}

// Routes registers all session endpoints on the mux
func (s *Server) Routes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/sessions", s.handleCreateSession)
	mux.HandleFunc("GET /api/sessions/{id}", s.handleGetSession)
	mux.HandleFunc("DELETE /api/sessions/{id}", s.handleDeleteSession)
	mux.HandleFunc("POST /api/sessions/{id}/start", s.handleStart)
	mux.HandleFunc("POST /api/sessions/{id}/stop", s.handleStop)
	mux.HandleFunc("POST /api/sessions/{id}/utterances", s.handleCaptureUtterance)
	mux.HandleFunc("POST /api/sessions/{id}/speech", s.handleConvert)
	mux.HandleFunc("GET /api/sessions/{id}/events", s.handleEvents)
}

// lookup resolves the session from the request path, writing a 404 when it
// does not exist
func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, ok := s.store.Get(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "session not found")
		return nil, false
	}
	sess.Touch()
	return sess, true
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
