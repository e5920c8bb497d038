package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/Sukanya41455/AccentChanger/internal/audio"
	"github.com/Sukanya41455/AccentChanger/internal/observability"
	"github.com/Sukanya41455/AccentChanger/internal/session"
	"github.com/Sukanya41455/AccentChanger/internal/stt"
)

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	sess := s.store.Create()

	logger := observability.GetLogger()
	logger.Info().
		Str("session_id", sess.ID()).
		Msg("Session created")

	writeJSON(w, http.StatusCreated, sess.Snapshot())
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, sess.Snapshot())
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if !s.store.Delete(r.PathValue("id")) {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleStart maps the "Start Listening" action. Start is legal from any
// state and always opens a fresh recording span.
func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}

	sess.Start()
	writeJSON(w, http.StatusOK, sess.Snapshot())
}

// handleStop maps the "Stop Listening" action
func (s *Server) handleStop(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}

	if err := sess.Stop(); err != nil {
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, sess.Snapshot())
}

// handleCaptureUtterance runs one bounded utterance capture: exactly one
// recognition call per request, blocking until the service answers or the
// wait ceiling elapses. Failures fold into the session status; they never
// escape as a 5xx.
func (s *Server) handleCaptureUtterance(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}

	logger := observability.WithCorrelationID("").With().
		Str("session_id", sess.ID()).Logger()

	if !sess.Recording() {
		writeError(w, http.StatusConflict, "session is not recording")
		return
	}

	sess.SetStatus(session.StatusListening)

	clip, err := s.readClip(w, r)
	if err != nil {
		sess.FoldRecognition("", err)
		logger.Warn().Err(err).Msg("Rejected audio clip")
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	contentType, err := audio.DetectContentType(clip)
	if err != nil {
		sess.FoldRecognition("", err)
		logger.Warn().Err(err).Msg("Rejected audio clip")
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sess.SetStatus(session.StatusProcessing)

	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.RecognitionDeadline())
	defer cancel()

	started := time.Now()
	text, err := s.recognizer.Recognize(ctx, bytes.NewReader(clip))
	sess.FoldRecognition(text, err)

	switch {
	case err == nil:
		observability.RecordRecognition("success", started)
		logger.Info().
			Str("content_type", contentType).
			Int("clip_bytes", len(clip)).
			Msg("Utterance transcribed")
	case errors.Is(err, stt.ErrNoSpeech):
		observability.RecordRecognition("no_speech", started)
	case errors.Is(err, stt.ErrTimeout):
		observability.RecordRecognition("timeout", started)
	default:
		observability.RecordRecognition("error", started)
		observability.RecordError("recognition", "stt")
		logger.Error().Err(err).Msg("Utterance capture failed")
	}

	// The outcome lives in the status; the HTTP exchange itself succeeded
	writeJSON(w, http.StatusOK, sess.Snapshot())
}

// handleConvert maps the "Convert to Accent" action: synthesize the full
// transcript in the configured voice and return the playable artifact.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}

	logger := observability.WithCorrelationID("").With().
		Str("session_id", sess.ID()).Logger()

	// Conversion is disabled mid-recording and with nothing to say; the
	// synthesis client must not be called in either case.
	if sess.Recording() {
		writeError(w, http.StatusConflict, "stop recording before converting")
		return
	}
	transcript := sess.Transcript()
	if transcript == "" {
		writeError(w, http.StatusConflict, "transcript is empty")
		return
	}

	synth, err := s.synth(r.Context())
	if err != nil {
		sess.SetStatus(fmt.Sprintf("Error initializing AWS Polly client: %v", err))
		observability.RecordError("client_init", "tts")
		logger.Error().Err(err).Msg("Synthesis client initialization failed")
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	started := time.Now()
	speech, err := synth.Synthesize(r.Context(), transcript)
	if err != nil {
		sess.FoldSynthesisFailure(err)
		observability.RecordSynthesis("error", started, 0)
		observability.RecordError("synthesis", "tts")
		logger.Error().Err(err).Msg("Speech synthesis failed")
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	observability.RecordSynthesis("success", started, len(speech.Audio))
	logger.Info().
		Str("voice_id", synth.VoiceID()).
		Int("audio_bytes", len(speech.Audio)).
		Msg("Transcript converted to speech")

	w.Header().Set("Content-Type", speech.ContentType)
	w.WriteHeader(http.StatusOK)
	w.Write(speech.Audio)
}

// readClip extracts the captured audio clip from the request, either as the
// "audio" part of a multipart form or as the raw body.
func (s *Server) readClip(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxClipBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if strings.HasPrefix(mediaType, "multipart/") {
		file, _, err := r.FormFile("audio")
		if err != nil {
			return nil, fmt.Errorf("missing audio clip: %w", err)
		}
		defer file.Close()
		return io.ReadAll(file)
	}

	clip, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio clip: %w", err)
	}
	if len(clip) == 0 {
		return nil, fmt.Errorf("empty audio clip")
	}
	return clip, nil
}
