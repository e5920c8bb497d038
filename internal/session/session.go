// Package session holds the per-user-session recording state machine: a
// transcript accumulated from recognized utterances, a recording flag flipped
// by start/stop actions, and a status message reflecting the latest event.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Sukanya41455/AccentChanger/internal/stt"
)

// User-visible status messages. Status always reflects the most recent event.
const (
	StatusReady       = "Ready to start recording."
	StatusStarted     = "Recording started. Please speak clearly."
	StatusStopped     = "Recording stopped. Processing final text..."
	StatusListening   = "Listening... Please speak."
	StatusProcessing  = "Processing speech..."
	StatusTranscribed = "Transcription successful!"
	StatusNoSpeech    = "Could not understand the audio."
	StatusTimedOut    = "Listening timed out, waiting for speech..."
)

// ErrNotRecording is returned when an action requires an active recording span
var ErrNotRecording = errors.New("session is not recording")

// Snapshot is an immutable view of a session handed to the UI shell
type Snapshot struct {
	ID         string    `json:"id"`
	Transcript string    `json:"transcript"`
	Recording  bool      `json:"recording"`
	Status     string    `json:"status"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Session is one UI session's state. All mutation goes through its methods;
// each session has its own lock, so concurrent sessions never contend.
type Session struct {
	id string

	mu         sync.RWMutex
	transcript string
	recording  bool
	status     string
	updatedAt  time.Time
	lastActive time.Time

	watchers    map[int]chan Snapshot
	nextWatcher int
}

// New creates a session in the initial idle state
func New() *Session {
	now := time.Now()
	return &Session{
		id:         uuid.New().String(),
		status:     StatusReady,
		updatedAt:  now,
		lastActive: now,
		watchers:   make(map[int]chan Snapshot),
	}
}

// ID returns the session identifier
func (s *Session) ID() string {
	return s.id
}

// Start begins a new recording span from any state. The transcript is reset;
// whatever was accumulated before is gone.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recording = true
	s.transcript = ""
	s.setStatusLocked(StatusStarted)
}

// Stop ends the recording span. It does not interrupt an in-flight capture;
// it only flips the flag checked before the next capture attempt.
func (s *Session) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.recording {
		return ErrNotRecording
	}

	s.recording = false
	s.setStatusLocked(StatusStopped)
	return nil
}

// Recording reports whether a recording span is active
func (s *Session) Recording() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.recording
}

// Transcript returns the accumulated recognized text
func (s *Session) Transcript() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.transcript
}

// ConvertReady reports whether the transcript can be converted to speech:
// recording must have stopped and there must be something to say.
func (s *Session) ConvertReady() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.recording && s.transcript != ""
}

// SetStatus overwrites the status message with an intermediate progress note
func (s *Session) SetStatus(status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setStatusLocked(status)
}

// FoldRecognition folds one utterance capture outcome into the session. On
// success the recognized text is appended with a leading space, including on
// the very first utterance; the original app behaved this way and downstream
// consumers see the exact same transcript. Failures update only the status.
func (s *Session) FoldRecognition(text string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case err == nil:
		s.transcript += " " + text
		s.setStatusLocked(StatusTranscribed)
	case errors.Is(err, stt.ErrNoSpeech):
		s.setStatusLocked(StatusNoSpeech)
	case errors.Is(err, stt.ErrTimeout):
		s.setStatusLocked(StatusTimedOut)
	case errors.Is(err, stt.ErrServiceUnavailable):
		s.setStatusLocked(fmt.Sprintf("API request error: %v", err))
	default:
		s.setStatusLocked(fmt.Sprintf("Error occurred: %v", err))
	}
}

// FoldSynthesisFailure surfaces a failed conversion as a status message.
// The transcript is untouched so the user can simply retry.
func (s *Session) FoldSynthesisFailure(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setStatusLocked(fmt.Sprintf("Error converting text to speech: %v", err))
}

// Snapshot returns the current state for rendering
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Touch marks the session as recently used without changing state
func (s *Session) Touch() {
	s.mu.Lock()
	s.lastActive = time.Now()
	s.mu.Unlock()
}

// LastActive reports when the session last saw any activity
func (s *Session) LastActive() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastActive
}

// Watch subscribes to state changes. Every mutation delivers a fresh snapshot
// on the returned channel; slow watchers miss intermediate states rather than
// block a transition. The cancel function must be called when done.
func (s *Session) Watch() (<-chan Snapshot, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextWatcher
	s.nextWatcher++

	ch := make(chan Snapshot, 8)
	s.watchers[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, ok := s.watchers[id]; ok {
			delete(s.watchers, id)
			close(ch)
		}
	}

	return ch, cancel
}

// closeWatchers shuts down all subscriptions; called when the session ends
func (s *Session) closeWatchers() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, ch := range s.watchers {
		delete(s.watchers, id)
		close(ch)
	}
}

func (s *Session) setStatusLocked(status string) {
	s.status = status
	now := time.Now()
	s.updatedAt = now
	s.lastActive = now

	snap := s.snapshotLocked()
	for _, ch := range s.watchers {
		select {
		case ch <- snap:
		default:
		}
	}
}

func (s *Session) snapshotLocked() Snapshot {
	return Snapshot{
		ID:         s.id,
		Transcript: s.transcript,
		Recording:  s.recording,
		Status:     s.status,
		UpdatedAt:  s.updatedAt,
	}
}
