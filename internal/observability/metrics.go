package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Session metrics
	activeSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "accent_changer_active_sessions",
		Help: "Number of active UI sessions",
	})

	totalSessions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "accent_changer_sessions_total",
		Help: "Total number of sessions created",
	})

	// Recognition metrics
	recognitionRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "accent_changer_recognition_requests_total",
		Help: "Total number of utterance capture attempts",
	}, []string{"outcome"}) // outcome: success, no_speech, timeout, error

	recognitionLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "accent_changer_recognition_latency_seconds",
		Help:    "Speech recognition latency in seconds",
		Buckets: []float64{0.1, 0.25, 0.5, 1.0, 2.0, 5.0, 10.0},
	})

	// Synthesis metrics
	synthesisRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "accent_changer_synthesis_requests_total",
		Help: "Total number of speech synthesis requests",
	}, []string{"outcome"}) // outcome: success, error

	synthesisLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "accent_changer_synthesis_latency_seconds",
		Help:    "Speech synthesis latency in seconds",
		Buckets: []float64{0.1, 0.25, 0.5, 1.0, 2.0, 5.0},
	})

	synthesizedBytes = promauto.NewCounter(prometheus.CounterOpts{
		Name: "accent_changer_synthesized_bytes_total",
		Help: "Total bytes of synthesized audio returned",
	})

	// Error metrics
	errorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "accent_changer_errors_total",
		Help: "Total number of errors",
	}, []string{"type", "component"})
)

// RecordSessionCreated records a new session
func RecordSessionCreated() {
	activeSessions.Inc()
	totalSessions.Inc()
}

// RecordSessionClosed records a session ending (explicit delete or TTL sweep)
func RecordSessionClosed() {
	activeSessions.Dec()
}

// RecordRecognition records one utterance capture attempt
func RecordRecognition(outcome string, started time.Time) {
	recognitionRequests.WithLabelValues(outcome).Inc()
	recognitionLatency.Observe(time.Since(started).Seconds())
}

// RecordSynthesis records one synthesis request
func RecordSynthesis(outcome string, started time.Time, bytes int) {
	synthesisRequests.WithLabelValues(outcome).Inc()
	synthesisLatency.Observe(time.Since(started).Seconds())
	if bytes > 0 {
		synthesizedBytes.Add(float64(bytes))
	}
}

// RecordError records an error
func RecordError(errorType, component string) {
	errorsTotal.WithLabelValues(errorType, component).Inc()
}
