// Package metrics provides Prometheus metrics instrumentation.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Activity type labels. Any other inbound type is recorded as ActivityTypeOther.
const (
	ActivityTypeMessage            = "message"
	ActivityTypeConversationUpdate = "conversationUpdate"
	ActivityTypeOther              = "other"
)

// Turn outcomes.
const (
	OutcomeEscalated = "escalated"
	OutcomeForwarded = "forwarded"
	OutcomeIgnored   = "ignored"
	OutcomeError     = "error"
)

var (
	// TurnsTotal tracks handled turns by activity type and outcome.
	TurnsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smartbot_turns_total",
			Help: "Total turns handled",
		},
		[]string{"activity_type", "outcome"},
	)

	// TurnDuration tracks end-to-end turn latency including state and transport I/O.
	TurnDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "smartbot_turn_duration_seconds",
			Help:    "Turn duration in seconds",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"activity_type"},
	)

	// EscalationsTotal tracks Fresh to Escalated transitions by trigger.
	EscalationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smartbot_escalations_total",
			Help: "Total conversations escalated",
		},
		[]string{"trigger"},
	)

	// ActivitiesSentTotal tracks outbound activities handed to the channel.
	ActivitiesSentTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "smartbot_activities_sent_total",
			Help: "Total outbound activities sent",
		},
	)

	// RequestsTotal tracks HTTP requests served by the local server.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "smartbot_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)
)

// RecordTurn records the outcome and latency of one turn.
func RecordTurn(activityType, outcome string, started time.Time) {
	label := activityTypeLabel(activityType)
	TurnsTotal.WithLabelValues(label, outcome).Inc()
	TurnDuration.WithLabelValues(label).Observe(time.Since(started).Seconds())
}

// activityTypeLabel keeps the activity_type label to a fixed set; the inbound
// type is client supplied.
func activityTypeLabel(activityType string) string {
	switch activityType {
	case ActivityTypeMessage, ActivityTypeConversationUpdate:
		return activityType
	default:
		return ActivityTypeOther
	}
}

// RecordEscalation records a transition to Escalated.
func RecordEscalation(trigger string) {
	EscalationsTotal.WithLabelValues(trigger).Inc()
}

// RecordSent records activities handed to the channel transport.
func RecordSent(n int) {
	ActivitiesSentTotal.Add(float64(n))
}

// RecordRequest records an HTTP request.
func RecordRequest(method, path, status string) {
	RequestsTotal.WithLabelValues(method, path, status).Inc()
}
