package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"smartassist-bot/pkg/logger"
	"smartassist-bot/pkg/metrics"
)

func TestLogging_RecordsRequest(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := &logger.Logger{Logger: zap.New(core)}

	r := chi.NewRouter()
	r.Use(Logging(log))
	r.Post("/api/messages", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("X-Correlation-Id", "corr-1")
		w.WriteHeader(http.StatusBadGateway)
	})

	before := testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues(http.MethodPost, "/api/messages", "502"))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/messages", nil))
	require.Equal(t, http.StatusBadGateway, rec.Code)

	after := testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues(http.MethodPost, "/api/messages", "502"))
	require.Equal(t, before+1, after)

	entries := logs.FilterMessage("request completed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, int64(http.StatusBadGateway), fields["status"])
	require.Equal(t, "corr-1", fields["correlation_id"])
}

func TestLogging_ImplicitOKAndUnmatchedRoute(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Logging(logger.NewNop()))
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	before := testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues(http.MethodGet, "/health", "200"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, before+1, testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues(http.MethodGet, "/health", "200")))

	beforeMissing := testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404"))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, beforeMissing+1, testutil.ToFloat64(metrics.RequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404")))
}
