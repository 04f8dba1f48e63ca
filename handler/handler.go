// Package handler adapts inbound channel requests, from API Gateway or a
// plain HTTP server, to bot turns.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"smartassist-bot/internal/bot"
	"smartassist-bot/internal/connector"
	"smartassist-bot/internal/domain"
	"smartassist-bot/pkg/logger"
)

const (
	correlationHeader = "X-Correlation-Id"
	maxBodyBytes      = 1 << 20
)

// Error codes returned in errorResponse.Error.
const (
	ErrorInvalidActivity = "INVALID_ACTIVITY"
	ErrorTimeout         = "TIMEOUT"
	ErrorUpstream        = "UPSTREAM_ERROR"
	ErrorInternal        = "INTERNAL_ERROR"
)

// TurnHandler runs one activity. *bot.Dispatcher satisfies it.
type TurnHandler interface {
	HandleTurn(ctx context.Context, a domain.Activity) (bot.TurnResult, error)
}

type errorResponse struct {
	Error string `json:"error"`
}

type Handler struct {
	turns TurnHandler
	log   *logger.Logger
}

func NewHandler(turns TurnHandler, log *logger.Logger) (*Handler, error) {
	if turns == nil {
		return nil, errors.New("handler: turn handler must not be nil")
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Handler{turns: turns, log: log}, nil
}

// Handle is the Lambda entrypoint for API Gateway proxy events.
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	correlationID := headerValue(req.Headers, correlationHeader)
	if correlationID == "" {
		correlationID = uuid.NewString()
	}

	body := []byte(req.Body)
	if req.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(req.Body)
		if err != nil {
			h.log.Warn("undecodable request body", zap.String("correlation_id", correlationID), zap.Error(err))
			status, out := errorBody(http.StatusBadRequest, ErrorInvalidActivity)
			return proxyResponse(status, out, correlationID), nil
		}
		body = decoded
	}

	status, out := h.process(ctx, correlationID, body)
	return proxyResponse(status, out, correlationID), nil
}

// Messages serves POST /api/messages.
func (h *Handler) Messages(w http.ResponseWriter, r *http.Request) {
	correlationID := r.Header.Get(correlationHeader)
	if correlationID == "" {
		correlationID = uuid.NewString()
	}
	w.Header().Set(correlationHeader, correlationID)
	w.Header().Set("Content-Type", "application/json")

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.log.Warn("read request body failed", zap.String("correlation_id", correlationID), zap.Error(err))
		status, out := errorBody(http.StatusBadRequest, ErrorInvalidActivity)
		w.WriteHeader(status)
		_, _ = w.Write(out)
		return
	}

	status, out := h.process(r.Context(), correlationID, body)
	w.WriteHeader(status)
	_, _ = w.Write(out)
}

func (h *Handler) process(ctx context.Context, correlationID string, body []byte) (int, []byte) {
	log := h.log.With(zap.String("correlation_id", correlationID))

	a, err := decodeActivity(body)
	if err != nil {
		log.Warn("invalid activity", zap.Error(err))
		return errorBody(http.StatusBadRequest, ErrorInvalidActivity)
	}

	ctx = bot.WithCorrelationID(ctx, correlationID)
	if _, err := h.turns.HandleTurn(ctx, a); err != nil {
		status, code := mapError(ctx, err)
		log.Error("turn failed",
			zap.String("conversation_id", a.Conversation.ID),
			zap.String("code", code),
			zap.Error(err),
		)
		return errorBody(status, code)
	}
	return http.StatusOK, []byte("{}")
}

func decodeActivity(body []byte) (domain.Activity, error) {
	var a domain.Activity
	if err := json.Unmarshal(body, &a); err != nil {
		return domain.Activity{}, err
	}
	if strings.TrimSpace(a.Type) == "" {
		return domain.Activity{}, errors.New("activity type is required")
	}
	if strings.TrimSpace(a.Conversation.ID) == "" {
		return domain.Activity{}, errors.New("conversation id is required")
	}
	return a, nil
}

func mapError(ctx context.Context, err error) (int, string) {
	var statusErr *connector.HTTPStatusError
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled), ctx.Err() != nil:
		return http.StatusGatewayTimeout, ErrorTimeout
	case errors.As(err, &statusErr):
		return http.StatusBadGateway, ErrorUpstream
	default:
		return http.StatusInternalServerError, ErrorInternal
	}
}

func errorBody(status int, code string) (int, []byte) {
	b, err := json.Marshal(errorResponse{Error: code})
	if err != nil {
		return http.StatusInternalServerError, []byte(`{"error":"` + ErrorInternal + `"}`)
	}
	return status, b
}

func proxyResponse(status int, body []byte, correlationID string) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers: map[string]string{
			"Content-Type":    "application/json",
			correlationHeader: correlationID,
		},
		Body: string(body),
	}
}

// headerValue looks a header up case-insensitively; API Gateway passes
// headers through with the client's casing.
func headerValue(headers map[string]string, name string) string {
	for k, v := range headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}
