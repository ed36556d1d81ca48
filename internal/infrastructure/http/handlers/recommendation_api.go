// Package handlers provides HTTP handlers for the REST API
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/platewise/v1/internal/domain/intent"
	"github.com/platewise/v1/internal/infrastructure/monitoring"
	"github.com/platewise/v1/internal/ports/inbound"
	"github.com/platewise/v1/pkg/errors"
	"go.uber.org/zap"
)

// RecommendationHandlers handles recommendation API requests
type RecommendationHandlers struct {
	service  inbound.RecommendationService
	metrics  *monitoring.Metrics
	validate *validator.Validate
	logger   *zap.Logger
	version  string
}

// NewRecommendationHandlers creates a new handlers instance
func NewRecommendationHandlers(
	service inbound.RecommendationService,
	metrics *monitoring.Metrics,
	logger *zap.Logger,
	version string,
) *RecommendationHandlers {
	return &RecommendationHandlers{
		service:  service,
		metrics:  metrics,
		validate: validator.New(),
		logger:   logger,
		version:  version,
	}
}

// recommendRequest is the request body for POST /venues/{venueID}/recommendations
type recommendRequest struct {
	SessionID string          `json:"session_id" validate:"required,uuid4"`
	Answers   []answerPayload `json:"answers" validate:"required,min=1,dive"`
}

type answerPayload struct {
	QuestionID string   `json:"question_id" validate:"required"`
	Values     []string `json:"values" validate:"required,min=1"`
}

// Recommend handles POST /api/v1/venues/{venueID}/recommendations
func (h *RecommendationHandlers) Recommend(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	venueID, err := uuid.Parse(chi.URLParam(r, "venueID"))
	if err != nil {
		h.writeError(w, r, errors.NewValidationError("venue id must be a valid UUID"))
		return
	}

	var req recommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, errors.NewBadRequestError("Invalid request body"))
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		h.writeError(w, r, errors.NewValidationError(err.Error()))
		return
	}

	sessionID, err := uuid.Parse(req.SessionID)
	if err != nil {
		h.writeError(w, r, errors.NewValidationError("session_id must be a valid UUID"))
		return
	}

	answers := make([]intent.Answer, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, intent.Answer{
			QuestionID: a.QuestionID,
			Values:     a.Values,
		})
	}

	cmd := inbound.RecommendCommand{
		VenueID:   venueID,
		SessionID: sessionID,
		ClientID:  clientID(r),
		Answers:   answers,
	}

	result, err := h.service.Recommend(r.Context(), cmd)
	if err != nil {
		h.writeError(w, r, errors.Wrap(err, "recommendation failed"))
		return
	}

	h.metrics.RecordRecommendation(result.Status, result.Upsell != nil, time.Since(start))
	h.writeJSON(w, http.StatusOK, result)
}

// HealthCheck handles GET /health
func (h *RecommendationHandlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"version":   h.version,
		"timestamp": time.Now().Unix(),
	})
}

// clientID resolves the throttling identity: an explicit client header
// when present, the remote address otherwise
func clientID(r *http.Request) string {
	if id := r.Header.Get("X-Client-ID"); id != "" {
		return id
	}
	return r.RemoteAddr
}

// writeJSON writes a JSON response
func (h *RecommendationHandlers) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode JSON response", zap.Error(err))
	}
}

// writeError writes a structured error response
func (h *RecommendationHandlers) writeError(w http.ResponseWriter, r *http.Request, appErr *errors.AppError) {
	requestID := chimiddleware.GetReqID(r.Context())

	if appErr.StatusCode() >= http.StatusInternalServerError {
		h.logger.Error("Request failed",
			zap.String("request_id", requestID),
			zap.String("code", string(appErr.Code)),
			zap.Error(appErr))
	} else {
		h.logger.Warn("Request rejected",
			zap.String("request_id", requestID),
			zap.String("code", string(appErr.Code)),
			zap.String("details", appErr.Details))
	}

	h.writeJSON(w, appErr.StatusCode(), errors.ToErrorResponse(appErr, requestID))
}
