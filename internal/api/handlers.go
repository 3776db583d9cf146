// Package api exposes HTTP handlers for the workout tracker.
package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"example.com/ftracker/internal/auth"
	"example.com/ftracker/internal/domain"
)

// Handler coordinates HTTP requests with the domain service.
type Handler struct {
	service *domain.Service
	locale  domain.Locale
}

// NewHandler builds a Handler; locale is the default template for rendered messages.
func NewHandler(service *domain.Service, locale domain.Locale) *Handler {
	return &Handler{service: service, locale: locale}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/v1/workouts/summary", h.summary)
	mux.HandleFunc("/healthz", healthz)
}

func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "unsupported method")
		return
	}

	claims, ok := auth.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing bearer token")
		return
	}
	if !claims.HasScope(auth.ScopeWorkoutsSummarize) {
		writeError(w, http.StatusForbidden, "forbidden", "scope workouts:summarize required")
		return
	}

	locale := h.locale
	if raw := r.URL.Query().Get("locale"); raw != "" {
		parsed, err := domain.ParseLocale(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
			return
		}
		locale = parsed
	}

	var req SummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "unable to parse body")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	summary, err := h.service.Summarize(r.Context(), domain.SummarizeInput{
		TenantID:    claims.TenantID,
		UserID:      claims.Subject,
		WorkoutType: strings.TrimSpace(req.WorkoutType),
		Data:        req.Data,
		Locale:      locale,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownWorkoutType), errors.Is(err, domain.ErrArgument):
			writeError(w, http.StatusBadRequest, "validation_failed", err.Error())
		case errors.Is(err, domain.ErrDivisionByZero), errors.Is(err, domain.ErrOutOfRange):
			writeError(w, http.StatusUnprocessableEntity, "unprocessable", err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "server_error", err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, toSummaryView(*summary))
}

// SummaryRequest is the payload for POST /v1/workouts/summary.
type SummaryRequest struct {
	WorkoutType string    `json:"workout_type"`
	Data        []float64 `json:"data"`
}

// Validate ensures request correctness.
func (r SummaryRequest) Validate() error {
	if strings.TrimSpace(r.WorkoutType) == "" {
		return errors.New("workout_type is required")
	}
	if len(r.Data) == 0 {
		return errors.New("data is required")
	}
	return nil
}

// SummaryView is the response body for a computed summary.
type SummaryView struct {
	SummaryID    string    `json:"summary_id"`
	WorkoutType  string    `json:"workout_type"`
	TrainingType string    `json:"training_type"`
	Duration     float64   `json:"duration"`
	Distance     float64   `json:"distance"`
	Speed        float64   `json:"speed"`
	Calories     float64   `json:"calories"`
	Message      string    `json:"message"`
	CreatedAt    time.Time `json:"created_at"`
}

func toSummaryView(s domain.Summary) SummaryView {
	return SummaryView{
		SummaryID:    s.ID,
		WorkoutType:  s.WorkoutType,
		TrainingType: s.Info.TrainingType,
		Duration:     s.Info.Duration,
		Distance:     s.Info.Distance,
		Speed:        s.Info.Speed,
		Calories:     s.Info.Calories,
		Message:      s.Message,
		CreatedAt:    s.CreatedAt,
	}
}

func writeError(w http.ResponseWriter, status int, code, detail string) {
	writeJSON(w, status, map[string]string{
		"type":   code,
		"detail": detail,
	})
}

// writeJSON encodes before writing the header so an encoding failure still yields a 500.
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"type":"server_error","detail":"unable to encode response"}` + "\n"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
