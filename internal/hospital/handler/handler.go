// Package handler exposes hospital registration over HTTP.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hemobank/internal/hospital"
	dErrors "hemobank/pkg/domain-errors"
	"hemobank/pkg/platform/httputil"
	"hemobank/pkg/requestcontext"
)

// Service defines the hospital operations the HTTP layer delegates to.
type Service interface {
	Register(ctx context.Context, sub hospital.Submission) (*hospital.Hospital, error)
	List(ctx context.Context) ([]hospital.Hospital, error)
}

// Handler handles hospital endpoints.
type Handler struct {
	logger    *slog.Logger
	hospitals Service
}

// New creates a hospital Handler.
func New(hospitals Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, hospitals: hospitals}
}

// Register mounts the hospital routes on the given router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/hospitals", h.handleRegister)
	r.Get("/hospitals", h.handleList)
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var sub hospital.Submission
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&sub); err != nil {
		h.logger.WarnContext(ctx, "invalid hospital payload",
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	record, err := h.hospitals.Register(ctx, sub)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, map[string]any{
		"message":  "Hospital registered successfully",
		"hospital": record,
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	records, err := h.hospitals.List(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if records == nil {
		records = []hospital.Hospital{}
	}
	httputil.WriteJSON(w, http.StatusOK, records)
}
