// Package handler exposes the donor record lifecycle over HTTP.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hemobank/internal/donor"
	dErrors "hemobank/pkg/domain-errors"
	"hemobank/pkg/platform/httputil"
	"hemobank/pkg/requestcontext"
)

// Service defines the donor operations the HTTP layer delegates to.
type Service interface {
	Register(ctx context.Context, sub donor.Submission) (*donor.Donor, error)
	List(ctx context.Context) ([]donor.Donor, error)
	Get(ctx context.Context, id string) (*donor.Donor, error)
	Delete(ctx context.Context, id string) error
}

// Handler handles donor endpoints.
type Handler struct {
	logger *slog.Logger
	donors Service
}

// New creates a donor Handler.
func New(donors Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, donors: donors}
}

// Register mounts the donor routes on the given router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/donors", h.handleRegister)
	r.Get("/donors", h.handleList)
	r.Get("/donors/{id}", h.handleGet)
	r.Delete("/donors/{id}", h.handleDelete)
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var sub donor.Submission
	decoder := json.NewDecoder(r.Body)
	// Payloads are a closed schema: unrecognized fields are rejected rather
	// than silently stored.
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&sub); err != nil {
		h.logger.WarnContext(ctx, "invalid donor payload",
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	record, err := h.donors.Register(ctx, sub)
	if err != nil {
		if dErrors.Is(err, dErrors.CodeValidationFailed) {
			h.logger.WarnContext(ctx, "donor registration rejected",
				"request_id", requestcontext.RequestID(ctx),
			)
		}
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, map[string]any{
		"message": "Donor registered successfully",
		"donor":   record,
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	records, err := h.donors.List(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if records == nil {
		records = []donor.Donor{}
	}
	httputil.WriteJSON(w, http.StatusOK, records)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	record, err := h.donors.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, record)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.donors.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"message": "Donor deleted successfully",
	})
}
