// Package handler exposes the blood stock summary over HTTP.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hemobank/internal/donor"
	"hemobank/internal/inventory"
	"hemobank/pkg/platform/httputil"
)

// DonorLister supplies the full donor list the summary is derived from.
type DonorLister interface {
	List(ctx context.Context) ([]donor.Donor, error)
}

// Handler handles the inventory endpoint.
type Handler struct {
	logger *slog.Logger
	donors DonorLister
}

// New creates an inventory Handler.
func New(donors DonorLister, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, donors: donors}
}

// Register mounts the inventory routes on the given router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/inventory/summary", h.handleSummary)
}

func (h *Handler) handleSummary(w http.ResponseWriter, r *http.Request) {
	donors, err := h.donors.List(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, inventory.Summarize(donors))
}
