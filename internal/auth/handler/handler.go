// Package handler exposes signup and login over HTTP.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hemobank/internal/auth"
	dErrors "hemobank/pkg/domain-errors"
	"hemobank/pkg/platform/httputil"
	"hemobank/pkg/requestcontext"
)

// Service defines the account operations the HTTP layer delegates to.
type Service interface {
	Signup(ctx context.Context, creds auth.Credentials) (*auth.User, error)
	Login(ctx context.Context, creds auth.Credentials) (*auth.User, error)
}

// Handler handles the auth endpoints.
type Handler struct {
	logger *slog.Logger
	auth   Service
}

// New creates an auth Handler.
func New(auth Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, auth: auth}
}

// Register mounts the auth routes on the given router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/auth/signup", h.handleSignup)
	r.Post("/auth/login", h.handleLogin)
}

func (h *Handler) decodeCredentials(w http.ResponseWriter, r *http.Request) (auth.Credentials, bool) {
	ctx := r.Context()

	var creds auth.Credentials
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&creds); err != nil {
		h.logger.WarnContext(ctx, "invalid credentials payload",
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return auth.Credentials{}, false
	}
	return creds, true
}

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	creds, ok := h.decodeCredentials(w, r)
	if !ok {
		return
	}

	user, err := h.auth.Signup(r.Context(), creds)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, map[string]any{
		"message": "User registered successfully",
		"user":    map[string]string{"id": user.ID, "email": user.Email},
	})
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	creds, ok := h.decodeCredentials(w, r)
	if !ok {
		return
	}

	user, err := h.auth.Login(r.Context(), creds)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"user":    map[string]string{"id": user.ID, "email": user.Email},
	})
}
