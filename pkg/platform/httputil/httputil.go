// Package httputil centralizes JSON response writing so every handler emits
// the same envelopes.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "hemobank/pkg/domain-errors"
)

// errorResponse is the wire shape for all error replies. Validation errors
// additionally carry the ordered per-field failures.
type errorResponse struct {
	Error            string               `json:"error"`
	ErrorDescription string               `json:"error_description,omitempty"`
	Fields           []dErrors.FieldError `json:"fields,omitempty"`
}

// WriteJSON writes v as a JSON body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates a domain error into the JSON error envelope. The
// description is omitted for internal errors so store details never reach
// clients.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	resp := errorResponse{Error: string(code)}

	var domainErr *dErrors.Error
	if errors.As(err, &domainErr) {
		if code != dErrors.CodeInternal && code != dErrors.CodeUnavailable {
			resp.ErrorDescription = domainErr.Message
		}
		resp.Fields = domainErr.Fields
	}

	WriteJSON(w, dErrors.ToHTTPStatus(code), resp)
}
