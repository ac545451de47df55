package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/pennywise-app/pennywise-backend/internal/errs"
)

// decode parses a JSON request body. Malformed bodies surface as
// validation errors so clients get a 400, not a 500.
func decode[T any](r *http.Request) (T, error) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, errs.NewValidationError("invalid request body")
	}
	return req, nil
}
