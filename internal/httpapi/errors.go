package httpapi

import (
	"errors"
	"net/http"

	"github.com/greenbank/ledger/internal/errs"
)

// errorResponse is the standard error payload for the API.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeErr(w http.ResponseWriter, status int, msg, code string) {
	toJSON(w, status, errorResponse{Error: msg, Code: code})
}

func badRequest(w http.ResponseWriter, msg string) { writeErr(w, http.StatusBadRequest, msg, "") }

func unprocessable(w http.ResponseWriter, msg, code string) {
	writeErr(w, http.StatusUnprocessableEntity, msg, code)
}

// writeOpError maps the ledger error taxonomy onto HTTP statuses. All four
// kinds are user-correctable input problems, never fatal.
func writeOpError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		writeErr(w, http.StatusNotFound, "not found", "not_found")
	case errors.Is(err, errs.ErrInvalidAmount):
		unprocessable(w, "amount must be positive", "invalid_amount")
	case errors.Is(err, errs.ErrInsufficientFunds):
		unprocessable(w, "insufficient funds", "insufficient_funds")
	case errors.Is(err, errs.ErrSameAccount):
		unprocessable(w, "accounts must be different", "same_account")
	case errors.Is(err, errs.ErrInvalid):
		badRequest(w, "invalid request")
	default:
		writeErr(w, http.StatusInternalServerError, "internal error", "internal")
	}
}
