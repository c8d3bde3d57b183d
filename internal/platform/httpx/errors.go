package httpx

import (
	"errors"
	"net/http"

	"github.com/poupanca/poupanca/internal/shared"
)

// RespondError maps ledger and boundary errors to HTTP responses. Every error
// kind gets a distinct caller-facing message; unknown errors never leak detail.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shared.ErrNotFound):
		Problem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, shared.ErrForbidden):
		Problem(w, http.StatusForbidden, "Forbidden", err.Error())
	case errors.Is(err, shared.ErrInvalidCredentials):
		Problem(w, http.StatusUnauthorized, "Unauthorized", err.Error())
	case errors.Is(err, shared.ErrInvalidAmount),
		errors.Is(err, shared.ErrInsufficientUnits),
		errors.Is(err, shared.ErrInvalidWithdrawal),
		errors.Is(err, shared.ErrInvalidReinvestment),
		errors.Is(err, shared.ErrClosed):
		Problem(w, http.StatusUnprocessableEntity, "Invalid Operation", err.Error())
	case errors.Is(err, shared.ErrEmailTaken),
		errors.Is(err, shared.ErrIdempotencyConflict):
		Problem(w, http.StatusConflict, "Conflict", err.Error())
	default:
		Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}
