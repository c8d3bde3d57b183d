package httpx

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/poupanca/poupanca/internal/shared"
)

// CurrentUser resolves the authenticated user id from the request session,
// writing a 401 response when the request is anonymous.
func CurrentUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := shared.UserID(r.Context())
	if raw == "" {
		Problem(w, http.StatusUnauthorized, "Unauthorized", "authentication required")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		Problem(w, http.StatusUnauthorized, "Unauthorized", "invalid session user")
		return uuid.Nil, false
	}
	return id, true
}
