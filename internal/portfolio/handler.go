package portfolio

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/poupanca/poupanca/internal/platform/httpx"
)

// Handler exposes the read-side portfolio views.
type Handler struct {
	logger  *slog.Logger
	service *Service
	now     func() time.Time
}

// NewHandler constructs a Handler. The statistics as-of timestamp comes from
// the clock injected here; production wiring passes time.Now.
func NewHandler(logger *slog.Logger, service *Service, now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{logger: logger, service: service, now: now}
}

// MountRoutes registers the portfolio routes. The investments collection GET
// lives here because the list merges piggy banks into the same shape.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/investments", h.List)
	r.Get("/statistics", h.Statistics)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpx.CurrentUser(w, r)
	if !ok {
		return
	}

	list, err := h.service.ListForDisplay(r.Context(), userID)
	if err != nil {
		h.logger.Error("list portfolio", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"count": len(list), "data": list})
}

func (h *Handler) Statistics(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpx.CurrentUser(w, r)
	if !ok {
		return
	}

	stats, err := h.service.Statistics(r.Context(), userID, h.now())
	if err != nil {
		h.logger.Error("compute statistics", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, stats)
}
