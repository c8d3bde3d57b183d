package catalog

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/poupanca/poupanca/internal/platform/httpx"
)

type Handler struct {
	logger  *slog.Logger
	service *Service
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers the catalog endpoints. They are read-only and do not
// require a session.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/catalog", h.list)
	r.Get("/catalog/suggest", h.suggest)
	r.Get("/catalog/{ticker}", h.getByTicker)
	r.Get("/catalog/type/{type}", h.listByType)
	r.Get("/catalog/country/{country}", h.listByCountry)
}

type listResponse struct {
	Count int          `json:"count"`
	Data  []Instrument `json:"data"`
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	items := h.service.List()
	httpx.JSON(w, http.StatusOK, listResponse{Count: len(items), Data: items})
}

func (h *Handler) getByTicker(w http.ResponseWriter, r *http.Request) {
	inst, ok := h.service.FindByTicker(chi.URLParam(r, "ticker"))
	if !ok {
		httpx.Problem(w, http.StatusNotFound, "Not Found", "instrument not found")
		return
	}
	httpx.JSON(w, http.StatusOK, inst)
}

func (h *Handler) listByType(w http.ResponseWriter, r *http.Request) {
	items := h.service.FilterByType(chi.URLParam(r, "type"))
	httpx.JSON(w, http.StatusOK, listResponse{Count: len(items), Data: items})
}

func (h *Handler) listByCountry(w http.ResponseWriter, r *http.Request) {
	items := h.service.FilterByCountry(chi.URLParam(r, "country"))
	httpx.JSON(w, http.StatusOK, listResponse{Count: len(items), Data: items})
}

type suggestionResponse struct {
	Query string `json:"query"`
	Type  string `json:"type"`
}

func (h *Handler) suggest(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	typ, ok := h.service.SuggestType(query)
	if !ok {
		httpx.Problem(w, http.StatusNotFound, "Not Found", "no type suggestion for query")
		return
	}
	httpx.JSON(w, http.StatusOK, suggestionResponse{Query: query, Type: typ})
}
