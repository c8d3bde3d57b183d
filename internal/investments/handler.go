package investments

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/poupanca/poupanca/internal/platform/httpx"
	"github.com/poupanca/poupanca/internal/shared"
)

// Handler exposes investment CRUD and ledger operations over JSON.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	validate *validator.Validate
	idem     *shared.IdempotencyStore
}

// NewHandler constructs a Handler.
func NewHandler(logger *slog.Logger, service *Service, validate *validator.Validate, idem *shared.IdempotencyStore) *Handler {
	return &Handler{logger: logger, service: service, validate: validate, idem: idem}
}

// MountRoutes registers the investment routes. The collection GET is owned by
// the portfolio handler, which merges piggy banks into the same shape.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/investments", h.Create)
	r.Get("/investments/{id}", h.Show)
	r.Put("/investments/{id}", h.Update)
	r.Delete("/investments/{id}", h.Delete)
	r.Post("/investments/{id}/contributions", h.AddContribution)
	r.Post("/investments/{id}/profits", h.AddProfit)
	r.Post("/investments/{id}/withdrawals", h.Withdraw)
	r.Post("/investments/{id}/reinvest", h.Reinvest)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpx.CurrentUser(w, r)
	if !ok {
		return
	}

	var req CreateInvestmentRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	inv, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		h.logger.Error("create investment", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, inv)
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	inv, ok := h.owned(w, r)
	if !ok {
		return
	}
	httpx.JSON(w, http.StatusOK, inv)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	inv, ok := h.owned(w, r)
	if !ok {
		return
	}

	var req UpdateInvestmentRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}

	updated, err := h.service.Update(r.Context(), inv.ID, req)
	if err != nil {
		h.logger.Error("update investment", slog.Any("error", err), slog.String("id", inv.ID.String()))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, updated)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	inv, ok := h.owned(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), inv.ID); err != nil {
		h.logger.Error("delete investment", slog.Any("error", err), slog.String("id", inv.ID.String()))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "investment deleted"})
}

func (h *Handler) AddContribution(w http.ResponseWriter, r *http.Request) {
	inv, ok := h.owned(w, r)
	if !ok {
		return
	}
	var req ContributionRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.ledgerOp(w, r, "investments:contribution", func() (*Investment, error) {
		return h.service.AddContribution(r.Context(), inv.ID, req)
	})
}

func (h *Handler) AddProfit(w http.ResponseWriter, r *http.Request) {
	inv, ok := h.owned(w, r)
	if !ok {
		return
	}
	var req ProfitRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.ledgerOp(w, r, "investments:profit", func() (*Investment, error) {
		return h.service.AddProfit(r.Context(), inv.ID, req)
	})
}

func (h *Handler) Withdraw(w http.ResponseWriter, r *http.Request) {
	inv, ok := h.owned(w, r)
	if !ok {
		return
	}
	var req WithdrawalRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.ledgerOp(w, r, "investments:withdrawal", func() (*Investment, error) {
		return h.service.Withdraw(r.Context(), inv.ID, req)
	})
}

func (h *Handler) Reinvest(w http.ResponseWriter, r *http.Request) {
	inv, ok := h.owned(w, r)
	if !ok {
		return
	}
	var req ReinvestRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.ledgerOp(w, r, "investments:reinvest", func() (*Investment, error) {
		return h.service.Reinvest(r.Context(), inv.ID, req)
	})
}

// ledgerOp runs a mutating ledger call with optional transport-level
// deduplication via the Idempotency-Key header.
func (h *Handler) ledgerOp(w http.ResponseWriter, r *http.Request, scope string, op func() (*Investment, error)) {
	key := r.Header.Get("Idempotency-Key")
	if key != "" {
		if err := h.idem.CheckAndInsert(r.Context(), key, scope); err != nil {
			httpx.RespondError(w, err)
			return
		}
	}

	inv, err := op()
	if err != nil {
		if key != "" {
			if delErr := h.idem.Delete(r.Context(), key); delErr != nil {
				h.logger.Warn("release idempotency key", slog.Any("error", delErr))
			}
		}
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, inv)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, target any) bool {
	if err := httpx.DecodeJSON(r, target); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return false
	}
	if err := h.validate.Struct(target); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return false
	}
	return true
}

// owned loads the addressed investment and verifies the session user owns
// it. Forbidden is reported distinctly from NotFound.
func (h *Handler) owned(w http.ResponseWriter, r *http.Request) (*Investment, bool) {
	userID, ok := httpx.CurrentUser(w, r)
	if !ok {
		return nil, false
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid investment id")
		return nil, false
	}

	inv, err := h.service.Get(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, err)
		return nil, false
	}
	if inv.UserID != userID {
		httpx.RespondError(w, shared.ErrForbidden)
		return nil, false
	}
	return inv, true
}
