package piggybanks

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/poupanca/poupanca/internal/platform/httpx"
	"github.com/poupanca/poupanca/internal/shared"
)

// Handler exposes piggy bank CRUD and ledger operations over JSON.
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

// MountRoutes registers the piggy bank routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Post("/piggybanks", h.Create)
	r.Get("/piggybanks", h.List)
	r.Get("/piggybanks/{id}", h.Show)
	r.Put("/piggybanks/{id}", h.Update)
	r.Delete("/piggybanks/{id}", h.Delete)
	r.Post("/piggybanks/{id}/contribute", h.Contribute)
	r.Post("/piggybanks/{id}/withdraw", h.Withdraw)
	r.Post("/piggybanks/{id}/profits", h.AddProfit)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpx.CurrentUser(w, r)
	if !ok {
		return
	}

	var req CreatePiggyBankRequest
	if !h.decode(w, r, &req) {
		return
	}

	pb, err := h.service.Create(r.Context(), userID, req)
	if err != nil {
		h.logger.Error("create piggy bank", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, pb)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpx.CurrentUser(w, r)
	if !ok {
		return
	}

	banks, err := h.service.ListByOwner(r.Context(), userID)
	if err != nil {
		h.logger.Error("list piggy banks", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"count": len(banks), "data": banks})
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	pb, ok := h.owned(w, r)
	if !ok {
		return
	}
	httpx.JSON(w, http.StatusOK, pb)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	pb, ok := h.owned(w, r)
	if !ok {
		return
	}

	var req UpdatePiggyBankRequest
	if !h.decode(w, r, &req) {
		return
	}

	updated, err := h.service.Update(r.Context(), pb.ID, req)
	if err != nil {
		h.logger.Error("update piggy bank", slog.Any("error", err), slog.String("id", pb.ID.String()))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, updated)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	pb, ok := h.owned(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), pb.ID); err != nil {
		h.logger.Error("delete piggy bank", slog.Any("error", err), slog.String("id", pb.ID.String()))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "piggy bank deleted"})
}

func (h *Handler) Contribute(w http.ResponseWriter, r *http.Request) {
	h.amountOp(w, r, "piggybanks:contribute", h.service.Contribute)
}

func (h *Handler) Withdraw(w http.ResponseWriter, r *http.Request) {
	h.amountOp(w, r, "piggybanks:withdraw", h.service.Withdraw)
}

func (h *Handler) AddProfit(w http.ResponseWriter, r *http.Request) {
	h.amountOp(w, r, "piggybanks:profit", h.service.AddProfit)
}

func (h *Handler) amountOp(w http.ResponseWriter, r *http.Request, scope string, op func(ctx context.Context, id uuid.UUID, req AmountRequest) (*PiggyBank, error)) {
	pb, ok := h.owned(w, r)
	if !ok {
		return
	}

	var req AmountRequest
	if !h.decode(w, r, &req) {
		return
	}

	key := r.Header.Get("Idempotency-Key")
	if key != "" {
		if err := h.idem.CheckAndInsert(r.Context(), key, scope); err != nil {
			httpx.RespondError(w, err)
			return
		}
	}

	updated, err := op(r.Context(), pb.ID, req)
	if err != nil {
		if key != "" {
			if delErr := h.idem.Delete(r.Context(), key); delErr != nil {
				h.logger.Warn("release idempotency key", slog.Any("error", delErr))
			}
		}
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, updated)
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

func (h *Handler) owned(w http.ResponseWriter, r *http.Request) (*PiggyBank, bool) {
	userID, ok := httpx.CurrentUser(w, r)
	if !ok {
		return nil, false
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid piggy bank id")
		return nil, false
	}

	pb, err := h.service.Get(r.Context(), id)
	if err != nil {
		httpx.RespondError(w, err)
		return nil, false
	}
	if pb.UserID != userID {
		httpx.RespondError(w, shared.ErrForbidden)
		return nil, false
	}
	return pb, true
}
