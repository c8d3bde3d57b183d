package investments

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/poupanca/poupanca/internal/shared"
)

// DefaultType is assigned when an investment is created without a type.
const DefaultType = "Outros"

// DefaultCurrency is assigned when an investment is created without a currency.
const DefaultCurrency = "BRL"

// Service wraps investment business rules. Ownership authorization is the
// HTTP layer's job; every returned entity carries its UserID so callers can
// verify.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService constructs a new Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Create registers a new investment, seeding the initial contribution
// history entry when the opening principal is positive.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, req CreateInvestmentRequest) (*Investment, error) {
	if req.InvestedAmount.IsNegative() {
		return nil, shared.ErrInvalidAmount
	}
	quantity := derefOrZero(req.Quantity)
	monthlyRate := derefOrZero(req.MonthlyRate)
	dailyProfit := derefOrZero(req.DailyProfit)
	if quantity.IsNegative() || monthlyRate.IsNegative() || dailyProfit.IsNegative() {
		return nil, shared.ErrInvalidAmount
	}

	now := s.now().UTC()
	startDate := now
	if req.StartDate != nil {
		startDate = req.StartDate.UTC()
	}

	inv := &Investment{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           req.Name,
		Type:           orDefault(req.Type, DefaultType),
		Currency:       orDefault(req.Currency, DefaultCurrency),
		InvestedAmount: req.InvestedAmount,
		Quantity:       quantity,
		MonthlyRate:    monthlyRate,
		DailyLiquidity: req.DailyLiquidity,
		DailyProfit:    dailyProfit,
		HasDailyProfit: req.HasDailyProfit,
		Status:         StatusActive,
		StartDate:      startDate,
		History:        []HistoryEntry{},
	}

	if req.InvestedAmount.GreaterThan(decimal.Zero) {
		inv.History = append(inv.History, HistoryEntry{
			Type:        EntryContribution,
			Value:       req.InvestedAmount,
			Quantity:    inv.Quantity,
			Date:        startDate,
			Description: InitialContributionDescription,
		})
	}

	if err := s.repo.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("create investment: %w", err)
	}
	return inv, nil
}

// Get loads a single investment.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Investment, error) {
	return s.repo.Get(ctx, id)
}

// ListByOwner returns every investment owned by the user, newest first.
func (s *Service) ListByOwner(ctx context.Context, userID uuid.UUID) ([]Investment, error) {
	return s.repo.ListByOwner(ctx, userID)
}

// Update changes descriptive fields only; balances move exclusively through
// ledger operations.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateInvestmentRequest) (*Investment, error) {
	if (req.MonthlyRate != nil && req.MonthlyRate.IsNegative()) ||
		(req.DailyProfit != nil && req.DailyProfit.IsNegative()) {
		return nil, shared.ErrInvalidAmount
	}
	var updated *Investment
	err := s.repo.WithTx(ctx, func(ctx context.Context, repo Repository) error {
		inv, err := repo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if req.Name != nil {
			inv.Name = *req.Name
		}
		if req.Type != nil {
			inv.Type = *req.Type
		}
		if req.MonthlyRate != nil {
			inv.MonthlyRate = *req.MonthlyRate
		}
		if req.DailyLiquidity != nil {
			inv.DailyLiquidity = *req.DailyLiquidity
		}
		if req.DailyProfit != nil {
			inv.DailyProfit = *req.DailyProfit
		}
		if req.HasDailyProfit != nil {
			inv.HasDailyProfit = *req.HasDailyProfit
		}
		if req.Currency != nil {
			inv.Currency = *req.Currency
		}
		if req.Status != nil {
			inv.Status = *req.Status
		}
		if err := repo.Save(ctx, inv); err != nil {
			return err
		}
		updated = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the investment together with its embedded history.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// AddContribution adds value to the principal and appends a CONTRIBUTION
// entry. One transactional unit: validate, mutate, persist.
func (s *Service) AddContribution(ctx context.Context, id uuid.UUID, req ContributionRequest) (*Investment, error) {
	return s.mutate(ctx, id, func(inv *Investment) error {
		return inv.ApplyContribution(req.Value, derefOrZero(req.Quantity), req.Description, s.now().UTC())
	})
}

// AddProfit adds value to the accumulated profit and appends a PROFIT entry.
func (s *Service) AddProfit(ctx context.Context, id uuid.UUID, req ProfitRequest) (*Investment, error) {
	return s.mutate(ctx, id, func(inv *Investment) error {
		return inv.ApplyProfit(req.Value, req.Description, s.now().UTC())
	})
}

// Withdraw draws value from the accumulated profit and appends a WITHDRAWAL
// entry. The principal is never reduced.
func (s *Service) Withdraw(ctx context.Context, id uuid.UUID, req WithdrawalRequest) (*Investment, error) {
	return s.mutate(ctx, id, func(inv *Investment) error {
		return inv.ApplyWithdrawal(req.Value, derefOrZero(req.Quantity), req.Description, s.now().UTC())
	})
}

// Reinvest moves profit into the principal, the full amount when no value is
// given, appending a CONTRIBUTION entry tagged as a reinvestment.
func (s *Service) Reinvest(ctx context.Context, id uuid.UUID, req ReinvestRequest) (*Investment, error) {
	return s.mutate(ctx, id, func(inv *Investment) error {
		_, err := inv.ApplyReinvestment(req.Value, s.now().UTC())
		return err
	})
}

func (s *Service) mutate(ctx context.Context, id uuid.UUID, apply func(*Investment) error) (*Investment, error) {
	var updated *Investment
	err := s.repo.WithTx(ctx, func(ctx context.Context, repo Repository) error {
		inv, err := repo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := apply(inv); err != nil {
			return err
		}
		if err := repo.Save(ctx, inv); err != nil {
			return err
		}
		updated = inv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func derefOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
