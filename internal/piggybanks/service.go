package piggybanks

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/poupanca/poupanca/internal/shared"
)

// DefaultCurrency is assigned when a piggy bank is created without one.
const DefaultCurrency = "BRL"

// Service wraps piggy bank business rules. Ownership authorization is the
// HTTP layer's job.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService constructs a new Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Create registers a new piggy bank, seeding the contributions log when the
// opening amount is positive.
func (s *Service) Create(ctx context.Context, userID uuid.UUID, req CreatePiggyBankRequest) (*PiggyBank, error) {
	if req.CurrentAmount.IsNegative() {
		return nil, shared.ErrInvalidAmount
	}

	now := s.now().UTC()
	pb := &PiggyBank{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          req.Name,
		Description:   req.Description,
		Currency:      orDefault(req.Currency, DefaultCurrency),
		CurrentAmount: req.CurrentAmount,
		TotalProfit:   decimal.Zero,
		Status:        StatusActive,
		Contributions: []Entry{},
		Profits:       []Entry{},
	}

	if req.CurrentAmount.GreaterThan(decimal.Zero) {
		pb.Contributions = append(pb.Contributions, Entry{
			Value:       req.CurrentAmount,
			Date:        now,
			Description: InitialContributionDescription,
		})
	}

	if err := s.repo.Create(ctx, pb); err != nil {
		return nil, fmt.Errorf("create piggy bank: %w", err)
	}
	return pb, nil
}

// Get loads a single piggy bank.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*PiggyBank, error) {
	return s.repo.Get(ctx, id)
}

// ListByOwner returns every piggy bank owned by the user, newest first.
func (s *Service) ListByOwner(ctx context.Context, userID uuid.UUID) ([]PiggyBank, error) {
	return s.repo.ListByOwner(ctx, userID)
}

// Update changes descriptive fields only.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdatePiggyBankRequest) (*PiggyBank, error) {
	var updated *PiggyBank
	err := s.repo.WithTx(ctx, func(ctx context.Context, repo Repository) error {
		pb, err := repo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if req.Name != nil {
			pb.Name = *req.Name
		}
		if req.Description != nil {
			pb.Description = *req.Description
		}
		if req.Currency != nil {
			pb.Currency = *req.Currency
		}
		if req.Status != nil {
			pb.Status = *req.Status
		}
		if err := repo.Save(ctx, pb); err != nil {
			return err
		}
		updated = pb
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the piggy bank together with its embedded logs.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// Contribute adds value to the principal of an active piggy bank.
func (s *Service) Contribute(ctx context.Context, id uuid.UUID, req AmountRequest) (*PiggyBank, error) {
	return s.mutate(ctx, id, func(pb *PiggyBank) error {
		return pb.ApplyContribution(req.Value, req.Description, s.now().UTC())
	})
}

// Withdraw draws value from the principal. No log entry is appended; see
// PiggyBank.ApplyWithdrawal.
func (s *Service) Withdraw(ctx context.Context, id uuid.UUID, req AmountRequest) (*PiggyBank, error) {
	return s.mutate(ctx, id, func(pb *PiggyBank) error {
		return pb.ApplyWithdrawal(req.Value)
	})
}

// AddProfit adds value to the accumulated profit of an active piggy bank.
func (s *Service) AddProfit(ctx context.Context, id uuid.UUID, req AmountRequest) (*PiggyBank, error) {
	return s.mutate(ctx, id, func(pb *PiggyBank) error {
		return pb.ApplyProfit(req.Value, req.Description, s.now().UTC())
	})
}

func (s *Service) mutate(ctx context.Context, id uuid.UUID, apply func(*PiggyBank) error) (*PiggyBank, error) {
	var updated *PiggyBank
	err := s.repo.WithTx(ctx, func(ctx context.Context, repo Repository) error {
		pb, err := repo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := apply(pb); err != nil {
			return err
		}
		if err := repo.Save(ctx, pb); err != nil {
			return err
		}
		updated = pb
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
