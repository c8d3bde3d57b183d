package portfolio

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/poupanca/poupanca/internal/investments"
	"github.com/poupanca/poupanca/internal/piggybanks"
)

// InvestmentSource is the read side of the investment store the aggregator
// consumes.
type InvestmentSource interface {
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]investments.Investment, error)
	ListByOwnerAndStatus(ctx context.Context, userID uuid.UUID, status investments.Status) ([]investments.Investment, error)
}

// PiggyBankSource is the read side of the piggy bank store.
type PiggyBankSource interface {
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]piggybanks.PiggyBank, error)
	ListByOwnerAndStatus(ctx context.Context, userID uuid.UUID, status piggybanks.Status) ([]piggybanks.PiggyBank, error)
}

// Service assembles the read-side views: the aggregated statistics and the
// unified display list. It never writes back to either store.
type Service struct {
	investments InvestmentSource
	piggyBanks  PiggyBankSource
}

// NewService constructs a new Service.
func NewService(invSource InvestmentSource, pbSource PiggyBankSource) *Service {
	return &Service{investments: invSource, piggyBanks: pbSource}
}

// Statistics computes the user's totals, the current-month profit and the
// 12-month trailing series. The as-of timestamp is explicit so the
// computation is pure; the HTTP layer passes wall-clock time.
func (s *Service) Statistics(ctx context.Context, userID uuid.UUID, asOf time.Time) (*Statistics, error) {
	var (
		invs  []investments.Investment
		banks []piggybanks.PiggyBank
	)

	// The two queries are independent; load them concurrently.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		invs, err = s.investments.ListByOwnerAndStatus(gctx, userID, investments.StatusActive)
		if err != nil {
			return fmt.Errorf("load investments: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		banks, err = s.piggyBanks.ListByOwnerAndStatus(gctx, userID, piggybanks.StatusActive)
		if err != nil {
			return fmt.Errorf("load piggy banks: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &Statistics{
		TotalInvested:      decimal.Zero,
		TotalProfit:        decimal.Zero,
		CurrentMonthProfit: decimal.Zero,
		TotalInPiggyBanks:  decimal.Zero,
		InvestmentsCount:   len(invs),
		PiggyBanksCount:    len(banks),
	}

	for _, inv := range invs {
		stats.TotalInvested = stats.TotalInvested.Add(inv.InvestedAmount)
		stats.TotalProfit = stats.TotalProfit.Add(inv.TotalProfit)
	}
	for _, pb := range banks {
		stats.TotalInPiggyBanks = stats.TotalInPiggyBanks.Add(pb.CurrentAmount)
		stats.TotalProfit = stats.TotalProfit.Add(pb.TotalProfit)
	}
	stats.TotalInvested = stats.TotalInvested.Add(stats.TotalInPiggyBanks)

	monthStart := startOfMonth(asOf)
	for _, inv := range invs {
		for _, entry := range inv.History {
			if entry.Type != investments.EntryProfit {
				continue
			}
			if !entry.Date.Before(monthStart) && !entry.Date.After(asOf) {
				stats.CurrentMonthProfit = stats.CurrentMonthProfit.Add(entry.Value)
			}
		}
	}

	// Piggy bank profits contribute to the aggregate total only; the
	// evolution series tracks investment PROFIT entries exclusively.
	stats.MonthlyEvolution = monthlyEvolution(invs, asOf)

	return stats, nil
}

// monthlyEvolution buckets investment PROFIT entries into the current month
// and the 11 preceding calendar months, oldest first. Bucket bounds are
// [1st 00:00:00, 1st of next month).
func monthlyEvolution(invs []investments.Investment, asOf time.Time) []MonthlyPoint {
	current := startOfMonth(asOf)
	points := make([]MonthlyPoint, 0, 12)

	for i := 11; i >= 0; i-- {
		start := current.AddDate(0, -i, 0)
		end := start.AddDate(0, 1, 0)

		profit := decimal.Zero
		for _, inv := range invs {
			for _, entry := range inv.History {
				if entry.Type != investments.EntryProfit {
					continue
				}
				if !entry.Date.Before(start) && entry.Date.Before(end) {
					profit = profit.Add(entry.Value)
				}
			}
		}

		points = append(points, MonthlyPoint{
			Month:  start.Format("2006-01"),
			Profit: profit,
		})
	}
	return points
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// ListForDisplay returns the user's investments and piggy banks merged into
// one list, newest first. Piggy banks are mapped into the investment shape
// with their logs merged into a date-descending history. Read only.
func (s *Service) ListForDisplay(ctx context.Context, userID uuid.UUID) ([]DisplayInvestment, error) {
	var (
		invs  []investments.Investment
		banks []piggybanks.PiggyBank
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		invs, err = s.investments.ListByOwner(gctx, userID)
		if err != nil {
			return fmt.Errorf("load investments: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		banks, err = s.piggyBanks.ListByOwner(gctx, userID)
		if err != nil {
			return fmt.Errorf("load piggy banks: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]DisplayInvestment, 0, len(invs)+len(banks))
	for _, inv := range invs {
		out = append(out, fromInvestment(inv))
	}
	for _, pb := range banks {
		out = append(out, fromPiggyBank(pb))
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func fromInvestment(inv investments.Investment) DisplayInvestment {
	return DisplayInvestment{
		ID:             inv.ID,
		UserID:         inv.UserID,
		Name:           inv.Name,
		Type:           inv.Type,
		Currency:       inv.Currency,
		InvestedAmount: inv.InvestedAmount,
		Quantity:       inv.Quantity,
		MonthlyRate:    inv.MonthlyRate,
		TotalProfit:    inv.TotalProfit,
		DailyLiquidity: inv.DailyLiquidity,
		DailyProfit:    inv.DailyProfit,
		HasDailyProfit: inv.HasDailyProfit,
		Status:         string(inv.Status),
		StartDate:      inv.StartDate,
		History:        inv.History,
		CreatedAt:      inv.CreatedAt,
	}
}

func fromPiggyBank(pb piggybanks.PiggyBank) DisplayInvestment {
	history := make([]investments.HistoryEntry, 0, len(pb.Contributions)+len(pb.Profits))
	for _, c := range pb.Contributions {
		history = append(history, investments.HistoryEntry{
			Type:        investments.EntryContribution,
			Value:       c.Value,
			Quantity:    decimal.Zero,
			Date:        c.Date,
			Description: orDefault(c.Description, "Piggy bank contribution"),
		})
	}
	for _, p := range pb.Profits {
		history = append(history, investments.HistoryEntry{
			Type:        investments.EntryProfit,
			Value:       p.Value,
			Quantity:    decimal.Zero,
			Date:        p.Date,
			Description: orDefault(p.Description, "Piggy bank profit"),
		})
	}
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Date.After(history[j].Date)
	})

	return DisplayInvestment{
		ID:             pb.ID,
		UserID:         pb.UserID,
		Name:           pb.Name,
		Type:           PiggyBankType,
		Currency:       pb.Currency,
		InvestedAmount: pb.CurrentAmount,
		Quantity:       decimal.Zero,
		MonthlyRate:    decimal.Zero,
		TotalProfit:    pb.TotalProfit,
		DailyLiquidity: true,
		DailyProfit:    decimal.Zero,
		HasDailyProfit: false,
		Status:         string(pb.Status),
		StartDate:      pb.CreatedAt,
		History:        history,
		CreatedAt:      pb.CreatedAt,
		IsPiggyBank:    true,
		PiggyBankData: &PiggyBankData{
			CurrentAmount: pb.CurrentAmount,
			Description:   pb.Description,
		},
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
