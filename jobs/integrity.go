package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/poupanca/poupanca/internal/investments"
	"github.com/poupanca/poupanca/internal/piggybanks"
)

// InvestmentScanSource lists every investment ledger.
type InvestmentScanSource interface {
	ListAll(ctx context.Context) ([]investments.Investment, error)
}

// PiggyBankScanSource lists every piggy bank ledger.
type PiggyBankScanSource interface {
	ListAll(ctx context.Context) ([]piggybanks.PiggyBank, error)
}

// Mismatch describes one ledger whose stored totals disagree with the totals
// recomputed from its history.
type Mismatch struct {
	Entity string
	ID     string
	Name   string
	Field  string
	Stored decimal.Decimal
	Want   decimal.Decimal
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s %s (%s): %s stored=%s recomputed=%s",
		m.Entity, m.ID, m.Name, m.Field, m.Stored, m.Want)
}

// IntegrityReport summarises one scan run.
type IntegrityReport struct {
	InvestmentsChecked int
	PiggyBanksChecked  int
	Mismatches         []Mismatch
}

// IntegrityChecker recomputes ledger totals from the embedded history and
// compares them with the stored aggregates. It never repairs; drift is
// reported for operators to investigate.
type IntegrityChecker struct {
	investments InvestmentScanSource
	piggyBanks  PiggyBankScanSource
	logger      *slog.Logger
}

func NewIntegrityChecker(inv InvestmentScanSource, pb PiggyBankScanSource, logger *slog.Logger) *IntegrityChecker {
	return &IntegrityChecker{investments: inv, piggyBanks: pb, logger: logger}
}

// Run scans every ledger and returns the mismatch report.
func (c *IntegrityChecker) Run(ctx context.Context) (*IntegrityReport, error) {
	report := &IntegrityReport{}

	invs, err := c.investments.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("jobs: list investments: %w", err)
	}
	for i := range invs {
		report.Mismatches = append(report.Mismatches, checkInvestment(&invs[i])...)
	}
	report.InvestmentsChecked = len(invs)

	banks, err := c.piggyBanks.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("jobs: list piggy banks: %w", err)
	}
	for i := range banks {
		report.Mismatches = append(report.Mismatches, checkPiggyBank(&banks[i])...)
	}
	report.PiggyBanksChecked = len(banks)

	for _, m := range report.Mismatches {
		c.logger.Warn("ledger drift detected",
			slog.String("entity", m.Entity),
			slog.String("id", m.ID),
			slog.String("field", m.Field),
			slog.String("stored", m.Stored.String()),
			slog.String("recomputed", m.Want.String()))
	}
	return report, nil
}

// checkInvestment replays the history: contributions (including reinvested
// profit) accumulate into the principal, profits accumulate into the profit
// balance, and withdrawals plus reinvestments drain it.
func checkInvestment(inv *investments.Investment) []Mismatch {
	invested := decimal.Zero
	profit := decimal.Zero
	for _, entry := range inv.History {
		switch entry.Type {
		case investments.EntryContribution:
			invested = invested.Add(entry.Value)
			if entry.Description == investments.ReinvestmentDescription {
				profit = profit.Sub(entry.Value)
			}
		case investments.EntryProfit:
			profit = profit.Add(entry.Value)
		case investments.EntryWithdrawal:
			profit = profit.Sub(entry.Value)
		}
	}

	var out []Mismatch
	if !inv.InvestedAmount.Equal(invested) {
		out = append(out, Mismatch{
			Entity: "investment", ID: inv.ID.String(), Name: inv.Name,
			Field: "invested_amount", Stored: inv.InvestedAmount, Want: invested,
		})
	}
	if !inv.TotalProfit.Equal(profit) {
		out = append(out, Mismatch{
			Entity: "investment", ID: inv.ID.String(), Name: inv.Name,
			Field: "total_profit", Stored: inv.TotalProfit, Want: profit,
		})
	}
	return out
}

// checkPiggyBank can only bound the balance: withdrawals leave no log entry,
// so the stored amount must not exceed the sum of contributions and profits.
func checkPiggyBank(pb *piggybanks.PiggyBank) []Mismatch {
	ceiling := decimal.Zero
	for _, entry := range pb.Contributions {
		ceiling = ceiling.Add(entry.Value)
	}
	profit := decimal.Zero
	for _, entry := range pb.Profits {
		profit = profit.Add(entry.Value)
	}
	ceiling = ceiling.Add(profit)

	var out []Mismatch
	if pb.CurrentAmount.GreaterThan(ceiling) {
		out = append(out, Mismatch{
			Entity: "piggy_bank", ID: pb.ID.String(), Name: pb.Name,
			Field: "current_amount", Stored: pb.CurrentAmount, Want: ceiling,
		})
	}
	if !pb.TotalProfit.Equal(profit) {
		out = append(out, Mismatch{
			Entity: "piggy_bank", ID: pb.ID.String(), Name: pb.Name,
			Field: "total_profit", Stored: pb.TotalProfit, Want: profit,
		})
	}
	return out
}
