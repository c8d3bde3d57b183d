package piggybanks

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/poupanca/poupanca/internal/shared"
)

// Status represents the lifecycle state of a piggy bank.
type Status string

const (
	StatusActive Status = "active"
	StatusClosed Status = "closed"
)

// InitialContributionDescription tags the entry seeded at creation time.
const InitialContributionDescription = "Initial amount"

// Entry is one record in the contributions or profits log.
type Entry struct {
	Value       decimal.Decimal `json:"value"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
}

// PiggyBank is a simple savings jar: a principal, accumulated profit and two
// append-only logs. It has no rate or liquidity model.
type PiggyBank struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"userId"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Currency      string          `json:"currency"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	TotalProfit   decimal.Decimal `json:"totalProfit"`
	Status        Status          `json:"status"`
	Contributions []Entry         `json:"contributions"`
	Profits       []Entry         `json:"profits"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ApplyContribution adds value to the principal and appends it to the
// contributions log. Requires an active piggy bank.
func (p *PiggyBank) ApplyContribution(value decimal.Decimal, description string, at time.Time) error {
	if value.LessThanOrEqual(decimal.Zero) {
		return shared.ErrInvalidAmount
	}
	if p.Status != StatusActive {
		return shared.ErrClosed
	}

	p.CurrentAmount = p.CurrentAmount.Add(value)
	p.Contributions = append(p.Contributions, Entry{Value: value, Date: at, Description: description})
	return nil
}

// ApplyWithdrawal draws value from the principal. Unlike investment
// withdrawals this appends no log entry, replicating the original system's
// behavior for compatibility.
func (p *PiggyBank) ApplyWithdrawal(value decimal.Decimal) error {
	if value.LessThanOrEqual(decimal.Zero) {
		return shared.ErrInvalidAmount
	}
	if value.GreaterThan(p.CurrentAmount) {
		return shared.ErrInvalidWithdrawal
	}

	p.CurrentAmount = p.CurrentAmount.Sub(value)
	return nil
}

// ApplyProfit adds value to the accumulated profit and appends it to the
// profits log. Requires an active piggy bank.
func (p *PiggyBank) ApplyProfit(value decimal.Decimal, description string, at time.Time) error {
	if value.LessThanOrEqual(decimal.Zero) {
		return shared.ErrInvalidAmount
	}
	if p.Status != StatusActive {
		return shared.ErrClosed
	}

	p.TotalProfit = p.TotalProfit.Add(value)
	p.Profits = append(p.Profits, Entry{Value: value, Date: at, Description: description})
	return nil
}
