package investments

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/poupanca/poupanca/internal/shared"
)

// Status represents the lifecycle state of an investment.
type Status string

const (
	StatusActive Status = "active"
	StatusClosed Status = "closed"
)

// EntryType classifies a history entry. The value of an entry is always a
// positive magnitude; direction is implied by the type, never by sign.
type EntryType string

const (
	EntryContribution EntryType = "CONTRIBUTION"
	EntryProfit       EntryType = "PROFIT"
	EntryWithdrawal   EntryType = "WITHDRAWAL"
)

// Fixed descriptions used on system-generated history entries.
const (
	InitialContributionDescription = "Initial contribution"
	ReinvestmentDescription        = "Profit reinvestment"
)

// HistoryEntry is one immutable record of a ledger operation, embedded in
// the investment document. The slice is append-only: entries are never
// edited or removed except by whole-entity deletion.
type HistoryEntry struct {
	Type        EntryType       `json:"type"`
	Value       decimal.Decimal `json:"value"`
	Quantity    decimal.Decimal `json:"quantity"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
}

// Investment is a user-owned asset with a principal, accumulated profit and
// an embedded operation history.
type Investment struct {
	ID             uuid.UUID       `json:"id"`
	UserID         uuid.UUID       `json:"userId"`
	Name           string          `json:"name"`
	Type           string          `json:"type"`
	Currency       string          `json:"currency"`
	InvestedAmount decimal.Decimal `json:"investedAmount"`
	Quantity       decimal.Decimal `json:"quantity"`
	MonthlyRate    decimal.Decimal `json:"monthlyRate"`
	TotalProfit    decimal.Decimal `json:"totalProfit"`
	DailyLiquidity bool            `json:"dailyLiquidity"`
	DailyProfit    decimal.Decimal `json:"dailyProfit"`
	HasDailyProfit bool            `json:"hasDailyProfit"`
	Status         Status          `json:"status"`
	StartDate      time.Time       `json:"startDate"`
	History        []HistoryEntry  `json:"history"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// ApplyContribution adds value to the principal and quantity to the unit
// count, appending the matching history entry. Validation happens fully
// before any mutation.
func (i *Investment) ApplyContribution(value, quantity decimal.Decimal, description string, at time.Time) error {
	if value.LessThanOrEqual(decimal.Zero) {
		return shared.ErrInvalidAmount
	}

	i.InvestedAmount = i.InvestedAmount.Add(value)
	if quantity.GreaterThan(decimal.Zero) {
		i.Quantity = i.Quantity.Add(quantity)
	}
	i.appendHistory(HistoryEntry{
		Type:        EntryContribution,
		Value:       value,
		Quantity:    maxZero(quantity),
		Date:        at,
		Description: description,
	})
	return nil
}

// ApplyProfit adds value to the accumulated profit. The principal is not
// touched.
func (i *Investment) ApplyProfit(value decimal.Decimal, description string, at time.Time) error {
	if value.LessThanOrEqual(decimal.Zero) {
		return shared.ErrInvalidAmount
	}

	i.TotalProfit = i.TotalProfit.Add(value)
	i.appendHistory(HistoryEntry{
		Type:        EntryProfit,
		Value:       value,
		Quantity:    decimal.Zero,
		Date:        at,
		Description: description,
	})
	return nil
}

// ApplyWithdrawal draws value from the accumulated profit, optionally
// releasing quantity units. Withdrawals never reduce the principal: they are
// paid exclusively out of profit. Deliberate policy, not a bug.
func (i *Investment) ApplyWithdrawal(value, quantity decimal.Decimal, description string, at time.Time) error {
	if value.LessThanOrEqual(decimal.Zero) {
		return shared.ErrInvalidAmount
	}
	if quantity.GreaterThan(decimal.Zero) && quantity.GreaterThan(i.Quantity) {
		return shared.ErrInsufficientUnits
	}
	if value.GreaterThan(i.TotalProfit) {
		return shared.ErrInvalidWithdrawal
	}

	if quantity.GreaterThan(decimal.Zero) {
		i.Quantity = i.Quantity.Sub(quantity)
	}
	i.TotalProfit = i.TotalProfit.Sub(value)
	i.appendHistory(HistoryEntry{
		Type:        EntryWithdrawal,
		Value:       value,
		Quantity:    maxZero(quantity),
		Date:        at,
		Description: description,
	})
	return nil
}

// ApplyReinvestment moves value from the accumulated profit into the
// principal. A nil value reinvests the full profit. Returns the amount
// actually moved.
func (i *Investment) ApplyReinvestment(value *decimal.Decimal, at time.Time) (decimal.Decimal, error) {
	amount := i.TotalProfit
	if value != nil {
		amount = *value
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, shared.ErrInvalidAmount
	}
	if amount.GreaterThan(i.TotalProfit) {
		return decimal.Zero, shared.ErrInvalidReinvestment
	}

	i.TotalProfit = i.TotalProfit.Sub(amount)
	i.InvestedAmount = i.InvestedAmount.Add(amount)
	i.appendHistory(HistoryEntry{
		Type:        EntryContribution,
		Value:       amount,
		Quantity:    decimal.Zero,
		Date:        at,
		Description: ReinvestmentDescription,
	})
	return amount, nil
}

func (i *Investment) appendHistory(entry HistoryEntry) {
	i.History = append(i.History, entry)
}

func maxZero(d decimal.Decimal) decimal.Decimal {
	if d.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return d
}
