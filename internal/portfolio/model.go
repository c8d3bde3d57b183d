package portfolio

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/poupanca/poupanca/internal/investments"
)

// PiggyBankType is the sentinel investment type assigned to piggy banks when
// they are presented in the investment list shape.
const PiggyBankType = "Cofrinho"

// MonthlyPoint is one bucket of the trailing profit series.
type MonthlyPoint struct {
	Month  string          `json:"month"`
	Profit decimal.Decimal `json:"profit"`
}

// Statistics aggregates a user's active investments and piggy banks.
type Statistics struct {
	TotalInvested      decimal.Decimal `json:"totalInvested"`
	TotalProfit        decimal.Decimal `json:"totalProfit"`
	CurrentMonthProfit decimal.Decimal `json:"currentMonthProfit"`
	MonthlyEvolution   []MonthlyPoint  `json:"monthlyEvolution"`
	InvestmentsCount   int             `json:"investmentsCount"`
	PiggyBanksCount    int             `json:"piggyBanksCount"`
	TotalInPiggyBanks  decimal.Decimal `json:"totalInPiggyBanks"`
}

// PiggyBankData carries the piggy-bank specific fields on a display record.
type PiggyBankData struct {
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Description   string          `json:"description"`
}

// DisplayInvestment is the unified list shape: real investments plus piggy
// banks mapped into the same silhouette. Consumers use IsPiggyBank to
// restrict which operations they offer.
type DisplayInvestment struct {
	ID             uuid.UUID                  `json:"id"`
	UserID         uuid.UUID                  `json:"userId"`
	Name           string                     `json:"name"`
	Type           string                     `json:"type"`
	Currency       string                     `json:"currency"`
	InvestedAmount decimal.Decimal            `json:"investedAmount"`
	Quantity       decimal.Decimal            `json:"quantity"`
	MonthlyRate    decimal.Decimal            `json:"monthlyRate"`
	TotalProfit    decimal.Decimal            `json:"totalProfit"`
	DailyLiquidity bool                       `json:"dailyLiquidity"`
	DailyProfit    decimal.Decimal            `json:"dailyProfit"`
	HasDailyProfit bool                       `json:"hasDailyProfit"`
	Status         string                     `json:"status"`
	StartDate      time.Time                  `json:"startDate"`
	History        []investments.HistoryEntry `json:"history"`
	CreatedAt      time.Time                  `json:"createdAt"`
	IsPiggyBank    bool                       `json:"isPiggyBank"`
	PiggyBankData  *PiggyBankData             `json:"piggyBankData,omitempty"`
}
