package investments

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateInvestmentRequest struct {
	Name           string           `json:"name" validate:"required,max=200"`
	Type           string           `json:"type" validate:"omitempty,max=100"`
	InvestedAmount decimal.Decimal  `json:"investedAmount" validate:"required"`
	Quantity       *decimal.Decimal `json:"quantity,omitempty"`
	MonthlyRate    *decimal.Decimal `json:"monthlyRate,omitempty"`
	DailyLiquidity bool             `json:"dailyLiquidity"`
	DailyProfit    *decimal.Decimal `json:"dailyProfit,omitempty"`
	HasDailyProfit bool             `json:"hasDailyProfit"`
	Currency       string           `json:"currency" validate:"omitempty,len=3"`
	StartDate      *time.Time       `json:"startDate,omitempty"`
}

type UpdateInvestmentRequest struct {
	Name           *string          `json:"name,omitempty" validate:"omitempty,max=200"`
	Type           *string          `json:"type,omitempty" validate:"omitempty,max=100"`
	MonthlyRate    *decimal.Decimal `json:"monthlyRate,omitempty"`
	DailyLiquidity *bool            `json:"dailyLiquidity,omitempty"`
	DailyProfit    *decimal.Decimal `json:"dailyProfit,omitempty"`
	HasDailyProfit *bool            `json:"hasDailyProfit,omitempty"`
	Currency       *string          `json:"currency,omitempty" validate:"omitempty,len=3"`
	Status         *Status          `json:"status,omitempty" validate:"omitempty,oneof=active closed"`
}

type ContributionRequest struct {
	Value       decimal.Decimal  `json:"value" validate:"required"`
	Description string           `json:"description" validate:"omitempty,max=500"`
	Quantity    *decimal.Decimal `json:"quantity,omitempty"`
}

type ProfitRequest struct {
	Value       decimal.Decimal `json:"value" validate:"required"`
	Description string          `json:"description" validate:"omitempty,max=500"`
}

type WithdrawalRequest struct {
	Value       decimal.Decimal  `json:"value" validate:"required"`
	Description string           `json:"description" validate:"omitempty,max=500"`
	Quantity    *decimal.Decimal `json:"quantity,omitempty"`
}

type ReinvestRequest struct {
	Value *decimal.Decimal `json:"value,omitempty"`
}
