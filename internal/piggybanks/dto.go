package piggybanks

import "github.com/shopspring/decimal"

type CreatePiggyBankRequest struct {
	Name          string          `json:"name" validate:"required,max=200"`
	Description   string          `json:"description" validate:"omitempty,max=500"`
	CurrentAmount decimal.Decimal `json:"currentAmount" validate:"required"`
	Currency      string          `json:"currency" validate:"omitempty,len=3"`
}

type UpdatePiggyBankRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	Currency    *string `json:"currency,omitempty" validate:"omitempty,len=3"`
	Status      *Status `json:"status,omitempty" validate:"omitempty,oneof=active closed"`
}

type AmountRequest struct {
	Value       decimal.Decimal `json:"value" validate:"required"`
	Description string          `json:"description" validate:"omitempty,max=500"`
}
