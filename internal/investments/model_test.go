package investments

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/poupanca/poupanca/internal/shared"
)

func dec(v string) decimal.Decimal {
	d, err := decimal.NewFromString(v)
	if err != nil {
		panic(err)
	}
	return d
}

func activeInvestment() *Investment {
	return &Investment{
		Name:     "CDB Liquidez",
		Type:     "Renda Fixa",
		Currency: "BRL",
		Status:   StatusActive,
	}
}

func TestApplyContributionIncreasesPrincipal(t *testing.T) {
	inv := activeInvestment()
	at := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	require.NoError(t, inv.ApplyContribution(dec("1000"), dec("10"), "first buy", at))

	require.True(t, inv.InvestedAmount.Equal(dec("1000")))
	require.True(t, inv.Quantity.Equal(dec("10")))
	require.True(t, inv.TotalProfit.IsZero())
	require.Len(t, inv.History, 1)
	require.Equal(t, EntryContribution, inv.History[0].Type)
	require.True(t, inv.History[0].Value.Equal(dec("1000")))
	require.Equal(t, "first buy", inv.History[0].Description)
	require.Equal(t, at, inv.History[0].Date)
}

func TestApplyContributionRejectsNonPositive(t *testing.T) {
	inv := activeInvestment()

	err := inv.ApplyContribution(decimal.Zero, decimal.Zero, "", time.Now())
	require.ErrorIs(t, err, shared.ErrInvalidAmount)
	err = inv.ApplyContribution(dec("-5"), decimal.Zero, "", time.Now())
	require.ErrorIs(t, err, shared.ErrInvalidAmount)

	require.True(t, inv.InvestedAmount.IsZero())
	require.Empty(t, inv.History)
}

func TestApplyProfitAccumulatesWithoutTouchingPrincipal(t *testing.T) {
	inv := activeInvestment()
	require.NoError(t, inv.ApplyContribution(dec("1000"), decimal.Zero, "", time.Now()))

	require.NoError(t, inv.ApplyProfit(dec("50"), "monthly yield", time.Now()))

	require.True(t, inv.InvestedAmount.Equal(dec("1000")))
	require.True(t, inv.TotalProfit.Equal(dec("50")))
	require.Len(t, inv.History, 2)
	require.Equal(t, EntryProfit, inv.History[1].Type)
}

func TestWithdrawalComesOnlyFromProfit(t *testing.T) {
	inv := activeInvestment()
	require.NoError(t, inv.ApplyContribution(dec("1000"), decimal.Zero, "", time.Now()))
	require.NoError(t, inv.ApplyProfit(dec("50"), "", time.Now()))

	// More than the profit balance, even though principal could cover it.
	err := inv.ApplyWithdrawal(dec("80"), decimal.Zero, "", time.Now())
	require.ErrorIs(t, err, shared.ErrInvalidWithdrawal)
	require.True(t, inv.InvestedAmount.Equal(dec("1000")))
	require.True(t, inv.TotalProfit.Equal(dec("50")))
	require.Len(t, inv.History, 2)

	require.NoError(t, inv.ApplyWithdrawal(dec("30"), decimal.Zero, "partial", time.Now()))
	require.True(t, inv.InvestedAmount.Equal(dec("1000")))
	require.True(t, inv.TotalProfit.Equal(dec("20")))
	require.Len(t, inv.History, 3)
	require.Equal(t, EntryWithdrawal, inv.History[2].Type)
}

func TestWithdrawalChecksUnitCount(t *testing.T) {
	inv := activeInvestment()
	require.NoError(t, inv.ApplyContribution(dec("1000"), dec("5"), "", time.Now()))
	require.NoError(t, inv.ApplyProfit(dec("100"), "", time.Now()))

	err := inv.ApplyWithdrawal(dec("10"), dec("6"), "", time.Now())
	require.ErrorIs(t, err, shared.ErrInsufficientUnits)
	require.True(t, inv.Quantity.Equal(dec("5")))

	require.NoError(t, inv.ApplyWithdrawal(dec("10"), dec("2"), "", time.Now()))
	require.True(t, inv.Quantity.Equal(dec("3")))
}

func TestReinvestmentMovesProfitIntoPrincipal(t *testing.T) {
	inv := activeInvestment()
	require.NoError(t, inv.ApplyContribution(dec("1000"), decimal.Zero, "", time.Now()))
	require.NoError(t, inv.ApplyProfit(dec("120"), "", time.Now()))

	moved, err := inv.ApplyReinvestment(ptr(dec("70")), time.Now())
	require.NoError(t, err)
	require.True(t, moved.Equal(dec("70")))
	require.True(t, inv.InvestedAmount.Equal(dec("1070")))
	require.True(t, inv.TotalProfit.Equal(dec("50")))

	last := inv.History[len(inv.History)-1]
	require.Equal(t, EntryContribution, last.Type)
	require.Equal(t, ReinvestmentDescription, last.Description)
	require.True(t, last.Value.Equal(dec("70")))
}

func TestReinvestmentDefaultsToFullProfit(t *testing.T) {
	inv := activeInvestment()
	require.NoError(t, inv.ApplyContribution(dec("500"), decimal.Zero, "", time.Now()))
	require.NoError(t, inv.ApplyProfit(dec("45"), "", time.Now()))

	moved, err := inv.ApplyReinvestment(nil, time.Now())
	require.NoError(t, err)
	require.True(t, moved.Equal(dec("45")))
	require.True(t, inv.InvestedAmount.Equal(dec("545")))
	require.True(t, inv.TotalProfit.IsZero())
}

func TestReinvestmentRejectsMoreThanProfit(t *testing.T) {
	inv := activeInvestment()
	require.NoError(t, inv.ApplyProfit(dec("40"), "", time.Now()))

	_, err := inv.ApplyReinvestment(ptr(dec("41")), time.Now())
	require.ErrorIs(t, err, shared.ErrInvalidReinvestment)
	require.True(t, inv.TotalProfit.Equal(dec("40")))
	require.True(t, inv.InvestedAmount.IsZero())

	// Reinvesting with an empty profit balance is also invalid.
	empty := activeInvestment()
	_, err = empty.ApplyReinvestment(nil, time.Now())
	require.ErrorIs(t, err, shared.ErrInvalidAmount)
}

func TestReinvestmentConservesTotalBalance(t *testing.T) {
	inv := activeInvestment()
	require.NoError(t, inv.ApplyContribution(dec("1000"), decimal.Zero, "", time.Now()))
	require.NoError(t, inv.ApplyProfit(dec("250"), "", time.Now()))
	before := inv.InvestedAmount.Add(inv.TotalProfit)

	_, err := inv.ApplyReinvestment(ptr(dec("100")), time.Now())
	require.NoError(t, err)

	after := inv.InvestedAmount.Add(inv.TotalProfit)
	require.True(t, before.Equal(after))
}

func TestHistoryIsAppendOnly(t *testing.T) {
	inv := activeInvestment()
	require.NoError(t, inv.ApplyContribution(dec("100"), decimal.Zero, "a", time.Now()))
	require.NoError(t, inv.ApplyProfit(dec("10"), "b", time.Now()))
	require.NoError(t, inv.ApplyWithdrawal(dec("5"), decimal.Zero, "c", time.Now()))

	require.Len(t, inv.History, 3)
	require.Equal(t, []EntryType{EntryContribution, EntryProfit, EntryWithdrawal},
		[]EntryType{inv.History[0].Type, inv.History[1].Type, inv.History[2].Type})
	for _, entry := range inv.History {
		require.True(t, entry.Value.GreaterThan(decimal.Zero), "entry values are positive magnitudes")
	}
}

func ptr(d decimal.Decimal) *decimal.Decimal {
	return &d
}
