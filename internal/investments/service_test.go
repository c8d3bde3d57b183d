package investments

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/poupanca/poupanca/internal/shared"
)

type memoryRepo struct {
	items map[uuid.UUID]*Investment
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{items: make(map[uuid.UUID]*Investment)}
}

func (r *memoryRepo) WithTx(ctx context.Context, fn func(context.Context, Repository) error) error {
	return fn(ctx, r)
}

func (r *memoryRepo) Get(ctx context.Context, id uuid.UUID) (*Investment, error) {
	inv, ok := r.items[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	clone := *inv
	return &clone, nil
}

func (r *memoryRepo) GetForUpdate(ctx context.Context, id uuid.UUID) (*Investment, error) {
	return r.Get(ctx, id)
}

func (r *memoryRepo) ListByOwner(ctx context.Context, userID uuid.UUID) ([]Investment, error) {
	var out []Investment
	for _, inv := range r.items {
		if inv.UserID == userID {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (r *memoryRepo) ListByOwnerAndStatus(ctx context.Context, userID uuid.UUID, status Status) ([]Investment, error) {
	var out []Investment
	for _, inv := range r.items {
		if inv.UserID == userID && inv.Status == status {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (r *memoryRepo) ListAll(ctx context.Context) ([]Investment, error) {
	var out []Investment
	for _, inv := range r.items {
		out = append(out, *inv)
	}
	return out, nil
}

func (r *memoryRepo) Create(ctx context.Context, inv *Investment) error {
	clone := *inv
	r.items[inv.ID] = &clone
	return nil
}

func (r *memoryRepo) Save(ctx context.Context, inv *Investment) error {
	if _, ok := r.items[inv.ID]; !ok {
		return shared.ErrNotFound
	}
	clone := *inv
	r.items[inv.ID] = &clone
	return nil
}

func (r *memoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.items[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

var _ Repository = (*memoryRepo)(nil)

func newTestService(repo Repository) *Service {
	svc := NewService(repo)
	svc.now = func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) }
	return svc
}

func TestCreateSeedsInitialContribution(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)
	userID := uuid.New()

	inv, err := svc.Create(context.Background(), userID, CreateInvestmentRequest{
		Name:           "Tesouro Selic",
		InvestedAmount: dec("1500"),
	})
	require.NoError(t, err)

	require.Equal(t, userID, inv.UserID)
	require.Equal(t, DefaultType, inv.Type)
	require.Equal(t, DefaultCurrency, inv.Currency)
	require.Equal(t, StatusActive, inv.Status)
	require.Len(t, inv.History, 1)
	require.Equal(t, EntryContribution, inv.History[0].Type)
	require.Equal(t, InitialContributionDescription, inv.History[0].Description)
	require.True(t, inv.History[0].Value.Equal(dec("1500")))
	require.Equal(t, inv.StartDate, inv.History[0].Date)
}

func TestCreateWithZeroAmountSeedsNoHistory(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)

	inv, err := svc.Create(context.Background(), uuid.New(), CreateInvestmentRequest{
		Name:           "Carteira futura",
		InvestedAmount: decimal.Zero,
	})
	require.NoError(t, err)
	require.Empty(t, inv.History)
}

func TestCreateRejectsNegativeAmount(t *testing.T) {
	svc := newTestService(newMemoryRepo())

	_, err := svc.Create(context.Background(), uuid.New(), CreateInvestmentRequest{
		Name:           "Inválido",
		InvestedAmount: dec("-10"),
	})
	require.ErrorIs(t, err, shared.ErrInvalidAmount)
}

func TestCreateRejectsNegativeNumericFields(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)

	cases := []CreateInvestmentRequest{
		{Name: "Inválido", InvestedAmount: dec("100"), Quantity: ptr(dec("-5"))},
		{Name: "Inválido", InvestedAmount: dec("100"), MonthlyRate: ptr(dec("-3"))},
		{Name: "Inválido", InvestedAmount: dec("100"), DailyProfit: ptr(dec("-0.01"))},
	}
	for _, req := range cases {
		_, err := svc.Create(context.Background(), uuid.New(), req)
		require.ErrorIs(t, err, shared.ErrInvalidAmount)
	}

	// Nothing may have been stored along the way.
	require.Empty(t, repo.items)
}

func TestUpdateRejectsNegativeRates(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)

	inv, err := svc.Create(context.Background(), uuid.New(), CreateInvestmentRequest{
		Name:           "CDB",
		InvestedAmount: dec("100"),
		MonthlyRate:    ptr(dec("1.1")),
	})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), inv.ID, UpdateInvestmentRequest{
		MonthlyRate: ptr(dec("-1")),
	})
	require.ErrorIs(t, err, shared.ErrInvalidAmount)

	_, err = svc.Update(context.Background(), inv.ID, UpdateInvestmentRequest{
		DailyProfit: ptr(dec("-0.5")),
	})
	require.ErrorIs(t, err, shared.ErrInvalidAmount)

	stored, err := repo.Get(context.Background(), inv.ID)
	require.NoError(t, err)
	require.True(t, stored.MonthlyRate.Equal(dec("1.1")))
}

func TestLedgerOperationsPersistThroughRepository(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	inv, err := svc.Create(ctx, uuid.New(), CreateInvestmentRequest{
		Name:           "FII XPTO",
		InvestedAmount: dec("1000"),
	})
	require.NoError(t, err)

	_, err = svc.AddProfit(ctx, inv.ID, ProfitRequest{Value: dec("50"), Description: "dividends"})
	require.NoError(t, err)

	_, err = svc.Withdraw(ctx, inv.ID, WithdrawalRequest{Value: dec("80")})
	require.ErrorIs(t, err, shared.ErrInvalidWithdrawal)

	got, err := svc.Withdraw(ctx, inv.ID, WithdrawalRequest{Value: dec("30")})
	require.NoError(t, err)
	require.True(t, got.TotalProfit.Equal(dec("20")))
	require.True(t, got.InvestedAmount.Equal(dec("1000")))

	stored, err := repo.Get(ctx, inv.ID)
	require.NoError(t, err)
	require.Len(t, stored.History, 3)
	require.True(t, stored.TotalProfit.Equal(dec("20")))
}

func TestFailedOperationLeavesNoTrace(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	inv, err := svc.Create(ctx, uuid.New(), CreateInvestmentRequest{
		Name:           "CDB",
		InvestedAmount: dec("1000"),
	})
	require.NoError(t, err)

	_, err = svc.Withdraw(ctx, inv.ID, WithdrawalRequest{Value: dec("1")})
	require.ErrorIs(t, err, shared.ErrInvalidWithdrawal)

	stored, err := repo.Get(ctx, inv.ID)
	require.NoError(t, err)
	require.Len(t, stored.History, 1)
	require.True(t, stored.InvestedAmount.Equal(dec("1000")))
	require.True(t, stored.TotalProfit.IsZero())
}

func TestReinvestFullProfitByDefault(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	inv, err := svc.Create(ctx, uuid.New(), CreateInvestmentRequest{
		Name:           "ETF IVVB",
		InvestedAmount: dec("2000"),
	})
	require.NoError(t, err)
	_, err = svc.AddProfit(ctx, inv.ID, ProfitRequest{Value: dec("150")})
	require.NoError(t, err)

	got, err := svc.Reinvest(ctx, inv.ID, ReinvestRequest{})
	require.NoError(t, err)
	require.True(t, got.TotalProfit.IsZero())
	require.True(t, got.InvestedAmount.Equal(dec("2150")))

	last := got.History[len(got.History)-1]
	require.Equal(t, ReinvestmentDescription, last.Description)
	require.Equal(t, EntryContribution, last.Type)
}

func TestUpdateOnlyTouchesDescriptiveFields(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	inv, err := svc.Create(ctx, uuid.New(), CreateInvestmentRequest{
		Name:           "Antes",
		InvestedAmount: dec("300"),
	})
	require.NoError(t, err)

	name := "Depois"
	status := StatusClosed
	updated, err := svc.Update(ctx, inv.ID, UpdateInvestmentRequest{Name: &name, Status: &status})
	require.NoError(t, err)

	require.Equal(t, "Depois", updated.Name)
	require.Equal(t, StatusClosed, updated.Status)
	require.True(t, updated.InvestedAmount.Equal(dec("300")))
	require.Len(t, updated.History, 1)
}

func TestOperationsOnMissingInvestment(t *testing.T) {
	svc := newTestService(newMemoryRepo())
	ctx := context.Background()

	_, err := svc.AddContribution(ctx, uuid.New(), ContributionRequest{Value: dec("10")})
	require.ErrorIs(t, err, shared.ErrNotFound)
	_, err = svc.Get(ctx, uuid.New())
	require.ErrorIs(t, err, shared.ErrNotFound)
	require.ErrorIs(t, svc.Delete(ctx, uuid.New()), shared.ErrNotFound)
}
