package piggybanks

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
	items map[uuid.UUID]*PiggyBank
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{items: make(map[uuid.UUID]*PiggyBank)}
}

func (r *memoryRepo) WithTx(ctx context.Context, fn func(context.Context, Repository) error) error {
	return fn(ctx, r)
}

func (r *memoryRepo) Get(ctx context.Context, id uuid.UUID) (*PiggyBank, error) {
	pb, ok := r.items[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	clone := *pb
	return &clone, nil
}

func (r *memoryRepo) GetForUpdate(ctx context.Context, id uuid.UUID) (*PiggyBank, error) {
	return r.Get(ctx, id)
}

func (r *memoryRepo) ListByOwner(ctx context.Context, userID uuid.UUID) ([]PiggyBank, error) {
	var out []PiggyBank
	for _, pb := range r.items {
		if pb.UserID == userID {
			out = append(out, *pb)
		}
	}
	return out, nil
}

func (r *memoryRepo) ListByOwnerAndStatus(ctx context.Context, userID uuid.UUID, status Status) ([]PiggyBank, error) {
	var out []PiggyBank
	for _, pb := range r.items {
		if pb.UserID == userID && pb.Status == status {
			out = append(out, *pb)
		}
	}
	return out, nil
}

func (r *memoryRepo) ListAll(ctx context.Context) ([]PiggyBank, error) {
	var out []PiggyBank
	for _, pb := range r.items {
		out = append(out, *pb)
	}
	return out, nil
}

func (r *memoryRepo) Create(ctx context.Context, pb *PiggyBank) error {
	clone := *pb
	r.items[pb.ID] = &clone
	return nil
}

func (r *memoryRepo) Save(ctx context.Context, pb *PiggyBank) error {
	if _, ok := r.items[pb.ID]; !ok {
		return shared.ErrNotFound
	}
	clone := *pb
	r.items[pb.ID] = &clone
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

func dec(v string) decimal.Decimal {
	d, err := decimal.NewFromString(v)
	if err != nil {
		panic(err)
	}
	return d
}

func newTestService(repo Repository) *Service {
	svc := NewService(repo)
	svc.now = func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) }
	return svc
}

func TestCreateSeedsContributionLog(t *testing.T) {
	svc := newTestService(newMemoryRepo())

	pb, err := svc.Create(context.Background(), uuid.New(), CreatePiggyBankRequest{
		Name:          "Reserva de emergência",
		CurrentAmount: dec("500"),
	})
	require.NoError(t, err)

	require.Equal(t, DefaultCurrency, pb.Currency)
	require.Equal(t, StatusActive, pb.Status)
	require.Len(t, pb.Contributions, 1)
	require.Equal(t, InitialContributionDescription, pb.Contributions[0].Description)
	require.True(t, pb.Contributions[0].Value.Equal(dec("500")))
	require.Empty(t, pb.Profits)
}

func TestCreateWithZeroAmountSeedsNoLog(t *testing.T) {
	svc := newTestService(newMemoryRepo())

	pb, err := svc.Create(context.Background(), uuid.New(), CreatePiggyBankRequest{
		Name:          "Viagem",
		CurrentAmount: decimal.Zero,
	})
	require.NoError(t, err)
	require.Empty(t, pb.Contributions)
}

func TestContributeAppendsLogEntry(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	pb, err := svc.Create(ctx, uuid.New(), CreatePiggyBankRequest{Name: "Meta", CurrentAmount: dec("100")})
	require.NoError(t, err)

	got, err := svc.Contribute(ctx, pb.ID, AmountRequest{Value: dec("50"), Description: "mesada"})
	require.NoError(t, err)
	require.True(t, got.CurrentAmount.Equal(dec("150")))
	require.Len(t, got.Contributions, 2)
	require.Equal(t, "mesada", got.Contributions[1].Description)
}

func TestWithdrawAdjustsBalanceWithoutLogEntry(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	pb, err := svc.Create(ctx, uuid.New(), CreatePiggyBankRequest{Name: "Meta", CurrentAmount: dec("200")})
	require.NoError(t, err)

	got, err := svc.Withdraw(ctx, pb.ID, AmountRequest{Value: dec("80")})
	require.NoError(t, err)
	require.True(t, got.CurrentAmount.Equal(dec("120")))
	// The contributions log keeps only the opening entry.
	require.Len(t, got.Contributions, 1)
	require.Empty(t, got.Profits)
}

func TestWithdrawRejectsMoreThanBalance(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	pb, err := svc.Create(ctx, uuid.New(), CreatePiggyBankRequest{Name: "Meta", CurrentAmount: dec("50")})
	require.NoError(t, err)

	_, err = svc.Withdraw(ctx, pb.ID, AmountRequest{Value: dec("51")})
	require.ErrorIs(t, err, shared.ErrInvalidWithdrawal)

	stored, err := repo.Get(ctx, pb.ID)
	require.NoError(t, err)
	require.True(t, stored.CurrentAmount.Equal(dec("50")))
}

func TestProfitGoesToSeparateLog(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	pb, err := svc.Create(ctx, uuid.New(), CreatePiggyBankRequest{Name: "Meta", CurrentAmount: dec("100")})
	require.NoError(t, err)

	got, err := svc.AddProfit(ctx, pb.ID, AmountRequest{Value: dec("3.21"), Description: "rendimento"})
	require.NoError(t, err)
	require.True(t, got.TotalProfit.Equal(dec("3.21")))
	require.Len(t, got.Profits, 1)
	require.Len(t, got.Contributions, 1)
}

func TestClosedPiggyBankRejectsOperations(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	pb, err := svc.Create(ctx, uuid.New(), CreatePiggyBankRequest{Name: "Meta", CurrentAmount: dec("100")})
	require.NoError(t, err)

	closed := StatusClosed
	_, err = svc.Update(ctx, pb.ID, UpdatePiggyBankRequest{Status: &closed})
	require.NoError(t, err)

	_, err = svc.Contribute(ctx, pb.ID, AmountRequest{Value: dec("10")})
	require.ErrorIs(t, err, shared.ErrClosed)
	_, err = svc.AddProfit(ctx, pb.ID, AmountRequest{Value: dec("10")})
	require.ErrorIs(t, err, shared.ErrClosed)
}

func TestOperationsOnMissingPiggyBank(t *testing.T) {
	svc := newTestService(newMemoryRepo())
	ctx := context.Background()

	_, err := svc.Contribute(ctx, uuid.New(), AmountRequest{Value: dec("10")})
	require.ErrorIs(t, err, shared.ErrNotFound)
	require.ErrorIs(t, svc.Delete(ctx, uuid.New()), shared.ErrNotFound)
}
