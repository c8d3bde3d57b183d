package investments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/poupanca/poupanca/internal/platform/db"
	"github.com/poupanca/poupanca/internal/shared"
)

// Repository provides PostgreSQL backed persistence for investments. Each
// document carries its history embedded verbatim as a JSONB array.
type Repository interface {
	WithTx(ctx context.Context, fn func(context.Context, Repository) error) error
	Get(ctx context.Context, id uuid.UUID) (*Investment, error)
	// GetForUpdate takes a row lock; only meaningful inside WithTx.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*Investment, error)
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]Investment, error)
	ListByOwnerAndStatus(ctx context.Context, userID uuid.UUID, status Status) ([]Investment, error)
	// ListAll walks every investment regardless of owner; used by background scans.
	ListAll(ctx context.Context) ([]Investment, error)
	Create(ctx context.Context, inv *Investment) error
	Save(ctx context.Context, inv *Investment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type dbtx interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

type repository struct {
	db   dbtx
	pool *pgxpool.Pool
}

// NewRepository constructs a repository over a pgx pool.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{db: pool, pool: pool}
}

func (r *repository) WithTx(ctx context.Context, fn func(context.Context, Repository) error) error {
	return db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		return fn(ctx, &repository{db: tx, pool: r.pool})
	})
}

const investmentColumns = `id, user_id, name, type, currency, invested_amount, quantity,
	monthly_rate, total_profit, daily_liquidity, daily_profit, has_daily_profit,
	status, start_date, history, created_at, updated_at`

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*Investment, error) {
	query := fmt.Sprintf(`SELECT %s FROM investments WHERE id = $1`, investmentColumns)
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *repository) GetForUpdate(ctx context.Context, id uuid.UUID) (*Investment, error) {
	query := fmt.Sprintf(`SELECT %s FROM investments WHERE id = $1 FOR UPDATE`, investmentColumns)
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *repository) ListByOwner(ctx context.Context, userID uuid.UUID) ([]Investment, error) {
	query := fmt.Sprintf(`SELECT %s FROM investments WHERE user_id = $1 ORDER BY created_at DESC`, investmentColumns)
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanMany(rows)
}

func (r *repository) ListByOwnerAndStatus(ctx context.Context, userID uuid.UUID, status Status) ([]Investment, error) {
	query := fmt.Sprintf(`SELECT %s FROM investments WHERE user_id = $1 AND status = $2 ORDER BY created_at DESC`, investmentColumns)
	rows, err := r.db.Query(ctx, query, userID, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanMany(rows)
}

func (r *repository) ListAll(ctx context.Context) ([]Investment, error) {
	query := fmt.Sprintf(`SELECT %s FROM investments ORDER BY created_at`, investmentColumns)
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanMany(rows)
}

func (r *repository) Create(ctx context.Context, inv *Investment) error {
	history, err := json.Marshal(inv.History)
	if err != nil {
		return fmt.Errorf("investments: marshal history: %w", err)
	}

	query := `
		INSERT INTO investments (
			id, user_id, name, type, currency, invested_amount, quantity,
			monthly_rate, total_profit, daily_liquidity, daily_profit,
			has_daily_profit, status, start_date, history, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $16)`

	inv.CreatedAt = time.Now().UTC()
	inv.UpdatedAt = inv.CreatedAt
	_, err = r.db.Exec(ctx, query,
		inv.ID, inv.UserID, inv.Name, inv.Type, inv.Currency,
		inv.InvestedAmount, inv.Quantity, inv.MonthlyRate, inv.TotalProfit,
		inv.DailyLiquidity, inv.DailyProfit, inv.HasDailyProfit,
		inv.Status, inv.StartDate, history, inv.CreatedAt,
	)
	return err
}

func (r *repository) Save(ctx context.Context, inv *Investment) error {
	history, err := json.Marshal(inv.History)
	if err != nil {
		return fmt.Errorf("investments: marshal history: %w", err)
	}

	query := `
		UPDATE investments SET
			name = $2, type = $3, currency = $4, invested_amount = $5,
			quantity = $6, monthly_rate = $7, total_profit = $8,
			daily_liquidity = $9, daily_profit = $10, has_daily_profit = $11,
			status = $12, start_date = $13, history = $14, updated_at = $15
		WHERE id = $1`

	inv.UpdatedAt = time.Now().UTC()
	tag, err := r.db.Exec(ctx, query,
		inv.ID, inv.Name, inv.Type, inv.Currency, inv.InvestedAmount,
		inv.Quantity, inv.MonthlyRate, inv.TotalProfit,
		inv.DailyLiquidity, inv.DailyProfit, inv.HasDailyProfit,
		inv.Status, inv.StartDate, history, inv.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM investments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *repository) scanOne(row pgx.Row) (*Investment, error) {
	var inv Investment
	var history []byte
	err := row.Scan(
		&inv.ID, &inv.UserID, &inv.Name, &inv.Type, &inv.Currency,
		&inv.InvestedAmount, &inv.Quantity, &inv.MonthlyRate, &inv.TotalProfit,
		&inv.DailyLiquidity, &inv.DailyProfit, &inv.HasDailyProfit,
		&inv.Status, &inv.StartDate, &history, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(history, &inv.History); err != nil {
		return nil, fmt.Errorf("investments: unmarshal history: %w", err)
	}
	return &inv, nil
}

func (r *repository) scanMany(rows pgx.Rows) ([]Investment, error) {
	var out []Investment
	for rows.Next() {
		var inv Investment
		var history []byte
		err := rows.Scan(
			&inv.ID, &inv.UserID, &inv.Name, &inv.Type, &inv.Currency,
			&inv.InvestedAmount, &inv.Quantity, &inv.MonthlyRate, &inv.TotalProfit,
			&inv.DailyLiquidity, &inv.DailyProfit, &inv.HasDailyProfit,
			&inv.Status, &inv.StartDate, &history, &inv.CreatedAt, &inv.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(history, &inv.History); err != nil {
			return nil, fmt.Errorf("investments: unmarshal history: %w", err)
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}
