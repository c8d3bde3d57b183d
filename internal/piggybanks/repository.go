package piggybanks

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

// Repository provides PostgreSQL backed persistence for piggy banks, with
// the contributions and profits logs embedded as JSONB arrays.
type Repository interface {
	WithTx(ctx context.Context, fn func(context.Context, Repository) error) error
	Get(ctx context.Context, id uuid.UUID) (*PiggyBank, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*PiggyBank, error)
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]PiggyBank, error)
	ListByOwnerAndStatus(ctx context.Context, userID uuid.UUID, status Status) ([]PiggyBank, error)
	// ListAll walks every piggy bank regardless of owner; used by background scans.
	ListAll(ctx context.Context) ([]PiggyBank, error)
	Create(ctx context.Context, pb *PiggyBank) error
	Save(ctx context.Context, pb *PiggyBank) error
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

const piggyBankColumns = `id, user_id, name, description, currency, current_amount,
	total_profit, status, contributions, profits, created_at, updated_at`

func (r *repository) Get(ctx context.Context, id uuid.UUID) (*PiggyBank, error) {
	query := fmt.Sprintf(`SELECT %s FROM piggy_banks WHERE id = $1`, piggyBankColumns)
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *repository) GetForUpdate(ctx context.Context, id uuid.UUID) (*PiggyBank, error) {
	query := fmt.Sprintf(`SELECT %s FROM piggy_banks WHERE id = $1 FOR UPDATE`, piggyBankColumns)
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *repository) ListByOwner(ctx context.Context, userID uuid.UUID) ([]PiggyBank, error) {
	query := fmt.Sprintf(`SELECT %s FROM piggy_banks WHERE user_id = $1 ORDER BY created_at DESC`, piggyBankColumns)
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanMany(rows)
}

func (r *repository) ListByOwnerAndStatus(ctx context.Context, userID uuid.UUID, status Status) ([]PiggyBank, error) {
	query := fmt.Sprintf(`SELECT %s FROM piggy_banks WHERE user_id = $1 AND status = $2 ORDER BY created_at DESC`, piggyBankColumns)
	rows, err := r.db.Query(ctx, query, userID, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanMany(rows)
}

func (r *repository) ListAll(ctx context.Context) ([]PiggyBank, error) {
	query := fmt.Sprintf(`SELECT %s FROM piggy_banks ORDER BY created_at`, piggyBankColumns)
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanMany(rows)
}

func (r *repository) Create(ctx context.Context, pb *PiggyBank) error {
	contributions, profits, err := marshalLogs(pb)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO piggy_banks (
			id, user_id, name, description, currency, current_amount,
			total_profit, status, contributions, profits, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)`

	pb.CreatedAt = time.Now().UTC()
	pb.UpdatedAt = pb.CreatedAt
	_, err = r.db.Exec(ctx, query,
		pb.ID, pb.UserID, pb.Name, pb.Description, pb.Currency,
		pb.CurrentAmount, pb.TotalProfit, pb.Status, contributions, profits,
		pb.CreatedAt,
	)
	return err
}

func (r *repository) Save(ctx context.Context, pb *PiggyBank) error {
	contributions, profits, err := marshalLogs(pb)
	if err != nil {
		return err
	}

	query := `
		UPDATE piggy_banks SET
			name = $2, description = $3, currency = $4, current_amount = $5,
			total_profit = $6, status = $7, contributions = $8, profits = $9,
			updated_at = $10
		WHERE id = $1`

	pb.UpdatedAt = time.Now().UTC()
	tag, err := r.db.Exec(ctx, query,
		pb.ID, pb.Name, pb.Description, pb.Currency, pb.CurrentAmount,
		pb.TotalProfit, pb.Status, contributions, profits, pb.UpdatedAt,
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
	tag, err := r.db.Exec(ctx, `DELETE FROM piggy_banks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func marshalLogs(pb *PiggyBank) ([]byte, []byte, error) {
	contributions, err := json.Marshal(pb.Contributions)
	if err != nil {
		return nil, nil, fmt.Errorf("piggybanks: marshal contributions: %w", err)
	}
	profits, err := json.Marshal(pb.Profits)
	if err != nil {
		return nil, nil, fmt.Errorf("piggybanks: marshal profits: %w", err)
	}
	return contributions, profits, nil
}

func (r *repository) scanOne(row pgx.Row) (*PiggyBank, error) {
	var pb PiggyBank
	var contributions, profits []byte
	err := row.Scan(
		&pb.ID, &pb.UserID, &pb.Name, &pb.Description, &pb.Currency,
		&pb.CurrentAmount, &pb.TotalProfit, &pb.Status,
		&contributions, &profits, &pb.CreatedAt, &pb.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	if err := unmarshalLogs(&pb, contributions, profits); err != nil {
		return nil, err
	}
	return &pb, nil
}

func (r *repository) scanMany(rows pgx.Rows) ([]PiggyBank, error) {
	var out []PiggyBank
	for rows.Next() {
		var pb PiggyBank
		var contributions, profits []byte
		err := rows.Scan(
			&pb.ID, &pb.UserID, &pb.Name, &pb.Description, &pb.Currency,
			&pb.CurrentAmount, &pb.TotalProfit, &pb.Status,
			&contributions, &profits, &pb.CreatedAt, &pb.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		if err := unmarshalLogs(&pb, contributions, profits); err != nil {
			return nil, err
		}
		out = append(out, pb)
	}
	return out, rows.Err()
}

func unmarshalLogs(pb *PiggyBank, contributions, profits []byte) error {
	if err := json.Unmarshal(contributions, &pb.Contributions); err != nil {
		return fmt.Errorf("piggybanks: unmarshal contributions: %w", err)
	}
	if err := json.Unmarshal(profits, &pb.Profits); err != nil {
		return fmt.Errorf("piggybanks: unmarshal profits: %w", err)
	}
	return nil
}
