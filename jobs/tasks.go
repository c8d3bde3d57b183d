// Package jobs contains the background task definitions and the Asynq worker
// that runs them: ledger integrity scans, expired session purges and
// idempotency key retention.
package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskLedgerIntegrity recomputes ledger totals from history and reports drift.
	TaskLedgerIntegrity = "ledger:integrity"
	// TaskSessionsCleanup purges expired session audit rows.
	TaskSessionsCleanup = "sessions:cleanup"
	// TaskIdempotencyCleanup removes idempotency keys past retention.
	TaskIdempotencyCleanup = "idempotency:cleanup"
)

// IdempotencyRetention is how long processed request keys are kept.
const IdempotencyRetention = 24 * time.Hour

// NewLedgerIntegrityTask constructs the integrity scan task.
func NewLedgerIntegrityTask() *asynq.Task {
	return asynq.NewTask(TaskLedgerIntegrity, nil)
}

// NewSessionsCleanupTask constructs the session purge task.
func NewSessionsCleanupTask() *asynq.Task {
	return asynq.NewTask(TaskSessionsCleanup, nil)
}

// NewIdempotencyCleanupTask constructs the idempotency retention task.
func NewIdempotencyCleanupTask() *asynq.Task {
	return asynq.NewTask(TaskIdempotencyCleanup, nil)
}

// SessionPurger removes expired session records.
type SessionPurger interface {
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}

// NewSessionsCleanupHandler builds the handler for TaskSessionsCleanup.
func NewSessionsCleanupHandler(purger SessionPurger, logger *slog.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		removed, err := purger.PurgeExpiredSessions(ctx)
		if err != nil {
			return err
		}
		logger.Info("expired sessions purged", slog.Int64("removed", removed))
		return nil
	}
}

// KeyCleaner removes idempotency keys older than the retention window.
type KeyCleaner interface {
	Cleanup(ctx context.Context, olderThan time.Duration) error
}

// NewIdempotencyCleanupHandler builds the handler for TaskIdempotencyCleanup.
func NewIdempotencyCleanupHandler(cleaner KeyCleaner, logger *slog.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		if err := cleaner.Cleanup(ctx, IdempotencyRetention); err != nil {
			return err
		}
		logger.Info("idempotency keys cleaned", slog.Duration("retention", IdempotencyRetention))
		return nil
	}
}

// NewLedgerIntegrityHandler builds the handler for TaskLedgerIntegrity.
func NewLedgerIntegrityHandler(checker *IntegrityChecker, logger *slog.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		report, err := checker.Run(ctx)
		if err != nil {
			return err
		}
		logger.Info("ledger integrity scan finished",
			slog.Int("investments", report.InvestmentsChecked),
			slog.Int("piggy_banks", report.PiggyBanksChecked),
			slog.Int("mismatches", len(report.Mismatches)))
		return nil
	}
}
