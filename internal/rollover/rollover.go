// Package rollover closes each month of personal bookkeeping: on the last day
// of the month at 23:59 every user's transactions are replaced by a single
// carry-over of their remaining balance.
package rollover

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mmynk/moneymanager/internal/metrics"
	"github.com/mmynk/moneymanager/internal/models"
	"github.com/mmynk/moneymanager/internal/storage"
)

// CarryTitle is the title of the transaction holding last month's balance.
const CarryTitle = "Previous Month Balance"

// Store is the persistence the job needs.
type Store interface {
	ListUsers(ctx context.Context) ([]*models.User, error)
	ListTransactions(ctx context.Context, userID string) ([]*models.Transaction, error)
	RollOverTransactions(ctx context.Context, userID string, carry *models.Transaction) error
}

var _ Store = (storage.Store)(nil)

// Job runs the month-end rollover.
type Job struct {
	store   Store
	metrics *metrics.Metrics
	logger  *slog.Logger
	now     func() time.Time
}

// New creates a Job. m may be nil.
func New(store Store, m *metrics.Metrics, logger *slog.Logger) *Job {
	return &Job{store: store, metrics: m, logger: logger, now: time.Now}
}

// NextRun returns the first month-end run time at or after t: the last day
// of t's month at 23:59 in t's location, or next month's if that has passed.
func NextRun(t time.Time) time.Time {
	run := monthEnd(t.Year(), t.Month(), t.Location())
	if t.After(run) {
		run = monthEnd(t.Year(), t.Month()+1, t.Location())
	}
	return run
}

func monthEnd(year int, month time.Month, loc *time.Location) time.Time {
	// Day 0 of the following month is the last day of this one.
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, loc)
	return time.Date(last.Year(), last.Month(), last.Day(), 23, 59, 0, 0, loc)
}

// Carry builds the carry-over transaction for txs, or nil when the balance is zero.
// A negative balance is carried as an expense of its absolute value.
func Carry(txs []*models.Transaction, date string) *models.Transaction {
	balance := models.Summarize(txs).Balance()
	switch {
	case balance > 0:
		return &models.Transaction{Title: CarryTitle, Amount: balance, Type: models.TransactionIncome, Date: date}
	case balance < 0:
		return &models.Transaction{Title: CarryTitle, Amount: -balance, Type: models.TransactionExpenses, Date: date}
	default:
		return nil
	}
}

// RunOnce rolls over every user. A failure for one user is logged and does
// not stop the others; the returned error reports how many failed.
func (j *Job) RunOnce(ctx context.Context) error {
	users, err := j.store.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}

	date := j.now().Format(time.DateOnly)
	var done, failed int
	for _, u := range users {
		if err := j.rollUser(ctx, u.ID, date); err != nil {
			j.logger.Error("Month-end rollover failed", "user_id", u.ID, "error", err)
			failed++
			continue
		}
		done++
	}
	j.metrics.RolledOver(done)

	j.logger.Info("Month-end rollover completed", "users", done, "failed", failed)
	if failed > 0 {
		return fmt.Errorf("rollover failed for %d of %d users", failed, len(users))
	}
	return nil
}

func (j *Job) rollUser(ctx context.Context, userID, date string) error {
	txs, err := j.store.ListTransactions(ctx, userID)
	if err != nil {
		return err
	}
	if len(txs) == 0 {
		return nil
	}
	return j.store.RollOverTransactions(ctx, userID, Carry(txs, date))
}

// Run checks the clock every interval and performs a rollover whenever a
// month-end run time has been reached. It blocks until ctx is cancelled.
func (j *Job) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	next := NextRun(j.now())
	j.logger.Info("Rollover scheduler started", "next_run", next)

	for {
		select {
		case <-ctx.Done():
			j.logger.Info("Rollover scheduler stopped")
			return nil
		case <-ticker.C:
			now := j.now()
			if now.Before(next) {
				continue
			}
			if err := j.RunOnce(ctx); err != nil {
				j.logger.Error("Month-end rollover incomplete", "error", err)
			}
			next = NextRun(now.Add(time.Minute))
			j.logger.Info("Next rollover scheduled", "next_run", next)
		}
	}
}
