package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mmynk/moneymanager/internal/models"
	"github.com/mmynk/moneymanager/internal/storage"
)

// CreateTransaction persists a new personal transaction.
func (s *SQLiteStore) CreateTransaction(ctx context.Context, t *models.Transaction) error {
	return insertTransaction(ctx, s.db, t)
}

func insertTransaction(ctx context.Context, q querier, t *models.Transaction) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}

	_, err := q.ExecContext(ctx,
		"INSERT INTO transactions (id, user_id, title, amount, type, date) VALUES (?, ?, ?, ?, ?, ?)",
		t.ID, t.UserID, t.Title, t.Amount, string(t.Type), t.Date,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// GetTransaction retrieves one of the user's transactions.
func (s *SQLiteStore) GetTransaction(ctx context.Context, userID, id string) (*models.Transaction, error) {
	t := &models.Transaction{}
	var typ string
	err := s.db.QueryRowContext(ctx,
		"SELECT id, user_id, title, amount, type, date FROM transactions WHERE id = ? AND user_id = ?",
		id, userID,
	).Scan(&t.ID, &t.UserID, &t.Title, &t.Amount, &typ, &t.Date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("transaction %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	t.Type = models.TransactionType(typ)
	return t, nil
}

// UpdateTransaction overwrites title, amount and type of an existing transaction.
func (s *SQLiteStore) UpdateTransaction(ctx context.Context, t *models.Transaction) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE transactions SET title = ?, amount = ?, type = ? WHERE id = ? AND user_id = ?",
		t.Title, t.Amount, string(t.Type), t.ID, t.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	return requireAffected(res, "transaction", t.ID)
}

// DeleteTransaction removes one of the user's transactions.
func (s *SQLiteStore) DeleteTransaction(ctx context.Context, userID, id string) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM transactions WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	return requireAffected(res, "transaction", id)
}

// ListTransactions returns the user's transactions, newest first.
func (s *SQLiteStore) ListTransactions(ctx context.Context, userID string) ([]*models.Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, user_id, title, amount, type, date FROM transactions WHERE user_id = ? ORDER BY date DESC, rowid DESC",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var txs []*models.Transaction
	for rows.Next() {
		t := &models.Transaction{}
		var typ string
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Amount, &typ, &t.Date); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		t.Type = models.TransactionType(typ)
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return txs, nil
}

// ClearTransactions deletes all of the user's transactions.
func (s *SQLiteStore) ClearTransactions(ctx context.Context, userID string) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM transactions WHERE user_id = ?", userID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear transactions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n, nil
}

// RollOverTransactions replaces the user's transactions with a single carry-over record.
func (s *SQLiteStore) RollOverTransactions(ctx context.Context, userID string, carry *models.Transaction) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM transactions WHERE user_id = ?", userID); err != nil {
			return fmt.Errorf("failed to clear transactions: %w", err)
		}
		if carry == nil {
			return nil
		}
		carry.UserID = userID
		return insertTransaction(ctx, tx, carry)
	})
}
