package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/moneymanager/internal/models"
)

// CreateEntry persists a ledger entry with its split and bumps the group's ledger version.
func (s *SQLiteStore) CreateEntry(ctx context.Context, entry *models.LedgerEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt == 0 {
		entry.CreatedAt = time.Now().Unix()
	}
	if entry.Date == "" {
		entry.Date = time.Unix(entry.CreatedAt, 0).Format(time.DateOnly)
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		// Also verifies the group exists before anything is written
		if err := bumpLedgerVersion(ctx, tx, entry.GroupID); err != nil {
			return err
		}

		_, err := tx.ExecContext(ctx,
			`INSERT INTO ledger_entries (id, group_id, title, amount, paid_by, kind, date, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			entry.ID, entry.GroupID, entry.Title, entry.Amount, entry.PaidBy,
			string(entry.Kind), entry.Date, entry.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert ledger entry: %w", err)
		}

		for i, memberID := range entry.SplitBetween {
			_, err = tx.ExecContext(ctx,
				"INSERT INTO ledger_splits (entry_id, member_id, position) VALUES (?, ?, ?)",
				entry.ID, memberID, i,
			)
			if err != nil {
				return fmt.Errorf("failed to insert ledger split: %w", err)
			}
		}
		return nil
	})
}

// DeleteEntry removes one entry from a group's ledger.
func (s *SQLiteStore) DeleteEntry(ctx context.Context, groupID, entryID string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			"DELETE FROM ledger_entries WHERE id = ? AND group_id = ?", entryID, groupID)
		if err != nil {
			return fmt.Errorf("failed to delete ledger entry: %w", err)
		}
		if err := requireAffected(res, "ledger entry", entryID); err != nil {
			return err
		}
		return bumpLedgerVersion(ctx, tx, groupID)
	})
}

// ListEntries retrieves all entries for a group, newest date first.
func (s *SQLiteStore) ListEntries(ctx context.Context, groupID string) ([]*models.LedgerEntry, error) {
	return listEntries(ctx, s.db, groupID)
}

// ResetLedger deletes every entry of a group.
func (s *SQLiteStore) ResetLedger(ctx context.Context, groupID string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := bumpLedgerVersion(ctx, tx, groupID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM ledger_entries WHERE group_id = ?", groupID); err != nil {
			return fmt.Errorf("failed to reset ledger: %w", err)
		}
		return nil
	})
}

// LedgerSnapshot reads a group and its full ledger inside one transaction so the
// balance calculation never sees a partial write.
func (s *SQLiteStore) LedgerSnapshot(ctx context.Context, groupID string) (*models.Group, []*models.LedgerEntry, error) {
	var (
		group   *models.Group
		entries []*models.LedgerEntry
	)
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		if group, err = getGroup(ctx, tx, groupID); err != nil {
			return err
		}
		entries, err = listEntries(ctx, tx, groupID)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return group, entries, nil
}

// listEntries loads entries and their splits with two sequential queries.
// Rows are never nested because the pool holds a single connection.
func listEntries(ctx context.Context, q querier, groupID string) ([]*models.LedgerEntry, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT id, group_id, title, amount, paid_by, kind, date, created_at
		 FROM ledger_entries WHERE group_id = ?
		 ORDER BY date DESC, created_at DESC, rowid DESC`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}

	var entries []*models.LedgerEntry
	byID := make(map[string]*models.LedgerEntry)
	for rows.Next() {
		e := &models.LedgerEntry{}
		var kind string
		if err := rows.Scan(&e.ID, &e.GroupID, &e.Title, &e.Amount, &e.PaidBy, &kind, &e.Date, &e.CreatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
		}
		e.Kind = models.EntryKind(kind)
		entries = append(entries, e)
		byID[e.ID] = e
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ledger entries: %w", err)
	}

	splitRows, err := q.QueryContext(ctx,
		`SELECT s.entry_id, s.member_id FROM ledger_splits s
		 JOIN ledger_entries e ON e.id = s.entry_id
		 WHERE e.group_id = ?
		 ORDER BY s.entry_id, s.position`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger splits: %w", err)
	}
	defer splitRows.Close()

	for splitRows.Next() {
		var entryID, memberID string
		if err := splitRows.Scan(&entryID, &memberID); err != nil {
			return nil, fmt.Errorf("failed to scan ledger split: %w", err)
		}
		if e, ok := byID[entryID]; ok {
			e.SplitBetween = append(e.SplitBetween, memberID)
		}
	}
	if err := splitRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate ledger splits: %w", err)
	}

	return entries, nil
}
