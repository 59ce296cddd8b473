package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/moneymanager/internal/models"
	"github.com/mmynk/moneymanager/internal/storage"
)

// CreateGroup persists a new group and its members.
func (s *SQLiteStore) CreateGroup(ctx context.Context, group *models.Group) error {
	// Generate ID if not set
	if group.ID == "" {
		group.ID = uuid.New().String()
	}
	if group.CreatedAt == 0 {
		group.CreatedAt = time.Now().Unix()
	}
	if group.CurrentMonth == "" {
		group.CurrentMonth = time.Unix(group.CreatedAt, 0).Format("2006-01")
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO groups (id, name, monthly_contribution, owner_id, created_at, current_month, ledger_version)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			group.ID, group.Name, group.MonthlyContribution, group.OwnerID,
			group.CreatedAt, group.CurrentMonth, group.LedgerVersion,
		)
		if err != nil {
			return fmt.Errorf("failed to insert group: %w", err)
		}

		for i := range group.Members {
			if err := insertMember(ctx, tx, group.ID, &group.Members[i], i); err != nil {
				return err
			}
		}
		return nil
	})
}

func insertMember(ctx context.Context, tx *sql.Tx, groupID string, m *models.Member, position int) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}

	var userID any
	if m.UserID != "" {
		userID = m.UserID
	}
	var rentPaidAt any
	if m.RentPaidAt != 0 {
		rentPaidAt = m.RentPaidAt
	}

	_, err := tx.ExecContext(ctx,
		`INSERT INTO group_members (id, group_id, name, user_id, position, rent_paid, rent_paid_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.ID, groupID, m.Name, userID, position, m.RentPaid, rentPaidAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert member %q: %w", m.Name, err)
	}
	return nil
}

// GetGroup retrieves a group by ID, including its members in order.
func (s *SQLiteStore) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	return getGroup(ctx, s.db, groupID)
}

func getGroup(ctx context.Context, q querier, groupID string) (*models.Group, error) {
	group := &models.Group{}
	err := q.QueryRowContext(ctx,
		`SELECT id, name, monthly_contribution, owner_id, created_at, current_month, ledger_version
		 FROM groups WHERE id = ?`,
		groupID,
	).Scan(&group.ID, &group.Name, &group.MonthlyContribution, &group.OwnerID,
		&group.CreatedAt, &group.CurrentMonth, &group.LedgerVersion)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("group %s: %w", groupID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	members, err := listMembers(ctx, q, groupID)
	if err != nil {
		return nil, err
	}
	group.Members = members

	return group, nil
}

func listMembers(ctx context.Context, q querier, groupID string) ([]models.Member, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT id, name, user_id, rent_paid, rent_paid_at
		 FROM group_members WHERE group_id = ? ORDER BY position`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}
	defer rows.Close()

	var members []models.Member
	for rows.Next() {
		var m models.Member
		var userID sql.NullString
		var rentPaidAt sql.NullInt64
		if err := rows.Scan(&m.ID, &m.Name, &userID, &m.RentPaid, &rentPaidAt); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		m.UserID = userID.String
		m.RentPaidAt = rentPaidAt.Int64
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}
	return members, nil
}

// ListGroupsForUser retrieves groups owned by the user or that list them as a member.
func (s *SQLiteStore) ListGroupsForUser(ctx context.Context, userID string) ([]*models.Group, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT g.id FROM groups g
		 LEFT JOIN group_members m ON m.group_id = g.id
		 WHERE g.owner_id = ? OR m.user_id = ?
		 ORDER BY g.created_at DESC, g.id`,
		userID, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan group id: %w", err)
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate groups: %w", err)
	}

	// The pool holds a single connection, so rows must be closed before loading members
	groups := make([]*models.Group, 0, len(ids))
	for _, id := range ids {
		group, err := s.GetGroup(ctx, id)
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}
	return groups, nil
}

// UpdateGroup updates the group's name and monthly contribution.
func (s *SQLiteStore) UpdateGroup(ctx context.Context, group *models.Group) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE groups SET name = ?, monthly_contribution = ? WHERE id = ?",
		group.Name, group.MonthlyContribution, group.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update group: %w", err)
	}
	return requireAffected(res, "group", group.ID)
}

// DeleteGroup removes a group. Members and ledger entries cascade.
func (s *SQLiteStore) DeleteGroup(ctx context.Context, groupID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM groups WHERE id = ?", groupID)
	if err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	return requireAffected(res, "group", groupID)
}

// AddMember appends a member to the end of the group's member list.
func (s *SQLiteStore) AddMember(ctx context.Context, groupID string, member *models.Member) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		var next int
		err := tx.QueryRowContext(ctx,
			"SELECT COALESCE(MAX(position), -1) + 1 FROM group_members WHERE group_id = ?", groupID,
		).Scan(&next)
		if err != nil {
			return fmt.Errorf("failed to find member position: %w", err)
		}
		if err := bumpLedgerVersion(ctx, tx, groupID); err != nil {
			return err
		}
		return insertMember(ctx, tx, groupID, member, next)
	})
}

// RemoveMember deletes a member. Ledger entries that reference them are kept.
func (s *SQLiteStore) RemoveMember(ctx context.Context, groupID, memberID string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			"DELETE FROM group_members WHERE group_id = ? AND id = ?", groupID, memberID)
		if err != nil {
			return fmt.Errorf("failed to remove member: %w", err)
		}
		if err := requireAffected(res, "member", memberID); err != nil {
			return err
		}
		return bumpLedgerVersion(ctx, tx, groupID)
	})
}

// RenameMember changes a member's display name.
func (s *SQLiteStore) RenameMember(ctx context.Context, groupID, memberID, name string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			"UPDATE group_members SET name = ? WHERE group_id = ? AND id = ?", name, groupID, memberID)
		if err != nil {
			return fmt.Errorf("failed to rename member: %w", err)
		}
		if err := requireAffected(res, "member", memberID); err != nil {
			return err
		}
		return bumpLedgerVersion(ctx, tx, groupID)
	})
}

// SetRentPaid marks a member's rent as paid (at the given time) or unpaid.
func (s *SQLiteStore) SetRentPaid(ctx context.Context, groupID, memberID string, paid bool, at int64) error {
	var paidAt any
	if paid {
		paidAt = at
	}
	res, err := s.db.ExecContext(ctx,
		"UPDATE group_members SET rent_paid = ?, rent_paid_at = ? WHERE group_id = ? AND id = ?",
		paid, paidAt, groupID, memberID,
	)
	if err != nil {
		return fmt.Errorf("failed to set rent status: %w", err)
	}
	return requireAffected(res, "member", memberID)
}

// ResetRent clears all rent flags and records the new month.
func (s *SQLiteStore) ResetRent(ctx context.Context, groupID, month string) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, "UPDATE groups SET current_month = ? WHERE id = ?", month, groupID)
		if err != nil {
			return fmt.Errorf("failed to set current month: %w", err)
		}
		if err := requireAffected(res, "group", groupID); err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx,
			"UPDATE group_members SET rent_paid = 0, rent_paid_at = NULL WHERE group_id = ?", groupID)
		if err != nil {
			return fmt.Errorf("failed to reset rent: %w", err)
		}
		return nil
	})
}

func bumpLedgerVersion(ctx context.Context, q querier, groupID string) error {
	res, err := q.ExecContext(ctx,
		"UPDATE groups SET ledger_version = ledger_version + 1 WHERE id = ?", groupID)
	if err != nil {
		return fmt.Errorf("failed to bump ledger version: %w", err)
	}
	return requireAffected(res, "group", groupID)
}
