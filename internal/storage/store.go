// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/moneymanager/internal/models"
)

// ErrNotFound is returned (wrapped) when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the interface for all persistence operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	UserStore
	TransactionStore
	GroupStore
	LedgerStore

	// Close releases any resources held by the store.
	Close() error
}

// UserStore persists registered accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
}

// TransactionStore persists personal transactions. Every operation is
// scoped to one user; a transaction owned by someone else is reported as ErrNotFound.
type TransactionStore interface {
	CreateTransaction(ctx context.Context, tx *models.Transaction) error
	GetTransaction(ctx context.Context, userID, id string) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, tx *models.Transaction) error
	DeleteTransaction(ctx context.Context, userID, id string) error
	ListTransactions(ctx context.Context, userID string) ([]*models.Transaction, error)

	// ClearTransactions deletes all of the user's transactions and returns how many were removed.
	ClearTransactions(ctx context.Context, userID string) (int64, error)

	// RollOverTransactions atomically replaces all of the user's transactions
	// with carry. A nil carry only clears.
	RollOverTransactions(ctx context.Context, userID string, carry *models.Transaction) error
}

// GroupStore persists groups and their members.
// Member mutations bump the group's ledger version.
type GroupStore interface {
	// CreateGroup persists a new group with its members.
	// The group.ID, CreatedAt and member IDs are populated by the store when empty.
	CreateGroup(ctx context.Context, group *models.Group) error
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// ListGroupsForUser returns groups the user owns or is a linked member of.
	ListGroupsForUser(ctx context.Context, userID string) ([]*models.Group, error)

	// UpdateGroup updates the name and monthly contribution.
	UpdateGroup(ctx context.Context, group *models.Group) error
	DeleteGroup(ctx context.Context, groupID string) error

	AddMember(ctx context.Context, groupID string, member *models.Member) error
	RemoveMember(ctx context.Context, groupID, memberID string) error
	RenameMember(ctx context.Context, groupID, memberID, name string) error
	SetRentPaid(ctx context.Context, groupID, memberID string, paid bool, at int64) error

	// ResetRent clears every member's rent flag and moves the group to month.
	ResetRent(ctx context.Context, groupID, month string) error
}

// LedgerStore persists group ledger entries.
// Every mutation bumps the owning group's ledger version.
type LedgerStore interface {
	CreateEntry(ctx context.Context, entry *models.LedgerEntry) error
	DeleteEntry(ctx context.Context, groupID, entryID string) error

	// ListEntries returns a group's entries, newest date first.
	ListEntries(ctx context.Context, groupID string) ([]*models.LedgerEntry, error)

	// ResetLedger deletes every entry of the group.
	ResetLedger(ctx context.Context, groupID string) error

	// LedgerSnapshot reads the group and all of its entries in one transaction.
	LedgerSnapshot(ctx context.Context, groupID string) (*models.Group, []*models.LedgerEntry, error)
}
