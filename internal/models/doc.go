// Package models defines the persisted domain models for moneymanager.
//
// # Models
//
//   - User: registered account, owns personal transactions and groups
//   - Transaction: a personal income or expense record
//   - Group: roommates sharing expenses, with an ordered member list
//   - Member: one participant of a group, identified by an immutable ID
//   - LedgerEntry: one shared expense or payment recorded against a group
//
// # Design Principles
//
// 1. **Ledger is the source of truth**: members carry no stored balance; balances
// are always derived from ledger entries by the calculator package
// 2. **Stable identity**: ledger entries reference members by ID, never by display name
// 3. **Avoid circular references**: use ID strings instead of pointers for relationships
// 4. **Integer money**: all persisted amounts are whole currency units (int64)
package models
