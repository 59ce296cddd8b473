package models

// Group represents roommates who share expenses.
// The owner has exclusive rights to structural mutations (members, reset, delete).
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Name is the display name of the group (e.g., "Roommates", "Flat 4B").
	Name string

	// MonthlyContribution is the amount each member is expected to add per month.
	MonthlyContribution int64

	// OwnerID is the user ID of the group creator.
	OwnerID string

	// Members is the ordered list of participants.
	Members []Member

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64

	// CurrentMonth is the month (YYYY-MM) rent flags refer to.
	CurrentMonth string

	// LedgerVersion increments on every change that can affect balances.
	// Balance reports are cached under (group ID, ledger version).
	LedgerVersion int64
}

// Member is one participant of a group.
type Member struct {
	// ID is immutable and is what ledger entries reference.
	ID string

	// Name is a mutable display attribute, unique within the group.
	Name string

	// UserID links the member to a registered user. Empty for
	// members added by name only.
	UserID string

	RentPaid   bool
	RentPaidAt int64
}

// FindMember returns the member with the given ID.
func (g *Group) FindMember(memberID string) (*Member, bool) {
	for i := range g.Members {
		if g.Members[i].ID == memberID {
			return &g.Members[i], true
		}
	}
	return nil, false
}

// FindMemberByName returns the member with the given display name.
func (g *Group) FindMemberByName(name string) (*Member, bool) {
	for i := range g.Members {
		if g.Members[i].Name == name {
			return &g.Members[i], true
		}
	}
	return nil, false
}

// MemberIDs returns the IDs of all members in group order.
func (g *Group) MemberIDs() []string {
	ids := make([]string, len(g.Members))
	for i, m := range g.Members {
		ids[i] = m.ID
	}
	return ids
}

// IsOwner reports whether userID owns the group.
func (g *Group) IsOwner(userID string) bool {
	return userID != "" && g.OwnerID == userID
}

// CanRead reports whether userID is the owner or a linked member.
func (g *Group) CanRead(userID string) bool {
	if g.IsOwner(userID) {
		return true
	}
	if userID == "" {
		return false
	}
	for _, m := range g.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}
