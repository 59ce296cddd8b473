package service

import (
	"github.com/mmynk/moneymanager/internal/models"
	"github.com/mmynk/moneymanager/internal/rpc"
)

func toRPCUser(u *models.User) rpc.User {
	return rpc.User{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt,
	}
}

func toRPCTransaction(t *models.Transaction) rpc.Transaction {
	return rpc.Transaction{
		ID:     t.ID,
		Title:  t.Title,
		Amount: t.Amount,
		Type:   string(t.Type),
		Date:   t.Date,
	}
}

func toRPCMember(m models.Member) rpc.Member {
	return rpc.Member{
		ID:         m.ID,
		Name:       m.Name,
		UserID:     m.UserID,
		RentPaid:   m.RentPaid,
		RentPaidAt: m.RentPaidAt,
	}
}

func toRPCGroup(g *models.Group) rpc.Group {
	members := make([]rpc.Member, len(g.Members))
	for i, m := range g.Members {
		members[i] = toRPCMember(m)
	}
	return rpc.Group{
		ID:                  g.ID,
		Name:                g.Name,
		MonthlyContribution: g.MonthlyContribution,
		OwnerID:             g.OwnerID,
		Members:             members,
		CreatedAt:           g.CreatedAt,
		CurrentMonth:        g.CurrentMonth,
	}
}

func toRPCEntry(e *models.LedgerEntry) rpc.LedgerEntry {
	return rpc.LedgerEntry{
		ID:           e.ID,
		GroupID:      e.GroupID,
		Title:        e.Title,
		Amount:       e.Amount,
		PaidBy:       e.PaidBy,
		SplitBetween: append([]string(nil), e.SplitBetween...),
		Kind:         string(e.Kind),
		Date:         e.Date,
		CreatedAt:    e.CreatedAt,
	}
}
