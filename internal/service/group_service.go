package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/moneymanager/internal/events"
	"github.com/mmynk/moneymanager/internal/middleware"
	"github.com/mmynk/moneymanager/internal/models"
	"github.com/mmynk/moneymanager/internal/rpc"
	"github.com/mmynk/moneymanager/internal/storage"
)

// GroupService implements rpc.GroupServiceHandler.
type GroupService struct {
	store     storage.Store
	publisher events.Publisher
	logger    *slog.Logger
	now       func() time.Time
}

var _ rpc.GroupServiceHandler = (*GroupService)(nil)

// NewGroupService creates a new GroupService. A nil publisher discards events.
func NewGroupService(store storage.Store, publisher events.Publisher, logger *slog.Logger) *GroupService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &GroupService{store: store, publisher: publisher, logger: logger, now: time.Now}
}

// ownerMemberName picks the name the group creator appears under.
func ownerMemberName(ctx context.Context) string {
	if name := strings.TrimSpace(middleware.GetDisplayName(ctx)); name != "" {
		return name
	}
	if local, _, _ := strings.Cut(middleware.GetEmail(ctx), "@"); local != "" {
		return local
	}
	return "Me"
}

// CreateGroup creates a group owned by the caller, who becomes its first member.
func (s *GroupService) CreateGroup(ctx context.Context, req *connect.Request[rpc.CreateGroupRequest]) (*connect.Response[rpc.CreateGroupResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	s.logger.Info("CreateGroup request received", "name", req.Msg.Name, "members_count", len(req.Msg.Members))

	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, invalidArgument("group name required")
	}
	if req.Msg.MonthlyContribution < 0 {
		return nil, invalidArgument("monthly contribution must not be negative")
	}

	group := &models.Group{
		Name:                name,
		MonthlyContribution: req.Msg.MonthlyContribution,
		OwnerID:             userID,
		Members:             []models.Member{{Name: ownerMemberName(ctx), UserID: userID}},
	}
	for _, m := range req.Msg.Members {
		memberName := strings.TrimSpace(m.Name)
		if memberName == "" {
			return nil, invalidArgument("member name required")
		}
		if _, dup := group.FindMemberByName(memberName); dup {
			return nil, invalidArgument("member %q listed twice", memberName)
		}
		group.Members = append(group.Members, models.Member{Name: memberName, UserID: m.UserID})
	}

	if err := s.store.CreateGroup(ctx, group); err != nil {
		return nil, fail(s.logger, "CreateGroup failed", err)
	}

	s.logger.Info("Group created", "group_id", group.ID, "owner_id", userID)
	return connect.NewResponse(&rpc.CreateGroupResponse{Group: toRPCGroup(group)}), nil
}

// GetGroup returns a group the caller belongs to.
func (s *GroupService) GetGroup(ctx context.Context, req *connect.Request[rpc.GetGroupRequest]) (*connect.Response[rpc.GetGroupResponse], error) {
	group, _, err := loadGroup(ctx, s.store, req.Msg.GroupID)
	if err != nil {
		return nil, fail(s.logger, "GetGroup failed", err, "group_id", req.Msg.GroupID)
	}
	return connect.NewResponse(&rpc.GetGroupResponse{Group: toRPCGroup(group)}), nil
}

// ListGroups returns every group the caller owns or is a member of.
func (s *GroupService) ListGroups(ctx context.Context, req *connect.Request[rpc.ListGroupsRequest]) (*connect.Response[rpc.ListGroupsResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}

	groups, err := s.store.ListGroupsForUser(ctx, userID)
	if err != nil {
		return nil, fail(s.logger, "ListGroups failed", err, "user_id", userID)
	}

	out := make([]rpc.Group, len(groups))
	for i, g := range groups {
		out[i] = toRPCGroup(g)
	}
	s.logger.Info("ListGroups successful", "count", len(groups))
	return connect.NewResponse(&rpc.ListGroupsResponse{Groups: out}), nil
}

// UpdateGroup renames the group or changes its monthly contribution.
func (s *GroupService) UpdateGroup(ctx context.Context, req *connect.Request[rpc.UpdateGroupRequest]) (*connect.Response[rpc.UpdateGroupResponse], error) {
	group, _, err := loadOwnedGroup(ctx, s.store, req.Msg.GroupID)
	if err != nil {
		return nil, fail(s.logger, "UpdateGroup failed", err, "group_id", req.Msg.GroupID)
	}

	if name := strings.TrimSpace(req.Msg.Name); name != "" {
		group.Name = name
	}
	if c := req.Msg.MonthlyContribution; c != nil {
		if *c < 0 {
			return nil, invalidArgument("monthly contribution must not be negative")
		}
		group.MonthlyContribution = *c
	}

	if err := s.store.UpdateGroup(ctx, group); err != nil {
		return nil, fail(s.logger, "UpdateGroup failed", err, "group_id", group.ID)
	}

	s.logger.Info("Group updated", "group_id", group.ID)
	return connect.NewResponse(&rpc.UpdateGroupResponse{Group: toRPCGroup(group)}), nil
}

// DeleteGroup removes a group together with its members and ledger.
func (s *GroupService) DeleteGroup(ctx context.Context, req *connect.Request[rpc.DeleteGroupRequest]) (*connect.Response[rpc.DeleteGroupResponse], error) {
	group, _, err := loadOwnedGroup(ctx, s.store, req.Msg.GroupID)
	if err != nil {
		return nil, fail(s.logger, "DeleteGroup failed", err, "group_id", req.Msg.GroupID)
	}

	if err := s.store.DeleteGroup(ctx, group.ID); err != nil {
		return nil, fail(s.logger, "DeleteGroup failed", err, "group_id", group.ID)
	}

	s.logger.Info("Group deleted", "group_id", group.ID)
	return connect.NewResponse(&rpc.DeleteGroupResponse{}), nil
}

// AddMember appends a member. Names must be unique within the group.
func (s *GroupService) AddMember(ctx context.Context, req *connect.Request[rpc.AddMemberRequest]) (*connect.Response[rpc.AddMemberResponse], error) {
	group, _, err := loadOwnedGroup(ctx, s.store, req.Msg.GroupID)
	if err != nil {
		return nil, fail(s.logger, "AddMember failed", err, "group_id", req.Msg.GroupID)
	}

	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, invalidArgument("member name required")
	}
	if _, exists := group.FindMemberByName(name); exists {
		return nil, connect.NewError(connect.CodeAlreadyExists, fmt.Errorf("member %q already exists", name))
	}

	member := &models.Member{Name: name, UserID: req.Msg.UserID}
	if err := s.store.AddMember(ctx, group.ID, member); err != nil {
		return nil, fail(s.logger, "AddMember failed", err, "group_id", group.ID)
	}

	s.logger.Info("Member added", "group_id", group.ID, "member_id", member.ID)
	return connect.NewResponse(&rpc.AddMemberResponse{Member: toRPCMember(*member)}), nil
}

// RemoveMember deletes a member. Their past ledger entries are kept and no
// longer count towards anyone's balance.
func (s *GroupService) RemoveMember(ctx context.Context, req *connect.Request[rpc.RemoveMemberRequest]) (*connect.Response[rpc.RemoveMemberResponse], error) {
	group, _, err := loadOwnedGroup(ctx, s.store, req.Msg.GroupID)
	if err != nil {
		return nil, fail(s.logger, "RemoveMember failed", err, "group_id", req.Msg.GroupID)
	}

	member, ok := group.FindMember(req.Msg.MemberID)
	if !ok {
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("member %s not found", req.Msg.MemberID))
	}
	if member.UserID != "" && member.UserID == group.OwnerID {
		return nil, connect.NewError(connect.CodeFailedPrecondition, fmt.Errorf("the owner cannot be removed"))
	}

	if err := s.store.RemoveMember(ctx, group.ID, member.ID); err != nil {
		return nil, fail(s.logger, "RemoveMember failed", err, "group_id", group.ID)
	}

	s.logger.Info("Member removed", "group_id", group.ID, "member_id", member.ID)
	return connect.NewResponse(&rpc.RemoveMemberResponse{}), nil
}

// RenameMember changes a member's display name. Ledger entries reference the
// member ID, so history follows the new name.
func (s *GroupService) RenameMember(ctx context.Context, req *connect.Request[rpc.RenameMemberRequest]) (*connect.Response[rpc.RenameMemberResponse], error) {
	group, _, err := loadOwnedGroup(ctx, s.store, req.Msg.GroupID)
	if err != nil {
		return nil, fail(s.logger, "RenameMember failed", err, "group_id", req.Msg.GroupID)
	}

	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, invalidArgument("member name required")
	}
	member, ok := group.FindMember(req.Msg.MemberID)
	if !ok {
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("member %s not found", req.Msg.MemberID))
	}
	if other, exists := group.FindMemberByName(name); exists && other.ID != member.ID {
		return nil, connect.NewError(connect.CodeAlreadyExists, fmt.Errorf("member %q already exists", name))
	}

	if err := s.store.RenameMember(ctx, group.ID, member.ID, name); err != nil {
		return nil, fail(s.logger, "RenameMember failed", err, "group_id", group.ID)
	}
	member.Name = name

	return connect.NewResponse(&rpc.RenameMemberResponse{Member: toRPCMember(*member)}), nil
}

// SetRentPaid flags a member's rent for the current month. The owner may set
// anyone's flag; a linked member only their own.
func (s *GroupService) SetRentPaid(ctx context.Context, req *connect.Request[rpc.SetRentPaidRequest]) (*connect.Response[rpc.SetRentPaidResponse], error) {
	group, userID, err := loadGroup(ctx, s.store, req.Msg.GroupID)
	if err != nil {
		return nil, fail(s.logger, "SetRentPaid failed", err, "group_id", req.Msg.GroupID)
	}

	member, ok := group.FindMember(req.Msg.MemberID)
	if !ok {
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("member %s not found", req.Msg.MemberID))
	}
	if !group.IsOwner(userID) && member.UserID != userID {
		return nil, connect.NewError(connect.CodePermissionDenied,
			fmt.Errorf("%w: can only mark your own rent", errPermissionDenied))
	}

	var at int64
	if req.Msg.RentPaid {
		at = s.now().Unix()
	}
	if err := s.store.SetRentPaid(ctx, group.ID, member.ID, req.Msg.RentPaid, at); err != nil {
		return nil, fail(s.logger, "SetRentPaid failed", err, "group_id", group.ID)
	}
	member.RentPaid = req.Msg.RentPaid
	member.RentPaidAt = at

	return connect.NewResponse(&rpc.SetRentPaidResponse{Member: toRPCMember(*member)}), nil
}

// ResetRent clears every rent flag and moves the group to the current month.
func (s *GroupService) ResetRent(ctx context.Context, req *connect.Request[rpc.ResetRentRequest]) (*connect.Response[rpc.ResetRentResponse], error) {
	group, _, err := loadOwnedGroup(ctx, s.store, req.Msg.GroupID)
	if err != nil {
		return nil, fail(s.logger, "ResetRent failed", err, "group_id", req.Msg.GroupID)
	}

	month := s.now().Format("2006-01")
	if err := s.store.ResetRent(ctx, group.ID, month); err != nil {
		return nil, fail(s.logger, "ResetRent failed", err, "group_id", group.ID)
	}

	group.CurrentMonth = month
	for i := range group.Members {
		group.Members[i].RentPaid = false
		group.Members[i].RentPaidAt = 0
	}

	s.logger.Info("Rent reset", "group_id", group.ID, "month", month)
	return connect.NewResponse(&rpc.ResetRentResponse{Group: toRPCGroup(group)}), nil
}

// ResetBalances deletes the group's whole ledger, bringing every balance to zero.
func (s *GroupService) ResetBalances(ctx context.Context, req *connect.Request[rpc.ResetBalancesRequest]) (*connect.Response[rpc.ResetBalancesResponse], error) {
	group, userID, err := loadOwnedGroup(ctx, s.store, req.Msg.GroupID)
	if err != nil {
		return nil, fail(s.logger, "ResetBalances failed", err, "group_id", req.Msg.GroupID)
	}

	if err := s.store.ResetLedger(ctx, group.ID); err != nil {
		return nil, fail(s.logger, "ResetBalances failed", err, "group_id", group.ID)
	}

	publish(ctx, s.publisher, s.logger, events.Event{
		Type:       events.LedgerReset,
		GroupID:    group.ID,
		ActorID:    userID,
		OccurredAt: s.now().UTC(),
	})

	s.logger.Info("Ledger reset", "group_id", group.ID)
	return connect.NewResponse(&rpc.ResetBalancesResponse{}), nil
}

// publish delivers an event; failures are logged and never fail the request.
func publish(ctx context.Context, p events.Publisher, logger *slog.Logger, event events.Event) {
	if err := p.Publish(ctx, event); err != nil {
		logger.Warn("Failed to publish ledger event", "type", event.Type, "group_id", event.GroupID, "error", err)
	}
}
