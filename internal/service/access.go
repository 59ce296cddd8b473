package service

import (
	"context"
	"fmt"

	"github.com/mmynk/moneymanager/internal/auth"
	"github.com/mmynk/moneymanager/internal/middleware"
	"github.com/mmynk/moneymanager/internal/models"
	"github.com/mmynk/moneymanager/internal/storage"
)

// requireUser returns the authenticated caller's ID.
func requireUser(ctx context.Context) (string, error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return "", auth.ErrMissingToken
	}
	return userID, nil
}

// loadGroup fetches a group the caller may read: its owner or a linked member.
func loadGroup(ctx context.Context, groups storage.GroupStore, groupID string) (*models.Group, string, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, "", err
	}
	if groupID == "" {
		return nil, "", invalidArgument("group_id required")
	}

	group, err := groups.GetGroup(ctx, groupID)
	if err != nil {
		return nil, "", err
	}
	if !group.CanRead(userID) {
		return nil, "", fmt.Errorf("%w: not a member of group %s", errPermissionDenied, groupID)
	}
	return group, userID, nil
}

// loadOwnedGroup fetches a group the caller owns.
func loadOwnedGroup(ctx context.Context, groups storage.GroupStore, groupID string) (*models.Group, string, error) {
	group, userID, err := loadGroup(ctx, groups, groupID)
	if err != nil {
		return nil, "", err
	}
	if !group.IsOwner(userID) {
		return nil, "", fmt.Errorf("%w: only the owner can change group %s", errPermissionDenied, groupID)
	}
	return group, userID, nil
}
