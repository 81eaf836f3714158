package application

import (
	"context"

	auction "github.com/bidworks/marketengine/internal/auction/domain"
	"github.com/bidworks/marketengine/internal/user/domain"
)

// RolesService derives a user's permission tier and item collections. Every
// answer is recomputed from current ledger and item state on each call so a
// dashboard rendered right after a sweep is never stale. The acting user is
// always an explicit parameter.
type RolesService struct {
	businessRepo domain.BusinessRepository
	itemRepo     auction.ItemRepository
}

func NewRolesService(businessRepo domain.BusinessRepository, itemRepo auction.ItemRepository) *RolesService {
	return &RolesService{
		businessRepo: businessRepo,
		itemRepo:     itemRepo,
	}
}

func (s *RolesService) IsPlatformAdmin(user *domain.User) bool {
	return user.PlatformAdmin
}

// IsBusinessAdmin is true iff the user administers at least one business.
func (s *RolesService) IsBusinessAdmin(ctx context.Context, user *domain.User) (bool, error) {
	count, err := s.businessRepo.CountByAdmin(ctx, user.ID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *RolesService) IsAdmin(ctx context.Context, user *domain.User) (bool, error) {
	if user.PlatformAdmin {
		return true, nil
	}
	return s.IsBusinessAdmin(ctx, user)
}

// WonItems returns the closed items on which the user holds the high bid.
func (s *RolesService) WonItems(ctx context.Context, user *domain.User) ([]*auction.Item, error) {
	items, err := s.itemRepo.ListByBidder(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	var won []*auction.Item
	for _, item := range items {
		if item.Status != auction.StatusClosed {
			continue
		}
		if bidderID, ok := item.HighBidder(); ok && bidderID == user.ID {
			won = append(won, item)
		}
	}
	return won, nil
}

// LostItems returns the closed items the user bid on but does not hold the
// high bid for. Won and lost are disjoint by construction.
func (s *RolesService) LostItems(ctx context.Context, user *domain.User) ([]*auction.Item, error) {
	items, err := s.itemRepo.ListByBidder(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	var lost []*auction.Item
	for _, item := range items {
		if item.Status != auction.StatusClosed {
			continue
		}
		if bidderID, ok := item.HighBidder(); ok && bidderID != user.ID {
			lost = append(lost, item)
		}
	}
	return lost, nil
}

// OpenItems returns the still-open items the user has bid on.
func (s *RolesService) OpenItems(ctx context.Context, user *domain.User) ([]*auction.Item, error) {
	return s.itemsByStatus(ctx, user, auction.StatusOpen)
}

// ClosedItems returns the closed items the user has bid on, won or lost.
func (s *RolesService) ClosedItems(ctx context.Context, user *domain.User) ([]*auction.Item, error) {
	return s.itemsByStatus(ctx, user, auction.StatusClosed)
}

func (s *RolesService) itemsByStatus(ctx context.Context, user *domain.User, status auction.ItemStatus) ([]*auction.Item, error) {
	items, err := s.itemRepo.ListByBidder(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	var filtered []*auction.Item
	for _, item := range items {
		if item.Status == status {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}
