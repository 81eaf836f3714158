package application

import (
	"context"

	auction "github.com/bidworks/marketengine/internal/auction/domain"
	"github.com/bidworks/marketengine/internal/user/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserService is the surface the delivery layer calls into.
type UserService interface {
	Register(ctx context.Context, cmd RegisterUserDTO) (*domain.User, error)
	ItemDashboard(ctx context.Context, userID uuid.UUID) (*ItemDashboardDTO, error)
}

type userService struct {
	registerUC *RegisterUserUseCase
	roles      *RolesService
	userRepo   domain.UserRepository
}

func NewUserService(registerUC *RegisterUserUseCase, roles *RolesService, userRepo domain.UserRepository) UserService {
	return &userService{
		registerUC: registerUC,
		roles:      roles,
		userRepo:   userRepo,
	}
}

func (s *userService) Register(ctx context.Context, cmd RegisterUserDTO) (*domain.User, error) {
	return s.registerUC.Execute(ctx, cmd)
}

// ItemSummaryDTO is one row of the dashboard.
type ItemSummaryDTO struct {
	ItemID  uuid.UUID       `json:"item_id"`
	Name    string          `json:"name"`
	Status  string          `json:"status"`
	HighBid decimal.Decimal `json:"high_bid"`
}

// ItemDashboardDTO groups the items a user has bid on by outcome. Won and
// lost partition the closed set.
type ItemDashboardDTO struct {
	Won    []ItemSummaryDTO `json:"won"`
	Lost   []ItemSummaryDTO `json:"lost"`
	Open   []ItemSummaryDTO `json:"open"`
	Closed []ItemSummaryDTO `json:"closed"`
}

func (s *userService) ItemDashboard(ctx context.Context, userID uuid.UUID) (*ItemDashboardDTO, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	won, err := s.roles.WonItems(ctx, user)
	if err != nil {
		return nil, err
	}
	lost, err := s.roles.LostItems(ctx, user)
	if err != nil {
		return nil, err
	}
	open, err := s.roles.OpenItems(ctx, user)
	if err != nil {
		return nil, err
	}
	closed, err := s.roles.ClosedItems(ctx, user)
	if err != nil {
		return nil, err
	}

	return &ItemDashboardDTO{
		Won:    summarize(won),
		Lost:   summarize(lost),
		Open:   summarize(open),
		Closed: summarize(closed),
	}, nil
}

func summarize(items []*auction.Item) []ItemSummaryDTO {
	out := make([]ItemSummaryDTO, 0, len(items))
	for _, item := range items {
		out = append(out, ItemSummaryDTO{
			ItemID:  item.ID,
			Name:    item.Name,
			Status:  item.Status.Label(),
			HighBid: item.HighBid(),
		})
	}
	return out
}
