package application

import (
	"context"
	"time"

	"github.com/bidworks/marketengine/internal/auction/domain"
	"github.com/google/uuid"
)

// AuctionService is the surface the delivery layer and the scheduled sweep
// call into.
type AuctionService interface {
	PlaceBid(ctx context.Context, cmd PlaceBidDTO) (*domain.Bid, error)
	GetItemView(ctx context.Context, itemID uuid.UUID) (*ItemViewDTO, error)
	ListBids(ctx context.Context, itemID uuid.UUID) ([]*domain.Bid, error)
	SweepExpired(ctx context.Context, now time.Time) (int, error)
	CreateItem(ctx context.Context, cmd CreateItemDTO) (*domain.Item, error)
	AssignItemToBusiness(ctx context.Context, itemID, businessID uuid.UUID) error
}

type auctionService struct {
	placeBidUC    *PlaceBidUseCase
	getItemViewUC *GetItemViewUseCase
	listBidsUC    *ListBidsUseCase
	sweepUC       *SweepExpiredUseCase
	createItemUC  *CreateItemUseCase
	assignItemUC  *AssignItemUseCase
}

func NewAuctionService(
	placeBidUC *PlaceBidUseCase,
	getItemViewUC *GetItemViewUseCase,
	listBidsUC *ListBidsUseCase,
	sweepUC *SweepExpiredUseCase,
	createItemUC *CreateItemUseCase,
	assignItemUC *AssignItemUseCase,
) AuctionService {
	return &auctionService{
		placeBidUC:    placeBidUC,
		getItemViewUC: getItemViewUC,
		listBidsUC:    listBidsUC,
		sweepUC:       sweepUC,
		createItemUC:  createItemUC,
		assignItemUC:  assignItemUC,
	}
}

func (s *auctionService) PlaceBid(ctx context.Context, cmd PlaceBidDTO) (*domain.Bid, error) {
	return s.placeBidUC.Execute(ctx, cmd)
}

func (s *auctionService) GetItemView(ctx context.Context, itemID uuid.UUID) (*ItemViewDTO, error) {
	return s.getItemViewUC.Execute(ctx, itemID)
}

func (s *auctionService) ListBids(ctx context.Context, itemID uuid.UUID) ([]*domain.Bid, error) {
	return s.listBidsUC.Execute(ctx, itemID)
}

func (s *auctionService) SweepExpired(ctx context.Context, now time.Time) (int, error) {
	return s.sweepUC.Execute(ctx, now)
}

func (s *auctionService) CreateItem(ctx context.Context, cmd CreateItemDTO) (*domain.Item, error) {
	return s.createItemUC.Execute(ctx, cmd)
}

func (s *auctionService) AssignItemToBusiness(ctx context.Context, itemID, businessID uuid.UUID) error {
	return s.assignItemUC.Execute(ctx, itemID, businessID)
}
