package application

import (
	"context"
	"time"

	"github.com/bidworks/marketengine/internal/auction/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BidDTO is the serialized form of one ledger entry.
type BidDTO struct {
	BidID     uuid.UUID       `json:"bid_id"`
	ItemID    uuid.UUID       `json:"item_id"`
	UserID    uuid.UUID       `json:"user_id"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
}

func NewBidDTO(bid *domain.Bid) BidDTO {
	return BidDTO{
		BidID:     bid.ID,
		ItemID:    bid.ItemID,
		UserID:    bid.UserID,
		Price:     bid.Price,
		CreatedAt: bid.CreatedAt,
	}
}

// ListBidsUseCase returns an item's full ledger, oldest first.
type ListBidsUseCase struct {
	itemRepo domain.ItemRepository
	bidRepo  domain.BidRepository
}

func NewListBidsUseCase(itemRepo domain.ItemRepository, bidRepo domain.BidRepository) *ListBidsUseCase {
	return &ListBidsUseCase{itemRepo: itemRepo, bidRepo: bidRepo}
}

func (uc *ListBidsUseCase) Execute(ctx context.Context, itemID uuid.UUID) ([]*domain.Bid, error) {
	// An unknown item is reported as not found, not as an empty ledger.
	if _, err := uc.itemRepo.GetByID(ctx, itemID); err != nil {
		return nil, err
	}
	return uc.bidRepo.ListByItemID(ctx, itemID)
}
