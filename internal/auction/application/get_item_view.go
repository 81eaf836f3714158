package application

import (
	"context"
	"time"

	"github.com/bidworks/marketengine/internal/auction/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ItemViewDTO is the read-only projection the rendering layer consumes.
type ItemViewDTO struct {
	ItemID       uuid.UUID       `json:"item_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	EndTime      time.Time       `json:"end_time"`
	Status       string          `json:"status"`
	HighBid      decimal.Decimal `json:"high_bid"`
	HighBidderID *uuid.UUID      `json:"high_bidder_id,omitempty"`
	MinBid       decimal.Decimal `json:"min_bid"`
	HasBids      bool            `json:"has_bids"`
}

// GetItemViewUseCase projects an item for display, lazily correcting its
// status so a viewed item never shows as open past its end time even if the
// sweep has not run.
type GetItemViewUseCase struct {
	itemRepo domain.ItemRepository
}

func NewGetItemViewUseCase(itemRepo domain.ItemRepository) *GetItemViewUseCase {
	return &GetItemViewUseCase{itemRepo: itemRepo}
}

func (uc *GetItemViewUseCase) Execute(ctx context.Context, itemID uuid.UUID) (*ItemViewDTO, error) {
	item, err := uc.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if item.RefreshOwnStatus(time.Now()) {
		// Closing is terminal, so persisting outside a transaction is safe:
		// a racing sweep writes the same value.
		if err := uc.itemRepo.UpdateStatus(ctx, item.ID, item.Status); err != nil {
			log.Warn("GetItemView: failed to persist lazy status refresh",
				zap.String("itemID", item.ID.String()),
				zap.Error(err),
			)
		}
	}

	return NewItemView(item), nil
}

// NewItemView projects an item into its display shape.
func NewItemView(item *domain.Item) *ItemViewDTO {
	dto := &ItemViewDTO{
		ItemID:      item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		EndTime:     item.EndTime,
		Status:      item.Status.Label(),
		HighBid:     item.HighBid(),
		MinBid:      item.MinBid(),
		HasBids:     item.HasBids(),
	}
	if bidderID, ok := item.HighBidder(); ok {
		dto.HighBidderID = &bidderID
	}
	return dto
}
