package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bidworks/marketengine/internal/auction/domain"
	"github.com/bidworks/marketengine/internal/shared/logger"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var log = logger.GetLogger()

// DB is the transaction starter the use cases need. *pgxpool.Pool satisfies
// it.
type DB interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// PlaceBidDTO carries the input for one bid placement. The acting user is
// always explicit; nothing is read from ambient session state.
type PlaceBidDTO struct {
	ItemID uuid.UUID
	UserID uuid.UUID
	Price  decimal.Decimal
}

// PlaceBidUseCase records a bid inside a single transaction. The item row
// is locked for the duration, so two racing bids on the same item are
// serialized and the loser re-reads the ledger the winner extended. Bids on
// different items never contend. Status is re-checked under the same lock,
// so a sweep closing the item concurrently cannot let a late bid through.
type PlaceBidUseCase struct {
	itemRepo domain.ItemRepository
	bidRepo  domain.BidRepository
	db       DB
}

func NewPlaceBidUseCase(itemRepo domain.ItemRepository, bidRepo domain.BidRepository, db DB) *PlaceBidUseCase {
	return &PlaceBidUseCase{
		itemRepo: itemRepo,
		bidRepo:  bidRepo,
		db:       db,
	}
}

func (uc *PlaceBidUseCase) Execute(ctx context.Context, cmd PlaceBidDTO) (bid *domain.Bid, err error) {
	if !cmd.Price.IsPositive() {
		return nil, domain.ErrInvalidPrice
	}

	tx, err := uc.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("place bid: failed to begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if commitErr := tx.Commit(ctx); commitErr != nil {
			log.Error("PlaceBid: failed to commit transaction",
				zap.String("itemID", cmd.ItemID.String()),
				zap.Error(commitErr),
			)
			bid = nil
			err = fmt.Errorf("place bid: failed to commit transaction: %w", commitErr)
		}
	}()

	item, err := uc.itemRepo.GetByIDForUpdate(ctx, tx, cmd.ItemID)
	if err != nil {
		if !errors.Is(err, domain.ErrItemNotFound) {
			log.Error("PlaceBid: failed to load item",
				zap.String("itemID", cmd.ItemID.String()),
				zap.Error(err),
			)
		}
		return nil, fmt.Errorf("place bid: failed to load item %s: %w", cmd.ItemID, err)
	}

	bid, err = item.RegisterBid(cmd.UserID, cmd.Price, time.Now())
	if err != nil {
		return nil, err
	}

	if err = uc.bidRepo.Save(ctx, tx, bid); err != nil {
		log.Error("PlaceBid: failed to save bid",
			zap.String("itemID", cmd.ItemID.String()),
			zap.String("bidID", bid.ID.String()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("place bid: failed to save bid for item %s: %w", cmd.ItemID, err)
	}
	if err = uc.itemRepo.Save(ctx, tx, item); err != nil {
		log.Error("PlaceBid: failed to save item",
			zap.String("itemID", cmd.ItemID.String()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("place bid: failed to save item %s: %w", cmd.ItemID, err)
	}

	return bid, nil
}
