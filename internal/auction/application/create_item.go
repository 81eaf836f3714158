package application

import (
	"context"
	"fmt"
	"time"

	"github.com/bidworks/marketengine/internal/auction/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CreateItemDTO carries the input for a new listing. BusinessID is the
// business the acting admin is listing the item under.
type CreateItemDTO struct {
	Name        string
	Description string
	Price       decimal.Decimal
	EndTime     time.Time
	BusinessID  uuid.NullUUID
}

type CreateItemUseCase struct {
	itemRepo domain.ItemRepository
	db       DB
}

func NewCreateItemUseCase(itemRepo domain.ItemRepository, db DB) *CreateItemUseCase {
	return &CreateItemUseCase{itemRepo: itemRepo, db: db}
}

func (uc *CreateItemUseCase) Execute(ctx context.Context, cmd CreateItemDTO) (item *domain.Item, err error) {
	item, err = domain.NewItem(uuid.New(), cmd.Name, cmd.Description, cmd.Price, cmd.EndTime, time.Now())
	if err != nil {
		return nil, err
	}
	if cmd.BusinessID.Valid {
		if err = item.AssignToBusiness(cmd.BusinessID.UUID); err != nil {
			return nil, err
		}
	}

	tx, err := uc.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("create item: failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if commitErr := tx.Commit(ctx); commitErr != nil {
			item = nil
			err = fmt.Errorf("create item: failed to commit transaction: %w", commitErr)
		}
	}()

	if err = uc.itemRepo.Save(ctx, tx, item); err != nil {
		return nil, fmt.Errorf("create item: failed to save item: %w", err)
	}

	log.Info("Item created",
		zap.String("itemID", item.ID.String()),
		zap.String("name", item.Name),
		zap.Time("endTime", item.EndTime),
	)
	return item, nil
}

// AssignItemUseCase attaches an existing item to a business. The row lock
// keeps the not-already-owned invariant safe against concurrent assignment.
type AssignItemUseCase struct {
	itemRepo domain.ItemRepository
	db       DB
}

func NewAssignItemUseCase(itemRepo domain.ItemRepository, db DB) *AssignItemUseCase {
	return &AssignItemUseCase{itemRepo: itemRepo, db: db}
}

func (uc *AssignItemUseCase) Execute(ctx context.Context, itemID, businessID uuid.UUID) (err error) {
	tx, err := uc.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("assign item: failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if commitErr := tx.Commit(ctx); commitErr != nil {
			err = fmt.Errorf("assign item: failed to commit transaction: %w", commitErr)
		}
	}()

	item, err := uc.itemRepo.GetByIDForUpdate(ctx, tx, itemID)
	if err != nil {
		return fmt.Errorf("assign item: failed to load item %s: %w", itemID, err)
	}
	if err = item.AssignToBusiness(businessID); err != nil {
		return err
	}
	if err = uc.itemRepo.Save(ctx, tx, item); err != nil {
		return fmt.Errorf("assign item: failed to save item %s: %w", itemID, err)
	}
	return nil
}
