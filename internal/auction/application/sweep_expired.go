package application

import (
	"context"
	"time"

	"github.com/bidworks/marketengine/internal/auction/domain"
	"go.uber.org/zap"
)

// SweepExpiredUseCase is the maintenance batch: every open item whose end
// time is strictly before now is marked closed. Re-running after all
// eligible items are closed is a no-op, and one item failing to update does
// not stop the rest of the batch.
type SweepExpiredUseCase struct {
	itemRepo domain.ItemRepository
}

func NewSweepExpiredUseCase(itemRepo domain.ItemRepository) *SweepExpiredUseCase {
	return &SweepExpiredUseCase{itemRepo: itemRepo}
}

// Execute returns the number of items closed by this run.
func (uc *SweepExpiredUseCase) Execute(ctx context.Context, now time.Time) (int, error) {
	ids, err := uc.itemRepo.ListExpiredOpen(ctx, now)
	if err != nil {
		return 0, err
	}

	closed := 0
	for _, id := range ids {
		if err := uc.itemRepo.UpdateStatus(ctx, id, domain.StatusClosed); err != nil {
			log.Error("SweepExpired: failed to close item, continuing",
				zap.String("itemID", id.String()),
				zap.Error(err),
			)
			continue
		}
		closed++
	}

	if closed > 0 {
		log.Info("SweepExpired: closed elapsed items",
			zap.Int("closed", closed),
			zap.Int("eligible", len(ids)),
			zap.Time("now", now),
		)
	}
	return closed, nil
}
