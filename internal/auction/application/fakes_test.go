package application_test

import (
	"context"
	"time"

	"github.com/bidworks/marketengine/internal/auction/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// fakeTx embeds pgx.Tx for the methods the use cases never touch; only
// commit and rollback are exercised against fakes.
type fakeTx struct{ pgx.Tx }

func (fakeTx) Commit(ctx context.Context) error   { return nil }
func (fakeTx) Rollback(ctx context.Context) error { return nil }

type fakeDB struct{}

func (fakeDB) BeginTx(ctx context.Context, _ pgx.TxOptions) (pgx.Tx, error) {
	return fakeTx{}, nil
}

type fakeItemRepo struct {
	items map[uuid.UUID]*domain.Item
	// updateErr simulates a per-item persistence failure in UpdateStatus.
	updateErr map[uuid.UUID]error
	// statusWrites records which items had a status persisted.
	statusWrites []uuid.UUID
}

func newFakeItemRepo(items ...*domain.Item) *fakeItemRepo {
	repo := &fakeItemRepo{
		items:     make(map[uuid.UUID]*domain.Item),
		updateErr: make(map[uuid.UUID]error),
	}
	for _, item := range items {
		repo.items[item.ID] = item
	}
	return repo
}

func (r *fakeItemRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	return item, nil
}

func (r *fakeItemRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Item, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeItemRepo) Save(ctx context.Context, tx pgx.Tx, item *domain.Item) error {
	r.items[item.ID] = item
	return nil
}

func (r *fakeItemRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ItemStatus) error {
	if err := r.updateErr[id]; err != nil {
		return err
	}
	item, ok := r.items[id]
	if !ok {
		return domain.ErrItemNotFound
	}
	item.Status = status
	r.statusWrites = append(r.statusWrites, id)
	return nil
}

func (r *fakeItemRepo) ListExpiredOpen(ctx context.Context, now time.Time) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for id, item := range r.items {
		if item.Status == domain.StatusOpen && item.EndTime.Before(now) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (r *fakeItemRepo) ListByBidder(ctx context.Context, userID uuid.UUID) ([]*domain.Item, error) {
	var items []*domain.Item
	for _, item := range r.items {
		for _, bid := range item.Bids {
			if bid.UserID == userID {
				items = append(items, item)
				break
			}
		}
	}
	return items, nil
}

type fakeBidRepo struct {
	saved []*domain.Bid
}

func (r *fakeBidRepo) Save(ctx context.Context, tx pgx.Tx, bid *domain.Bid) error {
	r.saved = append(r.saved, bid)
	return nil
}

func (r *fakeBidRepo) ListByItemID(ctx context.Context, itemID uuid.UUID) ([]*domain.Bid, error) {
	var bids []*domain.Bid
	for _, bid := range r.saved {
		if bid.ItemID == itemID {
			bids = append(bids, bid)
		}
	}
	return bids, nil
}
