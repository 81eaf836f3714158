package application_test

import (
	"context"
	"testing"
	"time"

	auction "github.com/bidworks/marketengine/internal/auction/domain"
	"github.com/bidworks/marketengine/internal/user/application"
	"github.com/bidworks/marketengine/internal/user/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBusinessRepo struct {
	adminCounts map[uuid.UUID]int
}

func (r *fakeBusinessRepo) Create(ctx context.Context, business *domain.Business) error { return nil }
func (r *fakeBusinessRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Business, error) {
	return nil, domain.ErrBusinessNotFound
}
func (r *fakeBusinessRepo) AddAdmin(ctx context.Context, businessID, userID uuid.UUID) error {
	return nil
}
func (r *fakeBusinessRepo) CountByAdmin(ctx context.Context, userID uuid.UUID) (int, error) {
	return r.adminCounts[userID], nil
}

type fakeItemRepo struct {
	items []*auction.Item
}

func (r *fakeItemRepo) GetByID(ctx context.Context, id uuid.UUID) (*auction.Item, error) {
	return nil, auction.ErrItemNotFound
}
func (r *fakeItemRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*auction.Item, error) {
	return nil, auction.ErrItemNotFound
}
func (r *fakeItemRepo) Save(ctx context.Context, tx pgx.Tx, item *auction.Item) error { return nil }
func (r *fakeItemRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status auction.ItemStatus) error {
	return nil
}
func (r *fakeItemRepo) ListExpiredOpen(ctx context.Context, now time.Time) ([]uuid.UUID, error) {
	return nil, nil
}
func (r *fakeItemRepo) ListByBidder(ctx context.Context, userID uuid.UUID) ([]*auction.Item, error) {
	var items []*auction.Item
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
func testUser(t *testing.T, platformAdmin bool) *domain.User {
	t.Helper()
	user, err := domain.NewUser(
		uuid.New(), "frank", "password", "frank@example.com", "Frank So",
		"2125 Anywhere", "Denver", "CO", "80123", time.Now(),
	)
	require.NoError(t, err)
	user.PlatformAdmin = platformAdmin
	return user
}

// itemWithBids builds an item whose ledger holds one bid per (user, price)
// pair, in order.
func itemWithBids(t *testing.T, status auction.ItemStatus, bidders []uuid.UUID, prices []string) *auction.Item {
	t.Helper()
	now := time.Now()
	item, err := auction.NewItem(
		uuid.New(), "painting", "oil on canvas",
		decimal.RequireFromString("10.00"), now.Add(time.Hour), now,
	)
	require.NoError(t, err)
	for i, bidder := range bidders {
		_, err := item.RegisterBid(bidder, decimal.RequireFromString(prices[i]), now.Add(time.Duration(i)*time.Minute))
		require.NoError(t, err)
	}
	item.Status = status
	return item
}

func TestPermissionTiers(t *testing.T) {
	ctx := context.Background()
	regular := testUser(t, false)
	platform := testUser(t, true)
	bizAdmin := testUser(t, false)

	businessRepo := &fakeBusinessRepo{adminCounts: map[uuid.UUID]int{bizAdmin.ID: 2}}
	svc := application.NewRolesService(businessRepo, &fakeItemRepo{})

	assert.False(t, svc.IsPlatformAdmin(regular))
	assert.True(t, svc.IsPlatformAdmin(platform))

	isBiz, err := svc.IsBusinessAdmin(ctx, bizAdmin)
	require.NoError(t, err)
	assert.True(t, isBiz)

	isBiz, err = svc.IsBusinessAdmin(ctx, regular)
	require.NoError(t, err)
	assert.False(t, isBiz)

	for user, want := range map[*domain.User]bool{regular: false, platform: true, bizAdmin: true} {
		isAdmin, err := svc.IsAdmin(ctx, user)
		require.NoError(t, err)
		assert.Equal(t, want, isAdmin)
	}
}

func TestWonAndLostItems(t *testing.T) {
	ctx := context.Background()
	user := testUser(t, false)
	rival := uuid.New()

	won := itemWithBids(t, auction.StatusClosed, []uuid.UUID{rival, user.ID}, []string{"11.00", "20.00"})
	lost := itemWithBids(t, auction.StatusClosed, []uuid.UUID{user.ID, rival}, []string{"11.00", "20.00"})
	stillOpen := itemWithBids(t, auction.StatusOpen, []uuid.UUID{user.ID}, []string{"11.00"})
	notBidOn := itemWithBids(t, auction.StatusClosed, []uuid.UUID{rival}, []string{"11.00"})

	itemRepo := &fakeItemRepo{items: []*auction.Item{won, lost, stillOpen, notBidOn}}
	svc := application.NewRolesService(&fakeBusinessRepo{}, itemRepo)

	wonItems, err := svc.WonItems(ctx, user)
	require.NoError(t, err)
	require.Len(t, wonItems, 1)
	assert.Equal(t, won.ID, wonItems[0].ID)

	lostItems, err := svc.LostItems(ctx, user)
	require.NoError(t, err)
	require.Len(t, lostItems, 1)
	assert.Equal(t, lost.ID, lostItems[0].ID)

	// Won and lost never overlap.
	for _, w := range wonItems {
		for _, l := range lostItems {
			assert.NotEqual(t, w.ID, l.ID)
		}
	}
}

func TestOpenAndClosedItems(t *testing.T) {
	ctx := context.Background()
	user := testUser(t, false)
	rival := uuid.New()

	open := itemWithBids(t, auction.StatusOpen, []uuid.UUID{user.ID}, []string{"11.00"})
	closedWon := itemWithBids(t, auction.StatusClosed, []uuid.UUID{user.ID}, []string{"11.00"})
	closedLost := itemWithBids(t, auction.StatusClosed, []uuid.UUID{user.ID, rival}, []string{"11.00", "20.00"})

	itemRepo := &fakeItemRepo{items: []*auction.Item{open, closedWon, closedLost}}
	svc := application.NewRolesService(&fakeBusinessRepo{}, itemRepo)

	openItems, err := svc.OpenItems(ctx, user)
	require.NoError(t, err)
	require.Len(t, openItems, 1)
	assert.Equal(t, open.ID, openItems[0].ID)

	closedItems, err := svc.ClosedItems(ctx, user)
	require.NoError(t, err)
	assert.Len(t, closedItems, 2)
}
