package application_test

import (
	"context"
	"testing"
	"time"

	"github.com/bidworks/marketengine/internal/auction/application"
	"github.com/bidworks/marketengine/internal/auction/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateItem(t *testing.T) {
	repo := newFakeItemRepo()
	uc := application.NewCreateItemUseCase(repo, fakeDB{})
	businessID := uuid.New()

	item, err := uc.Execute(context.Background(), application.CreateItemDTO{
		Name:        "wing chair",
		Description: "needs reupholstering",
		Price:       decimal.RequireFromString("25.00"),
		EndTime:     time.Now().Add(48 * time.Hour),
		BusinessID:  uuid.NullUUID{UUID: businessID, Valid: true},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusOpen, item.Status)
	assert.Equal(t, businessID, item.BusinessID.UUID)
	_, ok := repo.items[item.ID]
	assert.True(t, ok)
}

func TestCreateItemValidation(t *testing.T) {
	uc := application.NewCreateItemUseCase(newFakeItemRepo(), fakeDB{})

	_, err := uc.Execute(context.Background(), application.CreateItemDTO{
		Name:        "",
		Description: "desc",
		Price:       decimal.RequireFromString("25.00"),
		EndTime:     time.Now().Add(time.Hour),
	})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "name", vErr.Field)
}

func TestAssignItemToBusiness(t *testing.T) {
	item := openItem(t, "10.00")
	repo := newFakeItemRepo(item)
	uc := application.NewAssignItemUseCase(repo, fakeDB{})
	first, second := uuid.New(), uuid.New()

	require.NoError(t, uc.Execute(context.Background(), item.ID, first))
	assert.Equal(t, first, item.BusinessID.UUID)

	err := uc.Execute(context.Background(), item.ID, second)
	assert.ErrorIs(t, err, domain.ErrItemOwnedByOtherBusiness)

	err = uc.Execute(context.Background(), uuid.New(), first)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}
