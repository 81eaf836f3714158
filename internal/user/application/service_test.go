package application_test

import (
	"context"
	"testing"

	auction "github.com/bidworks/marketengine/internal/auction/domain"
	"github.com/bidworks/marketengine/internal/user/application"
	"github.com/bidworks/marketengine/internal/user/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users map[uuid.UUID]*domain.User
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[uuid.UUID]*domain.User)}
	for _, user := range users {
		repo.users[user.ID] = user
	}
	return repo
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func newUserService(userRepo *fakeUserRepo, itemRepo *fakeItemRepo) application.UserService {
	return application.NewUserService(
		application.NewRegisterUserUseCase(userRepo),
		application.NewRolesService(&fakeBusinessRepo{}, itemRepo),
		userRepo,
	)
}

func TestRegisterPersistsHashedUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newUserService(repo, &fakeItemRepo{})

	user, err := svc.Register(context.Background(), application.RegisterUserDTO{
		Username: "frank", Password: "password", Email: "frank@example.com",
		Name: "Frank So", Address: "2125 Anywhere", City: "Denver",
		State: "CO", Zip: "80123",
	})
	require.NoError(t, err)

	stored, err := repo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "password", stored.PasswordHash)
	assert.True(t, stored.CheckPassword("password"))
}

func TestRegisterValidation(t *testing.T) {
	svc := newUserService(newFakeUserRepo(), &fakeItemRepo{})

	_, err := svc.Register(context.Background(), application.RegisterUserDTO{
		Username: "frank", Password: "password", Email: "frank@example.com",
		Name: "Frank So", Address: "2125 Anywhere", City: "Denver",
		State: "CO",
	})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "zip", vErr.Field)
}

func TestItemDashboardGroupsByOutcome(t *testing.T) {
	ctx := context.Background()
	user := testUser(t, false)
	rival := uuid.New()

	won := itemWithBids(t, auction.StatusClosed, []uuid.UUID{rival, user.ID}, []string{"11.00", "20.00"})
	lost := itemWithBids(t, auction.StatusClosed, []uuid.UUID{user.ID, rival}, []string{"11.00", "20.00"})
	stillOpen := itemWithBids(t, auction.StatusOpen, []uuid.UUID{user.ID}, []string{"11.00"})

	svc := newUserService(
		newFakeUserRepo(user),
		&fakeItemRepo{items: []*auction.Item{won, lost, stillOpen}},
	)

	dashboard, err := svc.ItemDashboard(ctx, user.ID)
	require.NoError(t, err)

	require.Len(t, dashboard.Won, 1)
	assert.Equal(t, won.ID, dashboard.Won[0].ItemID)
	assert.Equal(t, "20.00", dashboard.Won[0].HighBid.StringFixed(2))
	require.Len(t, dashboard.Lost, 1)
	assert.Equal(t, lost.ID, dashboard.Lost[0].ItemID)
	require.Len(t, dashboard.Open, 1)
	assert.Equal(t, stillOpen.ID, dashboard.Open[0].ItemID)
	assert.Len(t, dashboard.Closed, 2)
}

func TestItemDashboardUnknownUser(t *testing.T) {
	svc := newUserService(newFakeUserRepo(), &fakeItemRepo{})

	_, err := svc.ItemDashboard(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
