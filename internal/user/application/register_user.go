package application

import (
	"context"
	"fmt"
	"time"

	"github.com/bidworks/marketengine/internal/shared/logger"
	"github.com/bidworks/marketengine/internal/user/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var log = logger.GetLogger()

// RegisterUserDTO carries the input for one account registration.
type RegisterUserDTO struct {
	Username string
	Password string
	Email    string
	Name     string
	Address  string
	City     string
	State    string
	Zip      string
}

type RegisterUserUseCase struct {
	userRepo domain.UserRepository
}

func NewRegisterUserUseCase(userRepo domain.UserRepository) *RegisterUserUseCase {
	return &RegisterUserUseCase{userRepo: userRepo}
}

func (uc *RegisterUserUseCase) Execute(ctx context.Context, cmd RegisterUserDTO) (*domain.User, error) {
	user, err := domain.NewUser(
		uuid.New(),
		cmd.Username, cmd.Password, cmd.Email, cmd.Name,
		cmd.Address, cmd.City, cmd.State, cmd.Zip,
		time.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		log.Error("RegisterUser: failed to create user",
			zap.String("username", cmd.Username),
			zap.Error(err),
		)
		return nil, fmt.Errorf("register user: failed to create user: %w", err)
	}

	log.Info("User registered",
		zap.String("userID", user.ID.String()),
		zap.String("username", user.Username),
	)
	return user, nil
}
