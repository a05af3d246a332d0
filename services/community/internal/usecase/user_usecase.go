package usecase

import (
	"context"
	"errors"
	"fmt"

	"sakura-community/pkg/access"
	"sakura-community/pkg/logger"
	"sakura-community/services/community/internal/entity"
	"sakura-community/services/community/internal/repo/persistent"
)

type UserUseCase interface {
	ListUsers(ctx context.Context) ([]*entity.User, error)
	DeleteUser(ctx context.Context, actor *access.Principal, userID uint64) error
}

type userUseCase struct {
	userRepo persistent.UserRepository
	logger   *logger.Logger
}

func NewUserUseCase(userRepo persistent.UserRepository, logger *logger.Logger) UserUseCase {
	return &userUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *userUseCase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := uc.userRepo.List(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// DeleteUser lets users remove themselves and admins remove anyone. The
// permission check runs before the lookup, so non-admins learn nothing about other ids.
func (uc *userUseCase) DeleteUser(ctx context.Context, actor *access.Principal, userID uint64) error {
	if !access.CanMutate(actor.ID, actor.Role, userID) {
		return ErrPermissionDenied
	}

	if err := uc.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("delete user %d: %w", userID, err)
	}

	uc.logger.Info("User %d (%s) deleted user %d", actor.ID, actor.Role, userID)
	return nil
}
