package usecase

import (
	"context"
	"errors"
	"fmt"

	"sakura-community/pkg/logger"
	"sakura-community/services/community/internal/entity"
	"sakura-community/services/community/internal/repo/persistent"
)

const dashboardRecentLimit = 5

type AdminUseCase interface {
	Dashboard(ctx context.Context) (*entity.Dashboard, error)
	ListPosts(ctx context.Context) ([]*entity.Post, error)
	DeletePost(ctx context.Context, postID uint64) error
}

type adminUseCase struct {
	userRepo    persistent.UserRepository
	postRepo    persistent.PostRepository
	commentRepo persistent.CommentRepository
	logger      *logger.Logger
}

func NewAdminUseCase(
	userRepo persistent.UserRepository,
	postRepo persistent.PostRepository,
	commentRepo persistent.CommentRepository,
	logger *logger.Logger,
) AdminUseCase {
	return &adminUseCase{
		userRepo:    userRepo,
		postRepo:    postRepo,
		commentRepo: commentRepo,
		logger:      logger,
	}
}

func (uc *adminUseCase) Dashboard(ctx context.Context) (*entity.Dashboard, error) {
	dashboard := &entity.Dashboard{}
	var err error

	if dashboard.TotalUsers, err = uc.userRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	if dashboard.TotalPosts, err = uc.postRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("count posts: %w", err)
	}
	if dashboard.TotalComments, err = uc.commentRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("count comments: %w", err)
	}
	if dashboard.RecentPosts, err = uc.postRepo.List(ctx, "", dashboardRecentLimit); err != nil {
		return nil, fmt.Errorf("recent posts: %w", err)
	}
	if dashboard.RecentUsers, err = uc.userRepo.List(ctx, dashboardRecentLimit); err != nil {
		return nil, fmt.Errorf("recent users: %w", err)
	}
	return dashboard, nil
}

func (uc *adminUseCase) ListPosts(ctx context.Context) ([]*entity.Post, error) {
	posts, err := uc.postRepo.List(ctx, "", 0)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (uc *adminUseCase) DeletePost(ctx context.Context, postID uint64) error {
	if err := uc.postRepo.Delete(ctx, postID); err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return ErrPostNotFound
		}
		return fmt.Errorf("delete post %d: %w", postID, err)
	}

	uc.logger.Info("Admin deleted post %d", postID)
	return nil
}
