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

type PostUseCase interface {
	ListPosts(ctx context.Context, search string) ([]*entity.Post, error)
	GetPost(ctx context.Context, postID uint64) (*entity.PostDetail, error)
	CreatePost(ctx context.Context, actor *access.Principal, input PostInput) (*entity.Post, error)
	DeletePost(ctx context.Context, actor *access.Principal, postID uint64) error
	ToggleLike(ctx context.Context, actor *access.Principal, postID uint64) (bool, error)
}

type postUseCase struct {
	postRepo    persistent.PostRepository
	commentRepo persistent.CommentRepository
	likeRepo    persistent.LikeRepository
	logger      *logger.Logger
}

func NewPostUseCase(
	postRepo persistent.PostRepository,
	commentRepo persistent.CommentRepository,
	likeRepo persistent.LikeRepository,
	logger *logger.Logger,
) PostUseCase {
	return &postUseCase{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
		logger:      logger,
	}
}

func (uc *postUseCase) ListPosts(ctx context.Context, search string) ([]*entity.Post, error) {
	posts, err := uc.postRepo.List(ctx, search, 0)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (uc *postUseCase) GetPost(ctx context.Context, postID uint64) (*entity.PostDetail, error) {
	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("get post %d: %w", postID, err)
	}

	comments, err := uc.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("list comments of post %d: %w", postID, err)
	}

	likes, err := uc.likeRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("list likes of post %d: %w", postID, err)
	}

	return &entity.PostDetail{
		Post:     *post,
		Comments: comments,
		Likes:    likes,
	}, nil
}

func (uc *postUseCase) CreatePost(ctx context.Context, actor *access.Principal, input PostInput) (*entity.Post, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	post := &entity.Post{
		Title:   input.Title,
		Content: input.Content,
		UserID:  actor.ID,
	}
	if err := uc.postRepo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	uc.logger.Info("User %d created post %d", actor.ID, post.ID)
	return post, nil
}

// DeletePost is allowed to the author and to admins.
func (uc *postUseCase) DeletePost(ctx context.Context, actor *access.Principal, postID uint64) error {
	post, err := uc.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return ErrPostNotFound
		}
		return fmt.Errorf("get post %d: %w", postID, err)
	}

	if !access.CanMutate(actor.ID, actor.Role, post.UserID) {
		return ErrPermissionDenied
	}

	if err := uc.postRepo.Delete(ctx, postID); err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return ErrPostNotFound
		}
		return fmt.Errorf("delete post %d: %w", postID, err)
	}

	uc.logger.Info("User %d (%s) deleted post %d", actor.ID, actor.Role, postID)
	return nil
}

// ToggleLike likes the post if the actor has not yet, otherwise removes the like.
// It reports whether the post is liked afterwards.
func (uc *postUseCase) ToggleLike(ctx context.Context, actor *access.Principal, postID uint64) (bool, error) {
	exists, err := uc.postRepo.Exists(ctx, postID)
	if err != nil {
		return false, fmt.Errorf("check post %d: %w", postID, err)
	}
	if !exists {
		return false, ErrPostNotFound
	}

	isLiked, err := uc.likeRepo.IsLiked(ctx, actor.ID, postID)
	if err != nil {
		return false, fmt.Errorf("check like status: %w", err)
	}

	if isLiked {
		if err := uc.likeRepo.DeleteLike(ctx, actor.ID, postID); err != nil {
			return false, fmt.Errorf("unlike post %d: %w", postID, err)
		}
		return false, nil
	}

	if err := uc.likeRepo.CreateLike(ctx, actor.ID, postID); err != nil {
		return false, fmt.Errorf("like post %d: %w", postID, err)
	}
	return true, nil
}
