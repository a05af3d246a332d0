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

type CommentUseCase interface {
	CreateComment(ctx context.Context, actor *access.Principal, postID uint64, content string) (*entity.Comment, error)
	DeleteComment(ctx context.Context, actor *access.Principal, commentID uint64) error
}

type commentUseCase struct {
	commentRepo persistent.CommentRepository
	postRepo    persistent.PostRepository
	logger      *logger.Logger
}

func NewCommentUseCase(
	commentRepo persistent.CommentRepository,
	postRepo persistent.PostRepository,
	logger *logger.Logger,
) CommentUseCase {
	return &commentUseCase{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		logger:      logger,
	}
}

func (uc *commentUseCase) CreateComment(ctx context.Context, actor *access.Principal, postID uint64, content string) (*entity.Comment, error) {
	if err := (CommentInput{Content: content, PostID: postID}).Validate(); err != nil {
		return nil, err
	}

	exists, err := uc.postRepo.Exists(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("check post %d: %w", postID, err)
	}
	if !exists {
		return nil, ErrPostNotFound
	}

	comment := &entity.Comment{
		Content: content,
		PostID:  postID,
		UserID:  actor.ID,
	}
	if err := uc.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	created, err := uc.commentRepo.GetByID(ctx, comment.ID)
	if err != nil {
		return nil, fmt.Errorf("reload comment %d: %w", comment.ID, err)
	}
	return created, nil
}

// DeleteComment is allowed to the comment's author and to admins.
func (uc *commentUseCase) DeleteComment(ctx context.Context, actor *access.Principal, commentID uint64) error {
	comment, err := uc.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return ErrCommentNotFound
		}
		return fmt.Errorf("get comment %d: %w", commentID, err)
	}

	if !access.CanMutate(actor.ID, actor.Role, comment.UserID) {
		return ErrPermissionDenied
	}

	if err := uc.commentRepo.Delete(ctx, commentID); err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return ErrCommentNotFound
		}
		return fmt.Errorf("delete comment %d: %w", commentID, err)
	}

	uc.logger.Info("User %d (%s) deleted comment %d", actor.ID, actor.Role, commentID)
	return nil
}
