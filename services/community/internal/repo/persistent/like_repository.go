package persistent

import (
	"context"

	"sakura-community/pkg/models"
	"sakura-community/services/community/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikeRepository interface {
	CreateLike(ctx context.Context, userID, postID uint64) error
	DeleteLike(ctx context.Context, userID, postID uint64) error
	IsLiked(ctx context.Context, userID, postID uint64) (bool, error)
	ListByPost(ctx context.Context, postID uint64) ([]*entity.Like, error)
	Count(ctx context.Context) (int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

// CreateLike is idempotent: a concurrent duplicate hits idx_likes_user_post and is ignored.
func (r *likeRepository) CreateLike(ctx context.Context, userID, postID uint64) error {
	likeModel := &models.Like{
		UserID: userID,
		PostID: postID,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "post_id"}},
			DoNothing: true,
		}).
		Create(likeModel).Error
	return translate(err)
}

func (r *likeRepository) DeleteLike(ctx context.Context, userID, postID uint64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.Like{}).Error
}

func (r *likeRepository) IsLiked(ctx context.Context, userID, postID uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	return count > 0, err
}

func (r *likeRepository) ListByPost(ctx context.Context, postID uint64) ([]*entity.Like, error) {
	var likeModels []models.Like
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Find(&likeModels).Error
	if err != nil {
		return nil, err
	}

	likes := make([]*entity.Like, len(likeModels))
	for i := range likeModels {
		likes[i] = ToLikeEntity(&likeModels[i])
	}
	return likes, nil
}

func (r *likeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Like{}).Count(&count).Error
	return count, err
}
