package persistent

import (
	"context"

	"sakura-community/pkg/models"
	"sakura-community/services/community/internal/entity"

	"gorm.io/gorm"
)

const postColumns = `posts.id, posts.title, posts.content, posts.user_id, posts.created_at,
	users.username AS author,
	users.display_name AS author_display_name,
	(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) AS comment_count,
	(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) AS like_count`

type PostRepository interface {
	Create(ctx context.Context, post *entity.Post) error
	GetByID(ctx context.Context, id uint64) (*entity.Post, error)
	Exists(ctx context.Context, id uint64) (bool, error)
	List(ctx context.Context, search string, limit int) ([]*entity.Post, error)
	Delete(ctx context.Context, id uint64) error
	Count(ctx context.Context) (int64, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postModel := ToPostModel(post)
	if err := r.db.WithContext(ctx).Omit("Comments", "Likes").Create(postModel).Error; err != nil {
		return translate(err)
	}
	post.ID = postModel.ID
	post.CreatedAt = postModel.CreatedAt
	return nil
}

func (r *postRepository) withAuthor(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("posts").
		Select(postColumns).
		Joins("JOIN users ON users.id = posts.user_id")
}

func (r *postRepository) GetByID(ctx context.Context, id uint64) (*entity.Post, error) {
	var rows []postRow
	if err := r.withAuthor(ctx).Where("posts.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return rows[0].toEntity(), nil
}

func (r *postRepository) Exists(ctx context.Context, id uint64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Post{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// List returns posts newest first, optionally filtered by a title substring.
// A limit <= 0 returns every match.
func (r *postRepository) List(ctx context.Context, search string, limit int) ([]*entity.Post, error) {
	query := r.withAuthor(ctx)
	if search != "" {
		query = query.Where("posts.title LIKE ?", "%"+search+"%")
	}
	query = query.Order("posts.created_at DESC, posts.id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []postRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	posts := make([]*entity.Post, len(rows))
	for i := range rows {
		posts[i] = rows[i].toEntity()
	}
	return posts, nil
}

// Delete removes the post together with its comments and likes.
func (r *postRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&models.Post{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *postRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Post{}).Count(&count).Error
	return count, err
}
