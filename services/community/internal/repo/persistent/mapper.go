package persistent

import (
	"time"

	"sakura-community/pkg/models"
	"sakura-community/services/community/internal/entity"
)

func ToUserEntity(m *models.User) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:           m.ID,
		Username:     m.Username,
		DisplayName:  m.DisplayName,
		Email:        m.Email,
		PasswordHash: m.Password,
		Role:         m.Role,
		CreatedAt:    m.CreatedAt,
	}
}

func ToUserModel(e *entity.User) *models.User {
	if e == nil {
		return nil
	}

	return &models.User{
		ID:          e.ID,
		Username:    e.Username,
		DisplayName: e.DisplayName,
		Email:       e.Email,
		Password:    e.PasswordHash,
		Role:        e.Role,
		CreatedAt:   e.CreatedAt,
	}
}

func ToPostModel(e *entity.Post) *models.Post {
	if e == nil {
		return nil
	}

	return &models.Post{
		ID:        e.ID,
		Title:     e.Title,
		Content:   e.Content,
		UserID:    e.UserID,
		CreatedAt: e.CreatedAt,
	}
}

func ToCommentModel(e *entity.Comment) *models.Comment {
	if e == nil {
		return nil
	}

	return &models.Comment{
		ID:        e.ID,
		Content:   e.Content,
		PostID:    e.PostID,
		UserID:    e.UserID,
		CreatedAt: e.CreatedAt,
	}
}

func ToLikeEntity(m *models.Like) *entity.Like {
	if m == nil {
		return nil
	}

	return &entity.Like{
		ID:        m.ID,
		UserID:    m.UserID,
		PostID:    m.PostID,
		CreatedAt: m.CreatedAt,
	}
}

// postRow is a post joined with its author and read-time counters.
type postRow struct {
	ID                uint64
	Title             string
	Content           string
	UserID            uint64
	CreatedAt         time.Time
	Author            string
	AuthorDisplayName string
	CommentCount      int64
	LikeCount         int64
}

func (r *postRow) toEntity() *entity.Post {
	return &entity.Post{
		ID:                r.ID,
		Title:             r.Title,
		Content:           r.Content,
		UserID:            r.UserID,
		CreatedAt:         r.CreatedAt,
		Author:            r.Author,
		AuthorDisplayName: r.AuthorDisplayName,
		CommentCount:      r.CommentCount,
		LikeCount:         r.LikeCount,
	}
}

type commentRow struct {
	ID                uint64
	Content           string
	PostID            uint64
	UserID            uint64
	CreatedAt         time.Time
	Author            string
	AuthorDisplayName string
}

func (r *commentRow) toEntity() *entity.Comment {
	return &entity.Comment{
		ID:                r.ID,
		Content:           r.Content,
		PostID:            r.PostID,
		UserID:            r.UserID,
		CreatedAt:         r.CreatedAt,
		Author:            r.Author,
		AuthorDisplayName: r.AuthorDisplayName,
	}
}
