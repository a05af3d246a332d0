package entity

import "time"

type Comment struct {
	ID                uint64    `json:"id"`
	Content           string    `json:"content"`
	PostID            uint64    `json:"post_id"`
	UserID            uint64    `json:"user_id"`
	CreatedAt         time.Time `json:"created_at"`
	Author            string    `json:"author"`
	AuthorDisplayName string    `json:"author_display_name"`
}

type Like struct {
	ID        uint64    `json:"id"`
	UserID    uint64    `json:"user_id"`
	PostID    uint64    `json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}
