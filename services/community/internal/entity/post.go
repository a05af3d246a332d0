package entity

import "time"

type Post struct {
	ID                uint64    `json:"id"`
	Title             string    `json:"title"`
	Content           string    `json:"content"`
	UserID            uint64    `json:"user_id"`
	CreatedAt         time.Time `json:"created_at"`
	Author            string    `json:"author"`
	AuthorDisplayName string    `json:"author_display_name"`
	CommentCount      int64     `json:"comment_count"`
	LikeCount         int64     `json:"like_count"`
}

// PostDetail is a post with its comments, oldest first, and its likes.
type PostDetail struct {
	Post
	Comments []*Comment `json:"comments"`
	Likes    []*Like    `json:"likes"`
}
