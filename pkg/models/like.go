package models

import "time"

// Like is unique per (user, post); toggling relies on idx_likes_user_post.
type Like struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint64    `gorm:"not null;uniqueIndex:idx_likes_user_post" json:"user_id"`
	PostID    uint64    `gorm:"not null;uniqueIndex:idx_likes_user_post;index:idx_likes_post" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (Like) TableName() string {
	return "likes"
}

// All lists the schema in dependency order for AutoMigrate.
func All() []interface{} {
	return []interface{}{&User{}, &Post{}, &Comment{}, &Like{}}
}
