package entity

import (
	"time"

	"sakura-community/pkg/access"
)

type User struct {
	ID           uint64      `json:"id"`
	Username     string      `json:"username"`
	DisplayName  string      `json:"display_name"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Role         access.Role `json:"role"`
	CreatedAt    time.Time   `json:"created_at"`
}

// Principal drops the password hash.
func (u *User) Principal() *access.Principal {
	return &access.Principal{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Email:       u.Email,
		Role:        u.Role,
		CreatedAt:   u.CreatedAt,
	}
}
