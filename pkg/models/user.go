package models

import (
	"time"

	"sakura-community/pkg/access"

	"gorm.io/gorm"
)

type User struct {
	ID          uint64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username    string      `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Email       string      `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password    string      `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	DisplayName string      `gorm:"type:varchar(100);not null" json:"display_name"`
	Role        access.Role `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	CreatedAt   time.Time   `gorm:"index" json:"created_at"`

	Posts    []Post    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Comments []Comment `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Likes    []Like    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.Role == "" {
		u.Role = access.RoleUser
	}
	return nil
}
