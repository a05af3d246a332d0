package access

import (
	"time"

	"sakura-community/pkg/apperr"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

var ErrForbidden = apperr.New(apperr.KindForbidden, "Admin access required")

func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Principal is the public projection of the acting user for one request.
type Principal struct {
	ID          uint64    `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email"`
	Role        Role      `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
}

func IsAdmin(role Role) bool {
	return role == RoleAdmin
}

func RequireAdmin(role Role) error {
	if !IsAdmin(role) {
		return ErrForbidden
	}
	return nil
}

// CanMutate allows admins to change anything and everyone else only what they own.
func CanMutate(actorID uint64, actorRole Role, ownerID uint64) bool {
	return IsAdmin(actorRole) || actorID == ownerID
}
