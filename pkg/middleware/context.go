package middleware

import (
	"sakura-community/pkg/access"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserID    = "user_id"
	ContextUserRole  = "user_role"
	ContextPrincipal = "principal"
	ContextRequestID = "request_id"
)

// PrincipalFrom returns the user resolved by AuthMiddleware for this request.
func PrincipalFrom(c *gin.Context) (*access.Principal, bool) {
	value, exists := c.Get(ContextPrincipal)
	if !exists {
		return nil, false
	}
	principal, ok := value.(*access.Principal)
	return principal, ok && principal != nil
}

func setPrincipal(c *gin.Context, principal *access.Principal) {
	c.Set(ContextPrincipal, principal)
	c.Set(ContextUserID, principal.ID)
	c.Set(ContextUserRole, principal.Role)
}
