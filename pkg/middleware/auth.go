package middleware

import (
	"context"
	"net/http"
	"strings"

	"sakura-community/pkg/access"
	"sakura-community/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// SessionResolver turns a bearer token into the live user it belongs to.
// An empty token must be reported as a missing-token failure.
type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (*access.Principal, error)
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(header string) string {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}

func AuthMiddleware(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c.GetHeader("Authorization"))

		principal, err := resolver.ResolveSession(c.Request.Context(), token)
		if err != nil {
			if apperr.KindOf(err) == apperr.KindInternal {
				_ = c.Error(err)
			}
			c.AbortWithStatusJSON(apperr.HTTPStatus(err), gin.H{"message": apperr.Message(err)})
			return
		}

		setPrincipal(c, principal)
		c.Next()
	}
}

// RequireAdmin must run after AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := PrincipalFrom(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Access token required"})
			return
		}

		if err := access.RequireAdmin(principal.Role); err != nil {
			c.AbortWithStatusJSON(apperr.HTTPStatus(err), gin.H{"message": apperr.Message(err)})
			return
		}

		c.Next()
	}
}
