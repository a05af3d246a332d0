package http

import (
	"strconv"

	"sakura-community/pkg/access"
	"sakura-community/pkg/apperr"
	"sakura-community/pkg/logger"
	"sakura-community/pkg/middleware"

	"github.com/gin-gonic/gin"
)

type MessageResponse struct {
	Message string `json:"message"`
}

// respondError writes {"message": ...} with the status of err's kind.
// Unclassified failures are logged and hidden from the client.
func respondError(c *gin.Context, log *logger.Logger, err error) {
	status := apperr.HTTPStatus(err)
	if apperr.KindOf(err) == apperr.KindInternal {
		log.Error("%s %s failed: %v", c.Request.Method, c.FullPath(), err)
		_ = c.Error(err)
	}
	c.JSON(status, MessageResponse{Message: apperr.Message(err)})
}

// pathID parses a positive numeric path parameter. A malformed id cannot name
// an existing row, so callers answer it with their not-found error.
func pathID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

func principal(c *gin.Context) *access.Principal {
	p, _ := middleware.PrincipalFrom(c)
	return p
}
