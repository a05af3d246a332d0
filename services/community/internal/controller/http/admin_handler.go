package http

import (
	"net/http"

	"sakura-community/pkg/logger"
	"sakura-community/services/community/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUseCase usecase.AdminUseCase
	log          *logger.Logger
}

func NewAdminHandler(adminUseCase usecase.AdminUseCase, log *logger.Logger) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
		log:          log,
	}
}

// Dashboard godoc
// @Summary      Admin dashboard
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.Dashboard
// @Failure      403  {object}  MessageResponse
// @Router       /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	dashboard, err := h.adminUseCase.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// ListPosts godoc
// @Summary      All posts
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   entity.Post
// @Failure      403  {object}  MessageResponse
// @Router       /admin/posts [get]
func (h *AdminHandler) ListPosts(c *gin.Context) {
	posts, err := h.adminUseCase.ListPosts(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// DeletePost godoc
// @Summary      Delete any post
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Post ID"
// @Success      200  {object}  MessageResponse
// @Failure      403  {object}  MessageResponse
// @Failure      404  {object}  MessageResponse
// @Router       /admin/posts/{id} [delete]
func (h *AdminHandler) DeletePost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, h.log, usecase.ErrPostNotFound)
		return
	}

	if err := h.adminUseCase.DeletePost(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Post deleted successfully"})
}
