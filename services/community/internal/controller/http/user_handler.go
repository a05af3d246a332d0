package http

import (
	"net/http"

	"sakura-community/pkg/logger"
	"sakura-community/services/community/internal/usecase"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userUseCase usecase.UserUseCase
	log         *logger.Logger
}

func NewUserHandler(userUseCase usecase.UserUseCase, log *logger.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		log:         log,
	}
}

// ListUsers godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   entity.User
// @Failure      403  {object}  MessageResponse
// @Router       /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userUseCase.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// DeleteUser godoc
// @Summary      Delete a user
// @Description  Users may delete themselves, admins anyone
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "User ID"
// @Success      200  {object}  MessageResponse
// @Failure      403  {object}  MessageResponse
// @Failure      404  {object}  MessageResponse
// @Router       /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, h.log, usecase.ErrAccountNotFound)
		return
	}

	if err := h.userUseCase.DeleteUser(c.Request.Context(), principal(c), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "User deleted successfully"})
}
