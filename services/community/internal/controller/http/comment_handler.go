package http

import (
	"net/http"

	"sakura-community/pkg/logger"
	"sakura-community/services/community/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentUseCase usecase.CommentUseCase
	log            *logger.Logger
}

func NewCommentHandler(commentUseCase usecase.CommentUseCase, log *logger.Logger) *CommentHandler {
	return &CommentHandler{
		commentUseCase: commentUseCase,
		log:            log,
	}
}

type CreateCommentRequest struct {
	Content string `json:"content"`
	PostID  uint64 `json:"postId"`
}

// CreateComment godoc
// @Summary      Comment on a post
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateCommentRequest true "Comment"
// @Success      201  {object}  entity.Comment
// @Failure      400  {object}  MessageResponse
// @Failure      404  {object}  MessageResponse
// @Router       /comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, usecase.ErrCommentFieldsRequired)
		return
	}

	comment, err := h.commentUseCase.CreateComment(c.Request.Context(), principal(c), req.PostID, req.Content)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Description  Allowed to the comment's author and to admins
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Comment ID"
// @Success      200  {object}  MessageResponse
// @Failure      403  {object}  MessageResponse
// @Failure      404  {object}  MessageResponse
// @Router       /comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, h.log, usecase.ErrCommentNotFound)
		return
	}

	if err := h.commentUseCase.DeleteComment(c.Request.Context(), principal(c), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Comment deleted successfully"})
}
