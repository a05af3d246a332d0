package http

import (
	"net/http"

	"sakura-community/pkg/logger"
	"sakura-community/services/community/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postUseCase usecase.PostUseCase
	log         *logger.Logger
}

func NewPostHandler(postUseCase usecase.PostUseCase, log *logger.Logger) *PostHandler {
	return &PostHandler{
		postUseCase: postUseCase,
		log:         log,
	}
}

type CreatePostResponse struct {
	Message string `json:"message"`
	PostID  uint64 `json:"postId"`
}

type LikeResponse struct {
	Message string `json:"message"`
	Liked   bool   `json:"liked"`
}

// ListPosts godoc
// @Summary      List posts
// @Description  Newest first, optionally filtered by a title substring
// @Tags         posts
// @Produce      json
// @Param        search query string false "Title filter"
// @Success      200  {array}   entity.Post
// @Failure      500  {object}  MessageResponse
// @Router       /posts [get]
func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.postUseCase.ListPosts(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// GetPost godoc
// @Summary      Get a post
// @Description  Post with its comments, oldest first, and likes
// @Tags         posts
// @Produce      json
// @Param        id path int true "Post ID"
// @Success      200  {object}  entity.PostDetail
// @Failure      404  {object}  MessageResponse
// @Failure      500  {object}  MessageResponse
// @Router       /posts/{id} [get]
func (h *PostHandler) GetPost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, h.log, usecase.ErrPostNotFound)
		return
	}

	post, err := h.postUseCase.GetPost(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// CreatePost godoc
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body usecase.PostInput true "Post"
// @Success      201  {object}  CreatePostResponse
// @Failure      400  {object}  MessageResponse
// @Failure      401  {object}  MessageResponse
// @Failure      500  {object}  MessageResponse
// @Router       /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req usecase.PostInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, usecase.ErrPostFieldsRequired)
		return
	}

	post, err := h.postUseCase.CreatePost(c.Request.Context(), principal(c), req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, CreatePostResponse{
		Message: "Post created successfully",
		PostID:  post.ID,
	})
}

// DeletePost godoc
// @Summary      Delete a post
// @Description  Allowed to the author and to admins
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Post ID"
// @Success      200  {object}  MessageResponse
// @Failure      403  {object}  MessageResponse
// @Failure      404  {object}  MessageResponse
// @Router       /posts/{id} [delete]
func (h *PostHandler) DeletePost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, h.log, usecase.ErrPostNotFound)
		return
	}

	if err := h.postUseCase.DeletePost(c.Request.Context(), principal(c), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Post deleted successfully"})
}

// ToggleLike godoc
// @Summary      Like or unlike a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Post ID"
// @Success      200  {object}  LikeResponse
// @Failure      404  {object}  MessageResponse
// @Router       /posts/{id}/like [post]
func (h *PostHandler) ToggleLike(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		respondError(c, h.log, usecase.ErrPostNotFound)
		return
	}

	liked, err := h.postUseCase.ToggleLike(c.Request.Context(), principal(c), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	message := "Like removed successfully"
	if liked {
		message = "Like added successfully"
	}
	c.JSON(http.StatusOK, LikeResponse{Message: message, Liked: liked})
}
