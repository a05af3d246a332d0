package http

import (
	"net/http"

	"sakura-community/pkg/logger"
	"sakura-community/pkg/middleware"
	"sakura-community/services/community/internal/entity"
	"sakura-community/services/community/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	log         *logger.Logger
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		log:         log,
	}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    *entity.User `json:"user"`
}

// Register godoc
// @Summary      Register a new user
// @Description  Creates a regular user account. No token is issued.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body usecase.RegisterInput true "Registration data"
// @Success      201  {object}  MessageResponse
// @Failure      400  {object}  MessageResponse
// @Failure      409  {object}  MessageResponse
// @Failure      500  {object}  MessageResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req usecase.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, usecase.ErrRegisterFieldsRequired)
		return
	}

	if _, err := h.authUseCase.Register(c.Request.Context(), req); err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, MessageResponse{Message: "User registered successfully"})
}

// Login godoc
// @Summary      Login user
// @Description  Verifies credentials and returns a signed bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login credentials"
// @Success      200  {object}  LoginResponse
// @Failure      400  {object}  MessageResponse
// @Failure      401  {object}  MessageResponse
// @Failure      500  {object}  MessageResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, usecase.ErrLoginFieldsRequired)
		return
	}

	token, user, err := h.authUseCase.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Message: "Login successful",
		Token:   token,
		User:    user,
	})
}

// Me godoc
// @Summary      Get current user info
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  access.Principal
// @Failure      401  {object}  MessageResponse
// @Failure      403  {object}  MessageResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		respondError(c, h.log, usecase.ErrMissingToken)
		return
	}
	c.JSON(http.StatusOK, p)
}
