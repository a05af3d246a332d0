package http

import (
	"fmt"
	"net/http"
	"time"

	"sakura-community/pkg/logger"
	"sakura-community/pkg/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handlers struct {
	Auth    *AuthHandler
	Post    *PostHandler
	Comment *CommentHandler
	User    *UserHandler
	Admin   *AdminHandler
	Health  *HealthHandler
}

type RouterConfig struct {
	Handlers    Handlers
	Resolver    middleware.SessionResolver
	Logger      *logger.Logger
	CORSOrigins []string
	// TrustedProxies lists the peers whose X-Forwarded-For is honoured.
	// Empty means the client IP is always the socket peer.
	TrustedProxies []string
	// AuthLimiter guards the credential endpoints. Nil disables it.
	AuthLimiter gin.HandlerFunc
}

func NewRouter(cfg RouterConfig) (*gin.Engine, error) {
	r := gin.New()

	var trusted []string
	if len(cfg.TrustedProxies) > 0 {
		trusted = cfg.TrustedProxies
	}
	if err := r.SetTrustedProxies(trusted); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(cfg.Logger))
	r.Use(gin.Recovery())

	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.HeaderRequestID},
		ExposeHeaders:    []string{"Content-Length", middleware.HeaderRequestID},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(corsConfig.AllowOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	}
	r.Use(cors.New(corsConfig))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, MessageResponse{Message: "Welcome to Sakura Community API"})
	})

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	h := cfg.Handlers
	authRequired := middleware.AuthMiddleware(cfg.Resolver)
	adminOnly := middleware.RequireAdmin()

	api := r.Group("/api")
	{
		api.GET("/health", h.Health.Health)

		auth := api.Group("/auth")
		if cfg.AuthLimiter != nil {
			auth.Use(cfg.AuthLimiter)
		}
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
		}
		api.GET("/auth/me", authRequired, h.Auth.Me)

		posts := api.Group("/posts")
		{
			posts.GET("", h.Post.ListPosts)
			posts.GET("/:id", h.Post.GetPost)
			posts.POST("", authRequired, h.Post.CreatePost)
			posts.DELETE("/:id", authRequired, h.Post.DeletePost)
			posts.POST("/:id/like", authRequired, h.Post.ToggleLike)
		}

		comments := api.Group("/comments", authRequired)
		{
			comments.POST("", h.Comment.CreateComment)
			comments.DELETE("/:id", h.Comment.DeleteComment)
		}

		users := api.Group("/users", authRequired)
		{
			users.GET("", adminOnly, h.User.ListUsers)
			users.DELETE("/:id", h.User.DeleteUser)
		}

		admin := api.Group("/admin", authRequired, adminOnly)
		{
			admin.GET("/dashboard", h.Admin.Dashboard)
			admin.GET("/posts", h.Admin.ListPosts)
			admin.DELETE("/posts/:id", h.Admin.DeletePost)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, MessageResponse{Message: "Route not found"})
	})

	return r, nil
}
