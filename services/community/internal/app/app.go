package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sakura-community/pkg/cache"
	"sakura-community/pkg/config"
	"sakura-community/pkg/database"
	"sakura-community/pkg/jwt"
	"sakura-community/pkg/logger"
	"sakura-community/pkg/middleware"
	"sakura-community/pkg/password"
	communityHTTP "sakura-community/services/community/internal/controller/http"
	"sakura-community/services/community/internal/repo/persistent"
	"sakura-community/services/community/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	_ "sakura-community/services/community/docs" // Swagger docs
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	jwtService  *jwt.Service
	hasher      *password.Hasher
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.NewWithLevel(cfg.LogLevel)

	db, err := database.New(cfg, log)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		// Redis only backs the login rate limiter
		log.Warn("Redis unavailable, rate limiting disabled: %v", err)
		redisClient = nil
	}

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		jwtService:  jwt.NewService(cfg.JWTSecret, jwt.WithTTL(cfg.JWTTTL)),
		hasher:      password.NewHasher(cfg.BcryptCost),
	}, nil
}

// Handler wires repositories, use cases and handlers into the HTTP router.
func (a *App) Handler() (http.Handler, error) {
	// Initialize repositories
	userRepo := persistent.NewUserRepository(a.db)
	postRepo := persistent.NewPostRepository(a.db)
	commentRepo := persistent.NewCommentRepository(a.db)
	likeRepo := persistent.NewLikeRepository(a.db)
	healthRepo := persistent.NewHealthRepository(a.db)

	// Initialize use cases
	authUseCase := usecase.NewAuthUseCase(userRepo, a.jwtService, a.hasher, a.log)
	postUseCase := usecase.NewPostUseCase(postRepo, commentRepo, likeRepo, a.log)
	commentUseCase := usecase.NewCommentUseCase(commentRepo, postRepo, a.log)
	userUseCase := usecase.NewUserUseCase(userRepo, a.log)
	adminUseCase := usecase.NewAdminUseCase(userRepo, postRepo, commentRepo, a.log)
	healthUseCase := usecase.NewHealthUseCase(healthRepo, a.log)

	var authLimiter gin.HandlerFunc
	if a.redisClient != nil {
		authLimiter = middleware.RateLimitMiddleware(a.redisClient, a.cfg.RateLimit, a.cfg.RateLimitWindow)
	}

	return communityHTTP.NewRouter(communityHTTP.RouterConfig{
		Handlers: communityHTTP.Handlers{
			Auth:    communityHTTP.NewAuthHandler(authUseCase, a.log),
			Post:    communityHTTP.NewPostHandler(postUseCase, a.log),
			Comment: communityHTTP.NewCommentHandler(commentUseCase, a.log),
			User:    communityHTTP.NewUserHandler(userUseCase, a.log),
			Admin:   communityHTTP.NewAdminHandler(adminUseCase, a.log),
			Health:  communityHTTP.NewHealthHandler(healthUseCase),
		},
		Resolver:       authUseCase,
		Logger:         a.log,
		CORSOrigins:    a.cfg.CORSOrigins,
		TrustedProxies: a.cfg.TrustedProxies,
		AuthLimiter:    authLimiter,
	})
}

func (a *App) Run() error {
	gin.SetMode(a.cfg.GinMode)

	handler, err := a.Handler()
	if err != nil {
		a.log.Error("Failed to build router: %v", err)
		return err
	}

	a.httpServer = &http.Server{
		Addr:              ":" + a.cfg.ServerPort,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		a.log.Info("Sakura Community API starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down Sakura Community API...")
}

func (a *App) Shutdown() error {
	// The server has 5 seconds to finish in-flight requests
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var shutdownErr error
	if a.httpServer != nil {
		if err := a.httpServer.Shutdown(ctx); err != nil {
			a.log.Error("Server forced to shutdown: %v", err)
			shutdownErr = err
		}
	}

	if err := database.Close(a.db); err != nil {
		a.log.Error("Error closing database: %v", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	a.log.Info("Sakura Community API exited")
	_ = a.log.Sync()
	return shutdownErr
}
