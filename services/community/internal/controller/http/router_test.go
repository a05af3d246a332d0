package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sakura-community/pkg/access"
	"sakura-community/pkg/database/dbtest"
	"sakura-community/pkg/jwt"
	"sakura-community/pkg/logger"
	"sakura-community/pkg/middleware"
	"sakura-community/pkg/password"
	"sakura-community/services/community/internal/entity"
	"sakura-community/services/community/internal/repo/persistent"
	"sakura-community/services/community/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const routerTestSecret = "router-test-secret"

type testServer struct {
	router *gin.Engine
	users  persistent.UserRepository
	hasher *password.Hasher
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerWith(t, nil)
}

// newTestServerWith lets a test adjust the router config before the engine is built.
func newTestServerWith(t *testing.T, configure func(*RouterConfig)) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := dbtest.New(t)
	log := logger.NewNop()
	hasher := password.NewHasher(bcrypt.MinCost)

	userRepo := persistent.NewUserRepository(db)
	postRepo := persistent.NewPostRepository(db)
	commentRepo := persistent.NewCommentRepository(db)
	likeRepo := persistent.NewLikeRepository(db)

	authUseCase := usecase.NewAuthUseCase(userRepo, jwt.NewService(routerTestSecret), hasher, log)

	routerConfig := RouterConfig{
		Handlers: Handlers{
			Auth:    NewAuthHandler(authUseCase, log),
			Post:    NewPostHandler(usecase.NewPostUseCase(postRepo, commentRepo, likeRepo, log), log),
			Comment: NewCommentHandler(usecase.NewCommentUseCase(commentRepo, postRepo, log), log),
			User:    NewUserHandler(usecase.NewUserUseCase(userRepo, log), log),
			Admin:   NewAdminHandler(usecase.NewAdminUseCase(userRepo, postRepo, commentRepo, log), log),
			Health:  NewHealthHandler(usecase.NewHealthUseCase(persistent.NewHealthRepository(db), log)),
		},
		Resolver:    authUseCase,
		Logger:      log,
		CORSOrigins: []string{"http://localhost:3000"},
	}
	if configure != nil {
		configure(&routerConfig)
	}
	router, err := NewRouter(routerConfig)
	require.NoError(t, err)

	return &testServer{router: router, users: userRepo, hasher: hasher}
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	var payload bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&payload).Encode(body))
	}
	req := httptest.NewRequest(method, path, &payload)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var response map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &response)
	return w.Code, response
}

func (s *testServer) register(t *testing.T, username string) {
	t.Helper()
	status, _ := s.do(t, "POST", "/api/auth/register", "", usecase.RegisterInput{
		Username: username, DisplayName: username, Password: "pw-" + username, Email: username + "@x.io",
	})
	require.Equal(t, http.StatusCreated, status)
}

func (s *testServer) login(t *testing.T, username string) string {
	t.Helper()
	status, response := s.do(t, "POST", "/api/auth/login", "", LoginRequest{Username: username, Password: "pw-" + username})
	require.Equal(t, http.StatusOK, status)
	return response["token"].(string)
}

// seedAdmin stores an admin directly; the API never grants the role.
func (s *testServer) seedAdmin(t *testing.T, username string) {
	t.Helper()
	hash, err := s.hasher.Hash("pw-" + username)
	require.NoError(t, err)
	require.NoError(t, s.users.Create(context.Background(), &entity.User{
		Username: username, DisplayName: username, Email: username + "@x.io", PasswordHash: hash, Role: access.RoleAdmin,
	}))
}

func TestScenario_RegisterAndLogin(t *testing.T) {
	s := newTestServer(t)

	status, response := s.do(t, "POST", "/api/auth/register", "", usecase.RegisterInput{
		Username: "alice", DisplayName: "Alice", Password: "pw1", Email: "a@x.io",
	})
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "User registered successfully", response["message"])

	status, _ = s.do(t, "POST", "/api/auth/register", "", usecase.RegisterInput{
		Username: "alice", DisplayName: "Alice2", Password: "pw2", Email: "b@x.io",
	})
	assert.Equal(t, http.StatusConflict, status)

	status, response = s.do(t, "POST", "/api/auth/login", "", LoginRequest{Username: "alice", Password: "bad"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Incorrect password", response["message"])

	status, response = s.do(t, "POST", "/api/auth/login", "", LoginRequest{Username: "alice", Password: "pw1"})
	require.Equal(t, http.StatusOK, status)
	token, _ := response["token"].(string)
	require.NotEmpty(t, token)
	user := response["user"].(map[string]interface{})
	assert.NotContains(t, user, "password_hash")

	status, response = s.do(t, "GET", "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "alice", response["username"])
	assert.Equal(t, "user", response["role"])
}

func TestScenario_Ownership(t *testing.T) {
	s := newTestServer(t)
	s.register(t, "writer")
	s.register(t, "reader")
	s.seedAdmin(t, "root")

	writer := s.login(t, "writer")
	reader := s.login(t, "reader")
	root := s.login(t, "root")

	status, response := s.do(t, "POST", "/api/posts", writer, usecase.PostInput{Title: "Hello", Content: "World"})
	require.Equal(t, http.StatusCreated, status)
	postPath := fmt.Sprintf("/api/posts/%d", uint64(response["postId"].(float64)))

	status, response = s.do(t, "DELETE", postPath, reader, nil)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "Permission denied", response["message"])

	status, _ = s.do(t, "DELETE", postPath, root, nil)
	assert.Equal(t, http.StatusOK, status)

	status, _ = s.do(t, "GET", postPath, "", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestScenario_PostLifecycle(t *testing.T) {
	s := newTestServer(t)
	s.register(t, "writer")
	s.register(t, "reader")
	writer := s.login(t, "writer")
	reader := s.login(t, "reader")

	status, response := s.do(t, "POST", "/api/posts", writer, usecase.PostInput{Title: "Spring", Content: "Blossoms"})
	require.Equal(t, http.StatusCreated, status)
	postID := uint64(response["postId"].(float64))
	postPath := fmt.Sprintf("/api/posts/%d", postID)

	status, response = s.do(t, "POST", "/api/posts", writer, usecase.PostInput{Title: "Spring"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Title and content are required", response["message"])

	status, response = s.do(t, "POST", postPath+"/like", reader, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, response["liked"])

	status, response = s.do(t, "POST", "/api/comments", reader, CreateCommentRequest{Content: "Lovely", PostID: postID})
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "reader", response["author"])
	commentPath := fmt.Sprintf("/api/comments/%d", uint64(response["id"].(float64)))

	status, response = s.do(t, "GET", postPath, "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), response["like_count"])
	assert.Equal(t, float64(1), response["comment_count"])
	assert.Len(t, response["comments"], 1)

	status, _ = s.do(t, "DELETE", commentPath, writer, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = s.do(t, "DELETE", commentPath, reader, nil)
	assert.Equal(t, http.StatusOK, status)

	status, response = s.do(t, "POST", postPath+"/like", reader, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, response["liked"])

	status, _ = s.do(t, "POST", "/api/posts/999/like", reader, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestScenario_Sessions(t *testing.T) {
	s := newTestServer(t)
	s.register(t, "alice")
	token := s.login(t, "alice")

	status, response := s.do(t, "GET", "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Access token required", response["message"])

	status, response = s.do(t, "GET", "/api/auth/me", "not-a-token", nil)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "Invalid token", response["message"])

	past := time.Now().Add(-48 * time.Hour)
	expired, err := jwt.NewService(routerTestSecret, jwt.WithClock(func() time.Time { return past })).
		GenerateToken(jwt.Identity{UserID: 1, Username: "alice", Role: "user"})
	require.NoError(t, err)
	status, response = s.do(t, "GET", "/api/auth/me", expired, nil)
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "Token expired", response["message"])

	// Self deletion invalidates the still unexpired token.
	status, _ = s.do(t, "DELETE", "/api/users/1", token, nil)
	require.Equal(t, http.StatusOK, status)
	status, _ = s.do(t, "GET", "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestScenario_AdminRoutes(t *testing.T) {
	s := newTestServer(t)
	s.register(t, "alice")
	s.seedAdmin(t, "root")
	user := s.login(t, "alice")
	admin := s.login(t, "root")

	for _, path := range []string{"/api/admin/dashboard", "/api/admin/posts", "/api/users"} {
		status, response := s.do(t, "GET", path, user, nil)
		assert.Equal(t, http.StatusForbidden, status, path)
		assert.Equal(t, "Admin access required", response["message"], path)
	}

	status, response := s.do(t, "GET", "/api/admin/dashboard", admin, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(2), response["totalUsers"])
	assert.Equal(t, float64(0), response["totalPosts"])

	status, _ = s.do(t, "DELETE", "/api/users/2", user, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = s.do(t, "DELETE", "/api/admin/posts/42", admin, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestRouter_PublicEndpoints(t *testing.T) {
	s := newTestServer(t)

	status, response := s.do(t, "GET", "/", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Welcome to Sakura Community API", response["message"])

	status, response = s.do(t, "GET", "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "OK", response["status"])
	assert.Equal(t, "Connected", response["database"])

	status, response = s.do(t, "GET", "/api/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Route not found", response["message"])
}

// loginCounter backs the auth rate limiter with an in-memory INCR.
type loginCounter struct {
	redis.Cmdable
	counts map[string]int64
}

func (c *loginCounter) Incr(ctx context.Context, key string) *redis.IntCmd {
	cmd := redis.NewIntCmd(ctx, "incr", key)
	c.counts[key]++
	cmd.SetVal(c.counts[key])
	return cmd
}

func (c *loginCounter) Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd {
	cmd := redis.NewBoolCmd(ctx, "expire", key, expiration)
	cmd.SetVal(true)
	return cmd
}

func loginFrom(router http.Handler, remoteAddr, forwardedFor string) int {
	req := httptest.NewRequest("POST", "/api/auth/login", bytes.NewBufferString(`{"username":"ghost","password":"nope"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Forwarded-For", forwardedFor)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w.Code
}

func TestRouter_RateLimitIgnoresForwardedForByDefault(t *testing.T) {
	counter := &loginCounter{counts: map[string]int64{}}
	s := newTestServerWith(t, func(cfg *RouterConfig) {
		cfg.AuthLimiter = middleware.RateLimitMiddleware(counter, 2, time.Minute)
	})

	codes := make([]int, 0, 5)
	for i := 1; i <= 5; i++ {
		codes = append(codes, loginFrom(s.router, "203.0.113.9:5000", fmt.Sprintf("10.0.0.%d", i)))
	}

	assert.NotEqual(t, http.StatusTooManyRequests, codes[0])
	assert.NotEqual(t, http.StatusTooManyRequests, codes[1])
	for _, code := range codes[2:] {
		assert.Equal(t, http.StatusTooManyRequests, code)
	}
	assert.Equal(t, int64(5), counter.counts["rate_limit:/api/auth/login:203.0.113.9"])
}

func TestRouter_RateLimitHonoursTrustedProxy(t *testing.T) {
	counter := &loginCounter{counts: map[string]int64{}}
	s := newTestServerWith(t, func(cfg *RouterConfig) {
		cfg.TrustedProxies = []string{"203.0.113.9"}
		cfg.AuthLimiter = middleware.RateLimitMiddleware(counter, 2, time.Minute)
	})

	for i := 1; i <= 5; i++ {
		code := loginFrom(s.router, "203.0.113.9:5000", fmt.Sprintf("10.0.0.%d", i))
		assert.NotEqual(t, http.StatusTooManyRequests, code)
	}
	assert.Equal(t, int64(1), counter.counts["rate_limit:/api/auth/login:10.0.0.3"])
}

func TestNewRouter_InvalidTrustedProxy(t *testing.T) {
	_, err := NewRouter(RouterConfig{TrustedProxies: []string{"not-an-address"}})
	assert.Error(t, err)
}
