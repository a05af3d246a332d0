package http

import (
	"context"

	"sakura-community/pkg/access"
	"sakura-community/services/community/internal/entity"
	"sakura-community/services/community/internal/usecase"

	"github.com/stretchr/testify/mock"
)

type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuthUseCase) Login(ctx context.Context, username, password string) (string, *entity.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*entity.User), args.Error(2)
}

func (m *MockAuthUseCase) ResolveSession(ctx context.Context, token string) (*access.Principal, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*access.Principal), args.Error(1)
}

type MockPostUseCase struct {
	mock.Mock
}

func (m *MockPostUseCase) ListPosts(ctx context.Context, search string) ([]*entity.Post, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) GetPost(ctx context.Context, postID uint64) (*entity.PostDetail, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PostDetail), args.Error(1)
}

func (m *MockPostUseCase) CreatePost(ctx context.Context, actor *access.Principal, input usecase.PostInput) (*entity.Post, error) {
	args := m.Called(ctx, actor, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) DeletePost(ctx context.Context, actor *access.Principal, postID uint64) error {
	args := m.Called(ctx, actor, postID)
	return args.Error(0)
}

func (m *MockPostUseCase) ToggleLike(ctx context.Context, actor *access.Principal, postID uint64) (bool, error) {
	args := m.Called(ctx, actor, postID)
	return args.Bool(0), args.Error(1)
}

type MockCommentUseCase struct {
	mock.Mock
}

func (m *MockCommentUseCase) CreateComment(ctx context.Context, actor *access.Principal, postID uint64, content string) (*entity.Comment, error) {
	args := m.Called(ctx, actor, postID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) DeleteComment(ctx context.Context, actor *access.Principal, commentID uint64) error {
	args := m.Called(ctx, actor, commentID)
	return args.Error(0)
}

type MockUserUseCase struct {
	mock.Mock
}

func (m *MockUserUseCase) ListUsers(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockUserUseCase) DeleteUser(ctx context.Context, actor *access.Principal, userID uint64) error {
	args := m.Called(ctx, actor, userID)
	return args.Error(0)
}

type MockAdminUseCase struct {
	mock.Mock
}

func (m *MockAdminUseCase) Dashboard(ctx context.Context) (*entity.Dashboard, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Dashboard), args.Error(1)
}

func (m *MockAdminUseCase) ListPosts(ctx context.Context) ([]*entity.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockAdminUseCase) DeletePost(ctx context.Context, postID uint64) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

type MockHealthUseCase struct {
	mock.Mock
}

func (m *MockHealthUseCase) Check(ctx context.Context) *entity.HealthReport {
	args := m.Called(ctx)
	return args.Get(0).(*entity.HealthReport)
}

var (
	_ usecase.AuthUseCase    = (*MockAuthUseCase)(nil)
	_ usecase.PostUseCase    = (*MockPostUseCase)(nil)
	_ usecase.CommentUseCase = (*MockCommentUseCase)(nil)
	_ usecase.UserUseCase    = (*MockUserUseCase)(nil)
	_ usecase.AdminUseCase   = (*MockAdminUseCase)(nil)
	_ usecase.HealthUseCase  = (*MockHealthUseCase)(nil)
)
