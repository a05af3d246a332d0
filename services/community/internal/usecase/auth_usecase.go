package usecase

import (
	"context"
	"errors"
	"fmt"

	"sakura-community/pkg/access"
	"sakura-community/pkg/jwt"
	"sakura-community/pkg/logger"
	"sakura-community/services/community/internal/entity"
	"sakura-community/services/community/internal/repo/persistent"
)

type TokenCodec interface {
	GenerateToken(identity jwt.Identity) (string, error)
	ValidateToken(token string) (*jwt.Claims, error)
}

type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) (bool, error)
}

type AuthUseCase interface {
	Register(ctx context.Context, input RegisterInput) (*entity.User, error)
	Login(ctx context.Context, username, password string) (string, *entity.User, error)
	ResolveSession(ctx context.Context, token string) (*access.Principal, error)
}

type authUseCase struct {
	userRepo persistent.UserRepository
	tokens   TokenCodec
	hasher   PasswordHasher
	logger   *logger.Logger
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	tokens TokenCodec,
	hasher PasswordHasher,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo: userRepo,
		tokens:   tokens,
		hasher:   hasher,
		logger:   logger,
	}
}

// Register creates a regular user. It never issues a token.
func (uc *authUseCase) Register(ctx context.Context, input RegisterInput) (*entity.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	exists, err := uc.userRepo.ExistsByUsernameOrEmail(ctx, input.Username, input.Email)
	if err != nil {
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if exists {
		return nil, ErrDuplicateUser
	}

	hashedPassword, err := uc.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		Username:     input.Username,
		DisplayName:  input.DisplayName,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Role:         access.RoleUser,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		// Lost a race against a concurrent registration.
		if errors.Is(err, persistent.ErrDuplicate) {
			return nil, ErrDuplicateUser
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	uc.logger.Info("Registered user %s (id=%d)", user.Username, user.ID)
	user.PasswordHash = ""
	return user, nil
}

func (uc *authUseCase) Login(ctx context.Context, username, password string) (string, *entity.User, error) {
	if username == "" || password == "" {
		return "", nil, ErrLoginFieldsRequired
	}

	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return "", nil, ErrUserNotFound
		}
		return "", nil, fmt.Errorf("load user: %w", err)
	}

	ok, err := uc.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		return "", nil, fmt.Errorf("verify password for user %d: %w", user.ID, err)
	}
	if !ok {
		return "", nil, ErrWrongPassword
	}

	token, err := uc.tokens.GenerateToken(jwt.Identity{
		UserID:      user.ID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
		Email:       user.Email,
		Role:        string(user.Role),
	})
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	user.PasswordHash = ""
	return token, user, nil
}

// ResolveSession verifies the token and re-reads the user it names, so role
// changes and deletions apply to tokens that are already issued.
func (uc *authUseCase) ResolveSession(ctx context.Context, token string) (*access.Principal, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	claims, err := uc.tokens.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	user, err := uc.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, persistent.ErrNotFound) {
			return nil, ErrSessionUserNotFound
		}
		return nil, fmt.Errorf("load session user %d: %w", claims.UserID, err)
	}

	return user.Principal(), nil
}
