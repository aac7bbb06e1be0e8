package service

import (
	"context"
	"errors"

	"github.com/dogwalk/dogwalk-go/internal/crypto"
	"github.com/dogwalk/dogwalk-go/internal/model"
	"github.com/dogwalk/dogwalk-go/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordRequired   = errors.New("password is required")
	ErrNameRequired       = errors.New("name is required")
	ErrEmailTaken         = errors.New("email already taken")
	ErrPasswordTooLong    = errors.New("password is too long")
	ErrUserNotFound       = errors.New("user not found")
)

// UserRepository is the persistence surface the auth service needs.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

// AuthService handles authentication business logic.
type AuthService struct {
	repo   UserRepository
	tokens *crypto.TokenIssuer
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo UserRepository, tokens *crypto.TokenIssuer) *AuthService {
	return &AuthService{
		repo:   repo,
		tokens: tokens,
	}
}

// Register creates a new user account and returns an auth token. The role
// defaults to Owner unless the request names a recognized role.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.AuthResponse, error) {
	if req.Email == "" {
		return model.AuthResponse{}, ErrEmailRequired
	}
	if req.Password == "" {
		return model.AuthResponse{}, ErrPasswordRequired
	}
	if req.Name == "" {
		return model.AuthResponse{}, ErrNameRequired
	}

	if _, err := s.repo.GetByEmail(ctx, req.Email); err == nil {
		return model.AuthResponse{}, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return model.AuthResponse{}, err
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		if errors.Is(err, crypto.ErrPasswordTooLong) {
			return model.AuthResponse{}, ErrPasswordTooLong
		}
		return model.AuthResponse{}, err
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         model.ParseRole(req.Role),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.AuthResponse{}, ErrEmailTaken
		}
		return model.AuthResponse{}, err
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{
		Token: token,
		User:  userResponse(user),
	}, nil
}

// Login authenticates a user and returns an auth token.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.AuthResponse{}, ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}

	if !crypto.VerifyPassword(req.Password, user.PasswordHash) {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{
		Token: token,
		User:  userResponse(user),
	}, nil
}

// GetUser retrieves a user by ID and returns safe user data.
func (s *AuthService) GetUser(ctx context.Context, userID int64) (model.UserResponse, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserResponse{}, ErrUserNotFound
		}
		return model.UserResponse{}, err
	}

	return userResponse(user), nil
}

func userResponse(user *model.User) model.UserResponse {
	return model.UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
	}
}
