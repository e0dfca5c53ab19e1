package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/quizly-app/quizly-api/internal/auth"
	"github.com/quizly-app/quizly-api/internal/config"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameTaken       = errors.New("username already taken")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	ErrUserNotFound        = errors.New("user not found")
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type UserService interface {
	Register(ctx context.Context, req RegisterRequest) (*User, error)
	Login(ctx context.Context, req LoginRequest) (*User, *TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	GetByID(ctx context.Context, id string) (*User, error)
}

type userService struct {
	repo UserRepository
}

func NewService(repo UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	log := config.WithContext(ctx)

	existing, err := s.repo.GetByUsername(req.Username)
	if err != nil {
		log.WithError(err).Error("Failed to check username availability")
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Error("Failed to hash password")
		return nil, err
	}

	u := &User{
		ID:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	}

	if err := s.repo.Create(u); err != nil {
		log.WithError(err).Error("Failed to create user")
		return nil, err
	}

	log.WithField("user_id", u.ID).Info("User registered successfully")
	return u, nil
}

func (s *userService) Login(ctx context.Context, req LoginRequest) (*User, *TokenPair, error) {
	log := config.WithContext(ctx)

	u, err := s.repo.GetByUsername(req.Username)
	if err != nil {
		log.WithError(err).Error("Failed to look up user for login")
		return nil, nil, err
	}
	if u == nil {
		return nil, nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	access, err := auth.GenerateJWT(u.ID.String(), "user", auth.AccessTokenDuration)
	if err != nil {
		log.WithError(err).Error("Failed to generate access token")
		return nil, nil, err
	}
	refresh, err := auth.GenerateJWT(u.ID.String(), "user", auth.RefreshTokenDuration)
	if err != nil {
		log.WithError(err).Error("Failed to generate refresh token")
		return nil, nil, err
	}

	log.WithField("user_id", u.ID).Info("User logged in successfully")
	return u, &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *userService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := auth.ValidateJWT(refreshToken)
	if err != nil {
		return "", ErrInvalidRefreshToken
	}

	return auth.GenerateJWT(claims.UserID, claims.Role, auth.AccessTokenDuration)
}

func (s *userService) GetByID(ctx context.Context, id string) (*User, error) {
	log := config.WithContext(ctx)

	u, err := s.repo.GetByID(id)
	if err != nil {
		log.WithError(err).Error("Failed to find user by ID")
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}
