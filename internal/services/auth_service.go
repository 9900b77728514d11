package services

import (
	"errors"
	"fmt"

	"github.com/bigBrother1996/devConnector/internal/config"
	"github.com/bigBrother1996/devConnector/internal/dto"
	"github.com/bigBrother1996/devConnector/internal/gravatar"
	"github.com/bigBrother1996/devConnector/internal/models"
	"github.com/bigBrother1996/devConnector/internal/store"
	"github.com/bigBrother1996/devConnector/internal/token"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken = errors.New("User already exists")
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the two are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

const bcryptCost = 10

type AuthService struct {
	users store.UserStore
	cfg   *config.Config
}

func NewAuthService(users store.UserStore, cfg *config.Config) *AuthService {
	return &AuthService{users: users, cfg: cfg}
}

// Register creates a new user identity with a derived gravatar and a hashed
// password, then issues a token for it.
func (s *AuthService) Register(req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	if _, err := s.users.FindByEmail(req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Avatar:   gravatar.URL(req.Email, 200, "pg", "mm"),
		Password: string(hash),
	}

	if err := s.users.Create(&user); err != nil {
		return nil, err
	}

	return s.issueToken(&user)
}

func (s *AuthService) Login(req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.users.FindByEmail(req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(user)
}

// CurrentUser resolves the verified caller's identity record.
func (s *AuthService) CurrentUser(userID uuid.UUID) (*models.User, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) issueToken(user *models.User) (*dto.TokenResponse, error) {
	signed, err := token.Sign(s.cfg.JWTSecret, user.ID, s.cfg.JWTExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &dto.TokenResponse{Token: signed}, nil
}
