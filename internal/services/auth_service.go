package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"slotmanager_backend/internal/models"
	"slotmanager_backend/internal/repositories"
	"slotmanager_backend/pkg/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// --- Custom Service Errors ---
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("email already registered")
	ErrTokenGeneration    = errors.New("failed to generate token")
)

// --- Data Transfer Objects (DTOs) ---

// LoginRequest DTO
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterUserRequest DTO
type RegisterUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// AuthResponse DTO
type AuthResponse struct {
	AccessToken string            `json:"access_token"`
	TokenType   string            `json:"token_type"`
	User        models.PublicUser `json:"user"`
}

// --- AuthService Interface ---
type AuthService interface {
	RegisterUser(req RegisterUserRequest) (*AuthResponse, error)
	LoginUser(req LoginRequest) (*AuthResponse, error)
	GetUserProfile(userID string) (*models.User, error)
}

type authService struct {
	authRepo      repositories.AuthRepository
	db            *sql.DB
	jwtSecret     string
	jwtExpiration time.Duration
}

// NewAuthService creates a new instance of AuthService. The JWT secret is an
// explicit dependency, threaded in from configuration rather than read from
// a package global.
func NewAuthService(authRepo repositories.AuthRepository, db *sql.DB, jwtSecret string, jwtExp time.Duration) AuthService {
	return &authService{
		authRepo:      authRepo,
		db:            db,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExp,
	}
}

func (s *authService) tokenFor(user *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateAccessToken(s.jwtSecret, user.ID, s.jwtExpiration)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenGeneration, err)
	}
	return &AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user.Public(),
	}, nil
}

// RegisterUser handles the business logic for user registration.
func (s *authService) RegisterUser(req RegisterUserRequest) (*AuthResponse, error) {
	if _, err := s.authRepo.GetUserByEmail(req.Email); err == nil {
		return nil, ErrEmailExists
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
	}

	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hashedPasswordBytes),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.authRepo.CreateUser(s.db, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}

	return s.tokenFor(user)
}

// LoginUser verifies credentials and issues a bearer token.
func (s *authService) LoginUser(req LoginRequest) (*AuthResponse, error) {
	user, err := s.authRepo.GetUserByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.tokenFor(user)
}

func (s *authService) GetUserProfile(userID string) (*models.User, error) {
	user, err := s.authRepo.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}
	return user, nil
}
