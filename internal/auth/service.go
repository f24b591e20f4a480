package auth

import (
	"context"
	"time"

	"brickvale-backend/internal/middleware"
	"brickvale-backend/internal/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service struct {
	DB       *gorm.DB
	Secret   []byte
	TokenTTL time.Duration
}

// LoginInput is the login request body.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login verifies credentials and issues a signed token.
func (s *Service) Login(ctx context.Context, input LoginInput) (*models.User, string, error) {
	if input.Email == "" || input.Password == "" {
		return nil, "", ErrEmailPasswordRequired
	}

	var user models.User
	err := s.DB.WithContext(ctx).
		Where("email = ? AND deleted = ?", input.Email, false).
		First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(s.Secret, user.ID, user.Role, s.TokenTTL)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// Me resolves the authenticated user's record.
func (s *Service) Me(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	var user models.User
	err := s.DB.WithContext(ctx).
		Where("id = ? AND deleted = ?", userID, false).
		First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// HashPassword wraps bcrypt at the default cost.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
