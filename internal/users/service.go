package users

import (
	"context"
	"errors"

	"brickvale-backend/internal/auth"
	"brickvale-backend/internal/models"
	"brickvale-backend/internal/pkg/validation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrInvalidPhone    = errors.New("invalid phone number")
	ErrInvalidPassword = errors.New("password must be at least 8 characters with a letter, number and special character")
	ErrInvalidRole     = errors.New("role must be agent or client")
	ErrEmailTaken      = errors.New("email already registered")
	ErrNotFound        = errors.New("user not found")
)

type Service struct {
	DB *gorm.DB
}

// CreateInput is the admin create-user request body.
type CreateInput struct {
	Fullname       string   `json:"fullname" validate:"required"`
	Email          string   `json:"email" validate:"required,email"`
	Phone          string   `json:"phone" validate:"required"`
	Password       string   `json:"password" validate:"required"`
	Address        *string  `json:"address"`
	Role           string   `json:"role" validate:"required"`
	CommissionRate *float64 `json:"commission_rate"`
}

// Create registers a new client or agent account.
func (s *Service) Create(ctx context.Context, input CreateInput, createdBy uuid.UUID) (*models.User, error) {
	if !validation.IsValidEmail(input.Email) {
		return nil, ErrInvalidEmail
	}
	if !validation.IsValidPhone(input.Phone) {
		return nil, ErrInvalidPhone
	}
	if !validation.IsValidPassword(input.Password) {
		return nil, ErrInvalidPassword
	}
	if input.Role != models.RoleAgent && input.Role != models.RoleClient {
		return nil, ErrInvalidRole
	}

	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.User{}).
		Where("email = ?", input.Email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}
	user := models.User{
		Fullname:       input.Fullname,
		Email:          input.Email,
		Phone:          input.Phone,
		PasswordHash:   hash,
		Address:        input.Address,
		Role:           input.Role,
		CommissionRate: input.CommissionRate,
		CreatedBy:      &createdBy,
	}
	if err := s.DB.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns non-deleted users, optionally filtered by role.
func (s *Service) List(ctx context.Context, role string) ([]models.User, error) {
	query := s.DB.WithContext(ctx).Where("deleted = ?", false)
	if role != "" {
		query = query.Where("role = ?", role)
	}
	var users []models.User
	if err := query.Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Get returns a single non-deleted user.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := s.DB.WithContext(ctx).Where("id = ? AND deleted = ?", id, false).First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
