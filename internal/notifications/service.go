package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"brickvale-backend/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("notification not found")

// Pusher delivers a push message to a set of device tokens. Delivery is
// best-effort; the notification row is the source of truth.
type Pusher interface {
	Push(ctx context.Context, tokens []string, title, body string, data map[string]interface{}) error
}

type Service struct {
	DB     *gorm.DB
	Pusher Pusher
}

// Notify persists a notification for the user and dispatches a push in the
// background. It never fails on delivery problems and never blocks the
// caller on network I/O.
func (s *Service) Notify(ctx context.Context, userID uuid.UUID, title, body string, metadata map[string]interface{}) error {
	var meta datatypes.JSON
	if metadata != nil {
		b, err := json.Marshal(metadata)
		if err != nil {
			return err
		}
		meta = datatypes.JSON(b)
	}
	notification := models.Notification{
		UserID:   userID,
		Title:    title,
		Body:     body,
		Metadata: meta,
	}
	if err := s.DB.WithContext(ctx).Create(&notification).Error; err != nil {
		return err
	}

	if s.Pusher != nil {
		go s.dispatch(userID, title, body, metadata)
	}
	return nil
}

func (s *Service) dispatch(userID uuid.UUID, title, body string, data map[string]interface{}) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var tokens []string
	if err := s.DB.WithContext(ctx).Model(&models.PushToken{}).
		Where("user_id = ?", userID).
		Pluck("token", &tokens).Error; err != nil {
		log.Warn().Err(err).Str("user_id", userID.String()).Msg("push token lookup failed")
		return
	}
	if len(tokens) == 0 {
		return
	}
	if err := s.Pusher.Push(ctx, tokens, title, body, data); err != nil {
		log.Warn().Err(err).Str("user_id", userID.String()).Msg("push dispatch failed")
	}
}

// ListForUser returns the user's notifications, newest first.
func (s *Service) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.Notification, error) {
	var rows []models.Notification
	err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

// MarkRead flags one of the user's notifications as read.
func (s *Service) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	result := s.DB.WithContext(ctx).Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// RegisterToken stores (or refreshes) a device push token for the user.
func (s *Service) RegisterToken(ctx context.Context, userID uuid.UUID, token, platform string) error {
	var existing models.PushToken
	err := s.DB.WithContext(ctx).Where("token = ?", token).First(&existing).Error
	if err == nil {
		return s.DB.WithContext(ctx).Model(&existing).
			Updates(map[string]interface{}{"user_id": userID, "platform": platform}).Error
	}
	if err != gorm.ErrRecordNotFound {
		return err
	}
	return s.DB.WithContext(ctx).Create(&models.PushToken{
		UserID:   userID,
		Token:    token,
		Platform: platform,
	}).Error
}
