package notification

import (
	"context"
	"fmt"

	userRepo "furytails/database/repository/user"
	"furytails/models"
	"furytails/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// NotificationService defines methods for sending FCM pushes.
type NotificationService interface {
	// SendUserPush sends a push to one account's registered device.
	SendUserPush(ctx context.Context, userID, title, body string, data map[string]string) error
	// SendAdminPush sends a push to every admin account with a device.
	SendAdminPush(ctx context.Context, title, body string, data map[string]string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	users userRepo.UserRepository
}

func NewDefaultNotificationService(users userRepo.UserRepository) (*DefaultNotificationService, error) {
	if users == nil {
		return nil, fmt.Errorf("notification service initialization error: user repository is nil")
	}
	return &DefaultNotificationService{users: users}, nil
}

// SendUserPush looks up an account's FCM token and sends a push.
// An account without a registered device is not an error.
func (s *DefaultNotificationService) SendUserPush(ctx context.Context, userID, title, body string, data map[string]string) error {
	u, err := s.users.GetByID(userID)
	if err != nil {
		return fmt.Errorf("SendUserPush: could not find user %s: %w", userID, err)
	}
	if u.FCMToken == "" {
		utils.GetLogger().Info("skipping push: user has no registered device", zap.String("userId", userID))
		return nil
	}
	return s.send(ctx, u.FCMToken, title, body, data)
}

// SendAdminPush sends a push to every admin account with a device.
func (s *DefaultNotificationService) SendAdminPush(ctx context.Context, title, body string, data map[string]string) error {
	admins, err := s.users.GetByRole(models.RoleAdmin)
	if err != nil {
		return fmt.Errorf("SendAdminPush: could not list admins: %w", err)
	}

	var lastErr error
	for _, admin := range admins {
		if admin.FCMToken == "" {
			continue
		}
		if err := s.send(ctx, admin.FCMToken, title, body, data); err != nil {
			utils.GetLogger().Warn("failed to push to admin",
				zap.String("adminId", admin.ID), zap.Error(err))
			lastErr = err
		}
	}
	return lastErr
}

func (s *DefaultNotificationService) send(ctx context.Context, token, title, body string, data map[string]string) error {
	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send FCM message: %w", err)
	}
	return nil
}
