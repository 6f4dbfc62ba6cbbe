package notification

import (
	"context"
	"fmt"

	userRepo "fixv/database/repository/user"
	"fixv/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// NotificationService defines methods for sending FCM pushes.
type NotificationService interface {
	SendUserPushNotification(ctx context.Context, userID, title, body string, data map[string]string) error
}

// DefaultNotificationService is the production implementation. It resolves a
// user's registered device tokens and pushes to each of them.
type DefaultNotificationService struct {
	users userRepo.UserRepository
}

func NewDefaultNotificationService(users userRepo.UserRepository) (*DefaultNotificationService, error) {
	if users == nil {
		return nil, fmt.Errorf("notification service initialization error: user repository is nil")
	}
	return &DefaultNotificationService{users: users}, nil
}

// SendUserPushNotification looks up a user's FCM device tokens and sends a
// push to each. When Firebase is not configured the call is a no-op.
func (s *DefaultNotificationService) SendUserPushNotification(
	ctx context.Context,
	userID, title, body string,
	data map[string]string,
) error {
	if utils.FCMClient == nil {
		utils.GetLogger().Debug("FCM not configured; skipping push", zap.String("userId", userID))
		return nil
	}

	u, err := s.users.GetByID(userID)
	if err != nil {
		return fmt.Errorf("SendUserPushNotification: could not find user %s: %w", userID, err)
	}
	if u == nil || len(u.DeviceTokens) == 0 {
		return fmt.Errorf("SendUserPushNotification: user %s has no device tokens", userID)
	}

	var lastErr error
	for _, token := range u.DeviceTokens {
		msg := &messaging.Message{
			Token: token,
			Notification: &messaging.Notification{
				Title: title,
				Body:  body,
			},
			Data: data,
		}
		if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
			utils.GetLogger().Warn("failed to send FCM message",
				zap.String("userId", userID), zap.Error(err))
			lastErr = err
		}
	}
	if lastErr != nil {
		return fmt.Errorf("SendUserPushNotification: failed to send FCM message: %w", lastErr)
	}
	return nil
}
