package user

import (
	"fmt"
	"time"

	"fixv/models"

	"go.mongodb.org/mongo-driver/bson"
)

// GetUserByID retrieves a user's profile.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	userRec, err := s.Repo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if userRec == nil {
		return nil, UserNotFoundError{UserID: userID}
	}
	return userRec, nil
}

// UpdateUser applies a partial profile update and returns the fresh record.
func (s *DefaultUserService) UpdateUser(userID string, req UpdateRequest) (*models.User, error) {
	updateDoc := bson.M{"updated_at": time.Now()}
	if req.Name != "" {
		updateDoc["name"] = req.Name
	}
	if req.PhoneNumber != "" {
		updateDoc["phone_number"] = req.PhoneNumber
	}

	if err := s.Repo.UpdateSetDocument(userID, updateDoc); err != nil {
		return nil, fmt.Errorf("failed to update user %s: %w", userID, err)
	}
	return s.GetUserByID(userID)
}

// DeleteUser removes the account record.
func (s *DefaultUserService) DeleteUser(userID string) error {
	if err := s.Repo.Delete(userID); err != nil {
		return fmt.Errorf("failed to delete user %s: %w", userID, err)
	}
	return nil
}

// RegisterDeviceToken records an FCM device token for push delivery.
func (s *DefaultUserService) RegisterDeviceToken(userID, token string) error {
	if token == "" {
		return fmt.Errorf("device token is required")
	}
	if err := s.Repo.AddDeviceToken(userID, token); err != nil {
		return fmt.Errorf("failed to register device token for user %s: %w", userID, err)
	}
	return nil
}
