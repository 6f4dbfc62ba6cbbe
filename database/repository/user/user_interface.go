package userRepo

import (
	"fixv/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID; nil when missing.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address; nil when missing.
	GetByEmail(email string) (*models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// Update modifies an existing user record.
	Update(user *models.User) error
	// Delete removes a user record by its ID.
	Delete(id string) error
	// UpdateSetDocument applies a partial $set update to a user document.
	UpdateSetDocument(id string, updateDoc bson.M) error
	// AddDeviceToken registers an FCM device token for push notifications.
	AddDeviceToken(id, token string) error
}
