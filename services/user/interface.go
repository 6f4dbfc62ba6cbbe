package user

import (
	userRepo "fixv/database/repository/user"
	"fixv/models"
)

type UserService interface {
	// Register creates a new account with a bcrypt-hashed password and
	// signs the user in.
	Register(req RegistrationRequest) (*AuthResponse, error)
	// Authenticate verifies credentials and issues a fresh token.
	Authenticate(email, password string) (*AuthResponse, error)
	// RevokeAuthToken invalidates the user's active token.
	RevokeAuthToken(userID string) error

	GetUserByID(userID string) (*models.User, error)
	UpdateUser(userID string, req UpdateRequest) (*models.User, error)
	DeleteUser(userID string) error
	// RegisterDeviceToken records an FCM device token for push delivery.
	RegisterDeviceToken(userID, token string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// RegistrationRequest is the sign-up input.
type RegistrationRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	PhoneNumber string `json:"phoneNumber"`
}

// UpdateRequest is a partial profile update; empty fields are left untouched.
type UpdateRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phoneNumber"`
}

// AuthResponse contains the user's ID, token, and additional details.
type AuthResponse struct {
	ID          string `json:"id"`
	Token       string `json:"token"`
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}
