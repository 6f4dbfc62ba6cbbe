package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fixv/models"
	"fixv/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// tokenTTL bounds both the JWT expiry and the allowlist entry in Redis.
const tokenTTL = 72 * time.Hour

// Register creates a new account and signs the user in.
func (s *DefaultUserService) Register(req RegistrationRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("Register: failed to check existing email", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, DuplicateEmailError{Email: email}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	userRec := &models.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hash),
		PhoneNumber:  req.PhoneNumber,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(userRec); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueToken(userRec)
}

// Authenticate verifies credentials and issues a fresh token, replacing any
// previously active one.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	userRec, err := s.Repo.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		utils.GetLogger().Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, InvalidCredentialsError{}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, InvalidCredentialsError{}
	}

	return s.issueToken(userRec)
}

// issueToken generates a JWT and stores its hash as the user's single active
// token.
func (s *DefaultUserService) issueToken(userRec *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(userRec.ID, userRec.Email, tokenTTL)
	if err != nil {
		utils.GetLogger().Error("issueToken: failed to sign token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	sessionClient := utils.GetAuthCacheClient()
	cacheKey := utils.AuthCachePrefix + userRec.ID
	if err := sessionClient.Set(context.Background(), cacheKey, utils.HashToken(token), tokenTTL).Err(); err != nil {
		utils.GetLogger().Error("issueToken: failed to store token hash", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	return &AuthResponse{
		ID:          userRec.ID,
		Token:       token,
		Name:        userRec.Name,
		Email:       userRec.Email,
		PhoneNumber: userRec.PhoneNumber,
	}, nil
}

// RevokeAuthToken drops the user's active token from the allowlist, signing
// them out everywhere.
func (s *DefaultUserService) RevokeAuthToken(userID string) error {
	sessionClient := utils.GetAuthCacheClient()
	cacheKey := utils.AuthCachePrefix + userID
	if err := sessionClient.Del(context.Background(), cacheKey).Err(); err != nil {
		return fmt.Errorf("failed to revoke token for user %s: %w", userID, err)
	}
	return nil
}
