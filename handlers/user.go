package handlers

import (
	"errors"
	"net/http"

	"fixv/middleware"
	"fixv/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetProfileHandler returns the authenticated user's profile.
func GetProfileHandler(c *gin.Context) {
	logger := getLogger(c)
	userID := middleware.AuthedUserID(c)

	profile, err := UserSvc.GetUserByID(userID)
	if err != nil {
		var notFound user.UserNotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
			return
		}
		logger.Error("Failed to get user profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfileHandler updates the authenticated user's profile.
func UpdateProfileHandler(c *gin.Context) {
	logger := getLogger(c)
	userID := middleware.AuthedUserID(c)

	var req user.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := UserSvc.UpdateUser(userID, req)
	if err != nil {
		logger.Error("Failed to update profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteAccountHandler removes the authenticated user's account.
func DeleteAccountHandler(c *gin.Context) {
	logger := getLogger(c)
	userID := middleware.AuthedUserID(c)

	if err := UserSvc.RevokeAuthToken(userID); err != nil {
		logger.Warn("Failed to revoke token during account deletion", zap.Error(err))
	}
	if err := UserSvc.DeleteUser(userID); err != nil {
		logger.Error("Failed to delete account", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete account"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}

// RegisterDeviceTokenHandler records an FCM device token for push delivery.
func RegisterDeviceTokenHandler(c *gin.Context) {
	logger := getLogger(c)
	userID := middleware.AuthedUserID(c)

	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := UserSvc.RegisterDeviceToken(userID, req.Token); err != nil {
		logger.Error("Failed to register device token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register device token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "device token registered"})
}
