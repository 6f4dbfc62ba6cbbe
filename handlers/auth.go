package handlers

import (
	"errors"
	"net/http"

	"fixv/middleware"
	"fixv/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterHandler handles user registration.
func RegisterHandler(c *gin.Context) {
	logger := getLogger(c)

	var req user.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid registration request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := UserSvc.Register(req)
	if err != nil {
		var dup user.DuplicateEmailError
		if errors.As(err, &dup) {
			c.JSON(http.StatusConflict, gin.H{"error": dup.Error()})
			return
		}
		logger.Error("User registration failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler handles user login and returns a bearer token.
func LoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := UserSvc.Authenticate(req.Email, req.Password)
	if err != nil {
		var invalid user.InvalidCredentialsError
		if errors.As(err, &invalid) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": invalid.Error()})
			return
		}
		logger.Error("Login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LogoutHandler revokes the caller's active token.
func LogoutHandler(c *gin.Context) {
	logger := getLogger(c)
	userID := middleware.AuthedUserID(c)

	if err := UserSvc.RevokeAuthToken(userID); err != nil {
		logger.Error("Logout failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}
