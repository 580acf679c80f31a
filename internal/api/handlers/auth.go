package handlers

import (
	"errors"
	"net/http"

	apperrors "identity-service-backend/internal/errors"
	"identity-service-backend/internal/logger"
	"identity-service-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration and login
type AuthHandler struct {
	service service.UserServiceInterface
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service service.UserServiceInterface) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register handles POST /auth/register
// @Summary Register a new user
// @Description Create an account, its default organisation and issue a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param user body service.RegisterRequest true "Registration data"
// @Success 201 {object} map[string]interface{} "Registration successful"
// @Failure 400 {object} map[string]interface{} "Malformed request or write failure"
// @Failure 422 {object} map[string]interface{} "Field-level validation errors"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "Bad request", "message": "Registration unsuccessful"})
		return
	}

	resp, err := h.service.Register(&req)
	if err != nil {
		var fieldErrs apperrors.ValidationErrors
		if errors.As(err, &fieldErrs) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrs})
			return
		}
		logger.WithRequestID(c.GetString("request_id")).WithField("error", err.Error()).Error("registration failed")
		c.JSON(http.StatusBadRequest, gin.H{"status": "Bad request", "message": "Registration unsuccessful"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Registration successful",
		"data":    resp,
	})
}

// Login handles POST /auth/login
// @Summary Authenticate a user
// @Description Verify email and password and issue a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body service.LoginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{} "Login successful"
// @Failure 401 {object} map[string]interface{} "Authentication failed"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "Bad request", "message": "Authentication failed"})
		return
	}

	resp, err := h.service.Login(&req)
	if err != nil {
		// Unknown email and wrong password produce the same response so
		// login cannot be used to enumerate accounts.
		if apperrors.IsAuthentication(err) {
			c.JSON(http.StatusUnauthorized, gin.H{"status": "Bad request", "message": "Authentication failed"})
			return
		}
		logger.WithRequestID(c.GetString("request_id")).WithField("error", err.Error()).Error("login failed")
		c.JSON(http.StatusUnauthorized, gin.H{"status": "Bad request", "message": "Authentication failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Login successful",
		"data":    resp,
	})
}
