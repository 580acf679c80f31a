package handlers

import (
	"errors"
	"net/http"

	"identity-service-backend/internal/auth"
	apperrors "identity-service-backend/internal/errors"
	"identity-service-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrganisationHandler handles HTTP requests for organisations and membership
type OrganisationHandler struct {
	service service.OrganisationServiceInterface
}

// NewOrganisationHandler creates a new organisation handler
func NewOrganisationHandler(service service.OrganisationServiceInterface) *OrganisationHandler {
	return &OrganisationHandler{service: service}
}

// ListOrganisations handles GET /api/organisations
// @Summary List the caller's organisations
// @Description Get all organisations the authenticated user is a member of
// @Tags organisations
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Organisations retrieved"
// @Failure 401 {object} map[string]interface{} "Missing or invalid token"
// @Security BearerAuth
// @Router /api/organisations [get]
func (h *OrganisationHandler) ListOrganisations(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "Unauthorized", "message": "Authentication required"})
		return
	}

	orgs, err := h.service.ListForUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to get organisations"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Organisations retrieved",
		"data":    gin.H{"organisations": orgs},
	})
}

// GetOrganisation handles GET /api/organisations/:orgId
// @Summary Get organisation by ID
// @Description Get an organisation the authenticated user is a member of; non-members get 404
// @Tags organisations
// @Accept json
// @Produce json
// @Param orgId path string true "Organisation ID (UUID)"
// @Success 200 {object} map[string]interface{} "Organisation retrieved"
// @Failure 401 {object} map[string]interface{} "Missing or invalid token"
// @Failure 404 {object} map[string]interface{} "Organisation not found or not visible"
// @Security BearerAuth
// @Router /api/organisations/{orgId} [get]
func (h *OrganisationHandler) GetOrganisation(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "Unauthorized", "message": "Authentication required"})
		return
	}

	orgID, err := uuid.Parse(c.Param("orgId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "Not found", "message": "Organisation not found"})
		return
	}

	org, err := h.service.GetForUser(orgID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrOrganisationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "Not found", "message": "Organisation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "Failed to get organisation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Organisation retrieved",
		"data":    org,
	})
}

// CreateOrganisation handles POST /api/organisations
// @Summary Create a new organisation
// @Description Create an organisation; the creator becomes its first member
// @Tags organisations
// @Accept json
// @Produce json
// @Param organisation body service.CreateOrganisationRequest true "Organisation data"
// @Success 201 {object} map[string]interface{} "Organisation created"
// @Failure 400 {object} map[string]interface{} "Missing name or write failure"
// @Failure 401 {object} map[string]interface{} "Missing or invalid token"
// @Security BearerAuth
// @Router /api/organisations [post]
func (h *OrganisationHandler) CreateOrganisation(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "Unauthorized", "message": "Authentication required"})
		return
	}

	var req service.CreateOrganisationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "Bad Request", "message": "Client error"})
		return
	}

	org, err := h.service.Create(&req, userID)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"status": "Bad Request", "message": "Name is required"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"status": "Bad Request", "message": "Client error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Organisation created successfully",
		"data":    org,
	})
}

// AddMember handles POST /api/organisations/:orgId/users
// @Summary Add a user to an organisation
// @Description Add an existing user to an organisation's membership set
// @Tags organisations
// @Accept json
// @Produce json
// @Param orgId path string true "Organisation ID (UUID)"
// @Param member body service.AddMemberRequest true "User to add"
// @Success 200 {object} map[string]interface{} "User added"
// @Failure 400 {object} map[string]interface{} "Missing userId"
// @Failure 401 {object} map[string]interface{} "Missing or invalid token"
// @Failure 404 {object} map[string]interface{} "User or organisation not found"
// @Security BearerAuth
// @Router /api/organisations/{orgId}/users [post]
func (h *OrganisationHandler) AddMember(c *gin.Context) {
	var req service.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "Bad Request", "message": "userId is required"})
		return
	}

	orgID, err := uuid.Parse(c.Param("orgId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "Not found", "message": "Organisation not found"})
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"status": "Not found", "message": "User not found"})
		return
	}

	if err := h.service.AddMember(orgID, userID); err != nil {
		if errors.Is(err, apperrors.ErrOrganisationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "Not found", "message": "Organisation not found"})
			return
		}
		if errors.Is(err, apperrors.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "Not found", "message": "User not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"status": "Bad Request", "message": "Client error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "User added to organisation successfully",
	})
}
