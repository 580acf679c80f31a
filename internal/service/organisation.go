package service

import (
	"errors"
	"fmt"

	"identity-service-backend/internal/database/models"
	apperrors "identity-service-backend/internal/errors"
	"identity-service-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganisationService handles business logic for organisations and membership
type OrganisationService struct {
	repo      repository.OrganisationRepositoryInterface
	userRepo  repository.UserRepositoryInterface
	validator *validator.Validate
}

// NewOrganisationService creates a new organisation service
func NewOrganisationService(repo repository.OrganisationRepositoryInterface, userRepo repository.UserRepositoryInterface, validator *validator.Validate) *OrganisationService {
	return &OrganisationService{
		repo:      repo,
		userRepo:  userRepo,
		validator: validator,
	}
}

// CreateOrganisationRequest represents the request to create an organisation
type CreateOrganisationRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description,omitempty"`
}

// AddMemberRequest represents the request to add a user to an organisation
type AddMemberRequest struct {
	UserID string `json:"userId"`
}

// OrganisationResponse represents the client-facing organisation shape
type OrganisationResponse struct {
	OrgID       uuid.UUID `json:"orgId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

// Create creates a new organisation and enrolls the creator as its first
// member in the same transaction.
func (s *OrganisationService) Create(req *CreateOrganisationRequest, createdBy uuid.UUID) (*OrganisationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("name", "Name is required")
	}

	org := &models.Organisation{
		Name:        req.Name,
		Description: req.Description,
		CreatedBy:   &createdBy,
	}

	if err := s.repo.CreateWithMember(org, createdBy); err != nil {
		return nil, fmt.Errorf("failed to create organisation: %w", err)
	}

	return s.toResponse(org), nil
}

// ListForUser retrieves all organisations the user is a member of
func (s *OrganisationService) ListForUser(userID uuid.UUID) ([]OrganisationResponse, error) {
	orgs, err := s.repo.GetAllForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get organisations: %w", err)
	}

	responses := make([]OrganisationResponse, len(orgs))
	for i, org := range orgs {
		responses[i] = *s.toResponse(&org)
	}

	return responses, nil
}

// GetForUser retrieves an organisation only if the user is a member.
// Non-members get ErrOrganisationNotFound whether or not the organisation
// exists.
func (s *OrganisationService) GetForUser(orgID, userID uuid.UUID) (*OrganisationResponse, error) {
	org, err := s.repo.GetByIDForUser(orgID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganisationNotFound
		}
		return nil, fmt.Errorf("failed to get organisation: %w", err)
	}

	return s.toResponse(org), nil
}

// AddMember adds an existing user to an existing organisation. Adding a
// user who is already a member succeeds without effect.
func (s *OrganisationService) AddMember(orgID, userID uuid.UUID) error {
	if _, err := s.repo.GetByID(orgID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrOrganisationNotFound
		}
		return fmt.Errorf("failed to get organisation: %w", err)
	}

	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	if err := s.repo.AddMember(orgID, userID); err != nil {
		return fmt.Errorf("failed to add member: %w", err)
	}

	return nil
}

func (s *OrganisationService) toResponse(org *models.Organisation) *OrganisationResponse {
	return &OrganisationResponse{
		OrgID:       org.ID,
		Name:        org.Name,
		Description: org.Description,
	}
}
