package repository

import (
	"identity-service-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	CreateWithDefaultOrg(user *models.User, org *models.Organisation) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}

// OrganisationRepositoryInterface defines the interface for organisation repository operations
type OrganisationRepositoryInterface interface {
	Create(org *models.Organisation) error
	CreateWithMember(org *models.Organisation, userID uuid.UUID) error
	GetByID(id uuid.UUID) (*models.Organisation, error)
	GetByIDForUser(id, userID uuid.UUID) (*models.Organisation, error)
	GetAllForUser(userID uuid.UUID) ([]models.Organisation, error)
	AddMember(orgID, userID uuid.UUID) error
	IsMember(orgID, userID uuid.UUID) (bool, error)
}
