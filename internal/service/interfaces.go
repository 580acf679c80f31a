package service

import (
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// UserServiceInterface defines the interface for user service operations
type UserServiceInterface interface {
	Register(req *RegisterRequest) (*AuthResponse, error)
	Login(req *LoginRequest) (*AuthResponse, error)
	GetUserByID(id uuid.UUID) (*UserResponse, error)
}

// OrganisationServiceInterface defines the interface for organisation service operations
type OrganisationServiceInterface interface {
	Create(req *CreateOrganisationRequest, createdBy uuid.UUID) (*OrganisationResponse, error)
	ListForUser(userID uuid.UUID) ([]OrganisationResponse, error)
	GetForUser(orgID, userID uuid.UUID) (*OrganisationResponse, error)
	AddMember(orgID, userID uuid.UUID) error
}
