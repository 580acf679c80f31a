package testutils

import (
	"fmt"
	"time"

	"identity-service-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values. Each call gets a unique
// email so the unique index never trips across tests.
func (f *UserFactory) Create() *models.User {
	id := uuid.New()

	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FirstName:    "John",
		LastName:     "Doe",
		Email:        fmt.Sprintf("john.doe+%s@test.com", id.String()[:8]),
		PasswordHash: "$2a$04$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		Phone:        "+1-555-0123",
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithName sets custom first and last names for the user
func (f *UserFactory) WithName(firstName, lastName string) *models.User {
	user := f.Create()
	user.FirstName = firstName
	user.LastName = lastName
	return user
}

// FactorySet provides access to all factories
type FactorySet struct {
	User         *UserFactory
	Organisation *OrganisationFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:         NewUserFactory(),
		Organisation: NewOrganisationFactory(),
	}
}

// OrganisationFactory provides methods to create test Organisation data
type OrganisationFactory struct{}

// NewOrganisationFactory creates a new OrganisationFactory
func NewOrganisationFactory() *OrganisationFactory {
	return &OrganisationFactory{}
}

// Create creates a test Organisation with default values
func (f *OrganisationFactory) Create() *models.Organisation {
	return &models.Organisation{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Test Organisation",
		Description: "A test organisation for testing purposes",
	}
}

// WithName sets a custom name for the organisation
func (f *OrganisationFactory) WithName(name string) *models.Organisation {
	org := f.Create()
	org.Name = name
	return org
}

// WithCreator sets the creating user for the organisation
func (f *OrganisationFactory) WithCreator(userID uuid.UUID) *models.Organisation {
	org := f.Create()
	org.CreatedBy = &userID
	return org
}
