package repository

import (
	"errors"

	"identity-service-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolation is the Postgres SQLSTATE for unique-constraint failures.
// The unique index on users.email is the authoritative guard; two concurrent
// registrations with the same email race past the pre-check and one of them
// lands here.
const uniqueViolation = "23505"

// IsUniqueViolation reports whether err is a Postgres unique-constraint error
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// CreateWithDefaultOrg creates the user, their default organisation and the
// membership link in one transaction. A failure at any step rolls back the
// whole registration so no user row is left without its default organisation.
func (r *UserRepository) CreateWithDefaultOrg(user *models.User, org *models.Organisation) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		org.CreatedBy = &user.ID
		if err := tx.Create(org).Error; err != nil {
			return err
		}

		membership := &models.UserOrganisation{
			UserID:         user.ID,
			OrganisationID: org.ID,
		}
		return tx.Create(membership).Error
	})
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}
