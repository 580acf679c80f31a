package repository

import (
	"identity-service-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrganisationRepository handles database operations for organisations and
// the user/organisation membership relation.
type OrganisationRepository struct {
	db *gorm.DB
}

// NewOrganisationRepository creates a new organisation repository
func NewOrganisationRepository(db *gorm.DB) *OrganisationRepository {
	return &OrganisationRepository{db: db}
}

// Create creates a new organisation
func (r *OrganisationRepository) Create(org *models.Organisation) error {
	return r.db.Create(org).Error
}

// CreateWithMember creates the organisation and enrolls the given user as a
// member in one transaction.
func (r *OrganisationRepository) CreateWithMember(org *models.Organisation, userID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(org).Error; err != nil {
			return err
		}

		membership := &models.UserOrganisation{
			UserID:         userID,
			OrganisationID: org.ID,
		}
		return tx.Create(membership).Error
	})
}

// GetByID retrieves an organisation by ID with no membership scoping
func (r *OrganisationRepository) GetByID(id uuid.UUID) (*models.Organisation, error) {
	var org models.Organisation
	err := r.db.First(&org, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// GetByIDForUser retrieves an organisation only if the given user is a
// member. A non-member gets gorm.ErrRecordNotFound whether or not the
// organisation exists, so membership gating never discloses existence.
func (r *OrganisationRepository) GetByIDForUser(id, userID uuid.UUID) (*models.Organisation, error) {
	var org models.Organisation
	err := r.db.
		Joins("JOIN user_organisations ON user_organisations.organisation_id = organisations.id").
		Where("organisations.id = ? AND user_organisations.user_id = ?", id, userID).
		First(&org).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// GetAllForUser retrieves all organisations the given user is a member of
func (r *OrganisationRepository) GetAllForUser(userID uuid.UUID) ([]models.Organisation, error) {
	var orgs []models.Organisation
	err := r.db.
		Joins("JOIN user_organisations ON user_organisations.organisation_id = organisations.id").
		Where("user_organisations.user_id = ?", userID).
		Find(&orgs).Error
	if err != nil {
		return nil, err
	}
	return orgs, nil
}

// AddMember adds the user to the organisation's membership set. Re-adding an
// existing member is a no-op; the composite primary key makes the insert
// conflict and DO NOTHING swallows it.
func (r *OrganisationRepository) AddMember(orgID, userID uuid.UUID) error {
	membership := &models.UserOrganisation{
		UserID:         userID,
		OrganisationID: orgID,
	}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(membership).Error
}

// IsMember reports whether the user belongs to the organisation
func (r *OrganisationRepository) IsMember(orgID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.UserOrganisation{}).
		Where("organisation_id = ? AND user_id = ?", orgID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
