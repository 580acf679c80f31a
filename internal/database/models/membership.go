package models

import (
	"time"

	"github.com/google/uuid"
)

// UserOrganisation is the explicit join model backing the many-to-many
// user/organisation relation. Membership writes go through the repository
// as their own operation rather than as a side effect of saving either
// entity, so each add runs in its own transaction boundary.
type UserOrganisation struct {
	UserID         uuid.UUID `json:"user_id" gorm:"type:uuid;primaryKey"`
	OrganisationID uuid.UUID `json:"organisation_id" gorm:"type:uuid;primaryKey"`
	CreatedAt      time.Time `json:"created_at"`
}

// TableName returns the table name for UserOrganisation
func (UserOrganisation) TableName() string {
	return "user_organisations"
}
