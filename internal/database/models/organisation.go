package models

import (
	"github.com/google/uuid"
)

// Organisation represents a tenant that users belong to. CreatedBy records
// the creating user but confers no access by itself; visibility is driven
// entirely by the user_organisations membership rows.
type Organisation struct {
	BaseModel
	Name        string     `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Description string     `json:"description" gorm:"type:text"`
	CreatedBy   *uuid.UUID `json:"created_by,omitempty" gorm:"type:uuid;index"`

	// Relationships
	Users []User `json:"users,omitempty" gorm:"many2many:user_organisations;"`
}

// TableName returns the table name for Organisation
func (Organisation) TableName() string {
	return "organisations"
}
