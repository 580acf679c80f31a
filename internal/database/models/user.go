package models

// User represents a registered account. The password hash is never
// serialized; responses expose the service-layer UserResponse instead.
type User struct {
	BaseModel
	FirstName    string `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName     string `json:"last_name" gorm:"not null;size:100" validate:"required,max=100"`
	Email        string `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash string `json:"-" gorm:"not null;size:255"`
	Phone        string `json:"phone" gorm:"size:20"`

	// Relationships
	Organisations []Organisation `json:"organisations,omitempty" gorm:"many2many:user_organisations;"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
