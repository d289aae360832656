// internal/model/ca.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// CharteredAccountant is a singleton professional account: the service layer
// refuses a second registration while one row exists.
type CharteredAccountant struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email          string    `gorm:"type:citext;uniqueIndex;not null" json:"email"`
	PasswordHash   string    `gorm:"type:text;not null" json:"-"`
	Name           string    `gorm:"type:text;not null" json:"name"`
	Phone          string    `gorm:"type:text" json:"phone"`
	MembershipNo   string    `gorm:"type:text" json:"membership_no"`
	FirmName       string    `gorm:"type:text" json:"firm_name"`
	ExperienceYrs  int       `gorm:"not null;default:0" json:"experience_years"`
	Specialization string    `gorm:"type:text" json:"specialization"`

	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
