// internal/model/company.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Company struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email        string    `gorm:"type:citext;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	Name         string    `gorm:"type:text;not null" json:"name"`
	Website      string    `gorm:"type:text" json:"website"`
	Industry     string    `gorm:"type:text" json:"industry"`
	Location     string    `gorm:"type:text" json:"location"`
	About        string    `gorm:"type:text" json:"about"`
	LogoURL      string    `gorm:"type:text" json:"logo_url"`

	// Denormalized counters shown on the company dashboard
	InternshipCount  int `gorm:"not null;default:0" json:"internship_count"`
	ApplicationCount int `gorm:"not null;default:0" json:"application_count"`

	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	IsBlocked bool      `gorm:"not null;default:false" json:"is_blocked"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
