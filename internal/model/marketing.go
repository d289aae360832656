// internal/model/marketing.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Banner struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title    string    `gorm:"type:text;not null" json:"title"`
	ImageURL string    `gorm:"type:text;not null" json:"image_url"`
	PublicID string    `gorm:"type:text;not null" json:"-"`
	LinkURL  string    `gorm:"type:text" json:"link_url"`
	Position int       `gorm:"not null;default:0" json:"position"`

	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type LeadStatus string

const (
	LeadNew       LeadStatus = "new"
	LeadContacted LeadStatus = "contacted"
	LeadConverted LeadStatus = "converted"
	LeadDropped   LeadStatus = "dropped"
)

// BankLead is a public bank-account-opening form submission; not a platform
// account, captured for sales follow-up.
type BankLead struct {
	ID       uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name     string     `gorm:"type:text;not null" json:"name"`
	Phone    string     `gorm:"type:text;not null" json:"phone"`
	Email    string     `gorm:"type:text" json:"email"`
	City     string     `gorm:"type:text" json:"city"`
	BankName string     `gorm:"type:text" json:"bank_name"`
	Status   LeadStatus `gorm:"type:text;not null;default:'new'" json:"status"`
	Notes    string     `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type WebDevelopmentLead struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string     `gorm:"type:text;not null" json:"name"`
	Phone       string     `gorm:"type:text;not null" json:"phone"`
	Email       string     `gorm:"type:text" json:"email"`
	Business    string     `gorm:"type:text" json:"business"`
	ProjectType string     `gorm:"type:text" json:"project_type"`
	Budget      string     `gorm:"type:text" json:"budget"`
	Details     string     `gorm:"type:text" json:"details"`
	Status      LeadStatus `gorm:"type:text;not null;default:'new'" json:"status"`
	Notes       string     `gorm:"type:text" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
