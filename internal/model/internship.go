// internal/model/internship.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type InternshipMode string

const (
	ModeRemote InternshipMode = "remote"
	ModeOnsite InternshipMode = "onsite"
	ModeHybrid InternshipMode = "hybrid"
)

type Internship struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CompanyID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"company_id"`
	Title       string         `gorm:"type:text;not null" json:"title"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Location    string         `gorm:"type:text" json:"location"`
	Mode        InternshipMode `gorm:"type:text;not null;default:'onsite'" json:"mode"`
	Category    string         `gorm:"type:text;index" json:"category"`
	Skills      Categories     `gorm:"type:text[];not null;default:'{}'" json:"skills"`

	// Monthly stipend range in rupees; zero means unpaid
	StipendMin int64 `gorm:"not null;default:0" json:"stipend_min"`
	StipendMax int64 `gorm:"not null;default:0" json:"stipend_max"`

	DurationWeeks  int        `gorm:"not null;default:0" json:"duration_weeks"`
	Openings       int        `gorm:"not null;default:1" json:"openings"`
	ApplyBy        *time.Time `json:"apply_by,omitempty"`
	ApplicantCount int        `gorm:"not null;default:0" json:"applicant_count"`

	IsOpen    bool      `gorm:"not null;default:true" json:"is_open"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Company Company `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
}
