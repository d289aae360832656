// internal/model/loan_scheme.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type LoanScheme struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"type:text;not null" json:"name"`
	Provider    string    `gorm:"type:text;not null" json:"provider"`
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `gorm:"type:text;index" json:"category"`

	// Display fields, amounts in rupees
	MinAmount    int64   `gorm:"not null;default:0" json:"min_amount"`
	MaxAmount    int64   `gorm:"not null;default:0" json:"max_amount"`
	InterestRate float64 `gorm:"not null;default:0" json:"interest_rate"`
	TenureMonths int     `gorm:"not null;default:0" json:"tenure_months"`
	Eligibility  string  `gorm:"type:text" json:"eligibility"`
	ApplyURL     string  `gorm:"type:text" json:"apply_url"`

	ViewCount        int `gorm:"not null;default:0" json:"view_count"`
	ApplicationCount int `gorm:"not null;default:0" json:"application_count"`

	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
