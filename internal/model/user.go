// internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Username     string    `gorm:"type:citext;uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"type:citext;uniqueIndex;not null" json:"email"`
	Phone        string    `gorm:"type:text;uniqueIndex;not null" json:"phone"`
	PasswordHash string    `gorm:"type:text;not null" json:"-"`
	FirstName    string    `gorm:"type:text;not null" json:"first_name"`
	LastName     string    `gorm:"type:text" json:"last_name"`
	City         string    `gorm:"type:text" json:"city"`
	State        string    `gorm:"type:text" json:"state"`

	ReferralCode   string     `gorm:"type:text;uniqueIndex;not null" json:"referral_code"`
	ReferredByCode string     `gorm:"type:text" json:"referred_by_code,omitempty"`

	IsActive        bool `gorm:"not null;default:true" json:"is_active"`
	IsBlocked       bool `gorm:"not null;default:false" json:"is_blocked"`
	IsPhoneVerified bool `gorm:"not null;default:false" json:"is_phone_verified"`

	// OTP state lives on the row; cleared on successful verification
	OTPCode      string     `gorm:"type:text" json:"-"`
	OTPExpiresAt *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
