// internal/model/admin.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type AdminRole string

const (
	RoleSuperAdmin AdminRole = "super_admin"
	RoleAdmin      AdminRole = "admin"
)

// PermissionMap is a custom type that implements the sql.Scanner and
// driver.Valuer interfaces, stored as a jsonb column.
type PermissionMap map[string]bool

// Scan implements the sql.Scanner interface
func (p *PermissionMap) Scan(value interface{}) error {
	if value == nil {
		*p = PermissionMap{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported Scan, storing driver.Value type %T into type %T", value, p)
	}

	return json.Unmarshal(raw, p)
}

// Value implements the driver.Valuer interface
func (p PermissionMap) Value() (driver.Value, error) {
	if len(p) == 0 {
		return "{}", nil
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

type Admin struct {
	ID           uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email        string        `gorm:"type:citext;uniqueIndex;not null" json:"email"`
	PasswordHash string        `gorm:"type:text;not null" json:"-"`
	Name         string        `gorm:"type:text;not null" json:"name"`
	Role         AdminRole     `gorm:"type:text;not null;default:'admin'" json:"role"`
	Permissions  PermissionMap `gorm:"type:jsonb;not null;default:'{}'" json:"permissions"`

	// Lockout counters: five failed logins lock the account for a window
	FailedAttempts int        `gorm:"not null;default:0" json:"-"`
	LockedUntil    *time.Time `json:"-"`

	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Locked reports whether the lockout window is still open.
func (a *Admin) Locked(now time.Time) bool {
	return a.LockedUntil != nil && now.Before(*a.LockedUntil)
}
