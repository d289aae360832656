// internal/model/mentor.go
package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Categories is a custom type that implements the sql.Scanner and
// driver.Valuer interfaces, stored as a text[] column.
type Categories []string

// Scan implements the sql.Scanner interface
func (c *Categories) Scan(value interface{}) error {
	if value == nil {
		*c = []string{}
		return nil
	}

	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("unsupported Scan, storing driver.Value type %T into type %T", value, c)
	}

	trimmed := strings.Trim(str, "{}")
	if trimmed == "" {
		*c = []string{}
		return nil
	}
	*c = strings.Split(trimmed, ",")
	return nil
}

// Value implements the driver.Valuer interface
func (c Categories) Value() (driver.Value, error) {
	if len(c) == 0 {
		return "{}", nil
	}
	return "{" + strings.Join(c, ",") + "}", nil
}

type Mentor struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email        string     `gorm:"type:citext;uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"type:text;not null" json:"-"`
	Name         string     `gorm:"type:text;not null" json:"name"`
	Title        string     `gorm:"type:text" json:"title"`
	Bio          string     `gorm:"type:text" json:"bio"`
	AvatarURL    string     `gorm:"type:text" json:"avatar_url"`
	Categories   Categories `gorm:"type:text[];not null;default:'{}'" json:"categories"`
	Experience   int        `gorm:"not null;default:0" json:"experience_years"`

	// Per-session pricing in paise
	ChatPrice  int64 `gorm:"not null;default:0" json:"chat_price"`
	CallPrice  int64 `gorm:"not null;default:0" json:"call_price"`
	VideoPrice int64 `gorm:"not null;default:0" json:"video_price"`

	Rating      float64 `gorm:"not null;default:0" json:"rating"`
	ReviewCount int     `gorm:"not null;default:0" json:"review_count"`

	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	IsBlocked bool      `gorm:"not null;default:false" json:"is_blocked"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PriceFor returns the mentor's price in paise for a session type.
func (m *Mentor) PriceFor(session SessionType) (int64, error) {
	switch session {
	case SessionChat:
		return m.ChatPrice, nil
	case SessionCall:
		return m.CallPrice, nil
	case SessionVideo:
		return m.VideoPrice, nil
	default:
		return 0, fmt.Errorf("unknown session type: %s", session)
	}
}
