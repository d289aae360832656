// internal/model/training.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type TrainingCourse struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title       string    `gorm:"type:text;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `gorm:"type:text;index" json:"category"`
	ImageURL    string    `gorm:"type:text" json:"image_url"`

	// Certificate fee in paise; zero means free certificate
	CertificateFee int64 `gorm:"not null;default:0" json:"certificate_fee"`

	IsPublished bool      `gorm:"not null;default:false" json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Modules []TrainingModule `gorm:"foreignKey:CourseID" json:"modules,omitempty"`
}

type TrainingModule struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CourseID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_module_course_number" json:"course_id"`
	Number   int       `gorm:"not null;uniqueIndex:idx_module_course_number" json:"number"`
	Title    string    `gorm:"type:text;not null" json:"title"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Topics []TrainingTopic `gorm:"foreignKey:ModuleID" json:"topics,omitempty"`
}

type TrainingTopic struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ModuleID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_topic_module_number" json:"module_id"`
	Number   int       `gorm:"not null;uniqueIndex:idx_topic_module_number" json:"number"`
	Title    string    `gorm:"type:text;not null" json:"title"`
	Content  string    `gorm:"type:text" json:"content"`
	VideoURL string    `gorm:"type:text" json:"video_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Quiz *TrainingQuiz `gorm:"foreignKey:TopicID" json:"quiz,omitempty"`
}

type TrainingQuiz struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	TopicID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"topic_id"`
	Title       string    `gorm:"type:text;not null" json:"title"`
	PassPercent int       `gorm:"not null;default:60" json:"pass_percent"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Questions []QuizQuestion `gorm:"foreignKey:QuizID" json:"questions,omitempty"`
}

type QuizQuestion struct {
	ID      uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	QuizID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"quiz_id"`
	Text    string     `gorm:"type:text;not null" json:"text"`
	Options Categories `gorm:"type:text[];not null" json:"options"`
	// Index into Options; never serialized to learners
	Answer int `gorm:"not null" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// CompletedSet stores completed topic/quiz ids as a jsonb array.
type CompletedSet []uuid.UUID

// Contains reports whether id is already in the set.
func (c CompletedSet) Contains(id uuid.UUID) bool {
	for _, v := range c {
		if v == id {
			return true
		}
	}
	return false
}

// Scan implements the sql.Scanner interface
func (c *CompletedSet) Scan(value interface{}) error {
	if value == nil {
		*c = CompletedSet{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported Scan, storing driver.Value type %T into type %T", value, c)
	}

	return json.Unmarshal(raw, c)
}

// Value implements the driver.Valuer interface
func (c CompletedSet) Value() (driver.Value, error) {
	if len(c) == 0 {
		return "[]", nil
	}
	raw, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

type UserTrainingProgress struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_progress_user_course" json:"user_id"`
	CourseID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_progress_user_course" json:"course_id"`

	CompletedTopics CompletedSet `gorm:"type:jsonb;not null;default:'[]'" json:"completed_topics"`
	PassedQuizzes   CompletedSet `gorm:"type:jsonb;not null;default:'[]'" json:"passed_quizzes"`

	// Certificate issue gated on payment when the course carries a fee
	CertificateIssued bool          `gorm:"not null;default:false" json:"certificate_issued"`
	CertificateNo     string        `gorm:"type:text" json:"certificate_no,omitempty"`
	Amount            int64         `gorm:"not null;default:0" json:"amount"` // paise, copied from the course fee at order time
	PaymentStatus     PaymentStatus `gorm:"type:text;not null;default:'pending'" json:"payment_status"`
	RazorpayOrderID   string        `gorm:"type:varchar(100)" json:"razorpay_order_id,omitempty"`
	RazorpayPaymentID string        `gorm:"type:varchar(100)" json:"razorpay_payment_id,omitempty"`
	PaidAt            *time.Time    `json:"paid_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Course TrainingCourse `gorm:"foreignKey:CourseID" json:"course,omitempty"`
}
