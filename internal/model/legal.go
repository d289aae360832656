// internal/model/legal.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type LegalService struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CAID         uuid.UUID  `gorm:"type:uuid;not null;index" json:"ca_id"`
	Name         string     `gorm:"type:text;not null" json:"name"`
	Description  string     `gorm:"type:text" json:"description"`
	Category     string     `gorm:"type:text;index" json:"category"`
	Price        int64      `gorm:"not null" json:"price"` // paise
	TurnaroundIn int        `gorm:"not null;default:7" json:"turnaround_days"`
	Documents    Categories `gorm:"type:text[];not null;default:'{}'" json:"required_documents"`

	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SubmissionStatus string

const (
	SubmissionPending    SubmissionStatus = "pending"
	SubmissionInProgress SubmissionStatus = "in-progress"
	SubmissionCompleted  SubmissionStatus = "completed"
	SubmissionRejected   SubmissionStatus = "rejected"
	SubmissionCancelled  SubmissionStatus = "cancelled"
)

var submissionTransitions = map[SubmissionStatus][]SubmissionStatus{
	SubmissionPending:    {SubmissionInProgress, SubmissionRejected, SubmissionCancelled},
	SubmissionInProgress: {SubmissionCompleted, SubmissionRejected, SubmissionCancelled},
}

// CanTransition reports whether moving to next is a legal move.
func (s SubmissionStatus) CanTransition(next SubmissionStatus) bool {
	for _, allowed := range submissionTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// SubmissionDocument is a Cloudinary-hosted file attached to a submission.
type SubmissionDocument struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SubmissionID uuid.UUID `gorm:"type:uuid;not null;index" json:"submission_id"`
	Name         string    `gorm:"type:text;not null" json:"name"`
	URL          string    `gorm:"type:text;not null" json:"url"`
	PublicID     string    `gorm:"type:text;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type LegalSubmission struct {
	ID        uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ServiceID uuid.UUID        `gorm:"type:uuid;not null;index" json:"service_id"`
	UserID    uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	Details   string           `gorm:"type:text" json:"details"`
	Status    SubmissionStatus `gorm:"type:text;not null;default:'pending'" json:"status"`
	Remarks   string           `gorm:"type:text" json:"remarks"`

	Amount            int64         `gorm:"not null" json:"amount"` // paise
	PaymentStatus     PaymentStatus `gorm:"type:text;not null;default:'pending'" json:"payment_status"`
	RazorpayOrderID   string        `gorm:"type:varchar(100);index" json:"razorpay_order_id,omitempty"`
	RazorpayPaymentID string        `gorm:"type:varchar(100)" json:"razorpay_payment_id,omitempty"`
	RazorpayRefundID  string        `gorm:"type:varchar(100)" json:"razorpay_refund_id,omitempty"`
	PaidAt            *time.Time    `json:"paid_at,omitempty"`

	IsSettled bool `gorm:"not null;default:false" json:"is_settled"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Service   LegalService         `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	User      User                 `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Documents []SubmissionDocument `gorm:"foreignKey:SubmissionID" json:"documents,omitempty"`
}
