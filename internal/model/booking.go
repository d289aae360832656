// internal/model/booking.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type SessionType string

const (
	SessionChat  SessionType = "chat"
	SessionCall  SessionType = "call"
	SessionVideo SessionType = "video"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingAccepted  BookingStatus = "accepted"
	BookingRejected  BookingStatus = "rejected"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:  {BookingAccepted, BookingRejected, BookingCancelled},
	BookingAccepted: {BookingCompleted, BookingCancelled},
}

// CanTransition reports whether moving to next is a legal move.
func (s BookingStatus) CanTransition(next BookingStatus) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type MentorBooking struct {
	ID          uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	MentorID    uuid.UUID     `gorm:"type:uuid;not null;index" json:"mentor_id"`
	UserID      uuid.UUID     `gorm:"type:uuid;not null;index" json:"user_id"`
	SessionType SessionType   `gorm:"type:text;not null" json:"session_type"`
	ScheduledAt *time.Time    `json:"scheduled_at,omitempty"`
	Message     string        `gorm:"type:text" json:"message"`
	Status      BookingStatus `gorm:"type:text;not null;default:'pending'" json:"status"`

	// Payment fields, amount in paise
	Amount            int64         `gorm:"not null" json:"amount"`
	PaymentStatus     PaymentStatus `gorm:"type:text;not null;default:'pending'" json:"payment_status"`
	RazorpayOrderID   string        `gorm:"type:varchar(100);index" json:"razorpay_order_id,omitempty"`
	RazorpayPaymentID string        `gorm:"type:varchar(100)" json:"razorpay_payment_id,omitempty"`
	PaidAt            *time.Time    `json:"paid_at,omitempty"`

	// Review subrecord, set once after completion
	ReviewRating  int        `gorm:"not null;default:0" json:"review_rating,omitempty"`
	ReviewComment string     `gorm:"type:text" json:"review_comment,omitempty"`
	ReviewedAt    *time.Time `json:"reviewed_at,omitempty"`

	// Settlement flag: payout to the mentor handled offline
	IsSettled bool `gorm:"not null;default:false" json:"is_settled"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Mentor Mentor `gorm:"foreignKey:MentorID" json:"mentor,omitempty"`
	User   User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
