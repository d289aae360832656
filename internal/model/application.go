// internal/model/application.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "pending"
	ApplicationShortlisted ApplicationStatus = "shortlisted"
	ApplicationRejected    ApplicationStatus = "rejected"
	ApplicationHired       ApplicationStatus = "hired"
	ApplicationWithdrawn   ApplicationStatus = "withdrawn"
)

// applicationTransitions holds the allowed status moves. The company moves
// pending applications forward; only the applicant can withdraw.
var applicationTransitions = map[ApplicationStatus][]ApplicationStatus{
	ApplicationPending:     {ApplicationShortlisted, ApplicationRejected, ApplicationWithdrawn},
	ApplicationShortlisted: {ApplicationHired, ApplicationRejected, ApplicationWithdrawn},
}

// CanTransition reports whether moving from to next is a legal move.
func (s ApplicationStatus) CanTransition(next ApplicationStatus) bool {
	for _, allowed := range applicationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Application struct {
	ID           uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	InternshipID uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_application_internship_user" json:"internship_id"`
	UserID       uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_application_internship_user" json:"user_id"`
	CompanyID    uuid.UUID         `gorm:"type:uuid;not null;index" json:"company_id"`
	Status       ApplicationStatus `gorm:"type:text;not null;default:'pending'" json:"status"`
	CoverLetter  string            `gorm:"type:text" json:"cover_letter"`

	// Resume blob lives in GridFS; only metadata is kept here
	ResumeFileID   string `gorm:"type:text" json:"resume_file_id"`
	ResumeFilename string `gorm:"type:text" json:"resume_filename"`
	ResumeSize     int64  `gorm:"not null;default:0" json:"resume_size"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Internship Internship `gorm:"foreignKey:InternshipID" json:"internship,omitempty"`
	User       User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
