// internal/service/application.go
package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/ajaypanchal761/createbharat-sub000/internal/domain"
	"github.com/ajaypanchal761/createbharat-sub000/internal/email"
	"github.com/ajaypanchal761/createbharat-sub000/internal/model"
	"github.com/ajaypanchal761/createbharat-sub000/internal/repository"
	"github.com/ajaypanchal761/createbharat-sub000/internal/storage"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// MaxResumeSize caps uploaded resumes at 10 MiB.
const MaxResumeSize = 10 << 20

type ApplicationService struct {
	repo         repository.ApplicationRepositoryIface
	internships  repository.InternshipRepositoryIface
	companies    repository.CompanyRepositoryIface
	users        repository.UserRepositoryIface
	resumes      storage.BlobStore
	emailService email.Sender
	validate     *validator.Validate
}

func NewApplicationService(
	repo repository.ApplicationRepositoryIface,
	internships repository.InternshipRepositoryIface,
	companies repository.CompanyRepositoryIface,
	users repository.UserRepositoryIface,
	resumes storage.BlobStore,
	emailService email.Sender,
) *ApplicationService {
	return &ApplicationService{
		repo:         repo,
		internships:  internships,
		companies:    companies,
		users:        users,
		resumes:      resumes,
		emailService: emailService,
		validate:     validator.New(),
	}
}

type ApplyInput struct {
	CoverLetter    string
	ResumeFilename string `validate:"required"`
	ResumeSize     int64  `validate:"gt=0,lte=10485760"`
	Resume         io.Reader
}

// Apply files an application with the resume stored in GridFS. The unique
// index on (internship_id, user_id) is the double-apply guard; when it
// fires the already-stored blob is removed again.
func (s *ApplicationService) Apply(ctx context.Context, userID, internshipID uuid.UUID, input ApplyInput) (*model.Application, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	internship, err := s.internships.FindByID(ctx, internshipID)
	if err != nil {
		return nil, err
	}
	if !internship.IsOpen {
		return nil, domain.ErrInternshipClosed
	}
	if internship.ApplyBy != nil && time.Now().After(*internship.ApplyBy) {
		return nil, domain.ErrInternshipClosed
	}

	fileID, err := s.resumes.Put(ctx, input.ResumeFilename, io.LimitReader(input.Resume, MaxResumeSize), map[string]string{
		"user_id":       userID.String(),
		"internship_id": internshipID.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("storing resume: %w", err)
	}

	application := &model.Application{
		InternshipID:   internshipID,
		UserID:         userID,
		CompanyID:      internship.CompanyID,
		Status:         model.ApplicationPending,
		CoverLetter:    input.CoverLetter,
		ResumeFileID:   fileID,
		ResumeFilename: input.ResumeFilename,
		ResumeSize:     input.ResumeSize,
	}

	if err := s.repo.Create(ctx, application); err != nil {
		if removeErr := s.resumes.Remove(ctx, fileID); removeErr != nil {
			slog.Warn("removing orphaned resume failed", "error", removeErr, "file", fileID)
		}
		return nil, err
	}

	if err := s.internships.IncrementApplicants(ctx, internshipID); err != nil {
		slog.Warn("incrementing applicant count failed", "error", err, "internship", internshipID)
	}
	if err := s.companies.AdjustCounters(ctx, internship.CompanyID, 0, 1); err != nil {
		slog.Warn("adjusting company counters failed", "error", err, "company", internship.CompanyID)
	}

	return application, nil
}

func (s *ApplicationService) Get(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ApplicationService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.Application, error) {
	return s.repo.FindByUser(ctx, userID)
}

// ListByInternship returns the applicant list for a posting the company owns.
func (s *ApplicationService) ListByInternship(ctx context.Context, companyID, internshipID uuid.UUID) ([]*model.Application, error) {
	internship, err := s.internships.FindByID(ctx, internshipID)
	if err != nil {
		return nil, err
	}
	if internship.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return s.repo.FindByInternship(ctx, internshipID)
}

// UpdateStatus moves an application through the company-driven transitions.
// The applicant is notified by email best effort.
func (s *ApplicationService) UpdateStatus(ctx context.Context, companyID, applicationID uuid.UUID, next model.ApplicationStatus) (*model.Application, error) {
	application, err := s.repo.FindByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if application.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	if next == model.ApplicationWithdrawn {
		// Withdrawal belongs to the applicant
		return nil, domain.ErrInvalidTransition
	}
	if !application.Status.CanTransition(next) {
		return nil, domain.ErrInvalidTransition
	}

	application.Status = next
	if err := s.repo.Update(ctx, application); err != nil {
		return nil, err
	}

	s.notifyStatus(ctx, application)
	return application, nil
}

// Withdraw is the applicant-side transition.
func (s *ApplicationService) Withdraw(ctx context.Context, userID, applicationID uuid.UUID) (*model.Application, error) {
	application, err := s.repo.FindByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if application.UserID != userID {
		return nil, domain.ErrForbidden
	}
	if !application.Status.CanTransition(model.ApplicationWithdrawn) {
		return nil, domain.ErrInvalidTransition
	}

	application.Status = model.ApplicationWithdrawn
	if err := s.repo.Update(ctx, application); err != nil {
		return nil, err
	}
	return application, nil
}

// ResumeInfo loads an application for resume access. The applicant and the
// posting company may read it.
func (s *ApplicationService) ResumeInfo(ctx context.Context, principalID, applicationID uuid.UUID) (*model.Application, error) {
	application, err := s.repo.FindByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if application.UserID != principalID && application.CompanyID != principalID {
		return nil, domain.ErrForbidden
	}
	return application, nil
}

// StreamResume copies the stored resume blob to w.
func (s *ApplicationService) StreamResume(ctx context.Context, application *model.Application, w io.Writer) error {
	if _, err := s.resumes.Get(ctx, application.ResumeFileID, w); err != nil {
		return fmt.Errorf("reading resume: %w", err)
	}
	return nil
}

func (s *ApplicationService) notifyStatus(ctx context.Context, application *model.Application) {
	user, err := s.users.FindByID(ctx, application.UserID)
	if err != nil {
		slog.Warn("loading applicant for notification failed", "error", err, "application", application.ID)
		return
	}
	internship, err := s.internships.FindByID(ctx, application.InternshipID)
	if err != nil {
		slog.Warn("loading internship for notification failed", "error", err, "application", application.ID)
		return
	}

	if err := s.emailService.SendEmail(email.EmailData{
		To:           user.Email,
		FromName:     "CreateBharat",
		Subject:      fmt.Sprintf("Update on your application for %s", internship.Title),
		TemplateName: "application_status",
		TemplateData: map[string]string{
			"Name":   user.FirstName,
			"Title":  internship.Title,
			"Status": string(application.Status),
		},
	}); err != nil {
		slog.Warn("application status email failed", "error", err, "application", application.ID)
	}
}
