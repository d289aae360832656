package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/ajaypanchal761/createbharat-sub000/internal/domain"
	"github.com/ajaypanchal761/createbharat-sub000/internal/mocks"
	"github.com/ajaypanchal761/createbharat-sub000/internal/model"
	"github.com/ajaypanchal761/createbharat-sub000/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestApplicationApply(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	companyID := uuid.New()
	internshipID := uuid.New()

	openInternship := func() *model.Internship {
		return &model.Internship{
			ID:        internshipID,
			CompanyID: companyID,
			Title:     "Backend Intern",
			IsOpen:    true,
		}
	}

	applyInput := func() service.ApplyInput {
		return service.ApplyInput{
			CoverLetter:    "I would like to apply.",
			ResumeFilename: "resume.pdf",
			ResumeSize:     2048,
			Resume:         strings.NewReader("%PDF-1.4 fake"),
		}
	}

	t.Run("stores the resume and files the application", func(t *testing.T) {
		repo := mocks.NewMockApplicationRepositoryIface(ctrl)
		internships := mocks.NewMockInternshipRepositoryIface(ctrl)
		companies := mocks.NewMockCompanyRepositoryIface(ctrl)
		resumes := mocks.NewMockBlobStore(ctrl)

		internships.EXPECT().FindByID(gomock.Any(), internshipID).Return(openInternship(), nil)
		resumes.EXPECT().Put(gomock.Any(), "resume.pdf", gomock.Any(), gomock.Any()).Return("file_1", nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		internships.EXPECT().IncrementApplicants(gomock.Any(), internshipID).Return(nil)
		companies.EXPECT().AdjustCounters(gomock.Any(), companyID, 0, 1).Return(nil)

		svc := service.NewApplicationService(repo, internships, companies, mocks.NewMockUserRepositoryIface(ctrl), resumes, mocks.NewMockEmailSender(ctrl))
		application, err := svc.Apply(context.Background(), userID, internshipID, applyInput())

		assert.NoError(t, err)
		assert.Equal(t, "file_1", application.ResumeFileID)
		assert.Equal(t, companyID, application.CompanyID)
		assert.Equal(t, model.ApplicationPending, application.Status)
	})

	t.Run("closed posting rejects applications", func(t *testing.T) {
		internship := openInternship()
		internship.IsOpen = false

		internships := mocks.NewMockInternshipRepositoryIface(ctrl)
		internships.EXPECT().FindByID(gomock.Any(), internshipID).Return(internship, nil)

		svc := service.NewApplicationService(mocks.NewMockApplicationRepositoryIface(ctrl), internships, mocks.NewMockCompanyRepositoryIface(ctrl), mocks.NewMockUserRepositoryIface(ctrl), mocks.NewMockBlobStore(ctrl), mocks.NewMockEmailSender(ctrl))
		_, err := svc.Apply(context.Background(), userID, internshipID, applyInput())

		assert.ErrorIs(t, err, domain.ErrInternshipClosed)
	})

	t.Run("a past deadline closes the posting", func(t *testing.T) {
		internship := openInternship()
		deadline := time.Now().Add(-24 * time.Hour)
		internship.ApplyBy = &deadline

		internships := mocks.NewMockInternshipRepositoryIface(ctrl)
		internships.EXPECT().FindByID(gomock.Any(), internshipID).Return(internship, nil)

		svc := service.NewApplicationService(mocks.NewMockApplicationRepositoryIface(ctrl), internships, mocks.NewMockCompanyRepositoryIface(ctrl), mocks.NewMockUserRepositoryIface(ctrl), mocks.NewMockBlobStore(ctrl), mocks.NewMockEmailSender(ctrl))
		_, err := svc.Apply(context.Background(), userID, internshipID, applyInput())

		assert.ErrorIs(t, err, domain.ErrInternshipClosed)
	})

	t.Run("double apply removes the stored blob again", func(t *testing.T) {
		repo := mocks.NewMockApplicationRepositoryIface(ctrl)
		internships := mocks.NewMockInternshipRepositoryIface(ctrl)
		resumes := mocks.NewMockBlobStore(ctrl)

		internships.EXPECT().FindByID(gomock.Any(), internshipID).Return(openInternship(), nil)
		resumes.EXPECT().Put(gomock.Any(), "resume.pdf", gomock.Any(), gomock.Any()).Return("file_1", nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domain.ErrAlreadyApplied)
		resumes.EXPECT().Remove(gomock.Any(), "file_1").Return(nil)

		svc := service.NewApplicationService(repo, internships, mocks.NewMockCompanyRepositoryIface(ctrl), mocks.NewMockUserRepositoryIface(ctrl), resumes, mocks.NewMockEmailSender(ctrl))
		_, err := svc.Apply(context.Background(), userID, internshipID, applyInput())

		assert.ErrorIs(t, err, domain.ErrAlreadyApplied)
	})

	t.Run("oversized resume is invalid input", func(t *testing.T) {
		input := applyInput()
		input.ResumeSize = service.MaxResumeSize + 1

		svc := service.NewApplicationService(mocks.NewMockApplicationRepositoryIface(ctrl), mocks.NewMockInternshipRepositoryIface(ctrl), mocks.NewMockCompanyRepositoryIface(ctrl), mocks.NewMockUserRepositoryIface(ctrl), mocks.NewMockBlobStore(ctrl), mocks.NewMockEmailSender(ctrl))
		_, err := svc.Apply(context.Background(), userID, internshipID, input)

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestApplicationStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	companyID := uuid.New()
	applicationID := uuid.New()
	internshipID := uuid.New()

	pending := func() *model.Application {
		return &model.Application{
			ID:           applicationID,
			InternshipID: internshipID,
			UserID:       userID,
			CompanyID:    companyID,
			Status:       model.ApplicationPending,
		}
	}

	t.Run("company shortlists and the applicant is notified", func(t *testing.T) {
		application := pending()

		repo := mocks.NewMockApplicationRepositoryIface(ctrl)
		users := mocks.NewMockUserRepositoryIface(ctrl)
		internships := mocks.NewMockInternshipRepositoryIface(ctrl)
		emailSender := mocks.NewMockEmailSender(ctrl)

		repo.EXPECT().FindByID(gomock.Any(), applicationID).Return(application, nil)
		repo.EXPECT().Update(gomock.Any(), application).Return(nil)
		users.EXPECT().FindByID(gomock.Any(), userID).Return(&model.User{ID: userID, Email: "asha@example.com", FirstName: "Asha"}, nil)
		internships.EXPECT().FindByID(gomock.Any(), internshipID).Return(&model.Internship{ID: internshipID, Title: "Backend Intern"}, nil)
		emailSender.EXPECT().SendEmail(gomock.Any()).Return(nil)

		svc := service.NewApplicationService(repo, internships, mocks.NewMockCompanyRepositoryIface(ctrl), users, mocks.NewMockBlobStore(ctrl), emailSender)
		out, err := svc.UpdateStatus(context.Background(), companyID, applicationID, model.ApplicationShortlisted)

		assert.NoError(t, err)
		assert.Equal(t, model.ApplicationShortlisted, out.Status)
	})

	t.Run("company cannot withdraw on the applicant's behalf", func(t *testing.T) {
		repo := mocks.NewMockApplicationRepositoryIface(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), applicationID).Return(pending(), nil)

		svc := service.NewApplicationService(repo, mocks.NewMockInternshipRepositoryIface(ctrl), mocks.NewMockCompanyRepositoryIface(ctrl), mocks.NewMockUserRepositoryIface(ctrl), mocks.NewMockBlobStore(ctrl), mocks.NewMockEmailSender(ctrl))
		_, err := svc.UpdateStatus(context.Background(), companyID, applicationID, model.ApplicationWithdrawn)

		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("another company cannot touch the application", func(t *testing.T) {
		repo := mocks.NewMockApplicationRepositoryIface(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), applicationID).Return(pending(), nil)

		svc := service.NewApplicationService(repo, mocks.NewMockInternshipRepositoryIface(ctrl), mocks.NewMockCompanyRepositoryIface(ctrl), mocks.NewMockUserRepositoryIface(ctrl), mocks.NewMockBlobStore(ctrl), mocks.NewMockEmailSender(ctrl))
		_, err := svc.UpdateStatus(context.Background(), uuid.New(), applicationID, model.ApplicationShortlisted)

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("applicant withdraws their own application", func(t *testing.T) {
		application := pending()

		repo := mocks.NewMockApplicationRepositoryIface(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), applicationID).Return(application, nil)
		repo.EXPECT().Update(gomock.Any(), application).Return(nil)

		svc := service.NewApplicationService(repo, mocks.NewMockInternshipRepositoryIface(ctrl), mocks.NewMockCompanyRepositoryIface(ctrl), mocks.NewMockUserRepositoryIface(ctrl), mocks.NewMockBlobStore(ctrl), mocks.NewMockEmailSender(ctrl))
		out, err := svc.Withdraw(context.Background(), userID, applicationID)

		assert.NoError(t, err)
		assert.Equal(t, model.ApplicationWithdrawn, out.Status)
	})
}

func TestResumeAccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	companyID := uuid.New()
	applicationID := uuid.New()

	application := &model.Application{
		ID:           applicationID,
		UserID:       userID,
		CompanyID:    companyID,
		ResumeFileID: "file_1",
	}

	newSvc := func(repo *mocks.MockApplicationRepositoryIface) *service.ApplicationService {
		return service.NewApplicationService(repo, mocks.NewMockInternshipRepositoryIface(ctrl), mocks.NewMockCompanyRepositoryIface(ctrl), mocks.NewMockUserRepositoryIface(ctrl), mocks.NewMockBlobStore(ctrl), mocks.NewMockEmailSender(ctrl))
	}

	t.Run("the applicant may read their resume", func(t *testing.T) {
		repo := mocks.NewMockApplicationRepositoryIface(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), applicationID).Return(application, nil)

		got, err := newSvc(repo).ResumeInfo(context.Background(), userID, applicationID)
		assert.NoError(t, err)
		assert.Equal(t, "file_1", got.ResumeFileID)
	})

	t.Run("the posting company may read it", func(t *testing.T) {
		repo := mocks.NewMockApplicationRepositoryIface(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), applicationID).Return(application, nil)

		_, err := newSvc(repo).ResumeInfo(context.Background(), companyID, applicationID)
		assert.NoError(t, err)
	})

	t.Run("anyone else is refused", func(t *testing.T) {
		repo := mocks.NewMockApplicationRepositoryIface(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), applicationID).Return(application, nil)

		_, err := newSvc(repo).ResumeInfo(context.Background(), uuid.New(), applicationID)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}
