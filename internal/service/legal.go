// internal/service/legal.go
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
	"github.com/ajaypanchal761/createbharat-sub000/internal/payment"
	"github.com/ajaypanchal761/createbharat-sub000/internal/repository"
	"github.com/ajaypanchal761/createbharat-sub000/internal/storage"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type LegalService struct {
	repo         repository.LegalRepositoryIface
	gateway      payment.Gateway
	mediaStore   storage.MediaStore
	emailService email.Sender
	validate     *validator.Validate
}

func NewLegalService(
	repo repository.LegalRepositoryIface,
	gateway payment.Gateway,
	mediaStore storage.MediaStore,
	emailService email.Sender,
) *LegalService {
	return &LegalService{
		repo:         repo,
		gateway:      gateway,
		mediaStore:   mediaStore,
		emailService: emailService,
		validate:     validator.New(),
	}
}

type LegalServiceInput struct {
	Name         string   `json:"name" validate:"required"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Price        int64    `json:"price" validate:"gt=0"`
	TurnaroundIn int      `json:"turnaround_days" validate:"gte=1"`
	Documents    []string `json:"required_documents"`
}

func (s *LegalService) CreateService(ctx context.Context, caID uuid.UUID, input LegalServiceInput) (*model.LegalService, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	service := &model.LegalService{
		CAID:         caID,
		Name:         input.Name,
		Description:  input.Description,
		Category:     input.Category,
		Price:        input.Price,
		TurnaroundIn: input.TurnaroundIn,
		Documents:    model.Categories(input.Documents),
	}

	if err := s.repo.CreateService(ctx, service); err != nil {
		return nil, err
	}
	return service, nil
}

func (s *LegalService) GetService(ctx context.Context, id uuid.UUID) (*model.LegalService, error) {
	return s.repo.FindServiceByID(ctx, id)
}

// ListServices returns the public catalog of active offerings.
func (s *LegalService) ListServices(ctx context.Context) ([]*model.LegalService, error) {
	return s.repo.FindAllServices(ctx, true)
}

// ListAllServices includes inactive offerings for the CA console.
func (s *LegalService) ListAllServices(ctx context.Context) ([]*model.LegalService, error) {
	return s.repo.FindAllServices(ctx, false)
}

func (s *LegalService) UpdateService(ctx context.Context, caID, id uuid.UUID, input LegalServiceInput) (*model.LegalService, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	service, err := s.serviceOwnedBy(ctx, caID, id)
	if err != nil {
		return nil, err
	}

	service.Name = input.Name
	service.Description = input.Description
	service.Category = input.Category
	service.Price = input.Price
	service.TurnaroundIn = input.TurnaroundIn
	service.Documents = model.Categories(input.Documents)

	if err := s.repo.UpdateService(ctx, service); err != nil {
		return nil, err
	}
	return service, nil
}

func (s *LegalService) SetServiceActive(ctx context.Context, caID, id uuid.UUID, active bool) (*model.LegalService, error) {
	service, err := s.serviceOwnedBy(ctx, caID, id)
	if err != nil {
		return nil, err
	}

	service.IsActive = active
	if err := s.repo.UpdateService(ctx, service); err != nil {
		return nil, err
	}
	return service, nil
}

func (s *LegalService) DeleteService(ctx context.Context, caID, id uuid.UUID) error {
	if _, err := s.serviceOwnedBy(ctx, caID, id); err != nil {
		return err
	}
	return s.repo.DeleteService(ctx, id)
}

type SubmissionInput struct {
	ServiceID uuid.UUID `json:"service_id" validate:"required"`
	Details   string    `json:"details" validate:"required"`
}

// Submit opens a submission at the service's current price. Payment happens
// in a separate step; work starts only once paid.
func (s *LegalService) Submit(ctx context.Context, userID uuid.UUID, input SubmissionInput) (*model.LegalSubmission, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	service, err := s.repo.FindServiceByID(ctx, input.ServiceID)
	if err != nil {
		return nil, err
	}
	if !service.IsActive {
		return nil, domain.ErrServiceNotFound
	}

	submission := &model.LegalSubmission{
		ServiceID: input.ServiceID,
		UserID:    userID,
		Details:   input.Details,
		Amount:    service.Price,
	}

	if err := s.repo.CreateSubmission(ctx, submission); err != nil {
		return nil, err
	}
	return submission, nil
}

func (s *LegalService) GetSubmission(ctx context.Context, id uuid.UUID) (*model.LegalSubmission, error) {
	return s.repo.FindSubmissionByID(ctx, id)
}

func (s *LegalService) ListSubmissionsByUser(ctx context.Context, userID uuid.UUID) ([]*model.LegalSubmission, error) {
	return s.repo.FindSubmissionsByUser(ctx, userID)
}

// ListSubmissions is the CA work queue, optionally filtered by status.
func (s *LegalService) ListSubmissions(ctx context.Context, status model.SubmissionStatus) ([]*model.LegalSubmission, error) {
	return s.repo.FindAllSubmissions(ctx, status)
}

// AttachDocument uploads a supporting file to Cloudinary and records it on
// the submission. The submitting user attaches before work starts; the CA
// attaches deliverables.
func (s *LegalService) AttachDocument(ctx context.Context, principalID, submissionID uuid.UUID, isCA bool, name string, r io.Reader) (*model.SubmissionDocument, error) {
	submission, err := s.repo.FindSubmissionByID(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	if !isCA && submission.UserID != principalID {
		return nil, domain.ErrForbidden
	}

	media, err := s.mediaStore.Upload(ctx, r, "legal-documents", submissionID.String()+"-"+uuid.NewString())
	if err != nil {
		return nil, fmt.Errorf("uploading document: %w", err)
	}

	doc := &model.SubmissionDocument{
		SubmissionID: submissionID,
		Name:         name,
		URL:          media.URL,
		PublicID:     media.PublicID,
	}

	if err := s.repo.AddDocument(ctx, doc); err != nil {
		if deleteErr := s.mediaStore.Delete(ctx, media.PublicID); deleteErr != nil {
			slog.Warn("removing orphaned document failed", "error", deleteErr, "public_id", media.PublicID)
		}
		return nil, err
	}
	return doc, nil
}

// CreatePaymentOrder opens a gateway order for a pending submission.
func (s *LegalService) CreatePaymentOrder(ctx context.Context, userID, submissionID uuid.UUID) (*model.LegalSubmission, error) {
	submission, err := s.repo.FindSubmissionByID(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	if submission.UserID != userID {
		return nil, domain.ErrForbidden
	}
	if submission.PaymentStatus == model.PaymentCompleted {
		return nil, domain.ErrAlreadyPaid
	}

	orderID, err := s.gateway.CreateOrder(ctx, submission.Amount, "legal_"+submissionID.String(), map[string]string{
		"submission_id": submissionID.String(),
		"user_id":       userID.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("creating payment order: %w", err)
	}

	submission.RazorpayOrderID = orderID
	if err := s.repo.UpdateSubmission(ctx, submission); err != nil {
		return nil, err
	}
	return submission, nil
}

// ConfirmPayment verifies the checkout callback and marks the submission
// paid. Replays are rejected with ErrAlreadyPaid.
func (s *LegalService) ConfirmPayment(ctx context.Context, userID, submissionID uuid.UUID, input PaymentCallbackInput) (*model.LegalSubmission, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	submission, err := s.repo.FindSubmissionByID(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	if submission.UserID != userID {
		return nil, domain.ErrForbidden
	}
	if submission.PaymentStatus == model.PaymentCompleted {
		return nil, domain.ErrAlreadyPaid
	}
	if submission.RazorpayOrderID == "" || submission.RazorpayOrderID != input.OrderID {
		return nil, domain.ErrBadPaymentSignature
	}

	if !s.gateway.VerifySignature(input.OrderID, input.PaymentID, input.Signature) {
		return nil, domain.ErrBadPaymentSignature
	}

	now := time.Now()
	submission.PaymentStatus = model.PaymentCompleted
	submission.RazorpayPaymentID = input.PaymentID
	submission.PaidAt = &now

	if err := s.repo.UpdateSubmission(ctx, submission); err != nil {
		return nil, err
	}

	s.notifyReceipt(submission)
	return submission, nil
}

// UpdateSubmissionStatus moves a submission through the CA-driven
// transitions. Rejecting a paid submission triggers a full refund; a failed
// refund is logged and the rejection still lands so the queue is never
// stuck on the gateway.
func (s *LegalService) UpdateSubmissionStatus(ctx context.Context, submissionID uuid.UUID, next model.SubmissionStatus, remarks string) (*model.LegalSubmission, error) {
	submission, err := s.repo.FindSubmissionByID(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	if !submission.Status.CanTransition(next) {
		return nil, domain.ErrInvalidTransition
	}
	if next == model.SubmissionInProgress && submission.PaymentStatus != model.PaymentCompleted {
		return nil, domain.ErrPaymentNotCompleted
	}

	if next == model.SubmissionRejected && submission.PaymentStatus == model.PaymentCompleted {
		refundID, err := s.gateway.Refund(ctx, submission.RazorpayPaymentID, submission.Amount)
		if err != nil {
			slog.Error("refund failed", "error", err, "submission", submissionID, "payment", submission.RazorpayPaymentID)
		} else {
			submission.PaymentStatus = model.PaymentRefunded
			submission.RazorpayRefundID = refundID
		}
	}

	submission.Status = next
	if remarks != "" {
		submission.Remarks = remarks
	}

	if err := s.repo.UpdateSubmission(ctx, submission); err != nil {
		return nil, err
	}
	return submission, nil
}

// CancelSubmission is the user-side cancellation, with the same refund rule
// as rejection.
func (s *LegalService) CancelSubmission(ctx context.Context, userID, submissionID uuid.UUID) (*model.LegalSubmission, error) {
	submission, err := s.repo.FindSubmissionByID(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	if submission.UserID != userID {
		return nil, domain.ErrForbidden
	}
	if !submission.Status.CanTransition(model.SubmissionCancelled) {
		return nil, domain.ErrInvalidTransition
	}

	if submission.PaymentStatus == model.PaymentCompleted {
		refundID, err := s.gateway.Refund(ctx, submission.RazorpayPaymentID, submission.Amount)
		if err != nil {
			slog.Error("refund failed", "error", err, "submission", submissionID, "payment", submission.RazorpayPaymentID)
		} else {
			submission.PaymentStatus = model.PaymentRefunded
			submission.RazorpayRefundID = refundID
		}
	}

	submission.Status = model.SubmissionCancelled
	if err := s.repo.UpdateSubmission(ctx, submission); err != nil {
		return nil, err
	}
	return submission, nil
}

func (s *LegalService) serviceOwnedBy(ctx context.Context, caID, id uuid.UUID) (*model.LegalService, error) {
	service, err := s.repo.FindServiceByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if service.CAID != caID {
		return nil, domain.ErrForbidden
	}
	return service, nil
}

func (s *LegalService) notifyReceipt(submission *model.LegalSubmission) {
	if submission.User.Email == "" {
		return
	}

	if err := s.emailService.SendEmail(email.EmailData{
		To:           submission.User.Email,
		FromName:     "CreateBharat",
		Subject:      "Payment received for your legal service request",
		TemplateName: "submission_receipt",
		TemplateData: map[string]string{
			"Name":    submission.User.FirstName,
			"Service": submission.Service.Name,
			"Amount":  fmt.Sprintf("%.2f", float64(submission.Amount)/100),
		},
	}); err != nil {
		slog.Warn("submission receipt email failed", "error", err, "submission", submission.ID)
	}
}
