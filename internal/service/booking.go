// internal/service/booking.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ajaypanchal761/createbharat-sub000/internal/domain"
	"github.com/ajaypanchal761/createbharat-sub000/internal/email"
	"github.com/ajaypanchal761/createbharat-sub000/internal/model"
	"github.com/ajaypanchal761/createbharat-sub000/internal/payment"
	"github.com/ajaypanchal761/createbharat-sub000/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type BookingService struct {
	repo         repository.BookingRepositoryIface
	mentors      repository.MentorRepositoryIface
	gateway      payment.Gateway
	emailService email.Sender
	validate     *validator.Validate
}

func NewBookingService(
	repo repository.BookingRepositoryIface,
	mentors repository.MentorRepositoryIface,
	gateway payment.Gateway,
	emailService email.Sender,
) *BookingService {
	return &BookingService{
		repo:         repo,
		mentors:      mentors,
		gateway:      gateway,
		emailService: emailService,
		validate:     validator.New(),
	}
}

type BookingInput struct {
	MentorID    uuid.UUID  `json:"mentor_id" validate:"required"`
	SessionType string     `json:"session_type" validate:"required,oneof=chat call video"`
	ScheduledAt *time.Time `json:"scheduled_at"`
	Message     string     `json:"message"`
}

// Create books a session at the mentor's current price for that session
// type. The booking starts pending; payment happens after the mentor
// accepts.
func (s *BookingService) Create(ctx context.Context, userID uuid.UUID, input BookingInput) (*model.MentorBooking, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	mentor, err := s.mentors.FindByID(ctx, input.MentorID)
	if err != nil {
		return nil, err
	}
	if mentor.IsBlocked || !mentor.IsActive {
		return nil, domain.ErrMentorNotFound
	}

	sessionType := model.SessionType(input.SessionType)
	amount, err := mentor.PriceFor(sessionType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	booking := &model.MentorBooking{
		MentorID:    input.MentorID,
		UserID:      userID,
		SessionType: sessionType,
		ScheduledAt: input.ScheduledAt,
		Message:     input.Message,
		Amount:      amount,
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *BookingService) Get(ctx context.Context, id uuid.UUID) (*model.MentorBooking, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *BookingService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*model.MentorBooking, error) {
	return s.repo.FindByUser(ctx, userID)
}

func (s *BookingService) ListByMentor(ctx context.Context, mentorID uuid.UUID) ([]*model.MentorBooking, error) {
	return s.repo.FindByMentor(ctx, mentorID)
}

// Respond is the mentor's accept or reject decision on a pending booking.
func (s *BookingService) Respond(ctx context.Context, mentorID, bookingID uuid.UUID, accept bool) (*model.MentorBooking, error) {
	booking, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.MentorID != mentorID {
		return nil, domain.ErrForbidden
	}

	next := model.BookingRejected
	if accept {
		next = model.BookingAccepted
	}
	if !booking.Status.CanTransition(next) {
		return nil, domain.ErrInvalidTransition
	}

	booking.Status = next
	if err := s.repo.Update(ctx, booking); err != nil {
		return nil, err
	}

	s.notifyUpdate(booking)
	return booking, nil
}

// CreatePaymentOrder opens a gateway order for an accepted booking. Calling
// it again before payment reuses a fresh order; calling it after payment
// fails.
func (s *BookingService) CreatePaymentOrder(ctx context.Context, userID, bookingID uuid.UUID) (*model.MentorBooking, error) {
	booking, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, domain.ErrForbidden
	}
	if booking.Status != model.BookingAccepted {
		return nil, domain.ErrInvalidTransition
	}
	if booking.PaymentStatus == model.PaymentCompleted {
		return nil, domain.ErrAlreadyPaid
	}

	orderID, err := s.gateway.CreateOrder(ctx, booking.Amount, "booking_"+bookingID.String(), map[string]string{
		"booking_id": bookingID.String(),
		"user_id":    userID.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("creating payment order: %w", err)
	}

	booking.RazorpayOrderID = orderID
	if err := s.repo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

type PaymentCallbackInput struct {
	OrderID   string `json:"razorpay_order_id" validate:"required"`
	PaymentID string `json:"razorpay_payment_id" validate:"required"`
	Signature string `json:"razorpay_signature" validate:"required"`
}

// ConfirmPayment verifies the checkout callback and marks the booking paid.
// A completed payment stays completed; replaying the callback is a no-op
// rejected with ErrAlreadyPaid.
func (s *BookingService) ConfirmPayment(ctx context.Context, userID, bookingID uuid.UUID, input PaymentCallbackInput) (*model.MentorBooking, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	booking, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, domain.ErrForbidden
	}
	if booking.PaymentStatus == model.PaymentCompleted {
		return nil, domain.ErrAlreadyPaid
	}
	if booking.RazorpayOrderID == "" || booking.RazorpayOrderID != input.OrderID {
		return nil, domain.ErrBadPaymentSignature
	}

	if !s.gateway.VerifySignature(input.OrderID, input.PaymentID, input.Signature) {
		return nil, domain.ErrBadPaymentSignature
	}

	now := time.Now()
	booking.PaymentStatus = model.PaymentCompleted
	booking.RazorpayPaymentID = input.PaymentID
	booking.PaidAt = &now

	if err := s.repo.Update(ctx, booking); err != nil {
		return nil, err
	}

	s.notifyUpdate(booking)
	return booking, nil
}

// Complete closes out a delivered session. Mentor-only.
func (s *BookingService) Complete(ctx context.Context, mentorID, bookingID uuid.UUID) (*model.MentorBooking, error) {
	booking, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.MentorID != mentorID {
		return nil, domain.ErrForbidden
	}
	if booking.PaymentStatus != model.PaymentCompleted {
		return nil, domain.ErrPaymentNotCompleted
	}
	if !booking.Status.CanTransition(model.BookingCompleted) {
		return nil, domain.ErrInvalidTransition
	}

	booking.Status = model.BookingCompleted
	if err := s.repo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// Cancel is available to the booking user while the session has not been
// delivered. A paid booking is refunded in full; refund failure is logged
// and the cancellation proceeds.
func (s *BookingService) Cancel(ctx context.Context, userID, bookingID uuid.UUID) (*model.MentorBooking, error) {
	booking, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, domain.ErrForbidden
	}
	if !booking.Status.CanTransition(model.BookingCancelled) {
		return nil, domain.ErrInvalidTransition
	}

	if booking.PaymentStatus == model.PaymentCompleted {
		if _, err := s.gateway.Refund(ctx, booking.RazorpayPaymentID, booking.Amount); err != nil {
			slog.Error("refund failed", "error", err, "booking", bookingID, "payment", booking.RazorpayPaymentID)
		} else {
			booking.PaymentStatus = model.PaymentRefunded
		}
	}

	booking.Status = model.BookingCancelled
	if err := s.repo.Update(ctx, booking); err != nil {
		return nil, err
	}

	s.notifyUpdate(booking)
	return booking, nil
}

type ReviewInput struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment"`
}

// Review records a one-time rating on a completed session and folds it into
// the mentor's running average.
func (s *BookingService) Review(ctx context.Context, userID, bookingID uuid.UUID, input ReviewInput) (*model.MentorBooking, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	booking, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, domain.ErrForbidden
	}
	if booking.Status != model.BookingCompleted {
		return nil, domain.ErrInvalidTransition
	}
	if booking.ReviewedAt != nil {
		return nil, domain.ErrAlreadyReviewed
	}

	now := time.Now()
	booking.ReviewRating = input.Rating
	booking.ReviewComment = input.Comment
	booking.ReviewedAt = &now

	if err := s.repo.Update(ctx, booking); err != nil {
		return nil, err
	}

	if err := s.mentors.ApplyReview(ctx, booking.MentorID, input.Rating); err != nil {
		slog.Warn("applying review to mentor rating failed", "error", err, "mentor", booking.MentorID)
	}

	return booking, nil
}

// MarkSettled records an offline payout to the mentor. Admin-only.
func (s *BookingService) MarkSettled(ctx context.Context, bookingID uuid.UUID) (*model.MentorBooking, error) {
	booking, err := s.repo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.PaymentStatus != model.PaymentCompleted {
		return nil, domain.ErrPaymentNotCompleted
	}

	booking.IsSettled = true
	if err := s.repo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *BookingService) notifyUpdate(booking *model.MentorBooking) {
	if booking.User.Email == "" {
		// Preloads are not guaranteed on every path
		return
	}

	if err := s.emailService.SendEmail(email.EmailData{
		To:           booking.User.Email,
		FromName:     "CreateBharat",
		Subject:      "Update on your mentor session",
		TemplateName: "booking_update",
		TemplateData: map[string]string{
			"Name":    booking.User.FirstName,
			"Mentor":  booking.Mentor.Name,
			"Status":  string(booking.Status),
			"Session": string(booking.SessionType),
		},
	}); err != nil {
		slog.Warn("booking update email failed", "error", err, "booking", booking.ID)
	}
}
