package service_test

import (
	"context"
	"errors"
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

func TestBookingCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	mentorID := uuid.New()
	mentor := &model.Mentor{
		ID:         mentorID,
		Name:       "Ravi Sharma",
		ChatPrice:  50000,
		CallPrice:  100000,
		VideoPrice: 150000,
		IsActive:   true,
	}

	t.Run("snapshots the mentor price for the session type", func(t *testing.T) {
		repo := mocks.NewMockBookingRepositoryIface(ctrl)
		mentors := mocks.NewMockMentorRepositoryIface(ctrl)

		mentors.EXPECT().FindByID(gomock.Any(), mentorID).Return(mentor, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		svc := service.NewBookingService(repo, mentors, mocks.NewMockGateway(ctrl), mocks.NewMockEmailSender(ctrl))
		booking, err := svc.Create(context.Background(), userID, service.BookingInput{
			MentorID:    mentorID,
			SessionType: "call",
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(100000), booking.Amount)
		assert.Equal(t, model.SessionCall, booking.SessionType)
	})

	t.Run("blocked mentor is not bookable", func(t *testing.T) {
		blocked := *mentor
		blocked.IsBlocked = true

		mentors := mocks.NewMockMentorRepositoryIface(ctrl)
		mentors.EXPECT().FindByID(gomock.Any(), mentorID).Return(&blocked, nil)

		svc := service.NewBookingService(mocks.NewMockBookingRepositoryIface(ctrl), mentors, mocks.NewMockGateway(ctrl), mocks.NewMockEmailSender(ctrl))
		_, err := svc.Create(context.Background(), userID, service.BookingInput{
			MentorID:    mentorID,
			SessionType: "chat",
		})

		assert.ErrorIs(t, err, domain.ErrMentorNotFound)
	})

	t.Run("unknown session type is invalid input", func(t *testing.T) {
		svc := service.NewBookingService(mocks.NewMockBookingRepositoryIface(ctrl), mocks.NewMockMentorRepositoryIface(ctrl), mocks.NewMockGateway(ctrl), mocks.NewMockEmailSender(ctrl))
		_, err := svc.Create(context.Background(), userID, service.BookingInput{
			MentorID:    mentorID,
			SessionType: "telepathy",
		})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestBookingPayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	bookingID := uuid.New()

	accepted := func() *model.MentorBooking {
		return &model.MentorBooking{
			ID:            bookingID,
			UserID:        userID,
			MentorID:      uuid.New(),
			SessionType:   model.SessionChat,
			Status:        model.BookingAccepted,
			PaymentStatus: model.PaymentPending,
			Amount:        50000,
		}
	}

	t.Run("creates an order for an accepted booking", func(t *testing.T) {
		booking := accepted()
		repo := mocks.NewMockBookingRepositoryIface(ctrl)
		gateway := mocks.NewMockGateway(ctrl)

		repo.EXPECT().FindByID(gomock.Any(), bookingID).Return(booking, nil)
		gateway.EXPECT().CreateOrder(gomock.Any(), int64(50000), "booking_"+bookingID.String(), gomock.Any()).Return("order_123", nil)
		repo.EXPECT().Update(gomock.Any(), booking).Return(nil)

		svc := service.NewBookingService(repo, mocks.NewMockMentorRepositoryIface(ctrl), gateway, mocks.NewMockEmailSender(ctrl))
		out, err := svc.CreatePaymentOrder(context.Background(), userID, bookingID)

		assert.NoError(t, err)
		assert.Equal(t, "order_123", out.RazorpayOrderID)
	})

	t.Run("pending booking cannot open an order", func(t *testing.T) {
		booking := accepted()
		booking.Status = model.BookingPending

		repo := mocks.NewMockBookingRepositoryIface(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), bookingID).Return(booking, nil)

		svc := service.NewBookingService(repo, mocks.NewMockMentorRepositoryIface(ctrl), mocks.NewMockGateway(ctrl), mocks.NewMockEmailSender(ctrl))
		_, err := svc.CreatePaymentOrder(context.Background(), userID, bookingID)

		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("confirm verifies the signature and marks paid", func(t *testing.T) {
		booking := accepted()
		booking.RazorpayOrderID = "order_123"

		repo := mocks.NewMockBookingRepositoryIface(ctrl)
		gateway := mocks.NewMockGateway(ctrl)

		repo.EXPECT().FindByID(gomock.Any(), bookingID).Return(booking, nil)
		gateway.EXPECT().VerifySignature("order_123", "pay_456", "sig").Return(true)
		repo.EXPECT().Update(gomock.Any(), booking).Return(nil)

		svc := service.NewBookingService(repo, mocks.NewMockMentorRepositoryIface(ctrl), gateway, mocks.NewMockEmailSender(ctrl))
		out, err := svc.ConfirmPayment(context.Background(), userID, bookingID, service.PaymentCallbackInput{
			OrderID:   "order_123",
			PaymentID: "pay_456",
			Signature: "sig",
		})

		assert.NoError(t, err)
		assert.Equal(t, model.PaymentCompleted, out.PaymentStatus)
		assert.Equal(t, "pay_456", out.RazorpayPaymentID)
		assert.NotNil(t, out.PaidAt)
	})

	t.Run("bad signature is rejected", func(t *testing.T) {
		booking := accepted()
		booking.RazorpayOrderID = "order_123"

		repo := mocks.NewMockBookingRepositoryIface(ctrl)
		gateway := mocks.NewMockGateway(ctrl)

		repo.EXPECT().FindByID(gomock.Any(), bookingID).Return(booking, nil)
		gateway.EXPECT().VerifySignature("order_123", "pay_456", "forged").Return(false)

		svc := service.NewBookingService(repo, mocks.NewMockMentorRepositoryIface(ctrl), gateway, mocks.NewMockEmailSender(ctrl))
		_, err := svc.ConfirmPayment(context.Background(), userID, bookingID, service.PaymentCallbackInput{
			OrderID:   "order_123",
			PaymentID: "pay_456",
			Signature: "forged",
		})

		assert.ErrorIs(t, err, domain.ErrBadPaymentSignature)
	})

	t.Run("replayed callback is rejected with already paid", func(t *testing.T) {
		booking := accepted()
		booking.RazorpayOrderID = "order_123"
		booking.PaymentStatus = model.PaymentCompleted

		repo := mocks.NewMockBookingRepositoryIface(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), bookingID).Return(booking, nil)

		svc := service.NewBookingService(repo, mocks.NewMockMentorRepositoryIface(ctrl), mocks.NewMockGateway(ctrl), mocks.NewMockEmailSender(ctrl))
		_, err := svc.ConfirmPayment(context.Background(), userID, bookingID, service.PaymentCallbackInput{
			OrderID:   "order_123",
			PaymentID: "pay_456",
			Signature: "sig",
		})

		assert.ErrorIs(t, err, domain.ErrAlreadyPaid)
	})

	t.Run("order id mismatch is rejected", func(t *testing.T) {
		booking := accepted()
		booking.RazorpayOrderID = "order_123"

		repo := mocks.NewMockBookingRepositoryIface(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), bookingID).Return(booking, nil)

		svc := service.NewBookingService(repo, mocks.NewMockMentorRepositoryIface(ctrl), mocks.NewMockGateway(ctrl), mocks.NewMockEmailSender(ctrl))
		_, err := svc.ConfirmPayment(context.Background(), userID, bookingID, service.PaymentCallbackInput{
			OrderID:   "order_999",
			PaymentID: "pay_456",
			Signature: "sig",
		})

		assert.ErrorIs(t, err, domain.ErrBadPaymentSignature)
	})
}

func TestBookingCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	bookingID := uuid.New()

	paid := func() *model.MentorBooking {
		now := time.Now()
		return &model.MentorBooking{
			ID:                bookingID,
			UserID:            userID,
			MentorID:          uuid.New(),
			Status:            model.BookingAccepted,
			PaymentStatus:     model.PaymentCompleted,
			RazorpayPaymentID: "pay_456",
			Amount:            50000,
			PaidAt:            &now,
		}
	}

	t.Run("paid booking is refunded on cancel", func(t *testing.T) {
		booking := paid()
		repo := mocks.NewMockBookingRepositoryIface(ctrl)
		gateway := mocks.NewMockGateway(ctrl)

		repo.EXPECT().FindByID(gomock.Any(), bookingID).Return(booking, nil)
		gateway.EXPECT().Refund(gomock.Any(), "pay_456", int64(50000)).Return("rfnd_789", nil)
		repo.EXPECT().Update(gomock.Any(), booking).Return(nil)

		svc := service.NewBookingService(repo, mocks.NewMockMentorRepositoryIface(ctrl), gateway, mocks.NewMockEmailSender(ctrl))
		out, err := svc.Cancel(context.Background(), userID, bookingID)

		assert.NoError(t, err)
		assert.Equal(t, model.BookingCancelled, out.Status)
		assert.Equal(t, model.PaymentRefunded, out.PaymentStatus)
	})

	t.Run("refund failure still cancels", func(t *testing.T) {
		booking := paid()
		repo := mocks.NewMockBookingRepositoryIface(ctrl)
		gateway := mocks.NewMockGateway(ctrl)

		repo.EXPECT().FindByID(gomock.Any(), bookingID).Return(booking, nil)
		gateway.EXPECT().Refund(gomock.Any(), "pay_456", int64(50000)).Return("", errors.New("gateway timeout"))
		repo.EXPECT().Update(gomock.Any(), booking).Return(nil)

		svc := service.NewBookingService(repo, mocks.NewMockMentorRepositoryIface(ctrl), gateway, mocks.NewMockEmailSender(ctrl))
		out, err := svc.Cancel(context.Background(), userID, bookingID)

		assert.NoError(t, err)
		assert.Equal(t, model.BookingCancelled, out.Status)
		assert.Equal(t, model.PaymentCompleted, out.PaymentStatus)
	})

	t.Run("completed session cannot be cancelled", func(t *testing.T) {
		booking := paid()
		booking.Status = model.BookingCompleted

		repo := mocks.NewMockBookingRepositoryIface(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), bookingID).Return(booking, nil)

		svc := service.NewBookingService(repo, mocks.NewMockMentorRepositoryIface(ctrl), mocks.NewMockGateway(ctrl), mocks.NewMockEmailSender(ctrl))
		_, err := svc.Cancel(context.Background(), userID, bookingID)

		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("another user cannot cancel", func(t *testing.T) {
		booking := paid()
		repo := mocks.NewMockBookingRepositoryIface(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), bookingID).Return(booking, nil)

		svc := service.NewBookingService(repo, mocks.NewMockMentorRepositoryIface(ctrl), mocks.NewMockGateway(ctrl), mocks.NewMockEmailSender(ctrl))
		_, err := svc.Cancel(context.Background(), uuid.New(), bookingID)

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}

func TestBookingReview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	mentorID := uuid.New()
	bookingID := uuid.New()

	completed := func() *model.MentorBooking {
		return &model.MentorBooking{
			ID:            bookingID,
			UserID:        userID,
			MentorID:      mentorID,
			Status:        model.BookingCompleted,
			PaymentStatus: model.PaymentCompleted,
		}
	}

	t.Run("review updates the mentor rating", func(t *testing.T) {
		booking := completed()
		repo := mocks.NewMockBookingRepositoryIface(ctrl)
		mentors := mocks.NewMockMentorRepositoryIface(ctrl)

		repo.EXPECT().FindByID(gomock.Any(), bookingID).Return(booking, nil)
		repo.EXPECT().Update(gomock.Any(), booking).Return(nil)
		mentors.EXPECT().ApplyReview(gomock.Any(), mentorID, 5).Return(nil)

		svc := service.NewBookingService(repo, mentors, mocks.NewMockGateway(ctrl), mocks.NewMockEmailSender(ctrl))
		out, err := svc.Review(context.Background(), userID, bookingID, service.ReviewInput{Rating: 5, Comment: "great session"})

		assert.NoError(t, err)
		assert.Equal(t, 5, out.ReviewRating)
		assert.NotNil(t, out.ReviewedAt)
	})

	t.Run("a booking can be reviewed once", func(t *testing.T) {
		booking := completed()
		reviewed := time.Now()
		booking.ReviewedAt = &reviewed

		repo := mocks.NewMockBookingRepositoryIface(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), bookingID).Return(booking, nil)

		svc := service.NewBookingService(repo, mocks.NewMockMentorRepositoryIface(ctrl), mocks.NewMockGateway(ctrl), mocks.NewMockEmailSender(ctrl))
		_, err := svc.Review(context.Background(), userID, bookingID, service.ReviewInput{Rating: 4})

		assert.ErrorIs(t, err, domain.ErrAlreadyReviewed)
	})

	t.Run("rating outside 1..5 is invalid", func(t *testing.T) {
		svc := service.NewBookingService(mocks.NewMockBookingRepositoryIface(ctrl), mocks.NewMockMentorRepositoryIface(ctrl), mocks.NewMockGateway(ctrl), mocks.NewMockEmailSender(ctrl))
		_, err := svc.Review(context.Background(), userID, bookingID, service.ReviewInput{Rating: 6})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
