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

func newLegalService(repo *mocks.MockLegalRepositoryIface, gateway *mocks.MockGateway) *service.LegalService {
	return service.NewLegalService(repo, gateway, nil, nil)
}

func TestLegalSubmit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	serviceID := uuid.New()

	t.Run("submission snapshots the service price", func(t *testing.T) {
		repo := mocks.NewMockLegalRepositoryIface(ctrl)
		repo.EXPECT().FindServiceByID(gomock.Any(), serviceID).Return(&model.LegalService{
			ID:       serviceID,
			Name:     "GST Registration",
			Price:    250000,
			IsActive: true,
		}, nil)
		repo.EXPECT().CreateSubmission(gomock.Any(), gomock.Any()).Return(nil)

		svc := newLegalService(repo, mocks.NewMockGateway(ctrl))
		submission, err := svc.Submit(context.Background(), userID, service.SubmissionInput{
			ServiceID: serviceID,
			Details:   "New proprietorship in Indore",
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(250000), submission.Amount)
		assert.Equal(t, userID, submission.UserID)
	})

	t.Run("a disabled service rejects submissions", func(t *testing.T) {
		repo := mocks.NewMockLegalRepositoryIface(ctrl)
		repo.EXPECT().FindServiceByID(gomock.Any(), serviceID).Return(&model.LegalService{ID: serviceID, IsActive: false}, nil)

		svc := newLegalService(repo, mocks.NewMockGateway(ctrl))
		_, err := svc.Submit(context.Background(), userID, service.SubmissionInput{
			ServiceID: serviceID,
			Details:   "anything",
		})

		assert.ErrorIs(t, err, domain.ErrServiceNotFound)
	})
}

func TestLegalSubmissionStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	submissionID := uuid.New()

	paid := func(status model.SubmissionStatus) *model.LegalSubmission {
		now := time.Now()
		return &model.LegalSubmission{
			ID:                submissionID,
			UserID:            uuid.New(),
			ServiceID:         uuid.New(),
			Status:            status,
			Amount:            250000,
			PaymentStatus:     model.PaymentCompleted,
			RazorpayPaymentID: "pay_456",
			PaidAt:            &now,
		}
	}

	t.Run("work starts only after payment", func(t *testing.T) {
		submission := paid(model.SubmissionPending)
		submission.PaymentStatus = model.PaymentPending
		submission.RazorpayPaymentID = ""
		submission.PaidAt = nil

		repo := mocks.NewMockLegalRepositoryIface(ctrl)
		repo.EXPECT().FindSubmissionByID(gomock.Any(), submissionID).Return(submission, nil)

		svc := newLegalService(repo, mocks.NewMockGateway(ctrl))
		_, err := svc.UpdateSubmissionStatus(context.Background(), submissionID, model.SubmissionInProgress, "")

		assert.ErrorIs(t, err, domain.ErrPaymentNotCompleted)
	})

	t.Run("rejecting a paid submission refunds it", func(t *testing.T) {
		submission := paid(model.SubmissionInProgress)

		repo := mocks.NewMockLegalRepositoryIface(ctrl)
		gateway := mocks.NewMockGateway(ctrl)

		repo.EXPECT().FindSubmissionByID(gomock.Any(), submissionID).Return(submission, nil)
		gateway.EXPECT().Refund(gomock.Any(), "pay_456", int64(250000)).Return("rfnd_789", nil)
		repo.EXPECT().UpdateSubmission(gomock.Any(), submission).Return(nil)

		svc := newLegalService(repo, gateway)
		out, err := svc.UpdateSubmissionStatus(context.Background(), submissionID, model.SubmissionRejected, "documents incomplete")

		assert.NoError(t, err)
		assert.Equal(t, model.SubmissionRejected, out.Status)
		assert.Equal(t, model.PaymentRefunded, out.PaymentStatus)
		assert.Equal(t, "rfnd_789", out.RazorpayRefundID)
		assert.Equal(t, "documents incomplete", out.Remarks)
	})

	t.Run("refund failure does not block the rejection", func(t *testing.T) {
		submission := paid(model.SubmissionInProgress)

		repo := mocks.NewMockLegalRepositoryIface(ctrl)
		gateway := mocks.NewMockGateway(ctrl)

		repo.EXPECT().FindSubmissionByID(gomock.Any(), submissionID).Return(submission, nil)
		gateway.EXPECT().Refund(gomock.Any(), "pay_456", int64(250000)).Return("", errors.New("gateway timeout"))
		repo.EXPECT().UpdateSubmission(gomock.Any(), submission).Return(nil)

		svc := newLegalService(repo, gateway)
		out, err := svc.UpdateSubmissionStatus(context.Background(), submissionID, model.SubmissionRejected, "")

		assert.NoError(t, err)
		assert.Equal(t, model.SubmissionRejected, out.Status)
		assert.Equal(t, model.PaymentCompleted, out.PaymentStatus)
	})

	t.Run("a completed submission is terminal", func(t *testing.T) {
		submission := paid(model.SubmissionCompleted)

		repo := mocks.NewMockLegalRepositoryIface(ctrl)
		repo.EXPECT().FindSubmissionByID(gomock.Any(), submissionID).Return(submission, nil)

		svc := newLegalService(repo, mocks.NewMockGateway(ctrl))
		_, err := svc.UpdateSubmissionStatus(context.Background(), submissionID, model.SubmissionInProgress, "")

		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("user cancel of a paid submission refunds it", func(t *testing.T) {
		submission := paid(model.SubmissionPending)
		userID := submission.UserID

		repo := mocks.NewMockLegalRepositoryIface(ctrl)
		gateway := mocks.NewMockGateway(ctrl)

		repo.EXPECT().FindSubmissionByID(gomock.Any(), submissionID).Return(submission, nil)
		gateway.EXPECT().Refund(gomock.Any(), "pay_456", int64(250000)).Return("rfnd_789", nil)
		repo.EXPECT().UpdateSubmission(gomock.Any(), submission).Return(nil)

		svc := newLegalService(repo, gateway)
		out, err := svc.CancelSubmission(context.Background(), userID, submissionID)

		assert.NoError(t, err)
		assert.Equal(t, model.SubmissionCancelled, out.Status)
		assert.Equal(t, model.PaymentRefunded, out.PaymentStatus)
	})

	t.Run("another user cannot cancel", func(t *testing.T) {
		submission := paid(model.SubmissionPending)

		repo := mocks.NewMockLegalRepositoryIface(ctrl)
		repo.EXPECT().FindSubmissionByID(gomock.Any(), submissionID).Return(submission, nil)

		svc := newLegalService(repo, mocks.NewMockGateway(ctrl))
		_, err := svc.CancelSubmission(context.Background(), uuid.New(), submissionID)

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}
