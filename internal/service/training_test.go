package service_test

import (
	"context"
	"fmt"
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

func TestSubmitQuiz(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	courseID := uuid.New()
	quizID := uuid.New()

	threeQuestionQuiz := func() *model.TrainingQuiz {
		return &model.TrainingQuiz{
			ID:          quizID,
			Title:       "GST basics",
			PassPercent: 60,
			Questions: []model.QuizQuestion{
				{Text: "Q1", Options: model.Categories{"a", "b"}, Answer: 0},
				{Text: "Q2", Options: model.Categories{"a", "b"}, Answer: 1},
				{Text: "Q3", Options: model.Categories{"a", "b"}, Answer: 1},
			},
		}
	}

	freshProgress := func() *model.UserTrainingProgress {
		return &model.UserTrainingProgress{
			ID:              uuid.New(),
			UserID:          userID,
			CourseID:        courseID,
			CompletedTopics: model.CompletedSet{},
			PassedQuizzes:   model.CompletedSet{},
		}
	}

	t.Run("passing score is recorded on the progress row", func(t *testing.T) {
		progress := freshProgress()

		repo := mocks.NewMockTrainingRepositoryIface(ctrl)
		repo.EXPECT().FindProgress(gomock.Any(), userID, courseID).Return(progress, nil)
		repo.EXPECT().FindQuizByID(gomock.Any(), quizID).Return(threeQuestionQuiz(), nil)
		repo.EXPECT().UpdateProgress(gomock.Any(), progress).Return(nil)

		svc := service.NewTrainingService(repo, mocks.NewMockGateway(ctrl))
		result, err := svc.SubmitQuiz(context.Background(), userID, courseID, quizID, service.QuizSubmitInput{Answers: []int{0, 1, 0}})

		assert.NoError(t, err)
		assert.Equal(t, 2, result.Score)
		assert.Equal(t, 3, result.Total)
		assert.Equal(t, 66, result.Percent)
		assert.True(t, result.Passed)
		assert.False(t, result.AlreadyHeld)
		assert.True(t, progress.PassedQuizzes.Contains(quizID))
	})

	t.Run("failing score leaves the progress row alone", func(t *testing.T) {
		progress := freshProgress()

		repo := mocks.NewMockTrainingRepositoryIface(ctrl)
		repo.EXPECT().FindProgress(gomock.Any(), userID, courseID).Return(progress, nil)
		repo.EXPECT().FindQuizByID(gomock.Any(), quizID).Return(threeQuestionQuiz(), nil)

		svc := service.NewTrainingService(repo, mocks.NewMockGateway(ctrl))
		result, err := svc.SubmitQuiz(context.Background(), userID, courseID, quizID, service.QuizSubmitInput{Answers: []int{1, 0, 0}})

		assert.NoError(t, err)
		assert.Equal(t, 0, result.Score)
		assert.False(t, result.Passed)
		assert.False(t, progress.PassedQuizzes.Contains(quizID))
	})

	t.Run("failing after a pass does not revoke it", func(t *testing.T) {
		progress := freshProgress()
		progress.PassedQuizzes = model.CompletedSet{quizID}

		repo := mocks.NewMockTrainingRepositoryIface(ctrl)
		repo.EXPECT().FindProgress(gomock.Any(), userID, courseID).Return(progress, nil)
		repo.EXPECT().FindQuizByID(gomock.Any(), quizID).Return(threeQuestionQuiz(), nil)

		svc := service.NewTrainingService(repo, mocks.NewMockGateway(ctrl))
		result, err := svc.SubmitQuiz(context.Background(), userID, courseID, quizID, service.QuizSubmitInput{Answers: []int{1, 0, 0}})

		assert.NoError(t, err)
		assert.False(t, result.Passed)
		assert.True(t, result.AlreadyHeld)
		assert.True(t, progress.PassedQuizzes.Contains(quizID))
	})

	t.Run("answer count must match the question count", func(t *testing.T) {
		repo := mocks.NewMockTrainingRepositoryIface(ctrl)
		repo.EXPECT().FindProgress(gomock.Any(), userID, courseID).Return(freshProgress(), nil)
		repo.EXPECT().FindQuizByID(gomock.Any(), quizID).Return(threeQuestionQuiz(), nil)

		svc := service.NewTrainingService(repo, mocks.NewMockGateway(ctrl))
		_, err := svc.SubmitQuiz(context.Background(), userID, courseID, quizID, service.QuizSubmitInput{Answers: []int{0}})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestCompleteTopic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	courseID := uuid.New()
	topicID := uuid.New()

	t.Run("marks the topic once", func(t *testing.T) {
		progress := &model.UserTrainingProgress{UserID: userID, CourseID: courseID, CompletedTopics: model.CompletedSet{}}

		repo := mocks.NewMockTrainingRepositoryIface(ctrl)
		repo.EXPECT().FindProgress(gomock.Any(), userID, courseID).Return(progress, nil)
		repo.EXPECT().FindTopicByID(gomock.Any(), topicID).Return(&model.TrainingTopic{ID: topicID}, nil)
		repo.EXPECT().UpdateProgress(gomock.Any(), progress).Return(nil)

		svc := service.NewTrainingService(repo, mocks.NewMockGateway(ctrl))
		out, err := svc.CompleteTopic(context.Background(), userID, courseID, topicID)

		assert.NoError(t, err)
		assert.True(t, out.CompletedTopics.Contains(topicID))
	})

	t.Run("repeating a completion is a no-op", func(t *testing.T) {
		progress := &model.UserTrainingProgress{UserID: userID, CourseID: courseID, CompletedTopics: model.CompletedSet{topicID}}

		repo := mocks.NewMockTrainingRepositoryIface(ctrl)
		repo.EXPECT().FindProgress(gomock.Any(), userID, courseID).Return(progress, nil)
		repo.EXPECT().FindTopicByID(gomock.Any(), topicID).Return(&model.TrainingTopic{ID: topicID}, nil)

		svc := service.NewTrainingService(repo, mocks.NewMockGateway(ctrl))
		out, err := svc.CompleteTopic(context.Background(), userID, courseID, topicID)

		assert.NoError(t, err)
		assert.Len(t, out.CompletedTopics, 1)
	})
}

func TestCertificateOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	courseID := uuid.New()
	topicID := uuid.New()

	finishedProgress := func() *model.UserTrainingProgress {
		return &model.UserTrainingProgress{
			ID:              uuid.New(),
			UserID:          userID,
			CourseID:        courseID,
			CompletedTopics: model.CompletedSet{topicID},
			PassedQuizzes:   model.CompletedSet{},
			PaymentStatus:   model.PaymentPending,
		}
	}

	paidCourse := &model.TrainingCourse{ID: courseID, Title: "Startup finance", CertificateFee: 49900, IsPublished: true}

	t.Run("opens a gateway order for the fee", func(t *testing.T) {
		progress := finishedProgress()

		repo := mocks.NewMockTrainingRepositoryIface(ctrl)
		gateway := mocks.NewMockGateway(ctrl)
		repo.EXPECT().FindProgress(gomock.Any(), userID, courseID).Return(progress, nil)
		repo.EXPECT().CountTopicsByCourse(gomock.Any(), courseID).Return(int64(1), nil)
		repo.EXPECT().FindCourseByID(gomock.Any(), courseID).Return(paidCourse, nil)
		gateway.EXPECT().CreateOrder(gomock.Any(), int64(49900), "cert_"+progress.ID.String(), gomock.Any()).Return("order_abc", nil)
		repo.EXPECT().UpdateProgress(gomock.Any(), progress).Return(nil)

		svc := service.NewTrainingService(repo, gateway)
		out, err := svc.CreateCertificateOrder(context.Background(), userID, courseID)

		assert.NoError(t, err)
		assert.Equal(t, "order_abc", out.RazorpayOrderID)
		assert.Equal(t, int64(49900), out.Amount)
		assert.False(t, out.CertificateIssued)
	})

	t.Run("free courses issue straight away", func(t *testing.T) {
		progress := finishedProgress()
		freeCourse := &model.TrainingCourse{ID: courseID, Title: "Digital literacy", CertificateFee: 0, IsPublished: true}

		repo := mocks.NewMockTrainingRepositoryIface(ctrl)
		repo.EXPECT().FindProgress(gomock.Any(), userID, courseID).Return(progress, nil)
		repo.EXPECT().CountTopicsByCourse(gomock.Any(), courseID).Return(int64(1), nil)
		repo.EXPECT().FindCourseByID(gomock.Any(), courseID).Return(freeCourse, nil)
		repo.EXPECT().UpdateProgress(gomock.Any(), progress).Return(nil)

		svc := service.NewTrainingService(repo, mocks.NewMockGateway(ctrl))
		out, err := svc.CreateCertificateOrder(context.Background(), userID, courseID)

		assert.NoError(t, err)
		assert.True(t, out.CertificateIssued)
		expected := fmt.Sprintf("CB-%.8s-%.8s-%d",
			upperHex(courseID), upperHex(userID), time.Now().Year())
		assert.Equal(t, expected, out.CertificateNo)
	})

	t.Run("unfinished course is refused", func(t *testing.T) {
		progress := finishedProgress()
		progress.CompletedTopics = model.CompletedSet{}

		repo := mocks.NewMockTrainingRepositoryIface(ctrl)
		repo.EXPECT().FindProgress(gomock.Any(), userID, courseID).Return(progress, nil)
		repo.EXPECT().CountTopicsByCourse(gomock.Any(), courseID).Return(int64(1), nil)

		svc := service.NewTrainingService(repo, mocks.NewMockGateway(ctrl))
		_, err := svc.CreateCertificateOrder(context.Background(), userID, courseID)

		assert.ErrorIs(t, err, domain.ErrQuizNotPassed)
	})

	t.Run("an issued certificate cannot be bought twice", func(t *testing.T) {
		progress := finishedProgress()
		progress.CertificateIssued = true

		repo := mocks.NewMockTrainingRepositoryIface(ctrl)
		repo.EXPECT().FindProgress(gomock.Any(), userID, courseID).Return(progress, nil)

		svc := service.NewTrainingService(repo, mocks.NewMockGateway(ctrl))
		_, err := svc.CreateCertificateOrder(context.Background(), userID, courseID)

		assert.ErrorIs(t, err, domain.ErrAlreadyPaid)
	})

	t.Run("confirming payment issues the certificate", func(t *testing.T) {
		progress := finishedProgress()
		progress.Amount = 49900
		progress.RazorpayOrderID = "order_abc"

		repo := mocks.NewMockTrainingRepositoryIface(ctrl)
		gateway := mocks.NewMockGateway(ctrl)
		repo.EXPECT().FindProgress(gomock.Any(), userID, courseID).Return(progress, nil)
		gateway.EXPECT().VerifySignature("order_abc", "pay_123", "sig").Return(true)
		repo.EXPECT().UpdateProgress(gomock.Any(), progress).Return(nil)

		svc := service.NewTrainingService(repo, gateway)
		out, err := svc.ConfirmCertificatePayment(context.Background(), userID, courseID, service.PaymentCallbackInput{
			OrderID: "order_abc", PaymentID: "pay_123", Signature: "sig",
		})

		assert.NoError(t, err)
		assert.Equal(t, model.PaymentCompleted, out.PaymentStatus)
		assert.True(t, out.CertificateIssued)
		assert.NotEmpty(t, out.CertificateNo)
	})

	t.Run("a bad signature is rejected", func(t *testing.T) {
		progress := finishedProgress()
		progress.RazorpayOrderID = "order_abc"

		repo := mocks.NewMockTrainingRepositoryIface(ctrl)
		gateway := mocks.NewMockGateway(ctrl)
		repo.EXPECT().FindProgress(gomock.Any(), userID, courseID).Return(progress, nil)
		gateway.EXPECT().VerifySignature("order_abc", "pay_123", "forged").Return(false)

		svc := service.NewTrainingService(repo, gateway)
		_, err := svc.ConfirmCertificatePayment(context.Background(), userID, courseID, service.PaymentCallbackInput{
			OrderID: "order_abc", PaymentID: "pay_123", Signature: "forged",
		})

		assert.ErrorIs(t, err, domain.ErrBadPaymentSignature)
	})
}

func TestSetQuiz(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	topicID := uuid.New()

	t.Run("answer index must point at an option", func(t *testing.T) {
		svc := service.NewTrainingService(mocks.NewMockTrainingRepositoryIface(ctrl), mocks.NewMockGateway(ctrl))
		_, err := svc.SetQuiz(context.Background(), topicID, service.QuizInput{
			Title:       "Broken quiz",
			PassPercent: 60,
			Questions: []service.QuizQuestionInput{
				{Text: "Q1", Options: []string{"a", "b"}, Answer: 2},
			},
		})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("replaces a previous quiz on the topic", func(t *testing.T) {
		existing := &model.TrainingQuiz{ID: uuid.New(), TopicID: topicID}

		repo := mocks.NewMockTrainingRepositoryIface(ctrl)
		repo.EXPECT().FindTopicByID(gomock.Any(), topicID).Return(&model.TrainingTopic{ID: topicID}, nil)
		repo.EXPECT().FindQuizByTopic(gomock.Any(), topicID).Return(existing, nil)
		repo.EXPECT().DeleteQuiz(gomock.Any(), existing.ID).Return(nil)
		repo.EXPECT().CreateQuiz(gomock.Any(), gomock.Any()).Return(nil)

		svc := service.NewTrainingService(repo, mocks.NewMockGateway(ctrl))
		quiz, err := svc.SetQuiz(context.Background(), topicID, service.QuizInput{
			Title:       "GST basics",
			PassPercent: 70,
			Questions: []service.QuizQuestionInput{
				{Text: "Q1", Options: []string{"a", "b"}, Answer: 1},
			},
		})

		assert.NoError(t, err)
		assert.Equal(t, 70, quiz.PassPercent)
		assert.Len(t, quiz.Questions, 1)
	})
}

// upperHex renders a uuid the way certificate numbers embed it.
func upperHex(id uuid.UUID) string {
	return strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))
}
