// internal/service/training.go
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ajaypanchal761/createbharat-sub000/internal/domain"
	"github.com/ajaypanchal761/createbharat-sub000/internal/model"
	"github.com/ajaypanchal761/createbharat-sub000/internal/payment"
	"github.com/ajaypanchal761/createbharat-sub000/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type TrainingService struct {
	repo     repository.TrainingRepositoryIface
	gateway  payment.Gateway
	validate *validator.Validate
}

func NewTrainingService(repo repository.TrainingRepositoryIface, gateway payment.Gateway) *TrainingService {
	return &TrainingService{repo: repo, gateway: gateway, validate: validator.New()}
}

type CourseInput struct {
	Title          string `json:"title" validate:"required"`
	Description    string `json:"description"`
	Category       string `json:"category"`
	ImageURL       string `json:"image_url" validate:"omitempty,url"`
	CertificateFee int64  `json:"certificate_fee" validate:"gte=0"`
}

func (s *TrainingService) CreateCourse(ctx context.Context, input CourseInput) (*model.TrainingCourse, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	course := &model.TrainingCourse{
		Title:          input.Title,
		Description:    input.Description,
		Category:       input.Category,
		ImageURL:       input.ImageURL,
		CertificateFee: input.CertificateFee,
	}

	if err := s.repo.CreateCourse(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *TrainingService) GetCourse(ctx context.Context, id uuid.UUID) (*model.TrainingCourse, error) {
	return s.repo.FindCourseByID(ctx, id)
}

// ListCourses returns published courses for learners.
func (s *TrainingService) ListCourses(ctx context.Context) ([]*model.TrainingCourse, error) {
	return s.repo.FindAllCourses(ctx, true)
}

// ListAllCourses includes drafts for the admin console.
func (s *TrainingService) ListAllCourses(ctx context.Context) ([]*model.TrainingCourse, error) {
	return s.repo.FindAllCourses(ctx, false)
}

func (s *TrainingService) UpdateCourse(ctx context.Context, id uuid.UUID, input CourseInput) (*model.TrainingCourse, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	course, err := s.repo.FindCourseByID(ctx, id)
	if err != nil {
		return nil, err
	}

	course.Title = input.Title
	course.Description = input.Description
	course.Category = input.Category
	course.ImageURL = input.ImageURL
	course.CertificateFee = input.CertificateFee

	if err := s.repo.UpdateCourse(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *TrainingService) SetCoursePublished(ctx context.Context, id uuid.UUID, published bool) (*model.TrainingCourse, error) {
	course, err := s.repo.FindCourseByID(ctx, id)
	if err != nil {
		return nil, err
	}

	course.IsPublished = published
	if err := s.repo.UpdateCourse(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *TrainingService) DeleteCourse(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteCourse(ctx, id)
}

type ModuleInput struct {
	Number int    `json:"number" validate:"gte=1"`
	Title  string `json:"title" validate:"required"`
}

// AddModule appends a numbered module; the per-course unique index rejects
// duplicate ordinals.
func (s *TrainingService) AddModule(ctx context.Context, courseID uuid.UUID, input ModuleInput) (*model.TrainingModule, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	if _, err := s.repo.FindCourseByID(ctx, courseID); err != nil {
		return nil, err
	}

	module := &model.TrainingModule{
		CourseID: courseID,
		Number:   input.Number,
		Title:    input.Title,
	}

	if err := s.repo.CreateModule(ctx, module); err != nil {
		return nil, err
	}
	return module, nil
}

func (s *TrainingService) UpdateModule(ctx context.Context, id uuid.UUID, input ModuleInput) (*model.TrainingModule, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	module, err := s.repo.FindModuleByID(ctx, id)
	if err != nil {
		return nil, err
	}

	module.Number = input.Number
	module.Title = input.Title

	if err := s.repo.UpdateModule(ctx, module); err != nil {
		return nil, err
	}
	return module, nil
}

func (s *TrainingService) DeleteModule(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteModule(ctx, id)
}

type TopicInput struct {
	Number   int    `json:"number" validate:"gte=1"`
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content"`
	VideoURL string `json:"video_url" validate:"omitempty,url"`
}

func (s *TrainingService) AddTopic(ctx context.Context, moduleID uuid.UUID, input TopicInput) (*model.TrainingTopic, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	if _, err := s.repo.FindModuleByID(ctx, moduleID); err != nil {
		return nil, err
	}

	topic := &model.TrainingTopic{
		ModuleID: moduleID,
		Number:   input.Number,
		Title:    input.Title,
		Content:  input.Content,
		VideoURL: input.VideoURL,
	}

	if err := s.repo.CreateTopic(ctx, topic); err != nil {
		return nil, err
	}
	return topic, nil
}

func (s *TrainingService) UpdateTopic(ctx context.Context, id uuid.UUID, input TopicInput) (*model.TrainingTopic, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	topic, err := s.repo.FindTopicByID(ctx, id)
	if err != nil {
		return nil, err
	}

	topic.Number = input.Number
	topic.Title = input.Title
	topic.Content = input.Content
	topic.VideoURL = input.VideoURL

	if err := s.repo.UpdateTopic(ctx, topic); err != nil {
		return nil, err
	}
	return topic, nil
}

func (s *TrainingService) DeleteTopic(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteTopic(ctx, id)
}

type QuizQuestionInput struct {
	Text    string   `json:"text" validate:"required"`
	Options []string `json:"options" validate:"required,min=2"`
	Answer  int      `json:"answer" validate:"gte=0"`
}

type QuizInput struct {
	Title       string              `json:"title" validate:"required"`
	PassPercent int                 `json:"pass_percent" validate:"gte=1,lte=100"`
	Questions   []QuizQuestionInput `json:"questions" validate:"required,min=1,dive"`
}

// SetQuiz attaches a quiz to a topic, replacing any previous one.
func (s *TrainingService) SetQuiz(ctx context.Context, topicID uuid.UUID, input QuizInput) (*model.TrainingQuiz, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	for _, q := range input.Questions {
		if q.Answer >= len(q.Options) {
			return nil, fmt.Errorf("%w: answer index out of range", domain.ErrInvalidInput)
		}
	}

	if _, err := s.repo.FindTopicByID(ctx, topicID); err != nil {
		return nil, err
	}

	if existing, err := s.repo.FindQuizByTopic(ctx, topicID); err == nil {
		if err := s.repo.DeleteQuiz(ctx, existing.ID); err != nil {
			return nil, err
		}
	}

	quiz := &model.TrainingQuiz{
		TopicID:     topicID,
		Title:       input.Title,
		PassPercent: input.PassPercent,
	}
	for _, q := range input.Questions {
		quiz.Questions = append(quiz.Questions, model.QuizQuestion{
			Text:    q.Text,
			Options: model.Categories(q.Options),
			Answer:  q.Answer,
		})
	}

	if err := s.repo.CreateQuiz(ctx, quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *TrainingService) GetQuizByTopic(ctx context.Context, topicID uuid.UUID) (*model.TrainingQuiz, error) {
	return s.repo.FindQuizByTopic(ctx, topicID)
}

// Enroll creates the progress row. The (user_id, course_id) unique index is
// the re-enrollment guard.
func (s *TrainingService) Enroll(ctx context.Context, userID, courseID uuid.UUID) (*model.UserTrainingProgress, error) {
	course, err := s.repo.FindCourseByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if !course.IsPublished {
		return nil, domain.ErrCourseNotFound
	}

	progress := &model.UserTrainingProgress{
		UserID:          userID,
		CourseID:        courseID,
		CompletedTopics: model.CompletedSet{},
		PassedQuizzes:   model.CompletedSet{},
	}

	if err := s.repo.CreateProgress(ctx, progress); err != nil {
		return nil, err
	}
	return progress, nil
}

func (s *TrainingService) GetProgress(ctx context.Context, userID, courseID uuid.UUID) (*model.UserTrainingProgress, error) {
	return s.repo.FindProgress(ctx, userID, courseID)
}

func (s *TrainingService) ListProgress(ctx context.Context, userID uuid.UUID) ([]*model.UserTrainingProgress, error) {
	return s.repo.FindProgressByUser(ctx, userID)
}

// CompleteTopic marks a topic done. Completing it twice is a no-op.
func (s *TrainingService) CompleteTopic(ctx context.Context, userID, courseID, topicID uuid.UUID) (*model.UserTrainingProgress, error) {
	progress, err := s.repo.FindProgress(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.FindTopicByID(ctx, topicID); err != nil {
		return nil, err
	}

	if progress.CompletedTopics.Contains(topicID) {
		return progress, nil
	}

	progress.CompletedTopics = append(progress.CompletedTopics, topicID)
	if err := s.repo.UpdateProgress(ctx, progress); err != nil {
		return nil, err
	}
	return progress, nil
}

type QuizSubmitInput struct {
	Answers []int `json:"answers" validate:"required"`
}

type QuizResult struct {
	Score       int  `json:"score"`
	Total       int  `json:"total"`
	Percent     int  `json:"percent"`
	Passed      bool `json:"passed"`
	AlreadyHeld bool `json:"already_passed"`
}

// SubmitQuiz grades the answers against the stored key. A pass is recorded
// on the progress row; failing after a pass does not revoke it.
func (s *TrainingService) SubmitQuiz(ctx context.Context, userID, courseID, quizID uuid.UUID, input QuizSubmitInput) (*QuizResult, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	progress, err := s.repo.FindProgress(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}

	quiz, err := s.repo.FindQuizByID(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if len(input.Answers) != len(quiz.Questions) {
		return nil, fmt.Errorf("%w: expected %d answers", domain.ErrInvalidInput, len(quiz.Questions))
	}

	score := 0
	for i, question := range quiz.Questions {
		if input.Answers[i] == question.Answer {
			score++
		}
	}

	percent := score * 100 / len(quiz.Questions)
	result := &QuizResult{
		Score:       score,
		Total:       len(quiz.Questions),
		Percent:     percent,
		Passed:      percent >= quiz.PassPercent,
		AlreadyHeld: progress.PassedQuizzes.Contains(quizID),
	}

	if result.Passed && !result.AlreadyHeld {
		progress.PassedQuizzes = append(progress.PassedQuizzes, quizID)
		if err := s.repo.UpdateProgress(ctx, progress); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// CourseFinished reports whether every topic in the course is complete.
func (s *TrainingService) CourseFinished(ctx context.Context, progress *model.UserTrainingProgress) (bool, error) {
	total, err := s.repo.CountTopicsByCourse(ctx, progress.CourseID)
	if err != nil {
		return false, err
	}
	return total > 0 && int64(len(progress.CompletedTopics)) >= total, nil
}

// CreateCertificateOrder opens a gateway order for the certificate fee.
// Free-certificate courses skip straight to issuance.
func (s *TrainingService) CreateCertificateOrder(ctx context.Context, userID, courseID uuid.UUID) (*model.UserTrainingProgress, error) {
	progress, err := s.repo.FindProgress(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	if progress.CertificateIssued {
		return nil, domain.ErrAlreadyPaid
	}

	finished, err := s.CourseFinished(ctx, progress)
	if err != nil {
		return nil, err
	}
	if !finished {
		return nil, domain.ErrQuizNotPassed
	}

	course, err := s.repo.FindCourseByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	if course.CertificateFee == 0 {
		return s.issueCertificate(ctx, progress)
	}

	if progress.PaymentStatus == model.PaymentCompleted {
		return nil, domain.ErrAlreadyPaid
	}

	orderID, err := s.gateway.CreateOrder(ctx, course.CertificateFee, "cert_"+progress.ID.String(), map[string]string{
		"user_id":   userID.String(),
		"course_id": courseID.String(),
	})
	if err != nil {
		return nil, fmt.Errorf("creating payment order: %w", err)
	}

	progress.Amount = course.CertificateFee
	progress.RazorpayOrderID = orderID
	if err := s.repo.UpdateProgress(ctx, progress); err != nil {
		return nil, err
	}
	return progress, nil
}

// ConfirmCertificatePayment verifies the callback and issues the
// certificate.
func (s *TrainingService) ConfirmCertificatePayment(ctx context.Context, userID, courseID uuid.UUID, input PaymentCallbackInput) (*model.UserTrainingProgress, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	progress, err := s.repo.FindProgress(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	if progress.PaymentStatus == model.PaymentCompleted {
		return nil, domain.ErrAlreadyPaid
	}
	if progress.RazorpayOrderID == "" || progress.RazorpayOrderID != input.OrderID {
		return nil, domain.ErrBadPaymentSignature
	}

	if !s.gateway.VerifySignature(input.OrderID, input.PaymentID, input.Signature) {
		return nil, domain.ErrBadPaymentSignature
	}

	now := time.Now()
	progress.PaymentStatus = model.PaymentCompleted
	progress.RazorpayPaymentID = input.PaymentID
	progress.PaidAt = &now

	return s.issueCertificate(ctx, progress)
}

func (s *TrainingService) issueCertificate(ctx context.Context, progress *model.UserTrainingProgress) (*model.UserTrainingProgress, error) {
	progress.CertificateIssued = true
	progress.CertificateNo = certificateNumber(progress.UserID, progress.CourseID)

	if err := s.repo.UpdateProgress(ctx, progress); err != nil {
		return nil, err
	}
	return progress, nil
}

// certificateNumber derives a stable human-readable certificate id.
func certificateNumber(userID, courseID uuid.UUID) string {
	u := strings.ToUpper(strings.ReplaceAll(userID.String(), "-", ""))
	c := strings.ToUpper(strings.ReplaceAll(courseID.String(), "-", ""))
	return fmt.Sprintf("CB-%s-%s-%d", c[:8], u[:8], time.Now().Year())
}
