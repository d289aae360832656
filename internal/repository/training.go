// internal/repository/training.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ajaypanchal761/createbharat-sub000/internal/domain"
	"github.com/ajaypanchal761/createbharat-sub000/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TrainingRepositoryIface interface {
	CreateCourse(ctx context.Context, course *model.TrainingCourse) error
	FindCourseByID(ctx context.Context, id uuid.UUID) (*model.TrainingCourse, error)
	UpdateCourse(ctx context.Context, course *model.TrainingCourse) error
	DeleteCourse(ctx context.Context, id uuid.UUID) error
	FindAllCourses(ctx context.Context, publishedOnly bool) ([]*model.TrainingCourse, error)

	CreateModule(ctx context.Context, module *model.TrainingModule) error
	FindModuleByID(ctx context.Context, id uuid.UUID) (*model.TrainingModule, error)
	UpdateModule(ctx context.Context, module *model.TrainingModule) error
	DeleteModule(ctx context.Context, id uuid.UUID) error

	CreateTopic(ctx context.Context, topic *model.TrainingTopic) error
	FindTopicByID(ctx context.Context, id uuid.UUID) (*model.TrainingTopic, error)
	UpdateTopic(ctx context.Context, topic *model.TrainingTopic) error
	DeleteTopic(ctx context.Context, id uuid.UUID) error
	CountTopicsByCourse(ctx context.Context, courseID uuid.UUID) (int64, error)

	CreateQuiz(ctx context.Context, quiz *model.TrainingQuiz) error
	FindQuizByID(ctx context.Context, id uuid.UUID) (*model.TrainingQuiz, error)
	FindQuizByTopic(ctx context.Context, topicID uuid.UUID) (*model.TrainingQuiz, error)
	DeleteQuiz(ctx context.Context, id uuid.UUID) error

	CreateProgress(ctx context.Context, progress *model.UserTrainingProgress) error
	FindProgress(ctx context.Context, userID, courseID uuid.UUID) (*model.UserTrainingProgress, error)
	UpdateProgress(ctx context.Context, progress *model.UserTrainingProgress) error
	FindProgressByUser(ctx context.Context, userID uuid.UUID) ([]*model.UserTrainingProgress, error)

	CountEnrollments(ctx context.Context) (int64, error)
	SumCertificateRevenue(ctx context.Context) (int64, error)
	CertificateRevenueByDay(ctx context.Context, since time.Time) (map[string]int64, error)
}

type TrainingRepository struct {
	db *gorm.DB
}

func NewTrainingRepository(db *gorm.DB) *TrainingRepository {
	return &TrainingRepository{db: db}
}

func (r *TrainingRepository) CreateCourse(ctx context.Context, course *model.TrainingCourse) error {
	result := r.db.WithContext(ctx).Create(course)
	if result.Error != nil {
		return fmt.Errorf("failed to create course: %w", result.Error)
	}
	return nil
}

func (r *TrainingRepository) FindCourseByID(ctx context.Context, id uuid.UUID) (*model.TrainingCourse, error) {
	var course model.TrainingCourse
	result := r.db.WithContext(ctx).
		Preload("Modules", func(db *gorm.DB) *gorm.DB { return db.Order("number ASC") }).
		Preload("Modules.Topics", func(db *gorm.DB) *gorm.DB { return db.Order("number ASC") }).
		Preload("Modules.Topics.Quiz").
		First(&course, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, fmt.Errorf("failed to find course: %w", result.Error)
	}
	return &course, nil
}

func (r *TrainingRepository) UpdateCourse(ctx context.Context, course *model.TrainingCourse) error {
	result := r.db.WithContext(ctx).Save(course)
	if result.Error != nil {
		return fmt.Errorf("failed to update course: %w", result.Error)
	}
	return nil
}

func (r *TrainingRepository) DeleteCourse(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.TrainingCourse{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete course: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}

func (r *TrainingRepository) FindAllCourses(ctx context.Context, publishedOnly bool) ([]*model.TrainingCourse, error) {
	query := r.db.WithContext(ctx).Model(&model.TrainingCourse{})
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}

	var courses []*model.TrainingCourse
	result := query.Order("created_at DESC").Find(&courses)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list courses: %w", result.Error)
	}
	return courses, nil
}

func (r *TrainingRepository) CreateModule(ctx context.Context, module *model.TrainingModule) error {
	result := r.db.WithContext(ctx).Create(module)
	if result.Error != nil {
		// (course_id, number) unique index keeps ordinals unique per course
		if isDuplicateErr(result.Error) {
			return domain.ErrDuplicateOrdinal
		}
		return fmt.Errorf("failed to create module: %w", result.Error)
	}
	return nil
}

func (r *TrainingRepository) FindModuleByID(ctx context.Context, id uuid.UUID) (*model.TrainingModule, error) {
	var module model.TrainingModule
	result := r.db.WithContext(ctx).
		Preload("Topics", func(db *gorm.DB) *gorm.DB { return db.Order("number ASC") }).
		First(&module, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrModuleNotFound
		}
		return nil, fmt.Errorf("failed to find module: %w", result.Error)
	}
	return &module, nil
}

func (r *TrainingRepository) UpdateModule(ctx context.Context, module *model.TrainingModule) error {
	result := r.db.WithContext(ctx).Save(module)
	if result.Error != nil {
		if isDuplicateErr(result.Error) {
			return domain.ErrDuplicateOrdinal
		}
		return fmt.Errorf("failed to update module: %w", result.Error)
	}
	return nil
}

func (r *TrainingRepository) DeleteModule(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.TrainingModule{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete module: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrModuleNotFound
	}
	return nil
}

func (r *TrainingRepository) CreateTopic(ctx context.Context, topic *model.TrainingTopic) error {
	result := r.db.WithContext(ctx).Create(topic)
	if result.Error != nil {
		if isDuplicateErr(result.Error) {
			return domain.ErrDuplicateOrdinal
		}
		return fmt.Errorf("failed to create topic: %w", result.Error)
	}
	return nil
}

func (r *TrainingRepository) FindTopicByID(ctx context.Context, id uuid.UUID) (*model.TrainingTopic, error) {
	var topic model.TrainingTopic
	result := r.db.WithContext(ctx).Preload("Quiz").Preload("Quiz.Questions").First(&topic, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTopicNotFound
		}
		return nil, fmt.Errorf("failed to find topic: %w", result.Error)
	}
	return &topic, nil
}

func (r *TrainingRepository) UpdateTopic(ctx context.Context, topic *model.TrainingTopic) error {
	result := r.db.WithContext(ctx).Save(topic)
	if result.Error != nil {
		if isDuplicateErr(result.Error) {
			return domain.ErrDuplicateOrdinal
		}
		return fmt.Errorf("failed to update topic: %w", result.Error)
	}
	return nil
}

func (r *TrainingRepository) DeleteTopic(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.TrainingTopic{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete topic: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrTopicNotFound
	}
	return nil
}

func (r *TrainingRepository) CountTopicsByCourse(ctx context.Context, courseID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.TrainingTopic{}).
		Joins("JOIN training_modules ON training_modules.id = training_topics.module_id").
		Where("training_modules.course_id = ?", courseID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count course topics: %w", err)
	}
	return count, nil
}

func (r *TrainingRepository) CreateQuiz(ctx context.Context, quiz *model.TrainingQuiz) error {
	result := r.db.WithContext(ctx).Create(quiz)
	if result.Error != nil {
		return fmt.Errorf("failed to create quiz: %w", result.Error)
	}
	return nil
}

func (r *TrainingRepository) FindQuizByID(ctx context.Context, id uuid.UUID) (*model.TrainingQuiz, error) {
	var quiz model.TrainingQuiz
	result := r.db.WithContext(ctx).Preload("Questions").First(&quiz, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrQuizNotFound
		}
		return nil, fmt.Errorf("failed to find quiz: %w", result.Error)
	}
	return &quiz, nil
}

func (r *TrainingRepository) FindQuizByTopic(ctx context.Context, topicID uuid.UUID) (*model.TrainingQuiz, error) {
	var quiz model.TrainingQuiz
	result := r.db.WithContext(ctx).Preload("Questions").Where("topic_id = ?", topicID).First(&quiz)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrQuizNotFound
		}
		return nil, fmt.Errorf("failed to find topic quiz: %w", result.Error)
	}
	return &quiz, nil
}

func (r *TrainingRepository) DeleteQuiz(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.TrainingQuiz{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete quiz: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrQuizNotFound
	}
	return nil
}

func (r *TrainingRepository) CreateProgress(ctx context.Context, progress *model.UserTrainingProgress) error {
	result := r.db.WithContext(ctx).Create(progress)
	if result.Error != nil {
		if isDuplicateErr(result.Error) {
			return domain.ErrAlreadyEnrolled
		}
		return fmt.Errorf("failed to create progress: %w", result.Error)
	}
	return nil
}

func (r *TrainingRepository) FindProgress(ctx context.Context, userID, courseID uuid.UUID) (*model.UserTrainingProgress, error) {
	var progress model.UserTrainingProgress
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotEnrolled
		}
		return nil, fmt.Errorf("failed to find progress: %w", result.Error)
	}
	return &progress, nil
}

func (r *TrainingRepository) UpdateProgress(ctx context.Context, progress *model.UserTrainingProgress) error {
	result := r.db.WithContext(ctx).Save(progress)
	if result.Error != nil {
		return fmt.Errorf("failed to update progress: %w", result.Error)
	}
	return nil
}

func (r *TrainingRepository) FindProgressByUser(ctx context.Context, userID uuid.UUID) ([]*model.UserTrainingProgress, error) {
	var records []*model.UserTrainingProgress
	result := r.db.WithContext(ctx).
		Preload("Course").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&records)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list user progress: %w", result.Error)
	}
	return records, nil
}

func (r *TrainingRepository) CountEnrollments(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.UserTrainingProgress{}).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to count enrollments: %w", result.Error)
	}
	return count, nil
}

func (r *TrainingRepository) SumCertificateRevenue(ctx context.Context) (int64, error) {
	return sumRevenue(r.db.WithContext(ctx), &model.UserTrainingProgress{})
}

func (r *TrainingRepository) CertificateRevenueByDay(ctx context.Context, since time.Time) (map[string]int64, error) {
	return revenueByDay(r.db.WithContext(ctx), &model.UserTrainingProgress{}, since)
}
