// internal/repository/legal.go
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

type LegalRepositoryIface interface {
	CreateService(ctx context.Context, service *model.LegalService) error
	FindServiceByID(ctx context.Context, id uuid.UUID) (*model.LegalService, error)
	UpdateService(ctx context.Context, service *model.LegalService) error
	DeleteService(ctx context.Context, id uuid.UUID) error
	FindAllServices(ctx context.Context, activeOnly bool) ([]*model.LegalService, error)

	CreateSubmission(ctx context.Context, submission *model.LegalSubmission) error
	FindSubmissionByID(ctx context.Context, id uuid.UUID) (*model.LegalSubmission, error)
	UpdateSubmission(ctx context.Context, submission *model.LegalSubmission) error
	FindSubmissionsByUser(ctx context.Context, userID uuid.UUID) ([]*model.LegalSubmission, error)
	FindAllSubmissions(ctx context.Context, status model.SubmissionStatus) ([]*model.LegalSubmission, error)
	AddDocument(ctx context.Context, doc *model.SubmissionDocument) error

	CountSubmissions(ctx context.Context) (int64, error)
	SumRevenue(ctx context.Context) (int64, error)
	RevenueByDay(ctx context.Context, since time.Time) (map[string]int64, error)
	FindRecentSubmissions(ctx context.Context, limit int) ([]*model.LegalSubmission, error)
}

type LegalRepository struct {
	db *gorm.DB
}

func NewLegalRepository(db *gorm.DB) *LegalRepository {
	return &LegalRepository{db: db}
}

func (r *LegalRepository) CreateService(ctx context.Context, service *model.LegalService) error {
	result := r.db.WithContext(ctx).Create(service)
	if result.Error != nil {
		return fmt.Errorf("failed to create legal service: %w", result.Error)
	}
	return nil
}

func (r *LegalRepository) FindServiceByID(ctx context.Context, id uuid.UUID) (*model.LegalService, error) {
	var service model.LegalService
	result := r.db.WithContext(ctx).First(&service, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to find legal service: %w", result.Error)
	}
	return &service, nil
}

func (r *LegalRepository) UpdateService(ctx context.Context, service *model.LegalService) error {
	result := r.db.WithContext(ctx).Save(service)
	if result.Error != nil {
		return fmt.Errorf("failed to update legal service: %w", result.Error)
	}
	return nil
}

func (r *LegalRepository) DeleteService(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.LegalService{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete legal service: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrServiceNotFound
	}
	return nil
}

func (r *LegalRepository) FindAllServices(ctx context.Context, activeOnly bool) ([]*model.LegalService, error) {
	query := r.db.WithContext(ctx).Model(&model.LegalService{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var services []*model.LegalService
	result := query.Order("created_at DESC").Find(&services)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list legal services: %w", result.Error)
	}
	return services, nil
}

func (r *LegalRepository) CreateSubmission(ctx context.Context, submission *model.LegalSubmission) error {
	result := r.db.WithContext(ctx).Create(submission)
	if result.Error != nil {
		return fmt.Errorf("failed to create legal submission: %w", result.Error)
	}
	return nil
}

func (r *LegalRepository) FindSubmissionByID(ctx context.Context, id uuid.UUID) (*model.LegalSubmission, error) {
	var submission model.LegalSubmission
	result := r.db.WithContext(ctx).
		Preload("Service").Preload("User").Preload("Documents").
		First(&submission, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSubmissionMissing
		}
		return nil, fmt.Errorf("failed to find legal submission: %w", result.Error)
	}
	return &submission, nil
}

func (r *LegalRepository) UpdateSubmission(ctx context.Context, submission *model.LegalSubmission) error {
	result := r.db.WithContext(ctx).Save(submission)
	if result.Error != nil {
		return fmt.Errorf("failed to update legal submission: %w", result.Error)
	}
	return nil
}

func (r *LegalRepository) FindSubmissionsByUser(ctx context.Context, userID uuid.UUID) ([]*model.LegalSubmission, error) {
	var submissions []*model.LegalSubmission
	result := r.db.WithContext(ctx).
		Preload("Service").Preload("Documents").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&submissions)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list user submissions: %w", result.Error)
	}
	return submissions, nil
}

func (r *LegalRepository) FindAllSubmissions(ctx context.Context, status model.SubmissionStatus) ([]*model.LegalSubmission, error) {
	query := r.db.WithContext(ctx).Preload("Service").Preload("User").Preload("Documents")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var submissions []*model.LegalSubmission
	result := query.Order("created_at DESC").Find(&submissions)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", result.Error)
	}
	return submissions, nil
}

func (r *LegalRepository) AddDocument(ctx context.Context, doc *model.SubmissionDocument) error {
	result := r.db.WithContext(ctx).Create(doc)
	if result.Error != nil {
		return fmt.Errorf("failed to attach document: %w", result.Error)
	}
	return nil
}

func (r *LegalRepository) CountSubmissions(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.LegalSubmission{}).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to count submissions: %w", result.Error)
	}
	return count, nil
}

func (r *LegalRepository) SumRevenue(ctx context.Context) (int64, error) {
	return sumRevenue(r.db.WithContext(ctx), &model.LegalSubmission{})
}

func (r *LegalRepository) RevenueByDay(ctx context.Context, since time.Time) (map[string]int64, error) {
	return revenueByDay(r.db.WithContext(ctx), &model.LegalSubmission{}, since)
}

func (r *LegalRepository) FindRecentSubmissions(ctx context.Context, limit int) ([]*model.LegalSubmission, error) {
	var submissions []*model.LegalSubmission
	result := r.db.WithContext(ctx).
		Preload("Service").
		Order("created_at DESC").Limit(limit).
		Find(&submissions)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find recent submissions: %w", result.Error)
	}
	return submissions, nil
}
