// internal/repository/application.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/ajaypanchal761/createbharat-sub000/internal/domain"
	"github.com/ajaypanchal761/createbharat-sub000/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationRepositoryIface interface {
	Create(ctx context.Context, application *model.Application) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Application, error)
	Update(ctx context.Context, application *model.Application) error
	FindByInternship(ctx context.Context, internshipID uuid.UUID) ([]*model.Application, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*model.Application, error)
	CountAll(ctx context.Context) (int64, error)
	FindRecent(ctx context.Context, limit int) ([]*model.Application, error)
}

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, application *model.Application) error {
	result := r.db.WithContext(ctx).Create(application)
	if result.Error != nil {
		// The (internship_id, user_id) unique index rejects double applies
		if isDuplicateErr(result.Error) {
			return domain.ErrAlreadyApplied
		}
		return fmt.Errorf("failed to create application: %w", result.Error)
	}
	return nil
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	var application model.Application
	result := r.db.WithContext(ctx).
		Preload("Internship").Preload("User").
		First(&application, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrApplicationMissing
		}
		return nil, fmt.Errorf("failed to find application: %w", result.Error)
	}
	return &application, nil
}

func (r *ApplicationRepository) Update(ctx context.Context, application *model.Application) error {
	result := r.db.WithContext(ctx).Save(application)
	if result.Error != nil {
		return fmt.Errorf("failed to update application: %w", result.Error)
	}
	return nil
}

func (r *ApplicationRepository) FindByInternship(ctx context.Context, internshipID uuid.UUID) ([]*model.Application, error) {
	var applications []*model.Application
	result := r.db.WithContext(ctx).
		Preload("User").
		Where("internship_id = ?", internshipID).
		Order("created_at DESC").
		Find(&applications)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list applications: %w", result.Error)
	}
	return applications, nil
}

func (r *ApplicationRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*model.Application, error) {
	var applications []*model.Application
	result := r.db.WithContext(ctx).
		Preload("Internship").Preload("Internship.Company").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&applications)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list user applications: %w", result.Error)
	}
	return applications, nil
}

func (r *ApplicationRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Application{}).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to count applications: %w", result.Error)
	}
	return count, nil
}

func (r *ApplicationRepository) FindRecent(ctx context.Context, limit int) ([]*model.Application, error) {
	var applications []*model.Application
	result := r.db.WithContext(ctx).
		Preload("Internship").
		Order("created_at DESC").Limit(limit).
		Find(&applications)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find recent applications: %w", result.Error)
	}
	return applications, nil
}
