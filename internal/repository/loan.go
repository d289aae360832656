// internal/repository/loan.go
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

type LoanSchemeRepositoryIface interface {
	Create(ctx context.Context, scheme *model.LoanScheme) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.LoanScheme, error)
	Update(ctx context.Context, scheme *model.LoanScheme) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindAll(ctx context.Context, category string, activeOnly bool) ([]*model.LoanScheme, error)
	IncrementViews(ctx context.Context, id uuid.UUID) error
	IncrementApplications(ctx context.Context, id uuid.UUID) error
}

type LoanSchemeRepository struct {
	db *gorm.DB
}

func NewLoanSchemeRepository(db *gorm.DB) *LoanSchemeRepository {
	return &LoanSchemeRepository{db: db}
}

func (r *LoanSchemeRepository) Create(ctx context.Context, scheme *model.LoanScheme) error {
	result := r.db.WithContext(ctx).Create(scheme)
	if result.Error != nil {
		return fmt.Errorf("failed to create loan scheme: %w", result.Error)
	}
	return nil
}

func (r *LoanSchemeRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.LoanScheme, error) {
	var scheme model.LoanScheme
	result := r.db.WithContext(ctx).First(&scheme, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLoanSchemeNotFound
		}
		return nil, fmt.Errorf("failed to find loan scheme: %w", result.Error)
	}
	return &scheme, nil
}

func (r *LoanSchemeRepository) Update(ctx context.Context, scheme *model.LoanScheme) error {
	result := r.db.WithContext(ctx).Save(scheme)
	if result.Error != nil {
		return fmt.Errorf("failed to update loan scheme: %w", result.Error)
	}
	return nil
}

func (r *LoanSchemeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.LoanScheme{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete loan scheme: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrLoanSchemeNotFound
	}
	return nil
}

func (r *LoanSchemeRepository) FindAll(ctx context.Context, category string, activeOnly bool) ([]*model.LoanScheme, error) {
	query := r.db.WithContext(ctx).Model(&model.LoanScheme{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var schemes []*model.LoanScheme
	result := query.Order("created_at DESC").Find(&schemes)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list loan schemes: %w", result.Error)
	}
	return schemes, nil
}

func (r *LoanSchemeRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&model.LoanScheme{}).
		Where("id = ?", id).
		Update("view_count", gorm.Expr("view_count + 1"))
	if result.Error != nil {
		return fmt.Errorf("failed to increment view count: %w", result.Error)
	}
	return nil
}

func (r *LoanSchemeRepository) IncrementApplications(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&model.LoanScheme{}).
		Where("id = ?", id).
		Update("application_count", gorm.Expr("application_count + 1"))
	if result.Error != nil {
		return fmt.Errorf("failed to increment application count: %w", result.Error)
	}
	return nil
}
