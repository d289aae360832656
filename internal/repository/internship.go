// internal/repository/internship.go
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

// InternshipFilter narrows the public internship listing.
type InternshipFilter struct {
	Category string
	Location string
	Mode     model.InternshipMode
	Search   string
	OpenOnly bool
	Offset   int
	Limit    int
}

type InternshipRepositoryIface interface {
	Create(ctx context.Context, internship *model.Internship) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Internship, error)
	Update(ctx context.Context, internship *model.Internship) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindAll(ctx context.Context, filter InternshipFilter) ([]*model.Internship, int64, error)
	FindByCompany(ctx context.Context, companyID uuid.UUID) ([]*model.Internship, error)
	IncrementApplicants(ctx context.Context, id uuid.UUID) error
	CountAll(ctx context.Context) (int64, error)
}

type InternshipRepository struct {
	db *gorm.DB
}

func NewInternshipRepository(db *gorm.DB) *InternshipRepository {
	return &InternshipRepository{db: db}
}

func (r *InternshipRepository) Create(ctx context.Context, internship *model.Internship) error {
	result := r.db.WithContext(ctx).Create(internship)
	if result.Error != nil {
		return fmt.Errorf("failed to create internship: %w", result.Error)
	}
	return nil
}

func (r *InternshipRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Internship, error) {
	var internship model.Internship
	result := r.db.WithContext(ctx).Preload("Company").First(&internship, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInternshipNotFound
		}
		return nil, fmt.Errorf("failed to find internship: %w", result.Error)
	}
	return &internship, nil
}

func (r *InternshipRepository) Update(ctx context.Context, internship *model.Internship) error {
	result := r.db.WithContext(ctx).Save(internship)
	if result.Error != nil {
		return fmt.Errorf("failed to update internship: %w", result.Error)
	}
	return nil
}

func (r *InternshipRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Internship{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete internship: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrInternshipNotFound
	}
	return nil
}

func (r *InternshipRepository) FindAll(ctx context.Context, filter InternshipFilter) ([]*model.Internship, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Internship{})

	if filter.OpenOnly {
		query = query.Where("is_open = ?", true)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Location != "" {
		query = query.Where("location ILIKE ?", "%"+filter.Location+"%")
	}
	if filter.Mode != "" {
		query = query.Where("mode = ?", filter.Mode)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", like, like)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count internships: %w", err)
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}

	var internships []*model.Internship
	result := query.Preload("Company").
		Order("created_at DESC").
		Offset(filter.Offset).Limit(filter.Limit).
		Find(&internships)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to list internships: %w", result.Error)
	}
	return internships, count, nil
}

func (r *InternshipRepository) FindByCompany(ctx context.Context, companyID uuid.UUID) ([]*model.Internship, error) {
	var internships []*model.Internship
	result := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Find(&internships)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list company internships: %w", result.Error)
	}
	return internships, nil
}

func (r *InternshipRepository) IncrementApplicants(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&model.Internship{}).
		Where("id = ?", id).
		Update("applicant_count", gorm.Expr("applicant_count + 1"))
	if result.Error != nil {
		return fmt.Errorf("failed to increment applicant count: %w", result.Error)
	}
	return nil
}

func (r *InternshipRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Internship{}).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to count internships: %w", result.Error)
	}
	return count, nil
}
