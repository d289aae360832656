// internal/repository/company.go
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

type CompanyRepositoryIface interface {
	Create(ctx context.Context, company *model.Company) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Company, error)
	FindByEmail(ctx context.Context, email string) (*model.Company, error)
	Update(ctx context.Context, company *model.Company) error
	AdjustCounters(ctx context.Context, id uuid.UUID, internshipDelta, applicationDelta int) error
	CountAll(ctx context.Context) (int64, error)
}

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) Create(ctx context.Context, company *model.Company) error {
	result := r.db.WithContext(ctx).Create(company)
	if result.Error != nil {
		if isDuplicateErr(result.Error) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("failed to create company: %w", result.Error)
	}
	return nil
}

func (r *CompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	var company model.Company
	result := r.db.WithContext(ctx).First(&company, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to find company: %w", result.Error)
	}
	return &company, nil
}

func (r *CompanyRepository) FindByEmail(ctx context.Context, email string) (*model.Company, error) {
	var company model.Company
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&company)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to find company: %w", result.Error)
	}
	return &company, nil
}

func (r *CompanyRepository) Update(ctx context.Context, company *model.Company) error {
	result := r.db.WithContext(ctx).Save(company)
	if result.Error != nil {
		return fmt.Errorf("failed to update company: %w", result.Error)
	}
	return nil
}

// AdjustCounters bumps the denormalized dashboard counters atomically.
func (r *CompanyRepository) AdjustCounters(ctx context.Context, id uuid.UUID, internshipDelta, applicationDelta int) error {
	result := r.db.WithContext(ctx).Model(&model.Company{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"internship_count":  gorm.Expr("internship_count + ?", internshipDelta),
			"application_count": gorm.Expr("application_count + ?", applicationDelta),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to adjust company counters: %w", result.Error)
	}
	return nil
}

func (r *CompanyRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Company{}).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to count companies: %w", result.Error)
	}
	return count, nil
}
