// internal/repository/ca.go
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

type CARepositoryIface interface {
	Create(ctx context.Context, ca *model.CharteredAccountant) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.CharteredAccountant, error)
	FindByEmail(ctx context.Context, email string) (*model.CharteredAccountant, error)
	Update(ctx context.Context, ca *model.CharteredAccountant) error
	Count(ctx context.Context) (int64, error)
}

type CARepository struct {
	db *gorm.DB
}

func NewCARepository(db *gorm.DB) *CARepository {
	return &CARepository{db: db}
}

func (r *CARepository) Create(ctx context.Context, ca *model.CharteredAccountant) error {
	result := r.db.WithContext(ctx).Create(ca)
	if result.Error != nil {
		if isDuplicateErr(result.Error) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("failed to create ca: %w", result.Error)
	}
	return nil
}

func (r *CARepository) FindByID(ctx context.Context, id uuid.UUID) (*model.CharteredAccountant, error) {
	var ca model.CharteredAccountant
	result := r.db.WithContext(ctx).First(&ca, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCANotFound
		}
		return nil, fmt.Errorf("failed to find ca: %w", result.Error)
	}
	return &ca, nil
}

func (r *CARepository) FindByEmail(ctx context.Context, email string) (*model.CharteredAccountant, error) {
	var ca model.CharteredAccountant
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&ca)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCANotFound
		}
		return nil, fmt.Errorf("failed to find ca: %w", result.Error)
	}
	return &ca, nil
}

func (r *CARepository) Update(ctx context.Context, ca *model.CharteredAccountant) error {
	result := r.db.WithContext(ctx).Save(ca)
	if result.Error != nil {
		return fmt.Errorf("failed to update ca: %w", result.Error)
	}
	return nil
}

func (r *CARepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.CharteredAccountant{}).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to count cas: %w", result.Error)
	}
	return count, nil
}
