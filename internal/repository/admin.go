// internal/repository/admin.go
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

type AdminRepositoryIface interface {
	Create(ctx context.Context, admin *model.Admin) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Admin, error)
	FindByEmail(ctx context.Context, email string) (*model.Admin, error)
	FindAll(ctx context.Context) ([]*model.Admin, error)
	Update(ctx context.Context, admin *model.Admin) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type AdminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

func (r *AdminRepository) Create(ctx context.Context, admin *model.Admin) error {
	result := r.db.WithContext(ctx).Create(admin)
	if result.Error != nil {
		if isDuplicateErr(result.Error) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("failed to create admin: %w", result.Error)
	}
	return nil
}

func (r *AdminRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Admin, error) {
	var admin model.Admin
	result := r.db.WithContext(ctx).First(&admin, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to find admin: %w", result.Error)
	}
	return &admin, nil
}

func (r *AdminRepository) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	var admin model.Admin
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&admin)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAdminNotFound
		}
		return nil, fmt.Errorf("failed to find admin: %w", result.Error)
	}
	return &admin, nil
}

func (r *AdminRepository) FindAll(ctx context.Context) ([]*model.Admin, error) {
	var admins []*model.Admin
	result := r.db.WithContext(ctx).Order("created_at ASC").Find(&admins)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list admins: %w", result.Error)
	}
	return admins, nil
}

func (r *AdminRepository) Update(ctx context.Context, admin *model.Admin) error {
	result := r.db.WithContext(ctx).Save(admin)
	if result.Error != nil {
		return fmt.Errorf("failed to update admin: %w", result.Error)
	}
	return nil
}

func (r *AdminRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Admin{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete admin: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrAdminNotFound
	}
	return nil
}
