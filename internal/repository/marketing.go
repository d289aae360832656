// internal/repository/marketing.go
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

type MarketingRepositoryIface interface {
	CreateBanner(ctx context.Context, banner *model.Banner) error
	FindBannerByID(ctx context.Context, id uuid.UUID) (*model.Banner, error)
	UpdateBanner(ctx context.Context, banner *model.Banner) error
	DeleteBanner(ctx context.Context, id uuid.UUID) error
	FindBanners(ctx context.Context, activeOnly bool) ([]*model.Banner, error)

	CreateBankLead(ctx context.Context, lead *model.BankLead) error
	FindBankLeadByID(ctx context.Context, id uuid.UUID) (*model.BankLead, error)
	UpdateBankLead(ctx context.Context, lead *model.BankLead) error
	FindBankLeads(ctx context.Context, status model.LeadStatus) ([]*model.BankLead, error)

	CreateWebDevLead(ctx context.Context, lead *model.WebDevelopmentLead) error
	FindWebDevLeadByID(ctx context.Context, id uuid.UUID) (*model.WebDevelopmentLead, error)
	UpdateWebDevLead(ctx context.Context, lead *model.WebDevelopmentLead) error
	FindWebDevLeads(ctx context.Context, status model.LeadStatus) ([]*model.WebDevelopmentLead, error)

	FindRecentBankLeads(ctx context.Context, limit int) ([]*model.BankLead, error)
	FindRecentWebDevLeads(ctx context.Context, limit int) ([]*model.WebDevelopmentLead, error)
}

type MarketingRepository struct {
	db *gorm.DB
}

func NewMarketingRepository(db *gorm.DB) *MarketingRepository {
	return &MarketingRepository{db: db}
}

func (r *MarketingRepository) CreateBanner(ctx context.Context, banner *model.Banner) error {
	result := r.db.WithContext(ctx).Create(banner)
	if result.Error != nil {
		return fmt.Errorf("failed to create banner: %w", result.Error)
	}
	return nil
}

func (r *MarketingRepository) FindBannerByID(ctx context.Context, id uuid.UUID) (*model.Banner, error) {
	var banner model.Banner
	result := r.db.WithContext(ctx).First(&banner, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBannerNotFound
		}
		return nil, fmt.Errorf("failed to find banner: %w", result.Error)
	}
	return &banner, nil
}

func (r *MarketingRepository) UpdateBanner(ctx context.Context, banner *model.Banner) error {
	result := r.db.WithContext(ctx).Save(banner)
	if result.Error != nil {
		return fmt.Errorf("failed to update banner: %w", result.Error)
	}
	return nil
}

func (r *MarketingRepository) DeleteBanner(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Banner{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete banner: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrBannerNotFound
	}
	return nil
}

func (r *MarketingRepository) FindBanners(ctx context.Context, activeOnly bool) ([]*model.Banner, error) {
	query := r.db.WithContext(ctx).Model(&model.Banner{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var banners []*model.Banner
	result := query.Order("position ASC, created_at DESC").Find(&banners)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list banners: %w", result.Error)
	}
	return banners, nil
}

func (r *MarketingRepository) CreateBankLead(ctx context.Context, lead *model.BankLead) error {
	result := r.db.WithContext(ctx).Create(lead)
	if result.Error != nil {
		return fmt.Errorf("failed to create bank lead: %w", result.Error)
	}
	return nil
}

func (r *MarketingRepository) FindBankLeadByID(ctx context.Context, id uuid.UUID) (*model.BankLead, error) {
	var lead model.BankLead
	result := r.db.WithContext(ctx).First(&lead, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to find bank lead: %w", result.Error)
	}
	return &lead, nil
}

func (r *MarketingRepository) UpdateBankLead(ctx context.Context, lead *model.BankLead) error {
	result := r.db.WithContext(ctx).Save(lead)
	if result.Error != nil {
		return fmt.Errorf("failed to update bank lead: %w", result.Error)
	}
	return nil
}

func (r *MarketingRepository) FindBankLeads(ctx context.Context, status model.LeadStatus) ([]*model.BankLead, error) {
	query := r.db.WithContext(ctx).Model(&model.BankLead{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var leads []*model.BankLead
	result := query.Order("created_at DESC").Find(&leads)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list bank leads: %w", result.Error)
	}
	return leads, nil
}

func (r *MarketingRepository) CreateWebDevLead(ctx context.Context, lead *model.WebDevelopmentLead) error {
	result := r.db.WithContext(ctx).Create(lead)
	if result.Error != nil {
		return fmt.Errorf("failed to create web development lead: %w", result.Error)
	}
	return nil
}

func (r *MarketingRepository) FindWebDevLeadByID(ctx context.Context, id uuid.UUID) (*model.WebDevelopmentLead, error) {
	var lead model.WebDevelopmentLead
	result := r.db.WithContext(ctx).First(&lead, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLeadNotFound
		}
		return nil, fmt.Errorf("failed to find web development lead: %w", result.Error)
	}
	return &lead, nil
}

func (r *MarketingRepository) UpdateWebDevLead(ctx context.Context, lead *model.WebDevelopmentLead) error {
	result := r.db.WithContext(ctx).Save(lead)
	if result.Error != nil {
		return fmt.Errorf("failed to update web development lead: %w", result.Error)
	}
	return nil
}

func (r *MarketingRepository) FindWebDevLeads(ctx context.Context, status model.LeadStatus) ([]*model.WebDevelopmentLead, error) {
	query := r.db.WithContext(ctx).Model(&model.WebDevelopmentLead{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var leads []*model.WebDevelopmentLead
	result := query.Order("created_at DESC").Find(&leads)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list web development leads: %w", result.Error)
	}
	return leads, nil
}

func (r *MarketingRepository) FindRecentBankLeads(ctx context.Context, limit int) ([]*model.BankLead, error) {
	var leads []*model.BankLead
	result := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&leads)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find recent bank leads: %w", result.Error)
	}
	return leads, nil
}

func (r *MarketingRepository) FindRecentWebDevLeads(ctx context.Context, limit int) ([]*model.WebDevelopmentLead, error) {
	var leads []*model.WebDevelopmentLead
	result := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&leads)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find recent web development leads: %w", result.Error)
	}
	return leads, nil
}
