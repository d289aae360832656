// internal/service/marketing.go
package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/ajaypanchal761/createbharat-sub000/internal/domain"
	"github.com/ajaypanchal761/createbharat-sub000/internal/model"
	"github.com/ajaypanchal761/createbharat-sub000/internal/repository"
	"github.com/ajaypanchal761/createbharat-sub000/internal/storage"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// MarketingService covers the public lead-capture forms and the promo
// banner carousel.
type MarketingService struct {
	repo       repository.MarketingRepositoryIface
	mediaStore storage.MediaStore
	validate   *validator.Validate
}

func NewMarketingService(repo repository.MarketingRepositoryIface, mediaStore storage.MediaStore) *MarketingService {
	return &MarketingService{repo: repo, mediaStore: mediaStore, validate: validator.New()}
}

type BannerInput struct {
	Title    string `validate:"required"`
	LinkURL  string `validate:"omitempty,url"`
	Position int    `validate:"gte=0"`
	Image    io.Reader
}

func (s *MarketingService) CreateBanner(ctx context.Context, input BannerInput) (*model.Banner, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if input.Image == nil {
		return nil, fmt.Errorf("%w: banner image required", domain.ErrInvalidInput)
	}

	media, err := s.mediaStore.Upload(ctx, input.Image, "banners", uuid.NewString())
	if err != nil {
		return nil, fmt.Errorf("uploading banner: %w", err)
	}

	banner := &model.Banner{
		Title:    input.Title,
		ImageURL: media.URL,
		PublicID: media.PublicID,
		LinkURL:  input.LinkURL,
		Position: input.Position,
	}

	if err := s.repo.CreateBanner(ctx, banner); err != nil {
		if deleteErr := s.mediaStore.Delete(ctx, media.PublicID); deleteErr != nil {
			slog.Warn("removing orphaned banner image failed", "error", deleteErr, "public_id", media.PublicID)
		}
		return nil, err
	}
	return banner, nil
}

// ListBanners returns the active carousel in position order.
func (s *MarketingService) ListBanners(ctx context.Context) ([]*model.Banner, error) {
	return s.repo.FindBanners(ctx, true)
}

func (s *MarketingService) ListAllBanners(ctx context.Context) ([]*model.Banner, error) {
	return s.repo.FindBanners(ctx, false)
}

func (s *MarketingService) SetBannerActive(ctx context.Context, id uuid.UUID, active bool) (*model.Banner, error) {
	banner, err := s.repo.FindBannerByID(ctx, id)
	if err != nil {
		return nil, err
	}

	banner.IsActive = active
	if err := s.repo.UpdateBanner(ctx, banner); err != nil {
		return nil, err
	}
	return banner, nil
}

// DeleteBanner removes the row and then the hosted image best effort.
func (s *MarketingService) DeleteBanner(ctx context.Context, id uuid.UUID) error {
	banner, err := s.repo.FindBannerByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteBanner(ctx, id); err != nil {
		return err
	}

	if err := s.mediaStore.Delete(ctx, banner.PublicID); err != nil {
		slog.Warn("removing banner image failed", "error", err, "public_id", banner.PublicID)
	}
	return nil
}

type BankLeadInput struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
	City     string `json:"city"`
	BankName string `json:"bank_name"`
}

// SubmitBankLead records a public bank-account-opening enquiry. No account
// or authentication involved.
func (s *MarketingService) SubmitBankLead(ctx context.Context, input BankLeadInput) (*model.BankLead, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	lead := &model.BankLead{
		Name:     input.Name,
		Phone:    input.Phone,
		Email:    input.Email,
		City:     input.City,
		BankName: input.BankName,
	}

	if err := s.repo.CreateBankLead(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

type WebDevLeadInput struct {
	Name        string `json:"name" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	Email       string `json:"email" validate:"omitempty,email"`
	Business    string `json:"business"`
	ProjectType string `json:"project_type"`
	Budget      string `json:"budget"`
	Details     string `json:"details"`
}

func (s *MarketingService) SubmitWebDevLead(ctx context.Context, input WebDevLeadInput) (*model.WebDevelopmentLead, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	lead := &model.WebDevelopmentLead{
		Name:        input.Name,
		Phone:       input.Phone,
		Email:       input.Email,
		Business:    input.Business,
		ProjectType: input.ProjectType,
		Budget:      input.Budget,
		Details:     input.Details,
	}

	if err := s.repo.CreateWebDevLead(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

func (s *MarketingService) ListBankLeads(ctx context.Context, status model.LeadStatus) ([]*model.BankLead, error) {
	return s.repo.FindBankLeads(ctx, status)
}

func (s *MarketingService) ListWebDevLeads(ctx context.Context, status model.LeadStatus) ([]*model.WebDevelopmentLead, error) {
	return s.repo.FindWebDevLeads(ctx, status)
}

type LeadStatusInput struct {
	Status model.LeadStatus `json:"status" validate:"required,oneof=new contacted converted dropped"`
	Notes  string           `json:"notes"`
}

func (s *MarketingService) UpdateBankLead(ctx context.Context, id uuid.UUID, input LeadStatusInput) (*model.BankLead, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	lead, err := s.repo.FindBankLeadByID(ctx, id)
	if err != nil {
		return nil, err
	}

	lead.Status = input.Status
	if input.Notes != "" {
		lead.Notes = input.Notes
	}

	if err := s.repo.UpdateBankLead(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

func (s *MarketingService) UpdateWebDevLead(ctx context.Context, id uuid.UUID, input LeadStatusInput) (*model.WebDevelopmentLead, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	lead, err := s.repo.FindWebDevLeadByID(ctx, id)
	if err != nil {
		return nil, err
	}

	lead.Status = input.Status
	if input.Notes != "" {
		lead.Notes = input.Notes
	}

	if err := s.repo.UpdateWebDevLead(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}
