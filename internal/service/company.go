// internal/service/company.go
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/ajaypanchal761/createbharat-sub000/internal/auth"
	"github.com/ajaypanchal761/createbharat-sub000/internal/domain"
	"github.com/ajaypanchal761/createbharat-sub000/internal/model"
	"github.com/ajaypanchal761/createbharat-sub000/internal/repository"
	"github.com/ajaypanchal761/createbharat-sub000/internal/storage"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type CompanyService struct {
	repo           repository.CompanyRepositoryIface
	passwordHasher *auth.PasswordHasher
	tokenManager   *auth.TokenManager
	mediaStore     storage.MediaStore
	validate       *validator.Validate
}

func NewCompanyService(
	repo repository.CompanyRepositoryIface,
	passwordHasher *auth.PasswordHasher,
	tokenManager *auth.TokenManager,
	mediaStore storage.MediaStore,
) *CompanyService {
	return &CompanyService{
		repo:           repo,
		passwordHasher: passwordHasher,
		tokenManager:   tokenManager,
		mediaStore:     mediaStore,
		validate:       validator.New(),
	}
}

type CompanyRegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
	Website  string `json:"website" validate:"omitempty,url"`
	Industry string `json:"industry"`
	Location string `json:"location"`
	About    string `json:"about"`
}

type CompanyAuthOutput struct {
	Company *model.Company `json:"company"`
	Token   string         `json:"token"`
}

func (s *CompanyService) Register(ctx context.Context, input CompanyRegisterInput) (*CompanyAuthOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	if _, err := s.repo.FindByEmail(ctx, input.Email); !errors.Is(err, domain.ErrCompanyNotFound) {
		if err != nil {
			return nil, err
		}
		return nil, domain.ErrEmailAlreadyExists
	}

	hashedPassword, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	company := &model.Company{
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Name:         input.Name,
		Website:      input.Website,
		Industry:     input.Industry,
		Location:     input.Location,
		About:        input.About,
	}

	if err := s.repo.Create(ctx, company); err != nil {
		return nil, fmt.Errorf("creating company: %w", err)
	}

	token, err := s.tokenManager.Generate(company.ID.String(), auth.ActorCompany)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &CompanyAuthOutput{Company: company, Token: token}, nil
}

func (s *CompanyService) Login(ctx context.Context, input LoginInput) (*CompanyAuthOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	company, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrCompanyNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if company.IsBlocked {
		return nil, domain.ErrAccountBlocked
	}
	if !company.IsActive {
		return nil, domain.ErrAccountInactive
	}

	verified, err := s.passwordHasher.Verify(input.Password, company.PasswordHash)
	if err != nil || !verified {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokenManager.Generate(company.ID.String(), auth.ActorCompany)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &CompanyAuthOutput{Company: company, Token: token}, nil
}

func (s *CompanyService) GetProfile(ctx context.Context, companyID uuid.UUID) (*model.Company, error) {
	return s.repo.FindByID(ctx, companyID)
}

type CompanyUpdateInput struct {
	Name     string `json:"name"`
	Website  string `json:"website" validate:"omitempty,url"`
	Industry string `json:"industry"`
	Location string `json:"location"`
	About    string `json:"about"`
}

func (s *CompanyService) UpdateProfile(ctx context.Context, companyID uuid.UUID, input CompanyUpdateInput) (*model.Company, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	company, err := s.repo.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		company.Name = input.Name
	}
	if input.Website != "" {
		company.Website = input.Website
	}
	if input.Industry != "" {
		company.Industry = input.Industry
	}
	if input.Location != "" {
		company.Location = input.Location
	}
	if input.About != "" {
		company.About = input.About
	}

	if err := s.repo.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// UploadLogo stores the image and swaps the URL on the profile. The previous
// asset is removed best effort.
func (s *CompanyService) UploadLogo(ctx context.Context, companyID uuid.UUID, r io.Reader) (*model.Company, error) {
	company, err := s.repo.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	media, err := s.mediaStore.Upload(ctx, r, "company-logos", companyID.String())
	if err != nil {
		return nil, fmt.Errorf("uploading logo: %w", err)
	}

	company.LogoURL = media.URL
	if err := s.repo.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// Deactivate soft-disables the company account.
func (s *CompanyService) Deactivate(ctx context.Context, companyID uuid.UUID) error {
	company, err := s.repo.FindByID(ctx, companyID)
	if err != nil {
		return err
	}

	company.IsActive = false
	return s.repo.Update(ctx, company)
}

// SetBlocked is the admin moderation toggle.
func (s *CompanyService) SetBlocked(ctx context.Context, companyID uuid.UUID, blocked bool) error {
	company, err := s.repo.FindByID(ctx, companyID)
	if err != nil {
		return err
	}

	company.IsBlocked = blocked
	if err := s.repo.Update(ctx, company); err != nil {
		return err
	}
	slog.Info("company block state changed", "company", companyID, "blocked", blocked)
	return nil
}
