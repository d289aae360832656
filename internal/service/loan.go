// internal/service/loan.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ajaypanchal761/createbharat-sub000/internal/domain"
	"github.com/ajaypanchal761/createbharat-sub000/internal/model"
	"github.com/ajaypanchal761/createbharat-sub000/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// LoanService serves the read-mostly loan scheme catalog. Schemes link out
// to the provider; the platform tracks interest counters only.
type LoanService struct {
	repo     repository.LoanSchemeRepositoryIface
	validate *validator.Validate
}

func NewLoanService(repo repository.LoanSchemeRepositoryIface) *LoanService {
	return &LoanService{repo: repo, validate: validator.New()}
}

type LoanSchemeInput struct {
	Name         string  `json:"name" validate:"required"`
	Provider     string  `json:"provider" validate:"required"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	MinAmount    int64   `json:"min_amount" validate:"gte=0"`
	MaxAmount    int64   `json:"max_amount" validate:"gte=0,gtefield=MinAmount"`
	InterestRate float64 `json:"interest_rate" validate:"gte=0"`
	TenureMonths int     `json:"tenure_months" validate:"gte=0"`
	Eligibility  string  `json:"eligibility"`
	ApplyURL     string  `json:"apply_url" validate:"omitempty,url"`
}

func (s *LoanService) Create(ctx context.Context, input LoanSchemeInput) (*model.LoanScheme, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	scheme := &model.LoanScheme{
		Name:         input.Name,
		Provider:     input.Provider,
		Description:  input.Description,
		Category:     input.Category,
		MinAmount:    input.MinAmount,
		MaxAmount:    input.MaxAmount,
		InterestRate: input.InterestRate,
		TenureMonths: input.TenureMonths,
		Eligibility:  input.Eligibility,
		ApplyURL:     input.ApplyURL,
	}

	if err := s.repo.Create(ctx, scheme); err != nil {
		return nil, err
	}
	return scheme, nil
}

// Get returns a scheme and counts the view.
func (s *LoanService) Get(ctx context.Context, id uuid.UUID) (*model.LoanScheme, error) {
	scheme, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.IncrementViews(ctx, id); err != nil {
		slog.Warn("incrementing loan scheme views failed", "error", err, "scheme", id)
	}
	return scheme, nil
}

// List returns active schemes for the public catalog.
func (s *LoanService) List(ctx context.Context, category string) ([]*model.LoanScheme, error) {
	return s.repo.FindAll(ctx, category, true)
}

// ListAll includes inactive schemes for the admin console.
func (s *LoanService) ListAll(ctx context.Context, category string) ([]*model.LoanScheme, error) {
	return s.repo.FindAll(ctx, category, false)
}

func (s *LoanService) Update(ctx context.Context, id uuid.UUID, input LoanSchemeInput) (*model.LoanScheme, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	scheme, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	scheme.Name = input.Name
	scheme.Provider = input.Provider
	scheme.Description = input.Description
	scheme.Category = input.Category
	scheme.MinAmount = input.MinAmount
	scheme.MaxAmount = input.MaxAmount
	scheme.InterestRate = input.InterestRate
	scheme.TenureMonths = input.TenureMonths
	scheme.Eligibility = input.Eligibility
	scheme.ApplyURL = input.ApplyURL

	if err := s.repo.Update(ctx, scheme); err != nil {
		return nil, err
	}
	return scheme, nil
}

func (s *LoanService) SetActive(ctx context.Context, id uuid.UUID, active bool) (*model.LoanScheme, error) {
	scheme, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	scheme.IsActive = active
	if err := s.repo.Update(ctx, scheme); err != nil {
		return nil, err
	}
	return scheme, nil
}

func (s *LoanService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// TrackApplication records that a user followed the apply link.
func (s *LoanService) TrackApplication(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.IncrementApplications(ctx, id)
}
