// internal/service/internship.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ajaypanchal761/createbharat-sub000/internal/domain"
	"github.com/ajaypanchal761/createbharat-sub000/internal/model"
	"github.com/ajaypanchal761/createbharat-sub000/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type InternshipService struct {
	repo      repository.InternshipRepositoryIface
	companies repository.CompanyRepositoryIface
	validate  *validator.Validate
}

func NewInternshipService(
	repo repository.InternshipRepositoryIface,
	companies repository.CompanyRepositoryIface,
) *InternshipService {
	return &InternshipService{
		repo:      repo,
		companies: companies,
		validate:  validator.New(),
	}
}

type InternshipInput struct {
	Title         string   `json:"title" validate:"required"`
	Description   string   `json:"description" validate:"required"`
	Location      string   `json:"location"`
	Mode          string   `json:"mode" validate:"required,oneof=remote onsite hybrid"`
	Category      string   `json:"category"`
	Skills        []string `json:"skills"`
	StipendMin    int64    `json:"stipend_min" validate:"gte=0"`
	StipendMax    int64    `json:"stipend_max" validate:"gte=0,gtefield=StipendMin"`
	DurationWeeks int      `json:"duration_weeks" validate:"gte=0"`
	Openings      int      `json:"openings" validate:"gte=1"`
	ApplyBy       *time.Time `json:"apply_by"`
}

func (s *InternshipService) Create(ctx context.Context, companyID uuid.UUID, input InternshipInput) (*model.Internship, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	internship := &model.Internship{
		CompanyID:     companyID,
		Title:         input.Title,
		Description:   input.Description,
		Location:      input.Location,
		Mode:          model.InternshipMode(input.Mode),
		Category:      input.Category,
		Skills:        model.Categories(input.Skills),
		StipendMin:    input.StipendMin,
		StipendMax:    input.StipendMax,
		DurationWeeks: input.DurationWeeks,
		Openings:      input.Openings,
		ApplyBy:       input.ApplyBy,
	}

	if err := s.repo.Create(ctx, internship); err != nil {
		return nil, err
	}

	if err := s.companies.AdjustCounters(ctx, companyID, 1, 0); err != nil {
		slog.Warn("adjusting company counters failed", "error", err, "company", companyID)
	}

	return internship, nil
}

func (s *InternshipService) Get(ctx context.Context, id uuid.UUID) (*model.Internship, error) {
	return s.repo.FindByID(ctx, id)
}

// List is the public browse endpoint; only open postings are returned.
func (s *InternshipService) List(ctx context.Context, filter repository.InternshipFilter) ([]*model.Internship, int64, error) {
	filter.OpenOnly = true
	return s.repo.FindAll(ctx, filter)
}

func (s *InternshipService) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*model.Internship, error) {
	return s.repo.FindByCompany(ctx, companyID)
}

func (s *InternshipService) Update(ctx context.Context, companyID, id uuid.UUID, input InternshipInput) (*model.Internship, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	internship, err := s.ownedBy(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	internship.Title = input.Title
	internship.Description = input.Description
	internship.Location = input.Location
	internship.Mode = model.InternshipMode(input.Mode)
	internship.Category = input.Category
	internship.Skills = model.Categories(input.Skills)
	internship.StipendMin = input.StipendMin
	internship.StipendMax = input.StipendMax
	internship.DurationWeeks = input.DurationWeeks
	internship.Openings = input.Openings
	internship.ApplyBy = input.ApplyBy

	if err := s.repo.Update(ctx, internship); err != nil {
		return nil, err
	}
	return internship, nil
}

// Close stops new applications without deleting the posting or its
// application history.
func (s *InternshipService) Close(ctx context.Context, companyID, id uuid.UUID) (*model.Internship, error) {
	internship, err := s.ownedBy(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	internship.IsOpen = false
	if err := s.repo.Update(ctx, internship); err != nil {
		return nil, err
	}
	return internship, nil
}

func (s *InternshipService) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	if _, err := s.ownedBy(ctx, companyID, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.companies.AdjustCounters(ctx, companyID, -1, 0); err != nil {
		slog.Warn("adjusting company counters failed", "error", err, "company", companyID)
	}
	return nil
}

// ownedBy loads an internship and verifies the company owns it.
func (s *InternshipService) ownedBy(ctx context.Context, companyID, id uuid.UUID) (*model.Internship, error) {
	internship, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if internship.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	return internship, nil
}
