// internal/service/ca.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ajaypanchal761/createbharat-sub000/internal/auth"
	"github.com/ajaypanchal761/createbharat-sub000/internal/domain"
	"github.com/ajaypanchal761/createbharat-sub000/internal/model"
	"github.com/ajaypanchal761/createbharat-sub000/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// CAService manages the single chartered accountant account behind the
// legal services desk.
type CAService struct {
	repo           repository.CARepositoryIface
	passwordHasher *auth.PasswordHasher
	tokenManager   *auth.TokenManager
	validate       *validator.Validate
}

func NewCAService(
	repo repository.CARepositoryIface,
	passwordHasher *auth.PasswordHasher,
	tokenManager *auth.TokenManager,
) *CAService {
	return &CAService{
		repo:           repo,
		passwordHasher: passwordHasher,
		tokenManager:   tokenManager,
		validate:       validator.New(),
	}
}

type CARegisterInput struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	Name           string `json:"name" validate:"required"`
	Phone          string `json:"phone"`
	MembershipNo   string `json:"membership_no" validate:"required"`
	FirmName       string `json:"firm_name"`
	ExperienceYrs  int    `json:"experience_years" validate:"gte=0"`
	Specialization string `json:"specialization"`
}

type CAAuthOutput struct {
	CA    *model.CharteredAccountant `json:"ca"`
	Token string                     `json:"token"`
}

// Register creates the CA account. Only one may exist; the count check runs
// before the insert and a concurrent second registration loses on the email
// unique index.
func (s *CAService) Register(ctx context.Context, input CARegisterInput) (*CAAuthOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, domain.ErrCAAlreadyExists
	}

	hashedPassword, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	ca := &model.CharteredAccountant{
		Email:          input.Email,
		PasswordHash:   hashedPassword,
		Name:           input.Name,
		Phone:          input.Phone,
		MembershipNo:   input.MembershipNo,
		FirmName:       input.FirmName,
		ExperienceYrs:  input.ExperienceYrs,
		Specialization: input.Specialization,
	}

	if err := s.repo.Create(ctx, ca); err != nil {
		return nil, fmt.Errorf("creating ca: %w", err)
	}

	token, err := s.tokenManager.Generate(ca.ID.String(), auth.ActorCA)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &CAAuthOutput{CA: ca, Token: token}, nil
}

func (s *CAService) Login(ctx context.Context, input LoginInput) (*CAAuthOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	ca, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrCANotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !ca.IsActive {
		return nil, domain.ErrAccountInactive
	}

	verified, err := s.passwordHasher.Verify(input.Password, ca.PasswordHash)
	if err != nil || !verified {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokenManager.Generate(ca.ID.String(), auth.ActorCA)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &CAAuthOutput{CA: ca, Token: token}, nil
}

func (s *CAService) GetProfile(ctx context.Context, caID uuid.UUID) (*model.CharteredAccountant, error) {
	return s.repo.FindByID(ctx, caID)
}

type CAUpdateInput struct {
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	FirmName       string `json:"firm_name"`
	ExperienceYrs  int    `json:"experience_years" validate:"gte=0"`
	Specialization string `json:"specialization"`
}

func (s *CAService) UpdateProfile(ctx context.Context, caID uuid.UUID, input CAUpdateInput) (*model.CharteredAccountant, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	ca, err := s.repo.FindByID(ctx, caID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		ca.Name = input.Name
	}
	if input.Phone != "" {
		ca.Phone = input.Phone
	}
	if input.FirmName != "" {
		ca.FirmName = input.FirmName
	}
	if input.ExperienceYrs > 0 {
		ca.ExperienceYrs = input.ExperienceYrs
	}
	if input.Specialization != "" {
		ca.Specialization = input.Specialization
	}

	if err := s.repo.Update(ctx, ca); err != nil {
		return nil, err
	}
	return ca, nil
}
