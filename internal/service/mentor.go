// internal/service/mentor.go
package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ajaypanchal761/createbharat-sub000/internal/auth"
	"github.com/ajaypanchal761/createbharat-sub000/internal/domain"
	"github.com/ajaypanchal761/createbharat-sub000/internal/model"
	"github.com/ajaypanchal761/createbharat-sub000/internal/repository"
	"github.com/ajaypanchal761/createbharat-sub000/internal/storage"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type MentorService struct {
	repo           repository.MentorRepositoryIface
	passwordHasher *auth.PasswordHasher
	tokenManager   *auth.TokenManager
	mediaStore     storage.MediaStore
	validate       *validator.Validate
}

func NewMentorService(
	repo repository.MentorRepositoryIface,
	passwordHasher *auth.PasswordHasher,
	tokenManager *auth.TokenManager,
	mediaStore storage.MediaStore,
) *MentorService {
	return &MentorService{
		repo:           repo,
		passwordHasher: passwordHasher,
		tokenManager:   tokenManager,
		mediaStore:     mediaStore,
		validate:       validator.New(),
	}
}

type MentorRegisterInput struct {
	Email      string   `json:"email" validate:"required,email"`
	Password   string   `json:"password" validate:"required,min=8"`
	Name       string   `json:"name" validate:"required"`
	Title      string   `json:"title"`
	Bio        string   `json:"bio"`
	Categories []string `json:"categories" validate:"required,min=1"`
	Experience int      `json:"experience_years" validate:"gte=0"`
	ChatPrice  int64    `json:"chat_price" validate:"gte=0"`
	CallPrice  int64    `json:"call_price" validate:"gte=0"`
	VideoPrice int64    `json:"video_price" validate:"gte=0"`
}

type MentorAuthOutput struct {
	Mentor *model.Mentor `json:"mentor"`
	Token  string        `json:"token"`
}

func (s *MentorService) Register(ctx context.Context, input MentorRegisterInput) (*MentorAuthOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	if _, err := s.repo.FindByEmail(ctx, input.Email); !errors.Is(err, domain.ErrMentorNotFound) {
		if err != nil {
			return nil, err
		}
		return nil, domain.ErrEmailAlreadyExists
	}

	hashedPassword, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	mentor := &model.Mentor{
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Name:         input.Name,
		Title:        input.Title,
		Bio:          input.Bio,
		Categories:   model.Categories(input.Categories),
		Experience:   input.Experience,
		ChatPrice:    input.ChatPrice,
		CallPrice:    input.CallPrice,
		VideoPrice:   input.VideoPrice,
	}

	if err := s.repo.Create(ctx, mentor); err != nil {
		return nil, fmt.Errorf("creating mentor: %w", err)
	}

	token, err := s.tokenManager.Generate(mentor.ID.String(), auth.ActorMentor)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &MentorAuthOutput{Mentor: mentor, Token: token}, nil
}

func (s *MentorService) Login(ctx context.Context, input LoginInput) (*MentorAuthOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	mentor, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrMentorNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if mentor.IsBlocked {
		return nil, domain.ErrAccountBlocked
	}
	if !mentor.IsActive {
		return nil, domain.ErrAccountInactive
	}

	verified, err := s.passwordHasher.Verify(input.Password, mentor.PasswordHash)
	if err != nil || !verified {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokenManager.Generate(mentor.ID.String(), auth.ActorMentor)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &MentorAuthOutput{Mentor: mentor, Token: token}, nil
}

func (s *MentorService) Get(ctx context.Context, id uuid.UUID) (*model.Mentor, error) {
	return s.repo.FindByID(ctx, id)
}

// List is the public directory with category and text search.
func (s *MentorService) List(ctx context.Context, filter repository.MentorFilter) ([]*model.Mentor, int64, error) {
	return s.repo.FindAll(ctx, filter)
}

type MentorUpdateInput struct {
	Name       string   `json:"name"`
	Title      string   `json:"title"`
	Bio        string   `json:"bio"`
	Categories []string `json:"categories"`
	Experience int      `json:"experience_years" validate:"gte=0"`
	ChatPrice  int64    `json:"chat_price" validate:"gte=0"`
	CallPrice  int64    `json:"call_price" validate:"gte=0"`
	VideoPrice int64    `json:"video_price" validate:"gte=0"`
}

func (s *MentorService) UpdateProfile(ctx context.Context, mentorID uuid.UUID, input MentorUpdateInput) (*model.Mentor, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	mentor, err := s.repo.FindByID(ctx, mentorID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		mentor.Name = input.Name
	}
	if input.Title != "" {
		mentor.Title = input.Title
	}
	if input.Bio != "" {
		mentor.Bio = input.Bio
	}
	if len(input.Categories) > 0 {
		mentor.Categories = model.Categories(input.Categories)
	}
	if input.Experience > 0 {
		mentor.Experience = input.Experience
	}
	if input.ChatPrice > 0 {
		mentor.ChatPrice = input.ChatPrice
	}
	if input.CallPrice > 0 {
		mentor.CallPrice = input.CallPrice
	}
	if input.VideoPrice > 0 {
		mentor.VideoPrice = input.VideoPrice
	}

	if err := s.repo.Update(ctx, mentor); err != nil {
		return nil, err
	}
	return mentor, nil
}

func (s *MentorService) UploadAvatar(ctx context.Context, mentorID uuid.UUID, r io.Reader) (*model.Mentor, error) {
	mentor, err := s.repo.FindByID(ctx, mentorID)
	if err != nil {
		return nil, err
	}

	media, err := s.mediaStore.Upload(ctx, r, "mentor-avatars", mentorID.String())
	if err != nil {
		return nil, fmt.Errorf("uploading avatar: %w", err)
	}

	mentor.AvatarURL = media.URL
	if err := s.repo.Update(ctx, mentor); err != nil {
		return nil, err
	}
	return mentor, nil
}

// SetBlocked is the admin moderation toggle.
func (s *MentorService) SetBlocked(ctx context.Context, mentorID uuid.UUID, blocked bool) error {
	mentor, err := s.repo.FindByID(ctx, mentorID)
	if err != nil {
		return err
	}

	mentor.IsBlocked = blocked
	return s.repo.Update(ctx, mentor)
}
