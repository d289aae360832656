// internal/service/admin.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ajaypanchal761/createbharat-sub000/internal/auth"
	"github.com/ajaypanchal761/createbharat-sub000/internal/domain"
	"github.com/ajaypanchal761/createbharat-sub000/internal/model"
	"github.com/ajaypanchal761/createbharat-sub000/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// maxFailedLogins is the lockout threshold; lockoutWindow is how long the
// account stays locked once tripped.
const (
	maxFailedLogins = 5
	lockoutWindow   = 15 * time.Minute
)

type AdminService struct {
	repo           repository.AdminRepositoryIface
	passwordHasher *auth.PasswordHasher
	tokenManager   *auth.TokenManager
	validate       *validator.Validate
}

func NewAdminService(
	repo repository.AdminRepositoryIface,
	passwordHasher *auth.PasswordHasher,
	tokenManager *auth.TokenManager,
) *AdminService {
	return &AdminService{
		repo:           repo,
		passwordHasher: passwordHasher,
		tokenManager:   tokenManager,
		validate:       validator.New(),
	}
}

type AdminAuthOutput struct {
	Admin *model.Admin `json:"admin"`
	Token string       `json:"token"`
}

// Login authenticates an admin with a failed-attempt counter. Five misses
// lock the account for fifteen minutes; a successful login resets the
// counter.
func (s *AdminService) Login(ctx context.Context, input LoginInput) (*AdminAuthOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	admin, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	now := time.Now()
	if admin.Locked(now) {
		return nil, domain.ErrAccountLocked
	}
	if !admin.IsActive {
		return nil, domain.ErrAccountInactive
	}

	verified, err := s.passwordHasher.Verify(input.Password, admin.PasswordHash)
	if err != nil || !verified {
		admin.FailedAttempts++
		if admin.FailedAttempts >= maxFailedLogins {
			lockedUntil := now.Add(lockoutWindow)
			admin.LockedUntil = &lockedUntil
			admin.FailedAttempts = 0
			slog.Warn("admin account locked after repeated failures", "admin", admin.ID)
		}
		if updateErr := s.repo.Update(ctx, admin); updateErr != nil {
			slog.Error("recording failed login failed", "error", updateErr, "admin", admin.ID)
		}
		return nil, domain.ErrInvalidCredentials
	}

	if admin.FailedAttempts > 0 || admin.LockedUntil != nil {
		admin.FailedAttempts = 0
		admin.LockedUntil = nil
		if err := s.repo.Update(ctx, admin); err != nil {
			slog.Error("resetting lockout counters failed", "error", err, "admin", admin.ID)
		}
	}

	token, err := s.tokenManager.Generate(admin.ID.String(), auth.ActorAdmin)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &AdminAuthOutput{Admin: admin, Token: token}, nil
}

type AdminCreateInput struct {
	Email       string          `json:"email" validate:"required,email"`
	Password    string          `json:"password" validate:"required,min=8"`
	Name        string          `json:"name" validate:"required"`
	Role        model.AdminRole `json:"role" validate:"required,oneof=super_admin admin"`
	Permissions map[string]bool `json:"permissions"`
}

// Create adds an admin account. Route-level role checks restrict this to
// super admins.
func (s *AdminService) Create(ctx context.Context, input AdminCreateInput) (*model.Admin, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	if _, err := s.repo.FindByEmail(ctx, input.Email); !errors.Is(err, domain.ErrAdminNotFound) {
		if err != nil {
			return nil, err
		}
		return nil, domain.ErrEmailAlreadyExists
	}

	hashedPassword, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	admin := &model.Admin{
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Name:         input.Name,
		Role:         input.Role,
		Permissions:  model.PermissionMap(input.Permissions),
	}

	if err := s.repo.Create(ctx, admin); err != nil {
		return nil, fmt.Errorf("creating admin: %w", err)
	}
	return admin, nil
}

func (s *AdminService) Get(ctx context.Context, id uuid.UUID) (*model.Admin, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AdminService) List(ctx context.Context) ([]*model.Admin, error) {
	return s.repo.FindAll(ctx)
}

type AdminUpdateInput struct {
	Name        string          `json:"name"`
	Role        model.AdminRole `json:"role" validate:"omitempty,oneof=super_admin admin"`
	Permissions map[string]bool `json:"permissions"`
	IsActive    *bool           `json:"is_active"`
}

func (s *AdminService) Update(ctx context.Context, actorID, id uuid.UUID, input AdminUpdateInput) (*model.Admin, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	admin, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// An admin cannot demote or deactivate themselves
	if actorID == id && (input.Role == model.RoleAdmin || (input.IsActive != nil && !*input.IsActive)) {
		return nil, domain.ErrForbidden
	}

	if input.Name != "" {
		admin.Name = input.Name
	}
	if input.Role != "" {
		admin.Role = input.Role
	}
	if input.Permissions != nil {
		admin.Permissions = model.PermissionMap(input.Permissions)
	}
	if input.IsActive != nil {
		admin.IsActive = *input.IsActive
	}

	if err := s.repo.Update(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

func (s *AdminService) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	if actorID == id {
		return domain.ErrForbidden
	}
	return s.repo.Delete(ctx, id)
}

// Unlock clears the lockout counters ahead of the window expiring.
func (s *AdminService) Unlock(ctx context.Context, id uuid.UUID) (*model.Admin, error) {
	admin, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	admin.FailedAttempts = 0
	admin.LockedUntil = nil
	if err := s.repo.Update(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// Seed creates the bootstrap super admin when no account with the email
// exists. Used by the seed-admin command.
func (s *AdminService) Seed(ctx context.Context, email, password, name string) (*model.Admin, error) {
	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailAlreadyExists
	} else if !errors.Is(err, domain.ErrAdminNotFound) {
		return nil, err
	}

	return s.Create(ctx, AdminCreateInput{
		Email:    email,
		Password: password,
		Name:     name,
		Role:     model.RoleSuperAdmin,
	})
}
