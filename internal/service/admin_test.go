package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/ajaypanchal761/createbharat-sub000/internal/auth"
	"github.com/ajaypanchal761/createbharat-sub000/internal/domain"
	"github.com/ajaypanchal761/createbharat-sub000/internal/mocks"
	"github.com/ajaypanchal761/createbharat-sub000/internal/model"
	"github.com/ajaypanchal761/createbharat-sub000/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newAdminService(repo *mocks.MockAdminRepositoryIface) *service.AdminService {
	return service.NewAdminService(repo, auth.NewPasswordHasher(), auth.NewTokenManager("test_secret", time.Hour))
}

func TestAdminLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hasher := auth.NewPasswordHasher()
	hashed, _ := hasher.Hash("correct_password")

	activeAdmin := func() *model.Admin {
		return &model.Admin{
			ID:           uuid.New(),
			Email:        "ops@createbharat.in",
			PasswordHash: hashed,
			Name:         "Ops",
			Role:         model.RoleAdmin,
			IsActive:     true,
		}
	}

	t.Run("successful login resets the failure counter", func(t *testing.T) {
		admin := activeAdmin()
		admin.FailedAttempts = 3

		repo := mocks.NewMockAdminRepositoryIface(ctrl)
		repo.EXPECT().FindByEmail(gomock.Any(), admin.Email).Return(admin, nil)
		repo.EXPECT().Update(gomock.Any(), admin).Return(nil)

		svc := newAdminService(repo)
		out, err := svc.Login(context.Background(), service.LoginInput{Email: admin.Email, Password: "correct_password"})

		assert.NoError(t, err)
		assert.NotEmpty(t, out.Token)
		assert.Equal(t, 0, out.Admin.FailedAttempts)
		assert.Nil(t, out.Admin.LockedUntil)
	})

	t.Run("wrong password increments the counter", func(t *testing.T) {
		admin := activeAdmin()

		repo := mocks.NewMockAdminRepositoryIface(ctrl)
		repo.EXPECT().FindByEmail(gomock.Any(), admin.Email).Return(admin, nil)
		repo.EXPECT().Update(gomock.Any(), admin).Return(nil)

		svc := newAdminService(repo)
		_, err := svc.Login(context.Background(), service.LoginInput{Email: admin.Email, Password: "wrong"})

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		assert.Equal(t, 1, admin.FailedAttempts)
		assert.Nil(t, admin.LockedUntil)
	})

	t.Run("fifth failure locks the account for the window", func(t *testing.T) {
		admin := activeAdmin()
		admin.FailedAttempts = 4

		repo := mocks.NewMockAdminRepositoryIface(ctrl)
		repo.EXPECT().FindByEmail(gomock.Any(), admin.Email).Return(admin, nil)
		repo.EXPECT().Update(gomock.Any(), admin).Return(nil)

		svc := newAdminService(repo)
		_, err := svc.Login(context.Background(), service.LoginInput{Email: admin.Email, Password: "wrong"})

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		assert.NotNil(t, admin.LockedUntil)
		assert.WithinDuration(t, time.Now().Add(15*time.Minute), *admin.LockedUntil, 5*time.Second)
		assert.Equal(t, 0, admin.FailedAttempts)
	})

	t.Run("locked account rejects even the right password", func(t *testing.T) {
		admin := activeAdmin()
		lockedUntil := time.Now().Add(10 * time.Minute)
		admin.LockedUntil = &lockedUntil

		repo := mocks.NewMockAdminRepositoryIface(ctrl)
		repo.EXPECT().FindByEmail(gomock.Any(), admin.Email).Return(admin, nil)

		svc := newAdminService(repo)
		_, err := svc.Login(context.Background(), service.LoginInput{Email: admin.Email, Password: "correct_password"})

		assert.ErrorIs(t, err, domain.ErrAccountLocked)
	})

	t.Run("an expired lock no longer blocks", func(t *testing.T) {
		admin := activeAdmin()
		lockedUntil := time.Now().Add(-1 * time.Minute)
		admin.LockedUntil = &lockedUntil

		repo := mocks.NewMockAdminRepositoryIface(ctrl)
		repo.EXPECT().FindByEmail(gomock.Any(), admin.Email).Return(admin, nil)
		repo.EXPECT().Update(gomock.Any(), admin).Return(nil)

		svc := newAdminService(repo)
		out, err := svc.Login(context.Background(), service.LoginInput{Email: admin.Email, Password: "correct_password"})

		assert.NoError(t, err)
		assert.Nil(t, out.Admin.LockedUntil)
	})

	t.Run("unknown email maps to invalid credentials", func(t *testing.T) {
		repo := mocks.NewMockAdminRepositoryIface(ctrl)
		repo.EXPECT().FindByEmail(gomock.Any(), "nobody@createbharat.in").Return(nil, domain.ErrAdminNotFound)

		svc := newAdminService(repo)
		_, err := svc.Login(context.Background(), service.LoginInput{Email: "nobody@createbharat.in", Password: "whatever"})

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestAdminSelfManagement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adminID := uuid.New()

	t.Run("an admin cannot demote themselves", func(t *testing.T) {
		repo := mocks.NewMockAdminRepositoryIface(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), adminID).Return(&model.Admin{ID: adminID, Role: model.RoleSuperAdmin, IsActive: true}, nil)

		svc := newAdminService(repo)
		_, err := svc.Update(context.Background(), adminID, adminID, service.AdminUpdateInput{Role: model.RoleAdmin})

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("an admin cannot deactivate themselves", func(t *testing.T) {
		inactive := false
		repo := mocks.NewMockAdminRepositoryIface(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), adminID).Return(&model.Admin{ID: adminID, Role: model.RoleSuperAdmin, IsActive: true}, nil)

		svc := newAdminService(repo)
		_, err := svc.Update(context.Background(), adminID, adminID, service.AdminUpdateInput{IsActive: &inactive})

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("an admin cannot delete themselves", func(t *testing.T) {
		svc := newAdminService(mocks.NewMockAdminRepositoryIface(ctrl))
		err := svc.Delete(context.Background(), adminID, adminID)

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("unlock clears the counters", func(t *testing.T) {
		lockedUntil := time.Now().Add(10 * time.Minute)
		admin := &model.Admin{ID: adminID, FailedAttempts: 0, LockedUntil: &lockedUntil, IsActive: true}

		repo := mocks.NewMockAdminRepositoryIface(ctrl)
		repo.EXPECT().FindByID(gomock.Any(), adminID).Return(admin, nil)
		repo.EXPECT().Update(gomock.Any(), admin).Return(nil)

		svc := newAdminService(repo)
		out, err := svc.Unlock(context.Background(), adminID)

		assert.NoError(t, err)
		assert.Nil(t, out.LockedUntil)
		assert.Equal(t, 0, out.FailedAttempts)
	})
}
