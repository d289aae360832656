package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ajaypanchal761/createbharat-sub000/internal/auth"
	"github.com/ajaypanchal761/createbharat-sub000/internal/config"
	"github.com/ajaypanchal761/createbharat-sub000/internal/domain"
	"github.com/ajaypanchal761/createbharat-sub000/internal/mocks"
	"github.com/ajaypanchal761/createbharat-sub000/internal/model"
	"github.com/ajaypanchal761/createbharat-sub000/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newUserService(repo *mocks.MockUserRepositoryIface, emailSender *mocks.MockEmailSender, smsSender *mocks.MockSMSSender) *service.UserService {
	cfg := &config.Config{BaseURL: "http://localhost:8080"}
	return service.NewUserService(
		repo,
		auth.NewPasswordHasher(),
		auth.NewTokenManager("test_secret", time.Hour),
		emailSender,
		smsSender,
		cfg,
	)
}

func TestUserRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	input := service.RegisterInput{
		Username:  "asha_k",
		Email:     "asha@example.com",
		Phone:     "+919876543210",
		Password:  "long_enough_pw",
		FirstName: "Asha",
		LastName:  "Kumar",
		City:      "Indore",
	}

	t.Run("successful registration issues otp and token", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		emailSender := mocks.NewMockEmailSender(ctrl)
		smsSender := mocks.NewMockSMSSender(ctrl)

		repo.EXPECT().FindByEmail(gomock.Any(), input.Email).Return(nil, domain.ErrUserNotFound)
		repo.EXPECT().FindByPhone(gomock.Any(), input.Phone).Return(nil, domain.ErrUserNotFound)
		repo.EXPECT().FindByUsername(gomock.Any(), input.Username).Return(nil, domain.ErrUserNotFound)
		repo.EXPECT().ReferralCodeExists(gomock.Any(), gomock.Any()).Return(false, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		smsSender.EXPECT().Send(gomock.Any(), input.Phone, gomock.Any()).Return(nil)
		emailSender.EXPECT().SendEmail(gomock.Any()).Return(nil)

		svc := newUserService(repo, emailSender, smsSender)
		out, err := svc.Register(context.Background(), input)

		assert.NoError(t, err)
		assert.NotEmpty(t, out.Token)
		assert.Len(t, out.User.ReferralCode, 8)
		assert.Regexp(t, `^\d{6}$`, out.User.OTPCode)
		assert.NotNil(t, out.User.OTPExpiresAt)
		assert.False(t, out.User.IsPhoneVerified)
	})

	t.Run("duplicate email is rejected before any write", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)

		repo.EXPECT().FindByEmail(gomock.Any(), input.Email).Return(&model.User{}, nil)

		svc := newUserService(repo, mocks.NewMockEmailSender(ctrl), mocks.NewMockSMSSender(ctrl))
		_, err := svc.Register(context.Background(), input)

		assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	})

	t.Run("duplicate phone is rejected", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)

		repo.EXPECT().FindByEmail(gomock.Any(), input.Email).Return(nil, domain.ErrUserNotFound)
		repo.EXPECT().FindByPhone(gomock.Any(), input.Phone).Return(&model.User{}, nil)

		svc := newUserService(repo, mocks.NewMockEmailSender(ctrl), mocks.NewMockSMSSender(ctrl))
		_, err := svc.Register(context.Background(), input)

		assert.ErrorIs(t, err, domain.ErrPhoneAlreadyExists)
	})

	t.Run("otp delivery failure fails the registration", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		smsSender := mocks.NewMockSMSSender(ctrl)

		repo.EXPECT().FindByEmail(gomock.Any(), input.Email).Return(nil, domain.ErrUserNotFound)
		repo.EXPECT().FindByPhone(gomock.Any(), input.Phone).Return(nil, domain.ErrUserNotFound)
		repo.EXPECT().FindByUsername(gomock.Any(), input.Username).Return(nil, domain.ErrUserNotFound)
		repo.EXPECT().ReferralCodeExists(gomock.Any(), gomock.Any()).Return(false, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		smsSender.EXPECT().Send(gomock.Any(), input.Phone, gomock.Any()).Return(errors.New("twilio down"))

		svc := newUserService(repo, mocks.NewMockEmailSender(ctrl), smsSender)
		_, err := svc.Register(context.Background(), input)

		assert.Error(t, err)
	})

	t.Run("invalid phone format is rejected", func(t *testing.T) {
		bad := input
		bad.Phone = "98765"

		svc := newUserService(mocks.NewMockUserRepositoryIface(ctrl), mocks.NewMockEmailSender(ctrl), mocks.NewMockSMSSender(ctrl))
		_, err := svc.Register(context.Background(), bad)

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestUserLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hasher := auth.NewPasswordHasher()
	hashed, _ := hasher.Hash("correct_password")

	activeUser := func() *model.User {
		return &model.User{
			ID:           uuid.New(),
			Email:        "asha@example.com",
			PasswordHash: hashed,
			IsActive:     true,
		}
	}

	t.Run("successful login returns a token", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		user := activeUser()
		repo.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)

		svc := newUserService(repo, mocks.NewMockEmailSender(ctrl), mocks.NewMockSMSSender(ctrl))
		out, err := svc.Login(context.Background(), service.LoginInput{Email: user.Email, Password: "correct_password"})

		assert.NoError(t, err)
		assert.NotEmpty(t, out.Token)
		assert.Equal(t, user.ID, out.User.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		user := activeUser()
		repo.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)

		svc := newUserService(repo, mocks.NewMockEmailSender(ctrl), mocks.NewMockSMSSender(ctrl))
		_, err := svc.Login(context.Background(), service.LoginInput{Email: user.Email, Password: "wrong"})

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email maps to invalid credentials", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		repo.EXPECT().FindByEmail(gomock.Any(), "nobody@example.com").Return(nil, domain.ErrUserNotFound)

		svc := newUserService(repo, mocks.NewMockEmailSender(ctrl), mocks.NewMockSMSSender(ctrl))
		_, err := svc.Login(context.Background(), service.LoginInput{Email: "nobody@example.com", Password: "whatever"})

		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("blocked account cannot log in", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		user := activeUser()
		user.IsBlocked = true
		repo.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)

		svc := newUserService(repo, mocks.NewMockEmailSender(ctrl), mocks.NewMockSMSSender(ctrl))
		_, err := svc.Login(context.Background(), service.LoginInput{Email: user.Email, Password: "correct_password"})

		assert.ErrorIs(t, err, domain.ErrAccountBlocked)
	})

	t.Run("deactivated account cannot log in", func(t *testing.T) {
		repo := mocks.NewMockUserRepositoryIface(ctrl)
		user := activeUser()
		user.IsActive = false
		repo.EXPECT().FindByEmail(gomock.Any(), user.Email).Return(user, nil)

		svc := newUserService(repo, mocks.NewMockEmailSender(ctrl), mocks.NewMockSMSSender(ctrl))
		_, err := svc.Login(context.Background(), service.LoginInput{Email: user.Email, Password: "correct_password"})

		assert.ErrorIs(t, err, domain.ErrAccountInactive)
	})
}

func TestUserVerifyOTP(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	phone := "+919876543210"
	otpUser := func(code string, expiresAt *time.Time) *model.User {
		return &model.User{
			ID:           uuid.New(),
			Phone:        phone,
			IsActive:     true,
			OTPCode:      code,
			OTPExpiresAt: expiresAt,
		}
	}

	t.Run("matching code verifies the phone and logs in", func(t *testing.T) {
		future := time.Now().Add(5 * time.Minute)
		user := otpUser("123456", &future)

		repo := mocks.NewMockUserRepositoryIface(ctrl)
		repo.EXPECT().FindByPhone(gomock.Any(), phone).Return(user, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

		svc := newUserService(repo, mocks.NewMockEmailSender(ctrl), mocks.NewMockSMSSender(ctrl))
		out, err := svc.VerifyOTP(context.Background(), service.VerifyOTPInput{Phone: phone, Code: "123456"})

		assert.NoError(t, err)
		assert.NotEmpty(t, out.Token)
		assert.True(t, out.User.IsPhoneVerified)
		assert.Empty(t, out.User.OTPCode)
		assert.Nil(t, out.User.OTPExpiresAt)
	})

	t.Run("expired code fails even when it matches", func(t *testing.T) {
		past := time.Now().Add(-1 * time.Minute)
		user := otpUser("123456", &past)

		repo := mocks.NewMockUserRepositoryIface(ctrl)
		repo.EXPECT().FindByPhone(gomock.Any(), phone).Return(user, nil)

		svc := newUserService(repo, mocks.NewMockEmailSender(ctrl), mocks.NewMockSMSSender(ctrl))
		_, err := svc.VerifyOTP(context.Background(), service.VerifyOTPInput{Phone: phone, Code: "123456"})

		assert.ErrorIs(t, err, domain.ErrOTPExpired)
	})

	t.Run("wrong code fails", func(t *testing.T) {
		future := time.Now().Add(5 * time.Minute)
		user := otpUser("123456", &future)

		repo := mocks.NewMockUserRepositoryIface(ctrl)
		repo.EXPECT().FindByPhone(gomock.Any(), phone).Return(user, nil)

		svc := newUserService(repo, mocks.NewMockEmailSender(ctrl), mocks.NewMockSMSSender(ctrl))
		_, err := svc.VerifyOTP(context.Background(), service.VerifyOTPInput{Phone: phone, Code: "654321"})

		assert.ErrorIs(t, err, domain.ErrInvalidOTP)
	})
}
