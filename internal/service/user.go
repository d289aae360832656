// internal/service/user.go
package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ajaypanchal761/createbharat-sub000/internal/auth"
	"github.com/ajaypanchal761/createbharat-sub000/internal/config"
	"github.com/ajaypanchal761/createbharat-sub000/internal/domain"
	"github.com/ajaypanchal761/createbharat-sub000/internal/email"
	"github.com/ajaypanchal761/createbharat-sub000/internal/model"
	"github.com/ajaypanchal761/createbharat-sub000/internal/repository"
	"github.com/ajaypanchal761/createbharat-sub000/internal/sms"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// referralAlphabet excludes easily-confused characters.
const referralAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

type UserService struct {
	repo           repository.UserRepositoryIface
	passwordHasher *auth.PasswordHasher
	tokenManager   *auth.TokenManager
	emailService   email.Sender
	smsSender      sms.Sender
	config         *config.Config
	validate       *validator.Validate
}

func NewUserService(
	repo repository.UserRepositoryIface,
	passwordHasher *auth.PasswordHasher,
	tokenManager *auth.TokenManager,
	emailService email.Sender,
	smsSender sms.Sender,
	config *config.Config,
) *UserService {
	return &UserService{
		repo:           repo,
		passwordHasher: passwordHasher,
		tokenManager:   tokenManager,
		emailService:   emailService,
		smsSender:      smsSender,
		config:         config,
		validate:       validator.New(),
	}
}

type RegisterInput struct {
	Username       string `json:"username" validate:"required,min=3,max=30"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"required,e164"`
	Password       string `json:"password" validate:"required,min=8"`
	FirstName      string `json:"first_name" validate:"required"`
	LastName       string `json:"last_name"`
	City           string `json:"city"`
	State          string `json:"state"`
	ReferredByCode string `json:"referred_by_code"`
}

type RegisterOutput struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// Register creates the account, issues an OTP for phone verification, and
// returns a token. Duplicate email/phone/username is rejected before any
// row is written.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	if _, err := s.repo.FindByEmail(ctx, input.Email); !errors.Is(err, domain.ErrUserNotFound) {
		if err != nil {
			return nil, err
		}
		return nil, domain.ErrEmailAlreadyExists
	}
	if _, err := s.repo.FindByPhone(ctx, input.Phone); !errors.Is(err, domain.ErrUserNotFound) {
		if err != nil {
			return nil, err
		}
		return nil, domain.ErrPhoneAlreadyExists
	}
	if _, err := s.repo.FindByUsername(ctx, input.Username); !errors.Is(err, domain.ErrUserNotFound) {
		if err != nil {
			return nil, err
		}
		return nil, domain.ErrUsernameTaken
	}

	hashedPassword, err := s.passwordHasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	referralCode, err := s.generateReferralCode(ctx)
	if err != nil {
		return nil, fmt.Errorf("generating referral code: %w", err)
	}

	otp, err := auth.GenerateOTP()
	if err != nil {
		return nil, err
	}
	otpExpiry := time.Now().Add(auth.OTPTTL)

	user := &model.User{
		Username:       input.Username,
		Email:          input.Email,
		Phone:          input.Phone,
		PasswordHash:   hashedPassword,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		City:           input.City,
		State:          input.State,
		ReferralCode:   referralCode,
		ReferredByCode: input.ReferredByCode,
		OTPCode:        otp,
		OTPExpiresAt:   &otpExpiry,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	// OTP delivery failure is fatal: the caller cannot verify without it
	if err := s.smsSender.Send(ctx, user.Phone, fmt.Sprintf("Your CreateBharat verification code is %s. Valid for 10 minutes.", otp)); err != nil {
		return nil, fmt.Errorf("sending otp: %w", err)
	}

	// Welcome email is best effort
	if err := s.emailService.SendEmail(email.EmailData{
		To:           user.Email,
		FromName:     "CreateBharat",
		Subject:      "Welcome to CreateBharat",
		TemplateName: "welcome",
		TemplateData: map[string]string{"Name": user.FirstName, "BaseURL": s.config.BaseURL},
	}); err != nil {
		slog.Warn("welcome email failed", "error", err, "user", user.ID)
	}

	token, err := s.tokenManager.Generate(user.ID.String(), auth.ActorUser)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &RegisterOutput{User: user, Token: token}, nil
}

type RequestOTPInput struct {
	Phone string `json:"phone" validate:"required,e164"`
}

// RequestOTP issues a fresh code for passwordless login or re-verification.
func (s *UserService) RequestOTP(ctx context.Context, input RequestOTPInput) error {
	if err := s.validate.Struct(input); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	user, err := s.repo.FindByPhone(ctx, input.Phone)
	if err != nil {
		return err
	}

	if err := ensureUsable(user); err != nil {
		return err
	}

	otp, err := auth.GenerateOTP()
	if err != nil {
		return err
	}
	expiry := time.Now().Add(auth.OTPTTL)

	user.OTPCode = otp
	user.OTPExpiresAt = &expiry
	if err := s.repo.Update(ctx, user); err != nil {
		return fmt.Errorf("storing otp: %w", err)
	}

	if err := s.smsSender.Send(ctx, user.Phone, fmt.Sprintf("Your CreateBharat login code is %s. Valid for 10 minutes.", otp)); err != nil {
		return fmt.Errorf("sending otp: %w", err)
	}
	return nil
}

type VerifyOTPInput struct {
	Phone string `json:"phone" validate:"required,e164"`
	Code  string `json:"code" validate:"required,len=6,numeric"`
}

type LoginOutput struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// VerifyOTP checks the stored code. Expiry runs before comparison: a stale
// code fails even when it matches. Success marks the phone verified, clears
// the OTP fields, and logs the user in.
func (s *UserService) VerifyOTP(ctx context.Context, input VerifyOTPInput) (*LoginOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	user, err := s.repo.FindByPhone(ctx, input.Phone)
	if err != nil {
		return nil, err
	}

	if err := ensureUsable(user); err != nil {
		return nil, err
	}

	expired, matched := auth.VerifyOTP(user.OTPCode, input.Code, user.OTPExpiresAt, time.Now())
	if expired {
		return nil, domain.ErrOTPExpired
	}
	if !matched {
		return nil, domain.ErrInvalidOTP
	}

	user.IsPhoneVerified = true
	user.OTPCode = ""
	user.OTPExpiresAt = nil
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}

	token, err := s.tokenManager.Generate(user.ID.String(), auth.ActorUser)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &LoginOutput{User: user, Token: token}, nil
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login is the password flow; the OTP flow is RequestOTP + VerifyOTP.
func (s *UserService) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	user, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := ensureUsable(user); err != nil {
		return nil, err
	}

	verified, err := s.passwordHasher.Verify(input.Password, user.PasswordHash)
	if err != nil || !verified {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokenManager.Generate(user.ID.String(), auth.ActorUser)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	return &LoginOutput{User: user, Token: token}, nil
}

func (s *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	return s.repo.FindByID(ctx, userID)
}

type UpdateProfileInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	City      string `json:"city"`
	State     string `json:"state"`
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.City != "" {
		user.City = input.City
	}
	if input.State != "" {
		user.State = input.State
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Deactivate soft-disables the account; the row stays for referential
// integrity and the auth middleware refuses inactive principals.
func (s *UserService) Deactivate(ctx context.Context, userID uuid.UUID) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	user.IsActive = false
	return s.repo.Update(ctx, user)
}

// generateReferralCode draws codes until one is unused. Collisions on an
// 8-char code over a 32-rune alphabet are rare enough that a retry loop is
// sufficient.
func (s *UserService) generateReferralCode(ctx context.Context) (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		buf := make([]byte, 8)
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		for i := range buf {
			buf[i] = referralAlphabet[int(buf[i])%len(referralAlphabet)]
		}
		code := string(buf)

		exists, err := s.repo.ReferralCodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", fmt.Errorf("could not generate a unique referral code")
}

// ensureUsable rejects accounts the platform has disabled.
func ensureUsable(user *model.User) error {
	if user.IsBlocked {
		return domain.ErrAccountBlocked
	}
	if !user.IsActive {
		return domain.ErrAccountInactive
	}
	return nil
}
