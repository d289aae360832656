// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")

	// User-related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrPhoneAlreadyExists = errors.New("phone number already exists")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordTooWeak    = errors.New("password too weak")
	ErrAccountInactive    = errors.New("account is deactivated")
	ErrAccountBlocked     = errors.New("account is blocked")
	ErrAccountLocked      = errors.New("account is locked")

	// OTP errors
	ErrInvalidOTP = errors.New("invalid otp")
	ErrOTPExpired = errors.New("otp expired")

	// Company / internship errors
	ErrCompanyNotFound    = errors.New("company not found")
	ErrInternshipNotFound = errors.New("internship not found")
	ErrInternshipClosed   = errors.New("internship is closed")
	ErrAlreadyApplied     = errors.New("already applied to this internship")
	ErrApplicationMissing = errors.New("application not found")

	// Mentor / booking errors
	ErrMentorNotFound      = errors.New("mentor not found")
	ErrBookingNotFound     = errors.New("booking not found")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrAlreadyPaid         = errors.New("payment already completed")
	ErrPaymentNotCompleted = errors.New("payment not completed")
	ErrBadPaymentSignature = errors.New("payment signature mismatch")
	ErrAlreadyReviewed     = errors.New("booking already reviewed")

	// CA / legal errors
	ErrCANotFound        = errors.New("chartered accountant not found")
	ErrCAAlreadyExists   = errors.New("a chartered accountant account already exists")
	ErrServiceNotFound   = errors.New("legal service not found")
	ErrSubmissionMissing = errors.New("legal submission not found")

	// Loan errors
	ErrLoanSchemeNotFound = errors.New("loan scheme not found")

	// Training errors
	ErrCourseNotFound    = errors.New("course not found")
	ErrModuleNotFound    = errors.New("module not found")
	ErrTopicNotFound     = errors.New("topic not found")
	ErrQuizNotFound      = errors.New("quiz not found")
	ErrDuplicateOrdinal  = errors.New("ordinal number already used in this parent")
	ErrAlreadyEnrolled   = errors.New("already enrolled in this course")
	ErrNotEnrolled       = errors.New("not enrolled in this course")
	ErrQuizNotPassed     = errors.New("quiz not passed")
	ErrCertificateUnpaid = errors.New("certificate fee not paid")

	// Admin errors
	ErrAdminNotFound    = errors.New("admin not found")
	ErrInsufficientRole = errors.New("insufficient role")

	// Marketing errors
	ErrBannerNotFound = errors.New("banner not found")
	ErrLeadNotFound   = errors.New("lead not found")
)
