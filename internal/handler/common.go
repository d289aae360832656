package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ajaypanchal761/createbharat-sub000/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ErrorResponse struct {
	BaseResponse
	Error   string    `json:"error"`
	Details *[]string `json:"details,omitempty"`
}

type BaseResponse struct {
	Ok bool `json:"ok"`
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// respondWithDomainError maps the shared sentinel errors to HTTP statuses.
// Handlers with flow-specific mappings switch before falling back to this.
func respondWithDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrInvalidCredentials):
		respondWithError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrForbidden),
		errors.Is(err, domain.ErrInsufficientRole),
		errors.Is(err, domain.ErrAccountBlocked),
		errors.Is(err, domain.ErrAccountInactive),
		errors.Is(err, domain.ErrAccountLocked):
		respondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrCompanyNotFound),
		errors.Is(err, domain.ErrInternshipNotFound),
		errors.Is(err, domain.ErrApplicationMissing),
		errors.Is(err, domain.ErrMentorNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrCANotFound),
		errors.Is(err, domain.ErrServiceNotFound),
		errors.Is(err, domain.ErrSubmissionMissing),
		errors.Is(err, domain.ErrLoanSchemeNotFound),
		errors.Is(err, domain.ErrCourseNotFound),
		errors.Is(err, domain.ErrModuleNotFound),
		errors.Is(err, domain.ErrTopicNotFound),
		errors.Is(err, domain.ErrQuizNotFound),
		errors.Is(err, domain.ErrAdminNotFound),
		errors.Is(err, domain.ErrBannerNotFound),
		errors.Is(err, domain.ErrLeadNotFound):
		respondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrEmailAlreadyExists),
		errors.Is(err, domain.ErrPhoneAlreadyExists),
		errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrAlreadyApplied),
		errors.Is(err, domain.ErrAlreadyEnrolled),
		errors.Is(err, domain.ErrAlreadyPaid),
		errors.Is(err, domain.ErrAlreadyReviewed),
		errors.Is(err, domain.ErrCAAlreadyExists),
		errors.Is(err, domain.ErrDuplicateOrdinal),
		errors.Is(err, domain.ErrInvalidTransition):
		respondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrOTPExpired),
		errors.Is(err, domain.ErrInvalidOTP),
		errors.Is(err, domain.ErrBadPaymentSignature),
		errors.Is(err, domain.ErrPaymentNotCompleted),
		errors.Is(err, domain.ErrInternshipClosed),
		errors.Is(err, domain.ErrNotEnrolled),
		errors.Is(err, domain.ErrQuizNotPassed),
		errors.Is(err, domain.ErrCertificateUnpaid):
		respondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// urlUUID parses a uuid path parameter; the bool reports success and a 400
// has already been written on failure.
func urlUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
