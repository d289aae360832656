package handler_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ajaypanchal761/createbharat-sub000/internal/auth"
	"github.com/ajaypanchal761/createbharat-sub000/internal/handler"
	"github.com/ajaypanchal761/createbharat-sub000/internal/middleware"
	"github.com/ajaypanchal761/createbharat-sub000/internal/mocks"
	"github.com/ajaypanchal761/createbharat-sub000/internal/model"
	"github.com/ajaypanchal761/createbharat-sub000/internal/service"
	"github.com/ajaypanchal761/createbharat-sub000/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// multipartFile builds a multipart body carrying a single file of the given
// size under field.
func multipartFile(t *testing.T, field, filename string, size int) (*bytes.Buffer, string) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, filename)
	assert.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte("x"), size))
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	return &body, writer.FormDataContentType()
}

func withPrincipal(r *http.Request, id uuid.UUID, actor auth.Actor) *http.Request {
	ctx := context.WithValue(r.Context(), middleware.PrincipalKey, &middleware.Principal{ID: id, Actor: actor})
	return r.WithContext(ctx)
}

func TestUploadLogoSizeCap(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	companyID := uuid.New()

	newHandler := func(repo *mocks.MockCompanyRepositoryIface, mediaStore *mocks.MockMediaStore) *handler.CompanyHandler {
		svc := service.NewCompanyService(repo, auth.NewPasswordHasher(), auth.NewTokenManager("test_secret", time.Hour), mediaStore)
		return handler.NewCompanyHandler(svc)
	}

	t.Run("a logo over the cap is refused before upload", func(t *testing.T) {
		repo := mocks.NewMockCompanyRepositoryIface(ctrl)
		mediaStore := mocks.NewMockMediaStore(ctrl)
		h := newHandler(repo, mediaStore)

		body, contentType := multipartFile(t, "logo", "logo.png", 6<<20)
		req := httptest.NewRequest(http.MethodPost, "/api/companies/me/logo", body)
		req.Header.Set("Content-Type", contentType)
		req = withPrincipal(req, companyID, auth.ActorCompany)

		rec := httptest.NewRecorder()
		h.UploadLogo(rec, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.Contains(t, rec.Body.String(), "5MB")
	})

	t.Run("a logo under the cap is stored", func(t *testing.T) {
		repo := mocks.NewMockCompanyRepositoryIface(ctrl)
		mediaStore := mocks.NewMockMediaStore(ctrl)
		h := newHandler(repo, mediaStore)

		company := &model.Company{ID: companyID}
		repo.EXPECT().FindByID(gomock.Any(), companyID).Return(company, nil)
		mediaStore.EXPECT().Upload(gomock.Any(), gomock.Any(), "company-logos", companyID.String()).
			Return(&storage.Media{URL: "https://cdn.example.com/logo.png"}, nil)
		repo.EXPECT().Update(gomock.Any(), company).Return(nil)

		body, contentType := multipartFile(t, "logo", "logo.png", 64<<10)
		req := httptest.NewRequest(http.MethodPost, "/api/companies/me/logo", body)
		req.Header.Set("Content-Type", contentType)
		req = withPrincipal(req, companyID, auth.ActorCompany)

		rec := httptest.NewRecorder()
		h.UploadLogo(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "https://cdn.example.com/logo.png")
	})
}

func TestApplyResumeSizeCap(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	internshipID := uuid.New()

	svc := service.NewApplicationService(
		mocks.NewMockApplicationRepositoryIface(ctrl),
		mocks.NewMockInternshipRepositoryIface(ctrl),
		mocks.NewMockCompanyRepositoryIface(ctrl),
		mocks.NewMockUserRepositoryIface(ctrl),
		mocks.NewMockBlobStore(ctrl),
		mocks.NewMockEmailSender(ctrl),
	)
	h := handler.NewApplicationHandler(svc)

	router := chi.NewRouter()
	router.Post("/api/internships/{internshipID}/applications", h.Apply)

	t.Run("a resume over the cap is refused before any service call", func(t *testing.T) {
		body, contentType := multipartFile(t, "resume", "resume.pdf", service.MaxResumeSize+1)
		req := httptest.NewRequest(http.MethodPost, "/api/internships/"+internshipID.String()+"/applications", body)
		req.Header.Set("Content-Type", contentType)
		req = withPrincipal(req, userID, auth.ActorUser)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.Contains(t, rec.Body.String(), "10MB")
	})
}
