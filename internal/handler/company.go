// internal/handler/company.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ajaypanchal761/createbharat-sub000/internal/middleware"
	"github.com/ajaypanchal761/createbharat-sub000/internal/model"
	"github.com/ajaypanchal761/createbharat-sub000/internal/service"
)

// maxLogoSize caps logo uploads at 5 MiB.
const maxLogoSize = 5 << 20

type CompanyHandler struct {
	companyService *service.CompanyService
}

func NewCompanyHandler(companyService *service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

type CompanyAuthResponse struct {
	BaseResponse
	Company *model.Company `json:"company"`
	Token   string         `json:"token"`
}

func (h *CompanyHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input service.CompanyRegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.companyService.Register(r.Context(), input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, CompanyAuthResponse{
		BaseResponse: BaseResponse{Ok: true},
		Company:      output.Company,
		Token:        output.Token,
	})
}

func (h *CompanyHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.companyService.Login(r.Context(), input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, CompanyAuthResponse{
		BaseResponse: BaseResponse{Ok: true},
		Company:      output.Company,
		Token:        output.Token,
	})
}

type CompanyResponse struct {
	BaseResponse
	Company *model.Company `json:"company"`
}

func (h *CompanyHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())

	company, err := h.companyService.GetProfile(r.Context(), principal.ID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, CompanyResponse{
		BaseResponse: BaseResponse{Ok: true},
		Company:      company,
	})
}

func (h *CompanyHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())

	var input service.CompanyUpdateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	company, err := h.companyService.UpdateProfile(r.Context(), principal.ID, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, CompanyResponse{
		BaseResponse: BaseResponse{Ok: true},
		Company:      company,
	})
}

// UploadLogo accepts a multipart form with a "logo" file field.
func (h *CompanyHandler) UploadLogo(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())

	if err := r.ParseMultipartForm(maxLogoSize); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("logo")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Logo file is required")
		return
	}
	defer file.Close()

	if header.Size > maxLogoSize {
		respondWithError(w, http.StatusRequestEntityTooLarge, "Logo exceeds the 5MB limit")
		return
	}

	company, err := h.companyService.UploadLogo(r.Context(), principal.ID, file)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, CompanyResponse{
		BaseResponse: BaseResponse{Ok: true},
		Company:      company,
	})
}

func (h *CompanyHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())

	if err := h.companyService.Deactivate(r.Context(), principal.ID); err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
