// internal/handler/application.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ajaypanchal761/createbharat-sub000/internal/middleware"
	"github.com/ajaypanchal761/createbharat-sub000/internal/model"
	"github.com/ajaypanchal761/createbharat-sub000/internal/service"
)

type ApplicationHandler struct {
	applicationService *service.ApplicationService
}

func NewApplicationHandler(applicationService *service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

type ApplicationResponse struct {
	BaseResponse
	Application *model.Application `json:"application"`
}

type ApplicationListResponse struct {
	BaseResponse
	Applications []*model.Application `json:"applications"`
}

// Apply accepts a multipart form with a "resume" file and optional
// "cover_letter" field.
func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	internshipID, ok := urlUUID(w, r, "internshipID")
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(service.MaxResumeSize); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Resume file is required")
		return
	}
	defer file.Close()

	if header.Size > service.MaxResumeSize {
		respondWithError(w, http.StatusRequestEntityTooLarge, "Resume exceeds the 10MB limit")
		return
	}

	application, err := h.applicationService.Apply(r.Context(), principal.ID, internshipID, service.ApplyInput{
		CoverLetter:    r.FormValue("cover_letter"),
		ResumeFilename: header.Filename,
		ResumeSize:     header.Size,
		Resume:         file,
	})
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, ApplicationResponse{
		BaseResponse: BaseResponse{Ok: true},
		Application:  application,
	})
}

func (h *ApplicationHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())

	applications, err := h.applicationService.ListByUser(r.Context(), principal.ID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ApplicationListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Applications: applications,
	})
}

// ListForInternship is the company-side applicant list.
func (h *ApplicationHandler) ListForInternship(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	internshipID, ok := urlUUID(w, r, "internshipID")
	if !ok {
		return
	}

	applications, err := h.applicationService.ListByInternship(r.Context(), principal.ID, internshipID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ApplicationListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Applications: applications,
	})
}

type StatusUpdateRequest struct {
	Status model.ApplicationStatus `json:"status"`
}

func (h *ApplicationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	applicationID, ok := urlUUID(w, r, "applicationID")
	if !ok {
		return
	}

	var req StatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	application, err := h.applicationService.UpdateStatus(r.Context(), principal.ID, applicationID, req.Status)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ApplicationResponse{
		BaseResponse: BaseResponse{Ok: true},
		Application:  application,
	})
}

func (h *ApplicationHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	applicationID, ok := urlUUID(w, r, "applicationID")
	if !ok {
		return
	}

	application, err := h.applicationService.Withdraw(r.Context(), principal.ID, applicationID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ApplicationResponse{
		BaseResponse: BaseResponse{Ok: true},
		Application:  application,
	})
}

// DownloadResume streams the stored resume as an attachment.
func (h *ApplicationHandler) DownloadResume(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	applicationID, ok := urlUUID(w, r, "applicationID")
	if !ok {
		return
	}

	application, err := h.applicationService.ResumeInfo(r.Context(), principal.ID, applicationID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", `attachment; filename="`+application.ResumeFilename+`"`)
	if err := h.applicationService.StreamResume(r.Context(), application, w); err != nil {
		// Headers are already out; nothing useful can be sent to the client
		slog.ErrorContext(r.Context(), "Resume stream error", "error", err, "application", applicationID)
	}
}
