// internal/handler/legal.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ajaypanchal761/createbharat-sub000/internal/auth"
	"github.com/ajaypanchal761/createbharat-sub000/internal/middleware"
	"github.com/ajaypanchal761/createbharat-sub000/internal/model"
	"github.com/ajaypanchal761/createbharat-sub000/internal/service"
)

// maxDocumentSize caps legal document uploads at 5 MiB.
const maxDocumentSize = 5 << 20

type LegalHandler struct {
	legalService *service.LegalService
}

func NewLegalHandler(legalService *service.LegalService) *LegalHandler {
	return &LegalHandler{legalService: legalService}
}

type LegalServiceResponse struct {
	BaseResponse
	Service *model.LegalService `json:"service"`
}

type LegalServiceListResponse struct {
	BaseResponse
	Services []*model.LegalService `json:"services"`
}

// ListServices is the public catalog.
func (h *LegalHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.legalService.ListServices(r.Context())
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, LegalServiceListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Services:     services,
	})
}

func (h *LegalHandler) GetService(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "serviceID")
	if !ok {
		return
	}

	svc, err := h.legalService.GetService(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, LegalServiceResponse{
		BaseResponse: BaseResponse{Ok: true},
		Service:      svc,
	})
}

// CA console endpoints.

func (h *LegalHandler) ListAllServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.legalService.ListAllServices(r.Context())
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, LegalServiceListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Services:     services,
	})
}

func (h *LegalHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())

	var input service.LegalServiceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	svc, err := h.legalService.CreateService(r.Context(), principal.ID, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, LegalServiceResponse{
		BaseResponse: BaseResponse{Ok: true},
		Service:      svc,
	})
}

func (h *LegalHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	id, ok := urlUUID(w, r, "serviceID")
	if !ok {
		return
	}

	var input service.LegalServiceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	svc, err := h.legalService.UpdateService(r.Context(), principal.ID, id, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, LegalServiceResponse{
		BaseResponse: BaseResponse{Ok: true},
		Service:      svc,
	})
}

func (h *LegalHandler) SetServiceActive(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	id, ok := urlUUID(w, r, "serviceID")
	if !ok {
		return
	}

	var req SetActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	svc, err := h.legalService.SetServiceActive(r.Context(), principal.ID, id, req.Active)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, LegalServiceResponse{
		BaseResponse: BaseResponse{Ok: true},
		Service:      svc,
	})
}

func (h *LegalHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	id, ok := urlUUID(w, r, "serviceID")
	if !ok {
		return
	}

	if err := h.legalService.DeleteService(r.Context(), principal.ID, id); err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

// Submission lifecycle.

type SubmissionResponse struct {
	BaseResponse
	Submission *model.LegalSubmission `json:"submission"`
}

type SubmissionListResponse struct {
	BaseResponse
	Submissions []*model.LegalSubmission `json:"submissions"`
}

func (h *LegalHandler) Submit(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())

	var input service.SubmissionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	submission, err := h.legalService.Submit(r.Context(), principal.ID, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, SubmissionResponse{
		BaseResponse: BaseResponse{Ok: true},
		Submission:   submission,
	})
}

func (h *LegalHandler) ListMySubmissions(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())

	submissions, err := h.legalService.ListSubmissionsByUser(r.Context(), principal.ID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, SubmissionListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Submissions:  submissions,
	})
}

// ListSubmissions is the CA work queue, filterable by ?status=.
func (h *LegalHandler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	status := model.SubmissionStatus(r.URL.Query().Get("status"))

	submissions, err := h.legalService.ListSubmissions(r.Context(), status)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, SubmissionListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Submissions:  submissions,
	})
}

func (h *LegalHandler) GetSubmission(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "submissionID")
	if !ok {
		return
	}

	submission, err := h.legalService.GetSubmission(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, SubmissionResponse{
		BaseResponse: BaseResponse{Ok: true},
		Submission:   submission,
	})
}

type DocumentResponse struct {
	BaseResponse
	Document *model.SubmissionDocument `json:"document"`
}

// AttachDocument accepts a multipart form with a "document" file and a
// "name" field.
func (h *LegalHandler) AttachDocument(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	submissionID, ok := urlUUID(w, r, "submissionID")
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxDocumentSize); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("document")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Document file is required")
		return
	}
	defer file.Close()

	if header.Size > maxDocumentSize {
		respondWithError(w, http.StatusRequestEntityTooLarge, "Document exceeds the 5MB limit")
		return
	}

	name := r.FormValue("name")
	if name == "" {
		name = header.Filename
	}

	doc, err := h.legalService.AttachDocument(r.Context(), principal.ID, submissionID, principal.Actor == auth.ActorCA, name, file)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, DocumentResponse{
		BaseResponse: BaseResponse{Ok: true},
		Document:     doc,
	})
}

func (h *LegalHandler) CreatePaymentOrder(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	submissionID, ok := urlUUID(w, r, "submissionID")
	if !ok {
		return
	}

	submission, err := h.legalService.CreatePaymentOrder(r.Context(), principal.ID, submissionID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, SubmissionResponse{
		BaseResponse: BaseResponse{Ok: true},
		Submission:   submission,
	})
}

func (h *LegalHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	submissionID, ok := urlUUID(w, r, "submissionID")
	if !ok {
		return
	}

	var input service.PaymentCallbackInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	submission, err := h.legalService.ConfirmPayment(r.Context(), principal.ID, submissionID, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, SubmissionResponse{
		BaseResponse: BaseResponse{Ok: true},
		Submission:   submission,
	})
}

type SubmissionStatusRequest struct {
	Status  model.SubmissionStatus `json:"status"`
	Remarks string                 `json:"remarks"`
}

// UpdateSubmissionStatus is the CA-side transition endpoint.
func (h *LegalHandler) UpdateSubmissionStatus(w http.ResponseWriter, r *http.Request) {
	submissionID, ok := urlUUID(w, r, "submissionID")
	if !ok {
		return
	}

	var req SubmissionStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	submission, err := h.legalService.UpdateSubmissionStatus(r.Context(), submissionID, req.Status, req.Remarks)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, SubmissionResponse{
		BaseResponse: BaseResponse{Ok: true},
		Submission:   submission,
	})
}

func (h *LegalHandler) CancelSubmission(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	submissionID, ok := urlUUID(w, r, "submissionID")
	if !ok {
		return
	}

	submission, err := h.legalService.CancelSubmission(r.Context(), principal.ID, submissionID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, SubmissionResponse{
		BaseResponse: BaseResponse{Ok: true},
		Submission:   submission,
	})
}
