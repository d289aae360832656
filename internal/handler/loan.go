// internal/handler/loan.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ajaypanchal761/createbharat-sub000/internal/model"
	"github.com/ajaypanchal761/createbharat-sub000/internal/service"
)

type LoanHandler struct {
	loanService *service.LoanService
}

func NewLoanHandler(loanService *service.LoanService) *LoanHandler {
	return &LoanHandler{loanService: loanService}
}

type LoanSchemeResponse struct {
	BaseResponse
	Scheme *model.LoanScheme `json:"scheme"`
}

type LoanSchemeListResponse struct {
	BaseResponse
	Schemes []*model.LoanScheme `json:"schemes"`
}

func (h *LoanHandler) List(w http.ResponseWriter, r *http.Request) {
	schemes, err := h.loanService.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, LoanSchemeListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Schemes:      schemes,
	})
}

func (h *LoanHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "schemeID")
	if !ok {
		return
	}

	scheme, err := h.loanService.Get(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, LoanSchemeResponse{
		BaseResponse: BaseResponse{Ok: true},
		Scheme:       scheme,
	})
}

// TrackApplication counts a click on the provider's apply link.
func (h *LoanHandler) TrackApplication(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "schemeID")
	if !ok {
		return
	}

	if err := h.loanService.TrackApplication(r.Context(), id); err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

// Admin-side catalog management below.

func (h *LoanHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	schemes, err := h.loanService.ListAll(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, LoanSchemeListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Schemes:      schemes,
	})
}

func (h *LoanHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.LoanSchemeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	scheme, err := h.loanService.Create(r.Context(), input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, LoanSchemeResponse{
		BaseResponse: BaseResponse{Ok: true},
		Scheme:       scheme,
	})
}

func (h *LoanHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "schemeID")
	if !ok {
		return
	}

	var input service.LoanSchemeInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	scheme, err := h.loanService.Update(r.Context(), id, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, LoanSchemeResponse{
		BaseResponse: BaseResponse{Ok: true},
		Scheme:       scheme,
	})
}

type SetActiveRequest struct {
	Active bool `json:"active"`
}

func (h *LoanHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "schemeID")
	if !ok {
		return
	}

	var req SetActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	scheme, err := h.loanService.SetActive(r.Context(), id, req.Active)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, LoanSchemeResponse{
		BaseResponse: BaseResponse{Ok: true},
		Scheme:       scheme,
	})
}

func (h *LoanHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "schemeID")
	if !ok {
		return
	}

	if err := h.loanService.Delete(r.Context(), id); err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
