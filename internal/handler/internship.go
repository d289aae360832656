// internal/handler/internship.go
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ajaypanchal761/createbharat-sub000/internal/middleware"
	"github.com/ajaypanchal761/createbharat-sub000/internal/model"
	"github.com/ajaypanchal761/createbharat-sub000/internal/repository"
	"github.com/ajaypanchal761/createbharat-sub000/internal/service"
)

type InternshipHandler struct {
	internshipService *service.InternshipService
}

func NewInternshipHandler(internshipService *service.InternshipService) *InternshipHandler {
	return &InternshipHandler{internshipService: internshipService}
}

type InternshipResponse struct {
	BaseResponse
	Internship *model.Internship `json:"internship"`
}

type InternshipListResponse struct {
	BaseResponse
	Internships []*model.Internship `json:"internships"`
	Total       int64               `json:"total"`
}

// List is the public browse endpoint with filter query parameters.
func (h *InternshipHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := repository.InternshipFilter{
		Category: q.Get("category"),
		Location: q.Get("location"),
		Mode:     model.InternshipMode(q.Get("mode")),
		Search:   q.Get("search"),
		Limit:    20,
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil && limit > 0 && limit <= 100 {
		filter.Limit = limit
	}
	if offset, err := strconv.Atoi(q.Get("offset")); err == nil && offset >= 0 {
		filter.Offset = offset
	}

	internships, total, err := h.internshipService.List(r.Context(), filter)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, InternshipListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Internships:  internships,
		Total:        total,
	})
}

func (h *InternshipHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "internshipID")
	if !ok {
		return
	}

	internship, err := h.internshipService.Get(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, InternshipResponse{
		BaseResponse: BaseResponse{Ok: true},
		Internship:   internship,
	})
}

func (h *InternshipHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())

	var input service.InternshipInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	internship, err := h.internshipService.Create(r.Context(), principal.ID, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, InternshipResponse{
		BaseResponse: BaseResponse{Ok: true},
		Internship:   internship,
	})
}

// ListMine returns all of the company's postings, open or closed.
func (h *InternshipHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())

	internships, err := h.internshipService.ListByCompany(r.Context(), principal.ID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, InternshipListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Internships:  internships,
		Total:        int64(len(internships)),
	})
}

func (h *InternshipHandler) Update(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	id, ok := urlUUID(w, r, "internshipID")
	if !ok {
		return
	}

	var input service.InternshipInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	internship, err := h.internshipService.Update(r.Context(), principal.ID, id, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, InternshipResponse{
		BaseResponse: BaseResponse{Ok: true},
		Internship:   internship,
	})
}

func (h *InternshipHandler) Close(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	id, ok := urlUUID(w, r, "internshipID")
	if !ok {
		return
	}

	internship, err := h.internshipService.Close(r.Context(), principal.ID, id)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, InternshipResponse{
		BaseResponse: BaseResponse{Ok: true},
		Internship:   internship,
	})
}

func (h *InternshipHandler) Delete(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	id, ok := urlUUID(w, r, "internshipID")
	if !ok {
		return
	}

	if err := h.internshipService.Delete(r.Context(), principal.ID, id); err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
