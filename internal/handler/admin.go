// internal/handler/admin.go
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ajaypanchal761/createbharat-sub000/internal/domain"
	"github.com/ajaypanchal761/createbharat-sub000/internal/middleware"
	"github.com/ajaypanchal761/createbharat-sub000/internal/model"
	"github.com/ajaypanchal761/createbharat-sub000/internal/service"
)

type AdminHandler struct {
	adminService     *service.AdminService
	dashboardService *service.DashboardService
	companyService   *service.CompanyService
	mentorService    *service.MentorService
}

func NewAdminHandler(
	adminService *service.AdminService,
	dashboardService *service.DashboardService,
	companyService *service.CompanyService,
	mentorService *service.MentorService,
) *AdminHandler {
	return &AdminHandler{
		adminService:     adminService,
		dashboardService: dashboardService,
		companyService:   companyService,
		mentorService:    mentorService,
	}
}

type AdminAuthResponse struct {
	BaseResponse
	Admin *model.Admin `json:"admin"`
	Token string       `json:"token"`
}

func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.adminService.Login(r.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAccountLocked):
			respondWithError(w, http.StatusForbidden, "Account locked, try again later")
		default:
			respondWithDomainError(w, err)
		}
		return
	}

	respondWithJSON(w, http.StatusOK, AdminAuthResponse{
		BaseResponse: BaseResponse{Ok: true},
		Admin:        output.Admin,
		Token:        output.Token,
	})
}

type AdminResponse struct {
	BaseResponse
	Admin *model.Admin `json:"admin"`
}

type AdminListResponse struct {
	BaseResponse
	Admins []*model.Admin `json:"admins"`
}

func (h *AdminHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())

	admin, err := h.adminService.Get(r.Context(), principal.ID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, AdminResponse{
		BaseResponse: BaseResponse{Ok: true},
		Admin:        admin,
	})
}

// Admin account management, super admin only.

func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	admins, err := h.adminService.List(r.Context())
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, AdminListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Admins:       admins,
	})
}

func (h *AdminHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.AdminCreateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	admin, err := h.adminService.Create(r.Context(), input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, AdminResponse{
		BaseResponse: BaseResponse{Ok: true},
		Admin:        admin,
	})
}

func (h *AdminHandler) Update(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	adminID, ok := urlUUID(w, r, "adminID")
	if !ok {
		return
	}

	var input service.AdminUpdateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	admin, err := h.adminService.Update(r.Context(), principal.ID, adminID, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, AdminResponse{
		BaseResponse: BaseResponse{Ok: true},
		Admin:        admin,
	})
}

func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	adminID, ok := urlUUID(w, r, "adminID")
	if !ok {
		return
	}

	if err := h.adminService.Delete(r.Context(), principal.ID, adminID); err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

func (h *AdminHandler) Unlock(w http.ResponseWriter, r *http.Request) {
	adminID, ok := urlUUID(w, r, "adminID")
	if !ok {
		return
	}

	admin, err := h.adminService.Unlock(r.Context(), adminID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, AdminResponse{
		BaseResponse: BaseResponse{Ok: true},
		Admin:        admin,
	})
}

type DashboardResponse struct {
	BaseResponse
	Summary *service.DashboardSummary `json:"summary"`
}

func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboardService.Summary(r.Context())
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, DashboardResponse{
		BaseResponse: BaseResponse{Ok: true},
		Summary:      summary,
	})
}

type BlockRequest struct {
	Blocked bool `json:"blocked"`
}

// Moderation toggles.

func (h *AdminHandler) SetCompanyBlocked(w http.ResponseWriter, r *http.Request) {
	companyID, ok := urlUUID(w, r, "companyID")
	if !ok {
		return
	}

	var req BlockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if err := h.companyService.SetBlocked(r.Context(), companyID, req.Blocked); err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

func (h *AdminHandler) SetMentorBlocked(w http.ResponseWriter, r *http.Request) {
	mentorID, ok := urlUUID(w, r, "mentorID")
	if !ok {
		return
	}

	var req BlockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	if err := h.mentorService.SetBlocked(r.Context(), mentorID, req.Blocked); err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
