// internal/handler/marketing.go
package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ajaypanchal761/createbharat-sub000/internal/model"
	"github.com/ajaypanchal761/createbharat-sub000/internal/service"
)

// maxBannerSize caps banner image uploads at 5 MiB.
const maxBannerSize = 5 << 20

type MarketingHandler struct {
	marketingService *service.MarketingService
}

func NewMarketingHandler(marketingService *service.MarketingService) *MarketingHandler {
	return &MarketingHandler{marketingService: marketingService}
}

type BannerResponse struct {
	BaseResponse
	Banner *model.Banner `json:"banner"`
}

type BannerListResponse struct {
	BaseResponse
	Banners []*model.Banner `json:"banners"`
}

// ListBanners is the public carousel feed.
func (h *MarketingHandler) ListBanners(w http.ResponseWriter, r *http.Request) {
	banners, err := h.marketingService.ListBanners(r.Context())
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BannerListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Banners:      banners,
	})
}

func (h *MarketingHandler) ListAllBanners(w http.ResponseWriter, r *http.Request) {
	banners, err := h.marketingService.ListAllBanners(r.Context())
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BannerListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Banners:      banners,
	})
}

// CreateBanner accepts a multipart form with an "image" file and "title",
// "link_url", "position" fields.
func (h *MarketingHandler) CreateBanner(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxBannerSize); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Banner image is required")
		return
	}
	defer file.Close()

	if header.Size > maxBannerSize {
		respondWithError(w, http.StatusRequestEntityTooLarge, "Banner image exceeds the 5MB limit")
		return
	}

	position, _ := strconv.Atoi(r.FormValue("position"))

	banner, err := h.marketingService.CreateBanner(r.Context(), service.BannerInput{
		Title:    r.FormValue("title"),
		LinkURL:  r.FormValue("link_url"),
		Position: position,
		Image:    file,
	})
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, BannerResponse{
		BaseResponse: BaseResponse{Ok: true},
		Banner:       banner,
	})
}

func (h *MarketingHandler) SetBannerActive(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "bannerID")
	if !ok {
		return
	}

	var req SetActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	banner, err := h.marketingService.SetBannerActive(r.Context(), id, req.Active)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BannerResponse{
		BaseResponse: BaseResponse{Ok: true},
		Banner:       banner,
	})
}

func (h *MarketingHandler) DeleteBanner(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "bannerID")
	if !ok {
		return
	}

	if err := h.marketingService.DeleteBanner(r.Context(), id); err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

// Public lead-capture forms.

type BankLeadResponse struct {
	BaseResponse
	Lead *model.BankLead `json:"lead"`
}

func (h *MarketingHandler) SubmitBankLead(w http.ResponseWriter, r *http.Request) {
	var input service.BankLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	lead, err := h.marketingService.SubmitBankLead(r.Context(), input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, BankLeadResponse{
		BaseResponse: BaseResponse{Ok: true},
		Lead:         lead,
	})
}

type WebDevLeadResponse struct {
	BaseResponse
	Lead *model.WebDevelopmentLead `json:"lead"`
}

func (h *MarketingHandler) SubmitWebDevLead(w http.ResponseWriter, r *http.Request) {
	var input service.WebDevLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	lead, err := h.marketingService.SubmitWebDevLead(r.Context(), input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, WebDevLeadResponse{
		BaseResponse: BaseResponse{Ok: true},
		Lead:         lead,
	})
}

// Admin lead management.

type BankLeadListResponse struct {
	BaseResponse
	Leads []*model.BankLead `json:"leads"`
}

func (h *MarketingHandler) ListBankLeads(w http.ResponseWriter, r *http.Request) {
	status := model.LeadStatus(r.URL.Query().Get("status"))

	leads, err := h.marketingService.ListBankLeads(r.Context(), status)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BankLeadListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Leads:        leads,
	})
}

type WebDevLeadListResponse struct {
	BaseResponse
	Leads []*model.WebDevelopmentLead `json:"leads"`
}

func (h *MarketingHandler) ListWebDevLeads(w http.ResponseWriter, r *http.Request) {
	status := model.LeadStatus(r.URL.Query().Get("status"))

	leads, err := h.marketingService.ListWebDevLeads(r.Context(), status)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, WebDevLeadListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Leads:        leads,
	})
}

func (h *MarketingHandler) UpdateBankLead(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "leadID")
	if !ok {
		return
	}

	var input service.LeadStatusInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	lead, err := h.marketingService.UpdateBankLead(r.Context(), id, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BankLeadResponse{
		BaseResponse: BaseResponse{Ok: true},
		Lead:         lead,
	})
}

func (h *MarketingHandler) UpdateWebDevLead(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "leadID")
	if !ok {
		return
	}

	var input service.LeadStatusInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	lead, err := h.marketingService.UpdateWebDevLead(r.Context(), id, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, WebDevLeadResponse{
		BaseResponse: BaseResponse{Ok: true},
		Lead:         lead,
	})
}
