// internal/handler/ca.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ajaypanchal761/createbharat-sub000/internal/middleware"
	"github.com/ajaypanchal761/createbharat-sub000/internal/model"
	"github.com/ajaypanchal761/createbharat-sub000/internal/service"
)

type CAHandler struct {
	caService *service.CAService
}

func NewCAHandler(caService *service.CAService) *CAHandler {
	return &CAHandler{caService: caService}
}

type CAAuthResponse struct {
	BaseResponse
	CA    *model.CharteredAccountant `json:"ca"`
	Token string                     `json:"token"`
}

func (h *CAHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input service.CARegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.caService.Register(r.Context(), input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, CAAuthResponse{
		BaseResponse: BaseResponse{Ok: true},
		CA:           output.CA,
		Token:        output.Token,
	})
}

func (h *CAHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.caService.Login(r.Context(), input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, CAAuthResponse{
		BaseResponse: BaseResponse{Ok: true},
		CA:           output.CA,
		Token:        output.Token,
	})
}

type CAResponse struct {
	BaseResponse
	CA *model.CharteredAccountant `json:"ca"`
}

func (h *CAHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())

	ca, err := h.caService.GetProfile(r.Context(), principal.ID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, CAResponse{
		BaseResponse: BaseResponse{Ok: true},
		CA:           ca,
	})
}

func (h *CAHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())

	var input service.CAUpdateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	ca, err := h.caService.UpdateProfile(r.Context(), principal.ID, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, CAResponse{
		BaseResponse: BaseResponse{Ok: true},
		CA:           ca,
	})
}
