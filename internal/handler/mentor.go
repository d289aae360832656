// internal/handler/mentor.go
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

// maxAvatarSize caps avatar uploads at 5 MiB.
const maxAvatarSize = 5 << 20

type MentorHandler struct {
	mentorService *service.MentorService
}

func NewMentorHandler(mentorService *service.MentorService) *MentorHandler {
	return &MentorHandler{mentorService: mentorService}
}

type MentorAuthResponse struct {
	BaseResponse
	Mentor *model.Mentor `json:"mentor"`
	Token  string        `json:"token"`
}

func (h *MentorHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input service.MentorRegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.mentorService.Register(r.Context(), input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, MentorAuthResponse{
		BaseResponse: BaseResponse{Ok: true},
		Mentor:       output.Mentor,
		Token:        output.Token,
	})
}

func (h *MentorHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	output, err := h.mentorService.Login(r.Context(), input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, MentorAuthResponse{
		BaseResponse: BaseResponse{Ok: true},
		Mentor:       output.Mentor,
		Token:        output.Token,
	})
}

type MentorResponse struct {
	BaseResponse
	Mentor *model.Mentor `json:"mentor"`
}

type MentorListResponse struct {
	BaseResponse
	Mentors []*model.Mentor `json:"mentors"`
	Total   int64           `json:"total"`
}

// List is the public mentor directory.
func (h *MentorHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := repository.MentorFilter{
		Category: q.Get("category"),
		Search:   q.Get("search"),
		Limit:    20,
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil && limit > 0 && limit <= 100 {
		filter.Limit = limit
	}
	if offset, err := strconv.Atoi(q.Get("offset")); err == nil && offset >= 0 {
		filter.Offset = offset
	}

	mentors, total, err := h.mentorService.List(r.Context(), filter)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, MentorListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Mentors:      mentors,
		Total:        total,
	})
}

func (h *MentorHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "mentorID")
	if !ok {
		return
	}

	mentor, err := h.mentorService.Get(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, MentorResponse{
		BaseResponse: BaseResponse{Ok: true},
		Mentor:       mentor,
	})
}

func (h *MentorHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())

	mentor, err := h.mentorService.Get(r.Context(), principal.ID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, MentorResponse{
		BaseResponse: BaseResponse{Ok: true},
		Mentor:       mentor,
	})
}

func (h *MentorHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())

	var input service.MentorUpdateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	mentor, err := h.mentorService.UpdateProfile(r.Context(), principal.ID, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, MentorResponse{
		BaseResponse: BaseResponse{Ok: true},
		Mentor:       mentor,
	})
}

// UploadAvatar accepts a multipart form with an "avatar" file field.
func (h *MentorHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())

	if err := r.ParseMultipartForm(maxAvatarSize); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Avatar file is required")
		return
	}
	defer file.Close()

	if header.Size > maxAvatarSize {
		respondWithError(w, http.StatusRequestEntityTooLarge, "Avatar exceeds the 5MB limit")
		return
	}

	mentor, err := h.mentorService.UploadAvatar(r.Context(), principal.ID, file)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, MentorResponse{
		BaseResponse: BaseResponse{Ok: true},
		Mentor:       mentor,
	})
}
