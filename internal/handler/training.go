// internal/handler/training.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ajaypanchal761/createbharat-sub000/internal/middleware"
	"github.com/ajaypanchal761/createbharat-sub000/internal/model"
	"github.com/ajaypanchal761/createbharat-sub000/internal/service"
)

type TrainingHandler struct {
	trainingService *service.TrainingService
}

func NewTrainingHandler(trainingService *service.TrainingService) *TrainingHandler {
	return &TrainingHandler{trainingService: trainingService}
}

type CourseResponse struct {
	BaseResponse
	Course *model.TrainingCourse `json:"course"`
}

type CourseListResponse struct {
	BaseResponse
	Courses []*model.TrainingCourse `json:"courses"`
}

// ListCourses is the learner-facing published catalog.
func (h *TrainingHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.trainingService.ListCourses(r.Context())
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, CourseListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Courses:      courses,
	})
}

func (h *TrainingHandler) GetCourse(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "courseID")
	if !ok {
		return
	}

	course, err := h.trainingService.GetCourse(r.Context(), id)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, CourseResponse{
		BaseResponse: BaseResponse{Ok: true},
		Course:       course,
	})
}

// Admin course authoring endpoints.

func (h *TrainingHandler) ListAllCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := h.trainingService.ListAllCourses(r.Context())
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, CourseListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Courses:      courses,
	})
}

func (h *TrainingHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var input service.CourseInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	course, err := h.trainingService.CreateCourse(r.Context(), input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, CourseResponse{
		BaseResponse: BaseResponse{Ok: true},
		Course:       course,
	})
}

func (h *TrainingHandler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "courseID")
	if !ok {
		return
	}

	var input service.CourseInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	course, err := h.trainingService.UpdateCourse(r.Context(), id, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, CourseResponse{
		BaseResponse: BaseResponse{Ok: true},
		Course:       course,
	})
}

type PublishRequest struct {
	Published bool `json:"published"`
}

func (h *TrainingHandler) SetCoursePublished(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "courseID")
	if !ok {
		return
	}

	var req PublishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	course, err := h.trainingService.SetCoursePublished(r.Context(), id, req.Published)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, CourseResponse{
		BaseResponse: BaseResponse{Ok: true},
		Course:       course,
	})
}

func (h *TrainingHandler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "courseID")
	if !ok {
		return
	}

	if err := h.trainingService.DeleteCourse(r.Context(), id); err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

type ModuleResponse struct {
	BaseResponse
	Module *model.TrainingModule `json:"module"`
}

func (h *TrainingHandler) AddModule(w http.ResponseWriter, r *http.Request) {
	courseID, ok := urlUUID(w, r, "courseID")
	if !ok {
		return
	}

	var input service.ModuleInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	module, err := h.trainingService.AddModule(r.Context(), courseID, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, ModuleResponse{
		BaseResponse: BaseResponse{Ok: true},
		Module:       module,
	})
}

func (h *TrainingHandler) UpdateModule(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "moduleID")
	if !ok {
		return
	}

	var input service.ModuleInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	module, err := h.trainingService.UpdateModule(r.Context(), id, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ModuleResponse{
		BaseResponse: BaseResponse{Ok: true},
		Module:       module,
	})
}

func (h *TrainingHandler) DeleteModule(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "moduleID")
	if !ok {
		return
	}

	if err := h.trainingService.DeleteModule(r.Context(), id); err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

type TopicResponse struct {
	BaseResponse
	Topic *model.TrainingTopic `json:"topic"`
}

func (h *TrainingHandler) AddTopic(w http.ResponseWriter, r *http.Request) {
	moduleID, ok := urlUUID(w, r, "moduleID")
	if !ok {
		return
	}

	var input service.TopicInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	topic, err := h.trainingService.AddTopic(r.Context(), moduleID, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, TopicResponse{
		BaseResponse: BaseResponse{Ok: true},
		Topic:        topic,
	})
}

func (h *TrainingHandler) UpdateTopic(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "topicID")
	if !ok {
		return
	}

	var input service.TopicInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	topic, err := h.trainingService.UpdateTopic(r.Context(), id, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, TopicResponse{
		BaseResponse: BaseResponse{Ok: true},
		Topic:        topic,
	})
}

func (h *TrainingHandler) DeleteTopic(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "topicID")
	if !ok {
		return
	}

	if err := h.trainingService.DeleteTopic(r.Context(), id); err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

type QuizResponse struct {
	BaseResponse
	Quiz *model.TrainingQuiz `json:"quiz"`
}

func (h *TrainingHandler) SetQuiz(w http.ResponseWriter, r *http.Request) {
	topicID, ok := urlUUID(w, r, "topicID")
	if !ok {
		return
	}

	var input service.QuizInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	quiz, err := h.trainingService.SetQuiz(r.Context(), topicID, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, QuizResponse{
		BaseResponse: BaseResponse{Ok: true},
		Quiz:         quiz,
	})
}

// GetQuiz serves the quiz to learners; answer keys never serialize.
func (h *TrainingHandler) GetQuiz(w http.ResponseWriter, r *http.Request) {
	topicID, ok := urlUUID(w, r, "topicID")
	if !ok {
		return
	}

	quiz, err := h.trainingService.GetQuizByTopic(r.Context(), topicID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, QuizResponse{
		BaseResponse: BaseResponse{Ok: true},
		Quiz:         quiz,
	})
}

// Learner progress endpoints.

type ProgressResponse struct {
	BaseResponse
	Progress *model.UserTrainingProgress `json:"progress"`
}

type ProgressListResponse struct {
	BaseResponse
	Progress []*model.UserTrainingProgress `json:"progress"`
}

func (h *TrainingHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	courseID, ok := urlUUID(w, r, "courseID")
	if !ok {
		return
	}

	progress, err := h.trainingService.Enroll(r.Context(), principal.ID, courseID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, ProgressResponse{
		BaseResponse: BaseResponse{Ok: true},
		Progress:     progress,
	})
}

func (h *TrainingHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	courseID, ok := urlUUID(w, r, "courseID")
	if !ok {
		return
	}

	progress, err := h.trainingService.GetProgress(r.Context(), principal.ID, courseID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ProgressResponse{
		BaseResponse: BaseResponse{Ok: true},
		Progress:     progress,
	})
}

func (h *TrainingHandler) ListProgress(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())

	progress, err := h.trainingService.ListProgress(r.Context(), principal.ID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ProgressListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Progress:     progress,
	})
}

func (h *TrainingHandler) CompleteTopic(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	courseID, ok := urlUUID(w, r, "courseID")
	if !ok {
		return
	}
	topicID, ok := urlUUID(w, r, "topicID")
	if !ok {
		return
	}

	progress, err := h.trainingService.CompleteTopic(r.Context(), principal.ID, courseID, topicID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ProgressResponse{
		BaseResponse: BaseResponse{Ok: true},
		Progress:     progress,
	})
}

type QuizResultResponse struct {
	BaseResponse
	Result *service.QuizResult `json:"result"`
}

func (h *TrainingHandler) SubmitQuiz(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	courseID, ok := urlUUID(w, r, "courseID")
	if !ok {
		return
	}
	quizID, ok := urlUUID(w, r, "quizID")
	if !ok {
		return
	}

	var input service.QuizSubmitInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	result, err := h.trainingService.SubmitQuiz(r.Context(), principal.ID, courseID, quizID, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, QuizResultResponse{
		BaseResponse: BaseResponse{Ok: true},
		Result:       result,
	})
}

func (h *TrainingHandler) CreateCertificateOrder(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	courseID, ok := urlUUID(w, r, "courseID")
	if !ok {
		return
	}

	progress, err := h.trainingService.CreateCertificateOrder(r.Context(), principal.ID, courseID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ProgressResponse{
		BaseResponse: BaseResponse{Ok: true},
		Progress:     progress,
	})
}

func (h *TrainingHandler) ConfirmCertificatePayment(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	courseID, ok := urlUUID(w, r, "courseID")
	if !ok {
		return
	}

	var input service.PaymentCallbackInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	progress, err := h.trainingService.ConfirmCertificatePayment(r.Context(), principal.ID, courseID, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ProgressResponse{
		BaseResponse: BaseResponse{Ok: true},
		Progress:     progress,
	})
}
