// internal/handler/booking.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ajaypanchal761/createbharat-sub000/internal/middleware"
	"github.com/ajaypanchal761/createbharat-sub000/internal/model"
	"github.com/ajaypanchal761/createbharat-sub000/internal/service"
)

type BookingHandler struct {
	bookingService *service.BookingService
}

func NewBookingHandler(bookingService *service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

type BookingResponse struct {
	BaseResponse
	Booking *model.MentorBooking `json:"booking"`
}

type BookingListResponse struct {
	BaseResponse
	Bookings []*model.MentorBooking `json:"bookings"`
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())

	var input service.BookingInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	booking, err := h.bookingService.Create(r.Context(), principal.ID, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, BookingResponse{
		BaseResponse: BaseResponse{Ok: true},
		Booking:      booking,
	})
}

func (h *BookingHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())

	bookings, err := h.bookingService.ListByUser(r.Context(), principal.ID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BookingListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Bookings:     bookings,
	})
}

// ListForMentor is the mentor's incoming session queue.
func (h *BookingHandler) ListForMentor(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())

	bookings, err := h.bookingService.ListByMentor(r.Context(), principal.ID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BookingListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Bookings:     bookings,
	})
}

type RespondRequest struct {
	Accept bool `json:"accept"`
}

func (h *BookingHandler) Respond(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	bookingID, ok := urlUUID(w, r, "bookingID")
	if !ok {
		return
	}

	var req RespondRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	booking, err := h.bookingService.Respond(r.Context(), principal.ID, bookingID, req.Accept)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BookingResponse{
		BaseResponse: BaseResponse{Ok: true},
		Booking:      booking,
	})
}

// CreatePaymentOrder returns the booking with a fresh gateway order id for
// the checkout widget.
func (h *BookingHandler) CreatePaymentOrder(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	bookingID, ok := urlUUID(w, r, "bookingID")
	if !ok {
		return
	}

	booking, err := h.bookingService.CreatePaymentOrder(r.Context(), principal.ID, bookingID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BookingResponse{
		BaseResponse: BaseResponse{Ok: true},
		Booking:      booking,
	})
}

func (h *BookingHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	bookingID, ok := urlUUID(w, r, "bookingID")
	if !ok {
		return
	}

	var input service.PaymentCallbackInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	booking, err := h.bookingService.ConfirmPayment(r.Context(), principal.ID, bookingID, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BookingResponse{
		BaseResponse: BaseResponse{Ok: true},
		Booking:      booking,
	})
}

func (h *BookingHandler) Complete(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	bookingID, ok := urlUUID(w, r, "bookingID")
	if !ok {
		return
	}

	booking, err := h.bookingService.Complete(r.Context(), principal.ID, bookingID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BookingResponse{
		BaseResponse: BaseResponse{Ok: true},
		Booking:      booking,
	})
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	bookingID, ok := urlUUID(w, r, "bookingID")
	if !ok {
		return
	}

	booking, err := h.bookingService.Cancel(r.Context(), principal.ID, bookingID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BookingResponse{
		BaseResponse: BaseResponse{Ok: true},
		Booking:      booking,
	})
}

func (h *BookingHandler) Review(w http.ResponseWriter, r *http.Request) {
	principal := middleware.PrincipalFrom(r.Context())
	bookingID, ok := urlUUID(w, r, "bookingID")
	if !ok {
		return
	}

	var input service.ReviewInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	booking, err := h.bookingService.Review(r.Context(), principal.ID, bookingID, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BookingResponse{
		BaseResponse: BaseResponse{Ok: true},
		Booking:      booking,
	})
}

// MarkSettled is the admin payout confirmation.
func (h *BookingHandler) MarkSettled(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := urlUUID(w, r, "bookingID")
	if !ok {
		return
	}

	booking, err := h.bookingService.MarkSettled(r.Context(), bookingID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BookingResponse{
		BaseResponse: BaseResponse{Ok: true},
		Booking:      booking,
	})
}
