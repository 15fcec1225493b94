package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"parkease/internal/auth"
	"parkease/internal/service"
)

type BookingHandler struct {
	Service *service.BookingService
}

func NewBookingHandler(svc *service.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateDraft is the proceed-to-pay step: it validates the slot choice and
// stores the draft for the confirmation view to claim.
func (h *BookingHandler) CreateDraft(w http.ResponseWriter, r *http.Request) {
	var req CreateDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	token, draft, err := h.Service.CreateDraft(req.ParkingID, req.SlotID, req.VehicleType, req.Hours)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAreaNotFound):
			http.Error(w, "Parking area not found", http.StatusNotFound)
		case errors.Is(err, service.ErrNoSlotSelected):
			http.Error(w, "Please select a parking slot", http.StatusUnprocessableEntity)
		case errors.Is(err, service.ErrSlotUnavailable):
			http.Error(w, "Slot is already booked", http.StatusConflict)
		default:
			http.Error(w, "Could not create booking draft", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusCreated, CreateDraftResponse{DraftToken: token, Draft: draft})
}

// ConfirmBooking claims a draft and returns the confirmed booking with its
// QR payload. Entering without a valid draft renders the "no booking data"
// fallback, which is a handled state rather than a server fault.
func (h *BookingHandler) ConfirmBooking(w http.ResponseWriter, r *http.Request) {
	var req ConfirmBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	var email, phone string
	if claims, ok := auth.FromContext(r.Context()); ok {
		email, phone = claims.Email, claims.Phone
	}

	booking, err := h.Service.Confirm(req.DraftToken, email, phone)
	if err != nil {
		if errors.Is(err, service.ErrNoDraft) {
			writeJSON(w, http.StatusNotFound, NoBookingDataResponse{
				Message:    "No booking data found",
				SearchPath: "/search",
			})
			return
		}
		http.Error(w, "Could not confirm booking", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, booking)
}

func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings := h.Service.ListBookings()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"count":    len(bookings),
		"bookings": bookings,
	})
}

func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	booking, err := h.Service.GetBooking(id)
	if err != nil {
		http.Error(w, "Booking not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	booking, err := h.Service.Cancel(id)
	if err != nil {
		http.Error(w, "Could not cancel booking", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Booking cancelled successfully",
		"booking": booking,
	})
}
