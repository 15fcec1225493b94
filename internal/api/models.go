package api

import "parkease/internal/entities"

// Quote
type QuoteRequest struct {
	ParkingID string `json:"parking_id"`
	Hours     int    `json:"hours"`
}

// Draft
type CreateDraftRequest struct {
	ParkingID   string `json:"parking_id"`
	SlotID      string `json:"slot_id"`
	VehicleType string `json:"vehicle_type"`
	Hours       int    `json:"hours"`
}
type CreateDraftResponse struct {
	DraftToken string                `json:"draft_token"`
	Draft      entities.BookingDraft `json:"draft"`
}

// Confirmation
type ConfirmBookingRequest struct {
	DraftToken string `json:"draft_token"`
}

// NoBookingDataResponse is the fallback the confirmation view renders when
// it is entered without a draft.
type NoBookingDataResponse struct {
	Message    string `json:"message"`
	SearchPath string `json:"search_path"`
}

// Auth
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
type LoginResponse struct {
	Token string `json:"token"`
}
type RegisterRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}
