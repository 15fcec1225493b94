package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	apperrors "parkease/internal/errors"
	"parkease/internal/repository"
	"parkease/internal/service"
)

type CatalogHandler struct {
	Catalog  *repository.CatalogRepository
	Slots    *service.SlotService
	Bookings *service.BookingService
}

func NewCatalogHandler(catalog *repository.CatalogRepository, slots *service.SlotService, bookings *service.BookingService) *CatalogHandler {
	return &CatalogHandler{Catalog: catalog, Slots: slots, Bookings: bookings}
}

func (h *CatalogHandler) ListCities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Catalog.ListCities())
}

func (h *CatalogHandler) SearchParking(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")
	query := r.URL.Query().Get("q")
	vehicleType := r.URL.Query().Get("vehicle_type")
	results := h.Catalog.Search(city, query, vehicleType)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"count":   len(results),
		"results": results,
	})
}

func (h *CatalogHandler) GetParkingArea(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	area, ok := h.Catalog.FindByID(id)
	if !ok {
		writeError(w, apperrors.ErrNotFound("Parking area not found"))
		return
	}
	writeJSON(w, http.StatusOK, area)
}

func (h *CatalogHandler) GetParkingSlots(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	area, ok := h.Catalog.FindByID(id)
	if !ok {
		writeError(w, apperrors.ErrNotFound("Parking area not found"))
		return
	}
	writeJSON(w, http.StatusOK, h.Slots.LayoutFor(area))
}

// GetQuote prices a stay without creating anything, so the summary panel can
// refresh on every duration-stepper change.
func (h *CatalogHandler) GetQuote(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	quote, err := h.Bookings.Quote(req.ParkingID, req.Hours)
	if err != nil {
		writeError(w, apperrors.ErrNotFound("Parking area not found"))
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err *apperrors.HTTPError) {
	http.Error(w, err.Message, err.Code)
}
