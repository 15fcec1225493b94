package repository

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"parkease/internal/entities"
)

// BookingRepository keeps bookings in memory, keyed by booking ID. The demo
// dataset is seeded at construction so the bookings list has content before
// any new booking is made.
type BookingRepository struct {
	mu       sync.RWMutex
	bookings map[string]*entities.Booking
}

func NewBookingRepository() *BookingRepository {
	r := &BookingRepository{bookings: make(map[string]*entities.Booking)}
	for _, b := range seedBookings() {
		r.bookings[b.ID] = b
	}
	return r
}

func (r *BookingRepository) Create(b *entities.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.bookings[b.ID]; exists {
		return fmt.Errorf("booking %s already exists", b.ID)
	}
	copied := *b
	r.bookings[b.ID] = &copied
	return nil
}

func (r *BookingRepository) GetByID(id string) (*entities.Booking, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, false
	}
	copied := *b
	return &copied, true
}

// List returns all bookings, newest first.
func (r *BookingRepository) List() []entities.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (r *BookingRepository) UpdateStatus(id, status string) (*entities.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, fmt.Errorf("booking %s not found", id)
	}
	b.PaymentStatus = status
	b.UpdatedAt = time.Now().UTC()
	copied := *b
	return &copied, nil
}

// PaidIDsPastEnd lists paid bookings whose stay already ended, for the job
// that flips them to completed.
func (r *BookingRepository) PaidIDsPastEnd(now time.Time) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var ids []string
	for id, b := range r.bookings {
		if b.PaymentStatus == entities.BookingPaid && !b.EndsAt.IsZero() && b.EndsAt.Before(now) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

func seedBookings() []*entities.Booking {
	created := time.Date(2026, 2, 8, 9, 0, 0, 0, time.UTC)
	return []*entities.Booking{
		{
			ID: "BK001", ParkingID: "1", ParkingName: "Phoenix Mall Parking", SlotNumber: "A3",
			City: "Chennai", Date: "2026-02-10", StartTime: "10:00 AM",
			Hours: 3, Subtotal: 120, GST: 22, TotalPrice: 142,
			PaymentStatus: entities.BookingPaid, VehicleType: "Car",
			QRCode: "BK001-A3-PHOENIX", CreatedAt: created.Add(48 * time.Hour), UpdatedAt: created.Add(48 * time.Hour),
		},
		{
			ID: "BK002", ParkingID: "3", ParkingName: "Orion Mall Parking", SlotNumber: "B2",
			City: "Bangalore", Date: "2026-02-09", StartTime: "2:00 PM",
			Hours: 2, Subtotal: 120, GST: 22, TotalPrice: 142,
			PaymentStatus: entities.BookingPaid, VehicleType: "SUV",
			QRCode: "BK002-B2-ORION", CreatedAt: created.Add(24 * time.Hour), UpdatedAt: created.Add(24 * time.Hour),
		},
		{
			ID: "BK003", ParkingID: "5", ParkingName: "Connaught Place Parking", SlotNumber: "C1",
			City: "Delhi", Date: "2026-02-08", StartTime: "9:00 AM",
			Hours: 1, Subtotal: 70, GST: 13, TotalPrice: 83,
			PaymentStatus: entities.BookingCancelled, VehicleType: "Car",
			QRCode: "BK003-C1-CP", CreatedAt: created, UpdatedAt: created,
		},
	}
}
