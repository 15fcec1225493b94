package entities

import "time"

const (
	BookingPaid      = "paid"
	BookingPending   = "pending"
	BookingCancelled = "cancelled"
	BookingCompleted = "completed"
)

// PriceQuote carries the three money figures rendered in the summary and
// confirmation screens. Integer rupees, no fractional paise.
type PriceQuote struct {
	Subtotal int `json:"subtotal"`
	GST      int `json:"gst"`
	Total    int `json:"total"`
}

// BookingDraft is the transient set of choices carried from the detail view
// to the confirmation view. It has no identity beyond its handoff token and
// is consumed exactly once.
type BookingDraft struct {
	Parking     ParkingArea `json:"parking"`
	Slot        Slot        `json:"slot"`
	VehicleType string      `json:"vehicle_type"`
	Hours       int         `json:"hours"`
	Quote       PriceQuote  `json:"quote"`
	CreatedAt   time.Time   `json:"created_at"`
}

type Booking struct {
	ID            string     `json:"id"`
	UserEmail     string     `json:"user_email,omitempty"`
	ParkingID     string     `json:"parking_id"`
	ParkingName   string     `json:"parking_name"`
	SlotNumber    string     `json:"slot_number"`
	City          string     `json:"city"`
	Date          string     `json:"date"`
	StartTime     string     `json:"start_time"`
	EndsAt        time.Time  `json:"ends_at"`
	Hours         int        `json:"hours"`
	VehicleType   string     `json:"vehicle_type"`
	Subtotal      int        `json:"subtotal"`
	GST           int        `json:"gst"`
	TotalPrice    int        `json:"total_price"`
	PaymentStatus string     `json:"payment_status"`
	QRCode        string     `json:"qr_code"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
