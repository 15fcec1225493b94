package entities

const (
	SlotAvailable = "available"
	SlotBooked    = "booked"
	// SlotSelected is a transient UI projection of one slot at a time.
	// The generator never emits it; the underlying status stays "available".
	SlotSelected = "selected"
)

const (
	VehicleCar  = "car"
	VehicleBike = "bike"
	VehicleSUV  = "suv"
)

// Slot is one bookable unit of parking space inside a generated layout.
type Slot struct {
	ID          string `json:"id"`
	SlotNumber  string `json:"slot_number"`
	Status      string `json:"status"`
	VehicleType string `json:"vehicle_type"`
}
