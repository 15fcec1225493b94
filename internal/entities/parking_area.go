package entities

// ParkingArea is one catalog entry for a physical parking facility.
// Catalog entries are immutable for the lifetime of the process.
type ParkingArea struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	City           string   `json:"city"`
	Area           string   `json:"area"`
	Address        string   `json:"address"`
	PricePerHour   int      `json:"price_per_hour"`
	TotalSlots     int      `json:"total_slots"`
	AvailableSlots int      `json:"available_slots"`
	Rating         float64  `json:"rating"`
	Lat            float64  `json:"lat"`
	Lng            float64  `json:"lng"`
	Amenities      []string `json:"amenities"`
	VehicleTypes   []string `json:"vehicle_types"`
	Image          string   `json:"image"`
}

type City struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Count int    `json:"count"`
}
