package repository

import (
	"strings"

	"parkease/internal/entities"
)

// CatalogRepository serves the static parking-area catalog. Entries are
// seeded at construction and never mutated, so reads need no locking.
type CatalogRepository struct {
	areas  []entities.ParkingArea
	cities []entities.City
}

func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{
		areas:  seedParkingAreas(),
		cities: seedCities(),
	}
}

func (r *CatalogRepository) ListCities() []entities.City {
	return r.cities
}

func (r *CatalogRepository) ListAreas() []entities.ParkingArea {
	return r.areas
}

// FindByID returns the catalog entry for id, or false when no area matches.
// A malformed or unknown id is a normal miss, not an error.
func (r *CatalogRepository) FindByID(id string) (entities.ParkingArea, bool) {
	for _, a := range r.areas {
		if a.ID == id {
			return a, true
		}
	}
	return entities.ParkingArea{}, false
}

// Search filters the catalog by city, free-text query (name, area or city)
// and supported vehicle type. Empty or "all" filters match everything.
func (r *CatalogRepository) Search(city, query, vehicleType string) []entities.ParkingArea {
	q := strings.ToLower(query)
	results := make([]entities.ParkingArea, 0, len(r.areas))
	for _, a := range r.areas {
		if city != "" && city != "all" && a.City != city {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(a.Name), q) &&
			!strings.Contains(strings.ToLower(a.Area), q) &&
			!strings.Contains(strings.ToLower(a.City), q) {
			continue
		}
		if vehicleType != "" && vehicleType != "all" && !supportsVehicle(a, vehicleType) {
			continue
		}
		results = append(results, a)
	}
	return results
}

func supportsVehicle(a entities.ParkingArea, vehicleType string) bool {
	for _, vt := range a.VehicleTypes {
		if strings.EqualFold(vt, vehicleType) {
			return true
		}
	}
	return false
}

func seedCities() []entities.City {
	return []entities.City{
		{Name: "Chennai", Icon: "🏛️", Count: 45},
		{Name: "Bangalore", Icon: "💻", Count: 62},
		{Name: "Mumbai", Icon: "🌊", Count: 78},
		{Name: "Delhi", Icon: "🕌", Count: 55},
		{Name: "Hyderabad", Icon: "🍗", Count: 38},
		{Name: "Kolkata", Icon: "🌉", Count: 29},
	}
}

func seedParkingAreas() []entities.ParkingArea {
	return []entities.ParkingArea{
		{
			ID: "1", Name: "Phoenix Mall Parking", City: "Chennai", Area: "Velachery",
			Address:      "142, Velachery Main Road, Velachery, Chennai - 600042",
			PricePerHour: 40, TotalSlots: 120, AvailableSlots: 34, Rating: 4.5,
			Lat: 12.9816, Lng: 80.2185,
			Amenities:    []string{"CCTV", "EV Charging", "Covered", "24/7"},
			VehicleTypes: []string{"Car", "Bike", "SUV"},
			Image:        "https://images.unsplash.com/photo-1506521781263-d8422e82f27a?w=600",
		},
		{
			ID: "2", Name: "Express Avenue Parking", City: "Chennai", Area: "Royapettah",
			Address:      "Express Avenue Mall, Whites Road, Royapettah, Chennai - 600014",
			PricePerHour: 50, TotalSlots: 200, AvailableSlots: 67, Rating: 4.2,
			Lat: 13.0604, Lng: 80.2634,
			Amenities:    []string{"CCTV", "Covered", "Valet", "24/7"},
			VehicleTypes: []string{"Car", "Bike", "SUV"},
			Image:        "https://images.unsplash.com/photo-1573348722427-f1d6819fdf98?w=600",
		},
		{
			ID: "3", Name: "Orion Mall Parking", City: "Bangalore", Area: "Rajajinagar",
			Address:      "Brigade Gateway, Dr. Rajkumar Road, Rajajinagar, Bangalore - 560055",
			PricePerHour: 60, TotalSlots: 180, AvailableSlots: 45, Rating: 4.7,
			Lat: 13.0107, Lng: 77.5556,
			Amenities:    []string{"CCTV", "EV Charging", "Covered", "Valet", "24/7"},
			VehicleTypes: []string{"Car", "Bike", "SUV"},
			Image:        "https://images.unsplash.com/photo-1590674899484-d5640e854abe?w=600",
		},
		{
			ID: "4", Name: "Bandra Station Parking", City: "Mumbai", Area: "Bandra",
			Address:      "Bandra West, Near Station, Mumbai - 400050",
			PricePerHour: 80, TotalSlots: 80, AvailableSlots: 12, Rating: 3.8,
			Lat: 19.0544, Lng: 72.8402,
			Amenities:    []string{"CCTV", "24/7"},
			VehicleTypes: []string{"Car", "Bike"},
			Image:        "https://images.unsplash.com/photo-1470224114660-3f6686c562eb?w=600",
		},
		{
			ID: "5", Name: "Connaught Place Parking", City: "Delhi", Area: "CP",
			Address:      "Block A, Connaught Place, New Delhi - 110001",
			PricePerHour: 70, TotalSlots: 150, AvailableSlots: 28, Rating: 4.0,
			Lat: 28.6315, Lng: 77.2167,
			Amenities:    []string{"CCTV", "Covered", "24/7"},
			VehicleTypes: []string{"Car", "Bike", "SUV"},
			Image:        "https://images.unsplash.com/photo-1567449303078-57ad995bd17f?w=600",
		},
		{
			ID: "6", Name: "Hitech City Parking", City: "Hyderabad", Area: "Hitech City",
			Address:      "Cyber Towers, Hitech City, Hyderabad - 500081",
			PricePerHour: 45, TotalSlots: 100, AvailableSlots: 55, Rating: 4.3,
			Lat: 17.4435, Lng: 78.3772,
			Amenities:    []string{"CCTV", "EV Charging", "Covered"},
			VehicleTypes: []string{"Car", "Bike", "SUV"},
			Image:        "https://images.unsplash.com/photo-1611348586804-61bf6c080437?w=600",
		},
	}
}
