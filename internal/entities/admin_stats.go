package entities

type MonthlyRevenue struct {
	Month   string `json:"month"`
	Revenue int    `json:"revenue"`
}

type CityBookings struct {
	City     string `json:"city"`
	Bookings int    `json:"bookings"`
}

type AdminStats struct {
	TotalBookings  int              `json:"total_bookings"`
	TotalRevenue   int              `json:"total_revenue"`
	ActiveUsers    int              `json:"active_users"`
	ParkingAreas   int              `json:"parking_areas"`
	MonthlyRevenue []MonthlyRevenue `json:"monthly_revenue"`
	CityWise       []CityBookings   `json:"city_wise"`
}
