package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	LayoutsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "parkease_slot_layouts_generated_total",
		Help: "Slot layouts generated (one per distinct parking area view).",
	})
	DraftsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "parkease_booking_drafts_created_total",
		Help: "Booking drafts assembled at proceed-to-pay.",
	})
	BookingsConfirmed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "parkease_bookings_confirmed_total",
		Help: "Bookings confirmed from a claimed draft.",
	})
	BookingsCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "parkease_bookings_cancelled_total",
		Help: "Bookings cancelled from the bookings list.",
	})
)
