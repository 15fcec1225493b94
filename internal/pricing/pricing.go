package pricing

import (
	"math"

	"parkease/internal/entities"
)

// GSTRate is the goods-and-services tax applied on parking charges.
const GSTRate = 0.18

const (
	MinHours = 1
	MaxHours = 24
)

// ClampHours bounds a requested duration to the bookable range.
func ClampHours(hours int) int {
	if hours < MinHours {
		return MinHours
	}
	if hours > MaxHours {
		return MaxHours
	}
	return hours
}

// Quote computes the subtotal, GST and total for a stay. Amounts are whole
// rupees; GST rounds half away from zero. Callers clamp hours before asking
// for a quote, but the clamp is repeated here so a stray zero or negative
// duration can never produce a non-positive total.
func Quote(ratePerHour, hours int) entities.PriceQuote {
	hours = ClampHours(hours)
	subtotal := ratePerHour * hours
	gst := int(math.Round(float64(subtotal) * GSTRate))
	return entities.PriceQuote{
		Subtotal: subtotal,
		GST:      gst,
		Total:    subtotal + gst,
	}
}
