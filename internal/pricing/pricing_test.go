package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuoteScenarios(t *testing.T) {
	cases := []struct {
		name        string
		rate, hours int
		subtotal    int
		gst         int
		total       int
	}{
		{name: "phoenix mall three hours", rate: 40, hours: 3, subtotal: 120, gst: 22, total: 142},
		{name: "connaught place one hour", rate: 70, hours: 1, subtotal: 70, gst: 13, total: 83},
		{name: "orion mall full day", rate: 60, hours: 24, subtotal: 1440, gst: 259, total: 1699},
		{name: "round half up", rate: 50, hours: 1, subtotal: 50, gst: 9, total: 59},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := Quote(tc.rate, tc.hours)
			assert.Equal(t, tc.subtotal, q.Subtotal)
			assert.Equal(t, tc.gst, q.GST)
			assert.Equal(t, tc.total, q.Total)
		})
	}
}

func TestQuoteTotalAlwaysSubtotalPlusGST(t *testing.T) {
	for rate := 1; rate <= 100; rate += 7 {
		for hours := 1; hours <= 24; hours++ {
			q := Quote(rate, hours)
			assert.Equal(t, rate*hours, q.Subtotal)
			assert.Equal(t, q.Subtotal+q.GST, q.Total)
		}
	}
}

func TestQuoteIsIdempotent(t *testing.T) {
	first := Quote(40, 3)
	second := Quote(40, 3)
	assert.Equal(t, first, second)
}

func TestQuoteClampsHours(t *testing.T) {
	assert.Equal(t, Quote(40, 1), Quote(40, 0))
	assert.Equal(t, Quote(40, 1), Quote(40, -5))
	assert.Equal(t, Quote(40, 24), Quote(40, 99))
}

func TestClampHours(t *testing.T) {
	assert.Equal(t, 1, ClampHours(0))
	assert.Equal(t, 1, ClampHours(-3))
	assert.Equal(t, 12, ClampHours(12))
	assert.Equal(t, 24, ClampHours(30))
}
