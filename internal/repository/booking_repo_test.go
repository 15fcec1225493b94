package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkease/internal/entities"
)

func TestBookingSeedAndList(t *testing.T) {
	repo := NewBookingRepository()

	list := repo.List()
	require.Len(t, list, 3)
	// Newest first.
	assert.Equal(t, "BK001", list[0].ID)
	assert.Equal(t, "BK003", list[2].ID)
}

func TestBookingCreateAndGet(t *testing.T) {
	repo := NewBookingRepository()

	b := &entities.Booking{
		ID:            "PK123456",
		ParkingName:   "Hitech City Parking",
		PaymentStatus: entities.BookingPaid,
		CreatedAt:     time.Now().UTC(),
	}
	require.NoError(t, repo.Create(b))
	assert.Error(t, repo.Create(b), "duplicate id must be rejected")

	got, ok := repo.GetByID("PK123456")
	require.True(t, ok)
	assert.Equal(t, "Hitech City Parking", got.ParkingName)

	_, ok = repo.GetByID("PK000000")
	assert.False(t, ok)
}

func TestBookingUpdateStatus(t *testing.T) {
	repo := NewBookingRepository()

	updated, err := repo.UpdateStatus("BK001", entities.BookingCancelled)
	require.NoError(t, err)
	assert.Equal(t, entities.BookingCancelled, updated.PaymentStatus)

	_, err = repo.UpdateStatus("BK999", entities.BookingCancelled)
	assert.Error(t, err)
}

func TestPaidIDsPastEnd(t *testing.T) {
	repo := NewBookingRepository()
	now := time.Now().UTC()

	require.NoError(t, repo.Create(&entities.Booking{
		ID: "PK000001", PaymentStatus: entities.BookingPaid, EndsAt: now.Add(-time.Hour),
	}))
	require.NoError(t, repo.Create(&entities.Booking{
		ID: "PK000002", PaymentStatus: entities.BookingPaid, EndsAt: now.Add(time.Hour),
	}))
	require.NoError(t, repo.Create(&entities.Booking{
		ID: "PK000003", PaymentStatus: entities.BookingCancelled, EndsAt: now.Add(-time.Hour),
	}))

	// Seeded demo rows have no end timestamp and are never picked up.
	assert.Equal(t, []string{"PK000001"}, repo.PaidIDsPastEnd(now))
}
