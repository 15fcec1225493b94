package service

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkease/internal/entities"
	"parkease/internal/repository"
	"parkease/internal/slots"
)

type recordingNotifier struct {
	messages []string
	kinds    []string
}

func (n *recordingNotifier) Notify(message, kind string) {
	n.messages = append(n.messages, message)
	n.kinds = append(n.kinds, kind)
}

func newTestBookingService() (*BookingService, *recordingNotifier) {
	notifier := &recordingNotifier{}
	slotSvc := NewSlotService(slots.NewGenerator(slots.DefaultConfig(), rand.New(rand.NewSource(1))))
	svc := NewBookingService(
		repository.NewCatalogRepository(),
		slotSvc,
		repository.NewDraftRepository(time.Minute),
		repository.NewBookingRepository(),
		notifier,
	)
	return svc, notifier
}

func availableSlotID(t *testing.T, svc *BookingService, parkingID string) string {
	t.Helper()
	area, ok := svc.catalog.FindByID(parkingID)
	require.True(t, ok)
	for _, s := range svc.slots.LayoutFor(area) {
		if s.Status == entities.SlotAvailable {
			return s.ID
		}
	}
	t.Fatal("layout has no available slot")
	return ""
}

func TestQuoteUsesCatalogRate(t *testing.T) {
	svc, _ := newTestBookingService()

	q, err := svc.Quote("1", 3) // Phoenix Mall, ₹40/hr
	require.NoError(t, err)
	assert.Equal(t, 120, q.Subtotal)
	assert.Equal(t, 22, q.GST)
	assert.Equal(t, 142, q.Total)
}

func TestQuoteUnknownArea(t *testing.T) {
	svc, _ := newTestBookingService()
	_, err := svc.Quote("999", 2)
	assert.ErrorIs(t, err, ErrAreaNotFound)
}

func TestCreateDraftWithoutSlotNotifiesAndStoresNothing(t *testing.T) {
	svc, notifier := newTestBookingService()

	_, _, err := svc.CreateDraft("1", "", "car", 3)
	assert.ErrorIs(t, err, ErrNoSlotSelected)
	require.Len(t, notifier.messages, 1)
	assert.Equal(t, "Please select a parking slot", notifier.messages[0])
	assert.Equal(t, NoticeError, notifier.kinds[0])

	// Nothing was handed off: confirming any token still reports no data.
	_, err = svc.Confirm("anything", "", "")
	assert.ErrorIs(t, err, ErrNoDraft)
}

func TestCreateDraftUnknownSlotTreatedAsMissingSelection(t *testing.T) {
	svc, notifier := newTestBookingService()
	_, _, err := svc.CreateDraft("1", "slot-999", "car", 2)
	assert.ErrorIs(t, err, ErrNoSlotSelected)
	assert.Len(t, notifier.messages, 1)
}

func TestCreateDraftRejectsBookedSlot(t *testing.T) {
	svc, _ := newTestBookingService()
	area, ok := svc.catalog.FindByID("1")
	require.True(t, ok)

	var bookedID string
	for _, s := range svc.slots.LayoutFor(area) {
		if s.Status == entities.SlotBooked {
			bookedID = s.ID
			break
		}
	}
	require.NotEmpty(t, bookedID, "seeded layout should contain a booked slot")

	_, _, err := svc.CreateDraft("1", bookedID, "car", 2)
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestDraftConfirmFlow(t *testing.T) {
	svc, notifier := newTestBookingService()
	slotID := availableSlotID(t, svc, "1")

	token, draft, err := svc.CreateDraft("1", slotID, "car", 3)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, 142, draft.Quote.Total)
	assert.Equal(t, "Phoenix Mall Parking", draft.Parking.Name)

	booking, err := svc.Confirm(token, "user@example.com", "")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(booking.ID, "PK"))
	assert.Equal(t, entities.BookingPaid, booking.PaymentStatus)
	assert.Equal(t, 3, booking.Hours)
	assert.Equal(t, 142, booking.TotalPrice)
	assert.Equal(t, draft.Slot.SlotNumber, booking.SlotNumber)
	assert.Contains(t, booking.QRCode, "PARKEASE|"+booking.ID+"|"+booking.SlotNumber)

	assert.Contains(t, notifier.messages, "Booking confirmed! Your parking spot has been reserved")

	// The booking landed in the list.
	found := false
	for _, b := range svc.ListBookings() {
		if b.ID == booking.ID {
			found = true
		}
	}
	assert.True(t, found)
}

func TestConfirmIsOneShot(t *testing.T) {
	svc, _ := newTestBookingService()
	slotID := availableSlotID(t, svc, "2")

	token, _, err := svc.CreateDraft("2", slotID, "suv", 2)
	require.NoError(t, err)

	_, err = svc.Confirm(token, "", "")
	require.NoError(t, err)

	// Re-entering the confirmation view with the same token is the handled
	// absent-data case.
	_, err = svc.Confirm(token, "", "")
	assert.ErrorIs(t, err, ErrNoDraft)
}

func TestConfirmWithoutDraft(t *testing.T) {
	svc, _ := newTestBookingService()
	_, err := svc.Confirm("no-such-token", "", "")
	assert.ErrorIs(t, err, ErrNoDraft)
}

func TestCancelFlipsStatusAndNotifies(t *testing.T) {
	svc, notifier := newTestBookingService()

	booking, err := svc.Cancel("BK001")
	require.NoError(t, err)
	assert.Equal(t, entities.BookingCancelled, booking.PaymentStatus)
	assert.Contains(t, notifier.messages, "Booking cancelled successfully")

	// Cancelling twice is a no-op, not an error.
	again, err := svc.Cancel("BK001")
	require.NoError(t, err)
	assert.Equal(t, entities.BookingCancelled, again.PaymentStatus)
}

func TestCancelUnknownBooking(t *testing.T) {
	svc, _ := newTestBookingService()
	_, err := svc.Cancel("BK999")
	assert.Error(t, err)
}
