package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"parkease/internal/entities"
	"parkease/internal/metrics"
	"parkease/internal/pricing"
	"parkease/internal/repository"
)

var (
	// ErrNoSlotSelected is the draft-assembly validation failure: the user
	// hit proceed-to-pay without picking a slot.
	ErrNoSlotSelected = errors.New("no parking slot selected")
	// ErrNoDraft marks the handled absent-data case at the confirmation
	// step: unknown, expired or already-claimed handoff token.
	ErrNoDraft = errors.New("no booking data found")
	// ErrAreaNotFound marks an unknown parking-area id.
	ErrAreaNotFound = errors.New("parking area not found")
	// ErrSlotUnavailable rejects a draft against a slot the layout already
	// shows as booked.
	ErrSlotUnavailable = errors.New("slot is already booked")
)

type BookingService struct {
	catalog  *repository.CatalogRepository
	slots    *SlotService
	drafts   *repository.DraftRepository
	bookings *repository.BookingRepository
	notifier Notifier
}

func NewBookingService(
	catalog *repository.CatalogRepository,
	slotSvc *SlotService,
	drafts *repository.DraftRepository,
	bookings *repository.BookingRepository,
	notifier Notifier,
) *BookingService {
	return &BookingService{
		catalog:  catalog,
		slots:    slotSvc,
		drafts:   drafts,
		bookings: bookings,
		notifier: notifier,
	}
}

// Quote prices a stay at the given area. Hours outside [1,24] are clamped
// the same way the duration stepper bounds them.
func (s *BookingService) Quote(parkingID string, hours int) (entities.PriceQuote, error) {
	area, ok := s.catalog.FindByID(parkingID)
	if !ok {
		return entities.PriceQuote{}, ErrAreaNotFound
	}
	return pricing.Quote(area.PricePerHour, pricing.ClampHours(hours)), nil
}

// CreateDraft assembles a BookingDraft from the user's choices and stores it
// under a one-shot handoff token. Submitting without a slot fires the notice
// surface and mutates nothing; that is the only validation rule in the flow.
func (s *BookingService) CreateDraft(parkingID, slotID, vehicleType string, hours int) (string, entities.BookingDraft, error) {
	area, ok := s.catalog.FindByID(parkingID)
	if !ok {
		return "", entities.BookingDraft{}, ErrAreaNotFound
	}

	if slotID == "" {
		s.notifier.Notify("Please select a parking slot", NoticeError)
		return "", entities.BookingDraft{}, ErrNoSlotSelected
	}

	slot, ok := s.slots.FindSlot(area, slotID)
	if !ok {
		s.notifier.Notify("Please select a parking slot", NoticeError)
		return "", entities.BookingDraft{}, ErrNoSlotSelected
	}
	if slot.Status == entities.SlotBooked {
		return "", entities.BookingDraft{}, ErrSlotUnavailable
	}

	if vehicleType == "" {
		vehicleType = slot.VehicleType
	}

	hours = pricing.ClampHours(hours)
	draft := entities.BookingDraft{
		Parking:     area,
		Slot:        slot,
		VehicleType: vehicleType,
		Hours:       hours,
		Quote:       pricing.Quote(area.PricePerHour, hours),
	}
	token := s.drafts.Put(draft)
	metrics.DraftsCreated.Inc()
	return token, draft, nil
}

// Confirm claims the draft behind token and turns it into a paid booking.
// A missing draft is the normal "no booking data" state the confirmation
// view handles with a fallback, so callers must branch on ErrNoDraft rather
// than treat it as fatal.
func (s *BookingService) Confirm(token, userEmail, userPhone string) (*entities.Booking, error) {
	draft, ok := s.drafts.Claim(token)
	if !ok {
		return nil, ErrNoDraft
	}

	now := time.Now()
	booking := &entities.Booking{
		ID:            fmt.Sprintf("PK%06d", now.UnixMilli()%1000000),
		UserEmail:     userEmail,
		ParkingID:     draft.Parking.ID,
		ParkingName:   draft.Parking.Name,
		SlotNumber:    draft.Slot.SlotNumber,
		City:          draft.Parking.City,
		Date:          now.Format("2006-01-02"),
		StartTime:     now.Format("3:04 PM"),
		EndsAt:        now.Add(time.Duration(draft.Hours) * time.Hour).UTC(),
		Hours:         draft.Hours,
		VehicleType:   draft.VehicleType,
		Subtotal:      draft.Quote.Subtotal,
		GST:           draft.Quote.GST,
		TotalPrice:    draft.Quote.Total,
		PaymentStatus: entities.BookingPaid,
		CreatedAt:     now.UTC(),
		UpdatedAt:     now.UTC(),
	}
	booking.QRCode = fmt.Sprintf("PARKEASE|%s|%s|%s|%d",
		booking.ID, booking.SlotNumber, booking.ParkingName, booking.TotalPrice)

	if err := s.bookings.Create(booking); err != nil {
		log.Printf("Error storing booking %s: %v", booking.ID, err)
		return nil, err
	}

	metrics.BookingsConfirmed.Inc()
	s.notifier.Notify("Booking confirmed! Your parking spot has been reserved", NoticeSuccess)
	s.sendConfirmation(booking, userEmail, userPhone, "confirmed")
	return booking, nil
}

func (s *BookingService) GetBooking(id string) (*entities.Booking, error) {
	booking, ok := s.bookings.GetByID(id)
	if !ok {
		return nil, fmt.Errorf("booking %s not found", id)
	}
	return booking, nil
}

func (s *BookingService) ListBookings() []entities.Booking {
	return s.bookings.List()
}

// Cancel flips a booking to cancelled and fires the notice surface.
func (s *BookingService) Cancel(id string) (*entities.Booking, error) {
	booking, ok := s.bookings.GetByID(id)
	if !ok {
		return nil, fmt.Errorf("booking %s not found", id)
	}
	if booking.PaymentStatus == entities.BookingCancelled {
		return booking, nil
	}

	booking, err := s.bookings.UpdateStatus(id, entities.BookingCancelled)
	if err != nil {
		return nil, err
	}

	metrics.BookingsCancelled.Inc()
	s.notifier.Notify("Booking cancelled successfully", NoticeSuccess)
	s.sendConfirmation(booking, booking.UserEmail, "", "cancelled")
	return booking, nil
}

// sendConfirmation pushes the email/SMS copies of a status change when the
// senders are configured. Failures only log; the booking already went
// through.
func (s *BookingService) sendConfirmation(b *entities.Booking, email, phone, status string) {
	if email != "" {
		subject := fmt.Sprintf("Your ParkEase booking is %s - %s", status, b.ID)
		body := fmt.Sprintf(
			"Hello,\n\nYour booking at %s is %s.\n\n"+
				"Booking ID: %s\nSlot: %s\nLocation: %s\nDate: %s\n"+
				"Duration: %d hour(s)\nTotal: ₹%d (incl. GST ₹%d)\n\n"+
				"Show the QR code at the parking entrance:\n%s\n\n"+
				"Thank you for choosing ParkEase.",
			b.ParkingName, status, b.ID, b.SlotNumber, b.City, b.Date,
			b.Hours, b.TotalPrice, b.GST, b.QRCode,
		)
		go func() {
			if err := SendEmailWithSendGrid(email, "", subject, body, ""); err != nil {
				log.Printf("Booking %s stored, but email to %s failed: %v", b.ID, email, err)
			}
		}()
	}
	if phone != "" {
		msg := fmt.Sprintf("ParkEase: booking %s is %s! Slot %s at %s. Details in your email.",
			b.ID, status, b.SlotNumber, b.ParkingName)
		go func() {
			if err := SendSMS(phone, msg); err != nil {
				log.Printf("Booking %s stored, but SMS to %s failed: %v", b.ID, phone, err)
			}
		}()
	}
}
