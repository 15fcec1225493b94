package service

import (
	"fmt"
	"log"
	"time"

	"parkease/internal/entities"
	"parkease/internal/repository"
)

type JobService struct {
	drafts   *repository.DraftRepository
	bookings *repository.BookingRepository
}

func NewJobService(drafts *repository.DraftRepository, bookings *repository.BookingRepository) *JobService {
	return &JobService{drafts: drafts, bookings: bookings}
}

// PurgeExpiredDrafts drops handoff drafts that were never claimed.
func (s *JobService) PurgeExpiredDrafts() {
	if purged := s.drafts.PurgeExpired(); purged > 0 {
		log.Printf("Cron Job: Purged %d expired booking draft(s)", purged)
	}
}

// CompleteFinishedBookings flips paid bookings whose stay is over to
// 'completed'.
func (s *JobService) CompleteFinishedBookings() error {
	ids := s.bookings.PaidIDsPastEnd(time.Now().UTC())
	if len(ids) == 0 {
		return nil
	}

	log.Printf("Cron Job: Found %d booking(s) to mark as 'completed'. IDs: %v", len(ids), ids)
	for _, id := range ids {
		if _, err := s.bookings.UpdateStatus(id, entities.BookingCompleted); err != nil {
			return fmt.Errorf("cron job: failed to complete booking %s: %w", id, err)
		}
	}
	log.Printf("Cron Job: Successfully updated %d booking(s) to 'completed'.", len(ids))
	return nil
}
