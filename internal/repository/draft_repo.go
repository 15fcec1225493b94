package repository

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"parkease/internal/entities"
)

// DraftRepository is the in-memory handoff between the detail flow and the
// confirmation flow. A draft is stored under a one-shot token; claiming the
// token removes the draft so the confirmation step consumes it exactly once.
// Entering the confirmation flow without a valid token is a normal, handled
// state for the caller, never an internal failure.
type DraftRepository struct {
	ttl    time.Duration
	mu     sync.Mutex
	drafts map[string]entities.BookingDraft
}

func NewDraftRepository(ttl time.Duration) *DraftRepository {
	return &DraftRepository{
		ttl:    ttl,
		drafts: make(map[string]entities.BookingDraft),
	}
}

// Put stores a draft and returns its handoff token.
func (r *DraftRepository) Put(draft entities.BookingDraft) string {
	token := uuid.NewString()
	draft.CreatedAt = time.Now().UTC()
	r.mu.Lock()
	r.drafts[token] = draft
	r.mu.Unlock()
	return token
}

// Claim removes and returns the draft for token. The second claim of the
// same token, or a claim after expiry, reports no draft.
func (r *DraftRepository) Claim(token string) (entities.BookingDraft, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	draft, ok := r.drafts[token]
	if !ok {
		return entities.BookingDraft{}, false
	}
	delete(r.drafts, token)
	if r.ttl > 0 && time.Since(draft.CreatedAt) > r.ttl {
		return entities.BookingDraft{}, false
	}
	return draft, true
}

// PurgeExpired drops drafts older than the TTL and reports how many went.
func (r *DraftRepository) PurgeExpired() int {
	if r.ttl <= 0 {
		return 0
	}
	cutoff := time.Now().UTC().Add(-r.ttl)
	r.mu.Lock()
	defer r.mu.Unlock()
	purged := 0
	for token, draft := range r.drafts {
		if draft.CreatedAt.Before(cutoff) {
			delete(r.drafts, token)
			purged++
		}
	}
	return purged
}
