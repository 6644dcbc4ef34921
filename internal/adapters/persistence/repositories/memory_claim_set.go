package repositories

import (
	"context"
	"fmt"
	"sync"

	"healthclaim-portal/internal/core/domain"
)

// MemoryClaimSet is a process-local claim store. Records are copied on the way
// in and out, so callers never share state with the store.
type MemoryClaimSet struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]*domain.ClaimRecord
}

// NewMemoryClaimSet creates an empty in-memory claim store
func NewMemoryClaimSet() *MemoryClaimSet {
	return &MemoryClaimSet{byID: make(map[string]*domain.ClaimRecord)}
}

// GetAll lists every claim in insertion order
func (s *MemoryClaimSet) GetAll(_ context.Context) ([]*domain.ClaimRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	claims := make([]*domain.ClaimRecord, 0, len(s.order))
	for _, id := range s.order {
		claims = append(claims, s.byID[id].Clone())
	}
	return claims, nil
}

// GetByID gets a claim by ID
func (s *MemoryClaimSet) GetByID(_ context.Context, id string) (*domain.ClaimRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	claim, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrClaimNotFound
	}
	return claim.Clone(), nil
}

// Insert appends a new claim
func (s *MemoryClaimSet) Insert(_ context.Context, claim *domain.ClaimRecord) error {
	if err := claim.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[claim.ID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateClaim, claim.ID)
	}
	s.order = append(s.order, claim.ID)
	s.byID[claim.ID] = claim.Clone()
	return nil
}

// Upsert replaces the claim with the same ID in place, or appends it when absent
func (s *MemoryClaimSet) Upsert(_ context.Context, claim *domain.ClaimRecord) error {
	if err := claim.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[claim.ID]; !ok {
		s.order = append(s.order, claim.ID)
	}
	s.byID[claim.ID] = claim.Clone()
	return nil
}

// MemoryClaimEventLog is a process-local review history
type MemoryClaimEventLog struct {
	mu     sync.RWMutex
	events []*domain.ClaimEvent
}

// NewMemoryClaimEventLog creates an empty review history
func NewMemoryClaimEventLog() *MemoryClaimEventLog {
	return &MemoryClaimEventLog{}
}

// Append records a review event
func (l *MemoryClaimEventLog) Append(_ context.Context, event *domain.ClaimEvent) error {
	cp := *event
	if event.ApprovedAmount != nil {
		v := *event.ApprovedAmount
		cp.ApprovedAmount = &v
	}

	l.mu.Lock()
	l.events = append(l.events, &cp)
	l.mu.Unlock()
	return nil
}

// ListByClaimID returns the events of a claim, newest first
func (l *MemoryClaimEventLog) ListByClaimID(_ context.Context, claimID string) ([]*domain.ClaimEvent, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	events := []*domain.ClaimEvent{}
	for i := len(l.events) - 1; i >= 0; i-- {
		if l.events[i].ClaimID == claimID {
			cp := *l.events[i]
			events = append(events, &cp)
		}
	}
	return events, nil
}
