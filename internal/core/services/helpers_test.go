package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"healthclaim-portal/internal/core/domain"
)

// fixedNow is 2025-03-12 15:00 UTC
var fixedNow = time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func date(s string) time.Time {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func ptr[T any](v T) *T { return &v }

// stubClaimSet is an in-package ClaimSet keeping insertion order
type stubClaimSet struct {
	mu        sync.Mutex
	order     []string
	byID      map[string]*domain.ClaimRecord
	insertErr error
	upsertErr error
}

func newStubClaimSet(claims ...*domain.ClaimRecord) *stubClaimSet {
	s := &stubClaimSet{byID: map[string]*domain.ClaimRecord{}}
	for _, c := range claims {
		s.order = append(s.order, c.ID)
		s.byID[c.ID] = c.Clone()
	}
	return s
}

func (s *stubClaimSet) GetAll(_ context.Context) ([]*domain.ClaimRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.ClaimRecord, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id].Clone())
	}
	return out, nil
}

func (s *stubClaimSet) GetByID(_ context.Context, id string) (*domain.ClaimRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrClaimNotFound
	}
	return c.Clone(), nil
}

func (s *stubClaimSet) Upsert(_ context.Context, claim *domain.ClaimRecord) error {
	if s.upsertErr != nil {
		return s.upsertErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[claim.ID]; !ok {
		s.order = append(s.order, claim.ID)
	}
	s.byID[claim.ID] = claim.Clone()
	return nil
}

func (s *stubClaimSet) Insert(_ context.Context, claim *domain.ClaimRecord) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[claim.ID]; ok {
		return errors.New("duplicate id")
	}
	s.order = append(s.order, claim.ID)
	s.byID[claim.ID] = claim.Clone()
	return nil
}

// stubAuditLog records appended events
type stubAuditLog struct {
	events    []*domain.ClaimEvent
	appendErr error
}

func (a *stubAuditLog) Append(_ context.Context, event *domain.ClaimEvent) error {
	if a.appendErr != nil {
		return a.appendErr
	}
	a.events = append(a.events, event)
	return nil
}

func (a *stubAuditLog) ListByClaimID(_ context.Context, claimID string) ([]*domain.ClaimEvent, error) {
	var out []*domain.ClaimEvent
	for i := len(a.events) - 1; i >= 0; i-- {
		if a.events[i].ClaimID == claimID {
			out = append(out, a.events[i])
		}
	}
	return out, nil
}

// sampleClaims mirrors the demo data set
func sampleClaims() []*domain.ClaimRecord {
	return []*domain.ClaimRecord{
		{
			ID: "1", ClaimantName: "John Doe", ClaimantEmail: "john@example.com",
			ClaimedAmount: 1250, Description: "Hospital visit for flu symptoms and prescribed medication.",
			Status: domain.StatusApproved, SubmissionDate: date("2025-02-15"),
			ApprovedAmount: ptr(1000.0), ReviewerComments: ptr("Approved with partial coverage due to policy limits."),
			DocumentRef: "hospital_receipt.pdf", PolicyNumber: ptr("POL-123456"),
		},
		{
			ID: "2", ClaimantName: "Sarah Johnson", ClaimantEmail: "sarah@example.com",
			ClaimedAmount: 450, Description: "Dental checkup and cavity filling.",
			Status: domain.StatusPending, SubmissionDate: date("2025-03-01"),
			DocumentRef: "dental_receipt.pdf", PolicyNumber: ptr("POL-789012"),
		},
		{
			ID: "3", ClaimantName: "Michael Smith", ClaimantEmail: "michael@example.com",
			ClaimedAmount: 800, Description: "Eye examination and new prescription glasses.",
			Status: domain.StatusRejected, SubmissionDate: date("2025-01-20"),
			ReviewerComments: ptr("Not covered under current policy."),
			DocumentRef:      "vision_receipt.pdf", PolicyNumber: ptr("POL-345678"),
		},
		{
			ID: "4", ClaimantName: "Emily Wilson", ClaimantEmail: "emily@example.com",
			ClaimedAmount: 3500, Description: "Emergency appendectomy surgery and hospital stay.",
			Status: domain.StatusPending, SubmissionDate: date("2025-03-10"),
			DocumentRef: "surgery_invoice.pdf", PolicyNumber: ptr("POL-567890"),
		},
		{
			ID: "5", ClaimantName: "David Brown", ClaimantEmail: "david@example.com",
			ClaimedAmount: 175, Description: "Physical therapy session for shoulder injury.",
			Status: domain.StatusPending, SubmissionDate: date("2025-03-08"),
			DocumentRef: "therapy_receipt.pdf", PolicyNumber: ptr("POL-901234"),
		},
	}
}

func ids(claims []*domain.ClaimRecord) []string {
	out := make([]string, len(claims))
	for i, c := range claims {
		out[i] = c.ID
	}
	return out
}
