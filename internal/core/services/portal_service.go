package services

import (
	"context"
	"fmt"
	"log"

	"healthclaim-portal/internal/core/domain"

	"github.com/google/uuid"
)

// ============================================================
// Claimant portal
// ============================================================

// ClaimantPortal is the claimant-scoped entry point
type ClaimantPortal struct {
	lifecycle *LifecycleService
	claims    ClaimSet
	clock     Clock
}

// NewClaimantPortal creates a new claimant portal
func NewClaimantPortal(lifecycle *LifecycleService, claims ClaimSet, clock Clock) *ClaimantPortal {
	return &ClaimantPortal{
		lifecycle: lifecycle,
		claims:    claims,
		clock:     clock,
	}
}

// Submit creates a claim. Authenticated actors have their identity stamped onto it.
func (p *ClaimantPortal) Submit(ctx context.Context, actor domain.Actor, input CreateClaimInput) (*domain.ClaimRecord, error) {
	if actor.IsAuthenticated() {
		input.ClaimantID = actor.ID
		if actor.Name != "" {
			input.ClaimantName = actor.Name
		}
		if actor.Email != "" {
			input.ClaimantEmail = actor.Email
		}
	}
	return p.lifecycle.Create(ctx, &input)
}

// ListOwn returns the actor's claims run through the query pipeline
func (p *ClaimantPortal) ListOwn(ctx context.Context, actor domain.Actor, state FilterState) ([]*domain.ClaimRecord, error) {
	if !actor.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}

	all, err := p.claims.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	own := make([]*domain.ClaimRecord, 0, len(all))
	for _, c := range all {
		if c.IsOwnedBy(actor) {
			own = append(own, c)
		}
	}
	return Query(own, state, p.clock.now()), nil
}

// GetOwn returns one of the actor's claims. Claims of other claimants are reported as not found.
func (p *ClaimantPortal) GetOwn(ctx context.Context, actor domain.Actor, id string) (*domain.ClaimRecord, error) {
	if !actor.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}

	claim, err := p.claims.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !claim.IsOwnedBy(actor) {
		return nil, domain.ErrClaimNotFound
	}
	return claim, nil
}

// ============================================================
// Reviewer portal
// ============================================================

// ReviewerPortal is the reviewer-scoped entry point
type ReviewerPortal struct {
	lifecycle *LifecycleService
	claims    ClaimSet
	audit     AuditLog
	clock     Clock
}

// NewReviewerPortal creates a new reviewer portal. audit may be nil.
func NewReviewerPortal(lifecycle *LifecycleService, claims ClaimSet, audit AuditLog, clock Clock) *ReviewerPortal {
	return &ReviewerPortal{
		lifecycle: lifecycle,
		claims:    claims,
		audit:     audit,
		clock:     clock,
	}
}

func requireReviewer(actor domain.Actor) error {
	if !actor.IsAuthenticated() {
		return domain.ErrUnauthorized
	}
	if !actor.IsReviewer() {
		return domain.ErrForbidden
	}
	return nil
}

// ListAll runs the query pipeline over the whole claim set
func (p *ReviewerPortal) ListAll(ctx context.Context, actor domain.Actor, state FilterState) ([]*domain.ClaimRecord, error) {
	if err := requireReviewer(actor); err != nil {
		return nil, err
	}

	all, err := p.claims.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return Query(all, state, p.clock.now()), nil
}

// Get returns a single claim
func (p *ReviewerPortal) Get(ctx context.Context, actor domain.Actor, id string) (*domain.ClaimRecord, error) {
	if err := requireReviewer(actor); err != nil {
		return nil, err
	}
	return p.claims.GetByID(ctx, id)
}

// Decide applies a review decision and records it in the audit log when one is configured
func (p *ReviewerPortal) Decide(ctx context.Context, actor domain.Actor, id string, decision ReviewDecision) (*ReviewResult, error) {
	if err := requireReviewer(actor); err != nil {
		return nil, err
	}

	result, err := p.lifecycle.Review(ctx, id, &decision)
	if err != nil {
		return nil, err
	}

	if p.audit != nil {
		event := &domain.ClaimEvent{
			ID:               uuid.NewString(),
			ClaimID:          id,
			FromStatus:       result.PreviousStatus,
			ToStatus:         result.Claim.Status,
			ApprovedAmount:   result.Claim.ApprovedAmount,
			ReviewerComments: decision.ReviewerComments,
			PerformedBy:      actor.ID,
			CreatedAt:        p.clock.now(),
		}
		// The decision is already stored; a failed audit write must not undo it.
		if err := p.audit.Append(ctx, event); err != nil {
			log.Printf("❌ Failed to record review event for claim %s: %v", id, err)
		}
	}

	return result, nil
}

// History returns the recorded review events of a claim, newest first
func (p *ReviewerPortal) History(ctx context.Context, actor domain.Actor, id string) ([]*domain.ClaimEvent, error) {
	if err := requireReviewer(actor); err != nil {
		return nil, err
	}
	if _, err := p.claims.GetByID(ctx, id); err != nil {
		return nil, err
	}
	if p.audit == nil {
		return []*domain.ClaimEvent{}, nil
	}
	return p.audit.ListByClaimID(ctx, id)
}

// Stats summarizes the whole claim set
func (p *ReviewerPortal) Stats(ctx context.Context, actor domain.Actor) (Summary, error) {
	if err := requireReviewer(actor); err != nil {
		return Summary{}, err
	}

	all, err := p.claims.GetAll(ctx)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(all), nil
}

// PendingQueue returns up to limit pending claims, newest first
func (p *ReviewerPortal) PendingQueue(ctx context.Context, actor domain.Actor, limit int) ([]*domain.ClaimRecord, error) {
	state := DefaultFilterState()
	state.Status = StatusFilter(domain.StatusPending)

	claims, err := p.ListAll(ctx, actor, state)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(claims) > limit {
		claims = claims[:limit]
	}
	return claims, nil
}

// Dashboard represents the reviewer dashboard
type Dashboard struct {
	Summary            Summary               `json:"summary"`
	ApprovedPercentage float64               `json:"approved_percentage"`
	PendingClaims      []*domain.ClaimRecord `json:"pending_claims"`
}

// GetDashboard combines the summary with the pending queue
func (p *ReviewerPortal) GetDashboard(ctx context.Context, actor domain.Actor, queueSize int) (*Dashboard, error) {
	summary, err := p.Stats(ctx, actor)
	if err != nil {
		return nil, err
	}
	pending, err := p.PendingQueue(ctx, actor, queueSize)
	if err != nil {
		return nil, fmt.Errorf("pending queue: %w", err)
	}
	return &Dashboard{
		Summary:            summary,
		ApprovedPercentage: ApprovedPercentage(summary),
		PendingClaims:      pending,
	}, nil
}
