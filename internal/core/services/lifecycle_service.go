package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"regexp"
	"strconv"
	"strings"

	"healthclaim-portal/internal/core/domain"

	"github.com/google/uuid"
)

// LifecycleService applies the claim state machine
type LifecycleService struct {
	claims ClaimSet
	clock  Clock
	newID  func() string
}

// NewLifecycleService creates a new lifecycle service
func NewLifecycleService(claims ClaimSet, clock Clock) *LifecycleService {
	return &LifecycleService{
		claims: claims,
		clock:  clock,
		newID:  uuid.NewString,
	}
}

// CreateClaimInput represents create claim input
type CreateClaimInput struct {
	ClaimantID    string
	ClaimantName  string
	ClaimantEmail string
	ClaimedAmount string
	Description   string
	DocumentRef   string
	PolicyNumber  string
}

// Create validates the input and adds a new pending claim to the claim set
func (s *LifecycleService) Create(ctx context.Context, input *CreateClaimInput) (*domain.ClaimRecord, error) {
	if strings.TrimSpace(input.ClaimantName) == "" {
		return nil, domain.NewValidationError("claimant_name", "is required")
	}
	if strings.TrimSpace(input.ClaimantEmail) == "" {
		return nil, domain.NewValidationError("claimant_email", "is required")
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, domain.NewValidationError("description", "is required")
	}

	amount, err := parseAmount(input.ClaimedAmount)
	if err != nil || amount < 0 {
		return nil, domain.NewValidationError("claimed_amount", "must be a non-negative number")
	}

	documentRef := strings.TrimSpace(input.DocumentRef)
	if documentRef == "" {
		documentRef = domain.NoDocument
	}

	claim := &domain.ClaimRecord{
		ID:             s.newID(),
		ClaimantID:     input.ClaimantID,
		ClaimantName:   strings.TrimSpace(input.ClaimantName),
		ClaimantEmail:  strings.TrimSpace(input.ClaimantEmail),
		ClaimedAmount:  amount,
		Description:    input.Description,
		Status:         domain.StatusPending,
		SubmissionDate: domain.CalendarDate(s.clock.now()),
		DocumentRef:    documentRef,
	}
	if pn := strings.TrimSpace(input.PolicyNumber); pn != "" {
		claim.PolicyNumber = &pn
	}

	if err := s.claims.Insert(ctx, claim); err != nil {
		return nil, fmt.Errorf("insert claim: %w", err)
	}

	claimsSubmittedTotal.Inc()
	log.Printf("🆕 Claim %s submitted by %s (%.2f, document: %t)", claim.ID, claim.ClaimantEmail, claim.ClaimedAmount, claim.HasDocument())

	return claim, nil
}

// ReviewDecision represents a reviewer decision. ApprovedAmount is raw form input.
type ReviewDecision struct {
	Status           domain.ClaimStatus
	ApprovedAmount   string
	ReviewerComments string
}

// ReviewResult carries the updated claim and any non-fatal coercion notice
type ReviewResult struct {
	Claim          *domain.ClaimRecord
	PreviousStatus domain.ClaimStatus
	Warning        *domain.CoercionWarning
}

// Review applies a decision to an existing claim. Any status may move to any status.
func (s *LifecycleService) Review(ctx context.Context, id string, decision *ReviewDecision) (*ReviewResult, error) {
	if !decision.Status.Valid() {
		return nil, domain.NewValidationError("status", "must be Pending, Approved or Rejected")
	}

	claim, err := s.claims.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("review claim %s: %w", id, err)
	}

	result := &ReviewResult{PreviousStatus: claim.Status}

	updated := claim.Clone()
	updated.Status = decision.Status
	updated.ApprovedAmount = nil
	if decision.Status == domain.StatusApproved {
		amount, warning := coerceApprovedAmount(decision.ApprovedAmount)
		updated.ApprovedAmount = &amount
		result.Warning = warning
	}
	comments := decision.ReviewerComments
	updated.ReviewerComments = &comments

	if err := s.claims.Upsert(ctx, updated); err != nil {
		return nil, fmt.Errorf("update claim %s: %w", id, err)
	}

	claimsReviewedTotal.WithLabelValues(string(updated.Status)).Inc()
	if result.Warning != nil {
		approvedAmountCoercionsTotal.Inc()
		log.Printf("⚠️ Claim %s: %v", id, result.Warning)
	}
	log.Printf("✅ Claim %s reviewed: %s -> %s", id, result.PreviousStatus, updated.Status)

	result.Claim = updated
	return result, nil
}

// parseAmount parses a decimal amount, rejecting NaN and infinities
func parseAmount(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("amount %q is not finite", raw)
	}
	return v, nil
}

// leadingAmount matches the decimal number at the start of an input such as "300 USD"
var leadingAmount = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)

// coerceApprovedAmount never fails. Input with trailing text keeps its leading number,
// anything else unusable becomes zero. Both cases come with a warning.
func coerceApprovedAmount(raw string) (float64, *domain.CoercionWarning) {
	v, err := parseAmount(raw)
	if err == nil && v >= 0 {
		return v, nil
	}

	if err != nil {
		if prefix := leadingAmount.FindString(strings.TrimSpace(raw)); prefix != "" {
			if p, perr := parseAmount(prefix); perr == nil && p >= 0 {
				return p, &domain.CoercionWarning{Field: "approved_amount", Input: raw, Value: p}
			}
		}
	}
	return 0, &domain.CoercionWarning{Field: "approved_amount", Input: raw, Value: 0}
}
