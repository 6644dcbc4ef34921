package domain

import (
	"math"
	"strings"
	"time"
)

// Role represents an actor role in the system
type Role string

const (
	RoleClaimant Role = "CLAIMANT"
	RoleReviewer Role = "REVIEWER"
)

// Actor is the identity supplied by the caller. The core never authenticates it.
type Actor struct {
	ID    string
	Name  string
	Email string
	Role  Role
}

// IsAuthenticated reports whether the actor carries an identity
func (a Actor) IsAuthenticated() bool {
	return a.ID != ""
}

// IsReviewer reports whether the actor may adjudicate claims
func (a Actor) IsReviewer() bool {
	return a.Role == RoleReviewer
}

// ClaimStatus represents the status of a claim
type ClaimStatus string

const (
	StatusPending  ClaimStatus = "Pending"
	StatusApproved ClaimStatus = "Approved"
	StatusRejected ClaimStatus = "Rejected"
)

// Valid reports whether s is one of the known statuses
func (s ClaimStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// NoDocument is the document reference of a claim submitted without a file
const NoDocument = "No document"

// DateLayout is the calendar date layout used for submission dates
const DateLayout = "2006-01-02"

// ClaimRecord represents a reimbursement claim
type ClaimRecord struct {
	ID               string      `json:"id"`
	ClaimantID       string      `json:"claimant_id,omitempty"`
	ClaimantName     string      `json:"claimant_name"`
	ClaimantEmail    string      `json:"claimant_email"`
	ClaimedAmount    float64     `json:"claimed_amount"`
	Description      string      `json:"description"`
	Status           ClaimStatus `json:"status"`
	SubmissionDate   time.Time   `json:"submission_date"`
	ApprovedAmount   *float64    `json:"approved_amount"`
	ReviewerComments *string     `json:"reviewer_comments"`
	DocumentRef      string      `json:"document_ref"`
	PolicyNumber     *string     `json:"policy_number,omitempty"`
}

// HasDocument reports whether a file was attached at submission
func (c *ClaimRecord) HasDocument() bool {
	return c.DocumentRef != "" && c.DocumentRef != NoDocument
}

// IsOwnedBy reports whether the claim belongs to the actor.
// Claims without a recorded owner fall back to an e-mail match.
func (c *ClaimRecord) IsOwnedBy(actor Actor) bool {
	if c.ClaimantID != "" {
		return c.ClaimantID == actor.ID
	}
	return actor.Email != "" && strings.EqualFold(c.ClaimantEmail, actor.Email)
}

// Validate checks the record-level invariants
func (c *ClaimRecord) Validate() error {
	if c.ID == "" {
		return NewValidationError("id", "is required")
	}
	if math.IsNaN(c.ClaimedAmount) || math.IsInf(c.ClaimedAmount, 0) || c.ClaimedAmount < 0 {
		return NewValidationError("claimed_amount", "must be a non-negative number")
	}
	if !c.Status.Valid() {
		return NewValidationError("status", "unknown status "+string(c.Status))
	}
	if c.Status == StatusApproved {
		if c.ApprovedAmount == nil {
			return NewValidationError("approved_amount", "is required for approved claims")
		}
		if *c.ApprovedAmount < 0 {
			return NewValidationError("approved_amount", "must not be negative")
		}
	} else if c.ApprovedAmount != nil {
		return NewValidationError("approved_amount", "must be empty unless approved")
	}
	return nil
}

// Clone returns a deep copy so callers never share pointer fields
func (c *ClaimRecord) Clone() *ClaimRecord {
	cp := *c
	if c.ApprovedAmount != nil {
		v := *c.ApprovedAmount
		cp.ApprovedAmount = &v
	}
	if c.ReviewerComments != nil {
		v := *c.ReviewerComments
		cp.ReviewerComments = &v
	}
	if c.PolicyNumber != nil {
		v := *c.PolicyNumber
		cp.PolicyNumber = &v
	}
	return &cp
}

// ClaimEvent is an audit entry recorded after a review
type ClaimEvent struct {
	ID               string      `json:"id"`
	ClaimID          string      `json:"claim_id"`
	FromStatus       ClaimStatus `json:"from_status"`
	ToStatus         ClaimStatus `json:"to_status"`
	ApprovedAmount   *float64    `json:"approved_amount"`
	ReviewerComments string      `json:"reviewer_comments"`
	PerformedBy      string      `json:"performed_by"`
	CreatedAt        time.Time   `json:"created_at"`
}

// CalendarDate truncates t to its UTC calendar date
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
