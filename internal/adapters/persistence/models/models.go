package models

import (
	"time"

	"healthclaim-portal/internal/core/domain"

	"gorm.io/gorm"
)

// ============================================================
// Claims
// ============================================================

// Claim represents claims table
type Claim struct {
	ID               string    `gorm:"primaryKey;size:36" json:"id"`
	Seq              int64     `gorm:"autoCreateTime:nano;index;not null" json:"-"`
	ClaimantID       string    `gorm:"size:36;index" json:"claimant_id"`
	ClaimantName     string    `gorm:"size:100;not null" json:"claimant_name"`
	ClaimantEmail    string    `gorm:"size:100;index;not null" json:"claimant_email"`
	ClaimedAmount    float64   `gorm:"type:decimal(15,2);not null" json:"claimed_amount"`
	Description      string    `gorm:"type:text" json:"description"`
	Status           string    `gorm:"size:20;index;default:'Pending'" json:"status"`
	SubmissionDate   time.Time `gorm:"type:date;not null" json:"submission_date"`
	ApprovedAmount   *float64  `gorm:"type:decimal(15,2)" json:"approved_amount"`
	ReviewerComments *string   `gorm:"type:text" json:"reviewer_comments"`
	DocumentRef      string    `gorm:"size:255" json:"document_ref"`
	PolicyNumber     *string   `gorm:"size:50;index" json:"policy_number"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Claim) TableName() string {
	return "claims"
}

// ClaimFromDomain maps a domain record onto a row
func ClaimFromDomain(c *domain.ClaimRecord) *Claim {
	cp := c.Clone()
	return &Claim{
		ID:               cp.ID,
		ClaimantID:       cp.ClaimantID,
		ClaimantName:     cp.ClaimantName,
		ClaimantEmail:    cp.ClaimantEmail,
		ClaimedAmount:    cp.ClaimedAmount,
		Description:      cp.Description,
		Status:           string(cp.Status),
		SubmissionDate:   domain.CalendarDate(cp.SubmissionDate),
		ApprovedAmount:   cp.ApprovedAmount,
		ReviewerComments: cp.ReviewerComments,
		DocumentRef:      cp.DocumentRef,
		PolicyNumber:     cp.PolicyNumber,
	}
}

// ToDomain maps the row back to a domain record
func (m *Claim) ToDomain() *domain.ClaimRecord {
	rec := &domain.ClaimRecord{
		ID:               m.ID,
		ClaimantID:       m.ClaimantID,
		ClaimantName:     m.ClaimantName,
		ClaimantEmail:    m.ClaimantEmail,
		ClaimedAmount:    m.ClaimedAmount,
		Description:      m.Description,
		Status:           domain.ClaimStatus(m.Status),
		SubmissionDate:   domain.CalendarDate(m.SubmissionDate),
		ApprovedAmount:   m.ApprovedAmount,
		ReviewerComments: m.ReviewerComments,
		DocumentRef:      m.DocumentRef,
		PolicyNumber:     m.PolicyNumber,
	}
	return rec.Clone()
}

// ============================================================
// Review history
// ============================================================

// ClaimEvent represents claim_events table
type ClaimEvent struct {
	ID               string    `gorm:"primaryKey;size:36" json:"id"`
	Seq              int64     `gorm:"autoCreateTime:nano;index;not null" json:"-"`
	ClaimID          string    `gorm:"size:36;not null;index" json:"claim_id"`
	FromStatus       string    `gorm:"size:20;not null" json:"from_status"`
	ToStatus         string    `gorm:"size:20;not null" json:"to_status"`
	ApprovedAmount   *float64  `gorm:"type:decimal(15,2)" json:"approved_amount"`
	ReviewerComments string    `gorm:"type:text" json:"reviewer_comments"`
	PerformedBy      string    `gorm:"size:36" json:"performed_by"`
	CreatedAt        time.Time `gorm:"not null" json:"created_at"`

	Claim *Claim `gorm:"foreignKey:ClaimID" json:"-"`
}

func (ClaimEvent) TableName() string {
	return "claim_events"
}

// ClaimEventFromDomain maps a domain event onto a row
func ClaimEventFromDomain(e *domain.ClaimEvent) *ClaimEvent {
	row := &ClaimEvent{
		ID:               e.ID,
		ClaimID:          e.ClaimID,
		FromStatus:       string(e.FromStatus),
		ToStatus:         string(e.ToStatus),
		ReviewerComments: e.ReviewerComments,
		PerformedBy:      e.PerformedBy,
		CreatedAt:        e.CreatedAt,
	}
	if e.ApprovedAmount != nil {
		v := *e.ApprovedAmount
		row.ApprovedAmount = &v
	}
	return row
}

// ToDomain maps the row back to a domain event
func (m *ClaimEvent) ToDomain() *domain.ClaimEvent {
	e := &domain.ClaimEvent{
		ID:               m.ID,
		ClaimID:          m.ClaimID,
		FromStatus:       domain.ClaimStatus(m.FromStatus),
		ToStatus:         domain.ClaimStatus(m.ToStatus),
		ReviewerComments: m.ReviewerComments,
		PerformedBy:      m.PerformedBy,
		CreatedAt:        m.CreatedAt,
	}
	if m.ApprovedAmount != nil {
		v := *m.ApprovedAmount
		e.ApprovedAmount = &v
	}
	return e
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for the claim tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Claim{},
		&ClaimEvent{},
	)
}
