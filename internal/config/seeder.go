package config

import (
	"context"
	"errors"
	"log"
	"time"

	"healthclaim-portal/internal/adapters/persistence/repositories"
	"healthclaim-portal/internal/core/domain"
	"healthclaim-portal/internal/pkg/jwt"
)

// Demo identities used in development
var (
	DemoClaimant = domain.Actor{ID: "demo-patient", Name: "Sarah Johnson", Email: "sarah@example.com", Role: domain.RoleClaimant}
	DemoReviewer = domain.Actor{ID: "demo-insurer", Name: "Claims Desk", Email: "insurer@example.com", Role: domain.RoleReviewer}
)

// Seeder handles claim store seeding
type Seeder struct {
	claims repositories.ClaimStore
	cfg    *Config
}

// NewSeeder creates a new seeder instance
func NewSeeder(claims repositories.ClaimStore, cfg *Config) *Seeder {
	return &Seeder{claims: claims, cfg: cfg}
}

// Run executes all seeders
func (s *Seeder) Run(ctx context.Context) error {
	log.Println("🌱 Running seeders...")

	if err := s.seedSampleClaims(ctx); err != nil {
		return err
	}
	if s.cfg.IsDev() {
		s.logDevTokens()
	}

	log.Println("✅ Seeding completed")
	return nil
}

// seedSampleClaims inserts the demo claims that are not stored yet
func (s *Seeder) seedSampleClaims(ctx context.Context) error {
	for _, claim := range SampleClaims() {
		_, err := s.claims.GetByID(ctx, claim.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		if err := s.claims.Insert(ctx, claim); err != nil {
			return err
		}
		log.Printf("   Created claim: %s (%s)", claim.ID, claim.ClaimantName)
	}
	return nil
}

// logDevTokens prints bearer tokens for the demo identities
// This is for development/testing only
func (s *Seeder) logDevTokens() {
	for _, actor := range []domain.Actor{DemoClaimant, DemoReviewer} {
		token, err := jwt.GenerateAccessToken(actor.ID, actor.Name, actor.Email, string(actor.Role), s.cfg.JWT.Secret, s.cfg.AccessTokenTTL())
		if err != nil {
			log.Printf("⚠️ Could not issue dev token for %s: %v", actor.Role, err)
			continue
		}
		log.Printf("🔑 Dev %s token (%s): %s", actor.Role, actor.Email, token)
	}
}

// SampleClaims returns the demo claim set
func SampleClaims() []*domain.ClaimRecord {
	day := func(s string) time.Time {
		t, _ := time.Parse(domain.DateLayout, s)
		return t
	}
	str := func(s string) *string { return &s }
	amount := func(v float64) *float64 { return &v }

	return []*domain.ClaimRecord{
		{
			ID:               "1",
			ClaimantName:     "John Doe",
			ClaimantEmail:    "john@example.com",
			ClaimedAmount:    1250,
			Description:      "Hospital visit for flu symptoms and prescribed medication.",
			Status:           domain.StatusApproved,
			SubmissionDate:   day("2025-02-15"),
			ApprovedAmount:   amount(1000),
			ReviewerComments: str("Approved with partial coverage due to policy limits."),
			DocumentRef:      "hospital_receipt.pdf",
			PolicyNumber:     str("POL-123456"),
		},
		{
			ID:             "2",
			ClaimantName:   "Sarah Johnson",
			ClaimantEmail:  "sarah@example.com",
			ClaimedAmount:  450,
			Description:    "Dental checkup and cavity filling.",
			Status:         domain.StatusPending,
			SubmissionDate: day("2025-03-01"),
			DocumentRef:    "dental_receipt.pdf",
			PolicyNumber:   str("POL-789012"),
		},
		{
			ID:               "3",
			ClaimantName:     "Michael Smith",
			ClaimantEmail:    "michael@example.com",
			ClaimedAmount:    800,
			Description:      "Eye examination and new prescription glasses.",
			Status:           domain.StatusRejected,
			SubmissionDate:   day("2025-01-20"),
			ReviewerComments: str("Not covered under current policy."),
			DocumentRef:      "vision_receipt.pdf",
			PolicyNumber:     str("POL-345678"),
		},
		{
			ID:             "4",
			ClaimantName:   "Emily Wilson",
			ClaimantEmail:  "emily@example.com",
			ClaimedAmount:  3500,
			Description:    "Emergency appendectomy surgery and hospital stay.",
			Status:         domain.StatusPending,
			SubmissionDate: day("2025-03-10"),
			DocumentRef:    "surgery_invoice.pdf",
			PolicyNumber:   str("POL-567890"),
		},
		{
			ID:             "5",
			ClaimantName:   "David Brown",
			ClaimantEmail:  "david@example.com",
			ClaimedAmount:  175,
			Description:    "Physical therapy session for shoulder injury.",
			Status:         domain.StatusPending,
			SubmissionDate: day("2025-03-08"),
			DocumentRef:    "therapy_receipt.pdf",
			PolicyNumber:   str("POL-901234"),
		},
	}
}
