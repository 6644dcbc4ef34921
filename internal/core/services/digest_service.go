package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// DigestService periodically logs a summary of the claim set
type DigestService struct {
	claims ClaimSet
	spec   string
	cron   *cron.Cron
}

// NewDigestService creates a digest service running on the given cron spec
func NewDigestService(claims ClaimSet, spec string) *DigestService {
	return &DigestService{
		claims: claims,
		spec:   spec,
		cron:   cron.New(),
	}
}

// Start schedules the digest job
func (s *DigestService) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.runScheduled); err != nil {
		return fmt.Errorf("invalid digest schedule %q: %w", s.spec, err)
	}
	s.cron.Start()
	log.Printf("🚀 DigestService started [%s]", s.spec)
	return nil
}

// Stop waits for a running job to finish
func (s *DigestService) Stop() {
	<-s.cron.Stop().Done()
	log.Println("🛑 DigestService stopped")
}

func (s *DigestService) runScheduled() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := s.RunOnce(ctx); err != nil {
		log.Printf("❌ Digest failed: %v", err)
	}
}

// RunOnce computes and logs the current summary
func (s *DigestService) RunOnce(ctx context.Context) (Summary, error) {
	all, err := s.claims.GetAll(ctx)
	if err != nil {
		return Summary{}, err
	}

	summary := Summarize(all)
	log.Printf("📊 Claims digest: total=%d pending=%d approved=%d rejected=%d claimed=%.2f approved_amount=%.2f (%.1f%%)",
		summary.TotalClaims,
		summary.PendingCount,
		summary.ApprovedCount,
		summary.RejectedCount,
		summary.TotalClaimedAmount,
		summary.TotalApprovedAmount,
		ApprovedPercentage(summary),
	)
	return summary, nil
}
