package services

import "healthclaim-portal/internal/core/domain"

// Summary represents aggregate figures over a set of claims
type Summary struct {
	TotalClaims         int     `json:"total_claims"`
	PendingCount        int     `json:"pending_count"`
	ApprovedCount       int     `json:"approved_count"`
	RejectedCount       int     `json:"rejected_count"`
	TotalClaimedAmount  float64 `json:"total_claimed_amount"`
	TotalApprovedAmount float64 `json:"total_approved_amount"`
}

// Summarize computes counts and totals in a single pass
func Summarize(claims []*domain.ClaimRecord) Summary {
	var s Summary
	for _, c := range claims {
		s.TotalClaims++
		s.TotalClaimedAmount += c.ClaimedAmount
		switch c.Status {
		case domain.StatusPending:
			s.PendingCount++
		case domain.StatusApproved:
			s.ApprovedCount++
			if c.ApprovedAmount != nil {
				s.TotalApprovedAmount += *c.ApprovedAmount
			}
		case domain.StatusRejected:
			s.RejectedCount++
		}
	}
	return s
}

// ApprovedPercentage is the approved share of the claimed total, 0 when nothing was claimed
func ApprovedPercentage(s Summary) float64 {
	if s.TotalClaimedAmount == 0 {
		return 0
	}
	return s.TotalApprovedAmount / s.TotalClaimedAmount * 100
}
