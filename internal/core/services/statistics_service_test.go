package services

import (
	"testing"

	"healthclaim-portal/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	claims := []*domain.ClaimRecord{
		{ID: "a", Status: domain.StatusPending, ClaimedAmount: 1000},
		{ID: "b", Status: domain.StatusApproved, ClaimedAmount: 1000, ApprovedAmount: ptr(1000.0)},
		{ID: "c", Status: domain.StatusRejected, ClaimedAmount: 500},
	}

	s := Summarize(claims)
	assert.Equal(t, Summary{
		TotalClaims:         3,
		PendingCount:        1,
		ApprovedCount:       1,
		RejectedCount:       1,
		TotalClaimedAmount:  2500,
		TotalApprovedAmount: 1000,
	}, s)
	assert.InDelta(t, 40.0, ApprovedPercentage(s), 1e-9)
}

func TestSummarize_SampleData(t *testing.T) {
	s := Summarize(sampleClaims())

	assert.Equal(t, 5, s.TotalClaims)
	assert.Equal(t, 3, s.PendingCount)
	assert.Equal(t, 1, s.ApprovedCount)
	assert.Equal(t, 1, s.RejectedCount)
	assert.Equal(t, 6175.0, s.TotalClaimedAmount)
	assert.Equal(t, 1000.0, s.TotalApprovedAmount)
	assert.Equal(t, s.TotalClaims, s.PendingCount+s.ApprovedCount+s.RejectedCount)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)

	assert.Equal(t, Summary{}, s)
	assert.Equal(t, 0.0, ApprovedPercentage(s))
}

func TestApprovedPercentage_NothingClaimed(t *testing.T) {
	s := Summarize([]*domain.ClaimRecord{
		{ID: "a", Status: domain.StatusApproved, ClaimedAmount: 0, ApprovedAmount: ptr(0.0)},
	})
	assert.Equal(t, 0.0, ApprovedPercentage(s))
}
