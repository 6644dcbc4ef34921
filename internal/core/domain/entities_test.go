package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float(v float64) *float64 { return &v }

func validClaim() *ClaimRecord {
	return &ClaimRecord{
		ID:             "c-1",
		ClaimantName:   "John Doe",
		ClaimantEmail:  "john@example.com",
		ClaimedAmount:  1250,
		Description:    "Hospital visit",
		Status:         StatusPending,
		SubmissionDate: time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC),
		DocumentRef:    NoDocument,
	}
}

func TestClaimRecord_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *ClaimRecord)
		field   string
		wantErr bool
	}{
		{name: "pending without amount", mutate: func(c *ClaimRecord) {}},
		{name: "approved with amount", mutate: func(c *ClaimRecord) {
			c.Status = StatusApproved
			c.ApprovedAmount = float(1000)
		}},
		{name: "approved above claimed amount", mutate: func(c *ClaimRecord) {
			c.Status = StatusApproved
			c.ApprovedAmount = float(5000)
		}},
		{name: "approved without amount", wantErr: true, field: "approved_amount", mutate: func(c *ClaimRecord) {
			c.Status = StatusApproved
		}},
		{name: "rejected with amount", wantErr: true, field: "approved_amount", mutate: func(c *ClaimRecord) {
			c.Status = StatusRejected
			c.ApprovedAmount = float(0)
		}},
		{name: "negative claimed amount", wantErr: true, field: "claimed_amount", mutate: func(c *ClaimRecord) {
			c.ClaimedAmount = -1
		}},
		{name: "unknown status", wantErr: true, field: "status", mutate: func(c *ClaimRecord) {
			c.Status = "Escalated"
		}},
		{name: "missing id", wantErr: true, field: "id", mutate: func(c *ClaimRecord) {
			c.ID = ""
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validClaim()
			tt.mutate(c)
			err := c.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.field, vErr.Field)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestClaimRecord_IsOwnedBy(t *testing.T) {
	c := validClaim()
	assert.True(t, c.IsOwnedBy(Actor{ID: "u-9", Email: "JOHN@example.com"}))
	assert.False(t, c.IsOwnedBy(Actor{ID: "u-9", Email: "sarah@example.com"}))
	assert.False(t, c.IsOwnedBy(Actor{}))

	c.ClaimantID = "u-1"
	assert.True(t, c.IsOwnedBy(Actor{ID: "u-1"}))
	assert.False(t, c.IsOwnedBy(Actor{ID: "u-9", Email: "john@example.com"}))
}

func TestClaimRecord_Clone(t *testing.T) {
	c := validClaim()
	c.Status = StatusApproved
	c.ApprovedAmount = float(10)

	cp := c.Clone()
	*cp.ApprovedAmount = 20

	assert.Equal(t, 10.0, *c.ApprovedAmount)
	assert.False(t, c.HasDocument())
}

func TestCalendarDate(t *testing.T) {
	in := time.Date(2025, 3, 10, 23, 30, 0, 0, time.FixedZone("X", -2*3600))
	assert.Equal(t, time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC), CalendarDate(in))
}
