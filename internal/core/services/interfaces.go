package services

import (
	"context"
	"time"

	"healthclaim-portal/internal/core/domain"
)

// ClaimSet is the handle onto the shared claim collection owned by the persistence layer.
// GetByID returns domain.ErrClaimNotFound for unknown ids.
type ClaimSet interface {
	GetAll(ctx context.Context) ([]*domain.ClaimRecord, error)
	GetByID(ctx context.Context, id string) (*domain.ClaimRecord, error)
	Upsert(ctx context.Context, claim *domain.ClaimRecord) error
	Insert(ctx context.Context, claim *domain.ClaimRecord) error
}

// AuditLog stores review events. Optional collaborator of the reviewer portal.
type AuditLog interface {
	Append(ctx context.Context, event *domain.ClaimEvent) error
	ListByClaimID(ctx context.Context, claimID string) ([]*domain.ClaimEvent, error)
}

// Clock returns the current time
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}
