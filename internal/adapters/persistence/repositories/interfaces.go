package repositories

import (
	"context"
	"errors"

	"healthclaim-portal/internal/core/domain"
)

// ErrDuplicateClaim is returned by Insert when the id is already taken
var ErrDuplicateClaim = errors.New("claim id already exists")

// ClaimStore defines claim storage. Implementations keep insertion order in GetAll
// and return domain.ErrClaimNotFound from GetByID for unknown ids.
type ClaimStore interface {
	GetAll(ctx context.Context) ([]*domain.ClaimRecord, error)
	GetByID(ctx context.Context, id string) (*domain.ClaimRecord, error)
	Upsert(ctx context.Context, claim *domain.ClaimRecord) error
	Insert(ctx context.Context, claim *domain.ClaimRecord) error
}

// ClaimEventStore defines review history storage
type ClaimEventStore interface {
	Append(ctx context.Context, event *domain.ClaimEvent) error
	ListByClaimID(ctx context.Context, claimID string) ([]*domain.ClaimEvent, error)
}

var (
	_ ClaimStore      = (*ClaimRepository)(nil)
	_ ClaimEventStore = (*ClaimRepository)(nil)
	_ ClaimStore      = (*MemoryClaimSet)(nil)
	_ ClaimEventStore = (*MemoryClaimEventLog)(nil)
	_ ClaimStore      = (*CachedClaimSet)(nil)
)
