package repositories

import (
	"context"
	"errors"
	"fmt"

	"healthclaim-portal/internal/adapters/persistence/models"
	"healthclaim-portal/internal/core/domain"

	"gorm.io/gorm"
)

// ClaimRepository handles claim data access
type ClaimRepository struct {
	db *gorm.DB
}

// NewClaimRepository creates a new claim repository
func NewClaimRepository(db *gorm.DB) *ClaimRepository {
	return &ClaimRepository{db: db}
}

// GetAll lists every claim in insertion order
func (r *ClaimRepository) GetAll(ctx context.Context) ([]*domain.ClaimRecord, error) {
	var rows []*models.Claim
	err := r.db.WithContext(ctx).
		Order("seq ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	claims := make([]*domain.ClaimRecord, len(rows))
	for i, row := range rows {
		claims[i] = row.ToDomain()
	}
	return claims, nil
}

// GetByID gets a claim by ID
func (r *ClaimRepository) GetByID(ctx context.Context, id string) (*domain.ClaimRecord, error) {
	var row models.Claim
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClaimNotFound
		}
		return nil, err
	}
	return row.ToDomain(), nil
}

// Insert creates a new claim
func (r *ClaimRepository) Insert(ctx context.Context, claim *domain.ClaimRecord) error {
	if err := claim.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Claim{}).Where("id = ?", claim.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: %s", ErrDuplicateClaim, claim.ID)
		}
		return tx.Create(models.ClaimFromDomain(claim)).Error
	})
}

// Upsert replaces the claim with the same ID, or appends it when absent.
// An existing row keeps its position in the insertion order.
func (r *ClaimRepository) Upsert(ctx context.Context, claim *domain.ClaimRecord) error {
	if err := claim.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := models.ClaimFromDomain(claim)

		var existing models.Claim
		err := tx.Where("id = ?", claim.ID).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(row).Error
		}
		if err != nil {
			return err
		}

		row.Seq = existing.Seq
		row.CreatedAt = existing.CreatedAt
		return tx.Save(row).Error
	})
}

// Append records a review event
func (r *ClaimRepository) Append(ctx context.Context, event *domain.ClaimEvent) error {
	return r.db.WithContext(ctx).Create(models.ClaimEventFromDomain(event)).Error
}

// ListByClaimID gets review events of a claim (History), newest first
func (r *ClaimRepository) ListByClaimID(ctx context.Context, claimID string) ([]*domain.ClaimEvent, error) {
	var rows []*models.ClaimEvent
	err := r.db.WithContext(ctx).
		Where("claim_id = ?", claimID).
		Order("seq DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	events := make([]*domain.ClaimEvent, len(rows))
	for i, row := range rows {
		events[i] = row.ToDomain()
	}
	return events, nil
}
