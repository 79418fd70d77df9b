package services

import (
	"context"

	"github.com/localnerve/beedb/internal/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/hints"
)

const observationIndex = "idx_observation_hive_date"

// ListObservations returns, for each of the user's non-deleted hives, at most limit
// non-deleted observations ordered by date. The limit applies per hive, not overall.
func ListObservations(ctx context.Context, db *gorm.DB, userID string, limit int) ([]models.Observation, error) {
	if limit < 1 {
		return nil, errors.Wrapf(ErrValidation, "limit must be a positive integer, got %d", limit)
	}

	var hiveIDs []uint64
	if err := db.WithContext(ctx).
		Model(&models.Hive{}).
		Where("userid = ? AND deleted = ?", userID, false).
		Order("id").
		Pluck("id", &hiveIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list hives for observations")
	}

	observations := make([]models.Observation, 0)
	for _, hiveID := range hiveIDs {
		var batch []models.Observation
		query := db.WithContext(ctx).Clauses(hints.CommentBefore("select", "beedb:observations-per-hive"))
		if db.Dialector.Name() == "mysql" {
			query = query.Clauses(hints.UseIndex(observationIndex))
		}
		if err := query.
			Where("hive_id = ? AND deleted = ?", hiveID, false).
			Order("observation_date ASC").
			Order("id ASC").
			Limit(limit).
			Find(&batch).Error; err != nil {
			return nil, errors.Wrapf(err, "failed to list observations for hive %d", hiveID)
		}
		observations = append(observations, batch...)
	}

	return observations, nil
}

// GetObservation returns one observation owned by userID
func GetObservation(ctx context.Context, db *gorm.DB, userID string, id uint64) (*models.Observation, error) {
	return findOwned[models.Observation](ctx, db, id, ownedBy(userID))
}

// UpsertObservation creates or overwrites an observation matched on (id, hive, userid).
// The hive must exist, belong to the same user and not be deleted.
func UpsertObservation(ctx context.Context, db *gorm.DB, input ObservationInput) (*models.Observation, bool, error) {
	if err := Validate(&input); err != nil {
		return nil, false, err
	}

	hiveID := input.HiveID.Uint64()
	plan := upsertPlan[models.Observation]{
		table: models.Observation{}.TableName(),
		id:    input.ID.Uint64(),
		// Holding the hive row keeps a concurrent DeleteHive out until this write commits
		guard: func(tx *gorm.DB) error {
			var hive models.Hive
			err := forUpdate(tx).
				Where("userid = ? AND deleted = ?", input.UserID, false).
				First(&hive, hiveID).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.Wrapf(ErrNotFound, "hive %d", hiveID)
			}
			return err
		},
		scope: func(tx *gorm.DB) *gorm.DB {
			return tx.Where("userid = ? AND hive_id = ?", input.UserID, hiveID)
		},
		build: func(id uint64) models.Observation {
			return models.Observation{ID: id, HiveID: hiveID, UserID: input.UserID}
		},
		apply: func(row *models.Observation) {
			row.Date = *input.Date
			row.Comment = input.Comment
			row.Queen = *input.Queen
			row.Larva = *input.Larva
			row.Egg = *input.Egg
			row.Mood = *input.Mood
			row.Size = *input.Size
			row.Varroa = *input.Varroa
		},
	}

	return upsert(ctx, db, plan)
}

// DeleteObservation soft-deletes an observation
func DeleteObservation(ctx context.Context, db *gorm.DB, input DeleteInput) (*models.Observation, error) {
	if err := Validate(&input); err != nil {
		return nil, err
	}
	return softDelete[models.Observation](ctx, db, input.ID.Uint64(), ownedBy(input.UserID))
}
