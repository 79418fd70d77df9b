package services

import (
	"context"

	"github.com/localnerve/beedb/internal/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// HiveStatus selects one partition of a user's hives
type HiveStatus string

const (
	HiveStatusActive   HiveStatus = "active"
	HiveStatusArchived HiveStatus = "archived"
	HiveStatusDeleted  HiveStatus = "deleted"
)

// ParseHiveStatus maps a path segment to a status. Anything unrecognised means active.
func ParseHiveStatus(s string) HiveStatus {
	switch HiveStatus(s) {
	case HiveStatusArchived:
		return HiveStatusArchived
	case HiveStatusDeleted:
		return HiveStatusDeleted
	}
	return HiveStatusActive
}

// scope filters hives to this partition. The three partitions never overlap.
func (s HiveStatus) scope(tx *gorm.DB) *gorm.DB {
	switch s {
	case HiveStatusDeleted:
		return tx.Where("deleted = ?", true)
	case HiveStatusArchived:
		return tx.Where("archived = ? AND deleted = ?", true, false)
	}
	return tx.Where("archived = ? AND deleted = ?", false, false)
}

// ListHives returns the user's hives in one status partition, oldest first
func ListHives(ctx context.Context, db *gorm.DB, userID string, status HiveStatus) ([]models.Hive, error) {
	hives := make([]models.Hive, 0)
	err := db.WithContext(ctx).
		Where("userid = ?", userID).
		Scopes(status.scope).
		Order("id").
		Find(&hives).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list hives")
	}
	return hives, nil
}

// GetHive returns one hive owned by userID
func GetHive(ctx context.Context, db *gorm.DB, userID string, id uint64) (*models.Hive, error) {
	return findOwned[models.Hive](ctx, db, id, ownedBy(userID))
}

// UpsertHive creates a hive or overwrites the one matching the payload id, or
// failing that the user's non-deleted hive with the same number.
func UpsertHive(ctx context.Context, db *gorm.DB, input HiveInput) (*models.Hive, bool, error) {
	if err := Validate(&input); err != nil {
		return nil, false, err
	}

	plan := upsertPlan[models.Hive]{
		table: models.Hive{}.TableName(),
		id:    input.ID.Uint64(),
		scope: ownedBy(input.UserID),
		guard: func(tx *gorm.DB) error {
			return lockKey(tx, "hive:"+input.UserID+"\x1f"+input.Number)
		},
		natural: func(tx *gorm.DB) *gorm.DB {
			return tx.Where("userid = ? AND number = ? AND deleted = ?", input.UserID, input.Number, false).Order("id")
		},
		check: func(tx *gorm.DB, current *models.Hive) error {
			query := tx.Model(&models.Hive{}).
				Where("userid = ? AND number = ? AND deleted = ?", input.UserID, input.Number, false)
			if current != nil {
				query = query.Where("id <> ?", current.ID)
			}
			var clashes int64
			if err := query.Count(&clashes).Error; err != nil {
				return err
			}
			if clashes > 0 {
				return errors.Wrapf(ErrConflict, "hive number %q already in use", input.Number)
			}
			return nil
		},
		build: func(id uint64) models.Hive {
			return models.Hive{ID: id, UserID: input.UserID}
		},
		apply: func(row *models.Hive) {
			row.Number = input.Number
			row.Colour = *input.Colour
			row.Place = *input.Place
			row.Frames = input.Frames
			row.Archived = *input.Archived
		},
	}

	return upsert(ctx, db, plan)
}

// DeleteHive soft-deletes a hive. Its observations are left untouched.
func DeleteHive(ctx context.Context, db *gorm.DB, input DeleteInput) (*models.Hive, error) {
	if err := Validate(&input); err != nil {
		return nil, err
	}
	return softDelete[models.Hive](ctx, db, input.ID.Uint64(), ownedBy(input.UserID))
}

// PurgeHive physically removes a hive. It is refused while any observation references it.
func PurgeHive(ctx context.Context, db *gorm.DB, id uint64) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var hive models.Hive
		if err := forUpdate(tx).First(&hive, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.Wrapf(ErrNotFound, "hive %d", id)
			}
			return err
		}

		var refs int64
		if err := tx.Model(&models.Observation{}).Where("hive_id = ?", id).Count(&refs).Error; err != nil {
			return err
		}
		if refs > 0 {
			return errors.Wrapf(ErrReferentialBlock, "hive %d has %d observations", id, refs)
		}

		return tx.Delete(&hive).Error
	})
}
