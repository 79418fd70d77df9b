package services

import (
	"context"

	"github.com/localnerve/beedb/internal/models"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ListNotes returns the user's non-deleted notes in insertion order
func ListNotes(ctx context.Context, db *gorm.DB, userID string) ([]models.GlobalNote, error) {
	notes := make([]models.GlobalNote, 0)
	if err := db.WithContext(ctx).
		Where("userid = ? AND deleted = ?", userID, false).
		Order("id").
		Find(&notes).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list notes")
	}
	return notes, nil
}

// GetNote returns one note owned by userID
func GetNote(ctx context.Context, db *gorm.DB, userID string, id uint64) (*models.GlobalNote, error) {
	return findOwned[models.GlobalNote](ctx, db, id, ownedBy(userID))
}

// UpsertNote creates a note or overwrites the user's note with the payload id
func UpsertNote(ctx context.Context, db *gorm.DB, input NoteInput) (*models.GlobalNote, bool, error) {
	if err := Validate(&input); err != nil {
		return nil, false, err
	}

	plan := upsertPlan[models.GlobalNote]{
		table: models.GlobalNote{}.TableName(),
		id:    input.ID.Uint64(),
		scope: ownedBy(input.UserID),
		build: func(id uint64) models.GlobalNote {
			return models.GlobalNote{ID: id, UserID: input.UserID}
		},
		apply: func(row *models.GlobalNote) {
			row.Note = *input.Note
		},
	}

	return upsert(ctx, db, plan)
}

// DeleteNote soft-deletes a note
func DeleteNote(ctx context.Context, db *gorm.DB, input DeleteInput) (*models.GlobalNote, error) {
	if err := Validate(&input); err != nil {
		return nil, err
	}
	return softDelete[models.GlobalNote](ctx, db, input.ID.Uint64(), ownedBy(input.UserID))
}
