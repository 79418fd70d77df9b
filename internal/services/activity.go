package services

import (
	"context"
	"time"

	"github.com/localnerve/beedb/internal/models"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ActivityTracker keeps a per-user count of API calls
type ActivityTracker struct {
	DB *gorm.DB
}

// Increment adds one to the user's counter, creating it at 1 on first use.
// It is a single INSERT ... ON CONFLICT statement, so concurrent calls never lose a count.
func (t *ActivityTracker) Increment(ctx context.Context, userID string) error {
	counter := models.ActivityCounter{UserID: userID, Activity: 1}
	err := t.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "userid"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"activity": gorm.Expr("? + 1", clause.Column{Table: clause.CurrentTable, Name: "activity"}),
			"modified": time.Now(),
		}),
	}).Create(&counter).Error
	if err != nil {
		return errors.Wrapf(err, "failed to track activity for %q", userID)
	}
	return nil
}

// Track is the best-effort form of Increment: failures are logged, never returned
func (t *ActivityTracker) Track(ctx context.Context, userID string) {
	if userID == "" {
		return
	}
	if err := t.Increment(ctx, userID); err != nil {
		log.Warn().Err(err).Str("userid", userID).Msg("Activity tracking failed")
	}
}

// Count returns the user's current activity, zero if never tracked
func (t *ActivityTracker) Count(ctx context.Context, userID string) (int64, error) {
	var counter models.ActivityCounter
	err := t.DB.WithContext(ctx).Where("userid = ?", userID).First(&counter).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return counter.Activity, nil
}
