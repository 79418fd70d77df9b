package services

import (
	"context"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/localnerve/beedb/internal/models"
	"github.com/localnerve/beedb/internal/testutil"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func hivePlan(build func(id uint64) models.Hive) upsertPlan[models.Hive] {
	return upsertPlan[models.Hive]{
		table: models.Hive{}.TableName(),
		scope: ownedBy("u1"),
		build: build,
		apply: func(row *models.Hive) {
			row.Number = "1"
			row.Colour = "white"
			row.Place = "yard"
		},
	}
}

func TestUpsertDuplicateKeyIsConflict(t *testing.T) {
	db := testutil.NewDB(t)
	require.NoError(t, db.Create(&models.Hive{ID: 7, UserID: "u2", Number: "1", Colour: "black", Place: "roof"}).Error)

	// Another writer took the id between the lookup and the insert
	plan := hivePlan(func(uint64) models.Hive {
		return models.Hive{ID: 7, UserID: "u1"}
	})
	_, _, err := upsert(context.Background(), db, plan)
	require.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "already in use")
}

func TestUpsertRetriesDeadlockVictims(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	attempts := 0
	plan := hivePlan(func(id uint64) models.Hive {
		return models.Hive{ID: id, UserID: "u1"}
	})
	plan.guard = func(*gorm.DB) error {
		attempts++
		if attempts == 1 {
			return &mysql.MySQLError{Number: 1213, Message: "Deadlock found when trying to get lock"}
		}
		return nil
	}

	hive, created, err := upsert(ctx, db, plan)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 2, attempts)
	assert.Equal(t, "u1", hive.UserID)

	attempts = 0
	plan.guard = func(*gorm.DB) error {
		attempts++
		return &mysql.MySQLError{Number: 1213}
	}
	_, _, err = upsert(ctx, db, plan)
	assert.True(t, isDeadlock(err))
	assert.Equal(t, upsertAttempts, attempts)

	var count int64
	require.NoError(t, db.Model(&models.Hive{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestIsDeadlock(t *testing.T) {
	assert.True(t, isDeadlock(errors.Wrap(&mysql.MySQLError{Number: 1213}, "upsert")))
	assert.False(t, isDeadlock(&mysql.MySQLError{Number: 1062}))
	assert.False(t, isDeadlock(errors.New("deadlock")))
	assert.False(t, isDeadlock(nil))
}

func TestIdentityInsert(t *testing.T) {
	assert.Equal(t, "SET IDENTITY_INSERT hives ON", identityInsert("hives", true))
	assert.Equal(t, "SET IDENTITY_INSERT hives OFF", identityInsert("hives", false))
}

func TestLockKeyIsNoopOnSQLite(t *testing.T) {
	db := testutil.NewDB(t)
	assert.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		return lockKey(tx, "hive:u1\x1f1")
	}))
}
