package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/localnerve/beedb/internal/models"
	"github.com/localnerve/beedb/internal/services"
	"github.com/localnerve/beedb/internal/testutil"
	"github.com/localnerve/beedb/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(n int) time.Time {
	return time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func observationInput(userID string, hiveID uint64, on time.Time) services.ObservationInput {
	date := models.NewDate(on)
	return services.ObservationInput{
		HiveID:  types.FlexID(hiveID),
		Date:    &date,
		Comment: ptr("calm colony"),
		UserID:  userID,
		Queen:   ptr(1),
		Larva:   ptr(2),
		Egg:     ptr(3),
		Mood:    ptr(4),
		Size:    ptr(5),
		Varroa:  ptr(0),
	}
}

func TestListObservationsPerHiveLimit(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	h1 := testutil.CreateHive(t, db, "u1", "1", false, false)
	h2 := testutil.CreateHive(t, db, "u1", "2", true, false)
	gone := testutil.CreateHive(t, db, "u1", "3", false, true)
	foreign := testutil.CreateHive(t, db, "u2", "1", false, false)

	// Insert out of date order to prove sorting
	for _, n := range []int{4, 0, 3, 1, 2} {
		testutil.CreateObservation(t, db, h1, day(n), false)
	}
	testutil.CreateObservation(t, db, h1, day(-1), true)
	testutil.CreateObservation(t, db, h2, day(7), false)
	testutil.CreateObservation(t, db, gone, day(1), false)
	testutil.CreateObservation(t, db, foreign, day(1), false)

	obs, err := services.ListObservations(ctx, db, "u1", 3)
	require.NoError(t, err)
	// min(5, 3) + min(1, 3)
	require.Len(t, obs, 4)

	perHive := map[uint64][]models.Observation{}
	for _, o := range obs {
		assert.Equal(t, "u1", o.UserID)
		assert.False(t, o.Deleted)
		perHive[o.HiveID] = append(perHive[o.HiveID], o)
	}
	assert.NotContains(t, perHive, gone.ID)
	require.Len(t, perHive[h1.ID], 3)
	assert.Equal(t, "2024-04-01", perHive[h1.ID][0].Date.String())
	assert.Equal(t, "2024-04-02", perHive[h1.ID][1].Date.String())
	assert.Equal(t, "2024-04-03", perHive[h1.ID][2].Date.String())
	assert.Len(t, perHive[h2.ID], 1)

	all, err := services.ListObservations(ctx, db, "u1", 100)
	require.NoError(t, err)
	assert.Len(t, all, 6)
}

func TestListObservationsLimits(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	_, err := services.ListObservations(ctx, db, "u1", 0)
	assert.ErrorIs(t, err, services.ErrValidation)
	_, err = services.ListObservations(ctx, db, "u1", -5)
	assert.ErrorIs(t, err, services.ErrValidation)

	obs, err := services.ListObservations(ctx, db, "nobody", 10)
	require.NoError(t, err)
	assert.NotNil(t, obs)
	assert.Empty(t, obs)
}

func TestUpsertObservation(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	hive := testutil.CreateHive(t, db, "u1", "1", false, false)

	created, isNew, err := services.UpsertObservation(ctx, db, observationInput("u1", hive.ID, day(0)))
	require.NoError(t, err)
	assert.True(t, isNew)
	assert.Equal(t, hive.ID, created.HiveID)
	assert.Equal(t, 0, created.Varroa)

	time.Sleep(20 * time.Millisecond)
	update := observationInput("u1", hive.ID, day(1))
	update.ID = types.FlexID(created.ID)
	update.Comment = nil
	update.Varroa = ptr(12)
	updated, isNew, err := services.UpsertObservation(ctx, db, update)
	require.NoError(t, err)
	assert.False(t, isNew)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 12, updated.Varroa)
	assert.Nil(t, updated.Comment)
	assert.Equal(t, "2024-04-02", updated.Date.String())

	stored, err := services.GetObservation(ctx, db, "u1", created.ID)
	require.NoError(t, err)
	assert.Equal(t, 12, stored.Varroa)
	assert.True(t, stored.UpdatedAt.After(created.UpdatedAt), "modified must advance on update")
	assert.WithinDuration(t, created.CreatedAt, stored.CreatedAt, time.Millisecond)

	_, err = services.GetObservation(ctx, db, "u2", created.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestUpsertObservationHiveRules(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	mine := testutil.CreateHive(t, db, "u1", "1", false, false)
	theirs := testutil.CreateHive(t, db, "u2", "1", false, false)
	deleted := testutil.CreateHive(t, db, "u1", "2", false, true)

	_, _, err := services.UpsertObservation(ctx, db, observationInput("u1", theirs.ID, day(0)))
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, _, err = services.UpsertObservation(ctx, db, observationInput("u1", deleted.ID, day(0)))
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, _, err = services.UpsertObservation(ctx, db, observationInput("u1", 9999, day(0)))
	assert.ErrorIs(t, err, services.ErrNotFound)

	// An existing observation id under a different hive is not this row
	obs := testutil.CreateObservation(t, db, mine, day(0), false)
	other := testutil.CreateHive(t, db, "u1", "3", false, false)
	moved := observationInput("u1", other.ID, day(0))
	moved.ID = types.FlexID(obs.ID)
	_, _, err = services.UpsertObservation(ctx, db, moved)
	require.ErrorIs(t, err, services.ErrConflict)
	assert.Contains(t, err.Error(), "already in use")

	// A deleted hive refuses writes to its existing observations too
	_, err = services.DeleteHive(ctx, db, services.DeleteInput{ID: types.FlexID(mine.ID), UserID: "u1"})
	require.NoError(t, err)
	update := observationInput("u1", mine.ID, day(3))
	update.ID = types.FlexID(obs.ID)
	_, _, err = services.UpsertObservation(ctx, db, update)
	assert.ErrorIs(t, err, services.ErrNotFound)

	var stored models.Observation
	require.NoError(t, db.First(&stored, obs.ID).Error)
	assert.Equal(t, "2024-04-01", stored.Date.String())
}

func TestUpsertObservationValidation(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	input := observationInput("u1", 1, day(0))
	input.Date = nil
	input.Varroa = nil
	_, _, err := services.UpsertObservation(ctx, db, input)
	require.ErrorIs(t, err, services.ErrValidation)
	assert.Contains(t, err.Error(), "date")
	assert.Contains(t, err.Error(), "varroa")

	input = observationInput("u1", 0, day(0))
	_, _, err = services.UpsertObservation(ctx, db, input)
	require.ErrorIs(t, err, services.ErrValidation)
	assert.Contains(t, err.Error(), "hive.id")
}

func TestDeleteObservation(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	hive := testutil.CreateHive(t, db, "u1", "1", false, false)
	obs := testutil.CreateObservation(t, db, hive, day(0), false)

	time.Sleep(20 * time.Millisecond)
	input := services.DeleteInput{ID: types.FlexID(obs.ID), UserID: "u1"}
	deleted, err := services.DeleteObservation(ctx, db, input)
	require.NoError(t, err)
	assert.True(t, deleted.Deleted)
	assert.True(t, deleted.UpdatedAt.After(obs.UpdatedAt))

	_, err = services.DeleteObservation(ctx, db, input)
	require.NoError(t, err)

	listed, err := services.ListObservations(ctx, db, "u1", 10)
	require.NoError(t, err)
	assert.Empty(t, listed)

	_, err = services.DeleteObservation(ctx, db, services.DeleteInput{ID: types.FlexID(obs.ID), UserID: "u2"})
	assert.ErrorIs(t, err, services.ErrNotFound)
}
