package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-05-17"`), &d))
	assert.Equal(t, "2024-05-17", d.String())

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `"2024-05-17"`, string(out))
}

func TestDateAcceptsTimestamp(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-05-17T13:45:00Z"`), &d))
	assert.Equal(t, "2024-05-17", d.String())
	assert.Equal(t, 0, d.Time().Hour())
}

func TestDateRejectsGarbage(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"17/05/2024"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`20240517`), &d))
}

func TestDateNull(t *testing.T) {
	d := NewDate(time.Now())
	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestObservationWireNames(t *testing.T) {
	obs := Observation{ID: 3, HiveID: 9, UserID: "u1", Date: NewDate(time.Date(2024, 5, 17, 8, 0, 0, 0, time.UTC))}
	out, err := json.Marshal(obs)
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &m))
	assert.EqualValues(t, 9, m["hive.id"])
	assert.Equal(t, "2024-05-17", m["date"])
	assert.NotContains(t, m, "Hive")
}
