package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexIDDecoding(t *testing.T) {
	cases := []struct {
		in   string
		want uint64
	}{
		{`{"id": 42}`, 42},
		{`{"id": "42"}`, 42},
		{`{"id": " 7 "}`, 7},
		{`{"id": ""}`, 0},
		{`{"id": null}`, 0},
		{`{}`, 0},
	}

	for _, tc := range cases {
		var body struct {
			ID FlexID `json:"id"`
		}
		require.NoError(t, json.Unmarshal([]byte(tc.in), &body), tc.in)
		assert.Equal(t, tc.want, body.ID.Uint64(), tc.in)
	}
}

func TestFlexIDRejects(t *testing.T) {
	for _, in := range []string{`{"id": -1}`, `{"id": "abc"}`, `{"id": 1.5}`, `{"id": true}`} {
		var body struct {
			ID FlexID `json:"id"`
		}
		assert.Error(t, json.Unmarshal([]byte(in), &body), in)
	}
}

func TestUnauthenticated(t *testing.T) {
	err := Unauthenticated("bad token")
	assert.Equal(t, 401, err.Code)
	assert.Equal(t, ErrorTypeAuth, err.Type)
	assert.Equal(t, "401: bad token [type: auth.bearer]", err.Error())
}
