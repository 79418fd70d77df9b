// e2e_test.go
//
// A beekeeping record-keeping data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of beedb.
// beedb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// beedb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with beedb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/localnerve/beedb/internal/containers"
	"github.com/localnerve/beedb/internal/database"
	"github.com/localnerve/beedb/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestE2EWithFullStack runs the built service image against a database container
func TestE2EWithFullStack(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E test in short mode")
	}
	opts := containers.OptionsFromEnv()
	if opts.DBImage == "" {
		t.Skip("Skipping E2E test, DB_IMAGE not set")
	}

	ctx := context.Background()

	stack, err := containers.StartDatabase(ctx, t, opts)
	require.NoError(t, err)
	defer stack.Terminate(t)

	require.NoError(t, stack.StartService(ctx, t))

	client := &http.Client{Timeout: 10 * time.Second}
	call := func(method, path string, body interface{}, token string) *http.Response {
		t.Helper()
		var reader io.Reader
		if body != nil {
			raw, err := json.Marshal(body)
			require.NoError(t, err)
			reader = bytes.NewReader(raw)
		}
		req, err := http.NewRequest(method, stack.BaseURL+path, reader)
		require.NoError(t, err)
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		resp, err := client.Do(req)
		require.NoError(t, err)
		return resp
	}

	t.Run("HealthCheck", func(t *testing.T) {
		db, err := containers.ConnectWithRetry(ctx, stack.HostConfig)
		require.NoError(t, err)
		defer database.Close(db)

		report := services.HealthCheck(ctx, db, stack.BaseURL)
		assert.True(t, report.Healthy(), "%+v", report.Components)
	})

	t.Run("PrometheusMetrics", func(t *testing.T) {
		resp := call(http.MethodGet, "/metrics", nil, "")
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("SwaggerUI", func(t *testing.T) {
		resp := call(http.MethodGet, "/swagger/index.html", nil, "")
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("Unauthorized", func(t *testing.T) {
		resp := call(http.MethodGet, "/api/status", nil, "wrong")
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("HiveLifecycle", func(t *testing.T) {
		hive := map[string]interface{}{
			"userid": "e2e", "number": "1", "colour": "yellow", "place": "field", "archived": false,
		}
		resp := call(http.MethodPost, "/api/hive", hive, opts.APIToken)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		var created map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
		resp.Body.Close()

		obs := map[string]interface{}{
			"hive.id": created["id"], "date": "2024-06-01", "userid": "e2e",
			"queen": 1, "larva": 1, "egg": 1, "mood": 1, "size": 1, "varroa": 1,
		}
		resp = call(http.MethodPost, "/api/obs", obs, opts.APIToken)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()

		resp = call(http.MethodGet, "/api/obs/e2e/5", nil, opts.APIToken)
		var listed []map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&listed))
		resp.Body.Close()
		require.Len(t, listed, 1)
		assert.Equal(t, "2024-06-01", listed[0]["date"])
	})
}
