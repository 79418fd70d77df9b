package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/beedb/internal/handlers"
	"github.com/localnerve/beedb/internal/middleware"
	"github.com/localnerve/beedb/internal/services"
	"github.com/localnerve/beedb/internal/testutil"
	"github.com/localnerve/beedb/internal/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})
}

func TestAuthBearer(t *testing.T) {
	app := newApp()
	app.Get("/", middleware.AuthBearer("s3cret"), func(c *fiber.Ctx) error {
		return c.SendString("in")
	})

	cases := map[string]int{
		"":               http.StatusUnauthorized,
		"Bearer":         http.StatusUnauthorized,
		"Bearer ":        http.StatusUnauthorized,
		"Bearer s3cre":   http.StatusUnauthorized,
		"Bearer s3cretX": http.StatusUnauthorized,
		"Token s3cret":   http.StatusUnauthorized,
		"Bearer s3cret":  http.StatusOK,
		"bearer s3cret":  http.StatusOK,
	}
	for header, want := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, want, resp.StatusCode, "header %q", header)
	}
}

func TestAuthBearerEmptyTokenRejectsAll(t *testing.T) {
	app := newApp()
	app.Get("/", middleware.AuthBearer(""), func(c *fiber.Ctx) error {
		return c.SendString("in")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer ")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestTrackActivity(t *testing.T) {
	db := testutil.NewDB(t)
	tracker := &services.ActivityTracker{DB: db}

	app := newApp()
	app.Use(middleware.TrackActivity(tracker))
	app.Get("/known/:userid", func(c *fiber.Ctx) error {
		c.Locals(handlers.UserIDKey, c.Params("userid"))
		return fiber.NewError(fiber.StatusTeapot, "still counted")
	})
	app.Get("/anonymous", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/known/u1", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)
	}
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/anonymous", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	count, err := tracker.Count(t.Context(), "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestErrorHandler(t *testing.T) {
	app := newApp()
	app.Get("/custom", func(c *fiber.Ctx) error {
		return errors.Wrap(&types.CustomError{Code: 418, Message: "short and stout", Type: "teapot"}, "brewing")
	})
	app.Get("/fiber", func(c *fiber.Ctx) error {
		return fiber.ErrMethodNotAllowed
	})
	app.Get("/plain", func(c *fiber.Ctx) error {
		return errors.New("boom")
	})

	cases := []struct {
		path    string
		status  int
		message string
		errType string
	}{
		{"/custom", 418, "short and stout", "teapot"},
		{"/fiber", http.StatusMethodNotAllowed, "Method Not Allowed", "unknown"},
		{"/plain", http.StatusInternalServerError, "boom", "unknown"},
	}
	for _, tc := range cases {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, tc.path, nil))
		require.NoError(t, err)
		testutil.AssertStatus(t, resp, tc.status)

		var body map[string]interface{}
		testutil.ParseJSON(t, resp, &body)
		assert.Equal(t, tc.message, body["message"], tc.path)
		assert.Equal(t, tc.errType, body["type"], tc.path)
		assert.Equal(t, float64(tc.status), body["status"], tc.path)
		assert.Equal(t, tc.path, body["url"], tc.path)
	}
}

func TestVersionMiddleware(t *testing.T) {
	app := newApp()
	app.Use(middleware.VersionMiddleware())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("apiVersion").(string))
	})

	for header, want := range map[string]string{"": "1.0.0", "1.0": "1.0.0", "1": "1.0.0", "2.1.0": "2.1.0"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("X-Api-Version", header)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, want, resp.Header.Get("X-Api-Version"))
	}
}
