package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/beedb/internal/handlers"
	"github.com/localnerve/beedb/internal/services"
)

// TrackActivity counts the request against the userid the handler recorded.
// Tracking never changes the response.
func TrackActivity(tracker *services.ActivityTracker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		if userID, ok := c.Locals(handlers.UserIDKey).(string); ok && userID != "" {
			tracker.Track(c.UserContext(), userID)
		}

		return err
	}
}
