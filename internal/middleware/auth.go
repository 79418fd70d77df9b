package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/beedb/internal/types"
)

const bearerPrefix = "Bearer "

// AuthBearer accepts only requests whose Authorization header carries token as a bearer credential
func AuthBearer(token string) fiber.Handler {
	expected := []byte(token)

	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
			return types.Unauthenticated("Bearer token not found")
		}

		supplied := []byte(strings.TrimSpace(header[len(bearerPrefix):]))
		if len(expected) == 0 || subtle.ConstantTimeCompare(supplied, expected) != 1 {
			return types.Unauthenticated("Invalid bearer token")
		}

		return c.Next()
	}
}
