package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/beedb/internal/types"
	"github.com/localnerve/beedb/internal/utils"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// ErrorHandler renders errors that escape a handler in the standard envelope
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	var customErr *types.CustomError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &customErr):
		code = customErr.Code
		message = customErr.Message
		errorType = customErr.Type
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
		message = fiberErr.Message
	}

	if code >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("url", c.OriginalURL()).Msg("Unhandled error")
	}

	return utils.ErrorResponse(c, message, code, errorType)
}

// NotFound is the fallback for unrouted requests
func NotFound(c *fiber.Ctx) error {
	return utils.NotFoundResponse(c, "[404] Resource Not Found")
}
