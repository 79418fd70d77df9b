// common.go
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

package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/beedb/internal/services"
	"github.com/localnerve/beedb/internal/types"
	"github.com/localnerve/beedb/internal/utils"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// UserIDKey is the Locals key a handler sets once it knows which user the call is for
const UserIDKey = "userid"

// trackUser records the caller for the activity middleware
func trackUser(c *fiber.Ctx, userID string) {
	c.Locals(UserIDKey, userID)
}

// invalidInput answers a body that could not be decoded at all
func invalidInput(c *fiber.Ctx) error {
	return utils.ErrorResponse(c, "Invalid input", fiber.StatusBadRequest, types.ErrorTypeValidation)
}

// StatusForError maps a service error to its HTTP status and envelope type
func StatusForError(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrValidation):
		return fiber.StatusBadRequest, types.ErrorTypeValidation
	case errors.Is(err, services.ErrNotFound):
		return fiber.StatusNotFound, types.ErrorTypeNotFound
	case errors.Is(err, services.ErrConflict):
		return fiber.StatusConflict, types.ErrorTypeConflict
	case errors.Is(err, services.ErrReferentialBlock):
		return fiber.StatusConflict, types.ErrorTypeReference
	}
	return fiber.StatusInternalServerError, ""
}

// serviceError renders a failed service call. Unexpected errors are logged and
// reported with the operation name as their type.
func serviceError(c *fiber.Ctx, err error, op string) error {
	status, errorType := StatusForError(err)
	if status == fiber.StatusInternalServerError {
		log.Error().Err(err).Str("op", op).Str("url", c.OriginalURL()).Msg("Request failed")
		return utils.ErrorResponse(c, err.Error(), status, op)
	}
	return utils.ErrorResponse(c, err.Error(), status, errorType)
}
