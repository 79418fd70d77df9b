// hives.go
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
	"github.com/localnerve/beedb/internal/utils"
	"gorm.io/gorm"
)

// HiveHandler handles hive routes
type HiveHandler struct {
	DB *gorm.DB
}

// GetHives handles GET /api/hives/:userid/:status
// @Summary List hives
// @Description List a user's hives in one status partition. Unknown status values list active hives.
// @Tags Hives
// @Produce json
// @Security BearerAuth
// @Param userid path string true "User ID"
// @Param status path string true "active, archived or deleted"
// @Success 200 {array} models.Hive
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /hives/{userid}/{status} [get]
func (h *HiveHandler) GetHives(c *fiber.Ctx) error {
	userID := c.Params("userid")
	trackUser(c, userID)

	hives, err := services.ListHives(c.UserContext(), h.DB, userID, services.ParseHiveStatus(c.Params("status")))
	if err != nil {
		return serviceError(c, err, "getHives")
	}

	return utils.SuccessResponse(c, hives, fiber.StatusOK)
}

// SetHive handles POST /api/hive
// @Summary Create or update a hive
// @Description Updates the hive with the payload id, or the user's hive with the same number, otherwise creates one
// @Tags Hives
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.HiveInput true "Hive"
// @Success 200 {object} models.Hive
// @Success 201 {object} models.Hive
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /hive [post]
func (h *HiveHandler) SetHive(c *fiber.Ctx) error {
	var body services.HiveInput
	if err := c.BodyParser(&body); err != nil {
		return invalidInput(c)
	}
	trackUser(c, body.UserID)

	hive, created, err := services.UpsertHive(c.UserContext(), h.DB, body)
	if err != nil {
		return serviceError(c, err, "setHive")
	}

	return utils.RecordResponse(c, hive, created)
}

// DeleteHive handles DELETE /api/hive
// @Summary Delete a hive
// @Description Flags the hive deleted. Its observations stop appearing in listings.
// @Tags Hives
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.DeleteInput true "Hive id and owner"
// @Success 200 {object} models.Hive
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /hive [delete]
func (h *HiveHandler) DeleteHive(c *fiber.Ctx) error {
	var body services.DeleteInput
	if err := c.BodyParser(&body); err != nil {
		return invalidInput(c)
	}
	trackUser(c, body.UserID)

	hive, err := services.DeleteHive(c.UserContext(), h.DB, body)
	if err != nil {
		return serviceError(c, err, "deleteHive")
	}

	return utils.SuccessResponse(c, hive, fiber.StatusOK)
}
