package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/beedb/internal/utils"
)

// StatusUserID is the activity key status checks are counted under
const StatusUserID = "status"

// Status handles GET /api/status
// @Summary Service status
// @Description Reports that the service is up and the bearer token is accepted
// @Tags Status
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.StatusResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /status [get]
func Status(c *fiber.Ctx) error {
	trackUser(c, StatusUserID)
	return utils.SuccessResponse(c, utils.StatusResponseStruct{Status: "ok"}, fiber.StatusOK)
}
