package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/beedb/internal/services"
	"github.com/localnerve/beedb/internal/types"
	"github.com/localnerve/beedb/internal/utils"
	"gorm.io/gorm"
)

// ObservationHandler handles observation routes
type ObservationHandler struct {
	DB *gorm.DB
}

// GetObservations handles GET /api/obs/:userid/:limit
// @Summary List observations
// @Description List up to limit observations per non-deleted hive of the user, oldest first
// @Tags Observations
// @Produce json
// @Security BearerAuth
// @Param userid path string true "User ID"
// @Param limit path int true "Maximum observations per hive"
// @Success 200 {array} models.Observation
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /obs/{userid}/{limit} [get]
func (h *ObservationHandler) GetObservations(c *fiber.Ctx) error {
	userID := c.Params("userid")
	trackUser(c, userID)

	limit, err := c.ParamsInt("limit")
	if err != nil {
		return utils.ErrorResponse(c, "limit must be an integer", fiber.StatusBadRequest, types.ErrorTypeValidation)
	}

	observations, err := services.ListObservations(c.UserContext(), h.DB, userID, limit)
	if err != nil {
		return serviceError(c, err, "getObservations")
	}

	return utils.SuccessResponse(c, observations, fiber.StatusOK)
}

// SetObservation handles POST /api/obs
// @Summary Create or update an observation
// @Tags Observations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.ObservationInput true "Observation"
// @Success 200 {object} models.Observation
// @Success 201 {object} models.Observation
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /obs [post]
func (h *ObservationHandler) SetObservation(c *fiber.Ctx) error {
	var body services.ObservationInput
	if err := c.BodyParser(&body); err != nil {
		return invalidInput(c)
	}
	trackUser(c, body.UserID)

	obs, created, err := services.UpsertObservation(c.UserContext(), h.DB, body)
	if err != nil {
		return serviceError(c, err, "setObservation")
	}

	return utils.RecordResponse(c, obs, created)
}

// DeleteObservation handles DELETE /api/obs
// @Summary Delete an observation
// @Tags Observations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.DeleteInput true "Observation id and owner"
// @Success 200 {object} models.Observation
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /obs [delete]
func (h *ObservationHandler) DeleteObservation(c *fiber.Ctx) error {
	var body services.DeleteInput
	if err := c.BodyParser(&body); err != nil {
		return invalidInput(c)
	}
	trackUser(c, body.UserID)

	obs, err := services.DeleteObservation(c.UserContext(), h.DB, body)
	if err != nil {
		return serviceError(c, err, "deleteObservation")
	}

	return utils.SuccessResponse(c, obs, fiber.StatusOK)
}
