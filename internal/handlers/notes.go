package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/beedb/internal/services"
	"github.com/localnerve/beedb/internal/utils"
	"gorm.io/gorm"
)

// NoteHandler handles global note routes
type NoteHandler struct {
	DB *gorm.DB
}

// GetNotes handles GET /api/notes/:userid
// @Summary List notes
// @Tags Notes
// @Produce json
// @Security BearerAuth
// @Param userid path string true "User ID"
// @Success 200 {array} models.GlobalNote
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /notes/{userid} [get]
func (h *NoteHandler) GetNotes(c *fiber.Ctx) error {
	userID := c.Params("userid")
	trackUser(c, userID)

	notes, err := services.ListNotes(c.UserContext(), h.DB, userID)
	if err != nil {
		return serviceError(c, err, "getNotes")
	}

	return utils.SuccessResponse(c, notes, fiber.StatusOK)
}

// SetNote handles POST /api/note
// @Summary Create or update a note
// @Tags Notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.NoteInput true "Note"
// @Success 200 {object} models.GlobalNote
// @Success 201 {object} models.GlobalNote
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /note [post]
func (h *NoteHandler) SetNote(c *fiber.Ctx) error {
	var body services.NoteInput
	if err := c.BodyParser(&body); err != nil {
		return invalidInput(c)
	}
	trackUser(c, body.UserID)

	note, created, err := services.UpsertNote(c.UserContext(), h.DB, body)
	if err != nil {
		return serviceError(c, err, "setNote")
	}

	return utils.RecordResponse(c, note, created)
}

// DeleteNote handles DELETE /api/note
// @Summary Delete a note
// @Tags Notes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.DeleteInput true "Note id and owner"
// @Success 200 {object} models.GlobalNote
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /note [delete]
func (h *NoteHandler) DeleteNote(c *fiber.Ctx) error {
	var body services.DeleteInput
	if err := c.BodyParser(&body); err != nil {
		return invalidInput(c)
	}
	trackUser(c, body.UserID)

	note, err := services.DeleteNote(c.UserContext(), h.DB, body)
	if err != nil {
		return serviceError(c, err, "deleteNote")
	}

	return utils.SuccessResponse(c, note, fiber.StatusOK)
}
