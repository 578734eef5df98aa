package handler

import (
	"errors"

	"greenscreen_kiosk/constants"
	"greenscreen_kiosk/model"
	"greenscreen_kiosk/store"
	"greenscreen_kiosk/utils"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetSettings(c *fiber.Ctx) error {
	settings, err := h.Settings.Get()
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, settings)
}

func (h *Handler) UpdateSettings(c *fiber.Ctx) error {
	input := c.Locals("input").(model.SettingsInput)

	settings, err := h.Settings.Update(input)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, settings)
}
