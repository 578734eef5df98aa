package handler

import (
	"errors"

	"greenscreen_kiosk/constants"
	"greenscreen_kiosk/model"
	"greenscreen_kiosk/store"
	"greenscreen_kiosk/utils"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetThemes(c *fiber.Ctx) error {
	themes, err := h.Catalog.ListThemes()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, themes)
}

func (h *Handler) CreateTheme(c *fiber.Ctx) error {
	input := c.Locals("input").(model.ThemeInput)

	theme, err := h.Catalog.CreateTheme(input)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, theme)
}

func (h *Handler) UpdateTheme(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	input := c.Locals("input").(model.ThemeInput)

	theme, err := h.Catalog.UpdateTheme(uint(id), input)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, theme)
}

func (h *Handler) DeleteTheme(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	if err := h.Catalog.DeleteTheme(uint(id)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": id})
}

func (h *Handler) GetBackgrounds(c *fiber.Ctx) error {
	enabledOnly := c.QueryBool("enabled")
	backgrounds, err := h.Catalog.ListBackgrounds(enabledOnly)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, backgrounds)
}

func (h *Handler) CreateBackground(c *fiber.Ctx) error {
	input := c.Locals("input").(model.BackgroundInput)

	bg, err := h.Catalog.CreateBackground(input)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, bg)
}

func (h *Handler) UpdateBackground(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	input := c.Locals("input").(model.BackgroundInput)

	bg, err := h.Catalog.UpdateBackground(uint(id), input)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, bg)
}

func (h *Handler) DeleteBackground(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	if err := h.Catalog.DeleteBackground(uint(id)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": id})
}
