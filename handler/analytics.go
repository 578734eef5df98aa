package handler

import (
	"errors"

	"greenscreen_kiosk/constants"
	"greenscreen_kiosk/store"
	"greenscreen_kiosk/utils"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetStatistics(c *fiber.Ctx) error {
	stats, err := h.Analytics.Statistics()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, stats)
}

func (h *Handler) GetOrdersByHour(c *fiber.Ctx) error {
	date := c.Locals("date").(string)

	hours, err := h.Analytics.OrdersByHour(date)
	if err != nil {
		if errors.Is(err, store.ErrInvalidInput) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"date":       date,
		"hourlyData": hours,
	})
}

func (h *Handler) GetDailySummary(c *fiber.Ctx) error {
	date := c.Locals("date").(string)

	summary, err := h.Analytics.DailySummary(date)
	if err != nil {
		if errors.Is(err, store.ErrInvalidInput) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"date":    date,
		"summary": summary,
	})
}
