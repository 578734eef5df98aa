package handler

import (
	"errors"

	"greenscreen_kiosk/constants"
	"greenscreen_kiosk/helper"
	"greenscreen_kiosk/model"
	"greenscreen_kiosk/store"
	"greenscreen_kiosk/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateOrder accepts the kiosk submission, denormalizes the active event
// onto the order and persists it. The kiosk's computed price is stored as
// authoritative; a zero price is recomputed from the active pricing tiers.
func (h *Handler) CreateOrder(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateOrderInput)

	eventName, eventDate := "", ""
	settings, err := h.Settings.Get()
	if err == nil {
		eventName = settings.EventName
		eventDate = settings.EventDate
		if input.TotalPrice == 0 {
			input.TotalPrice = helper.CalculateOrderPrice(settings, input.DeliveryMethod, input.PrintQuantity, input.EmailCount)
		}
	}

	order, err := h.Orders.Create(input, eventName, eventDate)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrInvalidInput):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		case errors.Is(err, store.ErrDuplicateNumber):
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.DUPLICATE_ORDER, err)
		case errors.Is(err, store.ErrGenerationExhausted):
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.INTERNAL_ERROR, err)
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.INTERNAL_ERROR, err)
		}
	}

	BroadcastOrderEvent("order_created", order)

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"id":             order.ID,
		"customerNumber": order.CustomerNumber,
	})
}

func (h *Handler) GetOrders(c *fiber.Ctx) error {
	pendingOnly := c.QueryBool("pending")
	orders, err := h.Orders.List(pendingOnly)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, orders)
}

func (h *Handler) GetOrderByNumber(c *fiber.Ctx) error {
	number := c.Params("customerNumber")
	order, err := h.Orders.GetByNumber(number)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

// UpdateStatus flips one of the five fulfillment flags.
func (h *Handler) UpdateStatus(c *fiber.Ctx) error {
	number := c.Params("customerNumber")
	input := c.Locals("input").(model.StatusUpdateInput)

	if err := h.Orders.SetStatus(number, input.Field, input.Value); err != nil {
		switch {
		case errors.Is(err, store.ErrInvalidField):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		case errors.Is(err, store.ErrNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.INTERNAL_ERROR, err)
		}
	}

	if order, err := h.Orders.GetByNumber(number); err == nil {
		BroadcastOrderEvent("order_updated", order)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"customerNumber": number,
		"field":          input.Field,
		"value":          input.Value,
	})
}

// UpdateNotes replaces the operator notes wholesale.
func (h *Handler) UpdateNotes(c *fiber.Ctx) error {
	number := c.Params("customerNumber")
	input := c.Locals("input").(model.NotesInput)

	if err := h.Orders.SetNotes(number, input.Notes); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"customerNumber": number,
	})
}
