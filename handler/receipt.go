package handler

import (
	"errors"
	"log"

	"greenscreen_kiosk/constants"
	"greenscreen_kiosk/model"
	"greenscreen_kiosk/receipt"
	"greenscreen_kiosk/store"
	"greenscreen_kiosk/utils"

	"github.com/gofiber/fiber/v2"
)

// GetReceipt renders the order receipt as HTML. ?audience=customer|operator|both,
// defaulting to the customer copy.
func (h *Handler) GetReceipt(c *fiber.Ctx) error {
	number := c.Params("customerNumber")
	audience := receipt.Audience(c.Query("audience", string(receipt.AudienceCustomer)))

	order, err := h.Orders.GetByNumber(number)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.INTERNAL_ERROR, err)
	}

	businessName := "Greenscreen Photo Booth"
	if settings, err := h.Settings.Get(); err == nil && settings.BusinessName != "" {
		businessName = settings.BusinessName
	}

	html, err := receipt.Render(order, businessName, audience)
	if err != nil {
		if errors.Is(err, receipt.ErrUnknownAudience) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.INTERNAL_ERROR, err)
	}

	c.Type("html")
	return c.SendString(html)
}

// EmailReceipt mails the customer receipt to the order's addresses (or the
// override recipients). SMTP happens off the request goroutine.
func (h *Handler) EmailReceipt(c *fiber.Ctx) error {
	number := c.Params("customerNumber")

	order, err := h.Orders.GetByNumber(number)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.INTERNAL_ERROR, err)
	}

	var input model.EmailReceiptInput
	_ = c.BodyParser(&input)
	recipients := input.Recipients
	if len(recipients) == 0 {
		recipients = order.EmailAddresses
	}
	if len(recipients) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT,
			errors.New("order has no email addresses"))
	}

	businessName := "Greenscreen Photo Booth"
	if settings, err := h.Settings.Get(); err == nil && settings.BusinessName != "" {
		businessName = settings.BusinessName
	}

	html, err := receipt.Render(order, businessName, receipt.AudienceCustomer)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.INTERNAL_ERROR, err)
	}

	go func() {
		if err := utils.SendReceiptEmail(recipients, order.CustomerNumber, businessName, html); err != nil {
			log.Printf("receipt email for %s failed: %v", order.CustomerNumber, err)
		} else {
			log.Printf("receipt email for %s sent to %d recipient(s)", order.CustomerNumber, len(recipients))
		}
	}()

	return utils.SuccessResponse(c, fiber.StatusAccepted, fiber.Map{
		"customerNumber": number,
		"recipients":     len(recipients),
	})
}
