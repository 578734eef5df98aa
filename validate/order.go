package validate

import (
	"errors"

	"greenscreen_kiosk/constants"
	"greenscreen_kiosk/model"
	"greenscreen_kiosk/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateOrderInput
		ok, err := parseAndValidate(c, &input)
		if !ok {
			return err
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func UpdateStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.StatusUpdateInput
		ok, err := parseAndValidate(c, &input)
		if !ok {
			return err
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func UpdateNotes() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.NotesInput
		ok, err := parseAndValidate(c, &input)
		if !ok {
			return err
		}

		c.Locals("input", input)
		return c.Next()
	}
}

// AnalyticsDate checks the ?date=YYYY-MM-DD query the analytics endpoints
// require.
func AnalyticsDate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		date := c.Query("date")
		if !utils.IsValidYYYYMMDD(date) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("date must be YYYY-MM-DD"))
		}

		c.Locals("date", date)
		return c.Next()
	}
}
