package validate

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// parseAndValidate parses the JSON body into input and runs struct
// validation, responding 400 on failure. Returns false when the request was
// already answered.
func parseAndValidate(c *fiber.Ctx, input any) (bool, error) {
	if err := c.BodyParser(input); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Invalid input %s", err.Error()),
		})
	}
	if err := validate.Struct(input); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return true, nil
}
