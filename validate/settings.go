package validate

import (
	"greenscreen_kiosk/model"

	"github.com/gofiber/fiber/v2"
)

func UpdateSettings() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.SettingsInput
		ok, err := parseAndValidate(c, &input)
		if !ok {
			return err
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func CreateTheme() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ThemeInput
		ok, err := parseAndValidate(c, &input)
		if !ok {
			return err
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func CreateBackground() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.BackgroundInput
		ok, err := parseAndValidate(c, &input)
		if !ok {
			return err
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.LoginInput
		ok, err := parseAndValidate(c, &input)
		if !ok {
			return err
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func UploadPhoto() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.PhotoUploadInput
		ok, err := parseAndValidate(c, &input)
		if !ok {
			return err
		}

		c.Locals("input", input)
		return c.Next()
	}
}
