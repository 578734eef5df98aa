package utils

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	var errMsg interface{}
	if err != nil {
		errMsg = err.Error()
	} else {
		errMsg = nil
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   errMsg,
	})
}

func SuccessResponse(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

// IsValidYYYYMMDD checks the date filter format used by the analytics
// endpoints.
func IsValidYYYYMMDD(dateStr string) bool {
	if len(dateStr) != 10 {
		return false
	}
	parts := strings.Split(dateStr, "-")
	if len(parts) != 3 {
		return false
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil || year < 1900 || year > 9999 {
		return false
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return false
	}
	if _, err := strconv.Atoi(parts[2]); err != nil {
		return false
	}
	_, err = time.Parse("2006-01-02", dateStr)
	return err == nil
}

func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func Ptr[T any](v T) *T {
	return &v
}
