package handler

import (
	"errors"
	"time"

	"greenscreen_kiosk/constants"
	"greenscreen_kiosk/model"
	"greenscreen_kiosk/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// Login authenticates an operator and issues the dashboard token.
func (h *Handler) Login(c *fiber.Ctx) error {
	input := c.Locals("input").(model.LoginInput)

	var account model.Account
	if err := h.DB.Where("username = ? AND active = ?", input.Username, true).
		First(&account).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_AUTHORIZED,
			errors.New("invalid credentials"))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(input.Password)); err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.NOT_AUTHORIZED,
			errors.New("invalid credentials"))
	}

	expiresAt := time.Now().Add(h.Cfg.JWTTTL)
	claims := jwt.MapClaims{
		"sub":  account.Username,
		"role": account.Role,
		"exp":  expiresAt.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(h.Cfg.JWTSecret))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.INTERNAL_ERROR, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  expiresAt,
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return utils.SuccessResponse(c, fiber.StatusOK, model.TokenData{
		AccessToken: token,
		ExpiresAt:   expiresAt.Unix(),
	})
}
