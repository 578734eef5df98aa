package handler

import (
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"greenscreen_kiosk/constants"
	"greenscreen_kiosk/helper"
	"greenscreen_kiosk/model"
	"greenscreen_kiosk/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// UploadPhoto stores a base64-encoded customer photo under the photos
// directory and returns the path the order should reference. The path is
// owned by the capture flow; the order store only references it.
func (h *Handler) UploadPhoto(c *fiber.Ctx) error {
	input := c.Locals("input").(model.PhotoUploadInput)

	data := input.Data
	// Accept data URIs from the kiosk's canvas capture.
	if idx := strings.Index(data, ","); idx != -1 && strings.HasPrefix(data, "data:") {
		data = data[idx+1:]
	}
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	ext := strings.ToLower(strings.TrimPrefix(input.Extension, "."))
	if ext == "" {
		ext = "jpg"
	}

	if err := os.MkdirAll(h.Cfg.PhotosDir, 0o755); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.INTERNAL_ERROR, err)
	}
	path := filepath.Join(h.Cfg.PhotosDir, uuid.New().String()+"."+ext)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"path": path,
	})
}

// CloudinarySignature signs a direct-to-cloud upload for deployments that
// back customer photos up to cloudinary.
func (h *Handler) CloudinarySignature(c *fiber.Ctx) error {
	if !helper.CloudinaryConfigured() {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, constants.INTERNAL_ERROR,
			errors.New("cloudinary is not configured"))
	}

	type sigParams struct {
		Folder   string `json:"folder"`
		PublicID string `json:"public_id"`
	}
	var params sigParams
	if err := c.BodyParser(&params); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	payload, err := helper.SignUploadParams(params.Folder, params.PublicID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.INTERNAL_ERROR, err)
	}
	return c.JSON(payload)
}
