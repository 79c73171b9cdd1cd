package validate

import (
	"errors"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"hotel_manager/constants"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

var allowedLogoExts = []string{".png", ".jpg", ".jpeg"}

// CreateHotel parses the multipart form. Name, address and the logo file are
// all required; violations are collected into one response.
func CreateHotel() fiber.Handler {
	return func(c *fiber.Ctx) error {
		form, err := c.MultipartForm()
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid form", err)
		}

		name := strings.TrimSpace(utils.GetFirstValue(form.Value, "name"))
		address := strings.TrimSpace(utils.GetFirstValue(form.Value, "address"))

		var violations []utils.FieldError
		if name == "" {
			violations = append(violations, utils.FieldError{Field: "name", Message: "Hotel name is required"})
		}
		if address == "" {
			violations = append(violations, utils.FieldError{Field: "address", Message: "Address is required"})
		}
		if len(violations) > 0 {
			return utils.ValidationErrorResponse(c, violations)
		}

		files := form.File["logo"]
		if len(files) == 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.LOGO_FILE_REQUIRED, errors.New("no logo file"))
		}
		file := files[0]

		ext := strings.ToLower(filepath.Ext(file.Filename))
		if !slices.Contains(allowedLogoExts, ext) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.LOGO_FORMAT_UNSUPPORTED, errors.New("invalid file format"))
		}

		c.Locals("hotelName", name)
		c.Locals("hotelAddress", address)
		c.Locals("logoFile", file)
		return c.Next()
	}
}

// EditHotel parses the id and the partial multipart form. Every field is
// optional; a provided logo file still has to be an image.
func EditHotel(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(key))
		if err != nil || id <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_HOTEL_ID, errors.New("params invalid"))
		}

		form, err := c.MultipartForm()
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid form", err)
		}

		name := strings.TrimSpace(utils.GetFirstValue(form.Value, "name"))
		address := strings.TrimSpace(utils.GetFirstValue(form.Value, "address"))

		input := model.EditHotelInput{
			Name:    utils.StringPtr(name),
			Address: utils.StringPtr(address),
		}

		if files := form.File["logo"]; len(files) > 0 {
			file := files[0]
			ext := strings.ToLower(filepath.Ext(file.Filename))
			if !slices.Contains(allowedLogoExts, ext) {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.LOGO_FORMAT_UNSUPPORTED, errors.New("invalid file format"))
			}
			c.Locals("logoFile", file)
		}

		c.Locals("inputEditHotel", input)
		c.Locals("inputId", uint(id))
		return c.Next()
	}
}
