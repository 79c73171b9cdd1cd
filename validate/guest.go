package validate

import (
	"errors"
	"strconv"

	"hotel_manager/constants"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

const checkOutOrderMessage = "Check-out date must be after check-in date"

// SubmitGuest validates the public check-in form. Shape failures and the
// date-order failure are reported together in one 400.
func SubmitGuest(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		hotelId, err := strconv.Atoi(c.Params(key))
		if err != nil || hotelId <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_HOTEL_ID, errors.New("params invalid"))
		}

		var input model.SubmitGuestInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", err)
		}

		var violations []utils.FieldError
		if err := validate.Struct(input); err != nil {
			violations = CollectViolations(err)
		}

		// The ordering check only applies once both dates parse.
		checkIn, inErr := utils.ParseCheckDate(input.CheckInDate)
		checkOut, outErr := utils.ParseCheckDate(input.CheckOutDate)
		if inErr == nil && outErr == nil && !checkOut.After(checkIn) {
			violations = append(violations, utils.FieldError{Field: "checkOutDate", Message: checkOutOrderMessage})
		}

		if len(violations) > 0 {
			return utils.ValidationErrorResponse(c, violations)
		}

		c.Locals("inputSubmitGuest", input)
		c.Locals("inputHotelId", uint(hotelId))
		c.Locals("checkInDate", checkIn)
		c.Locals("checkOutDate", checkOut)
		return c.Next()
	}
}

// EditGuest re-runs the submission rules over whichever fields the request
// carries.
func EditGuest(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(key))
		if err != nil || id <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_GUEST_ID, errors.New("params invalid"))
		}

		var input model.EditGuestInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", err)
		}

		var violations []utils.FieldError
		if err := validate.Struct(input); err != nil {
			violations = CollectViolations(err)
		}

		if input.CheckInDate != nil && input.CheckOutDate != nil {
			checkIn, inErr := utils.ParseCheckDate(*input.CheckInDate)
			checkOut, outErr := utils.ParseCheckDate(*input.CheckOutDate)
			if inErr == nil && outErr == nil && !checkOut.After(checkIn) {
				violations = append(violations, utils.FieldError{Field: "checkOutDate", Message: checkOutOrderMessage})
			}
		}

		if len(violations) > 0 {
			return utils.ValidationErrorResponse(c, violations)
		}

		c.Locals("inputEditGuest", input)
		c.Locals("inputId", uint(id))
		return c.Next()
	}
}
