package validate

import (
	"hotel_manager/constants"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func RegisterAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.RegisterAdminInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", err)
		}

		if input.Role == "" {
			input.Role = constants.ROLE_GUEST_ADMIN
		}

		if err := validate.Struct(input); err != nil {
			return utils.ValidationErrorResponse(c, CollectViolations(err))
		}

		c.Locals("inputRegisterAdmin", input)

		return c.Next()
	}
}

func LoginAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.LoginAdminInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ValidationErrorResponse(c, CollectViolations(err))
		}

		c.Locals("inputLoginAdmin", input)

		return c.Next()
	}
}
