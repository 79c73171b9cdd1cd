package middleware

import (
	"errors"

	"hotel_manager/constants"
	"hotel_manager/helper"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// Protected reads the token cookie and stashes the decoded claim in Locals.
// A missing cookie is 401, a cookie that fails verification is 403. The
// asymmetry is intentional: no credential vs a bad one.
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(constants.TOKEN_COOKIE)

		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.AUTH_REQUIRED, errors.New("no token"))
		}

		jwtToken, err := helper.ParseToken(token)
		if err != nil || !jwtToken.Valid {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.INVALID_TOKEN, err)
		}

		claim, err := helper.ClaimFromToken(jwtToken)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.INVALID_TOKEN, err)
		}

		c.Locals("admin", claim)
		return c.Next()
	}
}

// MainAdminOnly gates privileged hotel operations. Chain it after Protected,
// it only reads the claim Protected stored.
func MainAdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claim := helper.GetInfoAdminFromToken(c)
		if claim.Role != constants.ROLE_MAIN_ADMIN {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_MAIN_ADMIN, errors.New("main admin role required"))
		}
		return c.Next()
	}
}
