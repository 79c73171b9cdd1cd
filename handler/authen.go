package handler

import (
	"errors"
	"time"

	"hotel_manager/config"
	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func setTokenCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     constants.TOKEN_COOKIE,
		Value:    token,
		MaxAge:   constants.TOKEN_COOKIE_MAXAGE,
		HTTPOnly: true,
		SameSite: "Lax",
		Secure:   config.Config("APP_ENV") == "production",
		Path:     "/",
	})
}

// RegisterAdmin creates an admin account. At most one MainAdmin may exist;
// the partial unique index settles concurrent registrations that slip past
// the existence check.
func RegisterAdmin(c *fiber.Ctx) error {
	input := c.Locals("inputRegisterAdmin").(model.RegisterAdminInput)
	db := database.DB

	if input.Role == constants.ROLE_MAIN_ADMIN {
		var count int64
		if err := db.Model(&model.Admin{}).Where("role = ?", constants.ROLE_MAIN_ADMIN).Count(&count).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if count > 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MAIN_ADMIN_EXISTS, errors.New("main admin exists"))
		}
	}

	existing, err := helper.GetAdminByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if existing != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ADMIN_EXISTS, errors.New("email already registered"))
	}

	hash, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	admin := model.Admin{
		Email:    input.Email,
		Password: hash,
		Role:     input.Role,
	}
	if err := db.Create(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost a race on either unique index; report the relevant conflict.
			if input.Role == constants.ROLE_MAIN_ADMIN {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MAIN_ADMIN_EXISTS, err)
			}
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ADMIN_EXISTS, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	token, err := helper.GenerateToken(model.TokenClaim{AdminId: admin.ID, Role: admin.Role})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	setTokenCookie(c, token)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Admin registered successfully",
		"admin":   admin,
	})
}

func LoginAdmin(c *fiber.Ctx) error {
	input := c.Locals("inputLoginAdmin").(model.LoginAdminInput)

	admin, err := helper.GetAdminByEmail(input.Email)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if admin == nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ADMIN_NOT_FOUND, errors.New("email not registered"))
	}

	if !helper.CheckPasswordHash(input.Password, admin.Password) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_CREDENTIALS, errors.New("password does not match"))
	}

	token, err := helper.GenerateToken(model.TokenClaim{AdminId: admin.ID, Role: admin.Role})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	setTokenCookie(c, token)

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"admin":   admin,
	})
}

// LogoutAdmin clears the cookie. Tokens carry no server-side state, so this
// is the whole of revocation.
func LogoutAdmin(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     constants.TOKEN_COOKIE,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Secure:   config.Config("APP_ENV") == "production",
		Path:     "/",
	})
	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}

// LoginStatus reports whether the caller holds a verifiable token.
func LoginStatus(c *fiber.Ctx) error {
	token := c.Cookies(constants.TOKEN_COOKIE)
	if token == "" {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.AUTH_REQUIRED, errors.New("no token"))
	}

	jwtToken, err := helper.ParseToken(token)
	if err != nil || !jwtToken.Valid {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, err)
	}

	claim, err := helper.ClaimFromToken(jwtToken)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, err)
	}

	return c.JSON(fiber.Map{
		"message": "Authenticated",
		"admin":   claim,
	})
}
