package handler

import (
	"errors"
	"time"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

// SubmitGuest persists a public check-in submission for one hotel. No
// authentication: this is the form the QR code links to.
func SubmitGuest(c *fiber.Ctx) error {
	input := c.Locals("inputSubmitGuest").(model.SubmitGuestInput)
	hotelId := c.Locals("inputHotelId").(uint)
	checkIn := c.Locals("checkInDate").(time.Time)
	checkOut := c.Locals("checkOutDate").(time.Time)

	var hotel model.Hotel
	if err := database.DB.First(&hotel, hotelId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.HOTEL_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var guest model.Guest
	copier.Copy(&guest, &input)
	guest.HotelId = hotelId
	guest.CheckInDate = utils.NewDateOnly(checkIn)
	guest.CheckOutDate = utils.NewDateOnly(checkOut)

	if err := database.DB.Create(&guest).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Guest details submitted successfully",
		"guest":   guest,
	})
}

// GetGuestsByHotel lists every guest of one hotel. Zero matches is a 404,
// same convention as the hotel list.
func GetGuestsByHotel(c *fiber.Ctx) error {
	hotelId := c.Locals("inputId").(uint)

	var guests model.Guests
	if err := database.DB.Where("hotel_id = ?", hotelId).Find(&guests).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if len(guests) == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NO_GUESTS_FOR_HOTEL, errors.New("no guests"))
	}

	return c.JSON(fiber.Map{"guests": guests})
}

func GetGuestById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	var guest model.Guest
	if err := database.DB.First(&guest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.GUEST_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.JSON(fiber.Map{"guest": guest})
}

// EditGuest applies the provided fields; copier skips nil pointers so absent
// fields keep their stored values. The BeforeSave hook still rejects an
// update that breaks the date ordering against a stored date.
func EditGuest(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)
	input := c.Locals("inputEditGuest").(model.EditGuestInput)

	var guest model.Guest
	if err := database.DB.First(&guest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.GUEST_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	copier.Copy(&guest, &input)
	if input.CheckInDate != nil {
		checkIn, err := utils.ParseCheckDate(*input.CheckInDate)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}
		guest.CheckInDate = utils.NewDateOnly(checkIn)
	}
	if input.CheckOutDate != nil {
		checkOut, err := utils.ParseCheckDate(*input.CheckOutDate)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}
		guest.CheckOutDate = utils.NewDateOnly(checkOut)
	}

	if err := database.DB.Save(&guest).Error; err != nil {
		if errors.Is(err, model.ErrCheckOutNotAfterCheckIn) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.JSON(fiber.Map{
		"message": "Guest Details Updated Successfully",
		"guest":   guest,
	})
}

// DeleteGuest removes one guest. A second delete of the same id is a plain
// 404.
func DeleteGuest(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)

	var guest model.Guest
	if err := database.DB.First(&guest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.GUEST_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := database.DB.Delete(&model.Guest{}, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return c.JSON(fiber.Map{
		"message": "Guest Deleted Successfully",
		"guest":   guest,
	})
}
