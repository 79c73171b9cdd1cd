package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"sync"
	"time"

	"hotel_manager/config"
	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/model"
	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

const hotelCacheTTL = 10 * time.Minute

func hotelCacheKey(id uint) string {
	return fmt.Sprintf("hotel:%d", id)
}

func cacheHotel(ctx context.Context, hotel *model.Hotel) {
	if database.Redis == nil {
		return
	}
	payload, err := json.Marshal(hotel)
	if err != nil {
		return
	}
	if err := database.Redis.Set(ctx, hotelCacheKey(hotel.ID), payload, hotelCacheTTL).Err(); err != nil {
		log.Printf("failed to cache hotel %d: %v", hotel.ID, err)
	}
}

func invalidateHotelCache(ctx context.Context, id uint) {
	if database.Redis == nil {
		return
	}
	if err := database.Redis.Del(ctx, hotelCacheKey(id)).Err(); err != nil {
		log.Printf("failed to invalidate hotel %d cache: %v", id, err)
	}
}

func uploadLogo(ctx context.Context, file *multipart.FileHeader, name string) (string, error) {
	fileReader, err := file.Open()
	if err != nil {
		return "", err
	}
	defer fileReader.Close()

	publicID := fmt.Sprintf("logo_%s_%d", slug.Make(name), time.Now().UnixNano())
	return helper.UploadImage(ctx, fileReader, constants.FOLDER_HOTEL_LOGOS, publicID)
}

// CreateHotel runs the three-phase chain: upload the logo, persist the row,
// then render a QR code for the new id and attach its uploaded URL. There is
// no rollback; a failure in a later phase leaves a hotel with a logo and no
// qrcode, recoverable by re-running update.
func CreateHotel(c *fiber.Ctx) error {
	name := c.Locals("hotelName").(string)
	address := c.Locals("hotelAddress").(string)
	file := c.Locals("logoFile").(*multipart.FileHeader)
	ctx := c.Context()

	logoUrl, err := uploadLogo(ctx, file, name)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error uploading logo", err)
	}

	hotel := model.Hotel{
		Name:    name,
		Address: address,
		Logo:    logoUrl,
	}
	if err := database.DB.Create(&hotel).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error saving hotel", err)
	}

	// The QR payload links to this hotel's public check-in form, so it can
	// only be built once the id exists.
	qrPayload := fmt.Sprintf("%s/%d", config.Config("APP_URL"), hotel.ID)
	qrPng, err := utils.GenerateQRCode(qrPayload, 512)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error generating QR code", err)
	}

	qrUrl, err := helper.UploadImage(ctx, bytes.NewReader(qrPng), constants.FOLDER_HOTEL_QR, fmt.Sprintf("qr_%s", uuid.New().String()))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error uploading QR code", err)
	}

	hotel.Qrcode = qrUrl
	if err := database.DB.Model(&hotel).Update("qrcode", qrUrl).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error updating hotel with QR code", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Hotel added successfully",
		"hotel":   hotel,
	})
}

// GetHotels lists every hotel. An empty registry is a 404, matching the
// admin dashboard's expectations.
func GetHotels(c *fiber.Ctx) error {
	var hotels model.Hotels
	if err := database.DB.Find(&hotels).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if len(hotels) == 0 {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NO_HOTELS, errors.New("registry empty"))
	}

	return c.JSON(fiber.Map{"hotels": hotels})
}

// GetHotelById serves the unauthenticated lookup behind the QR code,
// read-through cached in redis.
func GetHotelById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)
	ctx := c.Context()

	if database.Redis != nil {
		if payload, err := database.Redis.Get(ctx, hotelCacheKey(id)).Bytes(); err == nil {
			var hotel model.Hotel
			if err := json.Unmarshal(payload, &hotel); err == nil {
				return c.JSON(fiber.Map{"hotel": hotel})
			}
		}
	}

	var hotel model.Hotel
	if err := database.DB.First(&hotel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.HOTEL_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	cacheHotel(ctx, &hotel)

	return c.JSON(fiber.Map{"hotel": hotel})
}

// EditHotel applies the provided fields. A new logo replaces the stored
// asset: the old one is destroyed best-effort before the upload.
func EditHotel(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)
	input := c.Locals("inputEditHotel").(model.EditHotelInput)
	ctx := c.Context()

	var hotel model.Hotel
	if err := database.DB.First(&hotel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.HOTEL_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if input.Name != nil {
		hotel.Name = *input.Name
	}
	if input.Address != nil {
		hotel.Address = *input.Address
	}

	if file, ok := c.Locals("logoFile").(*multipart.FileHeader); ok && file != nil {
		if hotel.Logo != "" {
			helper.DestroyImage(ctx, hotel.Logo)
		}
		logoUrl, err := uploadLogo(ctx, file, hotel.Name)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Error uploading logo", err)
		}
		hotel.Logo = logoUrl
	}

	if err := database.DB.Save(&hotel).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	invalidateHotelCache(ctx, id)

	return c.JSON(fiber.Map{
		"message": "Hotel Updated Successfully",
		"hotel":   hotel,
	})
}

// DeleteHotel destroys both stored assets in parallel, best-effort, then
// removes the row. Guests referencing the hotel are left in place.
func DeleteHotel(c *fiber.Ctx) error {
	id := c.Locals("inputId").(uint)
	ctx := c.Context()

	var hotel model.Hotel
	if err := database.DB.First(&hotel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.HOTEL_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var wg sync.WaitGroup
	for _, url := range []string{hotel.Logo, hotel.Qrcode} {
		if url == "" {
			continue
		}
		wg.Add(1)
		go func(u string) {
			defer wg.Done()
			helper.DestroyImage(context.Background(), u)
		}(url)
	}
	wg.Wait()

	if err := database.DB.Delete(&model.Hotel{}, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	invalidateHotelCache(ctx, id)

	return c.JSON(fiber.Map{"message": "Hotel and associated assets deleted successfully"})
}
