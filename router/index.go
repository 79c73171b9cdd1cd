package router

import (
	"hotel_manager/constants"
	"hotel_manager/handler"
	"hotel_manager/middleware"
	"hotel_manager/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())

	auth := api.Group("/auth")
	auth.Post("/register", validate.RegisterAdmin(), handler.RegisterAdmin)
	auth.Post("/login", validate.LoginAdmin(), handler.LoginAdmin)
	auth.Post("/logout", handler.LogoutAdmin)
	auth.Post("/status", handler.LoginStatus)

	hotels := api.Group("/hotels", logger.New())
	hotels.Get("/", handler.GetHotels)
	hotels.Post("/addhotel", middleware.Protected(), middleware.MainAdminOnly(), validate.CreateHotel(), handler.CreateHotel)
	hotels.Get("/:id", validate.GetById("id", constants.INVALID_HOTEL_ID), handler.GetHotelById)
	hotels.Put("/:id", middleware.Protected(), middleware.MainAdminOnly(), validate.EditHotel("id"), handler.EditHotel)
	hotels.Delete("/:id", middleware.Protected(), middleware.MainAdminOnly(), validate.GetById("id", constants.INVALID_HOTEL_ID), handler.DeleteHotel)

	// Public check-in form submission, scoped to one hotel
	hotels.Post("/:hotelId/guest", validate.SubmitGuest("hotelId"), handler.SubmitGuest)
	hotels.Get("/:id/guests", middleware.Protected(), validate.GetById("id", constants.INVALID_HOTEL_ID), handler.GetGuestsByHotel)

	guest := api.Group("/guest", logger.New())
	guest.Get("/:id", middleware.Protected(), validate.GetById("id", constants.INVALID_GUEST_ID), handler.GetGuestById)
	guest.Put("/:id", middleware.Protected(), validate.EditGuest("id"), handler.EditGuest)
	guest.Delete("/:id", middleware.Protected(), validate.GetById("id", constants.INVALID_GUEST_ID), handler.DeleteGuest)
}
