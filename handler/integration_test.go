package handler

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"hotel_manager/constants"
	"hotel_manager/database"
	"hotel_manager/helper"
	"hotel_manager/middleware"
	"hotel_manager/model"
	"hotel_manager/utils"
	"hotel_manager/validate"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupTestDB wires database.DB to the database named by TEST_DATABASE_DSN
// and starts every test from empty tables. Without the env var the DB-backed
// tests are skipped.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect test database: %v", err)
	}

	if err := db.AutoMigrate(&model.Admin{}, &model.Hotel{}, &model.Guest{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_admins_single_main_admin ON admins (role) WHERE role = 'MainAdmin'`)
	if err := db.Exec(`TRUNCATE admins, hotels, guests RESTART IDENTITY CASCADE`).Error; err != nil {
		t.Fatalf("failed to clean tables: %v", err)
	}

	database.DB = db
	return db
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(raw)
}

func registerJSON(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func TestRegisterSecondMainAdminRejected(t *testing.T) {
	db := setupTestDB(t)
	t.Setenv("JWT_SECRET", "it-secret")

	app := fiber.New()
	app.Post("/api/auth/register", validate.RegisterAdmin(), RegisterAdmin)

	resp := registerJSON(t, app, `{"email":"a@x.com","password":"secret1","role":"MainAdmin"}`)
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("first MainAdmin: got %d, want 201: %s", resp.StatusCode, readBody(t, resp))
	}
	if body := readBody(t, resp); strings.Contains(body, "password") || strings.Contains(body, "$2a$") {
		t.Fatalf("register response leaks the credential field: %s", body)
	}

	resp = registerJSON(t, app, `{"email":"b@x.com","password":"secret2","role":"MainAdmin"}`)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("second MainAdmin: got %d, want 400", resp.StatusCode)
	}
	if body := readBody(t, resp); !strings.Contains(body, constants.MAIN_ADMIN_EXISTS) {
		t.Fatalf("expected %q, got %s", constants.MAIN_ADMIN_EXISTS, body)
	}

	resp = registerJSON(t, app, `{"email":"a@x.com","password":"secret3","role":"GuestAdmin"}`)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("duplicate email: got %d, want 400", resp.StatusCode)
	}
	if body := readBody(t, resp); !strings.Contains(body, constants.ADMIN_EXISTS) {
		t.Fatalf("expected %q, got %s", constants.ADMIN_EXISTS, body)
	}

	// The partial unique index is the arbiter when a write slips past the
	// existence check.
	direct := model.Admin{Email: "c@x.com", Password: "hash", Role: constants.ROLE_MAIN_ADMIN}
	err := db.Create(&direct).Error
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("second MainAdmin row accepted by the database: %v", err)
	}
}

func TestGetHotelsEmptyRegistryIs404(t *testing.T) {
	setupTestDB(t)

	app := fiber.New()
	app.Get("/api/hotels", GetHotels)

	req := httptest.NewRequest(http.MethodGet, "/api/hotels", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("empty registry: got %d, want 404", resp.StatusCode)
	}
	if body := readBody(t, resp); !strings.Contains(body, constants.NO_HOTELS) {
		t.Fatalf("expected %q, got %s", constants.NO_HOTELS, body)
	}
}

func TestDeleteGuestTwice(t *testing.T) {
	db := setupTestDB(t)
	t.Setenv("JWT_SECRET", "it-secret")

	hotel := model.Hotel{Name: "Grand Plaza", Address: "1 Seafront Road", Logo: "https://res.cloudinary.com/demo/image/upload/HotelLogos/logo_grand.png"}
	if err := db.Create(&hotel).Error; err != nil {
		t.Fatalf("seed hotel: %v", err)
	}
	guest := model.Guest{
		HotelId:        hotel.ID,
		FullName:       "Jane Doe",
		MobileNumber:   "9876543210",
		Address:        "12 High Street",
		PurposeOfVisit: constants.PURPOSE_BUSINESS,
		CheckInDate:    mustDate(t, "10/05/2024"),
		CheckOutDate:   mustDate(t, "12/05/2024"),
		IdProofNumber:  "AB123456",
	}
	if err := db.Create(&guest).Error; err != nil {
		t.Fatalf("seed guest: %v", err)
	}

	app := fiber.New()
	app.Delete("/api/guest/:id", middleware.Protected(), validate.GetById("id", constants.INVALID_GUEST_ID), DeleteGuest)

	token, err := helper.GenerateToken(model.TokenClaim{AdminId: 1, Role: constants.ROLE_GUEST_ADMIN})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	del := func() *http.Response {
		req := httptest.NewRequest(http.MethodDelete, "/api/guest/1", nil)
		req.AddCookie(&http.Cookie{Name: constants.TOKEN_COOKIE, Value: token})
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		return resp
	}

	if resp := del(); resp.StatusCode != fiber.StatusOK {
		t.Fatalf("first delete: got %d, want 200: %s", resp.StatusCode, readBody(t, resp))
	}
	if resp := del(); resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("second delete: got %d, want 404", resp.StatusCode)
	}
}

func mustDate(t *testing.T, s string) utils.DateOnly {
	t.Helper()
	parsed, err := utils.ParseCheckDate(s)
	if err != nil {
		t.Fatalf("ParseCheckDate(%q): %v", s, err)
	}
	return utils.NewDateOnly(parsed)
}
