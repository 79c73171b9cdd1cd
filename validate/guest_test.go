package validate

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hotel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func newSubmitGuestApp() *fiber.App {
	app := fiber.New()
	app.Post("/hotels/:hotelId/guest", SubmitGuest("hotelId"), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func decodeViolations(t *testing.T, resp *http.Response) []utils.FieldError {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	var payload struct {
		Errors []utils.FieldError `json:"errors"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("decode %s: %v", raw, err)
	}
	return payload.Errors
}

const validGuestBody = `{
	"fullName": "Jane Doe",
	"mobileNumber": "9876543210",
	"address": "12 High Street",
	"purposeOfVisit": "Business",
	"checkInDate": "10/05/2024",
	"checkOutDate": "12/05/2024",
	"email": "jane@example.com",
	"idProofNumber": "AB123456"
}`

func TestSubmitGuestAcceptsValidInput(t *testing.T) {
	resp := postJSON(t, newSubmitGuestApp(), "/hotels/1/guest", validGuestBody)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("got %d, want 200", resp.StatusCode)
	}
}

func TestSubmitGuestRejectsMalformedHotelId(t *testing.T) {
	resp := postJSON(t, newSubmitGuestApp(), "/hotels/abc/guest", validGuestBody)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("got %d, want 400", resp.StatusCode)
	}
}

func TestSubmitGuestRejectsCheckOutBeforeCheckIn(t *testing.T) {
	body := strings.Replace(validGuestBody, `"checkOutDate": "12/05/2024"`, `"checkOutDate": "09/05/2024"`, 1)
	resp := postJSON(t, newSubmitGuestApp(), "/hotels/1/guest", body)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("got %d, want 400", resp.StatusCode)
	}
	violations := decodeViolations(t, resp)
	found := false
	for _, v := range violations {
		if v.Field == "checkOutDate" && strings.Contains(v.Message, "after check-in") {
			found = true
		}
	}
	if !found {
		t.Fatalf("date ordering violation not reported: %+v", violations)
	}
}

func TestSubmitGuestRejectsCheckOutEqualCheckIn(t *testing.T) {
	body := strings.Replace(validGuestBody, `"checkOutDate": "12/05/2024"`, `"checkOutDate": "10/05/2024"`, 1)
	resp := postJSON(t, newSubmitGuestApp(), "/hotels/1/guest", body)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("same-day checkout accepted: got %d, want 400", resp.StatusCode)
	}
}

func TestSubmitGuestCollectsAllViolations(t *testing.T) {
	body := `{
		"fullName": "",
		"mobileNumber": "12345",
		"address": "",
		"purposeOfVisit": "Holiday",
		"checkInDate": "2024-05-10",
		"checkOutDate": "12/05/2024",
		"email": "not-an-email",
		"idProofNumber": ""
	}`
	resp := postJSON(t, newSubmitGuestApp(), "/hotels/1/guest", body)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("got %d, want 400", resp.StatusCode)
	}
	violations := decodeViolations(t, resp)
	if len(violations) < 5 {
		t.Fatalf("expected all violations collected, got %d: %+v", len(violations), violations)
	}
	fields := map[string]bool{}
	for _, v := range violations {
		fields[v.Field] = true
	}
	for _, f := range []string{"fullName", "mobileNumber", "purposeOfVisit", "checkInDate", "email", "idProofNumber"} {
		if !fields[f] {
			t.Errorf("missing violation for %s", f)
		}
	}
}

func TestSubmitGuestMobileNumberDigitsOnly(t *testing.T) {
	app := newSubmitGuestApp()
	// Ten characters is not enough: signs and decimal points are not digits.
	for _, mobile := range []string{"+919876543", "-123456789", "12345.6789", "98765abc10"} {
		body := strings.Replace(validGuestBody, `"mobileNumber": "9876543210"`, `"mobileNumber": "`+mobile+`"`, 1)
		resp := postJSON(t, app, "/hotels/1/guest", body)
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Errorf("mobileNumber %q accepted with status %d, want 400", mobile, resp.StatusCode)
			continue
		}
		violations := decodeViolations(t, resp)
		found := false
		for _, v := range violations {
			if v.Field == "mobileNumber" {
				found = true
			}
		}
		if !found {
			t.Errorf("mobileNumber %q: violation not reported: %+v", mobile, violations)
		}
	}
}

func TestSubmitGuestEmailOptional(t *testing.T) {
	body := strings.Replace(validGuestBody, `"email": "jane@example.com",`, "", 1)
	resp := postJSON(t, newSubmitGuestApp(), "/hotels/1/guest", body)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("submission without email rejected: got %d", resp.StatusCode)
	}
}
