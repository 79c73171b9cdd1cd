package utils

import (
	"github.com/gofiber/fiber/v2"
)

// FieldError is one validation violation; responses carry the full list, not
// just the first failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	var errMsg interface{}
	if err != nil {
		errMsg = err.Error()
	} else {
		errMsg = nil
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   errMsg,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, violations []FieldError) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"errors": violations,
	})
}

// GetFirstValue returns the first value for a multipart form key, or "".
func GetFirstValue(values map[string][]string, key string) string {
	if v, ok := values[key]; ok && len(v) > 0 {
		return v[0]
	}
	return ""
}

func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
