package validate

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"hotel_manager/constants"
	"hotel_manager/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report violations under the wire name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("ddmmyyyy", func(fl validator.FieldLevel) bool {
		_, err := utils.ParseCheckDate(fl.Field().String())
		return err == nil
	})

	v.RegisterValidation("adminrole", func(fl validator.FieldLevel) bool {
		return utils.IsValidValueOfConstant(fl.Field().String(), constants.AdminRoles)
	})

	v.RegisterValidation("visitpurpose", func(fl validator.FieldLevel) bool {
		return utils.IsValidValueOfConstant(fl.Field().String(), constants.VisitPurposes)
	})

	return v
}

// fieldMessages carries the user-facing message per wire field. Tag-specific
// wording where a field has more than one rule.
var fieldMessages = map[string]string{
	"email":          "Email must be a valid email address",
	"password":       "Password must be at least 6 characters",
	"role":           "Role must be either MainAdmin or GuestAdmin",
	"fullName":       "Full name is required",
	"mobileNumber":   "Mobile number must be 10 digits",
	"address":        "Address is required",
	"purposeOfVisit": "Purpose of visit must be Business, Personal or Tourist",
	"checkInDate":    "Check-in date must be a valid date in dd/mm/yyyy format",
	"checkOutDate":   "Check-out date must be a valid date in dd/mm/yyyy format",
	"idProofNumber":  "ID Proof Number is required",
}

// CollectViolations turns validator errors into the {field, message} list the
// API returns. All failures are reported together, never just the first.
func CollectViolations(err error) []utils.FieldError {
	var violations []utils.FieldError
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []utils.FieldError{{Field: "", Message: err.Error()}}
	}
	for _, fe := range validationErrs {
		message, ok := fieldMessages[fe.Field()]
		if !ok {
			message = fe.Field() + " is invalid"
		}
		violations = append(violations, utils.FieldError{Field: fe.Field(), Message: message})
	}
	return violations
}

// GetById parses a numeric path parameter and stores it in Locals under
// "inputId".
func GetById(key string, message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil || valueKey <= 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, message, errors.New("params invalid"))
		}

		c.Locals("inputId", uint(valueKey))

		return c.Next()
	}
}
