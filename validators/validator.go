package validators

import (
	"net/http"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

var usernamePattern = regexp.MustCompile(`^\S+$`)

// CustomValidator wraps go-playground/validator for use as echo's Validator.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates the validator with the custom username rule
// registered (non-blank, no whitespace).
func NewValidator() *CustomValidator {
	v := validator.New()
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})
	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
