package util

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func init() {
	Validate = validator.New()

	Validate.RegisterValidation("hasuppercase", validateHasUppercase)
}

func validateHasUppercase(fl validator.FieldLevel) bool {
	return regexp.MustCompile(`[A-Z]`).MatchString(fl.Field().String())
}

type ErrorResponse struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Msg   string `json:"message"`
}

// ValidateStruct runs the shared validator over a payload and maps failures
// to user-facing messages. Returns nil when the payload is valid.
func ValidateStruct(s interface{}) []*ErrorResponse {
	var errs []*ErrorResponse
	err := Validate.Struct(s)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			var element ErrorResponse
			element.Field = err.Field()
			element.Tag = err.Tag()

			switch err.Tag() {
			case "required":
				element.Msg = fmt.Sprintf("Field '%s' is required.", element.Field)
			case "min":
				element.Msg = fmt.Sprintf("Field '%s' must be at least %s characters.", element.Field, err.Param())
			case "max":
				element.Msg = fmt.Sprintf("Field '%s' must be at most %s characters.", element.Field, err.Param())
			case "email":
				element.Msg = "Invalid email format."
			case "hasuppercase":
				element.Msg = "Password must contain at least one uppercase letter."
			case "oneof":
				element.Msg = fmt.Sprintf("Field '%s' must be one of: %s.", element.Field, err.Param())
			case "datetime":
				element.Msg = fmt.Sprintf("Field '%s' must be a date in %s format.", element.Field, err.Param())
			case "gt", "gte":
				element.Msg = fmt.Sprintf("Field '%s' must be greater than %s.", element.Field, err.Param())
			case "gtefield":
				element.Msg = fmt.Sprintf("Field '%s' must not be before '%s'.", element.Field, err.Param())
			case "numeric":
				element.Msg = fmt.Sprintf("Field '%s' must contain only digits.", element.Field)
			default:
				element.Msg = fmt.Sprintf("Field '%s' failed validation for tag '%s'.", element.Field, element.Tag)
			}
			errs = append(errs, &element)
		}
	}
	return errs
}
