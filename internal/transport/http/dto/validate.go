package dto

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/cinevault/movies-service/internal/domain"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	_ = validate.RegisterValidation("username_format", validateUsernameFormat)
}

// validateUsernameFormat checks if username contains only alphanumeric characters and underscores
func validateUsernameFormat(fl validator.FieldLevel) bool {
	username := fl.Field().String()

	if len(username) == 0 {
		return false
	}

	for _, char := range username {
		if !unicode.IsLetter(char) && !unicode.IsNumber(char) && char != '_' {
			return false
		}
	}

	return true
}

// checkStruct runs struct-tag validation and maps the first failure to a
// domain validation error.
func checkStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return domain.ErrInvalidField("body", "invalid")
	}

	fe := errs[0]
	field := strings.ToLower(fe.Field())

	switch fe.Tag() {
	case "required":
		return domain.ErrMissingField(field)
	case "email":
		return domain.ErrInvalidField(field, "invalid format")
	case "min":
		return domain.ErrInvalidField(field, "min "+fe.Param())
	case "oneof":
		return domain.ErrInvalidField(field, "must be one of "+fe.Param())
	case "username_format":
		return domain.ErrInvalidField(field, "letters, numbers and underscores only")
	default:
		return domain.ErrInvalidField(field, fe.Tag())
	}
}
