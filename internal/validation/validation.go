package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Error is a user-facing validation failure; handlers translate it into
// a 400 response carrying the first violated rule.
type Error struct {
	msg string
}

func (e *Error) Error() string { return e.msg }

// Check runs the declarative struct tags on a request model and returns a
// user-facing message for the first violated rule. String fields are
// expected to be trimmed by the caller before validation.
func Check(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return err
	}

	var violations validator.ValidationErrors
	if errors.As(err, &violations) && len(violations) > 0 {
		return &Error{msg: message(violations[0])}
	}
	return err
}

func message(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		if field == "content" || field == "message" {
			return fmt.Sprintf("%s cannot be empty", field)
		}
		return fmt.Sprintf("%s is required", field)
	case "min":
		if fe.Kind().String() == "slice" {
			return fmt.Sprintf("%s must contain at least %s entries", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		if fe.Kind().String() == "slice" {
			return fmt.Sprintf("%s must not exceed %s entries", field, fe.Param())
		}
		return fmt.Sprintf("%s must not exceed %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("please select a valid %s", field)
	case "email":
		return "a valid email address is required"
	case "gt", "gte":
		return fmt.Sprintf("%s is out of range", field)
	}
	return fmt.Sprintf("%s is invalid", field)
}
