package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"adboard/internal/api/apperrors"

	"github.com/go-playground/validator/v10"
)

// minPasswordLength is the password policy, registered as its own rule
// rather than a generic min so the policy can evolve without touching
// schema shape.
const minPasswordLength = 8

var validate *validator.Validate

func init() {
	// Initialize validation
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their json names so violations match the wire format.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := validate.RegisterValidation("password", passwordRule); err != nil {
		panic(err)
	}
}

func passwordRule(fl validator.FieldLevel) bool {
	return len(fl.Field().String()) >= minPasswordLength
}

func GetValidator() *validator.Validate {
	return validate
}

// Check validates a request struct and converts every rule failure into
// a field violation. Unknown fields in the original JSON never reach
// this point: decoding drops them silently, which is the intended
// behavior.
func Check(s any) *apperrors.Error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.Internal(err)
	}

	violations := make([]apperrors.FieldViolation, 0, len(verrs))
	for _, fe := range verrs {
		violations = append(violations, apperrors.FieldViolation{
			Field:   fe.Field(),
			Message: violationMessage(fe),
		})
	}
	return apperrors.Validation(violations)
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "password":
		return "password is too short"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
