package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"

	"github.com/AlixRomain/P7-Web-Service/internal/core/domain"
)

const passwordMessage = "Password must contain at least one lowercase, one uppercase, one digit and one special character !"

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields under their JSON names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("password", strongPassword)

	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface. Every failing field is
// reported, not only the first one.
func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	out := &domain.ValidationError{}
	for _, fe := range ve {
		out.Add(fe.Field(), fieldError(fe))
	}
	return out
}

// fieldError converts a single FieldError into the public message.
func fieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "This value should not be blank."
	case "email":
		return "This value is not a valid email address."
	case "min":
		return fmt.Sprintf("This value is too short. It should have %s characters or more.", fe.Param())
	case "max":
		return fmt.Sprintf("This value is too long. It should have %s characters or less.", fe.Param())
	case "gt":
		return fmt.Sprintf("This value should be greater than %s.", fe.Param())
	case "gte":
		return fmt.Sprintf("This value should be greater than or equal to %s.", fe.Param())
	case "password":
		return passwordMessage
	default:
		return fmt.Sprintf("This value is not valid (%s).", fe.Tag())
	}
}

// strongPassword requires a lowercase letter, an uppercase letter, a digit
// and a character that is none of those.
func strongPassword(fl validator.FieldLevel) bool {
	var lower, upper, digit, special bool
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case r != '_' && !unicode.IsLetter(r):
			special = true
		}
	}
	return lower && upper && digit && special
}
