// Package validation runs go-playground/validator struct tags on typed
// inputs and translates failures into domain.ValidationError.
//
// Custom tags:
//   - campus: value is a known campus
//   - fee: non-negative decimal string
//   - eventid: nanoid or legacy post-<uuid-v4> event id
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/unievent-backend/internal/domain"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the shared validator instance.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})

		mustRegister(v, "campus", func(fl validator.FieldLevel) bool {
			return domain.Campus(fl.Field().String()).IsValid()
		})
		mustRegister(v, "fee", func(fl validator.FieldLevel) bool {
			_, ok := domain.ParseFee(fl.Field().String())
			return ok
		})
		mustRegister(v, "eventid", func(fl validator.FieldLevel) bool {
			return domain.ValidEventID(fl.Field().String())
		})

		validate = v
	})
	return validate
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

// Struct validates s and returns a *domain.ValidationError listing every
// failed field, or nil.
func Struct(s any) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate: %w", err)
	}

	out := make([]domain.FieldError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, domain.FieldError{
			Field:   fieldPath(fe),
			Message: translate(fe),
		})
	}
	return domain.NewValidationErrors(out)
}

// fieldPath drops the top-level struct name from the namespace,
// so "CreateEventInput.contacts[0].phone" becomes "contacts[0].phone".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.Field()
}

var messages = map[string]string{
	"required": "required",
	"url":      "must be a valid URL",
	"http_url": "must be a valid URL",
	"email":    "must be a valid email address",
	"campus":   "must be one of Gombak, Kuantan, Pagoh, Gambang",
	"fee":      "must be a non-negative decimal amount",
	"eventid":  "invalid event id",
}

var messagesWithParam = map[string]string{
	"oneof":    "must be one of: %s",
	"gte":      "must be greater than or equal to %s",
	"lte":      "must be less than or equal to %s",
	"gtfield":  "must be after %s",
	"ltefield": "must not be after %s",
}

func translate(fe validator.FieldError) string {
	if msg, ok := messages[fe.Tag()]; ok {
		return msg
	}
	if tmpl, ok := messagesWithParam[fe.Tag()]; ok {
		return fmt.Sprintf(tmpl, fe.Param())
	}

	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "min":
		if isString {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s items", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if isString {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at most %s items", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
