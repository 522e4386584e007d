// Package validation содержит проверку входных данных по справочникам каталога.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mmeshcher/accountbot/internal/catalog"
	"github.com/mmeshcher/accountbot/internal/model"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return f.Name
		}
		return tag
	})

	mustRegister(v, "region", func(fl validator.FieldLevel) bool {
		return catalog.IsRegion(fl.Field().String())
	})
	mustRegister(v, "service", func(fl validator.FieldLevel) bool {
		return catalog.IsService(fl.Field().String())
	})
	mustRegister(v, "duration", func(fl validator.FieldLevel) bool {
		return model.Duration(fl.Field().String()).Valid()
	})
	mustRegister(v, "payment_method", func(fl validator.FieldLevel) bool {
		return model.PaymentMethod(fl.Field().String()).Valid()
	})
	// service_plan=Field: тариф должен входить в набор тарифов сервиса из поля Field.
	mustRegister(v, "service_plan", func(fl validator.FieldLevel) bool {
		parent := reflect.Indirect(fl.Parent())
		if parent.Kind() != reflect.Struct {
			return false
		}
		service := parent.FieldByName(fl.Param())
		if !service.IsValid() || service.Kind() != reflect.String {
			return false
		}
		return catalog.IsPlan(service.String(), fl.Field().String())
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register validation %q: %v", tag, err))
	}
}

// Error описывает ошибки проверки по полям запроса.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+" "+e.Fields[name])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Struct проверяет структуру по тегам validate и возвращает *Error при нарушениях.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return fmt.Errorf("validate: %w", err)
	}

	fields := make(map[string]string, len(errs))
	for _, fe := range errs {
		fields[fe.Field()] = message(fe)
	}
	return &Error{Fields: fields}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "region":
		return "is not a known country code"
	case "service":
		return "is not a known service"
	case "service_plan":
		return "does not belong to the selected service"
	case "duration":
		return "must be one of 1 Month, 3 Months, 6 Months, 1 Year"
	case "payment_method":
		return "is not a supported payment method"
	}
	return "is invalid"
}
