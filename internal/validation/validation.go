// Package validation validates mutator inputs before they reach the stores.
// It wraps go-playground/validator with the finance-specific rules: positive
// decimal amounts and "YYYY-MM" period keys.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"fjacquet/finance-tracker/internal/dateutils"
	"fjacquet/finance-tracker/internal/financeerror"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	once     sync.Once
	instance *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		// Report JSON field names so errors match the persisted schema.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})

		// Decimals reach the rules as their exact string form.
		v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
			if d, ok := field.Interface().(decimal.Decimal); ok {
				return d.String()
			}
			return nil
		}, decimal.Decimal{})

		_ = v.RegisterValidation("positive", func(fl validator.FieldLevel) bool {
			d, err := decimal.NewFromString(fl.Field().String())
			return err == nil && d.IsPositive()
		})
		// Expenses need a category that is more than whitespace.
		_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
			if income := fl.Parent().FieldByName("IsIncome"); income.IsValid() && income.Bool() {
				return true
			}
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		_ = v.RegisterValidation("period", func(fl validator.FieldLevel) bool {
			return dateutils.IsCanonicalPeriod(fl.Field().String())
		})
		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})

		instance = v
	})
	return instance
}

// Struct validates s against its `validate` tags and converts the first
// failure into a *financeerror.ValidationError.
func Struct(s interface{}) error {
	err := get().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("validation failed: %w", err)
	}

	fe := verrs[0]
	return &financeerror.ValidationError{
		Field:  fe.Field(),
		Value:  valueString(fe.Value()),
		Reason: reason(fe),
	}
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "is required"
	case "required_if", "category":
		return "is required for expenses"
	case "gt", "positive":
		return "must be a positive number"
	case "period":
		return "must be a period in YYYY-MM form"
	default:
		return fmt.Sprintf("failed %s check", fe.Tag())
	}
}

func valueString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		return fmt.Sprintf("%v", val)
	}
}

// Amount checks that amount is strictly positive.
func Amount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return financeerror.Invalid("amount", amount.String(), "must be a positive number")
	}
	return nil
}

// Text checks that a note or reminder text is not blank.
func Text(field, text string) error {
	if strings.TrimSpace(text) == "" {
		return financeerror.Invalid(field, "", "is required")
	}
	return nil
}
