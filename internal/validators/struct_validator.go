package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-health-keeper/models"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// StructValidator implements [Validator] with go-playground/validator using
// the `validate` struct tags of the models package. Field names in errors
// are the JSON names.
type StructValidator struct {
	validate *validator.Validate
}

// NewStructValidator constructs a [StructValidator] with the custom types of
// the models package registered.
func NewStructValidator() Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	return &StructValidator{validate: v}
}

// decimalValue lets numeric tags (gte, lt, ...) apply to decimal fields.
func decimalValue(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

// Validate validates obj, a struct or pointer to struct. When fields are
// given only those fields are validated.
func (s *StructValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	if obj == nil {
		return ErrUnsupportedType
	}

	var err error
	if len(fields) > 0 {
		err = s.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = s.validate.StructCtx(ctx, obj)
	}
	return translate(err)
}

func translate(err error) error {
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %s", ErrUnsupportedType, invalid.Error())
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		msgs := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			msgs = append(msgs, describe(fe))
		}
		return fmt.Errorf("%w: %s", ErrInvalidField, strings.Join(msgs, "; "))
	}
	return err
}

func describe(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}
	if fe.Param() != "" {
		return fmt.Sprintf("%s must satisfy %s=%s", field, fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("%s must satisfy %s", field, fe.Tag())
}

// ValidateDate checks a "YYYY-MM-DD" calendar date.
func ValidateDate(date string) error {
	if _, err := models.ParseDate(date); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDate, err)
	}
	return nil
}

// ValidateDateRange checks both bounds and that from is not after to.
func ValidateDateRange(from, to string) error {
	if err := ValidateDate(from); err != nil {
		return err
	}
	if err := ValidateDate(to); err != nil {
		return err
	}
	if from > to {
		return fmt.Errorf("%w: range start %s is after end %s", ErrInvalidDate, from, to)
	}
	return nil
}

// ValidateIDs checks that ids is non-empty and free of duplicates.
func ValidateIDs(ids []string) error {
	if len(ids) == 0 {
		return ErrEmptyIDs
	}
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateIDs, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}
