// Package validation checks service inputs declared with `validate` struct
// tags and reports failures as domain.ValidationError.
package validation

import (
	"errors"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/heartmarshall/edip-crm/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if name := fld.Tag.Get("field"); name != "" {
			return name
		}
		return snakeCase(fld.Name)
	})
	return v
}

// Struct validates s and collects every failing field.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domain.FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return domain.NewValidationErrors(fields)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "required"
	case "max":
		if fe.Kind() == reflect.String {
			return "max " + fe.Param() + " characters"
		}
		return "max " + fe.Param()
	case "min":
		return "min " + fe.Param()
	case "uuid4", "uuid":
		return "invalid UUID"
	case "url", "http_url":
		return "invalid URL"
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "invalid value"
	}
}

func snakeCase(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			// Start a new word at a lower->upper boundary or before the last
			// capital of an acronym (BSNID stays "bsnid", ITPartner -> "it_partner").
			if i > 0 && (unicode.IsLower(runes[i-1]) ||
				(i+1 < len(runes) && unicode.IsLower(runes[i+1]) && unicode.IsUpper(runes[i-1]))) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Errors accumulates field errors from tag validation and hand-written checks.
type Errors struct {
	fields []domain.FieldError
}

// Struct adds the tag validation failures of s.
func (e *Errors) Struct(s any) {
	err := Struct(s)
	if err == nil {
		return
	}
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		e.fields = append(e.fields, ve.Errors...)
		return
	}
	e.Add("", err.Error())
}

// Add records a failure for field.
func (e *Errors) Add(field, message string) {
	e.fields = append(e.fields, domain.FieldError{Field: field, Message: message})
}

// Err returns a *domain.ValidationError, or nil if nothing failed.
func (e *Errors) Err() error {
	if len(e.fields) == 0 {
		return nil
	}
	return domain.NewValidationErrors(e.fields)
}
