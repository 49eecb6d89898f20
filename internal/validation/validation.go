// Package validation checks incoming forms against their declared schema.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"formpdf/internal/model"
)

// MaxDetailErrors bounds how many field errors are reported to the client.
const MaxDetailErrors = 3

// BodyField names the request body itself when it cannot be decoded.
const BodyField = "body"

// FieldError describes one offending field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateForm checks that every required form field is present and non-empty.
// Errors are returned in field declaration order; nil means the form is valid.
func ValidateForm(form model.DocumentForm) []FieldError {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: BodyField, Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, e := range verrs {
		out = append(out, FieldError{Field: e.Field(), Message: message(e)})
	}
	return out
}

// InvalidBody is the error list for a request body that is not a JSON object of strings.
func InvalidBody() []FieldError {
	return []FieldError{{Field: BodyField, Message: "invalid JSON body"}}
}

// Detail joins the first MaxDetailErrors errors into one client-facing message.
func Detail(errs []FieldError) string {
	if len(errs) == 0 {
		return "invalid input data"
	}
	if len(errs) > MaxDetailErrors {
		errs = errs[:MaxDetailErrors]
	}
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = e.Field + ": " + e.Message
	}
	return strings.Join(parts, "; ")
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "field required"
	default:
		return "invalid value"
	}
}
