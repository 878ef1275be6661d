package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-subjects/models"
)

// Field names accepted for partial validation of subject payloads. They are
// the Go field names of [models.Subject] and [models.SubjectUpdate].
const (
	FieldName    = "Name"
	FieldTeacher = "Teacher"
	FieldAlumni  = "Alumni"
)

var subjectFields = map[string]struct{}{
	FieldName:    {},
	FieldTeacher: {},
	FieldAlumni:  {},
}

// SubjectValidator validates [models.Subject] and [models.SubjectUpdate]
// using their `validate` struct tags. When field names are passed only those
// fields are checked.
type SubjectValidator struct {
	validate *validator.Validate
}

func NewSubjectValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report JSON names so messages match the request body
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &SubjectValidator{validate: v}
}

func (v *SubjectValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch obj.(type) {
	case models.Subject, *models.Subject, models.SubjectUpdate, *models.SubjectUpdate:
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	for _, f := range fields {
		if _, ok := subjectFields[f]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}

	return describe(err)
}

// describe flattens validator errors into one message, e.g.
// "invalid field: name (required), alumni[1] (required)".
func describe(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		parts = append(parts, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}

	return fmt.Errorf("%w: %s", ErrInvalidField, strings.Join(parts, ", "))
}
