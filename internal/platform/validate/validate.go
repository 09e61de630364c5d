package validate

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/yungbote/orbital-nexus-backend/internal/platform/apierr"
)

var v *validator.Validate

// now is swapped in tests that pin the clock for notpast.
var now = time.Now

func init() {
	v = validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("isodate", validateISODate)
	_ = v.RegisterValidation("notpast", validateNotPast)
}

// Struct runs the validate tags on s. Failures come back as one apierr validation
// error carrying a FieldError per broken rule.
func Struct(s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apierr.Validation("Validation error", apierr.FieldError{Message: err.Error()})
	}
	return apierr.Validation("Validation error", Fields(verrs)...)
}

// Fields converts validator errors to field/message pairs.
func Fields(verrs validator.ValidationErrors) []apierr.FieldError {
	out := make([]apierr.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		field := fieldPath(fe.Namespace())
		out = append(out, apierr.FieldError{Field: field, Message: message(field, fe)})
	}
	return out
}

// ParseDate accepts RFC 3339 timestamps or bare YYYY-MM-DD dates.
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := ParseDate(fl.Field().String())
	return err == nil
}

// notpast compares at day granularity so "today" stays valid all day.
func validateNotPast(fl validator.FieldLevel) bool {
	t, err := ParseDate(fl.Field().String())
	if err != nil {
		return false
	}
	y, m, d := now().UTC().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return !t.UTC().Before(today)
}

func fieldPath(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func message(field string, fe validator.FieldError) string {
	label := humanize(field)
	param := fe.Param()
	kind := fe.Kind()
	if kind == reflect.Ptr {
		kind = fe.Type().Elem().Kind()
	}
	switch fe.Tag() {
	case "required", "required_without_all":
		return label + " is required"
	case "min":
		switch kind {
		case reflect.String:
			return label + " must be at least " + param + " characters long"
		case reflect.Slice, reflect.Map:
			return label + " must contain at least " + param + " items"
		}
		return label + " must be at least " + param
	case "max":
		switch kind {
		case reflect.String:
			return label + " cannot exceed " + param + " characters"
		case reflect.Slice, reflect.Map:
			return label + " cannot contain more than " + param + " items"
		}
		return label + " cannot exceed " + param
	case "gt":
		if param == "0" {
			return label + " must be positive"
		}
		return label + " must be greater than " + param
	case "gte":
		return label + " must be at least " + param
	case "lt":
		return label + " must be less than " + param
	case "lte":
		return label + " cannot exceed " + param
	case "oneof":
		return label + " must be one of: " + strings.Join(strings.Fields(param), ", ")
	case "isodate":
		return label + " must be a valid ISO date"
	case "notpast":
		return label + " cannot be in the past"
	}
	return label + " failed " + fe.Tag() + " validation"
}

func humanize(field string) string {
	s := strings.ReplaceAll(field, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
