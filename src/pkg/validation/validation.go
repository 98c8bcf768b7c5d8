package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	EmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	PhonePattern = regexp.MustCompile(`^\+?[\d\s-]{7,15}$`)
)

// New returns a validator that reports json field names and knows the
// donation form tags.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				continue
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})
	_ = v.RegisterValidation("donoremail", func(fl validator.FieldLevel) bool {
		return EmailPattern.MatchString(strings.TrimSpace(fl.Field().String()))
	})
	// empty phone numbers are allowed
	_ = v.RegisterValidation("donorphone", func(fl validator.FieldLevel) bool {
		phone := strings.TrimSpace(fl.Field().String())
		return phone == "" || PhonePattern.MatchString(phone)
	})
	return v
}

// Fields flattens validator errors into field -> tag.
func Fields(err error) map[string]string {
	fields := map[string]string{}
	if errs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range errs {
			fields[fe.Field()] = fe.Tag()
		}
	}
	return fields
}
