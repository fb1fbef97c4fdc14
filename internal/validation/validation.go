// Package validation runs struct-tag validation for service inputs.
package validation

import (
	"errors"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Field limits
const (
	MaxColumnTitle = 120
	MaxCardTitle   = 500
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Use JSON tag names as field names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := validate.RegisterValidation("labelcolor", labelColor); err != nil {
		panic(err)
	}
}

// labelColor accepts "#" followed by 3 or 6 characters. Only the prefix and the
// total length are checked, so "#ggg" passes.
func labelColor(fl validator.FieldLevel) bool {
	color := fl.Field().String()
	if !strings.HasPrefix(color, "#") {
		return false
	}
	n := utf8.RuneCountInString(color)
	return n == 4 || n == 7
}

// IsLabelColor reports whether s passes the label_color rule
func IsLabelColor(s string) bool {
	return validate.Var(s, "labelcolor") == nil
}

// Failure names the first field and rule that failed
type Failure struct {
	Field string // JSON field name
	Rule  string // validator tag, e.g. "required", "max", "labelcolor"
}

// Check validates s and returns the first failure, if any.
// A non-struct or otherwise unusable input is reported with Rule "invalid".
func Check(s any) (Failure, bool) {
	err := validate.Struct(s)
	if err == nil {
		return Failure{}, false
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return Failure{Field: verrs[0].Field(), Rule: verrs[0].Tag()}, true
	}
	return Failure{Rule: "invalid"}, true
}

// Title trims surrounding whitespace from a title
func Title(s string) string {
	return strings.TrimSpace(s)
}
