package rating

import (
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// Validator returns the shared validator instance. It reports fields by their
// yaml names and knows the icon_class rule used by settings overrides and
// configuration files.
func Validator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("icon_class", func(fl validator.FieldLevel) bool {
			return isIconClass(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// isIconClass accepts any non-blank token list without control characters.
func isIconClass(class string) bool {
	if strings.TrimSpace(class) == "" {
		return false
	}
	return strings.IndexFunc(class, unicode.IsControl) < 0
}
