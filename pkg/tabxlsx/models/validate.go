package models

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var colorPattern = regexp.MustCompile(`^#?([0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})$`)

// validate is safe for concurrent use; it only caches struct metadata.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	err := v.RegisterValidation("xlsxcolor", func(fl validator.FieldLevel) bool {
		return colorPattern.MatchString(fl.Field().String())
	})
	if err != nil {
		panic("models: register xlsxcolor validation: " + err.Error())
	}
	return v
}
