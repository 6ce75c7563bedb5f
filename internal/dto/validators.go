package dto

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// msisdnPattern accepts local Kenyan mobile numbers (07.. / 01..) as well as
// the international 254 form, with or without a leading plus.
var msisdnPattern = regexp.MustCompile(`^(?:\+?254|0)(?:1|7)\d{8}$`)

// RegisterCustomValidations installs the "msisdn" rule on gin's validator
// engine. Call once at startup before routes are registered.
func RegisterCustomValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("msisdn", func(fl validator.FieldLevel) bool {
			return msisdnPattern.MatchString(fl.Field().String())
		})
	}
}
