package request

import (
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var registerOnce sync.Once

// RegisterValidators adds the custom binding tags used by the request DTOs to gin's validator.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		err = v.RegisterValidation("decimal_amount", validateDecimalAmount)
	})
	return err
}

// decimal_amount: a plain decimal string, sign allowed, no exponent.
func validateDecimalAmount(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return false
	}
	for _, r := range s {
		if r == 'e' || r == 'E' {
			return false
		}
	}
	_, err := decimal.NewFromString(s)
	return err == nil
}
