package validators

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func InitValidators() {
	validate = validator.New()
}

// Export validate to use in handlers and services
func Validator() *validator.Validate {
	if validate == nil {
		InitValidators()
	}
	return validate
}
