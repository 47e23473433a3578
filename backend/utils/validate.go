package utils

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct runs the shared validator and flattens the result into
// field/tag pairs the services can wrap into their own validation error.
func ValidateStruct(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
	} else {
		fields["_"] = err.Error()
	}
	return fields
}
