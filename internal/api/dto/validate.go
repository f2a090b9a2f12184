package dto

import (
	"github.com/go-playground/validator/v10"

	"github.com/spec-kit/hospital-service/pkg/util"
)

var validate = validator.New()

// Check runs struct-tag validation and maps failures to a DomainError with
// per-field details.
func Check(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return util.NewValidationError("invalid payload", nil)
	}

	details := make(map[string]any, len(fieldErrs))
	for _, fe := range fieldErrs {
		details[fe.Field()] = fe.Tag()
	}
	return util.NewValidationError("validation failed", details)
}
