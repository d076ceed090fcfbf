package api

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"hrms-backend/pkg/apperror"
)

// bindError turns a gin binding failure into the endpoint's error. Validator
// violations carry per-field detail; malformed JSON gets the bare message.
func bindError(err error, message string) *apperror.AppError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			details[fe.Field()] = fe.Tag()
		}
		return apperror.Validation(message, details)
	}
	return apperror.BadRequest(message)
}
