package exceptions

import (
	"strings"

	"mediflow-onboarding/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

func FormatAllValidationErrors(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	var errors []string
	for _, err := range err.(validator.ValidationErrors) {
		errors = append(errors, formatFieldError(err))
	}
	return strings.Join(errors, ", ")
}

func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
		return formatFieldError(validationErrors[0])
	}
	return constvars.ErrDevInvalidInput
}

func formatFieldError(fieldErr validator.FieldError) string {
	fieldName := strings.ToLower(fieldErr.Field())
	tag := fieldErr.Tag()
	customMessage, ok := constvars.CustomValidationErrorMessages[tag]
	if !ok {
		customMessage = "is invalid"
	}
	if constvars.TagsWithParams[tag] {
		if tag == "oneof" {
			customMessage = strings.Replace(customMessage, "%s", strings.Join(strings.Fields(fieldErr.Param()), ", "), 1)
		} else {
			customMessage = strings.Replace(customMessage, "%s", fieldErr.Param(), 1)
		}
	}
	return fieldName + " " + customMessage
}
