package utils

import (
	"regexp"
	"time"

	"mediflow-onboarding/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("role", validateRole)
	validate.RegisterValidation("birth_date", validateBirthDate)
	validate.RegisterValidation("clock_time", validateClockTime)
	validate.RegisterValidation("phone_number", validatePhoneNumber)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	return len(MissingPasswordCategories(fl.Field().String())) == 0
}

func validateRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "patient" || value == "clinic"
}

// validateBirthDate accepts YYYY-MM-DD dates that are not in the future and
// not more than 120 years in the past.
func validateBirthDate(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if !regexp.MustCompile(constvars.RegexDateYYYYMMDD).MatchString(raw) {
		return false
	}
	dob, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return false
	}
	now := time.Now()
	if dob.After(now) {
		return false
	}
	oldest := now.AddDate(-constvars.MaxAgeYears, 0, 0)
	return !dob.Before(oldest)
}

func validateClockTime(fl validator.FieldLevel) bool {
	return regexp.MustCompile(constvars.RegexTimeHHMM).MatchString(fl.Field().String())
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	return regexp.MustCompile(constvars.RegexPhoneNumberGeneral).MatchString(fl.Field().String())
}
