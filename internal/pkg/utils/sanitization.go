package utils

import (
	"strings"

	"mediflow-onboarding/internal/pkg/dto/requests"
)

func cleanWhiteSpaceFromEachStringOfAnArray(input []string) []string {
	sanitizedArray := make([]string, 0, len(input))
	for _, v := range input {
		trimmed := strings.TrimSpace(v)
		if trimmed != "" {
			sanitizedArray = append(sanitizedArray, trimmed)
		}
	}
	return sanitizedArray
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func SanitizeSelectRoleRequest(input *requests.SelectRole) {
	input.Role = strings.ToLower(strings.TrimSpace(input.Role))
}

func SanitizePatientBasicInfoRequest(input *requests.PatientBasicInfo) {
	input.FullName = strings.TrimSpace(input.FullName)
	input.Email = normalizeEmail(input.Email)
	input.PhoneNumber = strings.TrimSpace(input.PhoneNumber)
	input.Gender = strings.ToLower(strings.TrimSpace(input.Gender))
}

func SanitizeClinicBasicInfoRequest(input *requests.ClinicBasicInfo) {
	input.ClinicName = strings.TrimSpace(input.ClinicName)
	input.Email = normalizeEmail(input.Email)
	input.PhoneNumber = strings.TrimSpace(input.PhoneNumber)
}

func SanitizePatientAdvancedInfoRequest(input *requests.PatientAdvancedInfo) {
	input.DateOfBirth = strings.TrimSpace(input.DateOfBirth)
	input.BloodGroup = strings.ToUpper(strings.TrimSpace(input.BloodGroup))
	input.Allergies = cleanWhiteSpaceFromEachStringOfAnArray(input.Allergies)
	input.ChronicConditions = cleanWhiteSpaceFromEachStringOfAnArray(input.ChronicConditions)
	input.Medications = cleanWhiteSpaceFromEachStringOfAnArray(input.Medications)
}

func SanitizeClinicAdvancedInfoRequest(input *requests.ClinicAdvancedInfo) {
	input.RegistrationNumber = strings.TrimSpace(input.RegistrationNumber)
	input.Specialties = cleanWhiteSpaceFromEachStringOfAnArray(input.Specialties)
	input.WorkingDays = cleanWhiteSpaceFromEachStringOfAnArray(input.WorkingDays)
	for i, day := range input.WorkingDays {
		input.WorkingDays[i] = strings.ToLower(day)
	}
	input.OpeningTime = strings.TrimSpace(input.OpeningTime)
	input.ClosingTime = strings.TrimSpace(input.ClosingTime)
	input.Description = strings.TrimSpace(input.Description)
}

func SanitizeForgotPasswordRequest(input *requests.ForgotPassword) {
	input.Email = normalizeEmail(input.Email)
}

func SanitizeVerifyResetOTPRequest(input *requests.VerifyResetOTP) {
	input.Email = normalizeEmail(input.Email)
	input.OTP = strings.TrimSpace(input.OTP)
}

func SanitizeResetPasswordRequest(input *requests.ResetPassword) {
	input.Email = normalizeEmail(input.Email)
	input.OTP = strings.TrimSpace(input.OTP)
}

func SanitizeContactMessageRequest(input *requests.ContactMessage) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = normalizeEmail(input.Email)
	input.Subject = strings.TrimSpace(input.Subject)
	input.Message = strings.TrimSpace(input.Message)
}
