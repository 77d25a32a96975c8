package utils

import (
	"errors"
	"fmt"
	"mime/multipart"
	"regexp"
	"strings"

	"mediflow-onboarding/internal/pkg/constvars"
)

var (
	reUppercase = regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase)
	reLowercase = regexp.MustCompile(constvars.RegexContainAtLeastOneLowercase)
	reDigit     = regexp.MustCompile(constvars.RegexContainAtLeastOneDigit)
	reSpecial   = regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar)
	reEmail     = regexp.MustCompile(constvars.RegexEmail)
)

// MissingPasswordCategories reports every unmet password requirement so the
// client can show one indication per missing category. Empty means the
// password is acceptable.
func MissingPasswordCategories(password string) []string {
	var missing []string
	if len(password) < 8 {
		missing = append(missing, "at least 8 characters")
	}
	if !reUppercase.MatchString(password) {
		missing = append(missing, "an uppercase letter")
	}
	if !reLowercase.MatchString(password) {
		missing = append(missing, "a lowercase letter")
	}
	if !reDigit.MatchString(password) {
		missing = append(missing, "a digit")
	}
	if !reSpecial.MatchString(password) {
		missing = append(missing, "a special character")
	}
	return missing
}

func IsValidEmail(email string) bool {
	return reEmail.MatchString(email)
}

// StripOtherSentinel removes the "Other" placeholder from a multi-select
// slice. The custom value the user typed travels as its own element, so the
// sentinel must never reach the upstream service.
func StripOtherSentinel(values []string) []string {
	if len(values) == 0 {
		return values
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.EqualFold(strings.TrimSpace(v), constvars.SentinelOther) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// ValidateUploadFile guards files entering the staging area.
func ValidateUploadFile(fileHeader *multipart.FileHeader, allowedExtensions []string, maxSizeInMegabytes int64) error {
	if fileHeader == nil {
		return errors.New("no file provided")
	}
	if fileHeader.Size > maxSizeInMegabytes*1024*1024 {
		return fmt.Errorf("file exceeds the maximum allowed size of %dMB", maxSizeInMegabytes)
	}
	lowered := strings.ToLower(fileHeader.Filename)
	for _, ext := range allowedExtensions {
		if strings.HasSuffix(lowered, ext) {
			return nil
		}
	}
	return fmt.Errorf("invalid file format. Allowed formats are: %s", strings.Join(allowedExtensions, ", "))
}
