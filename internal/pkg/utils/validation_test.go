package utils

import (
	"mime/multipart"
	"testing"

	"mediflow-onboarding/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
)

func TestMissingPasswordCategories(t *testing.T) {
	testCases := []struct {
		name     string
		password string
		missing  int
	}{
		{"meets every category", "Aa1!aaaa", 0},
		{"too short but otherwise complete", "Aa1!", 1},
		{"no uppercase", "aa1!aaaa", 1},
		{"no digit and no special", "Aaaaaaaa", 2},
		{"empty", "", 5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Len(t, MissingPasswordCategories(tc.password), tc.missing)
		})
	}
}

func TestValidateStruct_PatientBasicInfo(t *testing.T) {
	valid := func() *requests.PatientBasicInfo {
		return &requests.PatientBasicInfo{
			FullName:       "Ada Osei",
			Email:          "ada@example.com",
			Password:       "Aa1!aaaa",
			RetypePassword: "Aa1!aaaa",
		}
	}

	t.Run("accepts a complete payload", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(valid()))
	})

	t.Run("rejects a weak password", func(t *testing.T) {
		request := valid()
		request.Password = "password"
		request.RetypePassword = "password"
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("rejects mismatched retype", func(t *testing.T) {
		request := valid()
		request.RetypePassword = "Aa1!bbbb"
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("rejects a malformed email", func(t *testing.T) {
		request := valid()
		request.Email = "not-an-email"
		assert.Error(t, ValidateStruct(request))
	})
}

func TestValidateStruct_PatientAdvancedInfo(t *testing.T) {
	valid := func() *requests.PatientAdvancedInfo {
		return &requests.PatientAdvancedInfo{
			DateOfBirth: "1990-04-12",
			HeightCm:    168,
			WeightKg:    61,
		}
	}

	t.Run("accepts plausible biometrics", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(valid()))
	})

	t.Run("rejects height outside 40-300", func(t *testing.T) {
		request := valid()
		request.HeightCm = 301
		assert.Error(t, ValidateStruct(request))

		request.HeightCm = 39
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("accepts boundary biometrics", func(t *testing.T) {
		request := valid()
		request.HeightCm = 40
		request.WeightKg = 600
		assert.NoError(t, ValidateStruct(request))
	})

	t.Run("rejects weight outside 2-600", func(t *testing.T) {
		request := valid()
		request.WeightKg = 601
		assert.Error(t, ValidateStruct(request))

		request.WeightKg = 1
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("rejects a future birth date", func(t *testing.T) {
		request := valid()
		request.DateOfBirth = "2090-01-01"
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("rejects an implausibly old birth date", func(t *testing.T) {
		request := valid()
		request.DateOfBirth = "1850-01-01"
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("rejects a malformed birth date", func(t *testing.T) {
		request := valid()
		request.DateOfBirth = "12/04/1990"
		assert.Error(t, ValidateStruct(request))
	})
}

func TestValidateStruct_ClinicAdvancedInfo(t *testing.T) {
	valid := func() *requests.ClinicAdvancedInfo {
		return &requests.ClinicAdvancedInfo{
			RegistrationNumber: "REG-100",
			Specialties:        []string{"cardiology"},
			WorkingDays:        []string{"monday", "friday"},
			OpeningTime:        "08:00",
			ClosingTime:        "17:00",
		}
	}

	t.Run("accepts a complete payload", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(valid()))
	})

	t.Run("requires at least one specialty", func(t *testing.T) {
		request := valid()
		request.Specialties = nil
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("rejects an unknown working day", func(t *testing.T) {
		request := valid()
		request.WorkingDays = []string{"payday"}
		assert.Error(t, ValidateStruct(request))
	})

	t.Run("rejects a malformed clock time", func(t *testing.T) {
		request := valid()
		request.OpeningTime = "8am"
		assert.Error(t, ValidateStruct(request))
	})
}

func TestStripOtherSentinel(t *testing.T) {
	assert.Equal(t, []string{"Penicillin", "Latex"}, StripOtherSentinel([]string{"Penicillin", "Other", "Latex"}))
	assert.Equal(t, []string{"Custom allergy"}, StripOtherSentinel([]string{"other", "Custom allergy"}))
	assert.Empty(t, StripOtherSentinel([]string{"Other"}))
	assert.Nil(t, StripOtherSentinel(nil))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("ada@example.com"))
	assert.False(t, IsValidEmail("ada@"))
	assert.False(t, IsValidEmail(""))
}

func TestValidateUploadFile(t *testing.T) {
	allowed := []string{".pdf", ".jpg", ".jpeg", ".png"}

	t.Run("accepts an allowed extension within the limit", func(t *testing.T) {
		header := &multipart.FileHeader{Filename: "license.PDF", Size: 1 << 20}
		assert.NoError(t, ValidateUploadFile(header, allowed, 5))
	})

	t.Run("rejects a disallowed extension", func(t *testing.T) {
		header := &multipart.FileHeader{Filename: "license.exe", Size: 1024}
		assert.Error(t, ValidateUploadFile(header, allowed, 5))
	})

	t.Run("rejects an oversize file", func(t *testing.T) {
		header := &multipart.FileHeader{Filename: "license.pdf", Size: 6 << 20}
		assert.Error(t, ValidateUploadFile(header, allowed, 5))
	})

	t.Run("rejects a nil header", func(t *testing.T) {
		assert.Error(t, ValidateUploadFile(nil, allowed, 5))
	})
}
