package wizard

import (
	"mediflow-onboarding/internal/app/models"
	"mediflow-onboarding/internal/pkg/dto/requests"
)

// The merge helpers shallow-merge one step's payload into the draft without
// touching fields owned by other steps.

func mergePatientBasicInfo(draft *models.WizardDraft, in *requests.PatientBasicInfo) {
	if draft.Patient == nil {
		draft.Patient = &models.PatientFields{}
	}
	draft.Patient.FullName = in.FullName
	draft.Patient.Email = in.Email
	draft.Patient.Password = in.Password
	draft.Patient.PhoneNumber = in.PhoneNumber
	draft.Patient.Gender = in.Gender
}

func mergeClinicBasicInfo(draft *models.WizardDraft, in *requests.ClinicBasicInfo) {
	if draft.Clinic == nil {
		draft.Clinic = &models.ClinicFields{}
	}
	draft.Clinic.ClinicName = in.ClinicName
	draft.Clinic.Email = in.Email
	draft.Clinic.Password = in.Password
	draft.Clinic.PhoneNumber = in.PhoneNumber
}

func mergePatientAdvancedInfo(draft *models.WizardDraft, in *requests.PatientAdvancedInfo) {
	if draft.Patient == nil {
		draft.Patient = &models.PatientFields{}
	}
	patient := draft.Patient
	patient.DateOfBirth = in.DateOfBirth
	patient.HeightCm = in.HeightCm
	patient.WeightKg = in.WeightKg
	patient.BloodGroup = in.BloodGroup
	patient.Allergies = in.Allergies
	patient.ChronicConditions = in.ChronicConditions
	patient.Medications = in.Medications
	patient.SmokingHabit = in.SmokingHabit
	patient.AlcoholHabit = in.AlcoholHabit
	patient.ExerciseFrequency = in.ExerciseFrequency

	if in.BloodPressure != nil {
		patient.BloodPressure = &models.BloodPressure{
			Systolic:  in.BloodPressure.Systolic,
			Diastolic: in.BloodPressure.Diastolic,
		}
	}
	if in.EmergencyContact != nil {
		patient.EmergencyContact = &models.EmergencyContact{
			Name:     in.EmergencyContact.Name,
			Phone:    in.EmergencyContact.Phone,
			Relation: in.EmergencyContact.Relation,
		}
	}
	if in.Address != nil {
		patient.Address = mergeAddress(in.Address)
	}
}

func mergeClinicAdvancedInfo(draft *models.WizardDraft, in *requests.ClinicAdvancedInfo) {
	if draft.Clinic == nil {
		draft.Clinic = &models.ClinicFields{}
	}
	clinic := draft.Clinic
	clinic.RegistrationNumber = in.RegistrationNumber
	clinic.Specialties = in.Specialties
	clinic.WorkingDays = in.WorkingDays
	clinic.OpeningTime = in.OpeningTime
	clinic.ClosingTime = in.ClosingTime
	clinic.Description = in.Description

	if in.Address != nil {
		clinic.Address = mergeAddress(in.Address)
	}
	// Refs only move forward; an empty incoming ref never wipes a staged
	// upload.
	if in.LogoRef != "" {
		clinic.LogoRef = in.LogoRef
	}
	if in.VerificationDocumentRef != "" {
		clinic.VerificationDocumentRef = in.VerificationDocumentRef
	}
}

func mergeAddress(in *requests.Address) *models.Address {
	return &models.Address{
		Line:       in.Line,
		City:       in.City,
		Province:   in.Province,
		PostalCode: in.PostalCode,
	}
}
