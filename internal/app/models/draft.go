package models

import "time"

type Role string

const (
	RoleUnset   Role = ""
	RolePatient Role = "patient"
	RoleClinic  Role = "clinic"
)

// WizardState enumerates the signup wizard state machine. Transitions are
// owned by the wizard usecase; everything else treats the state as opaque.
type WizardState string

const (
	StateRoleSelect   WizardState = "role_select"
	StateBasicInfo    WizardState = "basic_info"
	StateAdvancedInfo WizardState = "advanced_info"
	StateSubmitting   WizardState = "submitting"
	StateSucceeded    WizardState = "succeeded"
	StateFailed       WizardState = "failed"
)

// StepNumber maps a state to the step index the web client renders (1-based).
// Terminal and transient states report the last form step.
func (s WizardState) StepNumber() int {
	switch s {
	case StateRoleSelect:
		return 1
	case StateBasicInfo:
		return 2
	default:
		return 3
	}
}

type BloodPressure struct {
	Systolic  int `json:"systolic,omitempty"`
	Diastolic int `json:"diastolic,omitempty"`
}

type EmergencyContact struct {
	Name     string `json:"name,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Relation string `json:"relation,omitempty"`
}

type Address struct {
	Line       string `json:"line,omitempty"`
	City       string `json:"city,omitempty"`
	Province   string `json:"province,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
}

// PatientFields accumulates everything the patient variant of the wizard
// collects across steps 2 and 3.
type PatientFields struct {
	FullName    string `json:"full_name,omitempty"`
	Email       string `json:"email,omitempty"`
	Password    string `json:"password,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Gender      string `json:"gender,omitempty"`

	DateOfBirth       string            `json:"date_of_birth,omitempty"`
	HeightCm          float64           `json:"height_cm,omitempty"`
	WeightKg          float64           `json:"weight_kg,omitempty"`
	BloodGroup        string            `json:"blood_group,omitempty"`
	BloodPressure     *BloodPressure    `json:"blood_pressure,omitempty"`
	Allergies         []string          `json:"allergies,omitempty"`
	ChronicConditions []string          `json:"chronic_conditions,omitempty"`
	Medications       []string          `json:"medications,omitempty"`
	SmokingHabit      string            `json:"smoking_habit,omitempty"`
	AlcoholHabit      string            `json:"alcohol_habit,omitempty"`
	ExerciseFrequency string            `json:"exercise_frequency,omitempty"`
	EmergencyContact  *EmergencyContact `json:"emergency_contact,omitempty"`
	Address           *Address          `json:"address,omitempty"`
}

// ClinicFields accumulates the clinic variant. Logo and verification document
// are kept as staging references, not raw bytes; the submission routine
// streams them out of the staging area.
type ClinicFields struct {
	ClinicName  string `json:"clinic_name,omitempty"`
	Email       string `json:"email,omitempty"`
	Password    string `json:"password,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`

	RegistrationNumber      string   `json:"registration_number,omitempty"`
	Specialties             []string `json:"specialties,omitempty"`
	WorkingDays             []string `json:"working_days,omitempty"`
	OpeningTime             string   `json:"opening_time,omitempty"`
	ClosingTime             string   `json:"closing_time,omitempty"`
	Description             string   `json:"description,omitempty"`
	Address                 *Address `json:"address,omitempty"`
	LogoRef                 string   `json:"logo_ref,omitempty"`
	VerificationDocumentRef string   `json:"verification_document_ref,omitempty"`
}

// WizardDraft is the accumulated signup state. Exactly one of Patient or
// Clinic is populated once a role has been selected.
type WizardDraft struct {
	ID        string         `json:"id"`
	State     WizardState    `json:"state"`
	Role      Role           `json:"role"`
	Patient   *PatientFields `json:"patient,omitempty"`
	Clinic    *ClinicFields  `json:"clinic,omitempty"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// EmptyDraft is what Load falls back to when nothing usable is persisted.
func EmptyDraft(draftID string) *WizardDraft {
	return &WizardDraft{
		ID:    draftID,
		State: StateRoleSelect,
		Role:  RoleUnset,
	}
}

// Email returns whichever account email the draft holds, if any.
func (d *WizardDraft) Email() string {
	switch {
	case d.Patient != nil:
		return d.Patient.Email
	case d.Clinic != nil:
		return d.Clinic.Email
	}
	return ""
}

// HasBasicInfo reports whether step-2 data has been accepted for the draft.
func (d *WizardDraft) HasBasicInfo() bool {
	switch d.Role {
	case RolePatient:
		return d.Patient != nil && d.Patient.Email != ""
	case RoleClinic:
		return d.Clinic != nil && d.Clinic.Email != ""
	}
	return false
}
