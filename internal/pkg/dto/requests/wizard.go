package requests

type SelectRole struct {
	Role string `json:"role" validate:"required,role"`
}

type PatientBasicInfo struct {
	FullName       string `json:"full_name" validate:"required,min=2,max=100"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,password"`
	RetypePassword string `json:"retype_password" validate:"required,eqfield=Password"`
	PhoneNumber    string `json:"phone_number" validate:"omitempty,phone_number"`
	Gender         string `json:"gender" validate:"omitempty,oneof=male female other"`
}

type ClinicBasicInfo struct {
	ClinicName     string `json:"clinic_name" validate:"required,min=2,max=150"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,password"`
	RetypePassword string `json:"retype_password" validate:"required,eqfield=Password"`
	PhoneNumber    string `json:"phone_number" validate:"required,phone_number"`
}

type BloodPressure struct {
	Systolic  int `json:"systolic" validate:"omitempty,gte=50,lte=300"`
	Diastolic int `json:"diastolic" validate:"omitempty,gte=30,lte=200"`
}

type EmergencyContact struct {
	Name     string `json:"name" validate:"omitempty,max=100"`
	Phone    string `json:"phone" validate:"omitempty,phone_number"`
	Relation string `json:"relation" validate:"omitempty,max=50"`
}

type Address struct {
	Line       string `json:"line" validate:"omitempty,max=200"`
	City       string `json:"city" validate:"omitempty,max=100"`
	Province   string `json:"province" validate:"omitempty,max=100"`
	PostalCode string `json:"postal_code" validate:"omitempty,max=10"`
}

// PatientAdvancedInfo carries the demographic, medical, and lifestyle slice.
// Multi-selects here are skip-for-now: an empty list is accepted.
type PatientAdvancedInfo struct {
	DateOfBirth       string            `json:"date_of_birth" validate:"required,birth_date"`
	HeightCm          float64           `json:"height_cm" validate:"required,gte=40,lte=300"`
	WeightKg          float64           `json:"weight_kg" validate:"required,gte=2,lte=600"`
	BloodGroup        string            `json:"blood_group" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	BloodPressure     *BloodPressure    `json:"blood_pressure,omitempty"`
	Allergies         []string          `json:"allergies"`
	ChronicConditions []string          `json:"chronic_conditions"`
	Medications       []string          `json:"medications"`
	SmokingHabit      string            `json:"smoking_habit" validate:"omitempty,oneof=never occasional regular"`
	AlcoholHabit      string            `json:"alcohol_habit" validate:"omitempty,oneof=never occasional regular"`
	ExerciseFrequency string            `json:"exercise_frequency" validate:"omitempty,oneof=never rarely weekly daily"`
	EmergencyContact  *EmergencyContact `json:"emergency_contact,omitempty"`
	Address           *Address          `json:"address,omitempty"`
}

// ClinicAdvancedInfo requires at least one specialty and one working day.
// The verification document reference is checked at submission time, not
// here, so the user can keep filling the form while the upload is pending.
type ClinicAdvancedInfo struct {
	RegistrationNumber      string   `json:"registration_number" validate:"required,min=3,max=50"`
	Specialties             []string `json:"specialties" validate:"required,min=1,dive,required"`
	WorkingDays             []string `json:"working_days" validate:"required,min=1,dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	OpeningTime             string   `json:"opening_time" validate:"required,clock_time"`
	ClosingTime             string   `json:"closing_time" validate:"required,clock_time"`
	Description             string   `json:"description" validate:"omitempty,max=2000"`
	Address                 *Address `json:"address,omitempty"`
	LogoRef                 string   `json:"logo_ref" validate:"omitempty"`
	VerificationDocumentRef string   `json:"verification_document_ref" validate:"omitempty"`
}

// BasicInfo is the step-2 tagged union; the client sends exactly the variant
// matching its selected role and the wizard rejects a mismatch.
type BasicInfo struct {
	Patient *PatientBasicInfo `json:"patient,omitempty"`
	Clinic  *ClinicBasicInfo  `json:"clinic,omitempty"`
}

// AdvancedInfo is the step-3 tagged union.
type AdvancedInfo struct {
	Patient *PatientAdvancedInfo `json:"patient,omitempty"`
	Clinic  *ClinicAdvancedInfo  `json:"clinic,omitempty"`
}
