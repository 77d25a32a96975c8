package requests

import "io"

// RegisterAccount is the body for the upstream register endpoint.
type RegisterAccount struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// PatientProfileCreation is the JSON body for patient profile creation,
// keyed by the account id produced by register.
type PatientProfileCreation struct {
	UserRef           string            `json:"userRef"`
	DateOfBirth       string            `json:"dateOfBirth"`
	Gender            string            `json:"gender,omitempty"`
	HeightCm          float64           `json:"heightCm"`
	WeightKg          float64           `json:"weightKg"`
	BloodGroup        string            `json:"bloodGroup,omitempty"`
	BloodPressure     *BloodPressure    `json:"bloodPressure,omitempty"`
	Allergies         []string          `json:"allergies,omitempty"`
	ChronicConditions []string          `json:"chronicConditions,omitempty"`
	Medications       []string          `json:"medications,omitempty"`
	SmokingHabit      string            `json:"smokingHabit,omitempty"`
	AlcoholHabit      string            `json:"alcoholHabit,omitempty"`
	ExerciseFrequency string            `json:"exerciseFrequency,omitempty"`
	EmergencyContact  *EmergencyContact `json:"emergencyContact,omitempty"`
	Address           *Address          `json:"address,omitempty"`
}

// ClinicProfileData is the JSON-encoded blob part of the clinic multipart
// request.
type ClinicProfileData struct {
	UserRef            string   `json:"userRef"`
	ClinicName         string   `json:"clinicName"`
	PhoneNumber        string   `json:"phoneNumber"`
	RegistrationNumber string   `json:"registrationNumber"`
	Specialties        []string `json:"specialties"`
	WorkingDays        []string `json:"workingDays"`
	OpeningTime        string   `json:"openingTime"`
	ClosingTime        string   `json:"closingTime"`
	Description        string   `json:"description,omitempty"`
	Address            *Address `json:"address,omitempty"`
}

// FilePart is one file section of a multipart upstream request, streamed
// straight out of the staging area.
type FilePart struct {
	FieldName   string
	FileName    string
	ContentType string
	Reader      io.Reader
}

// ClinicProfileCreation bundles the clinic blob with its file parts. The
// verification document is mandatory; the logo is not.
type ClinicProfileCreation struct {
	Data                 *ClinicProfileData
	Logo                 *FilePart
	VerificationDocument *FilePart
}
