package responses

import "mediflow-onboarding/internal/app/models"

// WizardSession is returned by Begin; the token authenticates every later
// wizard call.
type WizardSession struct {
	DraftID string `json:"draft_id"`
	Token   string `json:"token"`
	State   string `json:"state"`
	Step    int    `json:"step"`
}

// WizardStatus is the prefill view of a draft. Credentials never leave the
// server, so passwords are blanked before the draft is exposed.
type WizardStatus struct {
	DraftID string                `json:"draft_id"`
	State   string                `json:"state"`
	Step    int                   `json:"step"`
	Role    string                `json:"role"`
	Patient *models.PatientFields `json:"patient,omitempty"`
	Clinic  *models.ClinicFields  `json:"clinic,omitempty"`
}

// NewWizardStatus copies the draft into its client view with credentials
// stripped.
func NewWizardStatus(draft *models.WizardDraft) *WizardStatus {
	status := &WizardStatus{
		DraftID: draft.ID,
		State:   string(draft.State),
		Step:    draft.State.StepNumber(),
		Role:    string(draft.Role),
	}
	if draft.Patient != nil {
		patient := *draft.Patient
		patient.Password = ""
		status.Patient = &patient
	}
	if draft.Clinic != nil {
		clinic := *draft.Clinic
		clinic.Password = ""
		status.Clinic = &clinic
	}
	return status
}

// SubmissionOutcome tells the client where to go next after a successful
// submission.
type SubmissionOutcome struct {
	Email      string `json:"email"`
	RedirectTo string `json:"redirect_to"`
}

type StagedUpload struct {
	Ref      string `json:"ref"`
	FileName string `json:"file_name"`
	Size     int64  `json:"size"`
}
