package constvars

const (
	WizardBeganSuccessMessage     = "Signup session started"
	WizardStatusSuccessMessage    = "Signup session state"
	WizardStepSuccessMessage      = "Step saved"
	WizardBackSuccessMessage      = "Went back one step"
	WizardExitSuccessMessage      = "Signup session discarded"
	WizardSubmitSuccessMessage    = "Account created, verification code sent"
	DocumentStagedSuccessMessage  = "File uploaded"
	ResetOTPSentSuccessMessage    = "Password reset code sent"
	ResetOTPStatusSuccessMessage  = "Password reset status"
	ResetOTPVerifiedSuccess       = "Code verified"
	PasswordResetSuccessMessage   = "Password has been reset"
	ContactMessageQueuedMessage   = "Message received, we will get back to you"
	NoticeListSuccessMessage      = "Active notices"
	NoticeDismissedSuccessMessage = "Notice dismissed"
)
