package requests

type ForgotPassword struct {
	Email string `json:"email" validate:"required,email"`
}

type VerifyResetOTP struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6,numeric"`
}

type ResetPassword struct {
	Email                   string `json:"email" validate:"required,email"`
	OTP                     string `json:"otp" validate:"required,len=6,numeric"`
	NewPassword             string `json:"new_password" validate:"required,password"`
	NewPasswordConfirmation string `json:"new_password_confirmation" validate:"required,eqfield=NewPassword"`
}
