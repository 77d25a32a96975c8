package requests

type ContactMessage struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"omitempty,max=200"`
	Message string `json:"message" validate:"required,min=10,max=5000"`
}
