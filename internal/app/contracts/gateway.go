package contracts

import (
	"context"

	"mediflow-onboarding/internal/app/models"
	"mediflow-onboarding/internal/pkg/dto/requests"
)

type AuthGateway interface {
	RegisterAccount(ctx context.Context, request *requests.RegisterAccount) (*models.Account, error)
	SendOTP(ctx context.Context, email string) error
	DeleteAccount(ctx context.Context, accountID string) error
	SendResetOTP(ctx context.Context, email string) error
	VerifyResetOTP(ctx context.Context, email, otp string) error
	ResetPassword(ctx context.Context, request *requests.ResetPassword) error
}

type ProfileGateway interface {
	CreatePatientProfile(ctx context.Context, request *requests.PatientProfileCreation) error
	CreateClinicProfile(ctx context.Context, request *requests.ClinicProfileCreation) error
}

type MessageGateway interface {
	SendMessage(ctx context.Context, request *requests.ContactMessage) error
}
