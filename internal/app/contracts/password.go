package contracts

import (
	"context"

	"mediflow-onboarding/internal/pkg/dto/requests"
	"mediflow-onboarding/internal/pkg/dto/responses"
)

type PasswordUsecase interface {
	Start(ctx context.Context, request *requests.ForgotPassword) (*responses.ResetStatus, error)
	Resend(ctx context.Context, request *requests.ForgotPassword) (*responses.ResetStatus, error)
	Status(ctx context.Context, email string) (*responses.ResetStatus, error)
	Verify(ctx context.Context, request *requests.VerifyResetOTP) (*responses.ResetStatus, error)
	Reset(ctx context.Context, request *requests.ResetPassword) error
}
