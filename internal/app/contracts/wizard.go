package contracts

import (
	"context"

	"mediflow-onboarding/internal/pkg/dto/requests"
	"mediflow-onboarding/internal/pkg/dto/responses"
)

type WizardUsecase interface {
	Begin(ctx context.Context) (*responses.WizardSession, error)
	Status(ctx context.Context, draftID string) (*responses.WizardStatus, error)
	SelectRole(ctx context.Context, draftID string, request *requests.SelectRole) (*responses.WizardStatus, error)
	SubmitBasicInfo(ctx context.Context, draftID string, request *requests.BasicInfo) (*responses.WizardStatus, error)
	SubmitAdvancedInfo(ctx context.Context, draftID string, request *requests.AdvancedInfo) (*responses.WizardStatus, error)
	Back(ctx context.Context, draftID string) (*responses.WizardStatus, error)
	Exit(ctx context.Context, draftID string) error
	Submit(ctx context.Context, draftID string) (*responses.SubmissionOutcome, error)
}
