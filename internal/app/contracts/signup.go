package contracts

import (
	"context"

	"mediflow-onboarding/internal/app/models"
	"mediflow-onboarding/internal/pkg/dto/responses"
)

// SignupUsecase runs the three-call submission sequence with compensating
// account deletion. It never clears the draft; that stays with the wizard.
type SignupUsecase interface {
	Submit(ctx context.Context, draft *models.WizardDraft) (*responses.SubmissionOutcome, error)
}
