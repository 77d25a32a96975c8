package contracts

import (
	"context"

	"mediflow-onboarding/internal/app/models"
)

type AuditRepository interface {
	RecordAttempt(ctx context.Context, attempt *models.SignupAttempt) error
	LatestByEmailMasked(ctx context.Context, emailMasked string) (*models.SignupAttempt, error)
}
