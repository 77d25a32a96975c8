package contracts

import (
	"context"

	"mediflow-onboarding/internal/app/models"
)

// DraftStore persists wizard progress between page loads. Load never fails on
// a malformed or missing payload; it falls back to the empty default so a
// corrupted draft behaves like a fresh visit.
type DraftStore interface {
	Load(ctx context.Context, draftID string) (*models.WizardDraft, error)
	Save(ctx context.Context, draft *models.WizardDraft) error
	Clear(ctx context.Context, draftID string) error
}
