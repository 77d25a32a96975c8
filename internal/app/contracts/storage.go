package contracts

import (
	"context"
	"io"
	"mime/multipart"

	"mediflow-onboarding/internal/app/models"
)

// Storage is the staging area for files collected during the wizard. Staged
// objects live until Release; the submission routine streams them upstream.
type Storage interface {
	Stage(ctx context.Context, draftID string, file io.Reader, fileHeader *multipart.FileHeader) (*models.StagedObject, error)
	Fetch(ctx context.Context, ref string) (io.ReadCloser, *models.StagedObject, error)
	Exists(ctx context.Context, ref string) (bool, error)
	Release(ctx context.Context, refs ...string) error
}
