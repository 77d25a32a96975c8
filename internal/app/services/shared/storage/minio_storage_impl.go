package storage

import (
	"context"
	"io"
	"mime/multipart"

	"mediflow-onboarding/internal/app/contracts"
	"mediflow-onboarding/internal/app/models"
	"mediflow-onboarding/internal/pkg/exceptions"
	"mediflow-onboarding/internal/pkg/utils"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	MinioClient *minio.Client
	BucketName  string
}

func NewMinioStorage(minioClient *minio.Client, bucketName string) contracts.Storage {
	return &minioStorage{
		MinioClient: minioClient,
		BucketName:  bucketName,
	}
}

func (m *minioStorage) Stage(ctx context.Context, draftID string, file io.Reader, fileHeader *multipart.FileHeader) (*models.StagedObject, error) {
	objectName := utils.GenerateStagedObjectName(draftID, fileHeader.Filename)
	contentType := fileHeader.Header.Get("Content-Type")

	_, err := m.MinioClient.PutObject(ctx, m.BucketName, objectName, file, fileHeader.Size, minio.PutObjectOptions{
		ContentType:  contentType,
		UserMetadata: map[string]string{"Filename": fileHeader.Filename},
	})
	if err != nil {
		return nil, exceptions.ErrMinioCreateObject(err, m.BucketName)
	}

	return &models.StagedObject{
		Ref:         objectName,
		FileName:    fileHeader.Filename,
		ContentType: contentType,
		Size:        fileHeader.Size,
	}, nil
}

func (m *minioStorage) Fetch(ctx context.Context, ref string) (io.ReadCloser, *models.StagedObject, error) {
	info, err := m.MinioClient.StatObject(ctx, m.BucketName, ref, minio.StatObjectOptions{})
	if err != nil {
		return nil, nil, exceptions.ErrMinioStatObject(err, m.BucketName)
	}

	object, err := m.MinioClient.GetObject(ctx, m.BucketName, ref, minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, exceptions.ErrMinioGetObject(err, m.BucketName)
	}

	return object, &models.StagedObject{
		Ref:         ref,
		FileName:    info.UserMetadata["Filename"],
		ContentType: info.ContentType,
		Size:        info.Size,
	}, nil
}

func (m *minioStorage) Exists(ctx context.Context, ref string) (bool, error) {
	_, err := m.MinioClient.StatObject(ctx, m.BucketName, ref, minio.StatObjectOptions{})
	if err != nil {
		errResponse := minio.ToErrorResponse(err)
		if errResponse.Code == "NoSuchKey" {
			return false, nil
		}
		return false, exceptions.ErrMinioStatObject(err, m.BucketName)
	}
	return true, nil
}

// Release removes staged objects after a successful submission. Removal is
// best-effort per object; the first failure is returned after attempting all.
func (m *minioStorage) Release(ctx context.Context, refs ...string) error {
	var firstErr error
	for _, ref := range refs {
		if ref == "" {
			continue
		}
		if err := m.MinioClient.RemoveObject(ctx, m.BucketName, ref, minio.RemoveObjectOptions{}); err != nil && firstErr == nil {
			firstErr = exceptions.ErrMinioRemoveObject(err, m.BucketName)
		}
	}
	return firstErr
}
