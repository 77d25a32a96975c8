package storage

import (
	"fmt"
	"log"

	"mediflow-onboarding/internal/app/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

func NewMinioClient(driverConfig *config.DriverConfig) *minio.Client {
	endpoint := fmt.Sprintf("%s:%s", driverConfig.Minio.Host, driverConfig.Minio.Port)
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(driverConfig.Minio.Username, driverConfig.Minio.Password, ""),
		Secure: driverConfig.Minio.UseSSL,
	})
	if err != nil {
		log.Fatalf("Failed to connect to minio: %s", err.Error())
	}
	log.Println("Successfully connected to minio")
	return client
}
