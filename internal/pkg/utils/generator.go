package utils

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.New().String()
}

func GenerateDraftID() string {
	return uuid.New().String()
}

// GenerateStagedObjectName namespaces staged uploads per draft so Release can
// never collide across sessions.
func GenerateStagedObjectName(draftID, originalFileName string) string {
	timestamp := time.Now().Format("20060102_150405.000000000")
	return fmt.Sprintf("staging/%s/%s_%s%s", draftID, uuid.New().String()[:8], timestamp, filepath.Ext(originalFileName))
}
