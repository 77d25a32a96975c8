package middlewares

import (
	"mediflow-onboarding/internal/app/config"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
}
