package config

import (
	"mediflow-onboarding/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		MongoDB: MongoDB{
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "mediflow_onboarding"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "mediflow-staging"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:            utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),

			DraftSealSecret:          utils.GetEnvString("APP_DRAFT_SEAL_SECRET", "local-dev-seal-secret"),
			DraftTTLInHour:           utils.GetEnvInt("APP_DRAFT_TTL_IN_HOUR", 72),
			WizardTokenExpTimeInHour: utils.GetEnvInt("APP_WIZARD_TOKEN_EXP_TIME_IN_HOUR", 72),

			ResetOTPWindowInSeconds:    utils.GetEnvInt("APP_RESET_OTP_WINDOW_IN_SECONDS", 180),
			ResetOTPResendMaxPerWindow: utils.GetEnvInt("APP_RESET_OTP_RESEND_MAX_PER_WINDOW", 1),

			NoticeDefaultDurationInMS: utils.GetEnvInt("APP_NOTICE_DEFAULT_DURATION_IN_MS", 5000),

			DocumentMaxUploadSizeInMB: utils.GetEnvInt64("APP_DOCUMENT_UPLOAD_MAX_SIZE_IN_MB", 5),

			ContactQueue:           utils.GetEnvString("APP_RABBITMQ_CONTACT_QUEUE", "mediflow.contact-messages"),
			ContactRelayMaxRetries: utils.GetEnvInt("APP_CONTACT_RELAY_MAX_RETRIES", 5),
		},
		Upstream: Upstream{
			BaseUrl:          utils.GetEnvString("UPSTREAM_BASE_URL", "http://localhost:5000/api"),
			TimeoutInSeconds: utils.GetEnvInt("UPSTREAM_TIMEOUT_IN_SECONDS", 15),
		},
		JWT: JWT{
			Secret: utils.GetEnvString("JWT_SECRET", "local-dev-jwt-secret"),
		},
	}
}
