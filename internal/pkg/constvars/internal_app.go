package constvars

type contextKey string

const (
	CONTEXT_REQUEST_ID_KEY contextKey = "request_id"
	CONTEXT_DRAFT_ID_KEY   contextKey = "draft_id"
)

const (
	LoggingRequestIDKey  = "request_id"
	LoggingDraftIDKey    = "draft_id"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
)

// Redis key prefixes. Drafts and password flows are namespaced so Clear can
// never touch anything but wizard state.
const (
	RedisKeyDraftPrefix        = "wizard:draft:"
	RedisKeyPasswordPrefix     = "password:flow:"
	RedisKeyResendLimitGroup   = "RESET-OTP-RESEND"
)

// Multi-select sentinel meaning "user supplied a custom value"; stripped
// before anything is sent upstream.
const SentinelOther = "Other"

// Saga stage names, also used as audit failed_stage values.
const (
	StageRegisterAccount = "register-account"
	StageCreateProfile   = "create-profile"
	StageSendOTP         = "send-otp"
)

const (
	BiometricHeightMinCm = 40
	BiometricHeightMaxCm = 300
	BiometricWeightMinKg = 2
	BiometricWeightMaxKg = 600
	MaxAgeYears          = 120
)
