package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"email":        "must be a valid email",
	"min":          "must be at least %s characters long",
	"max":          "maximum at %s characters long",
	"eqfield":      "must match %s",
	"len":          "must be %s characters long",
	"password":     "must be at least 8 characters long and contain at least one uppercase letter, one lowercase letter, one digit, and one special character",
	"numeric":      "must be a number",
	"oneof":        "must be one of [%s]",
	"gte":          "must be greater than or equal to %s",
	"lte":          "must be less than or equal to %s",
	"role":         "must be either 'patient' or 'clinic'",
	"birth_date":   "must be a valid date, not in the future, and not more than 120 years in the past",
	"clock_time":   "must be a valid time in HH:MM format",
	"phone_number": "must be a valid phone number",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":     true,
	"max":     true,
	"eqfield": true,
	"len":     true,
	"gte":     true,
	"lte":     true,
	"oneof":   true,
}

// Error messages for clients
const (
	ErrClientSomethingWrongWithApplication = "something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "cannot process the request"
	ErrClientPasswordsDoNotMatch           = "passwords do not match"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientRegNumberAlreadyExists        = "registration number already registered"
	ErrClientDocumentMissing               = "verification document is missing, please upload it before submitting"
	ErrClientRoleNotSelected               = "please select whether you are registering as a patient or a clinic"
	ErrClientIllegalTransition             = "this step is not available yet"
	ErrClientDraftNotFound                 = "signup session not found or expired"
	ErrClientUpstreamUnreachable           = "the service is unreachable right now, please try again"
	ErrClientRegistrationFailed            = "registration could not be completed, nothing was created"
	ErrClientOTPDispatchFailed             = "could not send the verification code, please try again"
	ErrClientResetWindowActive             = "a verification code was already sent, please wait before requesting another"
	ErrClientResetFlowNotFound             = "no password reset in progress for this email"
	ErrClientInvalidFileFormat             = "invalid file format"
	ErrClientFileTooLarge                  = "file exceeds the maximum allowed size"
	ErrClientServerLongRespond             = "server takes too long to respond"
	ErrClientNotAuthorized                 = "you are not authorized to perform this action"
)

// Error messages for developers
const (
	ErrDevValidationFailed          = "Validation failed"
	ErrDevInvalidInput              = "Invalid input"
	ErrDevCannotParseJSON           = "Failed to parse JSON request body"
	ErrDevCannotParseMultipartForm  = "Failed to parse multipart form"
	ErrDevCannotMarshalJSON         = "Failed to marshal value to JSON"
	ErrDevCreateHTTPRequest         = "Failed to create HTTP request"
	ErrDevSendHTTPRequest           = "Failed to send HTTP request to upstream"
	ErrDevDecodeUpstreamResponse    = "Failed to decode upstream response body"
	ErrDevUpstreamRejected          = "Upstream service reported failure"
	ErrDevRedisGetData              = "Failed to get data from Redis"
	ErrDevRedisSetData              = "Failed to set data to Redis"
	ErrDevRedisDeleteData           = "Failed to delete data from Redis"
	ErrDevRedisIncrementValue       = "Failed to increment value in Redis"
	ErrDevMongoInsertDocument       = "Failed to insert document to MongoDB"
	ErrDevMongoFindDocument         = "Failed to find document in MongoDB"
	ErrDevMinioCreateObject         = "Failed to create object in bucket %s"
	ErrDevMinioGetObject            = "Failed to get object from bucket %s"
	ErrDevMinioRemoveObject         = "Failed to remove object from bucket %s"
	ErrDevMinioStatObject           = "Failed to stat object in bucket %s"
	ErrDevRabbitMQPublish           = "Failed to publish message to queue %s"
	ErrDevRabbitMQConsume           = "Failed to start consuming queue %s"
	ErrDevSealDraft                 = "Failed to seal draft payload"
	ErrDevDraftIllegalTransition    = "Transition not allowed from current wizard state"
	ErrDevDraftRoleNotSet           = "Role must be selected before step data is accepted"
	ErrDevDraftRoleMismatch         = "Step payload does not match the draft role"
	ErrDevAmbiguousStepPayload      = "Step payload must carry exactly one role variant"
	ErrDevDocumentMissing           = "Clinic verification document reference absent or not staged"
	ErrDevServerDeadlineExceeded    = "Server deadline exceeded"
	ErrDevServerProcess             = "Server failed to process the request"
	ErrDevTokenInvalidOrExpired     = "Wizard session token invalid or expired"
	ErrDevTokenGenerate             = "Failed to generate wizard session token"
)
