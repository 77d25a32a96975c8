package exceptions

import (
	"fmt"

	"mediflow-onboarding/internal/pkg/constvars"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotParseMultipartForm = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseMultipartForm)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrServerProcess = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevServerProcess)
	}

	// Wizard
	ErrDraftNotFound = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientDraftNotFound, constvars.ErrDevTokenInvalidOrExpired)
	}
	ErrIllegalTransition = func(from, to string) *CustomError {
		return buildNewCustomError(nil, constvars.StatusConflict, constvars.ErrClientIllegalTransition, fmt.Sprintf("%s: %s -> %s", constvars.ErrDevDraftIllegalTransition, from, to))
	}
	ErrRoleNotSelected = func() *CustomError {
		return buildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientRoleNotSelected, constvars.ErrDevDraftRoleNotSet)
	}
	ErrRoleMismatch = func() *CustomError {
		return buildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevDraftRoleMismatch)
	}
	ErrAmbiguousRoleVariant = func() *CustomError {
		return buildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevAmbiguousStepPayload)
	}
	ErrPasswordsDoNotMatch = func() *CustomError {
		return buildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientPasswordsDoNotMatch, constvars.ErrDevValidationFailed)
	}
	ErrDocumentMissing = func() *CustomError {
		return buildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientDocumentMissing, constvars.ErrDevDocumentMissing)
	}

	// Session token
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientDraftNotFound, constvars.ErrDevTokenInvalidOrExpired)
	}
	ErrTokenGenerate = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevTokenGenerate)
	}

	// Upstream HTTP
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientUpstreamUnreachable, constvars.ErrDevSendHTTPRequest)
	}
	ErrDecodeResponse = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientUpstreamUnreachable, constvars.ErrDevDecodeUpstreamResponse)
	}
	ErrEmailAlreadyExists = func() *CustomError {
		return buildNewCustomError(nil, constvars.StatusConflict, constvars.ErrClientEmailAlreadyExists, constvars.ErrDevUpstreamRejected)
	}
	ErrRegNumberAlreadyExists = func() *CustomError {
		return buildNewCustomError(nil, constvars.StatusConflict, constvars.ErrClientRegNumberAlreadyExists, constvars.ErrDevUpstreamRejected)
	}
	ErrUpstreamRejected = func(clientMessage string) *CustomError {
		if clientMessage == "" {
			clientMessage = constvars.ErrClientRegistrationFailed
		}
		return buildNewCustomError(nil, constvars.StatusBadGateway, clientMessage, constvars.ErrDevUpstreamRejected)
	}

	// Redis
	ErrRedisGet = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisSet = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}
	ErrRedisIncrement = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisIncrementValue)
	}

	// Mongo
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoInsertDocument)
	}
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoFindDocument)
	}

	// Minio
	ErrMinioCreateObject = func(err error, bucketName string) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioCreateObject, bucketName))
	}
	ErrMinioGetObject = func(err error, bucketName string) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioGetObject, bucketName))
	}
	ErrMinioRemoveObject = func(err error, bucketName string) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioRemoveObject, bucketName))
	}
	ErrMinioStatObject = func(err error, bucketName string) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioStatObject, bucketName))
	}
	ErrFileValidation = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusBadRequest, err.Error(), constvars.ErrDevValidationFailed)
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublish, queueName))
	}

	// Forgot-password flow
	ErrResetFlowNotFound = func() *CustomError {
		return buildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrClientResetFlowNotFound, constvars.ErrDevInvalidInput)
	}
	ErrResetWindowActive = func(retryAfterSecs int) *CustomError {
		return buildNewCustomError(nil, constvars.StatusTooManyRequests, constvars.ErrClientResetWindowActive, fmt.Sprintf("Resend quota exceeded, retry after %d seconds", retryAfterSecs))
	}

	ErrClientCustomMessage = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusBadRequest, err.Error(), constvars.ErrDevServerProcess)
	}
)
