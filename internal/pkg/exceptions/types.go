package exceptions

import (
	"fmt"

	"clinidash-core/internal/pkg/constvars"
)

var (
	// Session
	ErrInvalidCredentials = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusUnauthorized, KindValidation, constvars.ErrClientInvalidUsernameOrPassword, constvars.ErrDevInvalidCredentials)
	}
	ErrNotAuthenticated = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusUnauthorized, KindNotAuthenticated, constvars.ErrClientNotLoggedIn, constvars.ErrDevNoActiveSession)
	}
	ErrUnauthorized = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusUnauthorized, KindUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevUnauthorizedResponse)
	}
	ErrSessionIdentityDiverged = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusUnauthorized, KindNotAuthenticated, constvars.ErrClientNotLoggedIn, constvars.ErrDevSessionIdentityDiverge)
	}

	// Validation
	ErrInputValidation = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusBadRequest, KindValidation, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}

	// Transport
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, KindTransport, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusBadGateway, KindTransport, constvars.ErrClientServerUnreachable, constvars.ErrDevSendHTTPRequest)
	}
	ErrDecodeResponse = func(err error, resource string) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, KindTransport, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf("%s (%s)", constvars.ErrDevDecodeResponse, resource))
	}
	ErrUpstreamRejected = func(serverMessage string, statusCode int) *CustomError {
		clientMessage := serverMessage
		if clientMessage == "" {
			clientMessage = constvars.ErrClientSomethingWrongWithApplication
		}
		return buildNewCustomError(nil, statusCode, KindTransport, clientMessage, fmt.Sprintf("%s (status %d)", constvars.ErrDevUpstreamRejected, statusCode))
	}
	ErrRequestAborted = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusOK, KindAborted, "", constvars.ErrDevRequestAborted)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusGatewayTimeout, KindTransport, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}

	// Parse
	ErrCannotParseJSON = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusBadRequest, KindValidation, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}

	// Redis
	ErrRedisGet = func(err error, redisKey string) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf("%s (%s)", constvars.ErrDevRedisGetData, redisKey))
	}
	ErrRedisSet = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}
	ErrRedisPublish = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisPublish)
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf("%s (%s)", constvars.ErrDevRabbitMQPublish, queueName))
	}

	// Default
	ErrServerProcess = func(err error) *CustomError {
		return buildNewCustomError(err, constvars.StatusInternalServerError, KindInternal, constvars.ErrClientCannotProcessRequest, constvars.ErrDevServerProcess)
	}
)
