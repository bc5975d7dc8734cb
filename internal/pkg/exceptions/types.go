package exceptions

import (
	"fmt"
	"tutorat-service/internal/pkg/constvars"
)

var (
	ErrURLParamValidation = func(err error, paramName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, fmt.Sprintf(constvars.ErrDevURLParamValidationFailed, paramName))
	}
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrCannotParseDate = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidDate, constvars.ErrDevCannotParseDate)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevServerProcess)
	}

	// Booking
	ErrInvalidDurationLabel = func(err error, label string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidDuration, fmt.Sprintf(constvars.ErrDevInvalidDurationLabel, label))
	}
	ErrInvalidInterval = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidInterval, constvars.ErrDevInvalidInterval)
	}
	ErrSessionCrossesMidnight = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientSessionCrossesMidnight, constvars.ErrDevSessionCrossesMidnight)
	}
	ErrSessionBufferCrossesDay = func(bufferedStart, bufferedEnd string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientSessionBufferCrossesDay, fmt.Sprintf(constvars.ErrDevSessionBufferCrossesDay, bufferedStart, bufferedEnd))
	}
	ErrBookingNotFound = func(err error, bookingID string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientBookingNotFound, fmt.Sprintf(constvars.ErrDevBookingNotFound, bookingID))
	}
	ErrBookingStatusTransition = func(err error, bookingID, from, to string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientBookingStatusTransition, fmt.Sprintf(constvars.ErrDevBookingStatusTransition, bookingID, from, to))
	}
	ErrInvalidPricingQuery = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidPricingQuery, constvars.ErrDevInvalidPricingQuery)
	}

	ErrInvalidWindowCatalog = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevInvalidWindowCatalog)
	}
	ErrBufferTooLargeForDayScope = func(bufferMinutes int) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevBufferTooLargeForDayScope, bufferMinutes, constvars.BookingMaxDayScopedBufferMinutes))
	}

	// Postgres DB
	ErrPostgresDBFindData = func(err error) *CustomError {
		return buildTransientError(err, constvars.ErrDevDBFailedToFindData)
	}
	ErrPostgresDBIterateDataset = func(err error) *CustomError {
		return buildTransientError(err, constvars.ErrDevDBFailedToIterateDataset)
	}
	ErrPostgresDBInsertData = func(err error) *CustomError {
		return buildTransientError(err, constvars.ErrDevDBFailedToInsertData)
	}
	ErrPostgresDBUpdateData = func(err error) *CustomError {
		return buildTransientError(err, constvars.ErrDevDBFailedToUpdateData)
	}
	ErrPostgresDBBeginTx = func(err error) *CustomError {
		return buildTransientError(err, constvars.ErrDevDBFailedToBeginTx)
	}
	ErrPostgresDBCommitTx = func(err error) *CustomError {
		return buildTransientError(err, constvars.ErrDevDBFailedToCommitTx)
	}
	ErrPostgresDBAdvisoryLock = func(err error, day string) *CustomError {
		return buildTransientError(err, fmt.Sprintf(constvars.ErrDevDBFailedToAcquireLock, day))
	}

	// Redis
	ErrRedisSet = func(err error) *CustomError {
		return buildTransientError(err, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return buildTransientError(err, constvars.ErrDevRedisDeleteData)
	}
	ErrRedisUnlock = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisUnlock)
	}
	ErrRedisLockTimeout = func(err error, redisKey string) *CustomError {
		return buildTransientError(err, fmt.Sprintf(constvars.ErrDevRedisLockTimeout, redisKey))
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublishMessage, queueName))
	}

	// SMTP
	ErrSMTPSendEmail = func(err error, hostname string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevSMTPSendEmail, hostname))
	}
)
