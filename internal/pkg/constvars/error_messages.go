package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":       "is required",
	"email":          "must be a valid email",
	"min":            "must be at least %s characters long",
	"max":            "maximum at %s characters long",
	"oneof":          "must be one of [%s]",
	"gt":             "must be greater than %s",
	"required_if":    "is required when %s",
	"duration_label": "must be one of [1h, 1h30, 2h]",
	"grade_level":    "must be a valid grade level (primaire-1 to primaire-6, secondaire-1 to secondaire-5)",
	"location":       "must be one of [teacher, home, online]",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":         true,
	"max":         true,
	"oneof":       true,
	"gt":          true,
	"required_if": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientBookingNotFound               = "booking not found"
	ErrClientBookingStatusTransition       = "this booking can no longer change status"
	ErrClientBookingTemporarilyUnavailable = "the booking service is temporarily unavailable, please retry"
	ErrClientInvalidDate                   = "date must use the YYYY-MM-DD format"
	ErrClientInvalidDuration               = "duration must be one of [1h, 1h30, 2h]"
	ErrClientInvalidInterval               = "end time must be after start time"
	ErrClientSessionCrossesMidnight        = "a session must start and end on the same day"
	ErrClientSessionBufferCrossesDay       = "a session and its buffer must fit within one day"
	ErrClientInvalidPricingQuery           = "grade must be primaire or secondaire and location must be teacher, home or online"
	ErrClientInvalidAPIKey                 = "invalid API key"
	ErrClientAPIKeyRequired                = "API key is required"
)

// Error messages for developers
const (
	ErrDevInvalidInput              = "invalid input"
	ErrDevCannotParseJSON           = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON         = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseDate           = "cannot parse the requested date"
	ErrDevValidationFailed          = "validation failed"
	ErrDevURLParamValidationFailed  = "parameter %s validation failed"
	ErrDevInvalidDurationLabel      = "unknown duration label %q"
	ErrDevInvalidInterval           = "requested end is not after requested start"
	ErrDevSessionCrossesMidnight    = "requested session ends after the local day boundary"
	ErrDevSessionBufferCrossesDay   = "buffered session %s to %s leaves the local day"
	ErrDevBookingNotFound           = "booking %s not found"
	ErrDevBookingStatusTransition   = "booking %s cannot transition from %s to %s"
	ErrDevInvalidPricingQuery       = "unknown grade band or location"
	ErrDevInvalidAPIKey             = "INVALID_API_KEY"
	ErrDevAPIKeyRequired            = "API_KEY_REQUIRED"
	ErrDevServerProcess             = "server failed to process something related to machine system"
	ErrDevServerDeadlineExceeded    = "deadline exceeded"
	ErrDevInvalidWindowCatalog      = "invalid time window catalog"
	ErrDevBufferTooLargeForDayScope = "buffer of %d minutes exceeds the %d minutes supported by day-scoped conflict queries"

	// Database messages
	ErrDevDBFailedToFindData       = "failed to find data on database"
	ErrDevDBFailedToInsertData     = "failed to insert data into database"
	ErrDevDBFailedToUpdateData     = "failed to update data on database"
	ErrDevDBFailedToIterateDataset = "failed when iterating dataset from database"
	ErrDevDBFailedToBeginTx        = "failed to begin database transaction"
	ErrDevDBFailedToCommitTx       = "failed to commit database transaction"
	ErrDevDBFailedToAcquireLock    = "failed to acquire advisory lock for day %s"

	// Redis messages
	ErrDevRedisSetData     = "failed to SETNX data into redis"
	ErrDevRedisDeleteData  = "failed to DELETE data from redis"
	ErrDevRedisUnlock      = "failed to release redis lock"
	ErrDevRedisLockTimeout = "timed out waiting for redis lock %s"

	// RabbitMQ messages
	ErrDevRabbitMQPublishMessage = "failed to publish message into queue %s"

	// SMTP messages
	ErrDevSMTPSendEmail = "failed to send email via SMTP client hostname %s"
)

const (
	ErrEnvParsing = "Error parsing %s: %v, will use default value"
)
