package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingDataKey           = "data"
	LoggingResponseKey       = "response"
	LoggingRequestKey        = "request"
	LoggingResponseLengthKey = "response_length"
	LoggingErrorTypeKey      = "error_type"

	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"

	LoggingBookingIDKey        = "booking_id"
	LoggingBookingStatusKey    = "booking_status"
	LoggingBookingCountKey     = "booking_count"
	LoggingBookingStartKey     = "booking_start"
	LoggingBookingEndKey       = "booking_end"
	LoggingDurationLabelKey    = "duration_label"
	LoggingDateKey             = "date"
	LoggingSlotCountKey        = "slot_count"
	LoggingNextAvailableKey    = "next_available"
	LoggingConflictReasonKey   = "conflict_reason"
	LoggingRedisKey            = "redis_key"
	LoggingLockValueKey        = "lock_value"
	LoggingLockExpirationKey   = "lock_expiration"
	LoggingLockWaitKey         = "lock_wait"
	LoggingQueueNameKey        = "queue_name"
	LoggingMessageIDKey        = "message_id"
	LoggingEmailRecipientKey   = "email_recipient"
	LoggingAdvisoryLockKey     = "advisory_lock_key"
	LoggingMigrationAppliedKey = "migrations_applied"
	LoggingCompletedCountKey   = "completed_count"
	LoggingCutoffKey           = "cutoff"
)
