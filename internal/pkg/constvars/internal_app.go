package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_API_KEY_AUTH_KEY         ContextKey = "api_key_auth"
)

const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)

const (
	LoggerEncodingJSON    = "json"
	LoggerEncodingConsole = "console"
)

const (
	AppComponentHTTP      = "http"
	AppComponentNotifier  = "notifier"
	AppComponentMigration = "migration"
)

const (
	AppServiceName           = "tutorat-service"
	AppDefaultTimezone       = "America/Toronto"
	AppDateFormat            = "2006-01-02"
	AppClockFormat           = "15:04"
	AppPostgresDriverName    = "postgres"
	AppMigrationTableName    = "schema_migrations"
	AppControllerTimeout     = 10
	AppNotificationQueueType = "booking_confirmation"
)
