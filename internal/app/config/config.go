package config

import (
	"tutorat-service/internal/pkg/constvars"
	"tutorat-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Postgres: Postgres{
			Host:                     utils.GetEnvString("POSTGRES_HOST", "localhost"),
			Port:                     utils.GetEnvString("POSTGRES_PORT", "5432"),
			DbName:                   utils.GetEnvString("POSTGRES_DB_NAME", "tutorat"),
			Username:                 utils.GetEnvString("POSTGRES_USERNAME", "postgres"),
			Password:                 utils.GetEnvString("POSTGRES_PASSWORD", "postgres"),
			SSLMode:                  utils.GetEnvString("POSTGRES_SSL_MODE", "disable"),
			MaxOpenConnections:       utils.GetEnvInt("POSTGRES_MAX_OPEN_CONNECTIONS", 20),
			MaxIdleConnections:       utils.GetEnvInt("POSTGRES_MAX_IDLE_CONNECTIONS", 5),
			ConnMaxLifetimeInMinutes: utils.GetEnvInt("POSTGRES_CONN_MAX_LIFETIME_IN_MINUTES", 30),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		SMTP: SMTP{
			Host:        utils.GetEnvString("SMTP_HOST", "localhost"),
			Port:        utils.GetEnvInt("SMTP_PORT", 2525),
			Username:    utils.GetEnvString("SMTP_USERNAME", ""),
			Password:    utils.GetEnvString("SMTP_PASSWORD", ""),
			EmailSender: utils.GetEnvString("SMTP_EMAIL_SENDER", ""),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                          utils.GetEnvString("APP_ENV", constvars.EnvironmentDevelopment),
			Port:                         utils.GetEnvString("APP_PORT", "8080"),
			Version:                      utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                     utils.GetEnvString("APP_TIMEZONE", constvars.AppDefaultTimezone),
			EndpointPrefix:               utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			FrontendDomain:               utils.GetEnvString("APP_FRONTEND_DOMAIN", "*"),
			MaxRequests:                  utils.GetEnvInt("APP_MAX_REQUEST", 60),
			MaxTimeRequestsPerSeconds:    utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			ShutdownTimeoutInSeconds:     utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInMegabyte:   utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 1),
			SuperadminAPIKey:             utils.GetEnvString("APP_SUPERADMIN_API_KEY", ""),
			NotificationEnabled:          utils.GetEnvBool("APP_NOTIFICATION_ENABLED", true),
			NotificationTimeoutInSeconds: utils.GetEnvInt("APP_NOTIFICATION_TIMEOUT_IN_SECONDS", 3),
		},
		Logging: AppLogging{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			Encoding:            utils.GetEnvString("LOGGER_ENCODING", constvars.LoggerEncodingJSON),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		Booking: AppBooking{
			BufferMinutes:             utils.GetEnvInt("BOOKING_BUFFER_MINUTES", constvars.BookingBufferMinutes),
			DayLockEnabled:            utils.GetEnvBool("BOOKING_DAY_LOCK_ENABLED", true),
			DayLockTTLInSeconds:       utils.GetEnvInt("BOOKING_DAY_LOCK_TTL_IN_SECONDS", 10),
			DayLockWaitInMilliseconds: utils.GetEnvInt("BOOKING_DAY_LOCK_WAIT_IN_MILLISECONDS", 2000),
			AutoCompleteCronSpec:      utils.GetEnvString("BOOKING_AUTO_COMPLETE_CRON_SPEC", "*/15 * * * *"),
		},
		Mailer: AppMailer{
			EmailSender:    utils.GetEnvString("APP_MAILER_EMAIL_SENDER", ""),
			AdminEmail:     utils.GetEnvString("APP_MAILER_ADMIN_EMAIL", ""),
			SendsPerSecond: utils.GetEnvInt("APP_MAILER_SENDS_PER_SECOND", constvars.MailerDefaultSendsPerSecond),
			PrefetchCount:  utils.GetEnvInt("APP_MAILER_PREFETCH_COUNT", constvars.MailerDefaultPrefetchCount),
		},
		RabbitMQ: AppRabbitMQ{
			MailerQueue: utils.GetEnvString("APP_RABBITMQ_MAILER_QUEUE", "tutorat_mailer"),
		},
	}
}
