package config

type InternalConfig struct {
	App      App         `mapstructure:"app"`
	Logging  AppLogging  `mapstructure:"logging"`
	Booking  AppBooking  `mapstructure:"booking"`
	Mailer   AppMailer   `mapstructure:"mailer"`
	RabbitMQ AppRabbitMQ `mapstructure:"rabbitmq"`
}

type App struct {
	Env                          string `mapstructure:"env"`
	Port                         string `mapstructure:"port"`
	Version                      string `mapstructure:"version"`
	Timezone                     string `mapstructure:"timezone"`
	EndpointPrefix               string `mapstructure:"endpoint_prefix"`
	FrontendDomain               string `mapstructure:"frontend_domain"`
	MaxRequests                  int    `mapstructure:"max_requests"`
	MaxTimeRequestsPerSeconds    int    `mapstructure:"max_time_requests_per_seconds"`
	ShutdownTimeoutInSeconds     int    `mapstructure:"shutdown_timeout_in_seconds"`
	RequestBodyLimitInMegabyte   int    `mapstructure:"request_body_limit_in_megabyte"`
	SuperadminAPIKey             string `mapstructure:"superadmin_api_key"`
	NotificationEnabled          bool   `mapstructure:"notification_enabled"`
	NotificationTimeoutInSeconds int    `mapstructure:"notification_timeout_in_seconds"`
}

type AppLogging struct {
	Level string `mapstructure:"level"`
	// Encoding is json or console.
	Encoding            string `mapstructure:"encoding"`
	OutputFileName      string `mapstructure:"output_file_name"`
	OutputErrorFileName string `mapstructure:"output_error_file_name"`
}

type AppBooking struct {
	BufferMinutes int `mapstructure:"buffer_minutes"`
	// DayLockEnabled guards check-and-insert with a redis lock ahead of the database lock.
	DayLockEnabled            bool `mapstructure:"day_lock_enabled"`
	DayLockTTLInSeconds       int  `mapstructure:"day_lock_ttl_in_seconds"`
	DayLockWaitInMilliseconds int  `mapstructure:"day_lock_wait_in_milliseconds"`
	// AutoCompleteCronSpec schedules the sweep of ended bookings, empty disables it.
	AutoCompleteCronSpec string `mapstructure:"auto_complete_cron_spec"`
}

type AppMailer struct {
	EmailSender    string `mapstructure:"email_sender"`
	AdminEmail     string `mapstructure:"admin_email"`
	SendsPerSecond int    `mapstructure:"sends_per_second"`
	PrefetchCount  int    `mapstructure:"prefetch_count"`
}

type AppRabbitMQ struct {
	MailerQueue string `mapstructure:"mailer_queue"`
}
