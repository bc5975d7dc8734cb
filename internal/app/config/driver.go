package config

type (
	DriverConfig struct {
		Postgres Postgres
		Redis    Redis
		RabbitMQ RabbitMQ
		SMTP     SMTP
	}
	Postgres struct {
		Host                     string
		Port                     string
		DbName                   string
		Username                 string
		Password                 string
		SSLMode                  string
		MaxOpenConnections       int
		MaxIdleConnections       int
		ConnMaxLifetimeInMinutes int
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	SMTP struct {
		Host        string
		Port        int
		Username    string
		Password    string
		EmailSender string
	}
)
