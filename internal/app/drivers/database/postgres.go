package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"
	"tutorat-service/internal/app/config"
	"tutorat-service/internal/pkg/constvars"

	_ "github.com/lib/pq"
)

func NewPostgresDB(driverConfig *config.DriverConfig) *sql.DB {
	connectionString := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		driverConfig.Postgres.Host,
		driverConfig.Postgres.Port,
		driverConfig.Postgres.Username,
		driverConfig.Postgres.Password,
		driverConfig.Postgres.DbName,
		driverConfig.Postgres.SSLMode,
	)

	db, err := sql.Open(constvars.AppPostgresDriverName, connectionString)
	if err != nil {
		log.Fatalf("Failed to open postgres database connection: %s", err.Error())
	}

	db.SetMaxOpenConns(driverConfig.Postgres.MaxOpenConnections)
	db.SetMaxIdleConns(driverConfig.Postgres.MaxIdleConnections)
	db.SetConnMaxLifetime(time.Duration(driverConfig.Postgres.ConnMaxLifetimeInMinutes) * time.Minute)

	err = db.Ping()
	if err != nil {
		log.Fatalf("Failed to connect to postgres database: %s", err.Error())
	}

	log.Println("Successfully connected to postgres database")

	return db
}
