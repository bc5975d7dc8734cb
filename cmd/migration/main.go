package main

import (
	"flag"
	"log"
	"tutorat-service/internal/app/config"
	"tutorat-service/internal/app/drivers/database"
	"tutorat-service/internal/app/drivers/logger"
	"tutorat-service/internal/migration"
	"tutorat-service/internal/pkg/constvars"
)

func main() {
	down := flag.Bool("down", false, "revert migrations instead of applying them")
	steps := flag.Int("steps", 0, "number of migrations to revert with -down, 0 reverts all")
	flag.Parse()

	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger := logger.NewZapLogger(internalConfig, constvars.AppComponentMigration)
	defer logger.Sync()

	db := database.NewPostgresDB(driverConfig)
	defer db.Close()

	var (
		n   int
		err error
	)
	if *down {
		n, err = migration.Down(db, logger, *steps)
	} else {
		n, err = migration.Up(db, logger)
	}
	if err != nil {
		log.Fatalf("Error executing migration: %v", err)
	}

	log.Printf("Applied %d migrations!\n", n)
}
