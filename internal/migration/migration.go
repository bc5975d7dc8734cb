package migration

import (
	"database/sql"
	"embed"
	"tutorat-service/internal/pkg/constvars"

	migrate "github.com/rubenv/sql-migrate"
	"go.uber.org/zap"
)

//go:embed sql/*.sql
var migrationFiles embed.FS

// Source returns the embedded schema migrations in apply order.
func Source() migrate.MigrationSource {
	return &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrationFiles,
		Root:       "sql",
	}
}

func Up(db *sql.DB, logger *zap.Logger) (int, error) {
	return run(db, logger, migrate.Up, 0)
}

// Down reverts at most steps migrations, all of them when steps is 0.
func Down(db *sql.DB, logger *zap.Logger, steps int) (int, error) {
	return run(db, logger, migrate.Down, steps)
}

func run(db *sql.DB, logger *zap.Logger, direction migrate.MigrationDirection, max int) (int, error) {
	migrate.SetTable(constvars.AppMigrationTableName)

	n, err := migrate.ExecMax(db, constvars.AppPostgresDriverName, Source(), direction, max)
	if err != nil {
		logger.Error("migration.run error executing migrations", zap.Error(err))
		return n, err
	}

	logger.Info("migration.run succeeded", zap.Int(constvars.LoggingMigrationAppliedKey, n))
	return n, nil
}
