package database

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"

	"compass-quiz/internal/config"
	"compass-quiz/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:embed migrations
var migrationsFS embed.FS

// Direction selects which migration files run.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// Migrate applies the embedded migrations for driver. Postgres and SQLite go
// through golang-migrate; Oracle, which golang-migrate has no driver for, uses
// a statement runner that tracks the applied version in schema_migrations.
// The caller keeps ownership of db.
func Migrate(db *sqlx.DB, driver string, direction Direction) error {
	switch driver {
	case config.DriverPostgres, config.DriverSQLite:
		return migrateWithGolangMigrate(db, driver, direction)
	case config.DriverOracle:
		return migrateOracle(db, direction)
	default:
		return fmt.Errorf("no migrations for driver %q", driver)
	}
}

func migrateWithGolangMigrate(db *sqlx.DB, driver string, direction Direction) error {
	src, err := iofs.New(migrationsFS, "migrations/"+driver)
	if err != nil {
		return fmt.Errorf("failed to open embedded migrations: %w", err)
	}
	defer src.Close()

	var target migratedb.Driver
	switch driver {
	case config.DriverPostgres:
		target, err = postgres.WithInstance(db.DB, &postgres.Config{})
	default:
		target, err = sqlite.WithInstance(db.DB, &sqlite.Config{})
	}
	if err != nil {
		return fmt.Errorf("failed to create %s migration driver: %w", driver, err)
	}

	m, err := migrate.NewWithInstance("iofs", src, driver, target)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if direction == Down {
		err = m.Down()
	} else {
		err = m.Up()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run %s migrations: %w", direction, err)
	}

	version, dirty, verr := m.Version()
	if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read migration version: %w", verr)
	}
	logger.Get().Info("Migrations completed",
		zap.String("driver", driver),
		zap.String("direction", string(direction)),
		zap.Uint("version", version),
		zap.Bool("dirty", dirty))
	return nil
}

type migrationFile struct {
	version uint64
	name    string
}

// migrationFiles lists dir's files for direction, ordered for execution.
func migrationFiles(fsys fs.FS, dir string, direction Direction) ([]migrationFile, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("could not read migrations directory: %w", err)
	}
	suffix := "." + string(direction) + ".sql"
	var files []migrationFile
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, suffix) {
			continue
		}
		prefix, _, ok := strings.Cut(name, "_")
		if !ok {
			return nil, fmt.Errorf("migration %s has no version prefix", name)
		}
		version, err := strconv.ParseUint(prefix, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("migration %s has an invalid version: %w", name, err)
		}
		files = append(files, migrationFile{version: version, name: name})
	}
	sort.Slice(files, func(i, j int) bool {
		if direction == Down {
			return files[i].version > files[j].version
		}
		return files[i].version < files[j].version
	})
	return files, nil
}

// splitStatements splits a script on semicolons that end a line. Oracle
// executes one statement per call and rejects the trailing semicolon.
func splitStatements(script string) []string {
	var statements []string
	var current strings.Builder
	for _, line := range strings.Split(script, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		if strings.HasSuffix(trimmed, ";") {
			current.WriteString(strings.TrimSuffix(trimmed, ";"))
			statements = append(statements, current.String())
			current.Reset()
			continue
		}
		current.WriteString(trimmed)
		current.WriteString("\n")
	}
	if rest := strings.TrimSpace(current.String()); rest != "" {
		statements = append(statements, rest)
	}
	return statements
}

func migrateOracle(db *sqlx.DB, direction Direction) error {
	current, err := oracleVersion(db)
	if err != nil {
		return err
	}
	files, err := migrationFiles(migrationsFS, "migrations/oracle", direction)
	if err != nil {
		return err
	}

	for _, file := range files {
		if direction == Up && file.version <= current {
			continue
		}
		if direction == Down && file.version > current {
			continue
		}
		content, err := fs.ReadFile(migrationsFS, "migrations/oracle/"+file.name)
		if err != nil {
			return fmt.Errorf("could not read migration file %s: %w", file.name, err)
		}
		for _, statement := range splitStatements(string(content)) {
			if _, err := db.Exec(statement); err != nil {
				return fmt.Errorf("could not execute migration %s: %w", file.name, err)
			}
		}

		next := file.version
		if direction == Down {
			next = file.version - 1
		}
		if err := setOracleVersion(db, next); err != nil {
			return err
		}
		current = next
		logger.Get().Info("Executed migration", zap.String("file", file.name))
	}

	logger.Get().Info("Migrations completed",
		zap.String("driver", config.DriverOracle),
		zap.String("direction", string(direction)),
		zap.Uint64("version", current))
	return nil
}

func oracleVersion(db *sqlx.DB) (uint64, error) {
	var tables int
	if err := db.Get(&tables, "SELECT COUNT(*) FROM user_tables WHERE table_name = 'SCHEMA_MIGRATIONS'"); err != nil {
		return 0, fmt.Errorf("failed to look up schema_migrations: %w", err)
	}
	if tables == 0 {
		if _, err := db.Exec("CREATE TABLE schema_migrations (version NUMBER(19) NOT NULL, dirty NUMBER(1) NOT NULL)"); err != nil {
			return 0, fmt.Errorf("failed to create schema_migrations: %w", err)
		}
		return 0, nil
	}
	var versions []uint64
	if err := db.Select(&versions, "SELECT version FROM schema_migrations"); err != nil {
		return 0, fmt.Errorf("failed to read schema_migrations: %w", err)
	}
	if len(versions) == 0 {
		return 0, nil
	}
	return versions[0], nil
}

func setOracleVersion(db *sqlx.DB, version uint64) error {
	if _, err := db.Exec("DELETE FROM schema_migrations"); err != nil {
		return fmt.Errorf("failed to reset schema_migrations: %w", err)
	}
	if version == 0 {
		return nil
	}
	if _, err := db.Exec(db.Rebind("INSERT INTO schema_migrations (version, dirty) VALUES (?, 0)"), version); err != nil {
		return fmt.Errorf("failed to record migration version: %w", err)
	}
	return nil
}
