// Package storage схема БД и общие помощники репозиториев
package storage

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/barbercloud/barbercloud/pkg/dbmetrics"
	"github.com/barbercloud/barbercloud/pkg/psqlbuilder"
)

//go:embed migrations/*.sql
var migrations embed.FS

var ErrMigrate = errors.New("storage: failed to apply schema")

// ApplySchema создает таблицы, если их еще нет
// Скрипт идемпотентен, выполняется при старте при database.auto_migrate = true
func ApplySchema(ctx context.Context, db dbmetrics.DBExecutor, driver string) error {
	name := "migrations/postgres.sql"
	if driver == psqlbuilder.DriverSQLite {
		name = "migrations/sqlite.sql"
	}

	script, err := migrations.ReadFile(name)
	if err != nil {
		return fmt.Errorf("%w: read %s: %v", ErrMigrate, name, err)
	}

	for _, stmt := range strings.Split(string(script), ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%w: %v", ErrMigrate, err)
		}
	}
	return nil
}
