// Package storagetest поднимает SQLite в памяти для тестов репозиториев
package storagetest

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/barbercloud/barbercloud/internal/infra/storage"
	"github.com/barbercloud/barbercloud/pkg/psqlbuilder"
)

// NewSQLite открывает пустую базу в памяти с примененной схемой
// Одно соединение: у каждого соединения :memory: своя база
func NewSQLite(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, storage.ApplySchema(context.Background(), db, psqlbuilder.DriverSQLite))
	return db
}
