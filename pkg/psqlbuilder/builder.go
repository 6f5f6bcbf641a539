// Package psqlbuilder предоставляет squirrel-билдеры с плейсхолдерами нужного диалекта
package psqlbuilder

import "github.com/Masterminds/squirrel"

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// For возвращает билдер для указанного драйвера
// PostgreSQL использует $1, $2, ..., SQLite - ?
func For(driver string) squirrel.StatementBuilderType {
	if driver == DriverSQLite {
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
	}
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
