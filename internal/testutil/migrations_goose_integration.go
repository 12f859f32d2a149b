//go:build integration

package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"github.com/Gunvolt24/foodcart/migrations"
	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver name = "pgx"
)

// ApplyMigrations — накатывает встроенные миграции (схема и каталог) на тестовую БД.
func ApplyMigrations(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	return migrations.Apply(ctx, db, migrations.CommandUp, io.Discard)
}
