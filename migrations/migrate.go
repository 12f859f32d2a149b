package migrations

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"github.com/pressly/goose/v3"
)

// Команды Apply.
const (
	CommandUp     = "up"
	CommandDown   = "down"
	CommandStatus = "status"
)

// Commands — допустимые значения command.
var Commands = []string{CommandUp, CommandDown, CommandStatus}

// Apply — up / down / status над встроенными миграциями. Итог печатается в out.
func Apply(ctx context.Context, db *sql.DB, command string, out io.Writer) error {
	switch command {
	case CommandUp, CommandDown, CommandStatus:
	default:
		return fmt.Errorf("unknown migrate command %q", command)
	}

	p, err := goose.NewProvider(goose.DialectPostgres, db, FS)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}

	switch command {
	case CommandUp:
		res, err := p.Up(ctx)
		for _, r := range res {
			fmt.Fprintf(out, "OK   %s (%s)\n", r.Source.Path, r.Duration)
		}
		if err != nil {
			return fmt.Errorf("goose up: %w", err)
		}
		if len(res) == 0 {
			fmt.Fprintln(out, "no migrations to apply")
		}
	case CommandDown:
		r, err := p.Down(ctx)
		if err != nil {
			return fmt.Errorf("goose down: %w", err)
		}
		fmt.Fprintf(out, "DOWN %s (%s)\n", r.Source.Path, r.Duration)
	case CommandStatus:
		st, err := p.Status(ctx)
		if err != nil {
			return fmt.Errorf("goose status: %w", err)
		}
		for _, s := range st {
			applied := "pending"
			if s.State == goose.StateApplied {
				applied = s.AppliedAt.Format("2006-01-02 15:04:05")
			}
			fmt.Fprintf(out, "%-20s %s\n", applied, s.Source.Path)
		}
	}
	return nil
}
