package db

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/convertly/convertly-api/internal/logger"
)

//go:embed migrations/*.up.sql
var migrationFiles embed.FS

// EnsureSchema applies every up migration in file name order. The
// statements use IF NOT EXISTS, so running it against an existing schema
// is a no-op.
func EnsureSchema(ctx context.Context, conn DBTX) error {
	names, err := fs.Glob(migrationFiles, "migrations/*.up.sql")
	if err != nil {
		return fmt.Errorf("failed to list migrations: %w", err)
	}
	sort.Strings(names)

	for _, name := range names {
		body, err := migrationFiles.ReadFile(name)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", name, err)
		}
		for _, stmt := range splitStatements(string(body)) {
			if _, err := conn.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("failed to apply migration %s: %w", name, err)
			}
		}
		logger.Log.Debug("Applied migration", zap.String("file", name))
	}
	return nil
}

// splitStatements breaks a migration on semicolons. The migrations hold no
// function bodies or string literals containing ';'.
func splitStatements(sql string) []string {
	var out []string
	for _, part := range strings.Split(sql, ";") {
		if stmt := strings.TrimSpace(part); stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}
