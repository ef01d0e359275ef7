// Package exporter copies the run history database to a standalone file.
package exporter

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ExportDatabase writes a consistent snapshot of the database behind conn to
// dstPath. An existing file at dstPath is never overwritten.
func ExportDatabase(ctx context.Context, conn *sql.DB, dstPath string) error {
	if _, err := os.Stat(dstPath); err == nil {
		return fmt.Errorf("destination already exists: %s", dstPath)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat destination: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(dstPath), 0o755); err != nil {
		return fmt.Errorf("create dst dir: %w", err)
	}
	if _, err := conn.ExecContext(ctx, "VACUUM INTO ?", dstPath); err != nil {
		return fmt.Errorf("export database: %w", err)
	}
	return nil
}
