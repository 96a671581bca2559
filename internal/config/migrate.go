package config

import (
	"fmt"
	"io/fs"
	"log"
	"sort"

	"github.com/jmoiron/sqlx"

	"trip-album/migrations"
)

// RunMigrations applies the embedded SQL files in filename order. Every
// statement is idempotent (IF NOT EXISTS), so re-running at startup is safe.
func RunMigrations(db *sqlx.DB) error {
	entries, err := fs.Glob(migrations.FS, "*.sql")
	if err != nil {
		return err
	}
	sort.Strings(entries)

	for _, name := range entries {
		script, err := fs.ReadFile(migrations.FS, name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}
		if _, err := db.Exec(string(script)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}
		log.Printf("Applied migration %s", name)
	}

	return nil
}
