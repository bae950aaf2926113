package migrate

import (
	"fmt"

	"github.com/pressly/goose/v3"
)

// CreateSQLMigration scaffolds a timestamped SQL migration in dir.
func CreateSQLMigration(dir, name string) error {
	if dir == "" {
		return fmt.Errorf("dir is required")
	}
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if err := goose.Create(nil, dir, name, "sql"); err != nil {
		return fmt.Errorf("goose create: %w", err)
	}
	return nil
}
