package db

import (
	"fmt"

	"github.com/quillworks/quill/internal/models"
)

// Migrate creates or updates the schema for all entities. Foreign-key
// delete policies (cascade for author/post references, set-null for
// the optional group reference) are declared on the models and end up
// enforced by the database, not by application code.
func (d *DB) Migrate() error {
	if err := d.DB.AutoMigrate(
		&models.User{},
		&models.Group{},
		&models.Post{},
		&models.Comment{},
		&models.Follow{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
