package itemstore

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/goliatone/go-richtext/items"
)

// Migrate creates the content item table when it does not exist yet.
func Migrate(ctx context.Context, db *bun.DB) error {
	if _, err := db.NewCreateTable().
		Model((*items.ContentItem)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return fmt.Errorf("itemstore migrate: %w", err)
	}
	return nil
}
