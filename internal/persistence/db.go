// Package persistence wires database handles to the bun dialect matching the
// configured driver. The module never opens connections itself; hosts hand in
// the *sql.DB they manage.
package persistence

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

var ErrDriverUnknown = errors.New("persistence: unsupported database driver")

// New wraps the supplied handle with the bun dialect for the driver.
// Supported drivers: "sqlite" (default) and "postgres".
func New(sqlDB *sql.DB, driver string) (*bun.DB, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "", "sqlite", "sqlite3":
		return bun.NewDB(sqlDB, sqlitedialect.New()), nil
	case "postgres", "pg", "postgresql":
		return bun.NewDB(sqlDB, pgdialect.New()), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrDriverUnknown, driver)
	}
}
