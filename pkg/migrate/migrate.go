package migrate

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strconv"

	"github.com/pressly/goose/v3"
)

// DefaultDir holds the reporting schema, relative to the repository root.
const DefaultDir = "pkg/migrate/migrations"

func newProvider(db *sql.DB, dir string) (*goose.Provider, error) {
	if db == nil {
		return nil, fmt.Errorf("db is required")
	}
	if dir == "" {
		return nil, fmt.Errorf("dir is required")
	}
	provider, err := goose.NewProvider(goose.DialectPostgres, db, os.DirFS(dir))
	if err != nil {
		return nil, fmt.Errorf("goose provider for %q: %w", dir, err)
	}
	return provider, nil
}

// Up applies every pending migration and returns the versions it applied.
func Up(ctx context.Context, db *sql.DB, dir string) ([]int64, error) {
	provider, err := newProvider(db, dir)
	if err != nil {
		return nil, err
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("goose up: %w", err)
	}
	return appliedVersions(results), nil
}

// Down rolls back the latest applied migration.
func Down(ctx context.Context, db *sql.DB, dir string) (int64, error) {
	provider, err := newProvider(db, dir)
	if err != nil {
		return 0, err
	}
	result, err := provider.Down(ctx)
	if err != nil {
		return 0, fmt.Errorf("goose down: %w", err)
	}
	if result == nil || result.Source == nil {
		return 0, nil
	}
	return result.Source.Version, nil
}

// Status reports every known migration with its applied state.
func Status(ctx context.Context, db *sql.DB, dir string) ([]*goose.MigrationStatus, error) {
	provider, err := newProvider(db, dir)
	if err != nil {
		return nil, err
	}
	statuses, err := provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("goose status: %w", err)
	}
	return statuses, nil
}

// MigrateToVersion moves the schema up or down until targetVersion
// (YYYYMMDDHHMMSS) is the latest applied migration.
func MigrateToVersion(ctx context.Context, db *sql.DB, dir string, targetVersion string) error {
	target, err := strconv.ParseInt(targetVersion, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid version %q (expected YYYYMMDDHHMMSS): %w", targetVersion, err)
	}
	provider, err := newProvider(db, dir)
	if err != nil {
		return err
	}
	current, err := provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("get db version: %w", err)
	}

	switch {
	case current < target:
		_, err = provider.UpTo(ctx, target)
	case current > target:
		_, err = provider.DownTo(ctx, target)
	}
	if err != nil {
		return fmt.Errorf("goose migrate %d -> %d: %w", current, target, err)
	}
	return nil
}

func appliedVersions(results []*goose.MigrationResult) []int64 {
	versions := make([]int64, 0, len(results))
	for _, res := range results {
		if res == nil || res.Source == nil {
			continue
		}
		versions = append(versions, res.Source.Version)
	}
	return versions
}
