package migrate

import (
	"context"
	"fmt"

	"github.com/angelmondragon/salesdash-backend/pkg/config"
	"github.com/angelmondragon/salesdash-backend/pkg/db"
	"github.com/angelmondragon/salesdash-backend/pkg/logger"
)

// MaybeRunDev applies pending migrations at API startup, only in dev and only
// when SALESDASH_AUTO_MIGRATE is set. Other environments run cmd/migrate.
func MaybeRunDev(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if !cfg.App.IsDev() || !cfg.FeatureFlags.AutoMigrate {
		return nil
	}

	sqlDB, err := client.SQL()
	if err != nil {
		return fmt.Errorf("extracting sql.DB: %w", err)
	}

	applied, err := Up(ctx, sqlDB, DefaultDir)
	if err != nil {
		return err
	}

	logg.Info(logg.WithFields(ctx, map[string]any{
		"dir":     DefaultDir,
		"applied": applied,
	}), "reporting schema migrated")
	return nil
}
