package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/angelmondragon/salesdash-backend/pkg/config"
	"github.com/angelmondragon/salesdash-backend/pkg/db"
	"github.com/angelmondragon/salesdash-backend/pkg/logger"
	"github.com/angelmondragon/salesdash-backend/pkg/migrate"
	"github.com/joho/godotenv"
)

type options struct {
	cmd     string
	dir     string
	name    string
	version string
}

func main() {
	logg := logger.New(logger.Options{ServiceName: "migrate"})
	_ = godotenv.Load()

	var opts options
	flag.StringVar(&opts.cmd, "cmd", "up", "migration command: up|down|status|version|create|validate")
	flag.StringVar(&opts.dir, "dir", migrate.DefaultDir, "goose migrations directory")
	flag.StringVar(&opts.name, "name", "", "migration name (for create)")
	flag.StringVar(&opts.version, "version", "", "target version (YYYYMMDDHHMMSS) for -cmd=version")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// create and validate only touch files, so they run without config.
	switch opts.cmd {
	case "create":
		exitOn(ctx, logg, "create migration", createMigration(opts))
		return
	case "validate":
		exitOn(ctx, logg, "validate migrations", migrate.ValidateDir(opts.dir))
		fmt.Println("migration validation passed")
		return
	}

	cfg, err := config.Load()
	exitOn(ctx, logg, "load config", err)

	logg = logger.New(logger.Options{
		ServiceName: "migrate",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})
	ctx = logg.WithFields(ctx, map[string]any{
		"env": cfg.App.Env,
		"cmd": opts.cmd,
		"dir": opts.dir,
	})

	dbClient, err := db.New(ctx, cfg.DB, logg)
	exitOn(ctx, logg, "connect database", err)
	defer dbClient.Close()

	err = runDatabaseCommand(ctx, logg, dbClient, opts)
	if err != nil {
		_ = dbClient.Close()
	}
	exitOn(ctx, logg, "goose "+opts.cmd, err)
}

func createMigration(opts options) error {
	if opts.name == "" {
		return fmt.Errorf("missing -name for create")
	}
	path, err := migrate.CreateSQLMigration(opts.dir, opts.name)
	if err != nil {
		return err
	}
	fmt.Println("created migration:", path)
	return nil
}

func runDatabaseCommand(ctx context.Context, logg *logger.Logger, client *db.Client, opts options) error {
	sqlDB, err := client.SQL()
	if err != nil {
		return err
	}

	switch opts.cmd {
	case "up":
		applied, err := migrate.Up(ctx, sqlDB, opts.dir)
		if err != nil {
			return err
		}
		logg.Info(logg.WithField(ctx, "applied", applied), "migrations applied")
	case "down":
		version, err := migrate.Down(ctx, sqlDB, opts.dir)
		if err != nil {
			return err
		}
		logg.Info(logg.WithField(ctx, "rolled_back", version), "migration rolled back")
	case "status":
		statuses, err := migrate.Status(ctx, sqlDB, opts.dir)
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "VERSION\tSTATE\tAPPLIED AT\tFILE")
		for _, st := range statuses {
			applied := "-"
			if !st.AppliedAt.IsZero() {
				applied = st.AppliedAt.UTC().Format("2006-01-02 15:04:05")
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", st.Source.Version, st.State, applied, st.Source.Path)
		}
		return tw.Flush()
	case "version":
		if opts.version == "" {
			return fmt.Errorf("missing -version for version command")
		}
		return migrate.MigrateToVersion(ctx, sqlDB, opts.dir, opts.version)
	default:
		return fmt.Errorf("unknown -cmd value %q", opts.cmd)
	}
	return nil
}

func exitOn(ctx context.Context, logg *logger.Logger, step string, err error) {
	if err == nil {
		return
	}
	logg.Error(ctx, step+" failed", err)
	os.Exit(1)
}
