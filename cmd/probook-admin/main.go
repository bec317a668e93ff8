// Command probook-admin bundles operational tasks: running migrations,
// seeding development data, and resetting a local database.
package main

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/probook/probook-api/config"
	"github.com/probook/probook-api/internal/bootstrap"
	"github.com/probook/probook-api/internal/devseed"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type commandFn func(ctx *commandContext, args []string) error

type command struct {
	name        string
	description string
	run         commandFn
}

type commandContext struct {
	Ctx    context.Context
	Logger *slog.Logger
	Config config.AppConfig
}

const defaultMigrationTimeout = 5 * time.Minute

func main() {
	logger := bootstrap.InitLogger()

	if len(os.Args) < 2 {
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when no command is provided
	}

	cmdName := os.Args[1]
	cmd, ok := commands()[cmdName]
	if !ok {
		if err := writef(os.Stderr, "unknown command %q\n\n", cmdName); err != nil {
			logger.Error("print unknown command message failed", "error", err)
		}
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when command is unknown
	}

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		logger.ErrorContext(context.Background(), "load config", "error", err)
		os.Exit(1) //nolint:forbidigo // CLI must signal configuration load failure to shell scripts
	}

	cmdCtx := &commandContext{
		Ctx:    context.Background(),
		Logger: logger,
		Config: cfg,
	}
	if runErr := cmd.run(cmdCtx, os.Args[2:]); runErr != nil {
		logger.ErrorContext(cmdCtx.Ctx, "command failed", "command", cmdName, "error", runErr)
		os.Exit(1) //nolint:forbidigo // CLI must propagate command execution failure to callers
	}
}

func commands() map[string]command {
	return map[string]command{
		"migrate": {
			name:        "migrate",
			description: "Run database migrations",
			run:         runMigrateCommand,
		},
		"db-seed": {
			name:        "db-seed",
			description: "Run database migrations and seed development data",
			run:         runDBSeed,
		},
		"db-reset": {
			name:        "db-reset",
			description: "Drop the database schema, run migrations, and optionally seed data",
			run:         runDBReset,
		},
	}
}

func printUsage() error {
	if err := writef(os.Stdout, "Usage: probook-admin <command> [flags]\n\n"); err != nil {
		return err
	}
	if err := writef(os.Stdout, "Available commands:\n"); err != nil {
		return err
	}

	cmds := commands()
	names := make([]string, 0, len(cmds))
	for name := range cmds {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := writef(os.Stdout, "  %-10s %s\n", name, cmds[name].description); err != nil {
			return err
		}
	}
	return nil
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

type migrateOptions struct {
	Timeout time.Duration
}

func parseMigrateFlags(name string, args []string) (migrateOptions, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	timeout := fs.Duration("timeout", defaultMigrationTimeout, "maximum time to wait for migrations")
	if err := fs.Parse(args); err != nil {
		return migrateOptions{}, err
	}
	return migrateOptions{Timeout: *timeout}, nil
}

// withDatabase connects, runs fn under a signal-aware timeout context, and
// closes the connection.
func withDatabase(
	cmdCtx *commandContext,
	timeout time.Duration,
	fn func(context.Context, *sql.DB) error,
) error {
	ctx, stop := signal.NotifyContext(cmdCtx.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	db, err := bootstrap.ConnectDB(bootstrap.DatabaseConfig{
		DBConfig: cmdCtx.Config.Postgres,
		Logger:   cmdCtx.Logger,
	})
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			cmdCtx.Logger.Warn("db close failed", "error", closeErr)
		}
	}()

	return fn(ctx, db)
}

func runMigrateCommand(cmdCtx *commandContext, args []string) error {
	opts, err := parseMigrateFlags("migrate", args)
	if err != nil {
		return err
	}

	return withDatabase(cmdCtx, opts.Timeout, func(ctx context.Context, db *sql.DB) error {
		cmdCtx.Logger.Info("running database migrations")
		if migrateErr := bootstrap.RunMigrations(ctx, db, cmdCtx.Logger); migrateErr != nil {
			return fmt.Errorf("run migrations: %w", migrateErr)
		}
		cmdCtx.Logger.Info("migrations completed successfully")
		return nil
	})
}

func runDBSeed(cmdCtx *commandContext, args []string) error {
	opts, err := parseMigrateFlags("db-seed", args)
	if err != nil {
		return err
	}

	return withDatabase(cmdCtx, opts.Timeout, func(ctx context.Context, db *sql.DB) error {
		if migrateErr := bootstrap.RunMigrations(ctx, db, cmdCtx.Logger); migrateErr != nil {
			return fmt.Errorf("run migrations: %w", migrateErr)
		}
		return devseed.Run(ctx, db, cmdCtx.Logger)
	})
}

type dbResetOptions struct {
	Timeout     time.Duration
	Yes         bool
	Seed        bool
	AllowRemote bool
}

func parseDBResetFlags(args []string) (dbResetOptions, error) {
	fs := flag.NewFlagSet("db-reset", flag.ContinueOnError)
	timeout := fs.Duration("timeout", defaultMigrationTimeout, "maximum time to wait for the reset")
	yes := fs.Bool("yes", false, "skip the confirmation prompt")
	seed := fs.Bool("seed", false, "seed development data after migrating")
	allowRemote := fs.Bool("allow-remote", false, "permit resetting a non-local database host")
	if err := fs.Parse(args); err != nil {
		return dbResetOptions{}, err
	}
	return dbResetOptions{
		Timeout:     *timeout,
		Yes:         *yes,
		Seed:        *seed,
		AllowRemote: *allowRemote,
	}, nil
}

func runDBReset(cmdCtx *commandContext, args []string) error {
	opts, err := parseDBResetFlags(args)
	if err != nil {
		return err
	}

	if !isLocalHost(cmdCtx.Config.Postgres.Host) && !opts.AllowRemote {
		return fmt.Errorf(
			"refusing to reset remote host %q without --allow-remote",
			cmdCtx.Config.Postgres.Host,
		)
	}

	target := fmt.Sprintf(
		"database %q on %s:%d",
		cmdCtx.Config.Postgres.Name,
		cmdCtx.Config.Postgres.Host,
		cmdCtx.Config.Postgres.Port,
	)
	if confirmErr := confirmAction(opts.Yes, target); confirmErr != nil {
		return confirmErr
	}

	return withDatabase(cmdCtx, opts.Timeout, func(ctx context.Context, db *sql.DB) error {
		cmdCtx.Logger.Info("dropping public schema", "database", cmdCtx.Config.Postgres.Name)
		if _, execErr := db.ExecContext(ctx,
			`DROP SCHEMA public CASCADE; CREATE SCHEMA public`); execErr != nil {
			return fmt.Errorf("reset schema: %w", execErr)
		}

		if migrateErr := bootstrap.RunMigrations(ctx, db, cmdCtx.Logger); migrateErr != nil {
			return fmt.Errorf("run migrations: %w", migrateErr)
		}

		if opts.Seed {
			return devseed.Run(ctx, db, cmdCtx.Logger)
		}
		return nil
	})
}

// isLocalHost reports whether host refers to the local machine.
func isLocalHost(host string) bool {
	switch strings.ToLower(strings.TrimSpace(host)) {
	case "localhost", "127.0.0.1", "::1", "":
		return true
	}
	if ip := net.ParseIP(host); ip != nil {
		return ip.IsLoopback()
	}
	return false
}

func confirmAction(yes bool, target string) error {
	if yes {
		return nil
	}

	if err := writef(os.Stdout, "About to reset %s. Type 'yes' to continue: ", target); err != nil {
		return err
	}

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read confirmation: %w", err)
	}

	if strings.TrimSpace(line) != "yes" {
		return errors.New("aborted")
	}
	return nil
}
