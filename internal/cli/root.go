// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements hazardctl, the headless front-end over the same
// services the terminal UI uses.
//
// Every command that touches records names the route it belongs to. The
// credentials passed with --username and --password are checked on each
// invocation and the session gate decides whether the command may run;
// nothing is remembered between invocations.
package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/MKhiriev/hazard-keeper/internal/config"
	"github.com/MKhiriev/hazard-keeper/internal/logger"
	"github.com/MKhiriev/hazard-keeper/internal/service"
	"github.com/MKhiriev/hazard-keeper/internal/session"
	"github.com/MKhiriev/hazard-keeper/internal/store"
	"github.com/MKhiriev/hazard-keeper/models"
)

// routeAnnotation marks a command with the session route it needs.
const routeAnnotation = "route"

// OpenFunc builds the services for cfg. The returned closer releases the
// storage backend.
type OpenFunc func(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*service.ClientServices, io.Closer, error)

type Options struct {
	BuildInfo models.AppBuildInfo

	// Open defaults to OpenStorage.
	Open OpenFunc

	// Logger defaults to a client logger writing to the configured log file.
	Logger *logger.Logger
}

// OpenStorage connects the configured storage backend and builds the
// services over it.
func OpenStorage(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*service.ClientServices, io.Closer, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, nil, fmt.Errorf("open storage: %w", err)
	}

	services, err := service.NewClientServices(storages, *cfg, log)
	if err != nil {
		_ = storages.Close()
		return nil, nil, fmt.Errorf("create services: %w", err)
	}
	return services, storages, nil
}

type app struct {
	opts Options
	gate *session.Gate

	flags    config.StructuredConfig
	username string
	password string

	cfg      *config.StructuredConfig
	services *service.ClientServices
	closer   io.Closer
	session  models.Session
	logger   *logger.Logger
}

// Execute runs hazardctl with args and releases the storage afterwards.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer, opts Options) error {
	if opts.Open == nil {
		opts.Open = OpenStorage
	}

	a := &app{opts: opts, gate: session.NewGate()}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if a.closer != nil {
		if closeErr := a.closer.Close(); closeErr != nil && a.logger != nil {
			a.logger.Err(closeErr).Msg("error closing storage")
		}
	}
	return err
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:               "hazardctl",
		Short:             "Manage hazard-keeper records from the command line",
		Version:           a.opts.BuildInfo.String(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	a.bindFlags(root.PersistentFlags())

	root.AddCommand(a.importCmd())
	root.AddCommand(a.exportCmd())
	root.AddCommand(a.hazardsCmd())
	root.AddCommand(a.personnelCmd())
	root.AddCommand(a.usersCmd())
	root.AddCommand(a.watchCmd())

	return root
}

func (a *app) bindFlags(f *pflag.FlagSet) {
	f.StringVarP(&a.flags.FilePath, "config", "c", "", "Config file path (JSON or YAML)")
	f.StringVar(&a.flags.Storage.Driver, "driver", "", "Storage driver: sqlite, postgres, redis, file or memory")
	f.StringVarP(&a.flags.Storage.DSN, "dsn", "d", "", "Database DSN")
	f.StringVar(&a.flags.Storage.RedisURL, "redis-url", "", "Redis URL")
	f.StringVar(&a.flags.Storage.FilePath, "file", "", "Storage file path for the file driver")
	f.StringVar(&a.flags.App.PasswordHashing, "password-hashing", "", "Password hashing: plain or bcrypt")
	f.StringVar(&a.flags.Import.EmptyKeyPolicy, "empty-key-policy", "", "Rows without key: merge, distinct or reject")
	f.StringVar(&a.flags.Import.WatchDir, "watch-dir", "", "Import drop directory")
	f.DurationVar(&a.flags.Import.Debounce, "debounce", 0, "Import watcher debounce (e.g. 500ms)")
	f.StringVar(&a.flags.Log.File, "log-file", "", "Log file path")
	f.StringVar(&a.flags.Log.Level, "log-level", "", "Log level")
	f.StringVarP(&a.username, "username", "u", "", "Username")
	f.StringVarP(&a.password, "password", "p", "", "Password")
}

// guarded marks cmd as belonging to route.
func guarded(cmd *cobra.Command, route session.Route) *cobra.Command {
	if cmd.Annotations == nil {
		cmd.Annotations = map[string]string{}
	}
	cmd.Annotations[routeAnnotation] = string(route)
	return cmd
}

// setup loads the configuration, opens the storage and authorizes the
// command. Commands without a route annotation only print help.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	route, ok := cmd.Annotations[routeAnnotation]
	if !ok {
		return nil
	}
	ctx := cmd.Context()

	cfg, err := config.Load(&a.flags)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.logger = a.opts.Logger
	if a.logger == nil {
		a.logger = logger.NewClientLogger("hazardctl", cfg.Log.File, cfg.Log.Level)
	}

	services, closer, err := a.opts.Open(ctx, cfg, a.logger)
	if err != nil {
		return err
	}
	a.services = services
	a.closer = closer

	if err = services.Bootstrap(ctx); err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}

	return a.authorize(ctx, session.Route(route))
}

func (a *app) authorize(ctx context.Context, route session.Route) error {
	if a.username == "" {
		return ErrNotAuthenticated
	}

	role, err := a.services.AuthService.Authenticate(ctx, a.username, a.password)
	if err != nil {
		return err
	}
	a.session = models.Session{LoggedIn: true, Role: role}

	if granted := a.gate.Check(a.session, route); granted != route {
		return fmt.Errorf("%w: %s requires an administrator", ErrForbidden, route)
	}

	a.logger.Debug().Str("username", a.username).Str("route", string(route)).Msg("command authorized")
	return nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return id, nil
}
