package main

import (
	"context"
	"fmt"
	"net"

	"go.uber.org/zap"

	"github.com/alnah/go-mdguide/internal/config"
	"github.com/alnah/go-mdguide/internal/health"
	"github.com/alnah/go-mdguide/internal/server"
)

// runServe runs the guide HTTP server until ctx is canceled.
func runServe(ctx context.Context, args []string, deps *Dependencies) error {
	flags, fs, err := parseServeFlags(args, deps.Stderr)
	if err != nil {
		return err
	}

	env := loadEnvConfig()
	warnUnknownEnvVars(deps.Stderr)

	cfg, err := loadSettings(fs, &flags.common, env)
	if err != nil {
		return err
	}
	if fs.Changed("addr") {
		cfg.Server.Addr = flags.addr
	}

	logger, err := newLogger(deps, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	svc, err := newService(cfg, logger)
	if err != nil {
		return err
	}
	defer svc.Close()

	ln, err := net.Listen("tcp", cfg.Server.Addr)
	if err != nil {
		return fmt.Errorf("%w on %s: %w", ErrListen, cfg.Server.Addr, err)
	}

	checker := health.NewChecker(cfg.Docs.Root, health.Application{Name: appName, Version: Version})
	srv := server.New(svc, checker, logger)

	logger.Info("starting guide server",
		zap.String("version", Version),
		zap.String("docs_root", cfg.Docs.Root),
		zap.Int("workers", svc.Workers()))

	return srv.Serve(ctx, ln, server.Config{
		Addr:            cfg.Server.Addr,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
}

// newLogger builds the command logger from config.
func newLogger(deps *Dependencies, cfg *config.Config) (*zap.Logger, error) {
	if deps.NewLogger == nil {
		return zap.NewNop(), nil
	}
	return deps.NewLogger(cfg.Log.Level, cfg.Log.Format)
}
