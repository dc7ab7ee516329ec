package main

import (
	"fmt"
	"time"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/alnah/go-mdguide"
	"github.com/alnah/go-mdguide/internal/config"
)

// loadSettings resolves the effective configuration for a command.
// Precedence: CLI flags > env vars > config file > defaults.
func loadSettings(fs *flag.FlagSet, f *commonFlags, env *envConfig) (*config.Config, error) {
	cfg := config.DefaultConfig()

	configPath := f.config
	if configPath == "" {
		configPath = env.ConfigPath
	}
	if configPath != "" {
		var err error
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(env, cfg)
	mergeFlags(fs, f, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeFlags copies explicitly set flags into cfg.
func mergeFlags(fs *flag.FlagSet, f *commonFlags, cfg *config.Config) {
	if fs.Changed("docs") {
		cfg.Docs.Root = f.docsRoot
	}
	if fs.Changed("guide-root") {
		cfg.Docs.GuideRoot = f.guideRoot
	}
	if fs.Changed("style") {
		cfg.Assets.Style = f.style
	}
	if fs.Changed("highlight") {
		cfg.Assets.Highlight = f.highlight
	}
	if fs.Changed("asset-path") {
		cfg.Assets.BasePath = f.assetPath
	}
	if fs.Changed("workers") {
		cfg.Workers = f.workers
	}
	if fs.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if fs.Changed("log-format") {
		cfg.Log.Format = f.logFormat
	}
}

// mergePageFlags copies explicitly set page flags into cfg.
func mergePageFlags(fs *flag.FlagSet, f *pageFlags, cfg *config.Config) {
	if fs.Changed("page-size") {
		cfg.Page.Size = f.size
	}
	if fs.Changed("orientation") {
		cfg.Page.Orientation = f.orientation
	}
	if fs.Changed("margin") {
		cfg.Page.Margin = f.margin
	}
}

// newService builds a Service from the resolved configuration.
func newService(cfg *config.Config, logger *zap.Logger) (*mdguide.Service, error) {
	opts := []mdguide.Option{
		mdguide.WithGuideRoot(cfg.Docs.GuideRoot),
		mdguide.WithStyle(cfg.Assets.Style),
		mdguide.WithHighlightStyle(cfg.Assets.Highlight),
		mdguide.WithWorkers(cfg.Workers),
		mdguide.WithCacheMaxAge(cfg.Cache.MaxAge),
		mdguide.WithLogger(logger),
	}
	if cfg.Assets.BasePath != "" {
		opts = append(opts, mdguide.WithAssetPath(cfg.Assets.BasePath))
	}
	return mdguide.New(cfg.Docs.Root, opts...)
}

// buildPageSettings converts config page options and validates them.
func buildPageSettings(cfg *config.Config) (*mdguide.PageSettings, error) {
	ps := &mdguide.PageSettings{
		Size:        cfg.Page.Size,
		Orientation: cfg.Page.Orientation,
		Margin:      cfg.Page.Margin,
	}
	if err := ps.Validate(); err != nil {
		return nil, err
	}
	return ps, nil
}

// resolveTimeout picks the export timeout: flag, then env, then default.
func resolveTimeout(fs *flag.FlagSet, flagTimeout time.Duration, env *envConfig) (time.Duration, error) {
	if fs.Changed("timeout") {
		if flagTimeout <= 0 {
			return 0, fmt.Errorf("%w: timeout must be positive, got %s", ErrUsage, flagTimeout)
		}
		return flagTimeout, nil
	}
	if env.Timeout > 0 {
		return env.Timeout, nil
	}
	return mdguide.DefaultExportTimeout, nil
}
