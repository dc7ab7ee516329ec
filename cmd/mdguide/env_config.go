package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-mdguide/internal/config"
)

// envPrefix marks the variables read by loadEnvConfig.
const envPrefix = "MDGUIDE_"

// envConfig holds configuration from environment variables.
// Provides container-friendly overrides without requiring YAML files.
type envConfig struct {
	// Tier 1 - Essential
	ConfigPath string // MDGUIDE_CONFIG: config file path
	Addr       string // MDGUIDE_ADDR: listen address
	DocsRoot   string // MDGUIDE_DOCS_ROOT: documentation directory
	GuideRoot  string // MDGUIDE_GUIDE_ROOT: URL prefix

	// Tier 2 - Presentation and logging
	Style     string // MDGUIDE_STYLE: stylesheet name
	Highlight string // MDGUIDE_HIGHLIGHT: code highlight theme
	LogLevel  string // MDGUIDE_LOG_LEVEL: debug, info, warn, error
	LogFormat string // MDGUIDE_LOG_FORMAT: json, console

	// Tier 3 - Extended
	Workers  int           // MDGUIDE_WORKERS: read pool size
	Timeout  time.Duration // MDGUIDE_TIMEOUT: PDF export timeout
	PageSize string        // MDGUIDE_PAGE_SIZE: a4, letter, legal
}

// knownEnvVars lists valid MDGUIDE_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	// Tier 1 - Essential
	"MDGUIDE_CONFIG":     true,
	"MDGUIDE_ADDR":       true,
	"MDGUIDE_DOCS_ROOT":  true,
	"MDGUIDE_GUIDE_ROOT": true,
	// Tier 2 - Presentation and logging
	"MDGUIDE_STYLE":      true,
	"MDGUIDE_HIGHLIGHT":  true,
	"MDGUIDE_LOG_LEVEL":  true,
	"MDGUIDE_LOG_FORMAT": true,
	// Tier 3 - Extended
	"MDGUIDE_WORKERS":   true,
	"MDGUIDE_TIMEOUT":   true,
	"MDGUIDE_PAGE_SIZE": true,
}

// loadEnvConfig reads configuration from environment variables.
// Returns a struct with all recognized MDGUIDE_* values.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		// Tier 1
		ConfigPath: os.Getenv("MDGUIDE_CONFIG"),
		Addr:       os.Getenv("MDGUIDE_ADDR"),
		DocsRoot:   os.Getenv("MDGUIDE_DOCS_ROOT"),
		GuideRoot:  os.Getenv("MDGUIDE_GUIDE_ROOT"),
		// Tier 2
		Style:     os.Getenv("MDGUIDE_STYLE"),
		Highlight: os.Getenv("MDGUIDE_HIGHLIGHT"),
		LogLevel:  os.Getenv("MDGUIDE_LOG_LEVEL"),
		LogFormat: os.Getenv("MDGUIDE_LOG_FORMAT"),
		// Tier 3
		PageSize: os.Getenv("MDGUIDE_PAGE_SIZE"),
	}

	// Parse duration for timeout
	if timeout := os.Getenv("MDGUIDE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	// Parse int for workers
	if workers := os.Getenv("MDGUIDE_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MDGUIDE_* variables.
// Helps catch typos like MDGUIDE_DOC_ROOT instead of MDGUIDE_DOCS_ROOT.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Set variables override the config file; flags are applied later via
// mergeFlags, giving: CLI flags > env vars > config file > defaults.
// MDGUIDE_TIMEOUT is handled by resolveTimeout.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	// Tier 1
	setIf(&cfg.Server.Addr, env.Addr)
	setIf(&cfg.Docs.Root, env.DocsRoot)
	setIf(&cfg.Docs.GuideRoot, env.GuideRoot)

	// Tier 2
	setIf(&cfg.Assets.Style, env.Style)
	setIf(&cfg.Assets.Highlight, env.Highlight)
	setIf(&cfg.Log.Level, env.LogLevel)
	setIf(&cfg.Log.Format, env.LogFormat)

	// Tier 3
	if env.Workers > 0 {
		cfg.Workers = env.Workers
	}
	setIf(&cfg.Page.Size, env.PageSize)
}

func setIf(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
