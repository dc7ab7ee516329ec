package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-mdguide/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxPathLength        = 4096 // PATH_MAX on Linux
	MaxAddrLength        = 255  // host:port
	MaxGuideRootLength   = 255  // URL prefix
	MaxNameLength        = 100  // style or highlight theme name
	MaxPageSizeLength    = 10   // "letter", "a4", "legal"
	MaxOrientationLength = 10   // "portrait", "landscape"
	MaxWorkers           = 64
)

// Log levels and formats accepted by the logging package.
var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"json", "console"}
)

// Config holds all configuration for the guide server and CLI.
type Config struct {
	Server  ServerConfig `yaml:"server"`
	Docs    DocsConfig   `yaml:"docs"`
	Assets  AssetsConfig `yaml:"assets"`
	Cache   CacheConfig  `yaml:"cache"`
	Log     LogConfig    `yaml:"log"`
	Page    PageConfig   `yaml:"page"`
	Workers int          `yaml:"workers"` // Read pool size (0 = auto)
}

// ServerConfig defines HTTP listener options.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"readTimeout"`
	WriteTimeout    time.Duration `yaml:"writeTimeout"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
}

// DocsConfig defines where documents come from and where they are served.
type DocsConfig struct {
	Root      string `yaml:"root"`      // Directory of markdown files
	GuideRoot string `yaml:"guideRoot"` // URL prefix, e.g. "/guide"
}

// AssetsConfig defines page styling options.
type AssetsConfig struct {
	BasePath  string `yaml:"basePath"`  // Empty = use embedded assets
	Style     string `yaml:"style"`     // Stylesheet name
	Highlight string `yaml:"highlight"` // Chroma theme for code blocks
}

// CacheConfig defines HTTP caching for assets.
type CacheConfig struct {
	MaxAge time.Duration `yaml:"maxAge"`
}

// LogConfig defines logger options.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// PageConfig defines PDF export page settings.
type PageConfig struct {
	Size        string  `yaml:"size"`        // "letter", "a4", "legal"
	Orientation string  `yaml:"orientation"` // "portrait", "landscape"
	Margin      float64 `yaml:"margin"`      // inches
}

// Validate checks field lengths and enumerations.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("server.addr", c.Server.Addr, MaxAddrLength); err != nil {
		return err
	}
	if err := validateNonNegative("server.readTimeout", c.Server.ReadTimeout); err != nil {
		return err
	}
	if err := validateNonNegative("server.writeTimeout", c.Server.WriteTimeout); err != nil {
		return err
	}
	if err := validateNonNegative("server.shutdownTimeout", c.Server.ShutdownTimeout); err != nil {
		return err
	}

	if err := validateFieldLength("docs.root", c.Docs.Root, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("docs.guideRoot", c.Docs.GuideRoot, MaxGuideRootLength); err != nil {
		return err
	}
	if err := validateGuideRoot(c.Docs.GuideRoot); err != nil {
		return err
	}

	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.style", c.Assets.Style, MaxNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.highlight", c.Assets.Highlight, MaxNameLength); err != nil {
		return err
	}

	if err := validateNonNegative("cache.maxAge", c.Cache.MaxAge); err != nil {
		return err
	}

	if err := validateOneOf("log.level", c.Log.Level, validLogLevels); err != nil {
		return err
	}
	if err := validateOneOf("log.format", c.Log.Format, validLogFormats); err != nil {
		return err
	}

	if err := validateFieldLength("page.size", c.Page.Size, MaxPageSizeLength); err != nil {
		return err
	}
	if err := validateFieldLength("page.orientation", c.Page.Orientation, MaxOrientationLength); err != nil {
		return err
	}

	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Workers)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

func validateNonNegative(fieldName string, d time.Duration) error {
	if d < 0 {
		return fmt.Errorf("%w: %s must not be negative, got %s", ErrInvalidValue, fieldName, d)
	}
	return nil
}

// validateOneOf accepts empty (meaning default) or one of allowed, case-insensitive.
func validateOneOf(fieldName, value string, allowed []string) error {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return nil
		}
	}
	return fmt.Errorf("%w: %s %q (must be one of %s)", ErrInvalidValue, fieldName, value, strings.Join(allowed, ", "))
}

// validateGuideRoot requires a leading "/" and forbids a trailing one.
// Empty and "/" both mean the site root.
func validateGuideRoot(root string) error {
	if root == "" || root == "/" {
		return nil
	}
	if !strings.HasPrefix(root, "/") {
		return fmt.Errorf("%w: docs.guideRoot %q must start with /", ErrInvalidValue, root)
	}
	if strings.HasSuffix(root, "/") {
		return fmt.Errorf("%w: docs.guideRoot %q must not end with /", ErrInvalidValue, root)
	}
	if strings.ContainsAny(root, "{}?# ") {
		return fmt.Errorf("%w: docs.guideRoot %q contains reserved characters", ErrInvalidValue, root)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":8000",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Docs: DocsConfig{
			Root:      "docs",
			GuideRoot: "/guide",
		},
		Assets: AssetsConfig{
			Style:     "default",
			Highlight: "github",
		},
		Cache: CacheConfig{MaxAge: time.Hour},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Page: PageConfig{
			Size:        "a4",
			Orientation: "portrait",
			Margin:      0.5,
		},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields absent from the file (or set to their zero value) take their
// DefaultConfig values.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults fills zero-valued fields from DefaultConfig.
// Workers stays 0 (auto) when unset.
func (c *Config) applyDefaults() {
	d := DefaultConfig()

	orDefault(&c.Server.Addr, d.Server.Addr)
	orDefault(&c.Server.ReadTimeout, d.Server.ReadTimeout)
	orDefault(&c.Server.WriteTimeout, d.Server.WriteTimeout)
	orDefault(&c.Server.ShutdownTimeout, d.Server.ShutdownTimeout)
	orDefault(&c.Docs.Root, d.Docs.Root)
	orDefault(&c.Docs.GuideRoot, d.Docs.GuideRoot)
	orDefault(&c.Assets.Style, d.Assets.Style)
	orDefault(&c.Assets.Highlight, d.Assets.Highlight)
	orDefault(&c.Cache.MaxAge, d.Cache.MaxAge)
	orDefault(&c.Log.Level, d.Log.Level)
	orDefault(&c.Log.Format, d.Log.Format)
	orDefault(&c.Page.Size, d.Page.Size)
	orDefault(&c.Page.Orientation, d.Page.Orientation)
	orDefault(&c.Page.Margin, d.Page.Margin)
}

func orDefault[T comparable](v *T, def T) {
	var zero T
	if *v == zero {
		*v = def
	}
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-mdguide/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-mdguide", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
