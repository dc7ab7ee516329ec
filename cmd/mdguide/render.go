package main

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

// themeAuto picks dark or light from the terminal background.
const themeAuto = "auto"

// runRender prints one rendered document to stdout: the full HTML page, or
// with --terminal the link-rewritten markdown styled for the terminal.
func runRender(ctx context.Context, args []string, deps *Dependencies) error {
	flags, fs, err := parseRenderFlags(args, deps.Stderr)
	if err != nil {
		return err
	}

	env := loadEnvConfig()
	warnUnknownEnvVars(deps.Stderr)

	cfg, err := loadSettings(fs, &flags.common, env)
	if err != nil {
		return err
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

	path := positionalPath(fs)

	if !flags.terminal {
		page, err := svc.Document(ctx, path)
		if err != nil {
			return documentHint(err, cfg.Docs.Root, path)
		}
		_, err = io.WriteString(deps.Stdout, page.HTML)
		return err
	}

	src, err := svc.Source(ctx, path)
	if err != nil {
		return documentHint(err, cfg.Docs.Root, path)
	}
	out, err := renderTerminal(src.Markdown, flags.theme, flags.width)
	if err != nil {
		return err
	}
	_, err = io.WriteString(deps.Stdout, out)
	return err
}

// renderTerminal styles markdown with glamour.
func renderTerminal(markdown, theme string, width int) (string, error) {
	if width <= 0 {
		return "", fmt.Errorf("%w: width must be positive, got %d", ErrUsage, width)
	}

	style := glamour.WithAutoStyle()
	if theme != "" && theme != themeAuto {
		style = glamour.WithStandardStyle(theme)
	}

	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("%w: terminal theme %q: %v", ErrUsage, theme, err)
	}
	return r.Render(markdown)
}
