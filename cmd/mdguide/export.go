package main

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// runExport renders one document and writes it as a PDF.
func runExport(ctx context.Context, args []string, deps *Dependencies) error {
	flags, fs, err := parseExportFlags(args, deps.Stderr)
	if err != nil {
		return err
	}

	env := loadEnvConfig()
	warnUnknownEnvVars(deps.Stderr)

	cfg, err := loadSettings(fs, &flags.common, env)
	if err != nil {
		return err
	}
	mergePageFlags(fs, &flags.page, cfg)

	settings, err := buildPageSettings(cfg)
	if err != nil {
		return err
	}
	timeout, err := resolveTimeout(fs, flags.timeout, env)
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

	docPath := positionalPath(fs)
	page, err := svc.Document(ctx, docPath)
	if err != nil {
		return documentHint(err, cfg.Docs.Root, docPath)
	}

	exporter := deps.NewExporter(svc, timeout)
	defer exporter.Close()

	pdf, err := exporter.Export(ctx, page, settings)
	if err != nil {
		return err
	}

	out := flags.output
	if out == "" {
		out = defaultOutputPath(docPath)
	}
	if err := writePDF(out, pdf); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Created %s\n", out)
	return nil
}

// defaultOutputPath names the PDF after the last path segment.
func defaultOutputPath(docPath string) string {
	name := path.Base(strings.Trim(docPath, "/"))
	if name == "." || name == "/" || name == "" {
		name = "index"
	}
	return strings.TrimSuffix(name, ".md") + ".pdf"
}

// writePDF writes data to out, creating parent directories.
func writePDF(out string, data []byte) error {
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, dirPermissions); err != nil {
			return fmt.Errorf("%w: %v", ErrWritePDF, err)
		}
	}
	if err := os.WriteFile(out, data, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWritePDF, err)
	}
	return nil
}
