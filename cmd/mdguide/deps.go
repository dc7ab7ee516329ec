package main

import (
	"context"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/alnah/go-mdguide"
	"github.com/alnah/go-mdguide/internal/logging"
)

// Exporter is the PDF export surface used by the export command.
type Exporter interface {
	Export(ctx context.Context, page *mdguide.Page, settings *mdguide.PageSettings) ([]byte, error)
	Close() error
}

// Compile-time interface implementation check.
var _ Exporter = (*mdguide.PDFExporter)(nil)

// Dependencies holds injectable dependencies for testability.
type Dependencies struct {
	Now         func() time.Time
	Stdout      io.Writer
	Stderr      io.Writer
	NewLogger   func(level, format string) (*zap.Logger, error)
	NewExporter func(svc *mdguide.Service, timeout time.Duration) Exporter
}

// DefaultDeps returns production dependencies.
func DefaultDeps() *Dependencies {
	return &Dependencies{
		Now:       time.Now,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		NewLogger: logging.New,
		NewExporter: func(svc *mdguide.Service, timeout time.Duration) Exporter {
			return mdguide.NewPDFExporter(svc, timeout)
		},
	}
}
