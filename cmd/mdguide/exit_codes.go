package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/alnah/go-mdguide"
	"github.com/alnah/go-mdguide/internal/assets"
	"github.com/alnah/go-mdguide/internal/config"
	"github.com/alnah/go-mdguide/internal/fileutil"
	"github.com/alnah/go-mdguide/internal/hints"
	"github.com/alnah/go-mdguide/internal/logging"
	"github.com/alnah/go-mdguide/internal/pipeline"
)

// Exit codes for mdguide CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful command
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // Document not found, permission denied, listen failure
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, mdguide.ErrBrowserConnect) ||
		errors.Is(err, mdguide.ErrPageCreate) ||
		errors.Is(err, mdguide.ErrPageLoad) ||
		errors.Is(err, mdguide.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, mdguide.ErrDocumentNotFound) ||
		errors.Is(err, mdguide.ErrAssetNotFound) ||
		errors.Is(err, mdguide.ErrReadFailure) ||
		errors.Is(err, ErrWritePDF) ||
		errors.Is(err, ErrListen) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, logging.ErrInvalidLevel) ||
		errors.Is(err, logging.ErrInvalidFormat) ||
		errors.Is(err, mdguide.ErrInvalidPath) ||
		errors.Is(err, mdguide.ErrInvalidGuideRoot) ||
		errors.Is(err, mdguide.ErrInvalidAssetPath) ||
		errors.Is(err, mdguide.ErrStyleNotFound) ||
		errors.Is(err, mdguide.ErrInvalidPageSize) ||
		errors.Is(err, mdguide.ErrInvalidOrientation) ||
		errors.Is(err, mdguide.ErrInvalidMargin) ||
		errors.Is(err, pipeline.ErrUnknownHighlightStyle) {
		return ExitUsage
	}

	return ExitGeneral
}

// hintFor returns an actionable hint for common failures, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, mdguide.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, mdguide.ErrPageLoad), errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(nil)
	case errors.Is(err, mdguide.ErrStyleNotFound):
		return hints.ForStyleNotFound(assets.StyleNames())
	case errors.Is(err, syscall.EADDRINUSE):
		return hints.ForAddrInUse()
	case errors.Is(err, ErrWritePDF):
		return hints.ForOutputDirectory()
	}
	return ""
}

// documentHint explains a missing document: either the docs root itself is
// missing or neither candidate file exists.
func documentHint(err error, docsRoot, docPath string) error {
	if !errors.Is(err, mdguide.ErrDocumentNotFound) {
		return err
	}
	if !fileutil.IsDir(docsRoot) {
		return fmt.Errorf("%w%s", err, hints.ForDocsRoot(docsRoot))
	}
	p := strings.Trim(docPath, "/")
	if p == "" {
		p = "index"
	}
	return fmt.Errorf("%w%s", err, hints.ForDocumentNotFound(p))
}
