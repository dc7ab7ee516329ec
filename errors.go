package mdguide

import (
	"errors"

	"github.com/alnah/go-mdguide/internal/assets"
	"github.com/alnah/go-mdguide/internal/docpath"
)

// Sentinel errors for library operations.
var (
	// Path resolution errors, shared with internal/docpath so callers can
	// classify with errors.Is on either.
	ErrInvalidPath      = docpath.ErrInvalidPath
	ErrDocumentNotFound = docpath.ErrDocumentNotFound
	ErrAssetNotFound    = docpath.ErrAssetNotFound

	ErrReadFailure   = errors.New("failed to read document")
	ErrRenderFailure = errors.New("document rendering failed")
	ErrPoolClosed    = errors.New("read pool is closed")

	// Construction errors.
	ErrInvalidGuideRoot = errors.New("invalid guide root")
	ErrInvalidAssetPath = errors.New("invalid asset path")
	ErrStyleNotFound    = assets.ErrStyleNotFound

	// PDF export errors.
	ErrPDFGeneration      = errors.New("PDF generation failed")
	ErrBrowserConnect     = errors.New("failed to connect to browser")
	ErrPageCreate         = errors.New("failed to create browser page")
	ErrPageLoad           = errors.New("failed to load page")
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")
)
