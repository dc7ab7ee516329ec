package docpath

import "errors"

// Sentinel errors for path resolution.
var (
	// ErrInvalidPath indicates a traversal sequence, a forbidden character,
	// an empty asset path, or a path resolving outside the root.
	ErrInvalidPath = errors.New("invalid path")

	// ErrDocumentNotFound indicates no candidate file exists for a document path.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrAssetNotFound indicates the asset file does not exist.
	ErrAssetNotFound = errors.New("asset not found")
)
