package docpath

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdguide/internal/fileutil"
)

// IndexPath is the logical path served for an empty document request.
const IndexPath = "index"

// AssetsDir is the subdirectory of the docs root holding static assets.
const AssetsDir = "assets"

// forbiddenChars cannot appear anywhere in a document or asset path.
const forbiddenChars = "<>|:*?"

// ValidateDocument sanitizes a raw document path relative to root.
// Empty input (or input made only of slashes) yields IndexPath.
// Returns ErrInvalidPath for traversal sequences, forbidden characters,
// or a path whose resolved form (symlinks followed) leaves root.
func ValidateDocument(root, raw string) (string, error) {
	clean := strings.Trim(raw, "/")
	if clean == "" {
		return IndexPath, nil
	}

	if err := checkSyntax(clean); err != nil {
		return "", fmt.Errorf("%w: %v in %q", ErrInvalidPath, err, raw)
	}

	realRoot, err := fileutil.ResolvePath(root)
	if err != nil {
		return "", fmt.Errorf("%w: cannot resolve root: %v", ErrInvalidPath, err)
	}
	target, err := fileutil.ResolvePath(filepath.Join(root, filepath.FromSlash(clean)))
	if err != nil {
		return "", fmt.Errorf("%w: cannot resolve %q", ErrInvalidPath, raw)
	}
	if !fileutil.IsWithin(target, realRoot) {
		return "", fmt.Errorf("%w: %q escapes docs directory", ErrInvalidPath, raw)
	}

	return clean, nil
}

// ValidateAsset sanitizes a raw asset path. Unlike documents, an empty
// asset path is an error.
func ValidateAsset(raw string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("%w: asset path cannot be empty", ErrInvalidPath)
	}

	clean := strings.Trim(raw, "/")
	if clean == "" {
		return "", fmt.Errorf("%w: asset path cannot be empty", ErrInvalidPath)
	}
	if err := checkSyntax(clean); err != nil {
		return "", fmt.Errorf("%w: %v in asset path %q", ErrInvalidPath, err, raw)
	}

	return clean, nil
}

// AssetFile joins a validated asset path onto <root>/assets and verifies the
// result stays inside that directory, before and after following symlinks.
func AssetFile(root, clean string) (string, error) {
	absAssets, err := filepath.Abs(filepath.Join(root, AssetsDir))
	if err != nil {
		return "", fmt.Errorf("%w: cannot resolve assets directory: %v", ErrInvalidPath, err)
	}

	target := filepath.Join(absAssets, filepath.FromSlash(clean))
	if !fileutil.IsWithin(target, absAssets) || target == absAssets {
		return "", fmt.Errorf("%w: %q escapes assets directory", ErrInvalidPath, clean)
	}

	realAssets, err := fileutil.ResolvePath(absAssets)
	if err != nil {
		return "", fmt.Errorf("%w: cannot resolve assets directory: %v", ErrInvalidPath, err)
	}
	realTarget, err := fileutil.ResolvePath(target)
	if err != nil {
		return "", fmt.Errorf("%w: cannot resolve %q", ErrInvalidPath, clean)
	}
	if !fileutil.IsWithin(realTarget, realAssets) {
		return "", fmt.Errorf("%w: %q links outside assets directory", ErrInvalidPath, clean)
	}
	return target, nil
}

// checkSyntax rejects ".." anywhere and any forbidden character.
func checkSyntax(p string) error {
	if strings.Contains(p, "..") {
		return fmt.Errorf("traversal sequence")
	}
	if i := strings.IndexAny(p, forbiddenChars); i >= 0 {
		return fmt.Errorf("forbidden character %q", p[i])
	}
	return nil
}
