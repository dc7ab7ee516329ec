package docpath

import (
	"path/filepath"

	"github.com/alnah/go-mdguide/internal/fileutil"
)

// Candidates lists the files a validated document path may live in,
// in lookup order.
func Candidates(root, p string) []string {
	native := filepath.FromSlash(p)
	return []string{
		filepath.Join(root, native+".md"),
		filepath.Join(root, native, "index.md"),
	}
}

// Existing returns the candidates that are regular files, in lookup order.
// A candidate whose symlinks lead outside root is skipped. An empty result
// means the document does not exist.
func Existing(root, p string) []string {
	realRoot, err := fileutil.ResolvePath(root)
	if err != nil {
		return nil
	}

	var found []string
	for _, c := range Candidates(root, p) {
		if !fileutil.IsRegularFile(c) {
			continue
		}
		if resolved, err := fileutil.ResolvePath(c); err != nil || !fileutil.IsWithin(resolved, realRoot) {
			continue
		}
		found = append(found, c)
	}
	return found
}
