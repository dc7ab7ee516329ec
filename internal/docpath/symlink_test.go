//go:build !windows

package docpath

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// linkedRoot builds a docs root holding symlinks that lead outside it:
// a directory link (outside/), a file link (leak.md) and an asset
// directory link (assets/ext/).
func linkedRoot(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	outside := t.TempDir()
	mustWrite(t, filepath.Join(outside, "secret.md"), "# TopSecret")
	mustWrite(t, filepath.Join(outside, "key.png"), "png")
	mustWrite(t, filepath.Join(root, "inside.md"), "# Inside")
	mustWrite(t, filepath.Join(root, "assets", "logo.png"), "png")

	links := map[string]string{
		filepath.Join(root, "outside"):         outside,
		filepath.Join(root, "leak.md"):         filepath.Join(outside, "secret.md"),
		filepath.Join(root, "assets", "ext"):   outside,
		filepath.Join(root, "alias.md"):        filepath.Join(root, "inside.md"),
		filepath.Join(root, "assets", "alias"): filepath.Join(root, "assets"),
	}
	for link, target := range links {
		if err := os.Symlink(target, link); err != nil {
			t.Fatalf("symlink %s: %v", link, err)
		}
	}
	return root
}

func TestValidateDocument_Symlinks(t *testing.T) {
	t.Parallel()

	root := linkedRoot(t)

	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{name: "directory link escaping root", raw: "outside/secret", wantErr: ErrInvalidPath},
		{name: "directory link itself", raw: "outside", wantErr: ErrInvalidPath},
		{name: "plain document", raw: "inside"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ValidateDocument(root, tt.raw)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("ValidateDocument(%q) unexpected error: %v", tt.raw, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateDocument(%q) error = %v, want %v", tt.raw, err, tt.wantErr)
			}
		})
	}
}

func TestExisting_Symlinks(t *testing.T) {
	t.Parallel()

	root := linkedRoot(t)

	tests := []struct {
		name string
		path string
		want []string
	}{
		{name: "file link escaping root skipped", path: "leak", want: nil},
		{name: "file link inside root kept", path: "alias", want: []string{filepath.Join(root, "alias.md")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tt.want, Existing(root, tt.path)); diff != "" {
				t.Errorf("Existing(%q) mismatch (-want +got):\n%s", tt.path, diff)
			}
		})
	}
}

func TestAssetFile_Symlinks(t *testing.T) {
	t.Parallel()

	root := linkedRoot(t)

	tests := []struct {
		name    string
		clean   string
		wantErr error
	}{
		{name: "link escaping assets", clean: "ext/key.png", wantErr: ErrInvalidPath},
		{name: "link inside assets", clean: "alias/logo.png"},
		{name: "missing file under escaping link", clean: "ext/none.png", wantErr: ErrInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := AssetFile(root, tt.clean)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("AssetFile(%q) unexpected error: %v", tt.clean, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("AssetFile(%q) error = %v, want %v", tt.clean, err, tt.wantErr)
			}
		})
	}
}
