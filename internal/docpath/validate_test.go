package docpath

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateDocument(t *testing.T) {
	t.Parallel()

	root := t.TempDir()

	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{name: "empty is index", raw: "", want: IndexPath},
		{name: "only slashes is index", raw: "///", want: IndexPath},
		{name: "simple", raw: "setup", want: "setup"},
		{name: "nested", raw: "guide/setup", want: "guide/setup"},
		{name: "slashes trimmed", raw: "/guide/setup/", want: "guide/setup"},
		{name: "hyphenated", raw: "getting-started", want: "getting-started"},
		{name: "traversal prefix", raw: "../../etc/passwd", wantErr: ErrInvalidPath},
		{name: "traversal middle", raw: "guide/../secret", wantErr: ErrInvalidPath},
		{name: "double dot inside name", raw: "notes..md", wantErr: ErrInvalidPath},
		{name: "less than", raw: "a<b", wantErr: ErrInvalidPath},
		{name: "greater than", raw: "a>b", wantErr: ErrInvalidPath},
		{name: "pipe", raw: "a|b", wantErr: ErrInvalidPath},
		{name: "colon", raw: "c:/windows", wantErr: ErrInvalidPath},
		{name: "star", raw: "guide/*", wantErr: ErrInvalidPath},
		{name: "question mark", raw: "guide?x=1", wantErr: ErrInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ValidateDocument(root, tt.raw)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ValidateDocument(%q) error = %v, want %v", tt.raw, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateDocument(%q) unexpected error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ValidateDocument(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestValidateDocument_DotDotAlwaysRejected(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	inputs := []string{"..", "a/..", "../a", "a..b", "x/y/../../z", "....", "ok/path/.."}
	for _, raw := range inputs {
		if _, err := ValidateDocument(root, raw); !errors.Is(err, ErrInvalidPath) {
			t.Errorf("ValidateDocument(%q) error = %v, want ErrInvalidPath", raw, err)
		}
	}
}

func TestValidateDocument_DoesNotRequireExistence(t *testing.T) {
	t.Parallel()

	// Validation is about shape; existence is the locator's job.
	root := filepath.Join(t.TempDir(), "missing-root")
	got, err := ValidateDocument(root, "guide/setup")
	if err != nil {
		t.Fatalf("ValidateDocument() error = %v", err)
	}
	if got != "guide/setup" {
		t.Errorf("ValidateDocument() = %q, want %q", got, "guide/setup")
	}
}

func TestValidateDocument_ErrorMentionsInput(t *testing.T) {
	t.Parallel()

	_, err := ValidateDocument(t.TempDir(), "../../etc/passwd")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "../../etc/passwd") {
		t.Errorf("error %q should mention the raw path", err)
	}
}

func TestValidateAsset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{name: "empty", raw: "", wantErr: ErrInvalidPath},
		{name: "only slash", raw: "/", wantErr: ErrInvalidPath},
		{name: "file", raw: "logo.png", want: "logo.png"},
		{name: "nested", raw: "img/diagram.svg", want: "img/diagram.svg"},
		{name: "slashes trimmed", raw: "/logo.png/", want: "logo.png"},
		{name: "traversal", raw: "../config.yaml", wantErr: ErrInvalidPath},
		{name: "forbidden char", raw: "logo?.png", wantErr: ErrInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ValidateAsset(tt.raw)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ValidateAsset(%q) error = %v, want %v", tt.raw, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateAsset(%q) unexpected error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ValidateAsset(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestAssetFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, AssetsDir), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := AssetFile(root, "img/logo.png")
	if err != nil {
		t.Fatalf("AssetFile() error = %v", err)
	}
	want := filepath.Join(root, AssetsDir, "img", "logo.png")
	if abs, _ := filepath.Abs(want); got != abs {
		t.Errorf("AssetFile() = %q, want %q", got, abs)
	}

	if _, err := AssetFile(root, "."); !errors.Is(err, ErrInvalidPath) {
		t.Errorf("AssetFile(\".\") error = %v, want ErrInvalidPath", err)
	}
}
