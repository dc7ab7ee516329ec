package pipeline

import (
	"testing"
)

func TestNewLinkRewriter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		root string
		want string
	}{
		{"plain", "/guide", "/guide"},
		{"trailing slash trimmed", "/guide/", "/guide"},
		{"empty root", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NewLinkRewriter(tt.root).GuideRoot; got != tt.want {
				t.Errorf("GuideRoot = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLinkRewriter_Links(t *testing.T) {
	t.Parallel()

	rw := NewLinkRewriter(DefaultGuideRoot)

	tests := []struct {
		name        string
		markdown    string
		currentPath string
		want        string
	}{
		{
			name:        "sibling at root",
			markdown:    "[Setup](setup)",
			currentPath: "index",
			want:        "[Setup](/guide/setup)",
		},
		{
			name:        "md suffix dropped",
			markdown:    "[Setup](setup.md)",
			currentPath: "intro",
			want:        "[Setup](/guide/setup)",
		},
		{
			name:        "sibling in subdirectory",
			markdown:    "[Next](next.md)",
			currentPath: "user-guide/intro",
			want:        "[Next](/guide/user-guide/next)",
		},
		{
			name:        "parent climbs one level",
			markdown:    "[Back](../other)",
			currentPath: "a/b",
			want:        "[Back](/guide/other)",
		},
		{
			name:        "parent from nested directory",
			markdown:    "[Up](../x.md)",
			currentPath: "a/b/c",
			want:        "[Up](/guide/a/x)",
		},
		{
			name:        "parent clamped at root",
			markdown:    "[Top](../../../top)",
			currentPath: "a/b",
			want:        "[Top](/guide/top)",
		},
		{
			name:        "fragment kept after md strip",
			markdown:    "[Ref](api.md#errors)",
			currentPath: "index",
			want:        "[Ref](/guide/api#errors)",
		},
		{
			name:        "http unchanged",
			markdown:    "[Go](http://go.dev)",
			currentPath: "a/b",
			want:        "[Go](http://go.dev)",
		},
		{
			name:        "https unchanged",
			markdown:    "[Go](https://go.dev/doc)",
			currentPath: "a/b",
			want:        "[Go](https://go.dev/doc)",
		},
		{
			name:        "anchor unchanged",
			markdown:    "[Section](#usage)",
			currentPath: "a/b",
			want:        "[Section](#usage)",
		},
		{
			name:        "rooted unchanged",
			markdown:    "[Abs](/elsewhere)",
			currentPath: "a/b",
			want:        "[Abs](/elsewhere)",
		},
		{
			name:        "several links",
			markdown:    "See [A](a.md) and [B](https://b.dev) then [C](c).",
			currentPath: "docs/page",
			want:        "See [A](/guide/docs/a) and [B](https://b.dev) then [C](/guide/docs/c).",
		},
		{
			name:        "no links",
			markdown:    "plain text with (parens) and [brackets]",
			currentPath: "index",
			want:        "plain text with (parens) and [brackets]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := rw.Rewrite(tt.markdown, tt.currentPath); got != tt.want {
				t.Errorf("Rewrite(%q, %q) = %q, want %q", tt.markdown, tt.currentPath, got, tt.want)
			}
		})
	}
}

func TestLinkRewriter_Images(t *testing.T) {
	t.Parallel()

	rw := NewLinkRewriter(DefaultGuideRoot)

	tests := []struct {
		name        string
		markdown    string
		currentPath string
		want        string
	}{
		{
			name:        "bare image goes to assets",
			markdown:    "![Logo](logo.png)",
			currentPath: "guide/intro",
			want:        "![Logo](/guide/assets/logo.png)",
		},
		{
			name:        "extension match is case-insensitive",
			markdown:    "![Shot](Screen.JPEG)",
			currentPath: "index",
			want:        "![Shot](/guide/assets/Screen.JPEG)",
		},
		{
			name:        "assets prefix",
			markdown:    "![Diagram](assets/flow.svg)",
			currentPath: "a/b",
			want:        "![Diagram](/guide/assets/flow.svg)",
		},
		{
			name:        "empty alt",
			markdown:    "![](icon.webp)",
			currentPath: "index",
			want:        "![](/guide/assets/icon.webp)",
		},
		{
			name:        "remote image unchanged",
			markdown:    "![Badge](https://img.shields.io/x.svg)",
			currentPath: "index",
			want:        "![Badge](https://img.shields.io/x.svg)",
		},
		{
			name:        "rooted image unchanged",
			markdown:    "![Abs](/static/a.png)",
			currentPath: "index",
			want:        "![Abs](/static/a.png)",
		},
		{
			name:        "parent relative image unchanged",
			markdown:    "![Up](../shared/a.png)",
			currentPath: "a/b",
			want:        "![Up](../shared/a.png)",
		},
		{
			name:        "non image file unchanged",
			markdown:    "![Data](report.pdf)",
			currentPath: "index",
			want:        "![Data](report.pdf)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := rw.Rewrite(tt.markdown, tt.currentPath); got != tt.want {
				t.Errorf("Rewrite(%q, %q) = %q, want %q", tt.markdown, tt.currentPath, got, tt.want)
			}
		})
	}
}

func TestLinkRewriter_ImageNotTreatedAsLink(t *testing.T) {
	t.Parallel()

	rw := NewLinkRewriter(DefaultGuideRoot)

	tests := []struct {
		name        string
		markdown    string
		currentPath string
		want        string
	}{
		{
			name:        "side by side",
			markdown:    "[Doc](doc.md) ![Pic](pic.gif)",
			currentPath: "sub/page",
			want:        "[Doc](/guide/sub/doc) ![Pic](/guide/assets/pic.gif)",
		},
		{
			name:        "linked image",
			markdown:    "[![Logo](logo.png)](home.md)",
			currentPath: "guide/intro",
			want:        "[![Logo](/guide/assets/logo.png)](/guide/guide/home)",
		},
		{
			name:        "linked image to remote page",
			markdown:    "[![Build](assets/ci.svg)](https://ci.example.com)",
			currentPath: "index",
			want:        "[![Build](/guide/assets/ci.svg)](https://ci.example.com)",
		},
		{
			name:        "linked remote badge",
			markdown:    "[![Badge](https://img.shields.io/x.svg)](../status)",
			currentPath: "a/b",
			want:        "[![Badge](https://img.shields.io/x.svg)](/guide/status)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := rw.Rewrite(tt.markdown, tt.currentPath); got != tt.want {
				t.Errorf("Rewrite(%q, %q) = %q, want %q", tt.markdown, tt.currentPath, got, tt.want)
			}
		})
	}
}

func TestLinkRewriter_Idempotent(t *testing.T) {
	t.Parallel()

	rw := NewLinkRewriter(DefaultGuideRoot)
	once := rw.Rewrite("[A](a.md) ![L](logo.png) [B](../b) [![I](i.png)](c.md)", "x/y")
	twice := rw.Rewrite(once, "x/y")
	if once != twice {
		t.Errorf("second Rewrite changed output:\nonce:  %q\ntwice: %q", once, twice)
	}
}

func TestParentSegments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want int
	}{
		{"index", 0},
		{"intro", 0},
		{"a/b", 1},
		{"a/b/c", 2},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			if got := len(parentSegments(tt.path)); got != tt.want {
				t.Errorf("len(parentSegments(%q)) = %d, want %d", tt.path, got, tt.want)
			}
		})
	}
}
