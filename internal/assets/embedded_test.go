package assets

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEmbeddedLoader_LoadStyle(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	tests := []struct {
		name     string
		style    string
		contains string
		wantErr  error
	}{
		{name: "default", style: DefaultStyleName, contains: ".breadcrumb-current"},
		{name: "minimal", style: "minimal", contains: "font-family"},
		{name: "unknown", style: "nope", wantErr: ErrStyleNotFound},
		{name: "invalid name", style: "../default", wantErr: ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := loader.LoadStyle(tt.style)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("LoadStyle(%q) error = %v, want %v", tt.style, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadStyle(%q) error = %v", tt.style, err)
			}
			if !strings.Contains(got, tt.contains) {
				t.Errorf("LoadStyle(%q) missing %q", tt.style, tt.contains)
			}
		})
	}
}

func TestEmbeddedLoader_LoadTemplate(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	got, err := loader.LoadTemplate(PageTemplateName)
	if err != nil {
		t.Fatalf("LoadTemplate(page) error = %v", err)
	}
	for _, want := range []string{"<!DOCTYPE html>", "{{.Title}} - Documentation", `class="breadcrumb"`, "{{.Content}}"} {
		if !strings.Contains(got, want) {
			t.Errorf("page template missing %q", want)
		}
	}

	if _, err := loader.LoadTemplate("cover"); !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("LoadTemplate(cover) error = %v, want ErrTemplateNotFound", err)
	}
}

func TestStyleNames(t *testing.T) {
	t.Parallel()

	want := []string{"default", "minimal"}
	if diff := cmp.Diff(want, StyleNames()); diff != "" {
		t.Errorf("StyleNames() mismatch (-want +got):\n%s", diff)
	}
}
