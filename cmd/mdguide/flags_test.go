package main

import (
	"errors"
	"io"
	"testing"
	"time"

	flag "github.com/spf13/pflag"
)

func TestParseServeFlags(t *testing.T) {
	t.Parallel()

	f, fs, err := parseServeFlags([]string{
		"-a", "127.0.0.1:9000",
		"-c", "team",
		"-d", "handbook",
		"--guide-root", "/docs",
		"--style", "minimal",
		"--highlight", "monokai",
		"--asset-path", "/opt/assets",
		"-w", "4",
		"--log-level", "debug",
		"--log-format", "console",
	}, io.Discard)
	if err != nil {
		t.Fatalf("parseServeFlags() error = %v", err)
	}

	want := commonFlags{
		config:    "team",
		docsRoot:  "handbook",
		guideRoot: "/docs",
		style:     "minimal",
		highlight: "monokai",
		assetPath: "/opt/assets",
		workers:   4,
		logLevel:  "debug",
		logFormat: "console",
	}
	if f.common != want {
		t.Errorf("common = %+v, want %+v", f.common, want)
	}
	if f.addr != "127.0.0.1:9000" {
		t.Errorf("addr = %q", f.addr)
	}
	if !fs.Changed("docs") || !fs.Changed("config") {
		t.Error("Changed() should report set flags")
	}
}

func TestParseRenderFlags(t *testing.T) {
	t.Parallel()

	f, fs, err := parseRenderFlags([]string{"guide/setup", "-t", "--theme", "dark", "--width", "100"}, io.Discard)
	if err != nil {
		t.Fatalf("parseRenderFlags() error = %v", err)
	}
	if !f.terminal || f.theme != "dark" || f.width != 100 {
		t.Errorf("flags = %+v", f)
	}
	if got := positionalPath(fs); got != "guide/setup" {
		t.Errorf("positionalPath() = %q", got)
	}
}

func TestParseRenderFlags_Defaults(t *testing.T) {
	t.Parallel()

	f, fs, err := parseRenderFlags(nil, io.Discard)
	if err != nil {
		t.Fatalf("parseRenderFlags() error = %v", err)
	}
	if f.terminal || f.theme != themeAuto || f.width != 80 {
		t.Errorf("defaults = %+v", f)
	}
	if got := positionalPath(fs); got != "" {
		t.Errorf("positionalPath() = %q, want empty (index)", got)
	}
}

func TestParseExportFlags(t *testing.T) {
	t.Parallel()

	f, fs, err := parseExportFlags([]string{"ref", "-o", "out.pdf", "-t", "1m", "-p", "legal", "--orientation", "landscape", "--margin", "0.75"}, io.Discard)
	if err != nil {
		t.Fatalf("parseExportFlags() error = %v", err)
	}
	if f.output != "out.pdf" || f.timeout != time.Minute {
		t.Errorf("output/timeout = %q/%v", f.output, f.timeout)
	}
	if f.page != (pageFlags{size: "legal", orientation: "landscape", margin: 0.75}) {
		t.Errorf("page = %+v", f.page)
	}
	if positionalPath(fs) != "ref" {
		t.Errorf("positionalPath() = %q", positionalPath(fs))
	}
}

func TestParseFlags_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		parse func() error
	}{
		{"serve unknown flag", func() error { _, _, err := parseServeFlags([]string{"--nope"}, io.Discard); return err }},
		{"serve positional", func() error { _, _, err := parseServeFlags([]string{"x"}, io.Discard); return err }},
		{"render two paths", func() error { _, _, err := parseRenderFlags([]string{"a", "b"}, io.Discard); return err }},
		{"render bad width", func() error { _, _, err := parseRenderFlags([]string{"--width", "wide"}, io.Discard); return err }},
		{"export bad duration", func() error { _, _, err := parseExportFlags([]string{"-t", "soon"}, io.Discard); return err }},
		{"export two paths", func() error { _, _, err := parseExportFlags([]string{"a", "b"}, io.Discard); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if err := tt.parse(); !errors.Is(err, ErrUsage) {
				t.Errorf("error = %v, want ErrUsage", err)
			}
		})
	}
}

func TestParseFlags_Help(t *testing.T) {
	t.Parallel()

	_, _, err := parseExportFlags([]string{"--help"}, io.Discard)
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("error = %v, want flag.ErrHelp", err)
	}
}
