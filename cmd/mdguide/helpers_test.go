package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/alnah/go-mdguide"
)

// fakeExporter records the export call and returns canned output.
type fakeExporter struct {
	mu       sync.Mutex
	pdf      []byte
	err      error
	page     *mdguide.Page
	settings *mdguide.PageSettings
	timeout  time.Duration
	closed   bool
}

func (f *fakeExporter) Export(_ context.Context, page *mdguide.Page, settings *mdguide.PageSettings) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.page = page
	f.settings = settings
	return f.pdf, f.err
}

func (f *fakeExporter) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

// testDeps returns dependencies writing to buffers with a no-op logger.
func testDeps(exp *fakeExporter) (*Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	if exp == nil {
		exp = &fakeExporter{pdf: []byte("%PDF-1.4 fake")}
	}
	deps := &Dependencies{
		Now:    time.Now,
		Stdout: stdout,
		Stderr: stderr,
		NewLogger: func(string, string) (*zap.Logger, error) {
			return zap.NewNop(), nil
		},
		NewExporter: func(_ *mdguide.Service, timeout time.Duration) Exporter {
			exp.mu.Lock()
			exp.timeout = timeout
			exp.mu.Unlock()
			return exp
		},
	}
	return deps, stdout, stderr
}

// writeDocs creates files under a fresh temp docs root.
func writeDocs(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return root
}

var testDocs = map[string]string{
	"index.md":             "# Hello\n\nWelcome.",
	"guide/setup.md":       "# Setup\n\nSee [Intro](intro.md).",
	"assets/logo.png":      "\x89PNG fake",
	"reference/index.md":   "# Reference",
	"reference/options.md": "# Options",
}
