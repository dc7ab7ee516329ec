package main

import (
	"fmt"
	"io"
	"os"
	"time"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config    string
	docsRoot  string
	guideRoot string
	style     string
	highlight string
	assetPath string
	workers   int
	logLevel  string
	logFormat string
}

// pageFlags holds page layout flags.
type pageFlags struct {
	size        string
	orientation string
	margin      float64
}

// serveFlags holds all flags for the serve command.
type serveFlags struct {
	common commonFlags
	addr   string
}

// renderFlags holds all flags for the render command.
type renderFlags struct {
	common   commonFlags
	terminal bool
	theme    string
	width    int
}

// exportFlags holds all flags for the export command.
type exportFlags struct {
	common  commonFlags
	output  string
	timeout time.Duration
	page    pageFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.docsRoot, "docs", "d", "", "documentation directory")
	fs.StringVar(&f.guideRoot, "guide-root", "", "URL prefix the guide is served under")
	fs.StringVar(&f.style, "style", "", "page stylesheet name")
	fs.StringVar(&f.highlight, "highlight", "", "code highlight theme")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "file read workers (0 = auto)")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.StringVar(&f.logFormat, "log-format", "", "log format: json, console")
}

// addPageFlags adds page layout flags to a FlagSet.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.size, "page-size", "p", "", "page size: letter, a4, legal")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in inches (0.25-3.0)")
}

// parseServeFlags parses serve command flags.
func parseServeFlags(args []string, stderr io.Writer) (*serveFlags, *flag.FlagSet, error) {
	fs := newFlagSet("serve", stderr, printServeUsage)
	f := &serveFlags{}

	fs.StringVarP(&f.addr, "addr", "a", "", "listen address (host:port)")
	addCommonFlags(fs, &f.common)

	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	if fs.NArg() > 0 {
		return nil, nil, fmt.Errorf("%w: serve takes no arguments, got %q", ErrUsage, fs.Args())
	}
	return f, fs, nil
}

// parseRenderFlags parses render command flags and returns positional args.
func parseRenderFlags(args []string, stderr io.Writer) (*renderFlags, *flag.FlagSet, error) {
	fs := newFlagSet("render", stderr, printRenderUsage)
	f := &renderFlags{}

	fs.BoolVarP(&f.terminal, "terminal", "t", false, "render markdown for the terminal")
	fs.StringVar(&f.theme, "theme", "auto", "terminal theme: auto, dark, light, notty")
	fs.IntVar(&f.width, "width", 80, "terminal word wrap width")
	addCommonFlags(fs, &f.common)

	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	if fs.NArg() > 1 {
		return nil, nil, fmt.Errorf("%w: render takes at most one path, got %q", ErrUsage, fs.Args())
	}
	return f, fs, nil
}

// parseExportFlags parses export command flags and returns positional args.
func parseExportFlags(args []string, stderr io.Writer) (*exportFlags, *flag.FlagSet, error) {
	fs := newFlagSet("export", stderr, printExportUsage)
	f := &exportFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output PDF file")
	fs.DurationVarP(&f.timeout, "timeout", "t", 0, "PDF generation timeout (e.g., 30s, 2m)")
	addCommonFlags(fs, &f.common)
	addPageFlags(fs, &f.page)

	if err := parse(fs, args); err != nil {
		return nil, nil, err
	}
	if fs.NArg() > 1 {
		return nil, nil, fmt.Errorf("%w: export takes at most one path, got %q", ErrUsage, fs.Args())
	}
	return f, fs, nil
}

func newFlagSet(name string, stderr io.Writer, usage func(io.Writer)) *flag.FlagSet {
	if stderr == nil {
		stderr = os.Stderr
	}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(stderr) }
	return fs
}

// parse wraps flag errors as usage errors, leaving ErrHelp untouched.
func parse(fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err == nil || err == flag.ErrHelp {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}

// positionalPath returns the document path argument, "" meaning the index.
func positionalPath(fs *flag.FlagSet) string {
	if fs.NArg() == 0 {
		return ""
	}
	return fs.Arg(0)
}
