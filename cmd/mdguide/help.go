package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdguide <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  serve      Serve the documentation guide over HTTP")
	fmt.Fprintln(w, "  render     Print one rendered document")
	fmt.Fprintln(w, "  export     Export one document to PDF")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mdguide help <command>' for details on a specific command.")
}

// printCommonUsage prints flags shared by every command.
func printCommonUsage(w io.Writer) {
	fmt.Fprintln(w, "Documents:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -d, --docs <dir>          Documentation directory (default: docs)")
	fmt.Fprintln(w, "      --guide-root <s>      URL prefix (default: /guide)")
	fmt.Fprintln(w, "  -w, --workers <n>         File read workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --style <name>        Page stylesheet: default, minimal")
	fmt.Fprintln(w, "      --highlight <name>    Code highlight theme (default: github)")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom asset directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Logging:")
	fmt.Fprintln(w, "      --log-level <s>       debug, info, warn, error")
	fmt.Fprintln(w, "      --log-format <s>      json, console")
}

// printServeUsage prints usage for the serve command.
func printServeUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdguide serve [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Serve the documentation guide over HTTP until interrupted.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Server:")
	fmt.Fprintln(w, "  -a, --addr <host:port>    Listen address (default: :8000)")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdguide render [path] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print one document as an HTML page. Without path, renders the index.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Terminal:")
	fmt.Fprintln(w, "  -t, --terminal            Render markdown for the terminal")
	fmt.Fprintln(w, "      --theme <s>           auto, dark, light, notty")
	fmt.Fprintln(w, "      --width <n>           Word wrap width (default: 80)")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printExportUsage prints usage for the export command.
func printExportUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdguide export [path] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Export one document to PDF using a headless browser.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -o, --output <file>       Output PDF (default: <name>.pdf)")
	fmt.Fprintln(w, "  -t, --timeout <d>         PDF generation timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "  -p, --page-size <s>       Page size: letter, a4, legal")
	fmt.Fprintln(w, "      --orientation <s>     Orientation: portrait, landscape")
	fmt.Fprintln(w, "      --margin <f>          Margin in inches (0.25-3.0)")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, deps *Dependencies) {
	if len(args) == 0 {
		printUsage(deps.Stdout)
		return
	}

	switch args[0] {
	case "serve":
		printServeUsage(deps.Stdout)
	case "render":
		printRenderUsage(deps.Stdout)
	case "export":
		printExportUsage(deps.Stdout)
	case "version":
		fmt.Fprintln(deps.Stdout, "Usage: mdguide version")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(deps.Stdout, "Usage: mdguide help [command]")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(deps.Stderr, "Unknown command: %s\n", args[0])
		printUsage(deps.Stderr)
	}
}
