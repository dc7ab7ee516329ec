package main

import (
	"context"
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"
)

const appName = "go-mdguide"

// runMain dispatches to a command and returns the process exit code.
func runMain(args []string, deps *Dependencies) int {
	if len(args) < 2 {
		printUsage(deps.Stderr)
		return ExitUsage
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	cmd, rest := args[1], args[2:]

	var err error
	switch cmd {
	case "serve":
		err = runServe(ctx, rest, deps)
	case "render":
		err = runRender(ctx, rest, deps)
	case "export":
		err = runExport(ctx, rest, deps)
	case "version", "--version":
		fmt.Fprintf(deps.Stdout, "mdguide %s\n", Version)
		return ExitSuccess
	case "help", "--help", "-h":
		runHelp(rest, deps)
		return ExitSuccess
	default:
		fmt.Fprintf(deps.Stderr, "Unknown command: %s\n", cmd)
		printUsage(deps.Stderr)
		return ExitUsage
	}

	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v%s\n", err, hintFor(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}
