package commands

import (
	"MyWeddBlue/internal/cli/api"
	"MyWeddBlue/internal/config"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
)

// Коды завершения.
const (
	exitOK          = 0
	exitFailure     = 1
	exitUsage       = 2
	exitInterrupted = 130
)

// Dispatch is the single entry point to execute CLI commands.
// It prints help and usage messages and returns a process exit code.
func Dispatch(ctx context.Context, cfg *config.Config, args []string) int {
	// If user passed global --help after flags parsing, show global usage
	for _, a := range os.Args[1:] {
		if a == "--help" || a == "-h" {
			fmt.Fprint(Out, FormatGlobalUsage())
			return exitOK
		}
	}

	if !flag.Parsed() {
		flag.Parse()
	}

	if len(args) == 0 {
		fmt.Fprint(Out, FormatGlobalUsage())
		return exitUsage
	}

	name := strings.ToLower(args[0])
	if name == "help" { // ornctl help [command]
		if len(args) == 1 {
			fmt.Fprint(Out, FormatGlobalUsage())
			return exitOK
		}
		if c, ok := Get(args[1]); ok {
			fmt.Fprintf(Out, "Usage: %s\n  %s\n", c.Usage(), c.Description())
			return exitOK
		}
		fmt.Fprintf(Out, "Unknown command: %s\n\n", args[1])
		fmt.Fprint(Out, FormatGlobalUsage())
		return exitUsage
	}

	c, ok := Get(name)
	if !ok {
		fmt.Fprintf(Out, "Unknown command: %s\n\n", name)
		fmt.Fprint(Out, FormatGlobalUsage())
		return exitUsage
	}

	return report(name, c, c.Run(ctx, cfg, args[1:]))
}

// report печатает итог команды и возвращает код завершения.
// Нарушения валидации от сервера выводятся по одному на строку.
func report(name string, c Command, err error) int {
	var apiErr *api.Error
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, ErrUsage):
		fmt.Fprintf(Out, "Usage: %s\n", c.Usage())
		return exitUsage
	case errors.Is(err, context.Canceled):
		fmt.Fprintf(Out, "%s interrupted\n", name)
		return exitInterrupted
	case errors.As(err, &apiErr) && len(apiErr.Invalid) > 0:
		fmt.Fprintf(Out, "%s error: server rejected %d problem(s):\n", name, len(apiErr.Invalid))
		for _, p := range apiErr.Invalid {
			fmt.Fprintf(Out, "  %s\n", p)
		}
		return exitFailure
	default:
		fmt.Fprintf(Out, "%s error: %v\n", name, err)
		return exitFailure
	}
}
