package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/passforge/passforge-go/internal/cli"
	"github.com/passforge/passforge-go/internal/config"
	"github.com/passforge/passforge-go/internal/password"
)

const (
	exitFailure          = 1
	exitInvalidParameter = 2
	exitUnsatisfiable    = 3
)

func main() {
	// A missing .env file is the normal case for an installed CLI; only a
	// present-but-unreadable one is worth a warning.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err)
	}

	cfg := config.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	if err := cli.NewRootCommand(cfg).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to its process exit code.
func exitCode(err error) int {
	switch {
	case password.IsInvalidParameter(err):
		return exitInvalidParameter
	case errors.Is(err, password.ErrRequirementUnsatisfiable):
		return exitUnsatisfiable
	default:
		return exitFailure
	}
}
