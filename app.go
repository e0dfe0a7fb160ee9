// Package main is the entry point for the cmake-release application.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/thirukguru/cmake-release/model"
	"github.com/thirukguru/cmake-release/service/config"
	"github.com/thirukguru/cmake-release/service/flag"
	"github.com/thirukguru/cmake-release/shared/console"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var stdout io.Writer = os.Stdout

func main() {
	setupLogging()
	os.Exit(reportError(stdout, run()))
}

func setupLogging() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !console.ColorEnabled(os.Stderr),
	})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func run() error {
	if len(os.Args) > 1 && os.Args[1] == "history" {
		return runHistoryCommand(os.Args[2:], stdout, console.ColorEnabled(os.Stdout))
	}

	flagService := flag.NewService()
	flags, err := flagService.GetParsedFlags()
	if err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}
	if flags.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	versionInfo := model.VersionInfo{Version: version, Commit: commit, Date: date}
	if flags.Version {
		printVersion(stdout, versionInfo)
		return nil
	}

	if flags.ReleaseVersion == "" {
		fmt.Fprintln(stdout, "Error: No version tag provided.")
		fmt.Fprintln(stdout, "Usage: cmake-release <version> (e.g., 1.0.0)")
		return &model.Reported{Err: model.ErrUsage}
	}

	settings, err := config.NewService().Resolve(flags)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log.Debug().Interface("settings", settings).Msg("resolved settings")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return runRelease(ctx, flags.ReleaseVersion, settings, versionInfo)
}

func printVersion(w io.Writer, info model.VersionInfo) {
	fmt.Fprintf(w, "cmake-release version %s\n", info.Version)
	fmt.Fprintf(w, "commit: %s\n", info.Commit)
	fmt.Fprintf(w, "built at: %s\n", info.Date)
}

// reportError prints the final diagnostic for err and returns the exit code.
func reportError(w io.Writer, err error) int {
	switch {
	case err == nil, errors.Is(err, pflag.ErrHelp):
		return 0
	case errors.Is(err, model.ErrInterrupted):
		fmt.Fprintln(w, "\nAborted.")
	case errors.Is(err, model.ErrDeclined):
		fmt.Fprintln(w, "Aborting.")
	case model.IsReported(err):
	default:
		fmt.Fprintf(w, "Error: %v\n", err)
	}
	return 1
}
