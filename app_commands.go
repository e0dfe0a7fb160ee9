package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/pflag"
	"github.com/thirukguru/cmake-release/model"
	"github.com/thirukguru/cmake-release/service/config"
	"github.com/thirukguru/cmake-release/service/output"
	"github.com/thirukguru/cmake-release/service/storage"
)

const historyUsage = "usage: cmake-release history <list|show <tag>|purge|vacuum> [--db-path ...]"

func runHistoryCommand(args []string, out io.Writer, color bool) error {
	fs := pflag.NewFlagSet("history", pflag.ContinueOnError)
	fs.SetOutput(out)
	dbPath := fs.String("db-path", "", "SQLite database path (default ~/.cmake-release/history.db)")
	configPath := fs.String("config-path", "", "Path to cmake-release config file")
	limit := fs.Int("limit", 20, "Number of releases to list")
	olderThan := fs.Int("older-than", 90, "Purge releases older than N days")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) == 0 {
		return fmt.Errorf("%w: %s", model.ErrUsage, historyUsage)
	}

	if *dbPath == "" {
		settings, err := config.NewService().Load(*configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		*dbPath = settings.HistoryDBPath
	}

	store, err := storage.NewService(*dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	outputService := output.NewServiceWithWriter(out, color)

	sub := rest[0]
	switch sub {
	case "list":
		releases, err := store.GetRecentReleases(*limit)
		if err != nil {
			return err
		}
		outputService.RenderHistory(releases)
		return nil
	case "show":
		if len(rest) < 2 {
			return fmt.Errorf("%w: cmake-release history show <tag>", model.ErrUsage)
		}
		return showReleases(store, outputService, out, rest[1])
	case "purge":
		count, err := store.PurgeOlderThan(context.Background(), *olderThan)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Purged %d releases\n", count)
		return nil
	case "vacuum":
		return store.Vacuum(context.Background())
	default:
		return fmt.Errorf("%w: unsupported history command: %s", model.ErrUsage, sub)
	}
}

func showReleases(store storage.Service, outputService output.Service, out io.Writer, tag string) error {
	releases, err := store.GetReleasesByTag(tag)
	if err != nil {
		return err
	}
	if len(releases) == 0 {
		fmt.Fprintf(out, "No releases recorded for %s\n", tag)
		return nil
	}
	for _, r := range releases {
		stages, err := store.ListStages(r.ReleaseID)
		if err != nil {
			return err
		}
		outputService.RenderRelease(r, stages)
	}
	return nil
}
